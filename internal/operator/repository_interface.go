package operator

import "context"

type Repository interface {
	Create(ctx context.Context, username, name, passwordHash, role string) (*Operator, error)
	FindByUsername(ctx context.Context, username string) (*Operator, error)
	FindByID(ctx context.Context, id int) (*Operator, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	List(ctx context.Context) ([]Operator, error)
}
