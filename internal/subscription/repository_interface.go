package subscription

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, cmd NewSubscription) (*Subscription, error)
	GetByID(ctx context.Context, id int) (*Subscription, error)
	FindByPlate(ctx context.Context, plate string) (*Subscription, error)
	List(ctx context.Context) ([]Subscription, error)
	Renew(ctx context.Context, id int, expiration time.Time) (*Subscription, error)
	Delete(ctx context.Context, id int) error
}
