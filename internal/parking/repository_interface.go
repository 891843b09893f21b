package parking

import "context"

type Repository interface {
	// WithTx runs fn in one transaction, committed only when fn returns nil.
	WithTx(ctx context.Context, fn func(tx Tx) error) error
	GetByID(ctx context.Context, id int64) (*Session, error)
	ListOpen(ctx context.Context) ([]Session, error)
}

// Tx is the transaction-scoped view of the session store.
type Tx interface {
	Insert(ctx context.Context, cmd NewSession) (*Session, error)
	LockByID(ctx context.Context, id int64) (*Session, error)
	LockOpenByPlate(ctx context.Context, plate string) ([]Session, error)
	ApplyExit(ctx context.Context, cmd ExitCommand) (*Session, error)
}
