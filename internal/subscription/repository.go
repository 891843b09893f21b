package subscription

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"parkreg/internal/db"

	"github.com/jmoiron/sqlx"
)

const plateConstraint = "monthly_subscriptions_plate_key"

const columns = `id, plate, vehicle_type, model, phone, expiration_date, created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, cmd NewSubscription) (*Subscription, error) {
	sub := &Subscription{}
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO monthly_subscriptions (plate, vehicle_type, model, phone, expiration_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+columns,
		cmd.Plate, cmd.VehicleType, cmd.Model, cmd.Phone, cmd.ExpirationDate,
	).StructScan(sub)
	if err != nil {
		if db.IsUniqueViolation(err, plateConstraint) {
			return nil, ErrDuplicateSubscription
		}
		return nil, err
	}
	return sub, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Subscription, error) {
	sub := &Subscription{}
	err := r.db.GetContext(ctx, sub, `SELECT `+columns+` FROM monthly_subscriptions WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return sub, nil
}

func (r *repository) FindByPlate(ctx context.Context, plate string) (*Subscription, error) {
	sub := &Subscription{}
	err := r.db.GetContext(ctx, sub, `SELECT `+columns+` FROM monthly_subscriptions WHERE plate = $1`, plate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return sub, nil
}

func (r *repository) List(ctx context.Context) ([]Subscription, error) {
	subs := []Subscription{}
	err := r.db.SelectContext(ctx, &subs, `SELECT `+columns+` FROM monthly_subscriptions ORDER BY plate`)
	return subs, err
}

func (r *repository) Renew(ctx context.Context, id int, expiration time.Time) (*Subscription, error) {
	sub := &Subscription{}
	err := r.db.QueryRowxContext(ctx, `
		UPDATE monthly_subscriptions
		SET expiration_date = $1,
		    updated_at = NOW()
		WHERE id = $2
		RETURNING `+columns,
		expiration, id,
	).StructScan(sub)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return sub, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM monthly_subscriptions WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
