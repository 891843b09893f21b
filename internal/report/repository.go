package report

import (
	"context"
	"time"

	"parkreg/internal/parking"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	Totals(ctx context.Context, from, to time.Time) (Totals, error)
	SessionsEntered(ctx context.Context, from, to time.Time) ([]parking.Session, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Totals(ctx context.Context, from, to time.Time) (Totals, error) {
	var t Totals
	err := r.db.GetContext(ctx, &t, `
		SELECT
			COUNT(*) FILTER (WHERE entry_time >= $1 AND entry_time < $2) AS entered,
			COALESCE(SUM(total_cost) FILTER (WHERE exit_time >= $1 AND exit_time < $2), 0) AS earnings,
			COUNT(*) FILTER (WHERE entry_time >= $1 AND entry_time < $2 AND exit_time IS NULL) AS still_open
		FROM vehicle_sessions
		WHERE (entry_time >= $1 AND entry_time < $2)
		   OR (exit_time >= $1 AND exit_time < $2)`,
		from, to,
	)
	return t, err
}

func (r *repository) SessionsEntered(ctx context.Context, from, to time.Time) ([]parking.Session, error) {
	sessions := []parking.Session{}
	err := r.db.SelectContext(ctx, &sessions, `
		SELECT id, plate, vehicle_type, entry_time, exit_time, is_monthly, total_cost,
		       operator_id, operator_name, exit_operator_id, exit_operator_name
		FROM vehicle_sessions
		WHERE entry_time >= $1 AND entry_time < $2
		ORDER BY entry_time`,
		from, to,
	)
	return sessions, err
}
