package parking

import (
	"context"
	"database/sql"
	"errors"

	"parkreg/internal/db"

	"github.com/jmoiron/sqlx"
)

const openPlateIndex = "vehicle_sessions_open_plate_key"

const columns = `id, plate, vehicle_type, entry_time, exit_time, is_monthly, total_cost,
	operator_id, operator_name, exit_operator_id, exit_operator_name`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(ctx context.Context, fn func(tx Tx) error) error {
	return db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		return fn(&txRepository{tx: tx})
	})
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Session, error) {
	s := &Session{}
	err := r.db.GetContext(ctx, s, `SELECT `+columns+` FROM vehicle_sessions WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *repository) ListOpen(ctx context.Context) ([]Session, error) {
	sessions := []Session{}
	err := r.db.SelectContext(ctx, &sessions, `
		SELECT `+columns+`
		FROM vehicle_sessions
		WHERE exit_time IS NULL
		ORDER BY entry_time`)
	return sessions, err
}

type txRepository struct {
	tx *sqlx.Tx
}

func (t *txRepository) Insert(ctx context.Context, cmd NewSession) (*Session, error) {
	s := &Session{}
	err := t.tx.QueryRowxContext(ctx, `
		INSERT INTO vehicle_sessions (plate, vehicle_type, entry_time, is_monthly, operator_id, operator_name)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+columns,
		cmd.Plate, cmd.VehicleType, cmd.EntryTime, cmd.IsMonthly, cmd.OperatorID, cmd.OperatorName,
	).StructScan(s)
	if err != nil {
		if db.IsUniqueViolation(err, openPlateIndex) {
			return nil, ErrAlreadyParked
		}
		return nil, err
	}
	return s, nil
}

func (t *txRepository) LockByID(ctx context.Context, id int64) (*Session, error) {
	s := &Session{}
	err := t.tx.GetContext(ctx, s, `SELECT `+columns+` FROM vehicle_sessions WHERE id = $1 FOR UPDATE`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (t *txRepository) LockOpenByPlate(ctx context.Context, plate string) ([]Session, error) {
	sessions := []Session{}
	err := t.tx.SelectContext(ctx, &sessions, `
		SELECT `+columns+`
		FROM vehicle_sessions
		WHERE plate = $1 AND exit_time IS NULL
		FOR UPDATE`, plate)
	return sessions, err
}

func (t *txRepository) ApplyExit(ctx context.Context, cmd ExitCommand) (*Session, error) {
	s := &Session{}
	err := t.tx.QueryRowxContext(ctx, `
		UPDATE vehicle_sessions
		SET exit_time = $1,
		    total_cost = $2,
		    exit_operator_id = $3,
		    exit_operator_name = $4
		WHERE id = $5 AND exit_time IS NULL
		RETURNING `+columns,
		cmd.ExitTime, cmd.TotalCost, cmd.ExitOperatorID, cmd.ExitOperatorName, cmd.SessionID,
	).StructScan(s)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAlreadyClosed
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}
