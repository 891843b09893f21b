package operator

import (
	"context"
	"database/sql"
	"errors"

	"parkreg/internal/db"

	"github.com/jmoiron/sqlx"
)

var ErrOperatorNotFound = errors.New("operator not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, username, name, passwordHash, role string) (*Operator, error) {
	query := `
		INSERT INTO operators (username, name, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, username, name, password_hash, role, created_at
	`

	var op Operator
	if err := r.db.GetContext(ctx, &op, query, username, name, passwordHash, role); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrUsernameExists
		}
		return nil, err
	}

	return &op, nil
}

func (r *repository) FindByUsername(ctx context.Context, username string) (*Operator, error) {
	query := `
		SELECT id, username, name, password_hash, role, created_at
		FROM operators
		WHERE username = $1
	`

	var op Operator
	if err := r.db.GetContext(ctx, &op, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOperatorNotFound
		}
		return nil, err
	}

	return &op, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (*Operator, error) {
	query := `
		SELECT id, username, name, password_hash, role, created_at
		FROM operators
		WHERE id = $1
	`

	var op Operator
	if err := r.db.GetContext(ctx, &op, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOperatorNotFound
		}
		return nil, err
	}

	return &op, nil
}

func (r *repository) UsernameExists(ctx context.Context, username string) (bool, error) {
	return db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM operators WHERE username = $1)`, username)
}

func (r *repository) List(ctx context.Context) ([]Operator, error) {
	query := `
		SELECT id, username, name, password_hash, role, created_at
		FROM operators
		ORDER BY username
	`

	ops := []Operator{}
	if err := r.db.SelectContext(ctx, &ops, query); err != nil {
		return nil, err
	}
	return ops, nil
}
