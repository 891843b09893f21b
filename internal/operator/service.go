package operator

import (
	"context"
	"errors"
	"strings"

	"parkreg/internal/auth"
)

var (
	ErrUsernameExists     = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service interface {
	Login(ctx context.Context, req LoginRequest) (*Operator, string, string, error)
	Create(ctx context.Context, req CreateRequest) (*Operator, error)
	GetByID(ctx context.Context, id int) (*Operator, error)
	List(ctx context.Context) ([]Operator, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, *Operator, error)
}

type service struct {
	repo      Repository
	jwtSecret string
}

func NewService(repo Repository, jwtSecret string) Service {
	return &service{
		repo:      repo,
		jwtSecret: jwtSecret,
	}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*Operator, string, string, error) {
	op, err := s.repo.FindByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, ErrOperatorNotFound) {
			return nil, "", "", ErrInvalidCredentials
		}
		return nil, "", "", err
	}

	if !auth.CheckPassword(op.PasswordHash, req.Password) {
		return nil, "", "", ErrInvalidCredentials
	}

	accessToken, refreshToken, err := auth.GenerateTokens(op.Identity(), s.jwtSecret, s.jwtSecret)
	if err != nil {
		return nil, "", "", err
	}

	return op, accessToken, refreshToken, nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Operator, error) {
	username := strings.TrimSpace(req.Username)

	exists, err := s.repo.UsernameExists(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameExists
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = auth.RoleOperator
	}

	return s.repo.Create(ctx, username, strings.TrimSpace(req.Name), passwordHash, role)
}

func (s *service) GetByID(ctx context.Context, id int) (*Operator, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]Operator, error) {
	return s.repo.List(ctx)
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, *Operator, error) {
	_, claims, err := auth.RefreshAccessToken(refreshToken, s.jwtSecret, s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	// Role and existence come from the store, not from the refresh token.
	op, err := s.repo.FindByID(ctx, claims.OperatorID)
	if err != nil {
		return "", nil, err
	}

	accessToken, err := auth.GenerateAccessToken(op.Identity(), s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	return accessToken, op, nil
}
