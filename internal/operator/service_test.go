package operator

import (
	"context"
	"errors"
	"testing"

	"parkreg/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, username, name, passwordHash, role string) (*Operator, error) {
	args := m.Called(ctx, username, name, passwordHash, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Operator), args.Error(1)
}

func (m *MockRepository) FindByUsername(ctx context.Context, username string) (*Operator, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Operator), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id int) (*Operator, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Operator), args.Error(1)
}

func (m *MockRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context) ([]Operator, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Operator), args.Error(1)
}

func newStoredOperator(t *testing.T, password string) *Operator {
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return &Operator{ID: 1, Username: "operador1", PasswordHash: hash, Role: auth.RoleOperator}
}

func TestService_Login(t *testing.T) {
	stored := newStoredOperator(t, "1234")

	tests := []struct {
		name          string
		req           LoginRequest
		setupMock     func(*MockRepository)
		expectedError error
	}{
		{
			name: "successful login",
			req:  LoginRequest{Username: " operador1 ", Password: "1234"},
			setupMock: func(m *MockRepository) {
				m.On("FindByUsername", mock.Anything, "operador1").Return(stored, nil)
			},
		},
		{
			name: "wrong password",
			req:  LoginRequest{Username: "operador1", Password: "nope"},
			setupMock: func(m *MockRepository) {
				m.On("FindByUsername", mock.Anything, "operador1").Return(stored, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name: "unknown operator",
			req:  LoginRequest{Username: "ghost", Password: "1234"},
			setupMock: func(m *MockRepository) {
				m.On("FindByUsername", mock.Anything, "ghost").Return(nil, ErrOperatorNotFound)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			tt.setupMock(repo)

			svc := NewService(repo, testSecret)
			op, access, refresh, err := svc.Login(context.Background(), tt.req)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, op)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, stored.ID, op.ID)

			claims, err := auth.ValidateToken(access, testSecret)
			require.NoError(t, err)
			assert.Equal(t, "operador1", claims.Username)
			assert.NotEmpty(t, refresh)
			repo.AssertExpectations(t)
		})
	}
}

func TestService_Create(t *testing.T) {
	t.Run("defaults role to operator", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("UsernameExists", mock.Anything, "operador5").Return(false, nil)
		repo.On("Create", mock.Anything, "operador5", "Ana", mock.AnythingOfType("string"), auth.RoleOperator).
			Return(&Operator{ID: 5, Username: "operador5", Role: auth.RoleOperator}, nil)

		op, err := NewService(repo, testSecret).Create(context.Background(), CreateRequest{
			Username: "operador5", Name: "Ana", Password: "1234",
		})
		require.NoError(t, err)
		assert.Equal(t, 5, op.ID)

		hash := repo.Calls[1].Arguments.String(3)
		assert.True(t, auth.CheckPassword(hash, "1234"))
	})

	t.Run("rejects duplicate username", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("UsernameExists", mock.Anything, "operador1").Return(true, nil)

		_, err := NewService(repo, testSecret).Create(context.Background(), CreateRequest{
			Username: "operador1", Password: "1234",
		})
		assert.ErrorIs(t, err, ErrUsernameExists)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("UsernameExists", mock.Anything, "x").Return(false, errors.New("db down"))

		_, err := NewService(repo, testSecret).Create(context.Background(), CreateRequest{Username: "x", Password: "1234"})
		assert.EqualError(t, err, "db down")
	})
}

func TestService_RefreshToken(t *testing.T) {
	stored := &Operator{ID: 1, Username: "operador1", Role: auth.RoleAdmin}
	refresh, err := auth.GenerateRefreshToken(auth.Operator{ID: 1, Username: "operador1", Role: auth.RoleOperator}, testSecret)
	require.NoError(t, err)

	repo := new(MockRepository)
	repo.On("FindByID", mock.Anything, 1).Return(stored, nil)

	access, op, err := NewService(repo, testSecret).RefreshToken(context.Background(), refresh)
	require.NoError(t, err)
	assert.Equal(t, stored, op)

	claims, err := auth.ValidateToken(access, testSecret)
	require.NoError(t, err)
	assert.Equal(t, auth.RoleAdmin, claims.Role)
}
