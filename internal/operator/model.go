package operator

import (
	"time"

	"parkreg/internal/auth"
)

type Operator struct {
	ID           int       `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Name         string    `db:"name" json:"name"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

func (o *Operator) Identity() auth.Operator {
	return auth.Operator{ID: o.ID, Username: o.Username, Role: o.Role}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"operador1"`
	Password string `json:"password" binding:"required" example:"1234"`
}

type LoginResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	Operator     *Operator `json:"operator"`
}

type CreateRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64" example:"operador5"`
	Name     string `json:"name" binding:"max=100" example:"Ana Martínez"`
	Password string `json:"password" binding:"required,min=4" example:"1234"`
	Role     string `json:"role" binding:"omitempty,oneof=operator admin" example:"operator"`
}
