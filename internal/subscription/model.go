package subscription

import (
	"time"

	"parkreg/internal/pricing"
)

// Subscription is a monthly client. Validity is computed on read against the
// expiration date; expired rows are kept until an administrator removes them.
type Subscription struct {
	ID             int                 `db:"id" json:"id"`
	Plate          string              `db:"plate" json:"plate"`
	VehicleType    pricing.VehicleType `db:"vehicle_type" json:"vehicle_type"`
	Model          string              `db:"model" json:"model"`
	Phone          string              `db:"phone" json:"phone"`
	ExpirationDate time.Time           `db:"expiration_date" json:"expiration_date"`
	CreatedAt      time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time           `db:"updated_at" json:"updated_at"`
}

// ActiveAt reports whether the subscription covers t (inclusive of the expiration instant).
func (s *Subscription) ActiveAt(t time.Time) bool {
	return !t.After(s.ExpirationDate)
}

// NewSubscription is the insert command built by the service after validation.
type NewSubscription struct {
	Plate          string
	VehicleType    pricing.VehicleType
	Model          string
	Phone          string
	ExpirationDate time.Time
}

type AddRequest struct {
	Plate          string `json:"plate" binding:"required,plate" example:"ABC123"`
	VehicleType    string `json:"vehicle_type" binding:"required" example:"car"`
	Model          string `json:"model" binding:"max=50" example:"Toyota Corolla 2020"`
	Phone          string `json:"phone" binding:"max=20" example:"3815551234"`
	ExpirationDate string `json:"expiration_date" binding:"required" example:"2026-11-15"`
}

type RenewRequest struct {
	ExpirationDate string `json:"expiration_date" binding:"required" example:"2026-12-15"`
}

// View is a subscription as shown to operators.
type View struct {
	Subscription
	Expired bool `json:"expired"`
}
