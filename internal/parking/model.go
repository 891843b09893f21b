package parking

import (
	"time"

	"parkreg/internal/auth"
	"parkreg/internal/pricing"
)

// Session is one parking stay. It is created open on entry and closed exactly
// once on exit; rows are never deleted.
type Session struct {
	ID               int64               `db:"id" json:"id"`
	Plate            string              `db:"plate" json:"plate"`
	VehicleType      pricing.VehicleType `db:"vehicle_type" json:"vehicle_type"`
	EntryTime        time.Time           `db:"entry_time" json:"entry_time"`
	ExitTime         *time.Time          `db:"exit_time" json:"exit_time,omitempty"`
	IsMonthly        bool                `db:"is_monthly" json:"is_monthly"`
	TotalCost        int64               `db:"total_cost" json:"total_cost"`
	OperatorID       int                 `db:"operator_id" json:"operator_id"`
	OperatorName     string              `db:"operator_name" json:"operator_name"`
	ExitOperatorID   *int                `db:"exit_operator_id" json:"exit_operator_id,omitempty"`
	ExitOperatorName *string             `db:"exit_operator_name" json:"exit_operator_name,omitempty"`
}

func (s *Session) Open() bool {
	return s.ExitTime == nil
}

// EntryRequest registers a vehicle arriving. Operator and At are filled by
// the caller, not decoded from the body; a zero At means now.
type EntryRequest struct {
	Plate       string `json:"plate" binding:"required,plate" example:"AB123CD"`
	VehicleType string `json:"vehicle_type" binding:"required" example:"car"`

	Operator auth.Operator `json:"-"`
	At       time.Time     `json:"-"`
}

// ExitRequest closes a session, by id when SessionID is set or else by the
// plate's open session.
type ExitRequest struct {
	SessionID *int64 `json:"session_id" binding:"omitempty,gt=0" example:"17"`
	Plate     string `json:"plate" binding:"omitempty,plate" example:"AB123CD"`

	Operator auth.Operator `json:"-"`
	At       time.Time     `json:"-"`
}

// NewSession is the insert command for an open session.
type NewSession struct {
	Plate        string
	VehicleType  pricing.VehicleType
	EntryTime    time.Time
	IsMonthly    bool
	OperatorID   int
	OperatorName string
}

// ExitCommand closes an open session. The store applies it only while the
// session is still open and returns the resulting snapshot.
type ExitCommand struct {
	SessionID        int64
	ExitTime         time.Time
	TotalCost        int64
	ExitOperatorID   int
	ExitOperatorName string
}

type EntryResult struct {
	Session
	// Ticket is the base64 PNG QR code of the session id.
	Ticket string `json:"ticket,omitempty"`
}

type ExitResult struct {
	Session
	// ElapsedHours is for display; billing uses the exact duration.
	ElapsedHours float64 `json:"elapsed_hours" example:"1.08"`
}

// OpenView is an open session with its running estimate.
type OpenView struct {
	Session
	ElapsedHours  float64 `json:"elapsed_hours" example:"0.75"`
	EstimatedCost int64   `json:"estimated_cost" example:"500"`
}
