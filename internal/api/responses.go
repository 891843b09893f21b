package api

import "github.com/gin-gonic/gin"

// ErrorResponse is the failure half of every typed result. Code is a stable,
// machine-readable reason; Error is meant for the operator.
type ErrorResponse struct {
	Error string `json:"error" example:"vehicle not found"`
	Code  string `json:"code,omitempty" example:"not_found"`

	Details []FieldError `json:"details,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

const (
	CodeValidation            = "validation_failed"
	CodeInvalidInterval       = "invalid_interval"
	CodeSubscriptionExpired   = "subscription_expired"
	CodeNotFound              = "not_found"
	CodeAlreadyClosed         = "already_closed"
	CodeAlreadyParked         = "already_parked"
	CodeDuplicateSubscription = "duplicate_subscription"
	CodeIntegrityViolation    = "integrity_violation"
	CodePlateMismatch         = "plate_mismatch"
	CodeTicketUnavailable     = "ticket_unavailable"
	CodeUnauthorized          = "unauthorized"
	CodeInternal              = "internal_error"
)

func Fail(c *gin.Context, status int, code, msg string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: msg, Code: code})
}
