package parking

import "errors"

var (
	ErrInvalidPlate        = errors.New("invalid plate")
	ErrSubscriptionExpired = errors.New("monthly subscription has expired, renew it before entry")
	ErrNotFound            = errors.New("vehicle session not found")
	ErrAlreadyClosed       = errors.New("vehicle has already exited")
	ErrAlreadyParked       = errors.New("vehicle with this plate is already inside")
	ErrIntegrityViolation  = errors.New("more than one open session for this plate")
	ErrMissingReference    = errors.New("a session id or plate is required")
	ErrPlateMismatch       = errors.New("session belongs to a different plate")
	ErrTicketUnavailable   = errors.New("ticket encoder not configured")
)
