package errs

import "errors"

// Domain-specific sentinel errors for usecase layers
var (
	// Flight catalog errors
	ErrFlightNotFound = errors.New("flight not found")

	// Booking ledger errors
	ErrBookingNotFound      = errors.New("booking not found")
	ErrNotBookingOwner      = errors.New("booking belongs to another user")
	ErrPointsAlreadyAwarded = errors.New("points already awarded for booking")

	// Rewards ledger errors
	ErrAccountNotFound       = errors.New("rewards account not found")
	ErrInvalidPointsAmount   = errors.New("invalid points amount")
	ErrNegativePointsBalance = errors.New("points balance cannot go negative")
	ErrNotAuthorized         = errors.New("caller is not authorized")

	// Auth errors
	ErrInvalidSession  = errors.New("invalid or expired session token")
	ErrInvalidBotToken = errors.New("invalid bot token")
	ErrUpstreamAuth    = errors.New("identity provider exchange failed")

	// Validation errors
	ErrMalformedInput = errors.New("malformed input")
)
