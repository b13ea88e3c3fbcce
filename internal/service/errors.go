package service

import "errors"

// Sentinel errors shared across services. Handlers map these to HTTP
// status codes; anything unrecognized is reported as a generic server
// failure.
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token has expired")

	ErrBiodataNotFound = errors.New("biodata not found")
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountExists   = errors.New("account already exists")

	ErrRequestNotFound = errors.New("premium request not found")
	ErrRequestPending  = errors.New("premium request already pending")
	ErrNotOwner        = errors.New("biodata does not belong to this email")

	ErrFavoriteNotFound = errors.New("favorite link not found")

	ErrPaymentNotFound = errors.New("payment record not found")
	ErrPaymentGateway  = errors.New("payment gateway request failed")

	// ErrPartialSync reports a premium state that diverged between the
	// biodata and its account and could not be repaired.
	ErrPartialSync = errors.New("premium state partially synchronized")
)
