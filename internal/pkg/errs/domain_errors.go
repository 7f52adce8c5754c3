package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Order errors
	ErrOrderNotFound      = errors.New("order not found")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrTerminalState      = errors.New("order is in a terminal state")
	ErrNotOrderOwner      = errors.New("not the order owner")
	ErrCancelWindowClosed = errors.New("order can no longer be cancelled")
	ErrTokenConflict      = errors.New("pickup token conflict")

	// Menu errors
	ErrMenuItemUnavailable = errors.New("menu item unavailable")

	// Validation errors
	ErrDomainValidation       = errors.New("domain validation error")
	ErrDomainValidationFailed = errors.New("domain validation failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
