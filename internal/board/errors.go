package board

import "errors"

// Board-related errors
var (
	// Validation errors
	ErrEmptyTitle         = errors.New("column title cannot be empty")
	ErrEmptyClient        = errors.New("client name cannot be empty")
	ErrInvalidPrice       = errors.New("price must be positive")
	ErrNegativePrepayment = errors.New("prepayment cannot be negative")
	ErrMissingDeadline    = errors.New("deadline is required")

	// Unknown-reference errors: benign no-ops, the board is left unchanged
	ErrUnknownColumn = errors.New("column not found")
	ErrUnknownCard   = errors.New("card not found")
)
