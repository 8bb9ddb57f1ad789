package orders

import "errors"

// Order-service boundary errors
var (
	// ErrUnknownStage means the target column could not be translated to a
	// stage title (the column no longer exists); nothing was persisted.
	ErrUnknownStage = errors.New("column does not map to a known stage")

	// ErrReconcile marks a stage change that was persisted successfully but
	// whose follow-up snapshot fetch failed. The local optimistic state is
	// kept; the next poll reconciles it.
	ErrReconcile = errors.New("stage saved but reconciliation fetch failed")
)
