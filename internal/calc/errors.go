package calc

import "errors"

// Errors returned by calculation construction and operand parsing.
var (
	// ErrValidation indicates a bad, non-numeric, or out-of-range operand.
	ErrValidation = errors.New("calc: invalid operand")

	// ErrOperationFailed wraps an operation resolution or execution failure.
	ErrOperationFailed = errors.New("calc: operation failed")
)
