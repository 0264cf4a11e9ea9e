package operation

import "github.com/shopspring/decimal"

// Operation is a stateless arithmetic strategy over two decimal operands.
type Operation interface {
	// Name returns the lowercase registry name (e.g., "add").
	Name() string

	// Description returns a short human-readable description for help text.
	Description() string

	// Validate checks operands before execution. Implementations with no
	// preconditions return nil.
	Validate(a, b decimal.Decimal) error

	// Execute validates the operands and computes the result.
	Execute(a, b decimal.Decimal) (decimal.Decimal, error)
}

// noValidation is embedded by operations without operand preconditions.
type noValidation struct{}

func (noValidation) Validate(a, b decimal.Decimal) error { return nil }
