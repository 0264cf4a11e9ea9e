package calc

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseOperand converts user input into a decimal, rejecting non-numeric
// text and magnitudes above maxValue.
func ParseOperand(input string, maxValue decimal.Decimal) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: empty input", ErrValidation)
	}

	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q is not a number", ErrValidation, input)
	}

	if d.Abs().GreaterThan(maxValue) {
		return decimal.Decimal{}, fmt.Errorf("%w: %s exceeds maximum allowed value %s", ErrValidation, d, maxValue)
	}

	return d, nil
}
