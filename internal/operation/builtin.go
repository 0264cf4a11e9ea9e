package operation

import (
	"math"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// Addition computes a + b.
type Addition struct{ noValidation }

func (Addition) Name() string        { return "add" }
func (Addition) Description() string { return "Add two numbers" }

func (op Addition) Execute(a, b decimal.Decimal) (decimal.Decimal, error) {
	return a.Add(b), nil
}

// Subtraction computes a - b.
type Subtraction struct{ noValidation }

func (Subtraction) Name() string        { return "subtract" }
func (Subtraction) Description() string { return "Subtract the second number from the first" }

func (op Subtraction) Execute(a, b decimal.Decimal) (decimal.Decimal, error) {
	return a.Sub(b), nil
}

// Multiplication computes a * b.
type Multiplication struct{ noValidation }

func (Multiplication) Name() string        { return "multiply" }
func (Multiplication) Description() string { return "Multiply two numbers" }

func (op Multiplication) Execute(a, b decimal.Decimal) (decimal.Decimal, error) {
	return a.Mul(b), nil
}

// Division computes a / b. The divisor must be non-zero.
type Division struct{}

func (Division) Name() string        { return "divide" }
func (Division) Description() string { return "Divide the first number by the second" }

func (Division) Validate(a, b decimal.Decimal) error {
	if b.IsZero() {
		return ErrDivisionByZero
	}
	return nil
}

func (op Division) Execute(a, b decimal.Decimal) (decimal.Decimal, error) {
	if err := op.Validate(a, b); err != nil {
		return decimal.Decimal{}, err
	}
	return a.Div(b), nil
}

// Power computes a raised to the power b. Negative exponents are rejected.
//
// The computation goes through float64: exact decimal exponentiation is not
// generally representable, so power accepts binary rounding error.
type Power struct{}

func (Power) Name() string        { return "power" }
func (Power) Description() string { return "Raise the first number to the power of the second" }

func (Power) Validate(a, b decimal.Decimal) error {
	if b.Sign() < 0 {
		return ErrNegativeExponent
	}
	return nil
}

func (op Power) Execute(a, b decimal.Decimal) (decimal.Decimal, error) {
	if err := op.Validate(a, b); err != nil {
		return decimal.Decimal{}, err
	}
	af, _ := a.Float64()
	bf, _ := b.Float64()
	return fromFloat(math.Pow(af, bf))
}

// Root computes the b-th root of a. The base must be non-negative and the
// degree non-zero. Computed through float64, like Power.
type Root struct{}

func (Root) Name() string        { return "root" }
func (Root) Description() string { return "Take the nth root of the first number" }

func (Root) Validate(a, b decimal.Decimal) error {
	if a.Sign() < 0 {
		return ErrNegativeRoot
	}
	if b.IsZero() {
		return ErrZeroRoot
	}
	return nil
}

func (op Root) Execute(a, b decimal.Decimal) (decimal.Decimal, error) {
	if err := op.Validate(a, b); err != nil {
		return decimal.Decimal{}, err
	}
	af, _ := a.Float64()
	bf, _ := b.Float64()
	return fromFloat(math.Pow(af, 1/bf))
}

// Modulus computes the remainder of a / b with the sign of the dividend.
type Modulus struct{}

func (Modulus) Name() string        { return "modulus" }
func (Modulus) Description() string { return "Remainder of dividing the first number by the second" }

func (Modulus) Validate(a, b decimal.Decimal) error {
	if b.IsZero() {
		return ErrDivisionByZero
	}
	return nil
}

func (op Modulus) Execute(a, b decimal.Decimal) (decimal.Decimal, error) {
	if err := op.Validate(a, b); err != nil {
		return decimal.Decimal{}, err
	}
	return a.Mod(b), nil
}

// IntDivision computes floor(a / b): the quotient rounds toward negative
// infinity, not toward zero, so intdivision(10, -3) is -4.
type IntDivision struct{}

func (IntDivision) Name() string        { return "intdivision" }
func (IntDivision) Description() string { return "Integer (floor) division of the first number by the second" }

func (IntDivision) Validate(a, b decimal.Decimal) error {
	if b.IsZero() {
		return ErrDivisionByZero
	}
	return nil
}

func (op IntDivision) Execute(a, b decimal.Decimal) (decimal.Decimal, error) {
	if err := op.Validate(a, b); err != nil {
		return decimal.Decimal{}, err
	}
	// QuoRem truncates toward zero; step down when the exact quotient is
	// negative and has a remainder.
	q, r := a.QuoRem(b, 0)
	if !r.IsZero() && r.Sign() != b.Sign() {
		q = q.Sub(decimal.NewFromInt(1))
	}
	return q, nil
}

// Percentage computes (a / b) * 100, rounded to two decimal places with
// ties rounding away from zero.
type Percentage struct{}

func (Percentage) Name() string        { return "percentage" }
func (Percentage) Description() string { return "First number as a percentage of the second" }

func (Percentage) Validate(a, b decimal.Decimal) error {
	if b.IsZero() {
		return ErrDivisionByZero
	}
	return nil
}

func (op Percentage) Execute(a, b decimal.Decimal) (decimal.Decimal, error) {
	if err := op.Validate(a, b); err != nil {
		return decimal.Decimal{}, err
	}
	return a.Div(b).Mul(oneHundred).Round(2), nil
}

// AbsoluteDifference computes |a - b|.
type AbsoluteDifference struct{ noValidation }

func (AbsoluteDifference) Name() string        { return "absdifference" }
func (AbsoluteDifference) Description() string { return "Absolute difference between two numbers" }

func (op AbsoluteDifference) Execute(a, b decimal.Decimal) (decimal.Decimal, error) {
	return a.Sub(b).Abs(), nil
}

// fromFloat converts a float64 result back to decimal, rejecting values
// outside the representable range.
func fromFloat(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, ErrOverflow
	}
	return decimal.NewFromFloat(f), nil
}
