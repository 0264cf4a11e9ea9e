package calc

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dshills/reckon/internal/operation"
)

// Logger is the subset of the application logger this package needs.
type Logger interface {
	Warn(msg string, args ...any)
}

// Calculation is a single performed calculation. Construct it with New;
// the zero value is not meaningful.
type Calculation struct {
	Operation string
	Operand1  decimal.Decimal
	Operand2  decimal.Decimal
	Result    decimal.Decimal
	Timestamp time.Time
}

// New resolves the named operation from the registry and computes the
// result. It fails with ErrOperationFailed if the name is unknown or
// execution rejects the operands.
func New(reg *operation.Registry, name string, a, b decimal.Decimal) (Calculation, error) {
	op, err := reg.Create(name)
	if err != nil {
		return Calculation{}, fmt.Errorf("%w: %w", ErrOperationFailed, err)
	}

	result, err := op.Execute(a, b)
	if err != nil {
		return Calculation{}, fmt.Errorf("%w: %w", ErrOperationFailed, err)
	}

	return Calculation{
		Operation: op.Name(),
		Operand1:  a,
		Operand2:  b,
		Result:    result,
		Timestamp: time.Now(),
	}, nil
}

// String renders the calculation as "<operation>(<operand1>, <operand2>) = <result>".
func (c Calculation) String() string {
	return fmt.Sprintf("%s(%s, %s) = %s", c.Operation, c.Operand1, c.Operand2, c.Result)
}

// Equal reports whether two calculations have the same operation,
// operands, and result. Timestamps are ignored.
func (c Calculation) Equal(other Calculation) bool {
	return c.Operation == other.Operation &&
		c.Operand1.Equal(other.Operand1) &&
		c.Operand2.Equal(other.Operand2) &&
		c.Result.Equal(other.Result)
}

// FormatResult rounds the result to the given number of decimal places
// and strips trailing zeros. A non-positive precision falls back to the
// raw result string.
func (c Calculation) FormatResult(precision int) string {
	if precision <= 0 {
		return c.Result.String()
	}

	s := c.Result.Round(int32(precision)).String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

// Record is the flat string-field form of a calculation used for
// persistence. Operands and result carry exact decimal text; the
// timestamp is RFC 3339.
type Record struct {
	Operation string
	Operand1  string
	Operand2  string
	Result    string
	Timestamp string
}

// Record converts the calculation to its serialized form.
func (c Calculation) Record() Record {
	return Record{
		Operation: c.Operation,
		Operand1:  c.Operand1.String(),
		Operand2:  c.Operand2.String(),
		Result:    c.Result.String(),
		Timestamp: c.Timestamp.Format(time.RFC3339Nano),
	}
}

// FromRecord reconstructs a calculation through New, re-validating the
// operation against the registry. The stored timestamp overrides the
// construction time. A stored result that differs from the recomputed
// one is logged as a warning; the recomputed result wins.
func FromRecord(reg *operation.Registry, rec Record, logger Logger) (Calculation, error) {
	a, err := decimal.NewFromString(rec.Operand1)
	if err != nil {
		return Calculation{}, fmt.Errorf("%w: operand1 %q: %v", ErrOperationFailed, rec.Operand1, err)
	}
	b, err := decimal.NewFromString(rec.Operand2)
	if err != nil {
		return Calculation{}, fmt.Errorf("%w: operand2 %q: %v", ErrOperationFailed, rec.Operand2, err)
	}

	c, err := New(reg, rec.Operation, a, b)
	if err != nil {
		return Calculation{}, err
	}

	ts, err := time.Parse(time.RFC3339Nano, rec.Timestamp)
	if err != nil {
		return Calculation{}, fmt.Errorf("%w: timestamp %q: %v", ErrOperationFailed, rec.Timestamp, err)
	}
	c.Timestamp = ts

	stored, err := decimal.NewFromString(rec.Result)
	if err != nil {
		return Calculation{}, fmt.Errorf("%w: result %q: %v", ErrOperationFailed, rec.Result, err)
	}
	if !stored.Equal(c.Result) && logger != nil {
		logger.Warn("stored result differs from recomputed result",
			"operation", c.Operation, "stored", stored.String(), "computed", c.Result.String())
	}

	return c, nil
}
