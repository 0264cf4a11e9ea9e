package calc

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dshills/reckon/internal/operation"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Warn(msg string, args ...any) {
	l.warnings = append(l.warnings, fmt.Sprint(append([]any{msg}, args...)...))
}

func TestNewComputesResult(t *testing.T) {
	reg := operation.NewDefaultRegistry()

	c, err := New(reg, "add", dec(t, "2"), dec(t, "3"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !c.Result.Equal(dec(t, "5")) {
		t.Errorf("Result = %s, want 5", c.Result)
	}
	if c.Operation != "add" {
		t.Errorf("Operation = %q, want %q", c.Operation, "add")
	}
	if c.Timestamp.IsZero() {
		t.Error("timestamp not set")
	}
}

func TestNewUnknownOperation(t *testing.T) {
	reg := operation.NewDefaultRegistry()

	_, err := New(reg, "cube", dec(t, "2"), dec(t, "3"))
	if !errors.Is(err, ErrOperationFailed) {
		t.Errorf("error = %v, want ErrOperationFailed", err)
	}
	if !errors.Is(err, operation.ErrUnknownOperation) {
		t.Errorf("error = %v, want wrapped ErrUnknownOperation", err)
	}
}

func TestNewExecutionFailure(t *testing.T) {
	reg := operation.NewDefaultRegistry()

	_, err := New(reg, "divide", dec(t, "1"), dec(t, "0"))
	if !errors.Is(err, ErrOperationFailed) {
		t.Errorf("error = %v, want ErrOperationFailed", err)
	}
	if !errors.Is(err, operation.ErrDivisionByZero) {
		t.Errorf("error = %v, want wrapped ErrDivisionByZero", err)
	}
}

func TestCalculationString(t *testing.T) {
	reg := operation.NewDefaultRegistry()

	c, err := New(reg, "multiply", dec(t, "4"), dec(t, "2.5"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := c.String(); got != "multiply(4, 2.5) = 10" {
		t.Errorf("String() = %q", got)
	}
}

func TestCalculationEqualIgnoresTimestamp(t *testing.T) {
	reg := operation.NewDefaultRegistry()

	a, _ := New(reg, "add", dec(t, "1"), dec(t, "2"))
	b, _ := New(reg, "add", dec(t, "1"), dec(t, "2"))
	b.Timestamp = b.Timestamp.Add(time.Hour)

	if !a.Equal(b) {
		t.Error("calculations with equal fields should be Equal regardless of timestamp")
	}

	c, _ := New(reg, "add", dec(t, "1"), dec(t, "3"))
	if a.Equal(c) {
		t.Error("calculations with different operands should not be Equal")
	}

	d, _ := New(reg, "subtract", dec(t, "1"), dec(t, "2"))
	if a.Equal(d) {
		t.Error("calculations with different operations should not be Equal")
	}
}

func TestRecordRoundTrip(t *testing.T) {
	reg := operation.NewDefaultRegistry()

	tests := []struct {
		op   string
		a, b string
	}{
		{"add", "2", "3"},
		{"divide", "10", "4"},
		{"power", "2", "10"},
		{"percentage", "1", "3"},
		{"intdivision", "10", "-3"},
		{"absdifference", "-5", "5"},
	}

	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			orig, err := New(reg, tt.op, dec(t, tt.a), dec(t, tt.b))
			if err != nil {
				t.Fatalf("New: %v", err)
			}

			back, err := FromRecord(reg, orig.Record(), nil)
			if err != nil {
				t.Fatalf("FromRecord: %v", err)
			}
			if !orig.Equal(back) {
				t.Errorf("round trip mismatch: %s vs %s", orig, back)
			}
			if !orig.Timestamp.Equal(back.Timestamp) {
				t.Errorf("timestamp not preserved: %v vs %v", orig.Timestamp, back.Timestamp)
			}
		})
	}
}

func TestFromRecordTolerantMismatch(t *testing.T) {
	reg := operation.NewDefaultRegistry()
	logger := &recordingLogger{}

	rec := Record{
		Operation: "add",
		Operand1:  "2",
		Operand2:  "3",
		Result:    "6", // corrupted
		Timestamp: time.Now().Format(time.RFC3339Nano),
	}

	c, err := FromRecord(reg, rec, logger)
	if err != nil {
		t.Fatalf("FromRecord: %v", err)
	}
	if !c.Result.Equal(dec(t, "5")) {
		t.Errorf("Result = %s, want recomputed 5", c.Result)
	}
	if len(logger.warnings) != 1 {
		t.Errorf("warnings = %d, want 1", len(logger.warnings))
	}
}

func TestFromRecordInvalidData(t *testing.T) {
	reg := operation.NewDefaultRegistry()
	now := time.Now().Format(time.RFC3339Nano)

	tests := []struct {
		name string
		rec  Record
	}{
		{"bad operand1", Record{Operation: "add", Operand1: "x", Operand2: "1", Result: "1", Timestamp: now}},
		{"bad operand2", Record{Operation: "add", Operand1: "1", Operand2: "x", Result: "1", Timestamp: now}},
		{"bad result", Record{Operation: "add", Operand1: "1", Operand2: "1", Result: "x", Timestamp: now}},
		{"bad timestamp", Record{Operation: "add", Operand1: "1", Operand2: "1", Result: "2", Timestamp: "yesterday"}},
		{"unknown operation", Record{Operation: "cube", Operand1: "1", Operand2: "1", Result: "1", Timestamp: now}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromRecord(reg, tt.rec, nil); !errors.Is(err, ErrOperationFailed) {
				t.Errorf("error = %v, want ErrOperationFailed", err)
			}
		})
	}
}

func TestFormatResult(t *testing.T) {
	reg := operation.NewDefaultRegistry()

	c, err := New(reg, "divide", dec(t, "1"), dec(t, "3"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := c.FormatResult(4); got != "0.3333" {
		t.Errorf("FormatResult(4) = %q, want 0.3333", got)
	}

	whole, _ := New(reg, "add", dec(t, "2"), dec(t, "3"))
	if got := whole.FormatResult(10); got != "5" {
		t.Errorf("FormatResult(10) = %q, want 5 (trailing zeros stripped)", got)
	}

	if got := whole.FormatResult(0); got != whole.Result.String() {
		t.Errorf("FormatResult(0) = %q, want raw string", got)
	}
}
