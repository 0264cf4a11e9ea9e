package operation

import "errors"

// Errors returned by operations and the registry.
var (
	// ErrUnknownOperation indicates a name with no registered factory.
	ErrUnknownOperation = errors.New("operation: unknown operation")

	// ErrInvalidOperation indicates a factory that does not produce a
	// usable Operation.
	ErrInvalidOperation = errors.New("operation: factory does not produce an operation")

	// ErrDivisionByZero indicates a zero divisor, modulus, or percentage base.
	ErrDivisionByZero = errors.New("operation: division by zero")

	// ErrNegativeExponent indicates a negative exponent for power.
	ErrNegativeExponent = errors.New("operation: negative exponents not supported")

	// ErrNegativeRoot indicates a root of a negative number.
	ErrNegativeRoot = errors.New("operation: cannot take root of negative number")

	// ErrZeroRoot indicates a zero root degree.
	ErrZeroRoot = errors.New("operation: zero root is undefined")

	// ErrOverflow indicates a result outside the representable range.
	ErrOverflow = errors.New("operation: result out of range")
)
