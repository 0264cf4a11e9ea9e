// Package operation provides the arithmetic operations available to the
// calculator and the registry used to look them up by name.
//
// Each operation is a stateless strategy implementing the Operation
// interface: it validates its own operands and computes a decimal result.
// Operations are registered in a Registry under a lowercase name and
// created on demand through a factory function, so new operations (for
// example, ones loaded from Lua plugins) can be added without touching
// the calculator itself.
//
// # Arithmetic
//
// All operations compute in exact decimal arithmetic except power and
// root, which convert their operands to float64, exponentiate, and
// convert back. Exact decimal exponentiation is not generally
// representable, so these two operations accept binary floating-point
// rounding error. Changing this would change results for previously
// stored history.
//
// # Usage
//
//	reg := operation.NewRegistry()
//	operation.RegisterBuiltins(reg)
//
//	op, err := reg.Create("divide")
//	if err != nil {
//	    // operation.ErrUnknownOperation
//	}
//	result, err := op.Execute(a, b)
//	if errors.Is(err, operation.ErrDivisionByZero) {
//	    // rejected before computing
//	}
package operation
