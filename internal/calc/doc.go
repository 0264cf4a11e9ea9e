// Package calc provides the calculation record: an immutable value
// capturing one performed operation with its operands, computed result,
// and timestamp.
//
// A Calculation is only constructed through New, which resolves the
// operation from a registry and computes the result, so the result is
// always derivable from (operation, operand1, operand2). Deserialization
// goes through the same constructor and re-validates; a stored result
// that disagrees with the recomputation is logged as a warning and the
// recomputed value is kept (tolerant-read policy).
//
// Equality is defined over (operation, operand1, operand2, result); the
// timestamp is ignored.
package calc
