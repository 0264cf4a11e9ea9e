package plugin

import "errors"

var (
	// ErrLoadFailed indicates a script that could not be loaded as an
	// operation.
	ErrLoadFailed = errors.New("plugin: load failed")

	// ErrExecFailed indicates a script that errored or returned an
	// unusable value during execution.
	ErrExecFailed = errors.New("plugin: execution failed")

	// ErrOperandRejected indicates operands refused by a script's
	// validate function.
	ErrOperandRejected = errors.New("plugin: operands rejected")
)
