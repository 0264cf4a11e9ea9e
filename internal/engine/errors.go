package engine

import "errors"

// ErrNoOperation indicates PerformOperation was called before an
// operation was selected.
var ErrNoOperation = errors.New("engine: no operation set")
