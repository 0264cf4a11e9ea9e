package store

import "errors"

// ErrPersistence reports a failure reading or writing the history file.
var ErrPersistence = errors.New("store: persistence failure")
