package config

import "errors"

// ErrInvalidConfig indicates a setting that fails to parse or
// validate. This is fatal at startup.
var ErrInvalidConfig = errors.New("config: invalid configuration")
