package config

import "errors"

// ErrInvalidConfig wraps all validation failures.
var ErrInvalidConfig = errors.New("config: invalid configuration")
