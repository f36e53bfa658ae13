package domain

import "errors"

// Domain errors
var (
	ErrUnknownEngine = errors.New("unknown pdf engine")
)
