package state

import "errors"

var (
	ErrNotFound        = errors.New("router was not found")
	ErrNameConflict    = errors.New("name is taken")
	ErrMalformed       = errors.New("malformed topology")
	ErrInvalidDistance = errors.New("distance must be a non-negative integer")
	ErrInvalidName     = errors.New("invalid name")
)
