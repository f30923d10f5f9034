package domain

import "errors"

// ErrInvalid marks a validation failure: malformed or missing input,
// detected before any store mutation.
var ErrInvalid = errors.New("invalid input")

// ErrMissing marks a requested entity that does not exist.
var ErrMissing = errors.New("missing")
