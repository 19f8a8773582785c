package apperrors

import "errors"

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrArityMismatch = errors.New("arity mismatch")
	ErrNotFound      = errors.New("not found")
)
