package domain

import "errors"

var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicate         = errors.New("duplicate record")
	ErrInvalidTransition = errors.New("invalid flight status transition")
	ErrValidation        = errors.New("validation failed")
)
