package usecase

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrInvalidID      = errors.New("invalid id")
	ErrNotFound       = errors.New("resource not found")
	ErrConflict       = errors.New("resource already exists")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrDuplicateEmail = errors.New("email already registered")
)
