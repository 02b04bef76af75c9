package usecase

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrNotFound             = errors.New("resource not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrBettingClosed        = errors.New("betting window is closed")
	ErrUnresolvedDriver     = errors.New("entry has an unresolved driver")
	ErrInvalidConfiguration = errors.New("invalid scoring configuration")
)
