package source

import "errors"

var (
	ErrNotFound          = errors.New("energy source not found")
	ErrAlreadyRegistered = errors.New("owner already has a registered energy source")
	ErrUnauthorized      = errors.New("caller is not authorized for this energy source")
	ErrNotVerified       = errors.New("energy source not verified")
	ErrInvalidInput      = errors.New("invalid energy source input")
	ErrInvalidAmount     = errors.New("energy amount must be greater than zero")
)
