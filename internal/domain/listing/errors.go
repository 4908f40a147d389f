package listing

import "errors"

var (
	ErrNotFound           = errors.New("listing not found")
	ErrNotActive          = errors.New("listing is not active")
	ErrInsufficientAmount = errors.New("listing does not hold enough tokens")
	ErrAlreadyListed      = errors.New("seller already has an active listing")
	ErrInvalidAmount      = errors.New("amount must be greater than zero")
	ErrInvalidSeller      = errors.New("seller must be a 32-char wallet id")
)
