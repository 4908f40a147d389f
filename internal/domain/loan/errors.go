package loan

import "errors"

var (
	ErrNotFound      = errors.New("loan not found")
	ErrUnauthorized  = errors.New("caller is not the borrower of this loan")
	ErrNotActive     = errors.New("loan is not active")
	ErrInvalidAmount   = errors.New("amount must be greater than zero")
	ErrInvalidBorrower = errors.New("borrower must be a 32-char wallet id")
)
