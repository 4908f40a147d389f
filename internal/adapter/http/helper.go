package http

import (
	"errors"
	"net/http"
	"strings"

	listingDomain "wattledger/internal/domain/listing"
	loanDomain "wattledger/internal/domain/loan"
	sourceDomain "wattledger/internal/domain/source"
	"wattledger/internal/domain/token"
	"wattledger/pkg/checked"

	"github.com/labstack/echo/v4"
)

// Wallet presenting the call; set by the same header the idempotency
// middleware keys on.
const HeaderAccountID = "Ax-Account-Id"

func accountID(c echo.Context) (string, bool) {
	id := strings.TrimSpace(c.Request().Header.Get(HeaderAccountID))
	return id, reHex32.MatchString(id)
}

// errStatus maps each domain outcome to a distinct HTTP status so callers
// can decide between retrying and surfacing a final error.
func errStatus(err error) int {
	switch {
	case errors.Is(err, sourceDomain.ErrNotFound),
		errors.Is(err, loanDomain.ErrNotFound),
		errors.Is(err, listingDomain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, sourceDomain.ErrUnauthorized),
		errors.Is(err, loanDomain.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, sourceDomain.ErrAlreadyRegistered),
		errors.Is(err, listingDomain.ErrAlreadyListed),
		errors.Is(err, loanDomain.ErrNotActive),
		errors.Is(err, listingDomain.ErrNotActive),
		errors.Is(err, listingDomain.ErrInsufficientAmount),
		errors.Is(err, token.ErrInsufficientBalance):
		return http.StatusConflict
	case errors.Is(err, sourceDomain.ErrNotVerified),
		errors.Is(err, checked.ErrOverflow),
		errors.Is(err, checked.ErrUnderflow):
		return http.StatusUnprocessableEntity
	case errors.Is(err, sourceDomain.ErrInvalidInput),
		errors.Is(err, sourceDomain.ErrInvalidAmount),
		errors.Is(err, loanDomain.ErrInvalidAmount),
		errors.Is(err, loanDomain.ErrInvalidBorrower),
		errors.Is(err, listingDomain.ErrInvalidAmount),
		errors.Is(err, listingDomain.ErrInvalidSeller),
		errors.Is(err, token.ErrInvalidAmount):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func jsonError(c echo.Context, err error) error {
	code := errStatus(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		msg = "internal error"
	}
	return c.JSON(code, ErrorResponse{Error: msg})
}
