package http

import (
	"net/http"

	"wattledger/internal/domain/token"

	"github.com/labstack/echo/v4"
)

type AccountHandler struct{ ledger token.Ledger }

func NewAccountHandler(l token.Ledger) *AccountHandler { return &AccountHandler{ledger: l} }

func (h *AccountHandler) Balance(c echo.Context) error {
	account := c.Param("account_id")
	if !reHex32.MatchString(account) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "account_id must be 32-char lowercase hex"})
	}
	amount, err := h.ledger.BalanceOf(c.Request().Context(), token.UserAccount(account))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"account": account,
		"balance": amount,
	})
}
