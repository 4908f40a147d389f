package http

import (
	"net/http"

	"wattledger/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type createLoanReq struct {
	Amount   uint64 `json:"amount" validate:"required,gt=0"`
	TermDays uint16 `json:"term_days" validate:"required,gte=1,lte=3650"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	borrower, ok := accountID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid " + HeaderAccountID})
	}
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Create(c.Request().Context(), loan.CreateLoanInput{
		Borrower: borrower,
		Amount:   req.Amount,
		TermDays: req.TermDays,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	borrower := c.QueryParam("borrower_id")
	if !reHex32.MatchString(borrower) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "borrower_id must be 32-char lowercase hex"})
	}
	dtos, err := h.uc.ListByBorrower(c.Request().Context(), borrower)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

type repayReq struct {
	Amount uint64 `json:"amount" validate:"required,gt=0"`
}

func (h *LoanHandler) Repay(c echo.Context) error {
	payer, ok := accountID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid " + HeaderAccountID})
	}
	var req repayReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Repay(c.Request().Context(), loan.RepayInput{
		LoanID: c.Param("loan_id"),
		Payer:  payer,
		Amount: req.Amount,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
