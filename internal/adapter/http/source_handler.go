package http

import (
	"net/http"

	"wattledger/internal/usecase/issuance"
	"wattledger/internal/usecase/source"

	"github.com/labstack/echo/v4"
)

type SourceHandler struct {
	uc       *source.Usecase
	readings *issuance.Usecase
}

func NewSourceHandler(uc *source.Usecase, readings *issuance.Usecase) *SourceHandler {
	return &SourceHandler{uc: uc, readings: readings}
}

type registerSourceReq struct {
	EnergyType string `json:"energy_type" validate:"required,max=32"`
	Capacity   uint64 `json:"capacity"`
}

func (h *SourceHandler) Register(c echo.Context) error {
	owner, ok := accountID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid " + HeaderAccountID})
	}
	var req registerSourceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Register(c.Request().Context(), source.RegisterInput{
		Owner:      owner,
		EnergyType: req.EnergyType,
		Capacity:   req.Capacity,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *SourceHandler) Verify(c echo.Context) error {
	caller, ok := accountID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid " + HeaderAccountID})
	}
	dto, err := h.uc.Verify(c.Request().Context(), source.VerifyInput{
		SourceID: c.Param("source_id"),
		Caller:   caller,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *SourceHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("source_id"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type submitReadingReq struct {
	EnergyAmount uint64 `json:"energy_amount" validate:"required,gt=0"`
}

func (h *SourceHandler) SubmitReading(c echo.Context) error {
	caller, ok := accountID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid " + HeaderAccountID})
	}
	var req submitReadingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.readings.SubmitReading(c.Request().Context(), issuance.SubmitReadingInput{
		SourceID:     c.Param("source_id"),
		Caller:       caller,
		EnergyAmount: req.EnergyAmount,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}
