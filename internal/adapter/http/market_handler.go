package http

import (
	"net/http"

	"wattledger/internal/usecase/market"

	"github.com/labstack/echo/v4"
)

type MarketHandler struct{ uc *market.Usecase }

func NewMarketHandler(uc *market.Usecase) *MarketHandler { return &MarketHandler{uc: uc} }

type createListingReq struct {
	Amount        uint64 `json:"amount" validate:"required,gt=0"`
	PricePerToken uint64 `json:"price_per_token" validate:"gte=0"`
}

func (h *MarketHandler) CreateListing(c echo.Context) error {
	seller, ok := accountID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid " + HeaderAccountID})
	}
	var req createListingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.CreateListing(c.Request().Context(), market.CreateListingInput{
		Seller:        seller,
		Amount:        req.Amount,
		PricePerToken: req.PricePerToken,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *MarketHandler) GetListing(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("listing_id"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *MarketHandler) ListListings(c echo.Context) error {
	dtos, err := h.uc.ListActive(c.Request().Context())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

type purchaseReq struct {
	Amount uint64 `json:"amount" validate:"required,gt=0"`
}

func (h *MarketHandler) Purchase(c echo.Context) error {
	buyer, ok := accountID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid " + HeaderAccountID})
	}
	var req purchaseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Purchase(c.Request().Context(), market.PurchaseInput{
		ListingID: c.Param("listing_id"),
		Buyer:     buyer,
		Amount:    req.Amount,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
