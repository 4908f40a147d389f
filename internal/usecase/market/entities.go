package market

import (
	"time"
)

type CreateListingInput struct {
	Seller        string `json:"seller"`
	Amount        uint64 `json:"amount"`
	PricePerToken uint64 `json:"price_per_token"`
}

type PurchaseInput struct {
	ListingID string
	Buyer     string
	Amount    uint64
}

type ListingDTO struct {
	ListingID     string    `json:"listing_id"`
	Seller        string    `json:"seller"`
	Amount        uint64    `json:"amount"`
	PricePerToken uint64    `json:"price_per_token"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
}

type PurchaseDTO struct {
	ListingID string `json:"listing_id"`
	Buyer     string `json:"buyer"`
	Amount    uint64 `json:"amount"`
	// Price owed in the external payment channel; settlement happens there
	TotalPrice uint64 `json:"total_price"`
	Remaining  uint64 `json:"remaining"`
	Active     bool   `json:"active"`
}
