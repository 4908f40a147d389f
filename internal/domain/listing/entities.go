package listing

import (
	"time"
)

type Listing struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	ListingID string `gorm:"column:listing_id;size:32;uniqueIndex:ux_listings_listing_id" json:"listing_id"`
	Seller    string `gorm:"column:seller;size:32;index:idx_listings_seller" json:"seller"`
	// Credit tokens still held in escrow for this listing
	Amount        uint64    `gorm:"column:amount" json:"amount"`
	PricePerToken uint64    `gorm:"column:price_per_token" json:"price_per_token"`
	Active        bool      `gorm:"column:active" json:"active"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Listing) TableName() string { return "listings" }
