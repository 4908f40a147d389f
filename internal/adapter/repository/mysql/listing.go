package mysql

import (
	"context"

	listingDomain "wattledger/internal/domain/listing"

	"gorm.io/gorm"
)

type ListingRepository struct{ db *gorm.DB }

func NewListingRepository(db *gorm.DB) *ListingRepository { return &ListingRepository{db: db} }

func (r *ListingRepository) Create(ctx context.Context, l *listingDomain.Listing) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *ListingRepository) Save(ctx context.Context, l *listingDomain.Listing) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *ListingRepository) GetByListingID(ctx context.Context, listingID string) (*listingDomain.Listing, error) {
	var out listingDomain.Listing
	res := r.db.WithContext(ctx).Where("listing_id = ?", listingID).First(&out)
	return &out, res.Error
}

func (r *ListingRepository) GetByListingIDForUpdate(ctx context.Context, listingID string) (*listingDomain.Listing, error) {
	var out listingDomain.Listing
	res := forUpdate(r.db.WithContext(ctx)).
		Where("listing_id = ?", listingID).
		First(&out)
	return &out, res.Error
}

func (r *ListingRepository) GetActiveBySeller(ctx context.Context, seller string) (*listingDomain.Listing, error) {
	var out listingDomain.Listing
	res := r.db.WithContext(ctx).
		Where("seller = ? AND active = ?", seller, true).
		Order("id DESC").
		First(&out)
	return &out, res.Error
}

func (r *ListingRepository) ListActive(ctx context.Context) ([]listingDomain.Listing, error) {
	var out []listingDomain.Listing
	res := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("id DESC").
		Find(&out)
	return out, res.Error
}
