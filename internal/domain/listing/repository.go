package listing

import "context"

type Repository interface {
	Create(ctx context.Context, l *Listing) error
	GetByListingID(ctx context.Context, listingID string) (*Listing, error)
	// Row-locked read for the purchase read-modify-write sequence.
	GetByListingIDForUpdate(ctx context.Context, listingID string) (*Listing, error)
	GetActiveBySeller(ctx context.Context, seller string) (*Listing, error)
	ListActive(ctx context.Context) ([]Listing, error)
	Save(ctx context.Context, l *Listing) error
}
