package listingmock

import (
	"context"
	"errors"

	domain "wattledger/internal/domain/listing"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("listingmock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                  func(ctx context.Context, l *domain.Listing) error
	GetByListingIDFn          func(ctx context.Context, listingID string) (*domain.Listing, error)
	GetByListingIDForUpdateFn func(ctx context.Context, listingID string) (*domain.Listing, error)
	GetActiveBySellerFn       func(ctx context.Context, seller string) (*domain.Listing, error)
	ListActiveFn              func(ctx context.Context) ([]domain.Listing, error)
	SaveFn                    func(ctx context.Context, l *domain.Listing) error
}

func (m *Repo) Create(ctx context.Context, l *domain.Listing) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByListingID(ctx context.Context, listingID string) (*domain.Listing, error) {
	if m.GetByListingIDFn != nil {
		return m.GetByListingIDFn(ctx, listingID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByListingIDForUpdate(ctx context.Context, listingID string) (*domain.Listing, error) {
	if m.GetByListingIDForUpdateFn != nil {
		return m.GetByListingIDForUpdateFn(ctx, listingID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetActiveBySeller(ctx context.Context, seller string) (*domain.Listing, error) {
	if m.GetActiveBySellerFn != nil {
		return m.GetActiveBySellerFn(ctx, seller)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListActive(ctx context.Context) ([]domain.Listing, error) {
	if m.ListActiveFn != nil {
		return m.ListActiveFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, l *domain.Listing) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}
