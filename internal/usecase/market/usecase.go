package market

import (
	"context"
	"errors"
	"time"

	domain "wattledger/internal/domain/listing"
	"wattledger/internal/domain/token"
	"wattledger/internal/domain/uow"
	"wattledger/pkg/checked"
	"wattledger/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	repo domain.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(r domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: tx}
}

// CreateListing escrows the seller's credit and opens the listing in one
// transaction. If the escrow transfer fails no listing exists.
func (u *Usecase) CreateListing(ctx context.Context, in CreateListingInput) (*ListingDTO, error) {
	if len(in.Seller) != 32 {
		return nil, domain.ErrInvalidSeller
	}
	if in.Amount == 0 {
		return nil, domain.ErrInvalidAmount
	}

	var dto *ListingDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		// One active listing per seller.
		_, err := r.Listings.GetActiveBySeller(ctx, in.Seller)
		switch {
		case err == nil:
			return domain.ErrAlreadyListed
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		listingID := id.NewID32()
		if err := r.Ledger.Transfer(ctx,
			token.UserAccount(in.Seller), token.ListingEscrow(listingID), in.Amount); err != nil {
			return err
		}

		l := &domain.Listing{
			ListingID:     listingID,
			Seller:        in.Seller,
			Amount:        in.Amount,
			PricePerToken: in.PricePerToken,
			Active:        true,
		}
		if err := r.Listings.Create(ctx, l); err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Purchase moves tokens from listing escrow to the buyer. The active flag
// is re-derived from the remaining stock, never just toggled.
func (u *Usecase) Purchase(ctx context.Context, in PurchaseInput) (*PurchaseDTO, error) {
	if in.Amount == 0 {
		return nil, domain.ErrInvalidAmount
	}

	var dto *PurchaseDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Listings.GetByListingIDForUpdate(ctx, in.ListingID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		if !l.Active {
			return domain.ErrNotActive
		}
		if in.Amount > l.Amount {
			return domain.ErrInsufficientAmount
		}

		totalPrice, err := checked.MulU64(in.Amount, l.PricePerToken)
		if err != nil {
			return err
		}

		if err := r.Ledger.Transfer(ctx,
			token.ListingEscrow(l.ListingID), token.UserAccount(in.Buyer), in.Amount); err != nil {
			return err
		}

		newAmount, err := checked.SubU64(l.Amount, in.Amount)
		if err != nil {
			return err
		}
		l.Amount = newAmount
		l.Active = l.Amount > 0
		l.UpdatedAt = time.Now().UTC()
		if err := r.Listings.Save(ctx, l); err != nil {
			return err
		}

		dto = &PurchaseDTO{
			ListingID:  l.ListingID,
			Buyer:      in.Buyer,
			Amount:     in.Amount,
			TotalPrice: totalPrice,
			Remaining:  l.Amount,
			Active:     l.Active,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, listingID string) (*ListingDTO, error) {
	l, err := u.repo.GetByListingID(ctx, listingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toDTO(l), nil
}

func (u *Usecase) ListActive(ctx context.Context) ([]ListingDTO, error) {
	ls, err := u.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ListingDTO, 0, len(ls))
	for i := range ls {
		out = append(out, *toDTO(&ls[i]))
	}
	return out, nil
}

func toDTO(l *domain.Listing) *ListingDTO {
	return &ListingDTO{
		ListingID:     l.ListingID,
		Seller:        l.Seller,
		Amount:        l.Amount,
		PricePerToken: l.PricePerToken,
		Active:        l.Active,
		CreatedAt:     l.CreatedAt,
	}
}
