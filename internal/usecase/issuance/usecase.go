package issuance

import (
	"context"
	"errors"
	"time"

	domain "wattledger/internal/domain/source"
	"wattledger/internal/domain/token"
	"wattledger/internal/domain/uow"
	"wattledger/pkg/checked"

	"gorm.io/gorm"
)

type Usecase struct {
	uow uow.UnitOfWork
}

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

// SubmitReading records a verified production reading and mints credit 1:1
// to the owner. The total-produced update and the mint commit together or
// not at all.
func (u *Usecase) SubmitReading(ctx context.Context, in SubmitReadingInput) (*ReadingDTO, error) {
	if in.EnergyAmount == 0 {
		return nil, domain.ErrInvalidAmount
	}

	var dto *ReadingDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		s, err := r.Sources.GetBySourceIDForUpdate(ctx, in.SourceID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		if s.Owner != in.Caller {
			return domain.ErrUnauthorized
		}
		if !s.Verified {
			return domain.ErrNotVerified
		}

		newTotal, err := checked.AddU64(s.TotalEnergyProduced, in.EnergyAmount)
		if err != nil {
			return err
		}
		s.TotalEnergyProduced = newTotal
		s.UpdatedAt = time.Now().UTC()
		if err := r.Sources.Save(ctx, s); err != nil {
			return err
		}

		// 1:1 policy: one credit token per unit of verified energy.
		if err := r.Ledger.Mint(ctx, token.UserAccount(s.Owner), in.EnergyAmount); err != nil {
			return err
		}

		dto = &ReadingDTO{
			SourceID:            s.SourceID,
			MintedAmount:        in.EnergyAmount,
			TotalEnergyProduced: newTotal,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}
