package source

import (
	"context"
	"errors"
	"time"

	domain "wattledger/internal/domain/source"
	"wattledger/internal/domain/uow"
	"wattledger/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	repo      domain.Repository
	verifiers VerifierAuthority
	uow       uow.UnitOfWork
}

func NewUsecase(r domain.Repository, verifiers VerifierAuthority, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, verifiers: verifiers, uow: tx}
}

// Register creates an energy source for the owner. One source per owner:
// a second registration is rejected before it reaches the unique index.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*SourceDTO, error) {
	if len(in.Owner) != 32 || in.EnergyType == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(in.EnergyType) > domain.MaxEnergyTypeLen {
		return nil, domain.ErrInvalidInput
	}

	_, err := u.repo.GetByOwner(ctx, in.Owner)
	switch {
	case err == nil:
		return nil, domain.ErrAlreadyRegistered
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	s := &domain.EnergySource{
		SourceID:            id.NewID32(),
		Owner:               in.Owner,
		EnergyType:          in.EnergyType,
		Capacity:            in.Capacity,
		Verified:            false,
		TotalEnergyProduced: 0,
	}
	if err := u.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return toDTO(s), nil
}

// Verify flips the source to verified. Monotone: once true it never
// reverts, and verifying twice is a no-op.
func (u *Usecase) Verify(ctx context.Context, in VerifyInput) (*SourceDTO, error) {
	if !u.verifiers.CanVerify(ctx, in.Caller, in.SourceID) {
		return nil, domain.ErrUnauthorized
	}

	var dto *SourceDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		s, err := r.Sources.GetBySourceIDForUpdate(ctx, in.SourceID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		if !s.Verified {
			s.Verified = true
			s.UpdatedAt = time.Now().UTC()
			if err := r.Sources.Save(ctx, s); err != nil {
				return err
			}
		}
		dto = toDTO(s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, sourceID string) (*SourceDTO, error) {
	s, err := u.repo.GetBySourceID(ctx, sourceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toDTO(s), nil
}

func toDTO(s *domain.EnergySource) *SourceDTO {
	return &SourceDTO{
		SourceID:            s.SourceID,
		Owner:               s.Owner,
		EnergyType:          s.EnergyType,
		Capacity:            s.Capacity,
		Verified:            s.Verified,
		TotalEnergyProduced: s.TotalEnergyProduced,
		CreatedAt:           s.CreatedAt,
	}
}
