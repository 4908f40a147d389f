package sourcemock

import (
	"context"
	"errors"

	domain "wattledger/internal/domain/source"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("sourcemock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
// Fill in the function fields a test needs; unfilled getters fail loudly.
type Repo struct {
	CreateFn                 func(ctx context.Context, s *domain.EnergySource) error
	GetBySourceIDFn          func(ctx context.Context, sourceID string) (*domain.EnergySource, error)
	GetBySourceIDForUpdateFn func(ctx context.Context, sourceID string) (*domain.EnergySource, error)
	GetByOwnerFn             func(ctx context.Context, owner string) (*domain.EnergySource, error)
	SaveFn                   func(ctx context.Context, s *domain.EnergySource) error
}

func (m *Repo) Create(ctx context.Context, s *domain.EnergySource) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}

func (m *Repo) GetBySourceID(ctx context.Context, sourceID string) (*domain.EnergySource, error) {
	if m.GetBySourceIDFn != nil {
		return m.GetBySourceIDFn(ctx, sourceID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetBySourceIDForUpdate(ctx context.Context, sourceID string) (*domain.EnergySource, error) {
	if m.GetBySourceIDForUpdateFn != nil {
		return m.GetBySourceIDForUpdateFn(ctx, sourceID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByOwner(ctx context.Context, owner string) (*domain.EnergySource, error) {
	if m.GetByOwnerFn != nil {
		return m.GetByOwnerFn(ctx, owner)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, s *domain.EnergySource) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, s)
	}
	return nil
}
