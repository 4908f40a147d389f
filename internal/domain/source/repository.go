package source

import "context"

type Repository interface {
	Create(ctx context.Context, s *EnergySource) error
	GetBySourceID(ctx context.Context, sourceID string) (*EnergySource, error)
	// Row-locked read for read-modify-write sequences inside a transaction.
	GetBySourceIDForUpdate(ctx context.Context, sourceID string) (*EnergySource, error)
	GetByOwner(ctx context.Context, owner string) (*EnergySource, error)
	Save(ctx context.Context, s *EnergySource) error
}
