package mysql

import (
	"context"

	sourceDomain "wattledger/internal/domain/source"

	"gorm.io/gorm"
)

type SourceRepository struct{ db *gorm.DB }

func NewSourceRepository(db *gorm.DB) *SourceRepository { return &SourceRepository{db: db} }

func (r *SourceRepository) Create(ctx context.Context, s *sourceDomain.EnergySource) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SourceRepository) Save(ctx context.Context, s *sourceDomain.EnergySource) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *SourceRepository) GetBySourceID(ctx context.Context, sourceID string) (*sourceDomain.EnergySource, error) {
	var out sourceDomain.EnergySource
	res := r.db.WithContext(ctx).Where("source_id = ?", sourceID).First(&out)
	return &out, res.Error
}

func (r *SourceRepository) GetBySourceIDForUpdate(ctx context.Context, sourceID string) (*sourceDomain.EnergySource, error) {
	var out sourceDomain.EnergySource
	res := forUpdate(r.db.WithContext(ctx)).
		Where("source_id = ?", sourceID).
		First(&out)
	return &out, res.Error
}

func (r *SourceRepository) GetByOwner(ctx context.Context, owner string) (*sourceDomain.EnergySource, error) {
	var out sourceDomain.EnergySource
	res := r.db.WithContext(ctx).Where("owner = ?", owner).First(&out)
	return &out, res.Error
}
