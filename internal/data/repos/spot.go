package repos

import (
	"context"

	"github.com/google/uuid"
	"github.com/studyspot/dataport/internal/platform/logger"
	"github.com/studyspot/dataport/internal/types"
	"gorm.io/gorm"
)

type SpotRepo interface {
	Create(ctx context.Context, tx *gorm.DB, spot *types.Spot) error
	GetByBuildingID(ctx context.Context, tx *gorm.DB, buildingID uuid.UUID) ([]*types.Spot, error)
	DeleteAll(ctx context.Context, tx *gorm.DB) error
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type spotRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSpotRepo(db *gorm.DB, baseLog *logger.Logger) SpotRepo {
	return &spotRepo{db: db, log: baseLog.With("repo", "SpotRepo")}
}

func (sr *spotRepo) Create(ctx context.Context, tx *gorm.DB, spot *types.Spot) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	return transaction.WithContext(ctx).Create(spot).Error
}

func (sr *spotRepo) GetByBuildingID(ctx context.Context, tx *gorm.DB, buildingID uuid.UUID) ([]*types.Spot, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var results []*types.Spot
	if err := transaction.WithContext(ctx).
		Where("building_id = ?", buildingID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (sr *spotRepo) DeleteAll(ctx context.Context, tx *gorm.DB) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	return transaction.WithContext(ctx).Where("1 = 1").Delete(&types.Spot{}).Error
}

func (sr *spotRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var count int64
	if err := transaction.WithContext(ctx).Model(&types.Spot{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
