package repos

import (
	"context"

	"github.com/google/uuid"
	"github.com/studyspot/dataport/internal/platform/logger"
	"github.com/studyspot/dataport/internal/types"
	"gorm.io/gorm"
)

type HallRepo interface {
	Create(ctx context.Context, tx *gorm.DB, hall *types.Hall) error
	GetByBuildingID(ctx context.Context, tx *gorm.DB, buildingID uuid.UUID) ([]*types.Hall, error)
	DeleteAll(ctx context.Context, tx *gorm.DB) error
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type hallRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewHallRepo(db *gorm.DB, baseLog *logger.Logger) HallRepo {
	return &hallRepo{db: db, log: baseLog.With("repo", "HallRepo")}
}

func (hr *hallRepo) Create(ctx context.Context, tx *gorm.DB, hall *types.Hall) error {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}
	return transaction.WithContext(ctx).Create(hall).Error
}

func (hr *hallRepo) GetByBuildingID(ctx context.Context, tx *gorm.DB, buildingID uuid.UUID) ([]*types.Hall, error) {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}
	var results []*types.Hall
	if err := transaction.WithContext(ctx).
		Where("building_id = ?", buildingID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (hr *hallRepo) DeleteAll(ctx context.Context, tx *gorm.DB) error {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}
	return transaction.WithContext(ctx).Where("1 = 1").Delete(&types.Hall{}).Error
}

func (hr *hallRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}
	var count int64
	if err := transaction.WithContext(ctx).Model(&types.Hall{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
