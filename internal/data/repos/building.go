package repos

import (
	"context"

	"github.com/studyspot/dataport/internal/platform/logger"
	"github.com/studyspot/dataport/internal/types"
	"gorm.io/gorm"
)

type BuildingRepo interface {
	Create(ctx context.Context, tx *gorm.DB, building *types.Building) error
	GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Building, error)
	DeleteAll(ctx context.Context, tx *gorm.DB) error
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type buildingRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBuildingRepo(db *gorm.DB, baseLog *logger.Logger) BuildingRepo {
	return &buildingRepo{db: db, log: baseLog.With("repo", "BuildingRepo")}
}

func (br *buildingRepo) Create(ctx context.Context, tx *gorm.DB, building *types.Building) error {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}
	return transaction.WithContext(ctx).Create(building).Error
}

func (br *buildingRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Building, error) {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}
	var result types.Building
	if err := transaction.WithContext(ctx).
		Where("name = ?", name).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (br *buildingRepo) DeleteAll(ctx context.Context, tx *gorm.DB) error {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}
	return transaction.WithContext(ctx).Where("1 = 1").Delete(&types.Building{}).Error
}

func (br *buildingRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}
	var count int64
	if err := transaction.WithContext(ctx).Model(&types.Building{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
