package repos

import (
	"context"

	"github.com/google/uuid"
	"github.com/studyspot/dataport/internal/platform/logger"
	"github.com/studyspot/dataport/internal/types"
	"gorm.io/gorm"
)

type PhotoRepo interface {
	Create(ctx context.Context, tx *gorm.DB, photo *types.Photo) error
	ListBySpotID(ctx context.Context, tx *gorm.DB, spotID uuid.UUID) ([]*types.Photo, error)
	ListByHallID(ctx context.Context, tx *gorm.DB, hallID uuid.UUID) ([]*types.Photo, error)
	DeleteAll(ctx context.Context, tx *gorm.DB) error
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type photoRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPhotoRepo(db *gorm.DB, baseLog *logger.Logger) PhotoRepo {
	return &photoRepo{db: db, log: baseLog.With("repo", "PhotoRepo")}
}

func (pr *photoRepo) Create(ctx context.Context, tx *gorm.DB, photo *types.Photo) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	return transaction.WithContext(ctx).Create(photo).Error
}

func (pr *photoRepo) ListBySpotID(ctx context.Context, tx *gorm.DB, spotID uuid.UUID) ([]*types.Photo, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var results []*types.Photo
	if err := transaction.WithContext(ctx).
		Where("spot_id = ?", spotID).
		Order("position ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *photoRepo) ListByHallID(ctx context.Context, tx *gorm.DB, hallID uuid.UUID) ([]*types.Photo, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var results []*types.Photo
	if err := transaction.WithContext(ctx).
		Where("hall_id = ?", hallID).
		Order("position ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *photoRepo) DeleteAll(ctx context.Context, tx *gorm.DB) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	return transaction.WithContext(ctx).Where("1 = 1").Delete(&types.Photo{}).Error
}

func (pr *photoRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var count int64
	if err := transaction.WithContext(ctx).Model(&types.Photo{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
