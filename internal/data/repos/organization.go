package repos

import (
	"context"

	"github.com/studyspot/dataport/internal/platform/logger"
	"github.com/studyspot/dataport/internal/types"
	"gorm.io/gorm"
)

type OrganizationRepo interface {
	Create(ctx context.Context, tx *gorm.DB, org *types.Organization) error
	DeleteAll(ctx context.Context, tx *gorm.DB) error
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type organizationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOrganizationRepo(db *gorm.DB, baseLog *logger.Logger) OrganizationRepo {
	return &organizationRepo{db: db, log: baseLog.With("repo", "OrganizationRepo")}
}

func (or *organizationRepo) Create(ctx context.Context, tx *gorm.DB, org *types.Organization) error {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	return transaction.WithContext(ctx).Create(org).Error
}

func (or *organizationRepo) DeleteAll(ctx context.Context, tx *gorm.DB) error {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	return transaction.WithContext(ctx).Where("1 = 1").Delete(&types.Organization{}).Error
}

func (or *organizationRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	var count int64
	if err := transaction.WithContext(ctx).Model(&types.Organization{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
