package db

import (
	"github.com/studyspot/dataport/internal/types"
	"gorm.io/gorm"
)

// AutoMigrateAll creates or updates the destination schema. Order matches
// the parent→child direction of the foreign keys.
func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&types.Organization{},
		&types.Building{},
		&types.Spot{},
		&types.Hall{},
		&types.Photo{},
	)
}
