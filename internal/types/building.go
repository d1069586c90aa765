package types

import (
	"time"

	"github.com/google/uuid"
)

// Building holds one row per distinct canonical building name across both
// source datasets. Name is the dedup key, so it carries a unique index.
type Building struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index" json:"organization_id"`
	Name           string    `gorm:"uniqueIndex;not null" json:"name"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Building) TableName() string { return "building" }
