package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Spot is a bookable/droppable study space, derived 1:1 from a SpaceRecord.
type Spot struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	BuildingID uuid.UUID `gorm:"type:uuid;not null;index" json:"building_id"`

	// SourceID is the document id the record carried in the legacy store,
	// kept for auditing the migration.
	SourceID string `gorm:"column:source_id;index" json:"source_id"`

	Name        string         `gorm:"not null" json:"name"`
	SpaceType   *string        `gorm:"column:space_type" json:"space_type,omitempty"`
	Location    string         `json:"location"`
	Description string         `json:"description"`
	NoiseLevel  string         `gorm:"column:noise_level" json:"noise_level"`
	Capacity    *int           `json:"capacity,omitempty"`
	Features    datatypes.JSON `json:"features"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Spot) TableName() string { return "spot" }
