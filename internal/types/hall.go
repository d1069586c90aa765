package types

import (
	"time"

	"github.com/google/uuid"
)

// Hall is a lecture room, derived 1:1 from a RoomRecord. The equipment flags
// come from the source's yes/no strings (exact "yes" means true).
type Hall struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	BuildingID uuid.UUID `gorm:"type:uuid;not null;index" json:"building_id"`

	SourceID string `gorm:"column:source_id;index" json:"source_id"`
	Name     string `gorm:"not null" json:"name"`

	HasAVInputs   bool `gorm:"column:has_av_inputs;not null;default:false" json:"has_av_inputs"`
	HasPC         bool `gorm:"column:has_pc;not null;default:false" json:"has_pc"`
	HasWhiteboard bool `gorm:"column:has_whiteboard;not null;default:false" json:"has_whiteboard"`
	HasProjector  bool `gorm:"column:has_projector;not null;default:false" json:"has_projector"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Hall) TableName() string { return "hall" }
