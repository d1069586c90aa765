package types

import (
	"time"

	"github.com/google/uuid"
)

// Photo records one transcoded image in the photo bucket. Exactly one of
// SpotID/HallID is set; Position preserves the image's index in the source
// record's list and is baked into BucketKey.
type Photo struct {
	ID     uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SpotID *uuid.UUID `gorm:"type:uuid;index" json:"spot_id,omitempty"`
	HallID *uuid.UUID `gorm:"type:uuid;index" json:"hall_id,omitempty"`

	BucketKey string `gorm:"column:bucket_key;not null" json:"bucket_key"`
	URL       string `gorm:"column:url;not null" json:"url"`
	Position  int    `gorm:"not null" json:"position"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (Photo) TableName() string { return "photo" }
