package services

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/studyspot/dataport/internal/types"
	"gorm.io/datatypes"
)

// mapSpaceRecord shapes a legacy space document into a Spot row. Fields map
// verbatim; the optional type becomes a nullable column and the feature list
// is kept as a JSON array.
func mapSpaceRecord(rec types.SpaceRecord, buildingID uuid.UUID) *types.Spot {
	spot := &types.Spot{
		ID:          uuid.New(),
		BuildingID:  buildingID,
		SourceID:    rec.ID,
		Name:        rec.Name,
		Location:    rec.Location,
		Description: rec.Description,
		NoiseLevel:  rec.NoiseLevel,
		Capacity:    rec.Capacity,
		Features:    featuresJSON(rec.Features),
	}
	if rec.SpaceType != "" {
		spaceType := rec.SpaceType
		spot.SpaceType = &spaceType
	}
	return spot
}

// mapRoomRecord shapes a legacy room document into a Hall row.
func mapRoomRecord(rec types.RoomRecord, buildingID uuid.UUID) *types.Hall {
	return &types.Hall{
		ID:            uuid.New(),
		BuildingID:    buildingID,
		SourceID:      rec.ID,
		Name:          rec.Name,
		HasAVInputs:   equipmentFlag(rec.Equipment.AVInputs),
		HasPC:         equipmentFlag(rec.Equipment.PC),
		HasWhiteboard: equipmentFlag(rec.Equipment.Whiteboard),
		HasProjector:  equipmentFlag(rec.Equipment.Projector),
	}
}

// equipmentFlag converts the legacy yes/no strings. Only the exact literal
// "yes" counts; "Yes", "y", missing values and everything else are false.
func equipmentFlag(v string) bool {
	return v == "yes"
}

func featuresJSON(features []string) datatypes.JSON {
	if len(features) == 0 {
		return datatypes.JSON([]byte("[]"))
	}
	data, err := json.Marshal(features)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(data)
}
