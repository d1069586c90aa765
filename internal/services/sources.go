package services

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/studyspot/dataport/internal/types"
)

// LoadSpaceRecords reads a spaces dump (JSON array, one element per legacy
// document) from disk.
func LoadSpaceRecords(path string) ([]types.SpaceRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read spaces dump %s: %w", path, err)
	}
	var records []types.SpaceRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse spaces dump %s: %w", path, err)
	}
	return records, nil
}

// LoadRoomRecords reads a rooms dump from disk.
func LoadRoomRecords(path string) ([]types.RoomRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rooms dump %s: %w", path, err)
	}
	var records []types.RoomRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse rooms dump %s: %w", path, err)
	}
	return records, nil
}
