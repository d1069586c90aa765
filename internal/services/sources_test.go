package services

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSpaceRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spaces.json")
	payload := `[
  {
    "id": "abc123",
    "name": "Davis 2nd Floor Commons",
    "building": "Davis",
    "type": "commons",
    "location": "2nd floor",
    "images": ["http://img/0.jpg"],
    "features": ["outlets"],
    "noise_level": "moderate",
    "capacity": 40,
    "description": "open tables"
  },
  {
    "id": "def456",
    "name": "Union Quiet Room",
    "building": "Student union",
    "images": []
  }
]`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	records, err := LoadSpaceRecords(path)
	if err != nil {
		t.Fatalf("LoadSpaceRecords: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records: want=2 got=%d", len(records))
	}
	first := records[0]
	if first.ID != "abc123" || first.Building != "Davis" || first.SpaceType != "commons" {
		t.Fatalf("first record not parsed: %+v", first)
	}
	if first.Capacity == nil || *first.Capacity != 40 {
		t.Fatalf("capacity: want=40 got=%v", first.Capacity)
	}
	second := records[1]
	if second.SpaceType != "" || second.Capacity != nil {
		t.Fatalf("optional fields must stay zero when absent: %+v", second)
	}
}

func TestLoadRoomRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rooms.json")
	payload := `[
  {
    "id": "room-215",
    "name": "Phillips 215",
    "building": "Phillips",
    "images": ["http://img/a.jpg", "http://img/b.jpg"],
    "equipment": {"av_inputs": "yes", "pc": "no", "whiteboard": "yes", "projector": "no"}
  }
]`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	records, err := LoadRoomRecords(path)
	if err != nil {
		t.Fatalf("LoadRoomRecords: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records: want=1 got=%d", len(records))
	}
	rec := records[0]
	if rec.Equipment.AVInputs != "yes" || rec.Equipment.PC != "no" {
		t.Fatalf("equipment block not parsed: %+v", rec.Equipment)
	}
	if len(rec.Images) != 2 {
		t.Fatalf("images: want=2 got=%d", len(rec.Images))
	}
}

func TestLoadSpaceRecordsMissingFile(t *testing.T) {
	if _, err := LoadSpaceRecords(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("LoadSpaceRecords: expected error for missing file")
	}
}

func TestLoadRoomRecordsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rooms.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadRoomRecords(path); err == nil {
		t.Fatalf("LoadRoomRecords: expected error for malformed JSON")
	}
}
