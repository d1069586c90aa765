package types

// Source record shapes as they appear in the JSON dumps produced by the
// exporter (one array element per legacy document, id merged in). These are
// read-only inputs; they never touch the database directly.

// SpaceRecord is one element of the spaces dump.
type SpaceRecord struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Building    string   `json:"building"`
	SpaceType   string   `json:"type,omitempty"`
	Location    string   `json:"location"`
	Images      []string `json:"images"`
	Features    []string `json:"features"`
	NoiseLevel  string   `json:"noise_level"`
	Capacity    *int     `json:"capacity,omitempty"`
	Description string   `json:"description"`
}

// RoomRecord is one element of the rooms dump.
type RoomRecord struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Building  string        `json:"building"`
	Images    []string      `json:"images"`
	Equipment RoomEquipment `json:"equipment"`
}

// RoomEquipment is the embedded capability block on a RoomRecord. The legacy
// store kept these as free-form yes/no strings rather than booleans.
type RoomEquipment struct {
	AVInputs   string `json:"av_inputs"`
	PC         string `json:"pc"`
	Whiteboard string `json:"whiteboard"`
	Projector  string `json:"projector"`
}
