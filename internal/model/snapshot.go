package model

// Snapshot versions. Exports and remote pushes have always used different values.
const (
	SnapshotVersionExport = "1.0"
	SnapshotVersionSync   = "2.0"
)

// Profile holds per-user display settings.
type Profile struct {
	Name           string `json:"name"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// Snapshot is the JSON document used for export/import and remote sync.
type Snapshot struct {
	Tasks          []Task `json:"tasks"`
	Name           string `json:"name,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
	ExportDate     string `json:"exportDate,omitempty"`
	LastSync       string `json:"lastSync,omitempty"`
	Version        string `json:"version"`
}
