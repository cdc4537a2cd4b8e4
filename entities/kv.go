package entities

import "time"

// KVEntry is one JSON blob under a fixed key, scoped per student uid.
// This mirrors the localStorage model of the web client: no schema on the
// value column beyond "best-effort JSON text".
type KVEntry struct {
	Key       string `gorm:"primaryKey" json:"key"`
	Value     string `json:"value"`
	UpdatedAt time.Time
}
