package model

import (
	"encoding/json"
	"time"
)

// CacheEntry is the stored envelope for a single provider payload.
// Entries are immutable once written; an overwrite at the same key is a
// new logical entry and the last completed write wins.
type CacheEntry struct {
	Keyword   string          `json:"keyword"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
	Metadata  map[string]any  `json:"metadata,omitempty"`
}

// Valid reports whether the entry has the shape every cache reader
// requires: a payload and a write timestamp.
func (e *CacheEntry) Valid() bool {
	return len(e.Data) > 0 && !e.Timestamp.IsZero()
}
