package model

import (
	"encoding/json"
	"time"
)

// IdempotencyKey identifies one idempotent request per endpoint path.
type IdempotencyKey struct {
	Resource string
	Key      string
}

type IdempotencyStatus string

const (
	IdempotencyProcessing IdempotencyStatus = "processing"
	IdempotencyCompleted  IdempotencyStatus = "completed"
)

// IdempotencyEntry is the cached record for a request key: its lifecycle
// status, the full-content hash of the request body for conflict detection,
// and the response payload to replay once completed.
type IdempotencyEntry struct {
	Status          IdempotencyStatus `json:"status"`
	RequestBodyHash string            `json:"request_body_hash"`
	Response        json.RawMessage   `json:"response,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}
