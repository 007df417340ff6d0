package domain

import (
	"encoding/json"
	"errors"
	"time"
)

var (
	// ErrIdempotencyConflict indicates that the key was already used with a different payload.
	ErrIdempotencyConflict = errors.New("idempotency key was already used with a different payload")
	// ErrIdempotencyInProgress indicates that an earlier request with the key is still processing.
	ErrIdempotencyInProgress = errors.New("request with this idempotency key is still processing")
	// ErrIdempotencyRecordNotFound indicates that the record is not found.
	ErrIdempotencyRecordNotFound = errors.New("idempotency record not found")
)

// IdempotencyStatus describes the lifecycle state of an idempotency record.
type IdempotencyStatus string

// All idempotency record statuses.
const (
	IdempotencyProcessing IdempotencyStatus = "PROCESSING"
	IdempotencyCompleted  IdempotencyStatus = "COMPLETED"
	IdempotencyFailed     IdempotencyStatus = "FAILED"
)

// IdempotencyRecord maps (key, endpoint, scope) to the fingerprint and stored
// outcome of a mutating request. The triple is unique: a second request with
// the same triple and a different fingerprint is a conflict, not a replay.
type IdempotencyRecord struct {
	ID             int64             `json:"id"`
	Key            string            `json:"key"`
	Endpoint       string            `json:"endpoint"`
	Scope          string            `json:"scope"`
	RequestHash    string            `json:"request_hash"`
	Status         IdempotencyStatus `json:"status"`
	ResponseStatus int               `json:"response_status,omitempty"`
	ResponseBody   json.RawMessage   `json:"response_body,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}
