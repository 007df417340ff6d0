package domain

import (
	"errors"
	"time"
)

var (
	// ErrScheduleNotFound indicates that the payment schedule is not found.
	ErrScheduleNotFound = errors.New("payment schedule not found")
	// ErrScheduleNotCancellable indicates that the schedule left the SCHEDULED state.
	ErrScheduleNotCancellable = errors.New("payment schedule cannot be cancelled")
	// ErrScheduleAlreadyClaimed indicates that another scheduler tick claimed the schedule.
	ErrScheduleAlreadyClaimed = errors.New("payment schedule already claimed")
)

// ScheduleStatus describes the lifecycle state of a payment schedule.
type ScheduleStatus string

// All schedule statuses. COMPLETED, FAILED and CANCELLED are terminal.
const (
	ScheduleScheduled  ScheduleStatus = "SCHEDULED"
	ScheduleProcessing ScheduleStatus = "PROCESSING"
	ScheduleCompleted  ScheduleStatus = "COMPLETED"
	ScheduleFailed     ScheduleStatus = "FAILED"
	ScheduleCancelled  ScheduleStatus = "CANCELLED"
)

// PaymentSchedule is a deferred transfer request driven to completion by
// the scheduler. Status transitions are owned by the scheduler except
// for the owner-initiated SCHEDULED -> CANCELLED transition.
type PaymentSchedule struct {
	ID            int64               `json:"id"`
	Owner         string              `json:"owner"`
	Actor         string              `json:"actor"`
	Payload       CreatePaymentParams `json:"payload"`
	ScheduledFor  time.Time           `json:"scheduled_for"`
	Status        ScheduleStatus      `json:"status"`
	Attempts      int                 `json:"attempts"`
	MaxAttempts   int                 `json:"max_attempts"`
	LastError     string              `json:"last_error,omitempty"`
	LedgerEntryID *int64              `json:"ledger_entry_id,omitempty"`
	ProcessedAt   *time.Time          `json:"processed_at,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
}
