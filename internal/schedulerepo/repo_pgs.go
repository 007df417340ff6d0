// Package schedulerepo manages repository layer of payment schedules.
package schedulerepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/altx-finance/ledger-engine/internal/domain"
	"github.com/altx-finance/ledger-engine/pkg/dbpkg"
	"github.com/altx-finance/ledger-engine/pkg/errorspkg"

	"github.com/rs/zerolog"
)

// RepoPGS facilitates payment schedule repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns schedule RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const scheduleColumns = `id, owner, actor, payload, scheduled_for, status, attempts, max_attempts, COALESCE(last_error, ''), ledger_entry_id, processed_at, created_at`

const createQuery = `
INSERT INTO
    payment_schedules (owner, actor, payload, scheduled_for, status, attempts, max_attempts)
VALUES
    ($1, $2, $3, $4, 'SCHEDULED', 0, $5)
RETURNING ` + scheduleColumns

// Create persists a deferred payment request.
func (r *RepoPGS) Create(ctx context.Context, owner, actor string, payload domain.CreatePaymentParams, scheduledFor time.Time, maxAttempts int) (domain.PaymentSchedule, error) {
	l := zerolog.Ctx(ctx)

	body, err := json.Marshal(payload)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.PaymentSchedule{}, errorspkg.ErrInternal
	}

	row := r.db.QueryRowContext(ctx, createQuery, owner, actor, body, scheduledFor, maxAttempts)

	s, err := scanSchedule(row)
	if err != nil {
		l.Error().Err(err).Send()
		return s, errorspkg.ErrInternal
	}

	return s, nil
}

const getQuery = `
SELECT ` + scheduleColumns + `
FROM payment_schedules
WHERE id = $1 AND owner = $2
`

// Get returns the owner's schedule with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64, owner string) (domain.PaymentSchedule, error) {
	l := zerolog.Ctx(ctx)

	s, err := scanSchedule(r.db.QueryRowContext(ctx, getQuery, id, owner))
	if err != nil {
		if err == sql.ErrNoRows {
			return s, domain.ErrScheduleNotFound
		}

		l.Error().Err(err).Send()

		return s, errorspkg.ErrInternal
	}

	return s, nil
}

const listByOwnerQuery = `
SELECT ` + scheduleColumns + `
FROM payment_schedules
WHERE owner = $1
ORDER BY scheduled_for DESC
`

// ListByOwner returns the owner's schedules, latest first.
func (r *RepoPGS) ListByOwner(ctx context.Context, owner string) ([]domain.PaymentSchedule, error) {
	return r.querySchedules(ctx, listByOwnerQuery, owner)
}

const listDueQuery = `
SELECT ` + scheduleColumns + `
FROM payment_schedules
WHERE status = 'SCHEDULED' AND scheduled_for <= $1
ORDER BY scheduled_for ASC
LIMIT $2
`

// ListDue returns a bounded batch of due schedules in ascending due-time order.
func (r *RepoPGS) ListDue(ctx context.Context, now time.Time, limit int) ([]domain.PaymentSchedule, error) {
	return r.querySchedules(ctx, listDueQuery, now, limit)
}

const claimQuery = `
UPDATE payment_schedules
SET status = 'PROCESSING'
WHERE id = $1 AND status = 'SCHEDULED'
RETURNING ` + scheduleColumns

// Claim transitions the schedule SCHEDULED -> PROCESSING with the same
// compare-and-swap discipline used for account balances: a zero-row update
// means another tick or instance claimed the row first.
func (r *RepoPGS) Claim(ctx context.Context, id int64) (domain.PaymentSchedule, error) {
	l := zerolog.Ctx(ctx)

	s, err := scanSchedule(r.db.QueryRowContext(ctx, claimQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return s, domain.ErrScheduleAlreadyClaimed
		}

		l.Error().Err(err).Send()

		return s, errorspkg.ErrInternal
	}

	return s, nil
}

const markCompletedQuery = `
UPDATE payment_schedules
SET status = 'COMPLETED', ledger_entry_id = $1, processed_at = now(), last_error = NULL
WHERE id = $2
RETURNING ` + scheduleColumns

// MarkCompleted finalizes a successfully executed schedule.
func (r *RepoPGS) MarkCompleted(ctx context.Context, id, ledgerEntryID int64) (domain.PaymentSchedule, error) {
	l := zerolog.Ctx(ctx)

	s, err := scanSchedule(r.db.QueryRowContext(ctx, markCompletedQuery, ledgerEntryID, id))
	if err != nil {
		l.Error().Err(err).Send()
		return s, errorspkg.ErrInternal
	}

	return s, nil
}

const markFailedQuery = `
UPDATE payment_schedules
SET status = 'FAILED', attempts = $1, last_error = $2
WHERE id = $3
RETURNING ` + scheduleColumns

// MarkFailed finalizes a schedule whose attempts are exhausted.
func (r *RepoPGS) MarkFailed(ctx context.Context, id int64, attempts int, lastError string) (domain.PaymentSchedule, error) {
	l := zerolog.Ctx(ctx)

	s, err := scanSchedule(r.db.QueryRowContext(ctx, markFailedQuery, attempts, lastError, id))
	if err != nil {
		l.Error().Err(err).Send()
		return s, errorspkg.ErrInternal
	}

	return s, nil
}

const rescheduleQuery = `
UPDATE payment_schedules
SET status = 'SCHEDULED', attempts = $1, last_error = $2, scheduled_for = $3
WHERE id = $4
RETURNING ` + scheduleColumns

// Reschedule returns a failed attempt to the SCHEDULED state at a future time.
func (r *RepoPGS) Reschedule(ctx context.Context, id int64, attempts int, lastError string, scheduledFor time.Time) (domain.PaymentSchedule, error) {
	l := zerolog.Ctx(ctx)

	s, err := scanSchedule(r.db.QueryRowContext(ctx, rescheduleQuery, attempts, lastError, scheduledFor, id))
	if err != nil {
		l.Error().Err(err).Send()
		return s, errorspkg.ErrInternal
	}

	return s, nil
}

const cancelQuery = `
UPDATE payment_schedules
SET status = 'CANCELLED'
WHERE id = $1 AND owner = $2 AND status = 'SCHEDULED'
RETURNING ` + scheduleColumns

// Cancel transitions SCHEDULED -> CANCELLED for the owner's schedule.
// Any other state loses the status guard and is reported as not cancellable.
func (r *RepoPGS) Cancel(ctx context.Context, id int64, owner string) (domain.PaymentSchedule, error) {
	l := zerolog.Ctx(ctx)

	s, err := scanSchedule(r.db.QueryRowContext(ctx, cancelQuery, id, owner))
	if err != nil {
		if err == sql.ErrNoRows {
			if _, getErr := r.Get(ctx, id, owner); getErr != nil {
				return s, getErr
			}

			return s, domain.ErrScheduleNotCancellable
		}

		l.Error().Err(err).Send()

		return s, errorspkg.ErrInternal
	}

	return s, nil
}

func (r *RepoPGS) querySchedules(ctx context.Context, query string, args ...interface{}) ([]domain.PaymentSchedule, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.PaymentSchedule{}

	for rows.Next() {
		s, err := scanScheduleRow(rows)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, s)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanSchedule(row *sql.Row) (domain.PaymentSchedule, error) {
	return scanScheduleRow(row)
}

func scanScheduleRow(row scanner) (domain.PaymentSchedule, error) {
	var (
		s           domain.PaymentSchedule
		payload     []byte
		entryID     sql.NullInt64
		processedAt sql.NullTime
	)

	err := row.Scan(
		&s.ID,
		&s.Owner,
		&s.Actor,
		&payload,
		&s.ScheduledFor,
		&s.Status,
		&s.Attempts,
		&s.MaxAttempts,
		&s.LastError,
		&entryID,
		&processedAt,
		&s.CreatedAt,
	)
	if err != nil {
		return s, err
	}

	if err := json.Unmarshal(payload, &s.Payload); err != nil {
		return s, err
	}

	if entryID.Valid {
		s.LedgerEntryID = &entryID.Int64
	}
	if processedAt.Valid {
		t := processedAt.Time
		s.ProcessedAt = &t
	}

	return s, nil
}
