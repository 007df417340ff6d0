// Package scheduler drives due payment schedules to completion.
package scheduler

import (
	"context"
	"time"

	"github.com/altx-finance/ledger-engine/internal/audit"
	"github.com/altx-finance/ledger-engine/internal/domain"
	"github.com/altx-finance/ledger-engine/internal/metrics"

	"github.com/rs/zerolog"
)

// Repo is the schedule persistence contract consumed by the worker.
//
//go:generate mockgen -source scheduler.go -destination scheduler_mock.go -package scheduler
type Repo interface {
	ListDue(ctx context.Context, now time.Time, limit int) ([]domain.PaymentSchedule, error)
	Claim(ctx context.Context, id int64) (domain.PaymentSchedule, error)
	MarkCompleted(ctx context.Context, id, ledgerEntryID int64) (domain.PaymentSchedule, error)
	MarkFailed(ctx context.Context, id int64, attempts int, lastError string) (domain.PaymentSchedule, error)
	Reschedule(ctx context.Context, id int64, attempts int, lastError string, scheduledFor time.Time) (domain.PaymentSchedule, error)
}

// Executor runs a claimed schedule's payload through the payment pipeline.
type Executor interface {
	ExecuteSchedule(ctx context.Context, schedule domain.PaymentSchedule) (domain.PaymentResult, error)
}

// Worker polls for due schedules and executes them. Multiple workers can
// poll the same table: the status-guarded claim makes sure each schedule
// is executed by exactly one of them.
type Worker struct {
	repo     Repo
	executor Executor
	auditor  audit.Recorder

	pollInterval time.Duration
	batchSize    int
	retryBackoff time.Duration
	now          func() time.Time
}

// NewWorker returns scheduler Worker.
func NewWorker(repo Repo, executor Executor, auditor audit.Recorder, pollInterval time.Duration, batchSize int, retryBackoff time.Duration) *Worker {
	return &Worker{
		repo:         repo,
		executor:     executor,
		auditor:      auditor,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		retryBackoff: retryBackoff,
		now:          time.Now,
	}
}

// Run polls until the context is cancelled.
func (w *Worker) Run(ctx context.Context) {
	l := zerolog.Ctx(ctx)

	l.Info().Dur("poll_interval", w.pollInterval).Msg("scheduler started")

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			l.Info().Msg("scheduler stopped")
			return
		case <-ticker.C:
			w.Tick(ctx)
		}
	}
}

// Tick processes one batch of due schedules, oldest first.
func (w *Worker) Tick(ctx context.Context) {
	l := zerolog.Ctx(ctx)

	due, err := w.repo.ListDue(ctx, w.now().UTC(), w.batchSize)
	if err != nil {
		l.Error().Err(err).Msg("scheduler poll failed")
		return
	}

	for _, schedule := range due {
		w.process(ctx, schedule)
	}
}

func (w *Worker) process(ctx context.Context, schedule domain.PaymentSchedule) {
	l := zerolog.Ctx(ctx)

	claimed, err := w.repo.Claim(ctx, schedule.ID)
	if err != nil {
		// Lost the claim race to another worker.
		if err == domain.ErrScheduleAlreadyClaimed {
			return
		}

		l.Error().Err(err).Int64("schedule_id", schedule.ID).Msg("schedule claim failed")

		return
	}

	result, err := w.executor.ExecuteSchedule(ctx, claimed)
	if err != nil {
		w.handleFailure(ctx, claimed, err)
		return
	}

	if _, err := w.repo.MarkCompleted(ctx, claimed.ID, result.LedgerEntryID); err != nil {
		l.Error().Err(err).Int64("schedule_id", claimed.ID).Msg("schedule completion mark failed")
		return
	}

	metrics.ScheduleExecutions.WithLabelValues("completed").Inc()

	w.auditor.Record(ctx, claimed.Actor, "PAYMENT_SCHEDULED_EXECUTED", map[string]interface{}{
		"schedule_id": claimed.ID,
		"entry_id":    result.LedgerEntryID,
	}, claimed.Payload.TraceID)
}

// handleFailure retries with linear backoff until attempts are exhausted,
// then parks the schedule as FAILED.
func (w *Worker) handleFailure(ctx context.Context, schedule domain.PaymentSchedule, execErr error) {
	l := zerolog.Ctx(ctx)

	attempts := schedule.Attempts + 1

	if attempts >= schedule.MaxAttempts {
		if _, err := w.repo.MarkFailed(ctx, schedule.ID, attempts, execErr.Error()); err != nil {
			l.Error().Err(err).Int64("schedule_id", schedule.ID).Msg("schedule failure mark failed")
			return
		}

		metrics.ScheduleExecutions.WithLabelValues("failed").Inc()

		w.auditor.Record(ctx, schedule.Actor, "PAYMENT_SCHEDULED_FAILED", map[string]interface{}{
			"schedule_id": schedule.ID,
			"attempts":    attempts,
			"error":       execErr.Error(),
		}, schedule.Payload.TraceID)

		return
	}

	next := w.now().UTC().Add(w.retryBackoff * time.Duration(attempts))

	if _, err := w.repo.Reschedule(ctx, schedule.ID, attempts, execErr.Error(), next); err != nil {
		l.Error().Err(err).Int64("schedule_id", schedule.ID).Msg("schedule retry mark failed")
		return
	}

	metrics.ScheduleExecutions.WithLabelValues("retried").Inc()

	// Every failed attempt is audited, not just the terminal one.
	w.auditor.Record(ctx, schedule.Actor, "PAYMENT_SCHEDULED_FAILED", map[string]interface{}{
		"schedule_id":  schedule.ID,
		"attempts":     attempts,
		"error":        execErr.Error(),
		"next_attempt": next.Format(time.RFC3339),
	}, schedule.Payload.TraceID)

	l.Warn().
		Err(execErr).
		Int64("schedule_id", schedule.ID).
		Int("attempts", attempts).
		Time("next_attempt", next).
		Msg("scheduled payment execution failed")
}
