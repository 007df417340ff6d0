// Package entryrepo manages repository layer of ledger entries.
package entryrepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/altx-finance/ledger-engine/internal/domain"
	"github.com/altx-finance/ledger-engine/pkg/dbpkg"
	"github.com/altx-finance/ledger-engine/pkg/errorspkg"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates ledger entry repository layer logic.
// Entries are append-only: the repo exposes no update or delete.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns entry RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const createQuery = `
INSERT INTO
    entries (debit_account_id, credit_account_id, amount, currency, idempotency_key, trace_id)
VALUES
    ($1, $2, $3, $4, $5, $6)
RETURNING id, debit_account_id, credit_account_id, amount, currency, idempotency_key, COALESCE(trace_id, ''), created_at
`

// Create appends the entry and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.RecordTransferParams) (domain.LedgerEntry, error) {
	l := zerolog.Ctx(ctx)

	var traceID interface{}
	if arg.TraceID != "" {
		traceID = arg.TraceID
	}

	row := r.db.QueryRowContext(ctx, createQuery,
		arg.DebitAccountID,
		arg.CreditAccountID,
		arg.Amount,
		arg.Currency,
		arg.IdempotencyKey,
		traceID,
	)

	e, err := scanEntry(row)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "entries_debit_account_id_fkey", "entries_credit_account_id_fkey":
				return e, domain.ErrAccountNotFound
			case "entries_amount_check":
				return e, domain.ErrInvalidAmount
			case "entries_idempotency_key_key":
				return e, domain.ErrIdempotencyConflict
			}
		}

		return e, errorspkg.ErrInternal
	}

	return e, nil
}

const getQuery = `
SELECT id, debit_account_id, credit_account_id, amount, currency, idempotency_key, COALESCE(trace_id, ''), created_at
FROM entries
WHERE id = $1
`

// Get returns the entry with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.LedgerEntry, error) {
	l := zerolog.Ctx(ctx)

	e, err := scanEntry(r.db.QueryRowContext(ctx, getQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return e, domain.ErrEntryNotFound
		}

		l.Error().Err(err).Send()

		return e, errorspkg.ErrInternal
	}

	return e, nil
}

const getByKeyQuery = `
SELECT id, debit_account_id, credit_account_id, amount, currency, idempotency_key, COALESCE(trace_id, ''), created_at
FROM entries
WHERE idempotency_key = $1
`

// GetByIdempotencyKey returns the entry recorded under the given key.
// It backs the exactly-once-effect check inside the transfer transaction.
func (r *RepoPGS) GetByIdempotencyKey(ctx context.Context, key string) (domain.LedgerEntry, error) {
	l := zerolog.Ctx(ctx)

	e, err := scanEntry(r.db.QueryRowContext(ctx, getByKeyQuery, key))
	if err != nil {
		if err == sql.ErrNoRows {
			return e, domain.ErrEntryNotFound
		}

		l.Error().Err(err).Send()

		return e, errorspkg.ErrInternal
	}

	return e, nil
}

const listByAccountQuery = `
SELECT id, debit_account_id, credit_account_id, amount, currency, idempotency_key, COALESCE(trace_id, ''), created_at
FROM entries
WHERE debit_account_id = $1 OR credit_account_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`

// ListByAccount returns entries touching the account, newest first.
func (r *RepoPGS) ListByAccount(ctx context.Context, accountID int64, limit, offset int32) ([]domain.LedgerEntry, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listByAccountQuery, accountID, limit, offset)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.LedgerEntry{}

	for rows.Next() {
		var e domain.LedgerEntry
		if err := rows.Scan(
			&e.ID,
			&e.DebitAccountID,
			&e.CreditAccountID,
			&e.Amount,
			&e.Currency,
			&e.IdempotencyKey,
			&e.TraceID,
			&e.CreatedAt,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, e)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const signedSumQuery = `
SELECT
	COALESCE(SUM(CASE WHEN credit_account_id = $1 THEN amount::numeric ELSE 0 END), 0) -
	COALESCE(SUM(CASE WHEN debit_account_id = $1 THEN amount::numeric ELSE 0 END), 0)
FROM entries
WHERE debit_account_id = $1 OR credit_account_id = $1
`

// SignedSum returns credits minus debits over all entries touching the
// account. Opening balance plus this sum must equal the stored balance.
func (r *RepoPGS) SignedSum(ctx context.Context, accountID int64) (string, error) {
	l := zerolog.Ctx(ctx)

	var sum string

	if err := r.db.QueryRowContext(ctx, signedSumQuery, accountID).Scan(&sum); err != nil {
		l.Error().Err(err).Send()
		return "", errorspkg.ErrInternal
	}

	return sum, nil
}

const countDebitsSinceQuery = `
SELECT COUNT(*) FROM entries
WHERE debit_account_id = $1 AND created_at >= $2
`

// CountDebitsSince counts transfers debited from the account since the given time.
func (r *RepoPGS) CountDebitsSince(ctx context.Context, accountID int64, since time.Time) (int64, error) {
	l := zerolog.Ctx(ctx)

	var count int64

	if err := r.db.QueryRowContext(ctx, countDebitsSinceQuery, accountID, since).Scan(&count); err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return count, nil
}

const sumDebitsSinceQuery = `
SELECT COALESCE(SUM(amount::numeric), 0) FROM entries
WHERE debit_account_id = $1 AND created_at >= $2
`

// SumDebitsSince sums amounts debited from the account since the given time.
// Limit windows query this fresh on every evaluation.
func (r *RepoPGS) SumDebitsSince(ctx context.Context, accountID int64, since time.Time) (string, error) {
	l := zerolog.Ctx(ctx)

	var sum string

	if err := r.db.QueryRowContext(ctx, sumDebitsSinceQuery, accountID, since).Scan(&sum); err != nil {
		l.Error().Err(err).Send()
		return "", errorspkg.ErrInternal
	}

	return sum, nil
}

const debitStatsSinceQuery = `
SELECT
	COALESCE(AVG(amount::numeric), 0),
	COALESCE(MAX(amount::numeric), 0)
FROM entries
WHERE debit_account_id = $1 AND currency = $2 AND created_at >= $3
`

// DebitStatsSince returns the average and maximum debit amount for the
// account and currency since the given time.
func (r *RepoPGS) DebitStatsSince(ctx context.Context, accountID int64, currency string, since time.Time) (avg, max string, err error) {
	l := zerolog.Ctx(ctx)

	if err := r.db.QueryRowContext(ctx, debitStatsSinceQuery, accountID, currency, since).Scan(&avg, &max); err != nil {
		l.Error().Err(err).Send()
		return "", "", errorspkg.ErrInternal
	}

	return avg, max, nil
}

const countMatchingDebitsQuery = `
SELECT COUNT(*) FROM entries
WHERE debit_account_id = $1
  AND credit_account_id = $2
  AND amount::numeric = $3::numeric
  AND created_at >= $4
`

// CountMatchingDebits counts identical-amount transfers to the same
// counterparty since the given time.
func (r *RepoPGS) CountMatchingDebits(ctx context.Context, debitAccountID, creditAccountID int64, amount string, since time.Time) (int64, error) {
	l := zerolog.Ctx(ctx)

	var count int64

	err := r.db.QueryRowContext(ctx, countMatchingDebitsQuery, debitAccountID, creditAccountID, amount, since).Scan(&count)
	if err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return count, nil
}

func scanEntry(row *sql.Row) (domain.LedgerEntry, error) {
	var e domain.LedgerEntry

	err := row.Scan(
		&e.ID,
		&e.DebitAccountID,
		&e.CreditAccountID,
		&e.Amount,
		&e.Currency,
		&e.IdempotencyKey,
		&e.TraceID,
		&e.CreatedAt,
	)

	return e, err
}
