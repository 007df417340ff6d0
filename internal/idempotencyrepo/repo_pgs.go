// Package idempotencyrepo manages repository layer of idempotency records.
package idempotencyrepo

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/altx-finance/ledger-engine/internal/domain"
	"github.com/altx-finance/ledger-engine/pkg/dbpkg"
	"github.com/altx-finance/ledger-engine/pkg/errorspkg"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates idempotency record repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns idempotency RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const getQuery = `
SELECT id, key, endpoint, scope, request_hash, status, COALESCE(response_status, 0), COALESCE(response_body, 'null'), created_at, updated_at
FROM idempotency_records
WHERE key = $1 AND endpoint = $2 AND scope = $3
`

// Get returns the record for the (key, endpoint, scope) triple.
func (r *RepoPGS) Get(ctx context.Context, key, endpoint, scope string) (domain.IdempotencyRecord, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, key, endpoint, scope)

	rec, err := scanRecord(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return rec, domain.ErrIdempotencyRecordNotFound
		}

		l.Error().Err(err).Send()

		return rec, errorspkg.ErrInternal
	}

	return rec, nil
}

const startQuery = `
INSERT INTO
    idempotency_records (key, endpoint, scope, request_hash, status)
VALUES
    ($1, $2, $3, $4, 'PROCESSING')
RETURNING id, key, endpoint, scope, request_hash, status, COALESCE(response_status, 0), COALESCE(response_body, 'null'), created_at, updated_at
`

// Start reserves the (key, endpoint, scope) triple with a PROCESSING record.
// A concurrent reservation of the same triple loses the unique constraint
// race and surfaces as domain.ErrIdempotencyInProgress.
func (r *RepoPGS) Start(ctx context.Context, key, endpoint, scope, requestHash string) (domain.IdempotencyRecord, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, startQuery, key, endpoint, scope, requestHash)

	rec, err := scanRecord(row)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "idempotency_records_key_endpoint_scope_key" {
				return rec, domain.ErrIdempotencyInProgress
			}
		}

		l.Error().Err(err).Send()

		return rec, errorspkg.ErrInternal
	}

	return rec, nil
}

const finalizeQuery = `
UPDATE idempotency_records
SET status = $1, response_status = $2, response_body = $3, updated_at = now()
WHERE id = $4
`

// Finalize records the wrapped operation's outcome. It runs exactly once
// per record: the guard only finalizes records it started.
func (r *RepoPGS) Finalize(ctx context.Context, id int64, status domain.IdempotencyStatus, responseStatus int, body json.RawMessage) error {
	l := zerolog.Ctx(ctx)

	if _, err := r.db.ExecContext(ctx, finalizeQuery, status, responseStatus, []byte(body), id); err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	return nil
}

func scanRecord(row *sql.Row) (domain.IdempotencyRecord, error) {
	var (
		rec  domain.IdempotencyRecord
		body []byte
	)

	err := row.Scan(
		&rec.ID,
		&rec.Key,
		&rec.Endpoint,
		&rec.Scope,
		&rec.RequestHash,
		&rec.Status,
		&rec.ResponseStatus,
		&body,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)

	rec.ResponseBody = json.RawMessage(body)

	return rec, err
}
