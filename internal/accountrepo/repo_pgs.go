// Package accountrepo manages repository layer of accounts.
package accountrepo

import (
	"context"
	"database/sql"

	"github.com/altx-finance/ledger-engine/internal/domain"
	"github.com/altx-finance/ledger-engine/pkg/dbpkg"
	"github.com/altx-finance/ledger-engine/pkg/errorspkg"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates account repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns account RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const createQuery = `
INSERT INTO
    accounts (owner, balance, opening_balance, currency, status, version)
VALUES
    ($1, $2, $2, $3, 'ACTIVE', 1)
RETURNING id, owner, balance, opening_balance, currency, status, version, created_at
`

// Create creates the account and then returns it.
func (r *RepoPGS) Create(ctx context.Context, owner, balance, currency string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, owner, balance, currency)

	a, err := scanAccount(row)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "accounts_owner_currency_key" {
				return a, domain.ErrCurrencyAlreadyExists
			}
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const getQuery = `
SELECT
	id, owner, balance, opening_balance, currency, status, version, created_at
FROM accounts
WHERE id = $1
`

// Get returns the account with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	a, err := scanAccount(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		l.Error().Err(err).Send()

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const getByOwnerAndCurrencyQuery = `
SELECT
	id, owner, balance, opening_balance, currency, status, version, created_at
FROM accounts
WHERE owner = $1 AND currency = $2
`

// GetByOwnerAndCurrency returns the owner's account in the given currency.
func (r *RepoPGS) GetByOwnerAndCurrency(ctx context.Context, owner, currency string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getByOwnerAndCurrencyQuery, owner, currency)

	a, err := scanAccount(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		l.Error().Err(err).Send()

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const casBalanceQuery = `
UPDATE accounts
SET balance = $1, version = version + 1
WHERE id = $2 AND version = $3
RETURNING id, owner, balance, opening_balance, currency, status, version, created_at
`

// CompareAndSwapBalance replaces the account balance only if the row still
// carries the version last read. A zero-row update means another writer won
// and surfaces as domain.ErrConcurrentModification; balances are never
// blindly overwritten.
func (r *RepoPGS) CompareAndSwapBalance(ctx context.Context, id int64, balance string, expectedVersion int64) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, casBalanceQuery, balance, id, expectedVersion)

	a, err := scanAccount(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return a, domain.ErrConcurrentModification
		}

		l.Error().Err(err).Send()

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const setStatusQuery = `
UPDATE accounts
SET status = $1
WHERE id = $2
RETURNING id, owner, balance, opening_balance, currency, status, version, created_at
`

// SetStatus transitions the account lifecycle status. Accounts are never
// physically deleted; closing sets status to CLOSED.
func (r *RepoPGS) SetStatus(ctx context.Context, id int64, status domain.AccountStatus) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, setStatusQuery, status, id)

	a, err := scanAccount(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		l.Error().Err(err).Send()

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const listQuery = `
SELECT
	id, owner, balance, opening_balance, currency, status, version, created_at
FROM accounts
WHERE owner = $1
ORDER BY id
LIMIT $2 OFFSET $3
`

// List returns the specified number of accounts for the given owner.
func (r *RepoPGS) List(ctx context.Context, owner string, limit, offset int32) ([]domain.Account, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery, owner, limit, offset)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Account{}

	for rows.Next() {
		var a domain.Account
		if err := rows.Scan(&a.ID, &a.Owner, &a.Balance, &a.OpeningBalance, &a.Currency, &a.Status, &a.Version, &a.CreatedAt); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, a)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

func scanAccount(row *sql.Row) (domain.Account, error) {
	var a domain.Account

	err := row.Scan(
		&a.ID,
		&a.Owner,
		&a.Balance,
		&a.OpeningBalance,
		&a.Currency,
		&a.Status,
		&a.Version,
		&a.CreatedAt,
	)

	return a, err
}
