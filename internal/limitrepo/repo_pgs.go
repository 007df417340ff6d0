// Package limitrepo manages repository layer of limit rules.
package limitrepo

import (
	"context"
	"database/sql"

	"github.com/altx-finance/ledger-engine/internal/domain"
	"github.com/altx-finance/ledger-engine/pkg/dbpkg"
	"github.com/altx-finance/ledger-engine/pkg/errorspkg"

	"github.com/rs/zerolog"
)

// RepoPGS facilitates limit rule repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns limit RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const createQuery = `
INSERT INTO
    limit_rules (scope, threshold, account_id, owner, mcc, geo, active)
VALUES
    ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, scope, threshold, account_id, owner, mcc, geo, active, created_at
`

// Create creates the limit rule and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateLimitRuleParams) (domain.LimitRule, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		arg.Scope,
		arg.Threshold,
		arg.AccountID,
		arg.Owner,
		arg.MCC,
		arg.Geo,
		arg.Active,
	)

	rule, err := scanRule(row)
	if err != nil {
		l.Error().Err(err).Send()
		return rule, errorspkg.ErrInternal
	}

	return rule, nil
}

const listQuery = `
SELECT id, scope, threshold, account_id, owner, mcc, geo, active, created_at
FROM limit_rules
ORDER BY id
`

// List returns all limit rules.
func (r *RepoPGS) List(ctx context.Context) ([]domain.LimitRule, error) {
	return r.queryRules(ctx, listQuery)
}

const listActiveMatchingQuery = `
SELECT id, scope, threshold, account_id, owner, mcc, geo, active, created_at
FROM limit_rules
WHERE active = true
  AND (account_id = $1 OR owner = $2 OR (account_id IS NULL AND owner IS NULL))
ORDER BY id
`

// ListActiveMatching returns active rules scoped to the account, the owner,
// or applying globally. MCC and geo filters are narrowed in the service:
// the evaluation needs the rule row to report headroom either way.
func (r *RepoPGS) ListActiveMatching(ctx context.Context, accountID int64, owner string) ([]domain.LimitRule, error) {
	return r.queryRules(ctx, listActiveMatchingQuery, accountID, owner)
}

func (r *RepoPGS) queryRules(ctx context.Context, query string, args ...interface{}) ([]domain.LimitRule, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.LimitRule{}

	for rows.Next() {
		var (
			rule      domain.LimitRule
			accountID sql.NullInt64
			owner     sql.NullString
			mcc       sql.NullInt32
			geo       sql.NullString
		)

		if err := rows.Scan(
			&rule.ID,
			&rule.Scope,
			&rule.Threshold,
			&accountID,
			&owner,
			&mcc,
			&geo,
			&rule.Active,
			&rule.CreatedAt,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		if accountID.Valid {
			rule.AccountID = &accountID.Int64
		}
		if owner.Valid {
			rule.Owner = &owner.String
		}
		if mcc.Valid {
			v := int(mcc.Int32)
			rule.MCC = &v
		}
		if geo.Valid {
			rule.Geo = &geo.String
		}

		items = append(items, rule)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

func scanRule(row *sql.Row) (domain.LimitRule, error) {
	var (
		rule      domain.LimitRule
		accountID sql.NullInt64
		owner     sql.NullString
		mcc       sql.NullInt32
		geo       sql.NullString
	)

	err := row.Scan(
		&rule.ID,
		&rule.Scope,
		&rule.Threshold,
		&accountID,
		&owner,
		&mcc,
		&geo,
		&rule.Active,
		&rule.CreatedAt,
	)

	if accountID.Valid {
		rule.AccountID = &accountID.Int64
	}
	if owner.Valid {
		rule.Owner = &owner.String
	}
	if mcc.Valid {
		v := int(mcc.Int32)
		rule.MCC = &v
	}
	if geo.Valid {
		rule.Geo = &geo.String
	}

	return rule, err
}
