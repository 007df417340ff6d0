package cardcontrol

import (
	"context"
	"database/sql"

	"github.com/altx-finance/ledger-engine/pkg/dbpkg"
	"github.com/altx-finance/ledger-engine/pkg/errorspkg"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates card control repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns card control RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const cardColumns = `id, account_id, card_token, status, mcc_whitelist, geo_whitelist, COALESCE(daily_limit, ''), COALESCE(monthly_limit, ''), created_at`

const createQuery = `
INSERT INTO
    card_controls (account_id, card_token, status)
VALUES
    ($1, $2, 'ACTIVE')
RETURNING ` + cardColumns

// Create registers a card token for the account.
func (r *RepoPGS) Create(ctx context.Context, accountID int64, token string) (Card, error) {
	l := zerolog.Ctx(ctx)

	c, err := scanCard(r.db.QueryRowContext(ctx, createQuery, accountID, token))
	if err != nil {
		l.Error().Err(err).Send()
		return c, errorspkg.ErrInternal
	}

	return c, nil
}

const getByTokenQuery = `
SELECT ` + cardColumns + `
FROM card_controls
WHERE card_token = $1
`

// GetByToken returns the card registered under the token.
func (r *RepoPGS) GetByToken(ctx context.Context, token string) (Card, error) {
	l := zerolog.Ctx(ctx)

	c, err := scanCard(r.db.QueryRowContext(ctx, getByTokenQuery, token))
	if err != nil {
		if err == sql.ErrNoRows {
			return c, ErrCardNotFound
		}

		l.Error().Err(err).Send()

		return c, errorspkg.ErrInternal
	}

	return c, nil
}

const setStatusQuery = `
UPDATE card_controls
SET status = $1
WHERE card_token = $2
RETURNING ` + cardColumns

// SetStatus freezes or unfreezes the card.
func (r *RepoPGS) SetStatus(ctx context.Context, token string, status Status) (Card, error) {
	l := zerolog.Ctx(ctx)

	c, err := scanCard(r.db.QueryRowContext(ctx, setStatusQuery, status, token))
	if err != nil {
		if err == sql.ErrNoRows {
			return c, ErrCardNotFound
		}

		l.Error().Err(err).Send()

		return c, errorspkg.ErrInternal
	}

	return c, nil
}

const updateLimitsQuery = `
UPDATE card_controls
SET mcc_whitelist = $1, geo_whitelist = $2, daily_limit = NULLIF($3, ''), monthly_limit = NULLIF($4, '')
WHERE card_token = $5
RETURNING ` + cardColumns

// UpdateLimits replaces the card's whitelists and spend limits.
func (r *RepoPGS) UpdateLimits(ctx context.Context, token string, mcc []int, geo []string, dailyLimit, monthlyLimit string) (Card, error) {
	l := zerolog.Ctx(ctx)

	mcc32 := make([]int64, len(mcc))
	for i, v := range mcc {
		mcc32[i] = int64(v)
	}

	c, err := scanCard(r.db.QueryRowContext(ctx, updateLimitsQuery,
		pq.Array(mcc32), pq.Array(geo), dailyLimit, monthlyLimit, token))
	if err != nil {
		if err == sql.ErrNoRows {
			return c, ErrCardNotFound
		}

		l.Error().Err(err).Send()

		return c, errorspkg.ErrInternal
	}

	return c, nil
}

func scanCard(row *sql.Row) (Card, error) {
	var (
		c   Card
		mcc pq.Int64Array
		geo pq.StringArray
	)

	err := row.Scan(
		&c.ID,
		&c.AccountID,
		&c.Token,
		&c.Status,
		&mcc,
		&geo,
		&c.DailyLimit,
		&c.MonthlyLimit,
		&c.CreatedAt,
	)
	if err != nil {
		return c, err
	}

	for _, v := range mcc {
		c.MCCWhitelist = append(c.MCCWhitelist, int(v))
	}
	c.GeoWhitelist = geo

	return c, nil
}
