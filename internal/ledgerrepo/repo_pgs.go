// Package ledgerrepo manages repository layer of ledger commits.
package ledgerrepo

import (
	"context"
	"database/sql"

	"github.com/altx-finance/ledger-engine/internal/accountrepo"
	"github.com/altx-finance/ledger-engine/internal/domain"
	"github.com/altx-finance/ledger-engine/internal/entryrepo"
	"github.com/altx-finance/ledger-engine/pkg/errorspkg"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// RepoPGS facilitates ledger repository layer logic. Transfer needs a real
// connection to open transactions.
type RepoPGS struct {
	conn *sql.DB
}

// NewRepoPGS returns ledger RepoPGS with connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{conn: db}
}

// balanceSwap is one pending compare-and-swap leg of a transfer.
type balanceSwap struct {
	id      int64
	balance string
	version int64
}

// TransferResult is the outcome of one ledger commit.
type TransferResult struct {
	Entry         domain.LedgerEntry `json:"entry"`
	DebitAccount  domain.Account     `json:"debit_account"`
	CreditAccount domain.Account     `json:"credit_account"`
	// Replayed is true when the idempotency key matched an existing entry
	// and no balance was touched.
	Replayed bool `json:"replayed"`
}

// Transfer applies a double-entry movement as a single atomic unit.
//
// Inside one transaction it checks the idempotency key against recorded
// entries, loads and validates both accounts, applies the debit and credit
// with compare-and-swap on the version field, and appends the entry. The
// step order is load, validate, CAS, append; each step depends on
// invariants established by the one before it. A CAS failure aborts the
// whole transaction with domain.ErrConcurrentModification and is never
// retried here: the caller must re-read and retry.
func (r *RepoPGS) Transfer(ctx context.Context, arg domain.RecordTransferParams) (TransferResult, error) {
	l := zerolog.Ctx(ctx)

	var result TransferResult

	amount, err := decimal.NewFromString(arg.Amount)
	if err != nil {
		return result, domain.ErrInvalidAmount
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return result, domain.ErrNegativeAmount
	}

	if arg.DebitAccountID == arg.CreditAccountID {
		return result, domain.ErrSameAccountTransfer
	}

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			l.Error().Err(err).Send()
		}
	}()

	entryRepo := entryrepo.NewRepoPGS(tx)
	accountRepo := accountrepo.NewRepoPGS(tx)

	// Exactly-once effect: a replayed key returns the prior entry verbatim
	// without re-touching balances.
	existing, err := entryRepo.GetByIdempotencyKey(ctx, arg.IdempotencyKey)
	if err == nil {
		result.Entry = existing
		result.Replayed = true

		return result, nil
	}

	if err != domain.ErrEntryNotFound {
		return result, err
	}

	debitAccount, err := accountRepo.Get(ctx, arg.DebitAccountID)
	if err != nil {
		return result, err
	}

	creditAccount, err := accountRepo.Get(ctx, arg.CreditAccountID)
	if err != nil {
		return result, err
	}

	if debitAccount.Status != domain.StatusActive || creditAccount.Status != domain.StatusActive {
		return result, domain.ErrAccountInactive
	}

	if debitAccount.Currency != creditAccount.Currency || arg.Currency != debitAccount.Currency {
		return result, domain.ErrCurrencyMismatch
	}

	debitBalance, err := decimal.NewFromString(debitAccount.Balance)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	creditBalance, err := decimal.NewFromString(creditAccount.Balance)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	if debitBalance.LessThan(amount) {
		return result, domain.ErrInsufficientBalance
	}

	debitSwap := balanceSwap{
		id:      debitAccount.ID,
		balance: debitBalance.Sub(amount).StringFixed(2),
		version: debitAccount.Version,
	}
	creditSwap := balanceSwap{
		id:      creditAccount.ID,
		balance: creditBalance.Add(amount).StringFixed(2),
		version: creditAccount.Version,
	}

	// Row locks are always taken in ascending account id order so two
	// opposite-direction transfers cannot deadlock.
	first, second := debitSwap, creditSwap
	if creditSwap.id < debitSwap.id {
		first, second = creditSwap, debitSwap
	}

	firstAccount, err := accountRepo.CompareAndSwapBalance(ctx, first.id, first.balance, first.version)
	if err != nil {
		return result, err
	}

	secondAccount, err := accountRepo.CompareAndSwapBalance(ctx, second.id, second.balance, second.version)
	if err != nil {
		return result, err
	}

	if firstAccount.ID == debitAccount.ID {
		result.DebitAccount, result.CreditAccount = firstAccount, secondAccount
	} else {
		result.DebitAccount, result.CreditAccount = secondAccount, firstAccount
	}

	arg.Amount = amount.StringFixed(2)

	result.Entry, err = entryRepo.Create(ctx, arg)
	if err != nil {
		return result, err
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	return result, nil
}
