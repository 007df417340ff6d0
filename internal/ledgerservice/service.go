// Package ledgerservice manages business logic of the ledger core.
package ledgerservice

import (
	"context"

	"github.com/altx-finance/ledger-engine/internal/audit"
	"github.com/altx-finance/ledger-engine/internal/domain"
	"github.com/altx-finance/ledger-engine/internal/events"
	"github.com/altx-finance/ledger-engine/internal/ledgerrepo"
	"github.com/altx-finance/ledger-engine/internal/metrics"
	"github.com/altx-finance/ledger-engine/pkg/errorspkg"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// balanceTolerance absorbs sub-cent rounding when comparing a stored balance
// against the signed sum of entries.
var balanceTolerance = decimal.RequireFromString("0.01")

// LedgerRepo is the atomic double-entry commit contract.
//
//go:generate mockgen -source service.go -destination service_mock.go -package ledgerservice
type LedgerRepo interface {
	Transfer(ctx context.Context, arg domain.RecordTransferParams) (ledgerrepo.TransferResult, error)
}

// EntryRepo reads recorded ledger entries.
type EntryRepo interface {
	Get(ctx context.Context, id int64) (domain.LedgerEntry, error)
	ListByAccount(ctx context.Context, accountID int64, limit, offset int32) ([]domain.LedgerEntry, error)
	SignedSum(ctx context.Context, accountID int64) (string, error)
}

// AccountRepo reads accounts for verification and reconciliation.
type AccountRepo interface {
	Get(ctx context.Context, id int64) (domain.Account, error)
	GetByOwnerAndCurrency(ctx context.Context, owner, currency string) (domain.Account, error)
}

// Service facilitates ledger business logic.
type Service struct {
	ledger        LedgerRepo
	entries       EntryRepo
	accounts      AccountRepo
	auditor       audit.Recorder
	bus           events.Bus
	clearingOwner string
}

// NewService returns ledger Service.
func NewService(ledger LedgerRepo, entries EntryRepo, accounts AccountRepo, auditor audit.Recorder, bus events.Bus, clearingOwner string) *Service {
	return &Service{
		ledger:        ledger,
		entries:       entries,
		accounts:      accounts,
		auditor:       auditor,
		bus:           bus,
		clearingOwner: clearingOwner,
	}
}

// RecordTransfer commits one double-entry movement. The idempotency key must
// be a UUID; a replayed key returns the prior entry without auditing or
// emitting again.
func (s *Service) RecordTransfer(ctx context.Context, actor string, arg domain.RecordTransferParams) (ledgerrepo.TransferResult, error) {
	if _, err := uuid.Parse(arg.IdempotencyKey); err != nil {
		return ledgerrepo.TransferResult{}, domain.ErrInvalidIdempotencyKey
	}

	result, err := s.ledger.Transfer(ctx, arg)
	if err != nil {
		return result, err
	}

	if result.Replayed {
		return result, nil
	}

	metrics.TransfersCommitted.Inc()

	s.auditor.Record(ctx, actor, "LEDGER_TRANSFER", map[string]interface{}{
		"entry_id":          result.Entry.ID,
		"debit_account_id":  result.Entry.DebitAccountID,
		"credit_account_id": result.Entry.CreditAccountID,
		"amount":            result.Entry.Amount,
		"currency":          result.Entry.Currency,
	}, arg.TraceID)

	s.bus.Emit(ctx, events.TopicTransactions, map[string]interface{}{
		"type":              "TRANSACTION_SUCCESS",
		"entry_id":          result.Entry.ID,
		"debit_account_id":  result.Entry.DebitAccountID,
		"credit_account_id": result.Entry.CreditAccountID,
		"amount":            result.Entry.Amount,
		"currency":          result.Entry.Currency,
	})

	return result, nil
}

// GetEntry returns one ledger entry.
func (s *Service) GetEntry(ctx context.Context, id int64) (domain.LedgerEntry, error) {
	return s.entries.Get(ctx, id)
}

// GetHistory returns the account's entries, both legs, newest first.
func (s *Service) GetHistory(ctx context.Context, accountID int64, limit, offset int32) ([]domain.LedgerEntry, error) {
	if _, err := s.accounts.Get(ctx, accountID); err != nil {
		return nil, err
	}

	return s.entries.ListByAccount(ctx, accountID, limit, offset)
}

// VerifyAccountBalance compares the stored balance against the opening
// balance plus the signed sum of all entries touching the account.
func (s *Service) VerifyAccountBalance(ctx context.Context, accountID int64) (domain.BalanceVerification, error) {
	l := zerolog.Ctx(ctx)

	var verification domain.BalanceVerification

	account, err := s.accounts.Get(ctx, accountID)
	if err != nil {
		return verification, err
	}

	calculated, err := s.entries.SignedSum(ctx, accountID)
	if err != nil {
		return verification, err
	}

	balance, err := decimal.NewFromString(account.Balance)
	if err != nil {
		l.Error().Err(err).Send()
		return verification, errorspkg.ErrInternal
	}

	opening, err := decimal.NewFromString(account.OpeningBalance)
	if err != nil {
		l.Error().Err(err).Send()
		return verification, errorspkg.ErrInternal
	}

	sum, err := decimal.NewFromString(calculated)
	if err != nil {
		l.Error().Err(err).Send()
		return verification, errorspkg.ErrInternal
	}

	expected := opening.Add(sum)

	return domain.BalanceVerification{
		AccountID:         accountID,
		AccountBalance:    balance.StringFixed(2),
		OpeningBalance:    opening.StringFixed(2),
		CalculatedBalance: expected.StringFixed(2),
		IsConsistent:      balance.Sub(expected).Abs().LessThanOrEqual(balanceTolerance),
	}, nil
}

// ReconcileAccountBalance posts a correcting entry against the currency's
// clearing account when the stored balance has drifted from the entry sum.
// The correction goes through the same commit path as any other transfer, so
// it is itself CAS-guarded and append-only.
func (s *Service) ReconcileAccountBalance(ctx context.Context, actor string, accountID int64) (domain.ReconciliationResult, error) {
	var result domain.ReconciliationResult

	verification, err := s.VerifyAccountBalance(ctx, accountID)
	if err != nil {
		return result, err
	}

	balance := decimal.RequireFromString(verification.AccountBalance)
	sum := decimal.RequireFromString(verification.CalculatedBalance)
	drift := balance.Sub(sum)

	result.AccountID = accountID
	result.Drift = drift.StringFixed(2)

	if verification.IsConsistent {
		return result, nil
	}

	account, err := s.accounts.Get(ctx, accountID)
	if err != nil {
		return result, err
	}

	clearing, err := s.accounts.GetByOwnerAndCurrency(ctx, s.clearingOwner, account.Currency)
	if err != nil {
		return result, err
	}

	arg := domain.RecordTransferParams{
		Amount:         drift.Abs().StringFixed(2),
		Currency:       account.Currency,
		IdempotencyKey: uuid.NewString(),
	}

	// Surplus drains into clearing; shortfall is funded from clearing and
	// fails with insufficient balance when clearing cannot cover it.
	if drift.IsPositive() {
		arg.DebitAccountID = account.ID
		arg.CreditAccountID = clearing.ID
	} else {
		arg.DebitAccountID = clearing.ID
		arg.CreditAccountID = account.ID
	}

	transfer, err := s.RecordTransfer(ctx, actor, arg)
	if err != nil {
		return result, err
	}

	entry := transfer.Entry
	result.CorrectionEntry = &entry

	s.auditor.Record(ctx, actor, "LEDGER_RECONCILED", map[string]interface{}{
		"account_id": accountID,
		"drift":      result.Drift,
		"entry_id":   entry.ID,
	}, "")

	return result, nil
}
