package domain

import (
	"errors"
	"time"
)

var (
	// ErrEntryNotFound indicates that the ledger entry is not found.
	ErrEntryNotFound = errors.New("ledger entry not found")
	// ErrCurrencyMismatch indicates that the entry legs have different currencies.
	ErrCurrencyMismatch = errors.New("accounts currency mismatch")
	// ErrInvalidAmount indicates invalid amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNegativeAmount indicates zero or negative amount.
	ErrNegativeAmount = errors.New("negative amount")
	// ErrInsufficientBalance indicates that the debit account does not have sufficient balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrSameAccountTransfer indicates that debit and credit accounts are identical.
	ErrSameAccountTransfer = errors.New("cannot transfer to the same account")
	// ErrInvalidIdempotencyKey indicates a malformed idempotency key.
	ErrInvalidIdempotencyKey = errors.New("invalid idempotency key format")
)

// LedgerEntry is the immutable record of one double-entry movement.
// Entries are append-only: never updated, never deleted.
type LedgerEntry struct {
	ID              int64     `json:"id"`
	DebitAccountID  int64     `json:"debit_account_id"`
	CreditAccountID int64     `json:"credit_account_id"`
	Amount          string    `json:"amount"` // always positive
	Currency        string    `json:"currency"`
	IdempotencyKey  string    `json:"idempotency_key"`
	TraceID         string    `json:"trace_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// RecordTransferParams is the input data for one ledger commit.
type RecordTransferParams struct {
	DebitAccountID  int64  `json:"debit_account_id"`
	CreditAccountID int64  `json:"credit_account_id"`
	Amount          string `json:"amount"`
	Currency        string `json:"currency"`
	IdempotencyKey  string `json:"idempotency_key"`
	TraceID         string `json:"trace_id,omitempty"`
}

// BalanceVerification compares the stored account balance against the
// opening balance plus the signed sum of all entries touching the account.
type BalanceVerification struct {
	AccountID         int64  `json:"account_id"`
	AccountBalance    string `json:"account_balance"`
	OpeningBalance    string `json:"opening_balance"`
	CalculatedBalance string `json:"calculated_balance"`
	IsConsistent      bool   `json:"is_consistent"`
}

// ReconciliationResult reports a reconciliation run: the drift found and,
// when a correcting entry was posted, the entry itself.
type ReconciliationResult struct {
	AccountID       int64        `json:"account_id"`
	Drift           string       `json:"drift"`
	CorrectionEntry *LedgerEntry `json:"correction_entry,omitempty"`
}
