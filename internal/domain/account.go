// Package domain provides defenitions of all entities.
package domain

import (
	"errors"
	"time"
)

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountInactive indicates that the account is frozen or closed.
	ErrAccountInactive = errors.New("account is not active")
	// ErrCurrencyAlreadyExists indicates that the account with the given currency already exists.
	ErrCurrencyAlreadyExists = errors.New("account currency already exists")
	// ErrConcurrentModification indicates that the account row changed between
	// read and write. The caller must re-read and retry.
	ErrConcurrentModification = errors.New("account was modified concurrently")
)

// AccountStatus describes the lifecycle state of an account.
type AccountStatus string

// All account statuses. Accounts are never deleted; closing an account
// transitions it to StatusClosed.
const (
	StatusActive AccountStatus = "ACTIVE"
	StatusFrozen AccountStatus = "FROZEN"
	StatusClosed AccountStatus = "CLOSED"
)

// Account holds a versioned balance in a single currency. The balance is
// only ever mutated through a committed ledger entry; every mutation
// increments Version, which guards the compare-and-swap balance update.
// OpeningBalance is fixed at creation: at any point the balance must equal
// the opening balance plus the signed sum of the account's entries.
type Account struct {
	ID             int64         `json:"id"`
	Owner          string        `json:"owner"`
	Balance        string        `json:"balance"`
	OpeningBalance string        `json:"opening_balance"`
	Currency       string        `json:"currency"`
	Status         AccountStatus `json:"status"`
	Version        int64         `json:"version"`
	CreatedAt      time.Time     `json:"created_at"`
}
