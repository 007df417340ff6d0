package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrLimitExceeded indicates that a spending limit rule rejected the payment.
var ErrLimitExceeded = errors.New("limit exceeded")

// ErrLimitRuleNotFound indicates that the limit rule is not found.
var ErrLimitRuleNotFound = errors.New("limit rule not found")

// LimitScope describes which window a limit rule is evaluated over.
type LimitScope string

// All limit rule scopes.
const (
	LimitPerTransaction LimitScope = "PER_TRANSACTION"
	LimitDaily          LimitScope = "DAILY"
	LimitMonthly        LimitScope = "MONTHLY"
)

// LimitRule is a configured spending ceiling. Rules are stateless with
// respect to the ledger: windowed scopes are evaluated against a fresh
// aggregate query each time, never against cached running totals.
type LimitRule struct {
	ID        int64      `json:"id"`
	Scope     LimitScope `json:"scope"`
	Threshold string     `json:"threshold"`
	AccountID *int64     `json:"account_id,omitempty"`
	Owner     *string    `json:"owner,omitempty"`
	MCC       *int       `json:"mcc,omitempty"`
	Geo       *string    `json:"geo,omitempty"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"created_at"`
}

// CreateLimitRuleParams is the input data to create a limit rule.
type CreateLimitRuleParams struct {
	Scope     LimitScope `json:"scope"`
	Threshold string     `json:"threshold"`
	AccountID *int64     `json:"account_id,omitempty"`
	Owner     *string    `json:"owner,omitempty"`
	MCC       *int       `json:"mcc,omitempty"`
	Geo       *string    `json:"geo,omitempty"`
	Active    bool       `json:"active"`
}

// LimitViolationError names the rule that rejected a payment together with
// the current spend and remaining headroom in the rule's window.
type LimitViolationError struct {
	RuleID    int64
	Scope     LimitScope
	Threshold string
	Spent     string
	Headroom  string
}

func (e *LimitViolationError) Error() string {
	return fmt.Sprintf("limit exceeded: %s rule %d threshold %s, spent %s, headroom %s",
		e.Scope, e.RuleID, e.Threshold, e.Spent, e.Headroom)
}

// Is makes the violation match ErrLimitExceeded in errors.Is chains.
func (e *LimitViolationError) Is(target error) bool {
	return target == ErrLimitExceeded
}
