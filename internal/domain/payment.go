package domain

import (
	"errors"
	"time"
)

var (
	// ErrRecipientRequired indicates an internal transfer without a destination account.
	ErrRecipientRequired = errors.New("recipient account is required for internal transfers")
	// ErrBeneficiaryRequired indicates an interbank transfer without beneficiary details.
	ErrBeneficiaryRequired = errors.New("beneficiary iban is required for interbank transfers")
	// ErrKYCNotVerified indicates that the payer's KYC status blocks money movement.
	ErrKYCNotVerified = errors.New("kyc status is not verified")
)

// TransferType distinguishes in-ledger transfers from interbank handoffs.
type TransferType string

// All transfer types.
const (
	TransferInternal  TransferType = "INTERNAL"
	TransferInterbank TransferType = "INTERBANK"
)

// PaymentStatus is the terminal disposition of an accepted payment request.
type PaymentStatus string

// All payment result statuses. Interbank transfers settle asynchronously on
// the counterparty side, so they complete as pending rather than success.
const (
	PaymentSuccess   PaymentStatus = "success"
	PaymentPending   PaymentStatus = "pending"
	PaymentScheduled PaymentStatus = "scheduled"
)

// CreatePaymentParams is the input data for the payment orchestrator.
type CreatePaymentParams struct {
	FromAccountID   int64        `json:"from_account_id"`
	ToAccountID     *int64       `json:"to_account_id,omitempty"`
	Amount          string       `json:"amount"`
	Currency        string       `json:"currency"`
	IdempotencyKey  string       `json:"idempotency_key"`
	TraceID         string       `json:"trace_id,omitempty"`
	TransferType    TransferType `json:"transfer_type,omitempty"`
	CardToken       string       `json:"card_token,omitempty"`
	MCC             *int         `json:"mcc,omitempty"`
	GeoLocation     string       `json:"geo_location,omitempty"`
	BeneficiaryIBAN string       `json:"beneficiary_iban,omitempty"`
	BeneficiaryBank string       `json:"beneficiary_bank,omitempty"`
	Description     string       `json:"description,omitempty"`
	ScheduledFor    *time.Time   `json:"scheduled_for,omitempty"`
}

// PaymentResult is the orchestrator's answer for an accepted request.
// Rejections are reported as errors, not results.
type PaymentResult struct {
	Status           PaymentStatus `json:"status"`
	LedgerEntryID    int64         `json:"ledger_entry_id,omitempty"`
	GatewayReference string        `json:"gateway_reference,omitempty"`
	ScheduleID       int64         `json:"schedule_id,omitempty"`
	ScheduledFor     *time.Time    `json:"scheduled_for,omitempty"`
	Message          string        `json:"message,omitempty"`
}
