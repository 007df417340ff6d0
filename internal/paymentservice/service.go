// Package paymentservice orchestrates payment execution across the kyc,
// fraud, card, limit and ledger stages.
package paymentservice

import (
	"context"
	"time"

	"github.com/altx-finance/ledger-engine/internal/audit"
	"github.com/altx-finance/ledger-engine/internal/cardcontrol"
	"github.com/altx-finance/ledger-engine/internal/domain"
	"github.com/altx-finance/ledger-engine/internal/fraudservice"
	"github.com/altx-finance/ledger-engine/internal/interbank"
	"github.com/altx-finance/ledger-engine/internal/kyc"
	"github.com/altx-finance/ledger-engine/internal/ledgerrepo"
	"github.com/altx-finance/ledger-engine/internal/limitservice"
	"github.com/altx-finance/ledger-engine/internal/metrics"
	"github.com/altx-finance/ledger-engine/internal/webhook"

	"github.com/google/uuid"
)

// LedgerService commits validated payments to the ledger.
//
//go:generate mockgen -source service.go -destination service_mock.go -package paymentservice
type LedgerService interface {
	RecordTransfer(ctx context.Context, actor string, arg domain.RecordTransferParams) (ledgerrepo.TransferResult, error)
}

// FraudChecker scores payments before money moves.
type FraudChecker interface {
	ValidatePayment(ctx context.Context, actor string, arg fraudservice.ValidateParams) (domain.FraudCheckResult, error)
}

// LimitEvaluator checks payments against configured spending limits.
type LimitEvaluator interface {
	Evaluate(ctx context.Context, actor string, arg limitservice.EvaluateParams) error
}

// CardValidator checks card-present payments against card controls.
type CardValidator interface {
	ValidateCardTransaction(ctx context.Context, actor, token, amount string, mcc *int, geo string) (cardcontrol.ValidationResult, error)
}

// AccountRepo reads accounts for ownership and clearing lookups.
type AccountRepo interface {
	Get(ctx context.Context, id int64) (domain.Account, error)
	GetByOwnerAndCurrency(ctx context.Context, owner, currency string) (domain.Account, error)
}

// ScheduleRepo persists deferred payments.
type ScheduleRepo interface {
	Create(ctx context.Context, owner, actor string, payload domain.CreatePaymentParams, scheduledFor time.Time, maxAttempts int) (domain.PaymentSchedule, error)
	Get(ctx context.Context, id int64, owner string) (domain.PaymentSchedule, error)
	ListByOwner(ctx context.Context, owner string) ([]domain.PaymentSchedule, error)
	Cancel(ctx context.Context, id int64, owner string) (domain.PaymentSchedule, error)
}

// Service facilitates payment orchestration business logic.
type Service struct {
	ledger    LedgerService
	fraud     FraudChecker
	limits    LimitEvaluator
	cards     CardValidator
	accounts  AccountRepo
	schedules ScheduleRepo
	gateway   interbank.Gateway
	kyc       kyc.Provider
	auditor   audit.Recorder
	notifier  webhook.Notifier

	kycMode       string
	clearingOwner string
	maxAttempts   int
	now           func() time.Time
}

// NewService returns payment Service.
func NewService(
	ledger LedgerService,
	fraud FraudChecker,
	limits LimitEvaluator,
	cards CardValidator,
	accounts AccountRepo,
	schedules ScheduleRepo,
	gateway interbank.Gateway,
	kycProvider kyc.Provider,
	auditor audit.Recorder,
	notifier webhook.Notifier,
	kycMode, clearingOwner string,
	maxAttempts int,
) *Service {
	return &Service{
		ledger:        ledger,
		fraud:         fraud,
		limits:        limits,
		cards:         cards,
		accounts:      accounts,
		schedules:     schedules,
		gateway:       gateway,
		kyc:           kycProvider,
		auditor:       auditor,
		notifier:      notifier,
		kycMode:       kycMode,
		clearingOwner: clearingOwner,
		maxAttempts:   maxAttempts,
		now:           time.Now,
	}
}

// CreatePayment drives one payment request through the full pipeline:
// schedule short-circuit, kyc gate, fraud scoring, card controls, spending
// limits, then the ledger commit or interbank handoff. The stage order is
// fixed; a rejection at any stage stops the pipeline before money moves.
func (s *Service) CreatePayment(ctx context.Context, actor string, arg domain.CreatePaymentParams) (domain.PaymentResult, error) {
	var result domain.PaymentResult

	if _, err := uuid.Parse(arg.IdempotencyKey); err != nil {
		return result, domain.ErrInvalidIdempotencyKey
	}

	if arg.TransferType == "" {
		arg.TransferType = domain.TransferInternal
	}

	switch arg.TransferType {
	case domain.TransferInternal:
		if arg.ToAccountID == nil {
			return result, domain.ErrRecipientRequired
		}
	case domain.TransferInterbank:
		if arg.BeneficiaryIBAN == "" {
			return result, domain.ErrBeneficiaryRequired
		}
	}

	from, err := s.accounts.Get(ctx, arg.FromAccountID)
	if err != nil {
		return result, err
	}

	if arg.ScheduledFor != nil && arg.ScheduledFor.After(s.now()) {
		return s.schedule(ctx, actor, from.Owner, arg)
	}
	arg.ScheduledFor = nil

	if err := s.checkKYC(ctx, actor, from.Owner, arg); err != nil {
		return result, err
	}

	if _, err := s.fraud.ValidatePayment(ctx, actor, fraudservice.ValidateParams{
		AccountID:       arg.FromAccountID,
		CreditAccountID: arg.ToAccountID,
		Amount:          arg.Amount,
		Currency:        arg.Currency,
		TraceID:         arg.TraceID,
	}); err != nil {
		metrics.PaymentsRejected.WithLabelValues("fraud").Inc()
		return result, err
	}

	if arg.CardToken != "" {
		if _, err := s.cards.ValidateCardTransaction(ctx, actor, arg.CardToken, arg.Amount, arg.MCC, arg.GeoLocation); err != nil {
			metrics.PaymentsRejected.WithLabelValues("card").Inc()
			return result, err
		}
	}

	if err := s.limits.Evaluate(ctx, actor, limitservice.EvaluateParams{
		AccountID: arg.FromAccountID,
		Owner:     from.Owner,
		Amount:    arg.Amount,
		MCC:       arg.MCC,
		Geo:       arg.GeoLocation,
		TraceID:   arg.TraceID,
	}); err != nil {
		metrics.PaymentsRejected.WithLabelValues("limit").Inc()
		return result, err
	}

	if arg.TransferType == domain.TransferInterbank {
		return s.executeInterbank(ctx, actor, arg)
	}

	return s.executeInternal(ctx, actor, arg)
}

func (s *Service) checkKYC(ctx context.Context, actor, owner string, arg domain.CreatePaymentParams) error {
	status, err := s.kyc.StatusFor(ctx, owner)
	if err != nil {
		return err
	}

	if status == kyc.StatusVerified {
		return nil
	}
	if status == kyc.StatusReview && s.kycMode == kyc.ModeStub {
		return nil
	}

	metrics.PaymentsRejected.WithLabelValues("kyc").Inc()

	s.auditor.Record(ctx, actor, "PAYMENT_KYC_BLOCKED", map[string]interface{}{
		"owner":      owner,
		"kyc_status": status,
		"account_id": arg.FromAccountID,
	}, arg.TraceID)

	return domain.ErrKYCNotVerified
}

func (s *Service) schedule(ctx context.Context, actor, owner string, arg domain.CreatePaymentParams) (domain.PaymentResult, error) {
	scheduledFor := arg.ScheduledFor.UTC()

	payload := arg
	payload.ScheduledFor = nil

	schedule, err := s.schedules.Create(ctx, owner, actor, payload, scheduledFor, s.maxAttempts)
	if err != nil {
		return domain.PaymentResult{}, err
	}

	s.auditor.Record(ctx, actor, "PAYMENT_SCHEDULED", map[string]interface{}{
		"schedule_id":   schedule.ID,
		"account_id":    arg.FromAccountID,
		"amount":        arg.Amount,
		"currency":      arg.Currency,
		"scheduled_for": scheduledFor,
	}, arg.TraceID)

	return domain.PaymentResult{
		Status:       domain.PaymentScheduled,
		ScheduleID:   schedule.ID,
		ScheduledFor: &schedule.ScheduledFor,
		Message:      "payment scheduled for later execution",
	}, nil
}

func (s *Service) executeInternal(ctx context.Context, actor string, arg domain.CreatePaymentParams) (domain.PaymentResult, error) {
	transfer, err := s.ledger.RecordTransfer(ctx, actor, domain.RecordTransferParams{
		DebitAccountID:  arg.FromAccountID,
		CreditAccountID: *arg.ToAccountID,
		Amount:          arg.Amount,
		Currency:        arg.Currency,
		IdempotencyKey:  arg.IdempotencyKey,
		TraceID:         arg.TraceID,
	})
	if err != nil {
		return domain.PaymentResult{}, err
	}

	if !transfer.Replayed {
		s.auditor.Record(ctx, actor, "PAYMENT_COMPLETED", map[string]interface{}{
			"entry_id":        transfer.Entry.ID,
			"from_account_id": arg.FromAccountID,
			"to_account_id":   *arg.ToAccountID,
			"amount":          transfer.Entry.Amount,
			"currency":        transfer.Entry.Currency,
		}, arg.TraceID)

		s.notifier.Notify(ctx, "PAYMENT_COMPLETED", map[string]interface{}{
			"entry_id": transfer.Entry.ID,
			"amount":   transfer.Entry.Amount,
			"currency": transfer.Entry.Currency,
		})
	}

	return domain.PaymentResult{
		Status:        domain.PaymentSuccess,
		LedgerEntryID: transfer.Entry.ID,
	}, nil
}

// executeInterbank hands the order to the partner gateway before moving any
// money. Only an accepted handoff debits the payer into the currency's
// clearing account; a gateway failure leaves the ledger untouched.
func (s *Service) executeInterbank(ctx context.Context, actor string, arg domain.CreatePaymentParams) (domain.PaymentResult, error) {
	var result domain.PaymentResult

	clearing, err := s.accounts.GetByOwnerAndCurrency(ctx, s.clearingOwner, arg.Currency)
	if err != nil {
		return result, err
	}

	ack, err := s.gateway.InitiateTransfer(ctx, interbank.TransferRequest{
		Amount:          arg.Amount,
		Currency:        arg.Currency,
		BeneficiaryIBAN: arg.BeneficiaryIBAN,
		BeneficiaryBank: arg.BeneficiaryBank,
		Description:     arg.Description,
		TraceID:         arg.TraceID,
	})
	if err != nil {
		metrics.PaymentsRejected.WithLabelValues("gateway").Inc()
		return result, err
	}

	transfer, err := s.ledger.RecordTransfer(ctx, actor, domain.RecordTransferParams{
		DebitAccountID:  arg.FromAccountID,
		CreditAccountID: clearing.ID,
		Amount:          arg.Amount,
		Currency:        arg.Currency,
		IdempotencyKey:  arg.IdempotencyKey,
		TraceID:         arg.TraceID,
	})
	if err != nil {
		return result, err
	}

	if !transfer.Replayed {
		s.auditor.Record(ctx, actor, "INTERBANK_TRANSFER_INITIATED", map[string]interface{}{
			"entry_id":          transfer.Entry.ID,
			"from_account_id":   arg.FromAccountID,
			"amount":            transfer.Entry.Amount,
			"currency":          transfer.Entry.Currency,
			"beneficiary_iban":  arg.BeneficiaryIBAN,
			"beneficiary_bank":  arg.BeneficiaryBank,
			"gateway_reference": ack.Reference,
		}, arg.TraceID)

		s.notifier.Notify(ctx, "INTERBANK_TRANSFER_INITIATED", map[string]interface{}{
			"entry_id":          transfer.Entry.ID,
			"amount":            transfer.Entry.Amount,
			"currency":          transfer.Entry.Currency,
			"gateway_reference": ack.Reference,
		})
	}

	return domain.PaymentResult{
		Status:           domain.PaymentPending,
		LedgerEntryID:    transfer.Entry.ID,
		GatewayReference: ack.Reference,
		Message:          "interbank transfer initiated",
	}, nil
}

// ExecuteSchedule runs a claimed schedule's payload through the payment
// pipeline immediately.
func (s *Service) ExecuteSchedule(ctx context.Context, schedule domain.PaymentSchedule) (domain.PaymentResult, error) {
	payload := schedule.Payload
	payload.ScheduledFor = nil

	return s.CreatePayment(ctx, schedule.Actor, payload)
}

// GetSchedule returns the owner's schedule.
func (s *Service) GetSchedule(ctx context.Context, id int64, owner string) (domain.PaymentSchedule, error) {
	return s.schedules.Get(ctx, id, owner)
}

// ListSchedules returns the owner's schedules, newest first.
func (s *Service) ListSchedules(ctx context.Context, owner string) ([]domain.PaymentSchedule, error) {
	return s.schedules.ListByOwner(ctx, owner)
}

// CancelSchedule cancels a schedule that has not left the SCHEDULED state.
func (s *Service) CancelSchedule(ctx context.Context, actor string, id int64, owner string) (domain.PaymentSchedule, error) {
	schedule, err := s.schedules.Cancel(ctx, id, owner)
	if err != nil {
		return schedule, err
	}

	s.auditor.Record(ctx, actor, "PAYMENT_SCHEDULED_CANCELLED", map[string]interface{}{
		"schedule_id": schedule.ID,
	}, "")

	return schedule, nil
}
