// Package fraudservice manages business logic of fraud risk scoring.
package fraudservice

import (
	"context"
	"fmt"
	"time"

	"github.com/altx-finance/ledger-engine/internal/audit"
	"github.com/altx-finance/ledger-engine/internal/domain"
	"github.com/altx-finance/ledger-engine/internal/events"
	"github.com/altx-finance/ledger-engine/internal/metrics"
	"github.com/altx-finance/ledger-engine/pkg/errorspkg"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// rejectScore is the accumulated risk score at which a payment is rejected.
const rejectScore = 70

// statsWindow is the lookback for the amount anomaly baseline.
const statsWindow = 30 * 24 * time.Hour

// veryRoundAmounts are amounts that, combined with size, hint at structuring.
var veryRoundAmounts = map[string]struct{}{
	"100": {}, "500": {}, "1000": {}, "5000": {},
	"10000": {}, "50000": {}, "100000": {},
}

// EntryRepo aggregates ledger debits for the fraud heuristics.
//
//go:generate mockgen -source service.go -destination service_mock.go -package fraudservice
type EntryRepo interface {
	CountDebitsSince(ctx context.Context, accountID int64, since time.Time) (int64, error)
	DebitStatsSince(ctx context.Context, accountID int64, currency string, since time.Time) (avg, max string, err error)
	CountMatchingDebits(ctx context.Context, debitAccountID, creditAccountID int64, amount string, since time.Time) (int64, error)
}

// ValidateParams is the input data for one fraud evaluation.
type ValidateParams struct {
	AccountID       int64
	CreditAccountID *int64
	Amount          string
	Currency        string
	TraceID         string
}

// Service facilitates fraud evaluation business logic.
type Service struct {
	entries EntryRepo
	auditor audit.Recorder
	bus     events.Bus
	now     func() time.Time
}

// NewService returns fraud Service.
func NewService(entries EntryRepo, auditor audit.Recorder, bus events.Bus) *Service {
	return &Service{entries: entries, auditor: auditor, bus: bus, now: time.Now}
}

// ValidatePayment scores the payment across four independent heuristics and
// rejects when the accumulated score crosses the threshold. Heuristics never
// short-circuit each other: every reason contributing to a rejection is
// reported.
func (s *Service) ValidatePayment(ctx context.Context, actor string, arg ValidateParams) (domain.FraudCheckResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.FraudCheckResult

	amount, err := decimal.NewFromString(arg.Amount)
	if err != nil {
		return result, domain.ErrInvalidAmount
	}

	checks := []func(context.Context, int64, decimal.Decimal, ValidateParams) (domain.FraudCheckResult, error){
		s.checkVelocity,
		s.checkAmountAnomaly,
		s.checkPattern,
		s.checkRoundAmount,
	}

	for _, check := range checks {
		partial, err := check(ctx, arg.AccountID, amount, arg)
		if err != nil {
			l.Error().Err(err).Send()
			return result, errorspkg.ErrInternal
		}

		result.RiskScore += partial.RiskScore
		result.Reasons = append(result.Reasons, partial.Reasons...)
	}

	if result.RiskScore >= rejectScore {
		metrics.FraudAlerts.Inc()

		s.auditor.Record(ctx, actor, "FRAUD_CHECK_FAILED", map[string]interface{}{
			"account_id": arg.AccountID,
			"amount":     amount.StringFixed(2),
			"risk_score": result.RiskScore,
			"reasons":    result.Reasons,
		}, arg.TraceID)

		s.bus.Emit(ctx, events.TopicFraudAlerts, map[string]interface{}{
			"type":       "FRAUD_ALERT",
			"account_id": arg.AccountID,
			"amount":     amount.StringFixed(2),
			"risk_score": result.RiskScore,
			"reasons":    result.Reasons,
		})

		return result, &domain.FraudError{RiskScore: result.RiskScore, Reasons: result.Reasons}
	}

	result.Passed = true

	s.auditor.Record(ctx, actor, "FRAUD_CHECK_PASSED", map[string]interface{}{
		"account_id": arg.AccountID,
		"amount":     amount.StringFixed(2),
		"risk_score": result.RiskScore,
	}, arg.TraceID)

	return result, nil
}

func (s *Service) checkVelocity(ctx context.Context, accountID int64, _ decimal.Decimal, _ ValidateParams) (domain.FraudCheckResult, error) {
	var result domain.FraudCheckResult

	now := s.now()

	last5min, err := s.entries.CountDebitsSince(ctx, accountID, now.Add(-5*time.Minute))
	if err != nil {
		return result, err
	}

	switch {
	case last5min >= 5:
		result.RiskScore += 50
		result.Reasons = append(result.Reasons, fmt.Sprintf("%d transactions in last 5 minutes", last5min))
	case last5min >= 3:
		result.RiskScore += 20
		result.Reasons = append(result.Reasons, fmt.Sprintf("%d transactions in last 5 minutes", last5min))
	}

	lastHour, err := s.entries.CountDebitsSince(ctx, accountID, now.Add(-time.Hour))
	if err != nil {
		return result, err
	}

	switch {
	case lastHour >= 20:
		result.RiskScore += 40
		result.Reasons = append(result.Reasons, fmt.Sprintf("%d transactions in last hour", lastHour))
	case lastHour >= 10:
		result.RiskScore += 15
		result.Reasons = append(result.Reasons, fmt.Sprintf("%d transactions in last hour", lastHour))
	}

	return result, nil
}

func (s *Service) checkAmountAnomaly(ctx context.Context, accountID int64, amount decimal.Decimal, arg ValidateParams) (domain.FraudCheckResult, error) {
	var result domain.FraudCheckResult

	avgRaw, maxRaw, err := s.entries.DebitStatsSince(ctx, accountID, arg.Currency, s.now().Add(-statsWindow))
	if err != nil {
		return result, err
	}

	avg, err := decimal.NewFromString(avgRaw)
	if err != nil {
		return result, err
	}

	max, err := decimal.NewFromString(maxRaw)
	if err != nil {
		return result, err
	}

	// No history, no baseline to deviate from.
	if avg.IsZero() {
		return result, nil
	}

	switch {
	case amount.GreaterThan(avg.Mul(decimal.NewFromInt(10))):
		result.RiskScore += 40
		result.Reasons = append(result.Reasons, "amount is 10x above the account average")
	case amount.GreaterThan(avg.Mul(decimal.NewFromInt(5))):
		result.RiskScore += 20
		result.Reasons = append(result.Reasons, "amount is 5x above the account average")
	}

	if amount.GreaterThan(max.Mul(decimal.NewFromInt(2))) {
		result.RiskScore += 30
		result.Reasons = append(result.Reasons, "amount is 2x above the account maximum")
	}

	return result, nil
}

func (s *Service) checkPattern(ctx context.Context, accountID int64, amount decimal.Decimal, arg ValidateParams) (domain.FraudCheckResult, error) {
	var result domain.FraudCheckResult

	if arg.CreditAccountID == nil {
		return result, nil
	}

	matching, err := s.entries.CountMatchingDebits(ctx, accountID, *arg.CreditAccountID,
		amount.StringFixed(2), s.now().Add(-24*time.Hour))
	if err != nil {
		return result, err
	}

	switch {
	case matching >= 5:
		result.RiskScore += 50
		result.Reasons = append(result.Reasons, fmt.Sprintf("%d identical transfers to the same account in 24 hours", matching))
	case matching >= 3:
		result.RiskScore += 25
		result.Reasons = append(result.Reasons, fmt.Sprintf("%d identical transfers to the same account in 24 hours", matching))
	}

	return result, nil
}

func (s *Service) checkRoundAmount(_ context.Context, _ int64, amount decimal.Decimal, _ ValidateParams) (domain.FraudCheckResult, error) {
	var result domain.FraudCheckResult

	if _, ok := veryRoundAmounts[amount.String()]; ok && amount.GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		result.RiskScore += 15
		result.Reasons = append(result.Reasons, "very round amount")

		return result, nil
	}

	if amount.IsInteger() && amount.GreaterThanOrEqual(decimal.NewFromInt(10000)) {
		result.RiskScore += 10
		result.Reasons = append(result.Reasons, "large round amount")
	}

	return result, nil
}
