// Package limitservice manages business logic of spending limit evaluation.
package limitservice

import (
	"context"
	"time"

	"github.com/altx-finance/ledger-engine/internal/audit"
	"github.com/altx-finance/ledger-engine/internal/domain"
	"github.com/altx-finance/ledger-engine/pkg/errorspkg"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Repo is the limit rule persistence contract.
//
//go:generate mockgen -source service.go -destination service_mock.go -package limitservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateLimitRuleParams) (domain.LimitRule, error)
	List(ctx context.Context) ([]domain.LimitRule, error)
	ListActiveMatching(ctx context.Context, accountID int64, owner string) ([]domain.LimitRule, error)
}

// DebitSummer aggregates ledger debits for windowed scopes.
type DebitSummer interface {
	SumDebitsSince(ctx context.Context, accountID int64, since time.Time) (string, error)
}

// EvaluateParams is the input data for one limit evaluation.
type EvaluateParams struct {
	AccountID int64
	Owner     string
	Amount    string
	MCC       *int
	Geo       string
	TraceID   string
}

// Service facilitates limit evaluation business logic.
type Service struct {
	repo    Repo
	entries DebitSummer
	auditor audit.Recorder
	now     func() time.Time
}

// NewService returns limit Service.
func NewService(repo Repo, entries DebitSummer, auditor audit.Recorder) *Service {
	return &Service{repo: repo, entries: entries, auditor: auditor, now: time.Now}
}

// CreateRule persists a limit rule.
func (s *Service) CreateRule(ctx context.Context, actor string, arg domain.CreateLimitRuleParams) (domain.LimitRule, error) {
	if _, err := decimal.NewFromString(arg.Threshold); err != nil {
		return domain.LimitRule{}, domain.ErrInvalidAmount
	}

	rule, err := s.repo.Create(ctx, arg)
	if err != nil {
		return rule, err
	}

	s.auditor.Record(ctx, actor, "LIMIT_RULE_CREATED", map[string]interface{}{
		"rule_id":   rule.ID,
		"scope":     rule.Scope,
		"threshold": rule.Threshold,
	}, "")

	return rule, nil
}

// ListRules returns all limit rules.
func (s *Service) ListRules(ctx context.Context) ([]domain.LimitRule, error) {
	return s.repo.List(ctx)
}

// Evaluate checks the payment against every matching active rule. Windowed
// scopes are computed from a fresh debit aggregate each call; nothing is
// cached between evaluations. The first violated rule rejects the payment.
func (s *Service) Evaluate(ctx context.Context, actor string, arg EvaluateParams) error {
	l := zerolog.Ctx(ctx)

	amount, err := decimal.NewFromString(arg.Amount)
	if err != nil {
		return domain.ErrInvalidAmount
	}

	rules, err := s.repo.ListActiveMatching(ctx, arg.AccountID, arg.Owner)
	if err != nil {
		return err
	}

	now := s.now().UTC()

	for _, rule := range rules {
		if rule.MCC != nil && (arg.MCC == nil || *rule.MCC != *arg.MCC) {
			continue
		}
		if rule.Geo != nil && *rule.Geo != arg.Geo {
			continue
		}

		threshold, err := decimal.NewFromString(rule.Threshold)
		if err != nil {
			l.Error().Err(err).Int64("rule_id", rule.ID).Send()
			return errorspkg.ErrInternal
		}

		var spent decimal.Decimal

		switch rule.Scope {
		case domain.LimitPerTransaction:
			spent = decimal.Zero
		case domain.LimitDaily:
			spent, err = s.spentSince(ctx, arg.AccountID,
				time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC))
		case domain.LimitMonthly:
			spent, err = s.spentSince(ctx, arg.AccountID,
				time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC))
		default:
			continue
		}
		if err != nil {
			return err
		}

		if spent.Add(amount).GreaterThan(threshold) {
			violation := &domain.LimitViolationError{
				RuleID:    rule.ID,
				Scope:     rule.Scope,
				Threshold: threshold.StringFixed(2),
				Spent:     spent.StringFixed(2),
				Headroom:  decimal.Max(threshold.Sub(spent), decimal.Zero).StringFixed(2),
			}

			s.auditor.Record(ctx, actor, "LIMIT_REJECTED", map[string]interface{}{
				"rule_id":    violation.RuleID,
				"scope":      violation.Scope,
				"threshold":  violation.Threshold,
				"spent":      violation.Spent,
				"headroom":   violation.Headroom,
				"account_id": arg.AccountID,
				"amount":     amount.StringFixed(2),
			}, arg.TraceID)

			return violation
		}
	}

	s.auditor.Record(ctx, actor, "LIMIT_EVALUATED", map[string]interface{}{
		"account_id":      arg.AccountID,
		"amount":          amount.StringFixed(2),
		"rules_evaluated": len(rules),
	}, arg.TraceID)

	return nil
}

func (s *Service) spentSince(ctx context.Context, accountID int64, since time.Time) (decimal.Decimal, error) {
	l := zerolog.Ctx(ctx)

	raw, err := s.entries.SumDebitsSince(ctx, accountID, since)
	if err != nil {
		return decimal.Zero, err
	}

	spent, err := decimal.NewFromString(raw)
	if err != nil {
		l.Error().Err(err).Send()
		return decimal.Zero, errorspkg.ErrInternal
	}

	return spent, nil
}
