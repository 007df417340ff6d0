package cardcontrol

import (
	"context"
	"time"

	"github.com/altx-finance/ledger-engine/internal/audit"
	"github.com/altx-finance/ledger-engine/internal/domain"

	"github.com/shopspring/decimal"
)

// Repo is the card control persistence contract.
//
//go:generate mockgen -source service.go -destination service_mock.go -package cardcontrol
type Repo interface {
	Create(ctx context.Context, accountID int64, token string) (Card, error)
	GetByToken(ctx context.Context, token string) (Card, error)
	SetStatus(ctx context.Context, token string, status Status) (Card, error)
	UpdateLimits(ctx context.Context, token string, mcc []int, geo []string, dailyLimit, monthlyLimit string) (Card, error)
}

// DebitSummer aggregates ledger debits for card spend limit windows.
type DebitSummer interface {
	SumDebitsSince(ctx context.Context, accountID int64, since time.Time) (string, error)
}

// Service facilitates card control business logic.
type Service struct {
	repo    Repo
	entries DebitSummer
	auditor audit.Recorder
}

// NewService returns card control Service.
func NewService(repo Repo, entries DebitSummer, auditor audit.Recorder) *Service {
	return &Service{repo: repo, entries: entries, auditor: auditor}
}

// Register registers a card token for the account.
func (s *Service) Register(ctx context.Context, actor string, accountID int64, token string) (Card, error) {
	c, err := s.repo.Create(ctx, accountID, token)
	if err != nil {
		return c, err
	}

	s.auditor.Record(ctx, actor, "CARD_REGISTERED", map[string]interface{}{
		"card_id":    c.ID,
		"account_id": c.AccountID,
	}, "")

	return c, nil
}

// SetStatus freezes or unfreezes the card.
func (s *Service) SetStatus(ctx context.Context, actor, token string, status Status) (Card, error) {
	c, err := s.repo.SetStatus(ctx, token, status)
	if err != nil {
		return c, err
	}

	action := "CARD_UNFROZEN"
	if status == StatusFrozen {
		action = "CARD_FROZEN"
	}

	s.auditor.Record(ctx, actor, action, map[string]interface{}{
		"card_id":    c.ID,
		"account_id": c.AccountID,
	}, "")

	return c, nil
}

// UpdateLimits replaces the card's whitelists and spend limits.
func (s *Service) UpdateLimits(ctx context.Context, actor, token string, mcc []int, geo []string, dailyLimit, monthlyLimit string) (Card, error) {
	c, err := s.repo.UpdateLimits(ctx, token, mcc, geo, dailyLimit, monthlyLimit)
	if err != nil {
		return c, err
	}

	s.auditor.Record(ctx, actor, "CARD_CONTROLS_UPDATED", map[string]interface{}{
		"card_id":    c.ID,
		"account_id": c.AccountID,
	}, "")

	return c, nil
}

// ValidateCardTransaction checks a payment carrying a card token against the
// card's controls. Rejections are audited with a machine-readable reason.
func (s *Service) ValidateCardTransaction(ctx context.Context, actor, token, amount string, mcc *int, geo string) (ValidationResult, error) {
	var res ValidationResult

	c, err := s.repo.GetByToken(ctx, token)
	if err != nil {
		return res, err
	}

	if c.Status == StatusFrozen {
		s.recordRejection(ctx, actor, c, "CARD_FROZEN")
		return res, ErrCardFrozen
	}

	if mcc != nil && len(c.MCCWhitelist) > 0 && !containsInt(c.MCCWhitelist, *mcc) {
		s.recordRejection(ctx, actor, c, "MCC_NOT_ALLOWED")
		return res, ErrMCCNotAllowed
	}

	if geo != "" && len(c.GeoWhitelist) > 0 && !containsString(c.GeoWhitelist, geo) {
		s.recordRejection(ctx, actor, c, "GEO_NOT_ALLOWED")
		return res, ErrGeoNotAllowed
	}

	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return res, domain.ErrInvalidAmount
	}

	now := time.Now().UTC()

	if c.DailyLimit != "" {
		dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

		ok, err := s.withinLimit(ctx, c, amt, c.DailyLimit, dayStart)
		if err != nil {
			return res, err
		}
		if !ok {
			s.recordRejection(ctx, actor, c, "DAILY_CARD_LIMIT_EXCEEDED")
			return res, ErrCardLimitExceeded
		}
	}

	if c.MonthlyLimit != "" {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

		ok, err := s.withinLimit(ctx, c, amt, c.MonthlyLimit, monthStart)
		if err != nil {
			return res, err
		}
		if !ok {
			s.recordRejection(ctx, actor, c, "MONTHLY_CARD_LIMIT_EXCEEDED")
			return res, ErrCardLimitExceeded
		}
	}

	return ValidationResult{Valid: true, CardID: c.ID, AccountID: c.AccountID}, nil
}

func (s *Service) withinLimit(ctx context.Context, c Card, amount decimal.Decimal, limit string, since time.Time) (bool, error) {
	ceiling, err := decimal.NewFromString(limit)
	if err != nil {
		return false, err
	}

	spentStr, err := s.entries.SumDebitsSince(ctx, c.AccountID, since)
	if err != nil {
		return false, err
	}

	spent, err := decimal.NewFromString(spentStr)
	if err != nil {
		return false, err
	}

	return spent.Add(amount).LessThanOrEqual(ceiling), nil
}

func (s *Service) recordRejection(ctx context.Context, actor string, c Card, reason string) {
	s.auditor.Record(ctx, actor, "CARD_VALIDATION_FAILED", map[string]interface{}{
		"card_id":    c.ID,
		"account_id": c.AccountID,
		"reason":     reason,
	}, "")
}

func containsInt(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

func containsString(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
