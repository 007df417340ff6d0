// Package cardcontrol provides the card control registry consumed by the
// payment orchestrator.
package cardcontrol

import (
	"errors"
	"time"
)

var (
	// ErrCardNotFound indicates that no card is registered under the token.
	ErrCardNotFound = errors.New("card not found")
	// ErrCardFrozen indicates that the card is frozen.
	ErrCardFrozen = errors.New("card is frozen")
	// ErrMCCNotAllowed indicates that the merchant category is outside the whitelist.
	ErrMCCNotAllowed = errors.New("mcc is not allowed for this card")
	// ErrGeoNotAllowed indicates that the geolocation is outside the whitelist.
	ErrGeoNotAllowed = errors.New("geolocation is not allowed for this card")
	// ErrCardLimitExceeded indicates that the amount exceeds a card spend limit.
	ErrCardLimitExceeded = errors.New("amount exceeds card spend limit")
)

// Status is a card's lifecycle status.
type Status string

// All card statuses.
const (
	StatusActive Status = "ACTIVE"
	StatusFrozen Status = "FROZEN"
)

// Card is a registered card token with its controls.
type Card struct {
	ID           int64     `json:"id"`
	AccountID    int64     `json:"account_id"`
	Token        string    `json:"token"`
	Status       Status    `json:"status"`
	MCCWhitelist []int     `json:"mcc_whitelist,omitempty"`
	GeoWhitelist []string  `json:"geo_whitelist,omitempty"`
	DailyLimit   string    `json:"daily_limit,omitempty"`
	MonthlyLimit string    `json:"monthly_limit,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ValidationResult reports a passed card check.
type ValidationResult struct {
	Valid     bool  `json:"valid"`
	CardID    int64 `json:"card_id"`
	AccountID int64 `json:"account_id"`
}
