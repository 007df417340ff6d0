// Package events provides the domain event bus consumed by the engine.
package events

import (
	"context"

	"github.com/altx-finance/ledger-engine/pkg/signpkg"

	"github.com/rs/zerolog"
)

// Topics the engine publishes to.
const (
	TopicTransactions = "transactions"
	TopicFraudAlerts  = "fraud_alerts"
)

// Bus is the event publishing contract. Consumers assume at-least-once
// delivery; the engine never waits on delivery.
//
//go:generate mockgen -source events.go -destination events_mock.go -package events
type Bus interface {
	Emit(ctx context.Context, topic string, payload map[string]interface{})
}

// LogBus publishes events as structured log records. When a signing secret
// is configured every payload gains signature and signature_alg fields so
// downstream consumers can verify authenticity without a transport-level
// trust boundary.
type LogBus struct {
	secret string
}

// NewLogBus returns a LogBus. An empty secret disables payload signing.
func NewLogBus(secret string) *LogBus {
	return &LogBus{secret: secret}
}

// Emit publishes one event.
func (b *LogBus) Emit(ctx context.Context, topic string, payload map[string]interface{}) {
	l := zerolog.Ctx(ctx)

	if b.secret != "" {
		payload["signature"] = signpkg.Sign(payload, b.secret)
		payload["signature_alg"] = signpkg.Algorithm
	}

	l.Info().Str("topic", topic).Fields(map[string]interface{}{"event": payload}).Msg("event emitted")
}
