// Package webhook provides best-effort signed webhook notifications.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/altx-finance/ledger-engine/pkg/signpkg"

	"github.com/rs/zerolog"
)

// Notifier is the webhook contract. Delivery is best effort: a failed
// notification is logged and never blocks or reverts the transfer result.
//
//go:generate mockgen -source webhook.go -destination webhook_mock.go -package webhook
type Notifier interface {
	Notify(ctx context.Context, event string, payload map[string]interface{})
}

// HTTPNotifier posts signed webhook bodies to a configured URL.
type HTTPNotifier struct {
	enabled bool
	url     string
	secret  string
	client  *http.Client
}

// NewHTTPNotifier returns an HTTPNotifier. A disabled notifier or an empty
// URL turns Notify into a no-op.
func NewHTTPNotifier(enabled bool, url, secret string) *HTTPNotifier {
	return &HTTPNotifier{
		enabled: enabled,
		url:     url,
		secret:  secret,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

// Notify posts the event. Errors are logged only.
func (n *HTTPNotifier) Notify(ctx context.Context, event string, payload map[string]interface{}) {
	l := zerolog.Ctx(ctx)

	if !n.enabled || n.url == "" {
		return
	}

	body := map[string]interface{}{
		"event":      event,
		"payload":    payload,
		"emitted_at": time.Now().UTC().Format(time.RFC3339),
	}

	raw, err := json.Marshal(body)
	if err != nil {
		l.Warn().Err(err).Str("event", event).Msg("webhook payload marshal failed")
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(raw))
	if err != nil {
		l.Warn().Err(err).Str("event", event).Msg("webhook request build failed")
		return
	}

	req.Header.Set("Content-Type", "application/json")
	if n.secret != "" {
		req.Header.Set("X-Webhook-Signature", signpkg.Sign(body, n.secret))
	}

	resp, err := n.client.Do(req)
	if err != nil {
		l.Warn().Err(err).Str("event", event).Msg("webhook dispatch failed")
		return
	}

	resp.Body.Close()
}
