package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/altx-finance/ledger-engine/pkg/signpkg"

	"github.com/stretchr/testify/require"
)

const testSecret = "webhook-test-secret"

func TestNotifySignsBody(t *testing.T) {
	var (
		gotBody      map[string]interface{}
		gotSignature string
		calls        int
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++

		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		gotSignature = r.Header.Get("X-Webhook-Signature")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	notifier := NewHTTPNotifier(true, server.URL, testSecret)

	notifier.Notify(context.Background(), "PAYMENT_COMPLETED", map[string]interface{}{
		"entry_id": "12",
		"amount":   "100.00",
	})

	require.Equal(t, 1, calls)
	require.Equal(t, "PAYMENT_COMPLETED", gotBody["event"])

	payload, ok := gotBody["payload"].(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, "100.00", payload["amount"])

	// The signature header must match a recomputation over the decoded body.
	require.Equal(t, signpkg.Sign(gotBody, testSecret), gotSignature)
}

func TestNotifyWithoutSecretSkipsSignature(t *testing.T) {
	var gotSignature string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSignature = r.Header.Get("X-Webhook-Signature")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	notifier := NewHTTPNotifier(true, server.URL, "")

	notifier.Notify(context.Background(), "PAYMENT_COMPLETED", nil)

	require.Empty(t, gotSignature)
}

func TestNotifyDisabledIsNoop(t *testing.T) {
	calls := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	notifier := NewHTTPNotifier(false, server.URL, testSecret)

	notifier.Notify(context.Background(), "PAYMENT_COMPLETED", map[string]interface{}{"entry_id": "12"})

	require.Zero(t, calls)
}

func TestNotifyUnreachableURLDoesNotPanic(t *testing.T) {
	notifier := NewHTTPNotifier(true, "http://127.0.0.1:1", testSecret)

	notifier.Notify(context.Background(), "PAYMENT_COMPLETED", map[string]interface{}{"entry_id": "12"})
}
