// Package interbank manages the outbound handoff to partner banks.
package interbank

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/altx-finance/ledger-engine/internal/metrics"
	"github.com/altx-finance/ledger-engine/pkg/retrypkg"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrGatewayUnavailable indicates that the partner gateway rejected every attempt.
var ErrGatewayUnavailable = errors.New("interbank gateway unavailable")

// Gateway modes.
const (
	ModeStub = "stub"
	ModeReal = "real"
)

// Transfer statuses reported by the gateway. Stub transfers are accepted
// immediately; real transfers stay pending until the counterparty settles.
const (
	StatusAccepted = "ACCEPTED"
	StatusPending  = "PENDING"
)

// TransferRequest is the outbound interbank order.
type TransferRequest struct {
	Amount          string `json:"amount"`
	Currency        string `json:"currency"`
	BeneficiaryIBAN string `json:"beneficiary_iban"`
	BeneficiaryBank string `json:"beneficiary_bank"`
	Description     string `json:"description,omitempty"`
	TraceID         string `json:"trace_id,omitempty"`
}

// TransferResult is the gateway's acknowledgement.
type TransferResult struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
	Provider  string `json:"provider"`
}

// Gateway is the interbank transfer contract.
//
//go:generate mockgen -source gateway.go -destination gateway_mock.go -package interbank
type Gateway interface {
	InitiateTransfer(ctx context.Context, req TransferRequest) (TransferResult, error)
}

// StubGateway simulates a partner bank with a configurable failure rate.
// Failed attempts are retried with linear backoff before giving up.
// In real mode accepted orders are acknowledged as PENDING, matching a
// provider that settles asynchronously.
type StubGateway struct {
	provider    string
	status      string
	failureRate float64
	retry       retrypkg.Options

	mu   sync.Mutex
	rand *rand.Rand
}

// NewStubGateway returns a StubGateway.
func NewStubGateway(mode, provider string, failureRate float64, retryAttempts int, retryBackoff time.Duration) *StubGateway {
	status := StatusAccepted
	if mode == ModeReal {
		status = StatusPending
	}

	return &StubGateway{
		provider:    provider,
		status:      status,
		failureRate: failureRate,
		retry:       retrypkg.Options{Attempts: retryAttempts, Backoff: retryBackoff},
		rand:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// InitiateTransfer hands the order to the simulated partner. Each attempt
// fails with the configured probability; exhausted attempts surface as
// ErrGatewayUnavailable.
func (g *StubGateway) InitiateTransfer(ctx context.Context, req TransferRequest) (TransferResult, error) {
	l := zerolog.Ctx(ctx)

	var result TransferResult

	attempt := 0
	err := retrypkg.Do(ctx, g.retry, func() error {
		attempt++

		if g.roll() < g.failureRate {
			l.Warn().
				Int("attempt", attempt).
				Str("beneficiary_bank", req.BeneficiaryBank).
				Msg("interbank attempt failed")

			return ErrGatewayUnavailable
		}

		result = TransferResult{
			Reference: uuid.NewString(),
			Status:    g.status,
			Provider:  g.provider,
		}

		return nil
	})
	if err != nil {
		return TransferResult{}, ErrGatewayUnavailable
	}

	metrics.InterbankInitiations.Inc()

	return result, nil
}

func (g *StubGateway) roll() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.rand.Float64()
}
