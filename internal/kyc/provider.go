// Package kyc provides the identity verification contract consumed by the engine.
package kyc

import (
	"context"
	"sync"
)

// Status is a user's KYC verification status.
type Status string

// All KYC statuses.
const (
	StatusPending  Status = "PENDING"
	StatusReview   Status = "REVIEW"
	StatusVerified Status = "VERIFIED"
	StatusRejected Status = "REJECTED"
)

// Provider modes. In stub mode the orchestrator also accepts owners whose
// status is still in REVIEW.
const (
	ModeStub = "stub"
	ModeReal = "real"
)

// Provider is the identity provider contract.
//
//go:generate mockgen -source provider.go -destination provider_mock.go -package kyc
type Provider interface {
	StatusFor(ctx context.Context, owner string) (Status, error)
}

// StubProvider serves registered statuses from memory, defaulting to
// VERIFIED for unknown owners. It stands in for a real identity provider
// in non-production deployments and tests.
type StubProvider struct {
	mu       sync.RWMutex
	statuses map[string]Status
}

// NewStubProvider returns an empty StubProvider.
func NewStubProvider() *StubProvider {
	return &StubProvider{statuses: make(map[string]Status)}
}

// SetStatus registers the owner's status.
func (p *StubProvider) SetStatus(owner string, status Status) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.statuses[owner] = status
}

// StatusFor returns the owner's registered status, or VERIFIED when unknown.
func (p *StubProvider) StatusFor(_ context.Context, owner string) (Status, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if status, ok := p.statuses[owner]; ok {
		return status, nil
	}

	return StatusVerified, nil
}
