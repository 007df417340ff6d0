// Package idempotencyservice guards mutating operations with stored-response
// replay keyed by (key, endpoint, scope).
package idempotencyservice

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/altx-finance/ledger-engine/internal/domain"
	"github.com/altx-finance/ledger-engine/pkg/errorspkg"
	"github.com/altx-finance/ledger-engine/pkg/signpkg"

	"github.com/rs/zerolog"
)

// Repo is the idempotency record persistence contract.
//
//go:generate mockgen -source service.go -destination service_mock.go -package idempotencyservice
type Repo interface {
	Get(ctx context.Context, key, endpoint, scope string) (domain.IdempotencyRecord, error)
	Start(ctx context.Context, key, endpoint, scope, requestHash string) (domain.IdempotencyRecord, error)
	Finalize(ctx context.Context, id int64, status domain.IdempotencyStatus, responseStatus int, body json.RawMessage) error
}

// Outcome is a stored or freshly produced operation result.
type Outcome struct {
	Status   int
	Body     json.RawMessage
	Replayed bool
}

// Service facilitates idempotency guard business logic.
type Service struct {
	repo Repo
}

// NewService returns idempotency Service.
func NewService(repo Repo) *Service {
	return &Service{repo: repo}
}

// Execute runs fn at most once per (key, endpoint, scope, payload).
//
// A repeat with the same fingerprint replays the stored outcome verbatim,
// including stored failures. A repeat with a different fingerprint is a
// conflict. A repeat while the first run is still PROCESSING is reported as
// in progress rather than running fn twice.
func (s *Service) Execute(ctx context.Context, key, endpoint, scope string, payload interface{}, fn func(ctx context.Context) (int, interface{}, error)) (Outcome, error) {
	l := zerolog.Ctx(ctx)

	hash, err := Fingerprint(payload)
	if err != nil {
		l.Error().Err(err).Send()
		return Outcome{}, errorspkg.ErrInternal
	}

	rec, err := s.repo.Get(ctx, key, endpoint, scope)
	switch err {
	case nil:
		if rec.RequestHash != hash {
			return Outcome{}, domain.ErrIdempotencyConflict
		}
		if rec.Status == domain.IdempotencyProcessing {
			return Outcome{}, domain.ErrIdempotencyInProgress
		}

		return Outcome{Status: rec.ResponseStatus, Body: rec.ResponseBody, Replayed: true}, nil
	case domain.ErrIdempotencyRecordNotFound:
	default:
		return Outcome{}, err
	}

	rec, err = s.repo.Start(ctx, key, endpoint, scope, hash)
	if err != nil {
		return Outcome{}, err
	}

	status, body, opErr := fn(ctx)

	raw, err := json.Marshal(body)
	if err != nil {
		l.Error().Err(err).Send()
		raw = []byte("null")
	}

	recStatus := domain.IdempotencyCompleted
	if opErr != nil {
		recStatus = domain.IdempotencyFailed
	}

	if err := s.repo.Finalize(ctx, rec.ID, recStatus, status, raw); err != nil {
		l.Error().Err(err).Msg("idempotency record finalize failed")
	}

	if opErr != nil {
		return Outcome{}, opErr
	}

	return Outcome{Status: status, Body: raw}, nil
}

// Fingerprint computes the request fingerprint: a SHA-256 over the payload's
// canonical JSON form, so field order never changes the hash.
func Fingerprint(payload interface{}) (string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	var generic interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return "", err
	}

	sum := sha256.Sum256([]byte(signpkg.Canonical(generic)))

	return hex.EncodeToString(sum[:]), nil
}
