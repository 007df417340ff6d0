// Package audit provides the append-only audit sink consumed by the engine.
package audit

import (
	"context"
	"encoding/json"

	"github.com/altx-finance/ledger-engine/pkg/dbpkg"

	"github.com/rs/zerolog"
)

// Recorder is the write-only audit contract. Recording is fire-and-forget:
// a failed write is logged and never fails the operation being audited.
//
//go:generate mockgen -source audit.go -destination audit_mock.go -package audit
type Recorder interface {
	Record(ctx context.Context, actor, action string, payload map[string]interface{}, traceID string)
}

// RepoPGS appends audit records to the audit_logs table.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns audit RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const insertQuery = `
INSERT INTO
    audit_logs (actor, action, payload, trace_id)
VALUES
    ($1, $2, $3, $4)
`

// Record appends one audit row.
func (r *RepoPGS) Record(ctx context.Context, actor, action string, payload map[string]interface{}, traceID string) {
	l := zerolog.Ctx(ctx)

	body, err := json.Marshal(payload)
	if err != nil {
		l.Error().Err(err).Str("action", action).Msg("audit payload marshal failed")
		return
	}

	var trace interface{}
	if traceID != "" {
		trace = traceID
	}

	if _, err := r.db.ExecContext(ctx, insertQuery, actor, action, body, trace); err != nil {
		l.Error().Err(err).Str("action", action).Msg("audit write failed")
	}
}
