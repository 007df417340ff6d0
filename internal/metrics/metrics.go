// Package metrics exposes the engine's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TransfersCommitted counts ledger entries committed, replays excluded.
	TransfersCommitted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ledger_engine",
		Name:      "transfers_committed_total",
		Help:      "Number of ledger transfers committed.",
	})

	// PaymentsRejected counts payment rejections by stage.
	PaymentsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ledger_engine",
		Name:      "payments_rejected_total",
		Help:      "Number of payments rejected, partitioned by rejecting stage.",
	}, []string{"stage"})

	// FraudAlerts counts fraud rejections.
	FraudAlerts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ledger_engine",
		Name:      "fraud_alerts_total",
		Help:      "Number of payments rejected by the fraud evaluator.",
	})

	// ScheduleExecutions counts scheduled payment executions by outcome.
	ScheduleExecutions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ledger_engine",
		Name:      "schedule_executions_total",
		Help:      "Number of scheduled payment executions, partitioned by outcome.",
	}, []string{"outcome"})

	// InterbankInitiations counts interbank handoffs accepted by the gateway.
	InterbankInitiations = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ledger_engine",
		Name:      "interbank_initiations_total",
		Help:      "Number of interbank transfers accepted by the gateway.",
	})
)
