// Package metrics exposes the Prometheus instrumentation shared by the
// services. Collectors are registered on the default registry and served
// through the /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ConversionsTotal counts completed currency conversions.
	ConversionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "multicurrency_conversions_total",
		Help: "Total number of completed currency conversions.",
	})

	// RateUpdateRunsTotal counts rate refresh runs by source and outcome.
	RateUpdateRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "multicurrency_rate_update_runs_total",
		Help: "Total number of rate refresh runs, partitioned by source and outcome.",
	}, []string{"source", "outcome"})

	// CurrenciesRefreshedTotal counts individual currency rates applied by
	// refresh runs.
	CurrenciesRefreshedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "multicurrency_currencies_refreshed_total",
		Help: "Total number of currency rates applied by refresh runs.",
	})

	// PaymentsRecordedTotal counts recorded foreign-currency payments.
	PaymentsRecordedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "multicurrency_payments_recorded_total",
		Help: "Total number of recorded multi-currency payments.",
	})
)
