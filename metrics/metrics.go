// Package metrics exposes Prometheus counters for store mutations, document
// exports and logins.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StoreMutations counts successful store mutations by slot key and operation.
	StoreMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "workbench",
		Name:      "store_mutations_total",
		Help:      "Entity store mutations by store and operation.",
	}, []string{"store", "op"})

	// PersistFailures counts failed slot writes by slot key.
	PersistFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "workbench",
		Name:      "store_persist_failures_total",
		Help:      "Slot writes that returned an error.",
	}, []string{"store"})

	// SeedFallbacks counts stores that started from their seed dataset.
	SeedFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "workbench",
		Name:      "store_seed_fallbacks_total",
		Help:      "Store rehydrations that fell back to the seed dataset.",
	}, []string{"store", "reason"})

	// Exports counts generated documents by format.
	Exports = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "workbench",
		Name:      "exports_total",
		Help:      "Generated export documents by format.",
	}, []string{"format"})

	// Logins counts login attempts by outcome.
	Logins = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "workbench",
		Name:      "logins_total",
		Help:      "Login attempts against the auth backend by outcome.",
	}, []string{"outcome"})
)
