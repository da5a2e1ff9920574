// Package metrics exposes Prometheus instrumentation for the solver.
//
// Metrics are registered on a dedicated registry so embedding applications
// can mount it on whatever handler they serve, or ignore it entirely.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all planner metrics.
var Registry = prometheus.NewRegistry()

var (
	// NodesExpanded counts search-tree nodes expanded by the optimizer.
	NodesExpanded = promauto.With(Registry).NewCounter(prometheus.CounterOpts{
		Name: "fleetplan_solver_nodes_expanded_total",
		Help: "Number of branch-and-bound nodes expanded.",
	})

	// BranchesPruned counts branches discarded by the cost bound.
	BranchesPruned = promauto.With(Registry).NewCounter(prometheus.CounterOpts{
		Name: "fleetplan_solver_branches_pruned_total",
		Help: "Number of branches pruned by the lower bound.",
	})

	// IncumbentUpdates counts improvements to the best known plan.
	IncumbentUpdates = promauto.With(Registry).NewCounter(prometheus.CounterOpts{
		Name: "fleetplan_solver_incumbent_updates_total",
		Help: "Number of times the incumbent plan was replaced.",
	})

	// SolveDuration observes wall-clock time per Solve call.
	SolveDuration = promauto.With(Registry).NewHistogram(prometheus.HistogramOpts{
		Name:    "fleetplan_solver_duration_seconds",
		Help:    "Wall-clock duration of Solve calls.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	})
)
