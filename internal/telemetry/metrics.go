package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LogEntriesTotal counts log entries by level.
	LogEntriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cetsp_log_entries_total",
			Help: "Total number of log entries by level.",
		},
		[]string{"level"},
	)

	// LogErrorsTotal counts error-level log entries specifically.
	LogErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cetsp_log_errors_total",
			Help: "Total number of error log entries.",
		},
	)

	// NodesExploredTotal is the counter for B&B nodes popped from the search
	// strategy. No code in this module increments it.
	NodesExploredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cetsp_nodes_explored_total",
			Help: "Total number of search-tree nodes explored by the driver.",
		},
	)

	// BranchesTotal is the counter for Node.Branch invocations that produced
	// children. No code in this module increments it.
	BranchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cetsp_branches_total",
			Help: "Total number of branching operations performed.",
		},
	)

	// RelaxationDurationSeconds measures a single SOCP Solve call's latency.
	RelaxationDurationSeconds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cetsp_relaxation_duration_seconds",
			Help:    "Duration of a single SOCP relaxation Solve call.",
			Buckets: prometheus.DefBuckets,
		},
	)

	// SolutionPoolUpperBound is the gauge for the current global upper bound.
	// No code in this module sets it.
	SolutionPoolUpperBound = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cetsp_upper_bound",
			Help: "Current best-known feasible trajectory length.",
		},
	)

	// RootLowerBound is the gauge for the current root node lower bound. No
	// code in this module sets it.
	RootLowerBound = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cetsp_lower_bound",
			Help: "Current root-node lower bound.",
		},
	)

	// SolverFailuresTotal counts SolverFailure-class errors swallowed by
	// the driver's fallback policy.
	SolverFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cetsp_solver_failures_total",
			Help: "Total number of swallowed SOCP/MIP solver failures.",
		},
	)
)
