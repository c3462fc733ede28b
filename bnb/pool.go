package bnb

import (
	"math"
	"sync"

	"github.com/katalvlaran/cetsp/geometry"
)

// SolutionPool tracks the monotone best-known feasible trajectory (the
// global upper bound) plus a history of every accepted trajectory.
//
// Add is the only mutator multiple child-evaluation goroutines may call
// concurrently (per the engine's concurrency model, §5): it is guarded by a
// mutex so the monotone-UB rule holds under concurrent discovery.
type SolutionPool struct {
	mu      sync.Mutex
	ub      float64
	best    *geometry.Trajectory
	history []geometry.Trajectory
}

// NewSolutionPool returns an empty pool with UB = +Inf.
func NewSolutionPool() *SolutionPool {
	return &SolutionPool{ub: math.Inf(1)}
}

// Add records t if its length strictly improves the current upper bound.
// Trajectories of length >= UB are discarded in O(1). Adding the same
// trajectory (by length) twice is a no-op after the first.
//
// Returns true iff t was accepted as the new best.
func (pool *SolutionPool) Add(t geometry.Trajectory) bool {
	pool.mu.Lock()
	defer pool.mu.Unlock()

	length := t.Length()
	if length >= pool.ub {
		return false
	}
	pool.ub = length
	best := t
	pool.best = &best
	pool.history = append(pool.history, t)

	return true
}

// Best returns the current best trajectory, or false if the pool is empty.
func (pool *SolutionPool) Best() (geometry.Trajectory, bool) {
	pool.mu.Lock()
	defer pool.mu.Unlock()

	if pool.best == nil {
		return geometry.Trajectory{}, false
	}

	return *pool.best, true
}

// UpperBound returns the current global upper bound (+Inf if empty).
func (pool *SolutionPool) UpperBound() float64 {
	pool.mu.Lock()
	defer pool.mu.Unlock()

	return pool.ub
}

// History returns a defensive copy of every accepted trajectory, in
// acceptance order.
func (pool *SolutionPool) History() []geometry.Trajectory {
	pool.mu.Lock()
	defer pool.mu.Unlock()

	out := make([]geometry.Trajectory, len(pool.history))
	copy(out, pool.history)

	return out
}
