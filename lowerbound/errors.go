package lowerbound

import "errors"

var (
	// ErrNoMissingDisks indicates Compute was called with an empty missing
	// set; there is no increment to bound.
	ErrNoMissingDisks = errors.New("lowerbound: no missing disks to bound")
	// ErrDegenerateTrajectory indicates the trajectory has fewer than 2
	// points (no edges exist to host an insertion).
	ErrDegenerateTrajectory = errors.New("lowerbound: trajectory has no edges")
	// ErrSimplexFailed indicates the underlying LP relaxation failed to
	// find a feasible solution (a SolverFailure-class condition).
	ErrSimplexFailed = errors.New("lowerbound: LP relaxation failed")
)
