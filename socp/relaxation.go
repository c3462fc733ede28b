// Package socp provides the "shortest ordered-touring trajectory" relaxation
// that is the engine's only numerical workhorse: given an ordered sequence
// of disks (and, for path instances, fixed start/end points), compute the
// minimum-length polyline that touches each disk in order, plus a mask
// marking which disks are "spanning" (genuine turns the trajectory makes,
// as opposed to disks it passes through anyway).
//
// This is a convex program in fixed dimension (a second-order cone program
// over the touching points); spec.md treats it as an external black-box
// collaborator. The Relaxation interface lets the bnb package depend only
// on the contract; Solver is this module's own grounded implementation,
// usable standalone or swapped out for a production SOCP/conic solver.
package socp

import "github.com/katalvlaran/cetsp/geometry"

// Endpoints fixes the start and end point of a path relaxation.
type Endpoints struct {
	Start, End geometry.Point
}

// Result is the outcome of relaxing one disk sequence.
type Result struct {
	// Trajectory is the shortest polyline touching the disks in order.
	// For a tour it is closed (Trajectory.IsTour() == true); for a path it
	// runs from Endpoints.Start to Endpoints.End.
	Trajectory geometry.Trajectory

	// Spanning has one entry per input disk: true iff that disk's hitting
	// point is a genuine turn in Trajectory (removing it and recomputing
	// would strictly shorten the trajectory, or leave it unchanged within
	// tolerance if it already was a no-op).
	Spanning []bool
}

// Relaxation computes the SOCP relaxation for an ordered disk sequence.
//
// Contract:
//   - disks is the already-ordered sequence (sequence[i] resolved to disks).
//   - path is nil for a tour relaxation, non-nil (fixed start/end) otherwise.
//   - Tour relaxations require len(disks) >= 1; see ErrEmptySequence.
type Relaxation interface {
	Solve(disks []geometry.Disk, path *Endpoints) (Result, error)
}
