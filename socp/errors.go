package socp

import "errors"

var (
	// ErrEmptySequence is returned when Solve is called with no disks for a
	// tour (closed) trajectory - a tour needs at least one disk to visit.
	ErrEmptySequence = errors.New("socp: cannot relax an empty tour sequence")

	// ErrSpanningMaskMismatch signals an internal shape inconsistency between
	// the returned trajectory and its spanning mask (InvariantViolation-class).
	ErrSpanningMaskMismatch = errors.New("socp: spanning mask shape mismatch")

	// ErrDidNotConverge marks a refinement that did not settle, for
	// Relaxation implementations that report it. The default Solver never
	// returns it: when its polish step fails it keeps the chain-relaxation
	// trajectory and Solve reports no error.
	ErrDidNotConverge = errors.New("socp: refinement did not converge")
)
