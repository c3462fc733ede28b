package bnb

import (
	"errors"
	"fmt"
)

// Kind classifies an Error by the taxonomy the driver propagates on.
// ConfigurationError and InvariantViolation are fatal and abort optimize();
// SolverFailure is counted in telemetry.SolverFailuresTotal and swallowed by
// the driver.
type Kind int

const (
	// KindConfiguration marks a strategy/rule choice incompatible with the
	// instance (e.g. ConvexHull root strategy on a path instance).
	KindConfiguration Kind = iota
	// KindInvariantViolation marks a condition that should never occur in a
	// correct run (branching a pruned node, a spanning-mask shape mismatch).
	KindInvariantViolation
	// KindSolverFailure marks an external relaxation failure (timeout,
	// infeasibility report, non-convergence). It does not abort the run:
	// buildChildren drops a child whose relaxation fails, so that child's
	// subtree is not searched.
	KindSolverFailure
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "ConfigurationError"
	case KindInvariantViolation:
		return "InvariantViolation"
	case KindSolverFailure:
		return "SolverFailure"
	default:
		return "UnknownErrorKind"
	}
}

// Error wraps a sentinel cause with its taxonomy Kind so callers can branch
// on either errors.Is(err, causeSentinel) or a coarser errors.As(err, *Error)
// check against Kind.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string { return fmt.Sprintf("bnb: %s: %v", e.Kind, e.Err) }

func (e *Error) Unwrap() error { return e.Err }

func configErr(cause error) error { return &Error{Kind: KindConfiguration, Err: cause} }

func invariantErr(cause error) error { return &Error{Kind: KindInvariantViolation, Err: cause} }

func solverErr(cause error) error { return &Error{Kind: KindSolverFailure, Err: cause} }

var (
	// ErrConvexHullRootOnPath: the ConvexHull root strategy is tour-only.
	ErrConvexHullRootOnPath = errors.New("bnb: ConvexHull root strategy rejects path instances")
	// ErrRootViolatesRule: the emitted root sequence was rejected by a
	// configured sequence rule.
	ErrRootViolatesRule = errors.New("bnb: root sequence violates a configured sequence rule")
	// ErrBranchOnPruned: Node.Branch called on an already-pruned node.
	ErrBranchOnPruned = errors.New("bnb: cannot branch a pruned node")
	// ErrEmptyTourSequence: a tour relaxation was requested with no disks.
	ErrEmptyTourSequence = errors.New("bnb: empty sequence for a tour instance")
	// ErrSpanningMaskMismatch: the relaxation's spanning mask does not match
	// the sequence it was computed for.
	ErrSpanningMaskMismatch = errors.New("bnb: spanning mask shape mismatch")
	// ErrNoDisksUncovered: the branching strategy was invoked on a node that
	// has no uncovered disk to branch on (it is already feasible).
	ErrNoDisksUncovered = errors.New("bnb: no uncovered disk to branch on")
)
