package bnb

import (
	"github.com/katalvlaran/cetsp/geometry"
	"github.com/katalvlaran/cetsp/instance"
	"github.com/katalvlaran/cetsp/socp"
)

// PartialSequenceSolution wraps an ordered sequence of disk indices, the
// relaxation's trajectory through them, and the parallel spanning mask.
// Feasibility against the full instance is computed lazily and memoized.
type PartialSequenceSolution struct {
	inst       *instance.Instance
	sequence   []int
	trajectory geometry.Trajectory
	spanning   []bool

	feasibleSet bool
	feasible    bool
}

// newPartialSequenceSolution invokes relax on the disks named by sequence
// (resolved via inst) and stores the result.
//
// Errors:
//   - ErrEmptyTourSequence (InvariantViolation) if inst is a tour instance
//     and sequence is empty.
//   - ErrSpanningMaskMismatch (InvariantViolation) if the relaxation's mask
//     length does not equal len(sequence).
//   - SolverFailure, wrapping the relaxation's error, for any other Solve
//     failure.
//
// Complexity: O(k) to resolve disks plus the relaxation's own cost.
func newPartialSequenceSolution(inst *instance.Instance, sequence []int, relax socp.Relaxation) (*PartialSequenceSolution, error) {
	if inst.IsTour() && len(sequence) == 0 {
		return nil, invariantErr(ErrEmptyTourSequence)
	}

	disks := make([]geometry.Disk, len(sequence))
	for i, idx := range sequence {
		d, err := inst.At(idx)
		if err != nil {
			return nil, err
		}
		disks[i] = d
	}

	var path *socp.Endpoints
	if inst.IsPath() {
		start, _ := inst.Start()
		end, _ := inst.End()
		path = &socp.Endpoints{Start: start, End: end}
	}

	res, err := relax.Solve(disks, path)
	if err != nil {
		return nil, solverErr(err)
	}
	if len(res.Spanning) != len(sequence) {
		return nil, invariantErr(ErrSpanningMaskMismatch)
	}

	return &PartialSequenceSolution{
		inst:       inst,
		sequence:   append([]int(nil), sequence...),
		trajectory: res.Trajectory,
		spanning:   res.Spanning,
	}, nil
}

// Sequence returns a defensive copy of the disk-index sequence.
func (p *PartialSequenceSolution) Sequence() []int {
	return append([]int(nil), p.sequence...)
}

// Spanning returns a defensive copy of the spanning mask.
func (p *PartialSequenceSolution) Spanning() []bool {
	return append([]bool(nil), p.spanning...)
}

// Trajectory returns the relaxation's trajectory.
func (p *PartialSequenceSolution) Trajectory() geometry.Trajectory { return p.trajectory }

// Distance returns the distance from the trajectory to instance disk i.
//
// Complexity: O(n) in the trajectory's point count.
func (p *PartialSequenceSolution) Distance(diskIdx int) (float64, error) {
	d, err := p.inst.At(diskIdx)
	if err != nil {
		return 0, err
	}

	return p.trajectory.Distance(d), nil
}

// Covers reports whether the trajectory touches instance disk i within the
// instance's feasibility tolerance.
func (p *PartialSequenceSolution) Covers(diskIdx int) (bool, error) {
	dist, err := p.Distance(diskIdx)
	if err != nil {
		return false, err
	}

	return dist <= p.inst.Eps(), nil
}

// IsFeasible reports whether every instance disk is covered, memoized.
//
// Complexity: O(n*m) on first call (m instance disks), O(1) thereafter.
func (p *PartialSequenceSolution) IsFeasible() bool {
	if p.feasibleSet {
		return p.feasible
	}
	p.feasible = p.trajectory.CoversAll(p.inst.Disks(), p.inst.Eps())
	p.feasibleSet = true

	return p.feasible
}

// RecheckFeasible recomputes feasibility against the current instance disk
// set unconditionally, refreshing the memoized cache. Used by Node when the
// instance's revision has advanced since the last confirmed check.
func (p *PartialSequenceSolution) RecheckFeasible() bool {
	p.feasible = p.trajectory.CoversAll(p.inst.Disks(), p.inst.Eps())
	p.feasibleSet = true

	return p.feasible
}

// Obj returns the relaxation's trajectory length.
func (p *PartialSequenceSolution) Obj() float64 { return p.trajectory.Length() }

// Simplify rewrites the sequence to keep only spanning positions and
// recomputes the trajectory through the reduced sequence via relax.
// Idempotent: simplifying an already-simplified solution returns an
// equivalent solution (every remaining position spans). Does not change
// the objective (Obj is invariant across simplification up to the
// relaxation's own numerical tolerance).
func (p *PartialSequenceSolution) Simplify(relax socp.Relaxation) (*PartialSequenceSolution, error) {
	reduced := make([]int, 0, len(p.sequence))
	for i, idx := range p.sequence {
		if p.spanning[i] {
			reduced = append(reduced, idx)
		}
	}
	if len(reduced) == len(p.sequence) {
		return p, nil
	}

	return newPartialSequenceSolution(p.inst, reduced, relax)
}
