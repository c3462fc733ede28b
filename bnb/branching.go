package bnb

import (
	"math/rand"
	"sort"
	"sync"

	"github.com/katalvlaran/cetsp/instance"
	"github.com/katalvlaran/cetsp/internal/telemetry"
	"github.com/katalvlaran/cetsp/socp"
)

// BranchingStrategy selects a branching disk on an open node and emits its
// legal insertion children (after sequence-rule filtering).
type BranchingStrategy interface {
	Branch(n *Node, inst *instance.Instance, relax socp.Relaxation, rules []SequenceRule, numThreads int) ([]*Node, error)
}

// findFarthestUncovered returns the instance disk index not covered by n's
// trajectory whose distance to the trajectory is maximum. ok is false if
// every disk is already covered (the node is feasible; no branch).
func findFarthestUncovered(n *Node, inst *instance.Instance) (diskIdx int, ok bool) {
	best := -1
	bestDist := inst.Eps()
	for i := 0; i < inst.Size(); i++ {
		dist, err := n.Partial().Distance(i)
		if err != nil {
			continue
		}
		if dist > inst.Eps() && dist > bestDist {
			bestDist = dist
			best = i
		}
	}
	if best < 0 {
		return 0, false
	}

	return best, true
}

// findRandomUncovered returns a uniformly random uncovered disk index.
func findRandomUncovered(n *Node, inst *instance.Instance, rng *rand.Rand) (diskIdx int, ok bool) {
	var uncovered []int
	for i := 0; i < inst.Size(); i++ {
		dist, err := n.Partial().Distance(i)
		if err != nil {
			continue
		}
		if dist > inst.Eps() {
			uncovered = append(uncovered, i)
		}
	}
	if len(uncovered) == 0 {
		return 0, false
	}

	return uncovered[rng.Intn(len(uncovered))], true
}

// enumerateInsertions returns every candidate sequence obtained by
// inserting candidateDisk into base at each legal position. A tour has
// |base| distinct rotations of the insertion (position len(base) is
// equivalent to position 0 and is skipped); a path has |base|+1 distinct
// positions.
func enumerateInsertions(base []int, candidateDisk int, isTour bool) [][]int {
	limit := len(base) + 1
	if isTour {
		limit = len(base)
		if limit == 0 {
			limit = 1
		}
	}

	out := make([][]int, 0, limit)
	for p := 0; p < limit; p++ {
		seq := make([]int, 0, len(base)+1)
		seq = append(seq, base[:p]...)
		seq = append(seq, candidateDisk)
		seq = append(seq, base[p:]...)
		out = append(out, seq)
	}

	return out
}

// passesRules reports whether candidate is accepted by every configured
// rule, evaluated left to right.
func passesRules(candidate []int, rules []SequenceRule) bool {
	for _, r := range rules {
		if !r.IsOK(candidate) {
			return false
		}
	}

	return true
}

// buildChildren constructs one Node per candidate sequence, dispatching
// the independent relaxations to a bounded worker pool of size numThreads.
// A candidate whose relaxation reports a SolverFailure is dropped (the
// engine's fallback policy: skip the lb-refining evaluation for that
// child rather than aborting the whole branch). Surviving children are
// returned ordered with the largest lower bound first, ties broken by the
// larger relaxed trajectory length first.
func buildChildren(inst *instance.Instance, candidates [][]int, relax socp.Relaxation, numThreads int) ([]*Node, error) {
	if numThreads < 1 {
		numThreads = 1
	}

	type outcome struct {
		node *Node
		err  error
	}
	results := make([]outcome, len(candidates))

	sem := make(chan struct{}, numThreads)
	var wg sync.WaitGroup
	for i, cand := range candidates {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, cand []int) {
			defer wg.Done()
			defer func() { <-sem }()

			partial, err := newPartialSequenceSolution(inst, cand, relax)
			if err != nil {
				results[i] = outcome{err: err}

				return
			}
			results[i] = outcome{node: newNode(partial, nil, 0)}
		}(i, cand)
	}
	wg.Wait()

	children := make([]*Node, 0, len(candidates))
	for _, r := range results {
		if r.err != nil {
			if e, ok := r.err.(*Error); ok && e.Kind == KindSolverFailure {
				telemetry.SolverFailuresTotal.Inc()

				continue
			}

			return nil, r.err
		}
		children = append(children, r.node)
	}

	sort.SliceStable(children, func(i, j int) bool {
		li, lj := children[i].LowerBound(), children[j].LowerBound()
		if li != lj {
			return li > lj
		}

		return children[i].Partial().Obj() > children[j].Partial().Obj()
	})

	return children, nil
}

// FarthestCircle is the base branching strategy: it always branches from
// the node's own (unsimplified) sequence.
type FarthestCircle struct{ NumThreads int }

// Branch implements BranchingStrategy.
func (s FarthestCircle) Branch(n *Node, inst *instance.Instance, relax socp.Relaxation, rules []SequenceRule, numThreads int) ([]*Node, error) {
	diskIdx, ok := findFarthestUncovered(n, inst)
	if !ok {
		return nil, nil
	}

	candidates := filterCandidates(enumerateInsertions(n.Partial().Sequence(), diskIdx, inst.IsTour()), rules)

	return buildChildren(inst, candidates, relax, resolveThreads(s.NumThreads, numThreads))
}

// ChFarthestCircle branches from the node's spanning-only sequence without
// persisting the simplification onto the node itself.
type ChFarthestCircle struct{ NumThreads int }

// Branch implements BranchingStrategy.
func (s ChFarthestCircle) Branch(n *Node, inst *instance.Instance, relax socp.Relaxation, rules []SequenceRule, numThreads int) ([]*Node, error) {
	diskIdx, ok := findFarthestUncovered(n, inst)
	if !ok {
		return nil, nil
	}

	simplified, err := n.Partial().Simplify(relax)
	if err != nil {
		return nil, err
	}

	candidates := filterCandidates(enumerateInsertions(simplified.Sequence(), diskIdx, inst.IsTour()), rules)

	return buildChildren(inst, candidates, relax, resolveThreads(s.NumThreads, numThreads))
}

// ChFarthestCircleSimplifying additionally persists the simplification
// onto n before branching, permanently dropping n's non-spanning indices.
type ChFarthestCircleSimplifying struct{ NumThreads int }

// Branch implements BranchingStrategy.
func (s ChFarthestCircleSimplifying) Branch(n *Node, inst *instance.Instance, relax socp.Relaxation, rules []SequenceRule, numThreads int) ([]*Node, error) {
	diskIdx, ok := findFarthestUncovered(n, inst)
	if !ok {
		return nil, nil
	}

	simplified, err := n.Partial().Simplify(relax)
	if err != nil {
		return nil, err
	}
	n.partial = simplified

	candidates := filterCandidates(enumerateInsertions(simplified.Sequence(), diskIdx, inst.IsTour()), rules)

	return buildChildren(inst, candidates, relax, resolveThreads(s.NumThreads, numThreads))
}

// RandomBranching substitutes a uniformly random uncovered disk for the
// farthest-uncovered heuristic; used only for ablation studies.
type RandomBranching struct {
	NumThreads int
	Rng        *rand.Rand
}

// Branch implements BranchingStrategy.
func (s RandomBranching) Branch(n *Node, inst *instance.Instance, relax socp.Relaxation, rules []SequenceRule, numThreads int) ([]*Node, error) {
	rng := s.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	diskIdx, ok := findRandomUncovered(n, inst, rng)
	if !ok {
		return nil, nil
	}

	candidates := filterCandidates(enumerateInsertions(n.Partial().Sequence(), diskIdx, inst.IsTour()), rules)

	return buildChildren(inst, candidates, relax, resolveThreads(s.NumThreads, numThreads))
}

func filterCandidates(candidates [][]int, rules []SequenceRule) [][]int {
	out := make([][]int, 0, len(candidates))
	for _, c := range candidates {
		if passesRules(c, rules) {
			out = append(out, c)
		}
	}

	return out
}

func resolveThreads(preferred, fallback int) int {
	if preferred > 0 {
		return preferred
	}

	return fallback
}
