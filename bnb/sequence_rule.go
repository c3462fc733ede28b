package bnb

import "github.com/katalvlaran/cetsp/instance"

// SequenceRule is a geometric pruning predicate evaluated over a candidate
// disk-index sequence before a child node is constructed. Configured rules
// run in order; any rejection prevents construction of that child.
type SequenceRule interface {
	// Setup precomputes whatever per-instance state the rule needs (hull
	// orders, onion layers); called once before search begins.
	Setup(inst *instance.Instance, root *Node, pool *SolutionPool) error
	// IsOK reports whether candidate (a full disk-index sequence) satisfies
	// the rule.
	IsOK(candidate []int) bool
}
