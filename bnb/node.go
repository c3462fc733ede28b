package bnb

import (
	"math"

	"github.com/katalvlaran/cetsp/instance"
)

// Node is a search-tree node: it owns a PartialSequenceSolution, a cached
// lower bound, its children, a non-owning back-reference to its parent for
// bound propagation, and a pruned flag.
//
// Ownership: the tree exclusively owns Node values reachable from its root;
// a node exclusively owns its children slice; parent is a back-reference
// only, never dereferenced once the tree drops its root.
type Node struct {
	partial *PartialSequenceSolution
	parent  *Node
	children []*Node

	lb    float64
	lbSet bool

	pruned bool
	depth  int

	feasibleRevision int
	feasibleSet      bool
	feasibleCache    bool
}

// newNode wraps a partial solution as a tree node at the given depth with
// the given parent (nil for the root).
func newNode(partial *PartialSequenceSolution, parent *Node, depth int) *Node {
	return &Node{partial: partial, parent: parent, depth: depth}
}

// Partial returns the node's partial solution.
func (n *Node) Partial() *PartialSequenceSolution { return n.partial }

// Parent returns the node's parent, or nil at the root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the node's children (nil until Branch is called).
func (n *Node) Children() []*Node { return n.children }

// Depth returns the node's depth (0 at the root).
func (n *Node) Depth() int { return n.depth }

// IsPruned reports whether the node has been pruned.
func (n *Node) IsPruned() bool { return n.pruned }

// LowerBound is lazy: on first call it is max(relaxation length, parent's
// lower bound); subsequent calls return the cached value.
//
// Complexity: O(1) (relaxation length is itself memoized by Trajectory).
func (n *Node) LowerBound() float64 {
	if n.lbSet {
		return n.lb
	}

	lb := n.partial.Obj()
	if n.parent != nil {
		if parentLB := n.parent.LowerBound(); parentLB > lb {
			lb = parentLB
		}
	}
	n.lb = lb
	n.lbSet = true

	return n.lb
}

// AddLowerBound tightens the node's lower bound to v if v strictly improves
// it, then propagates the change to the parent (which may, in turn, raise
// its own bound to the new minimum over its children) and pushes the new
// floor down onto every existing child.
//
// Complexity: O(depth + size of subtree) in the worst case.
func (n *Node) AddLowerBound(v float64) {
	if n.lbSet && v <= n.lb {
		return
	}
	n.lb = v
	n.lbSet = true

	if n.parent != nil {
		n.parent.recomputeFromChildren()
	}
	for _, c := range n.children {
		c.AddLowerBound(v)
	}
}

// recomputeFromChildren raises the node's lower bound to the minimum lower
// bound over its children, if that minimum exceeds the node's current
// bound, and propagates further up the tree.
func (n *Node) recomputeFromChildren() {
	if len(n.children) == 0 {
		return
	}
	minLB := math.Inf(1)
	for _, c := range n.children {
		if lb := c.LowerBound(); lb < minLB {
			minLB = lb
		}
	}
	if !n.lbSet || minLB > n.lb {
		n.lb = minLB
		n.lbSet = true
		if n.parent != nil {
			n.parent.recomputeFromChildren()
		}
	}
}

// Branch adopts children, legal only on a node that is not pruned. An
// empty children slice prunes the node as infeasible-to-branch (no legal
// insertion survived the configured sequence rules). Otherwise the node's
// lower bound is raised to the minimum over its children's bounds when that
// minimum exceeds it.
//
// Errors: ErrBranchOnPruned (InvariantViolation) if the node is pruned.
func (n *Node) Branch(children []*Node) error {
	if n.pruned {
		return invariantErr(ErrBranchOnPruned)
	}
	if len(children) == 0 {
		n.Prune(true)

		return nil
	}
	for _, c := range children {
		c.parent = n
		c.depth = n.depth + 1
	}
	n.children = children
	n.recomputeFromChildren()

	return nil
}

// Prune marks the node pruned. infeasible=true sets its lower bound to +Inf
// (no completion can be optimal) and recursively prunes every descendant.
// Idempotent.
func (n *Node) Prune(infeasible bool) {
	if n.pruned {
		return
	}
	n.pruned = true
	if infeasible {
		n.lb = math.Inf(1)
		n.lbSet = true
	}
	for _, c := range n.children {
		c.Prune(true)
	}
}

// IsFeasible delegates to the partial solution, with revision invalidation:
// a feasibility confirmed at instance revision r is re-verified whenever
// inst.Revision() has since advanced past r (a lazy constraint may have
// added a disk the node's trajectory no longer covers).
func (n *Node) IsFeasible(inst *instance.Instance) bool {
	rev := inst.Revision()
	if n.feasibleSet && n.feasibleRevision == rev {
		return n.feasibleCache
	}

	var feasible bool
	if n.feasibleSet {
		feasible = n.partial.RecheckFeasible()
	} else {
		feasible = n.partial.IsFeasible()
	}
	n.feasibleCache = feasible
	n.feasibleRevision = rev
	n.feasibleSet = true

	return feasible
}
