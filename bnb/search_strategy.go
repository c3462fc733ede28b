package bnb

import (
	"math/rand"
	"sort"
)

// SearchStrategy is the open-node queue discipline consumed by the driver.
type SearchStrategy interface {
	Init(root *Node)
	NotifyOfBranch(n *Node)
	NotifyOfFeasible(n *Node)
	NotifyOfPrune(n *Node)
	Next() (*Node, bool)
	HasNext() bool
}

// CheapestChildDepthFirst is the default best-first-deepest strategy: a
// stack of open nodes, with a branch's children pushed so the child with
// the largest lower bound sits on top (branching already returns children
// largest-lb-first, so pushing in that order puts it last — reversed below
// so popping from the end yields largest-lb-first too).
type CheapestChildDepthFirst struct {
	stack []*Node
}

// Init implements SearchStrategy.
func (s *CheapestChildDepthFirst) Init(root *Node) { s.stack = []*Node{root} }

// NotifyOfBranch implements SearchStrategy.
func (s *CheapestChildDepthFirst) NotifyOfBranch(n *Node) {
	children := n.Children()
	for i := len(children) - 1; i >= 0; i-- {
		s.stack = append(s.stack, children[i])
	}
}

// NotifyOfFeasible implements SearchStrategy (no-op: feasible leaves are
// never pushed back onto the open-node stack).
func (s *CheapestChildDepthFirst) NotifyOfFeasible(n *Node) {}

// NotifyOfPrune implements SearchStrategy (pruned entries are discarded
// lazily when popped, so no eager removal is needed here).
func (s *CheapestChildDepthFirst) NotifyOfPrune(n *Node) {}

// Next implements SearchStrategy.
func (s *CheapestChildDepthFirst) Next() (*Node, bool) {
	for len(s.stack) > 0 {
		n := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		if n.IsPruned() {
			continue
		}

		return n, true
	}

	return nil, false
}

// HasNext implements SearchStrategy.
func (s *CheapestChildDepthFirst) HasNext() bool {
	for i := len(s.stack) - 1; i >= 0; i-- {
		if !s.stack[i].IsPruned() {
			return true
		}
	}

	return false
}

// DfsBfs behaves like CheapestChildDepthFirst until the first feasible node
// is found (or a prune observed), at which point it re-sorts the entire
// open set ascending by lower bound (ties by relaxed length, descending)
// and pops the cheapest. The switch is permanent: from then on the open set
// is kept sorted and the cheapest node is always popped; it does not return
// to depth-first order after later feasible nodes.
type DfsBfs struct {
	open       []*Node
	bestFirst  bool
}

// Init implements SearchStrategy.
func (s *DfsBfs) Init(root *Node) { s.open = []*Node{root} }

// NotifyOfBranch implements SearchStrategy.
func (s *DfsBfs) NotifyOfBranch(n *Node) {
	children := n.Children()
	if s.bestFirst {
		s.open = append(s.open, children...)
		s.sortBestFirst()

		return
	}
	for i := len(children) - 1; i >= 0; i-- {
		s.open = append(s.open, children[i])
	}
}

// NotifyOfFeasible implements SearchStrategy: switches to best-bound mode.
func (s *DfsBfs) NotifyOfFeasible(n *Node) {
	s.bestFirst = true
	s.sortBestFirst()
}

// NotifyOfPrune implements SearchStrategy: also triggers the best-bound
// switch (a prune observation is one of the two documented triggers).
func (s *DfsBfs) NotifyOfPrune(n *Node) {
	s.bestFirst = true
	s.sortBestFirst()
}

func (s *DfsBfs) sortBestFirst() {
	sort.SliceStable(s.open, func(i, j int) bool {
		li, lj := s.open[i].LowerBound(), s.open[j].LowerBound()
		if li != lj {
			return li < lj
		}

		return s.open[i].Partial().Obj() > s.open[j].Partial().Obj()
	})
}

// Next implements SearchStrategy.
func (s *DfsBfs) Next() (*Node, bool) {
	for len(s.open) > 0 {
		var n *Node
		if s.bestFirst {
			n = s.open[0]
			s.open = s.open[1:]
		} else {
			n = s.open[len(s.open)-1]
			s.open = s.open[:len(s.open)-1]
		}
		if n.IsPruned() {
			continue
		}

		return n, true
	}

	return nil, false
}

// HasNext implements SearchStrategy.
func (s *DfsBfs) HasNext() bool {
	for _, n := range s.open {
		if !n.IsPruned() {
			return true
		}
	}

	return false
}

// CheapestBreadthFirst sorts the entire open set by lower bound after every
// branch and always pops the lowest (equivalent to pure best-bound search).
type CheapestBreadthFirst struct {
	open []*Node
}

// Init implements SearchStrategy.
func (s *CheapestBreadthFirst) Init(root *Node) { s.open = []*Node{root} }

// NotifyOfBranch implements SearchStrategy.
func (s *CheapestBreadthFirst) NotifyOfBranch(n *Node) {
	s.open = append(s.open, n.Children()...)
	sort.SliceStable(s.open, func(i, j int) bool {
		li, lj := s.open[i].LowerBound(), s.open[j].LowerBound()
		if li != lj {
			return li < lj
		}

		return s.open[i].Partial().Obj() > s.open[j].Partial().Obj()
	})
}

// NotifyOfFeasible implements SearchStrategy (no-op).
func (s *CheapestBreadthFirst) NotifyOfFeasible(n *Node) {}

// NotifyOfPrune implements SearchStrategy (no-op).
func (s *CheapestBreadthFirst) NotifyOfPrune(n *Node) {}

// Next implements SearchStrategy.
func (s *CheapestBreadthFirst) Next() (*Node, bool) {
	for len(s.open) > 0 {
		n := s.open[0]
		s.open = s.open[1:]
		if n.IsPruned() {
			continue
		}

		return n, true
	}

	return nil, false
}

// HasNext implements SearchStrategy.
func (s *CheapestBreadthFirst) HasNext() bool {
	for _, n := range s.open {
		if !n.IsPruned() {
			return true
		}
	}

	return false
}

// RandomSearch pops a uniformly random open node each time; used only for
// ablation studies. A nil Rng falls back to a generator seeded with 1.
type RandomSearch struct {
	Rng  *rand.Rand
	open []*Node
}

// Init implements SearchStrategy.
func (s *RandomSearch) Init(root *Node) {
	if s.Rng == nil {
		s.Rng = rand.New(rand.NewSource(1))
	}
	s.open = []*Node{root}
}

// NotifyOfBranch implements SearchStrategy.
func (s *RandomSearch) NotifyOfBranch(n *Node) { s.open = append(s.open, n.Children()...) }

// NotifyOfFeasible implements SearchStrategy (no-op).
func (s *RandomSearch) NotifyOfFeasible(n *Node) {}

// NotifyOfPrune implements SearchStrategy (no-op).
func (s *RandomSearch) NotifyOfPrune(n *Node) {}

// Next implements SearchStrategy.
func (s *RandomSearch) Next() (*Node, bool) {
	for len(s.open) > 0 {
		i := s.Rng.Intn(len(s.open))
		n := s.open[i]
		s.open = append(s.open[:i], s.open[i+1:]...)
		if n.IsPruned() {
			continue
		}

		return n, true
	}

	return nil, false
}

// HasNext implements SearchStrategy.
func (s *RandomSearch) HasNext() bool {
	for _, n := range s.open {
		if !n.IsPruned() {
			return true
		}
	}

	return false
}
