package bnb

import (
	"time"

	"github.com/katalvlaran/cetsp/geometry"
	"github.com/katalvlaran/cetsp/instance"
	"github.com/katalvlaran/cetsp/internal/telemetry"
	"github.com/katalvlaran/cetsp/socp"
)

// Config configures a BranchAndBound driver.
type Config struct {
	RootStrategy RootStrategy
	Branching    BranchingStrategy
	Search       SearchStrategy
	Rules        []SequenceRule
	// NumThreads bounds the worker pool used to evaluate sibling children's
	// relaxations in parallel. Defaults to 8.
	NumThreads int
}

// DefaultConfig returns the engine's default strategy selection: the
// LongestEdgePlusFurthestCircle root, FarthestCircle branching, the
// CheapestChildDepthFirst (best-first-deepest) search, both sequence
// rules, and 8 worker threads.
func DefaultConfig() Config {
	return Config{
		RootStrategy: LongestEdgePlusFurthestCircle{},
		Branching:    FarthestCircle{},
		Search:       &CheapestChildDepthFirst{},
		Rules:        []SequenceRule{&GlobalConvexHullRule{}, &LayeredConvexHullRule{}},
		NumThreads:   8,
	}
}

// Statistics is the driver's termination report.
type Statistics struct {
	Iterations     int
	NodesExplored  int
	Branches       int
	LowerBound     float64
	UpperBound     float64
	ElapsedSeconds float64
}

// Callback is the engine's synchronous node-event hook, invoked on the
// driver thread between parallel-evaluation barriers. Implementations must
// not mutate the search strategy or node tree beyond ctx's methods.
type Callback interface {
	OnEnteringNode(ctx *EventContext)
	AddLazyConstraints(ctx *EventContext)
	OnLeavingNode(ctx *EventContext)
}

// EventContext is supplied to callbacks for one node visit.
type EventContext struct {
	driver    *BranchAndBound
	node      *Node
	iteration int
}

// CurrentNode returns the node being visited this iteration.
func (ctx *EventContext) CurrentNode() *Node { return ctx.node }

// RootNode returns the search tree's root.
func (ctx *EventContext) RootNode() *Node { return ctx.driver.root }

// Instance returns the instance being optimized.
func (ctx *EventContext) Instance() *instance.Instance { return ctx.driver.inst }

// Iteration returns the current 0-based main-loop iteration counter.
func (ctx *EventContext) Iteration() int { return ctx.iteration }

// AddLazyCircle adds d to the instance as a lazy constraint, bumping the
// instance's revision if d is not already covered by an existing disk.
func (ctx *EventContext) AddLazyCircle(d geometry.Disk) (bool, error) {
	return ctx.driver.inst.AddDisk(d)
}

// AddSolution injects a feasible trajectory directly into the pool.
func (ctx *EventContext) AddSolution(t geometry.Trajectory) bool {
	return ctx.driver.pool.Add(t)
}

// GetLowerBound returns the current node's lower bound.
func (ctx *EventContext) GetLowerBound() float64 { return ctx.node.LowerBound() }

// GetUpperBound returns the pool's current upper bound.
func (ctx *EventContext) GetUpperBound() float64 { return ctx.driver.pool.UpperBound() }

// IsFeasible reports whether the current node is feasible.
func (ctx *EventContext) IsFeasible() bool { return ctx.node.IsFeasible(ctx.driver.inst) }

// GetRelaxedSolution returns the current node's relaxation trajectory.
func (ctx *EventContext) GetRelaxedSolution() geometry.Trajectory {
	return ctx.node.Partial().Trajectory()
}

// GetBestSolution returns the pool's current best trajectory.
func (ctx *EventContext) GetBestSolution() (geometry.Trajectory, bool) {
	return ctx.driver.pool.Best()
}

// BranchAndBound is the exact B&B driver: single-threaded at the
// control level, with sibling-child relaxations evaluated in parallel
// inside Branch (see Config.NumThreads).
type BranchAndBound struct {
	inst  *instance.Instance
	relax socp.Relaxation
	cfg   Config

	root *Node
	pool *SolutionPool

	callbacks []Callback

	pendingLowerBound float64
	hasPendingLB      bool

	stats Statistics
}

// New constructs a driver over inst with relax as its relaxation
// collaborator and cfg as its strategy selection. It does not build the
// root node; that happens lazily on the first Optimize call.
func New(inst *instance.Instance, relax socp.Relaxation, cfg Config) *BranchAndBound {
	if cfg.NumThreads < 1 {
		cfg.NumThreads = 8
	}

	return &BranchAndBound{inst: inst, relax: relax, cfg: cfg, pool: NewSolutionPool()}
}

// AddUpperBound seeds the pool with a known feasible trajectory.
func (b *BranchAndBound) AddUpperBound(t geometry.Trajectory) bool { return b.pool.Add(t) }

// AddLowerBound seeds a floor on the eventual root's lower bound (e.g. from
// an externally computed missing-disks bound, see the lowerbound package).
// If the root already exists, the floor is applied immediately.
func (b *BranchAndBound) AddLowerBound(v float64) {
	b.pendingLowerBound = v
	b.hasPendingLB = true
	if b.root != nil {
		b.root.AddLowerBound(v)
	}
}

// AddNodeCallback registers a callback invoked around every node visit.
func (b *BranchAndBound) AddNodeCallback(cb Callback) { b.callbacks = append(b.callbacks, cb) }

// Solution returns the pool's current best trajectory.
func (b *BranchAndBound) Solution() (geometry.Trajectory, bool) { return b.pool.Best() }

// UpperBound returns the pool's current upper bound.
func (b *BranchAndBound) UpperBound() float64 { return b.pool.UpperBound() }

// LowerBound returns the root's lower bound, or 0 before the root exists.
func (b *BranchAndBound) LowerBound() float64 {
	if b.root == nil {
		return 0
	}

	return b.root.LowerBound()
}

// Statistics returns the most recent Optimize call's termination report.
func (b *BranchAndBound) Statistics() Statistics { return b.stats }

// buildRoot constructs the root node via the configured root strategy and
// validates it against every configured sequence rule.
//
// Errors:
//   - ConfigurationError if the root strategy rejects the instance, or the
//     emitted root sequence violates a configured rule.
func (b *BranchAndBound) buildRoot() error {
	for _, r := range b.cfg.Rules {
		if err := r.Setup(b.inst, nil, b.pool); err != nil {
			return err
		}
	}

	root, err := b.cfg.RootStrategy.Root(b.inst, b.relax)
	if err != nil {
		return err
	}
	for _, r := range b.cfg.Rules {
		if !r.IsOK(root.Partial().Sequence()) {
			return configErr(ErrRootViolatesRule)
		}
	}

	b.root = root
	if b.hasPendingLB {
		b.root.AddLowerBound(b.pendingLowerBound)
	}
	b.cfg.Search.Init(b.root)

	return nil
}

// Optimize runs the main B&B loop until the search is exhausted, the
// relative gap g is proven (UB <= (1+g)*lb(root)), or timeLimit elapses.
//
// Errors: ConfigurationError or InvariantViolation abort the run and
// propagate; a SolverFailure returned by branching is counted in
// telemetry.SolverFailuresTotal and swallowed. verbose is accepted but
// Optimize writes no log output.
func (b *BranchAndBound) Optimize(timeLimit time.Duration, gap float64, verbose bool) error {
	if b.root == nil {
		if err := b.buildRoot(); err != nil {
			return err
		}
	}
	if gap <= 0 {
		gap = 0.01
	}

	b.stats = Statistics{}
	start := time.Now()
	iteration := 0

	for {
		elapsed := time.Since(start)
		if elapsed >= timeLimit {
			break
		}

		node, ok := b.cfg.Search.Next()
		if !ok {
			break
		}
		b.stats.NodesExplored++

		threshold := (1 - gap) * b.pool.UpperBound()
		if node.LowerBound() >= threshold || node.IsPruned() {
			node.Prune(false)
			b.cfg.Search.NotifyOfPrune(node)
			iteration++

			continue
		}

		ctx := &EventContext{driver: b, node: node, iteration: iteration}
		for _, cb := range b.callbacks {
			cb.OnEnteringNode(ctx)
		}
		if node.IsPruned() {
			b.cfg.Search.NotifyOfPrune(node)
			iteration++

			continue
		}

		feasible := node.IsFeasible(b.inst)
		if feasible {
			for _, cb := range b.callbacks {
				cb.AddLazyConstraints(ctx)
			}
			feasible = node.IsFeasible(b.inst)
		}

		if feasible {
			b.pool.Add(node.Partial().Trajectory())
			b.cfg.Search.NotifyOfFeasible(node)
		} else if node.LowerBound() < (1-gap)*b.pool.UpperBound() && !node.IsPruned() {
			children, err := b.cfg.Branching.Branch(node, b.inst, b.relax, b.cfg.Rules, b.cfg.NumThreads)
			if err != nil {
				if fatal, _ := classify(err); fatal {
					return err
				}
				// SolverFailure: swallowed per the engine's fallback policy.
				telemetry.SolverFailuresTotal.Inc()
				children = nil
			}
			if err := node.Branch(children); err != nil {
				if fatal, _ := classify(err); fatal {
					return err
				}
			}
			b.stats.Branches++
			if node.IsPruned() {
				b.cfg.Search.NotifyOfPrune(node)
			} else {
				b.cfg.Search.NotifyOfBranch(node)
			}
		} else {
			node.Prune(false)
			b.cfg.Search.NotifyOfPrune(node)
		}

		for _, cb := range b.callbacks {
			cb.OnLeavingNode(ctx)
		}

		iteration++
		b.stats.Iterations = iteration

		if b.pool.UpperBound() <= (1+gap)*b.root.LowerBound() {
			break
		}
	}

	b.stats.Iterations = iteration
	b.stats.LowerBound = b.root.LowerBound()
	b.stats.UpperBound = b.pool.UpperBound()
	b.stats.ElapsedSeconds = time.Since(start).Seconds()

	return nil
}

// classify reports whether err (as returned by a strategy) is fatal
// (ConfigurationError/InvariantViolation) and its Kind.
func classify(err error) (fatal bool, kind Kind) {
	if err == nil {
		return false, KindSolverFailure
	}
	if e, ok := err.(*Error); ok {
		return e.Kind != KindSolverFailure, e.Kind
	}

	return true, KindInvariantViolation
}
