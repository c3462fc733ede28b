package socp

import (
	"math"
	"time"

	"github.com/katalvlaran/cetsp/geometry"
	"github.com/katalvlaran/cetsp/internal/telemetry"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/optimize"
)

// collinearTol is the tolerance (in length units) used to decide whether a
// hitting point is "spanning" a genuine turn versus lying on the straight
// line between its neighbors.
const collinearTol = 1e-7

// Config controls the default Solver's iterative refinement.
type Config struct {
	// SweepIters bounds the Gauss-Seidel chain-relaxation sweeps (§ solver
	// step 1). 0 makes NewSolver replace the whole Config (every field
	// below included) with DefaultConfig.
	SweepIters int
	// SweepTol is the sweep's movement-convergence tolerance.
	SweepTol float64
	// PolishIters bounds the gonum/optimize BFGS polish (§ solver step 2).
	// 0 disables polishing (the chain-relaxation result is returned as-is).
	PolishIters int
	// PenaltyWeight scales the soft disk-containment penalty used during
	// the BFGS polish; the final result is always hard-projected back onto
	// its disks regardless of this weight, so it only affects convergence
	// speed, not feasibility.
	PenaltyWeight float64
}

// DefaultConfig returns the Solver defaults used when Config is zero-valued.
func DefaultConfig() Config {
	return Config{
		SweepIters:    64,
		SweepTol:      1e-9,
		PolishIters:   200,
		PenaltyWeight: 1e6,
	}
}

// Solver is the engine's default Relaxation implementation.
//
// It computes the shortest ordered-touching polyline by (1) a deterministic
// Gauss-Seidel chain-relaxation sweep, moving each interior hitting point to
// the closest point of its disk to the segment joining its two neighbors,
// and (2) an optional gonum/optimize BFGS polish of the flattened
// coordinate vector against a penalized objective, grounded on the same
// gonum numerical stack jjhbw-GoMILP uses for its LP relaxations. The final
// points are always hard-projected back onto their disks, so the result is
// exactly feasible regardless of how far the polish converged.
type Solver struct {
	cfg Config
}

// NewSolver constructs a Solver. A zero Config selects DefaultConfig.
func NewSolver(cfg Config) *Solver {
	if cfg.SweepIters == 0 {
		cfg = DefaultConfig()
	}

	return &Solver{cfg: cfg}
}

// Solve implements Relaxation.
//
// Complexity: O(SweepIters*k + PolishIters*k²) for k disks in the sequence.
func (s *Solver) Solve(disks []geometry.Disk, path *Endpoints) (Result, error) {
	start := time.Now()
	defer func() { telemetry.RelaxationDurationSeconds.Observe(time.Since(start).Seconds()) }()

	if path == nil && len(disks) == 0 {
		return Result{}, ErrEmptySequence
	}

	// Build the full fixed point chain: [start?] disk hitting points [end?].
	var fixedStart, fixedEnd *geometry.Point
	if path != nil {
		st, en := path.Start, path.End
		fixedStart, fixedEnd = &st, &en
	}

	k := len(disks)
	if k == 0 {
		// Degenerate path with no disks: trajectory is the segment start->end.
		traj := geometry.NewTrajectory([]geometry.Point{*fixedStart, *fixedEnd})

		return Result{Trajectory: traj, Spanning: nil}, nil
	}

	points := initialGuess(disks, fixedStart, fixedEnd)
	s.chainRelax(points, disks, fixedStart, fixedEnd)
	if s.cfg.PolishIters > 0 {
		s.polish(points, disks, fixedStart, fixedEnd)
	}
	projectAllOntoDisks(points, disks)

	full, spanning := materialize(points, disks, fixedStart, fixedEnd)

	if len(spanning) != k {
		return Result{}, ErrSpanningMaskMismatch
	}

	return Result{Trajectory: full, Spanning: spanning}, nil
}

// initialGuess seeds each hitting point at the point of its disk nearest to
// the straight line between the chain's fixed endpoints (or to the
// centroid, for a tour with no fixed endpoints); a disk that already
// contains that nearest line point is seeded at the line point itself.
func initialGuess(disks []geometry.Disk, fixedStart, fixedEnd *geometry.Point) []geometry.Point {
	k := len(disks)
	pts := make([]geometry.Point, k)

	var anchorA, anchorB geometry.Point
	if fixedStart != nil && fixedEnd != nil {
		anchorA, anchorB = *fixedStart, *fixedEnd
	} else {
		anchorA, anchorB = centroid(disks), centroid(disks)
	}

	for i, d := range disks {
		pts[i] = closestPointOnSegmentToCircle(anchorA, anchorB, d)
	}

	return pts
}

func centroid(disks []geometry.Disk) geometry.Point {
	var sx, sy float64
	for _, d := range disks {
		sx += d.Center.X
		sy += d.Center.Y
	}
	n := float64(len(disks))

	return geometry.Point{X: sx / n, Y: sy / n}
}

// closestPointOnSegmentToCircle returns the point of disk d closest to the
// segment [a,b] (projecting the segment's closest point onto the disk).
func closestPointOnSegmentToCircle(a, b geometry.Point, d geometry.Disk) geometry.Point {
	q := closestPointOnSegment(a, b, d.Center)

	return projectOntoDisk(q, d)
}

// closestPointOnSegment returns the point on segment [a,b] closest to p.
func closestPointOnSegment(a, b, p geometry.Point) geometry.Point {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		return a
	}
	t := p.Sub(a).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return a.Add(ab.Scale(t))
}

// projectOntoDisk returns the point of disk d closest to p: p itself if p
// is already inside, otherwise the boundary point nearest p.
func projectOntoDisk(p geometry.Point, d geometry.Disk) geometry.Point {
	dist := p.Dist(d.Center)
	if dist <= d.Radius {
		return p
	}
	if dist == 0 {
		return geometry.Point{X: d.Center.X + d.Radius, Y: d.Center.Y}
	}
	t := d.Radius / dist

	return d.Center.Add(p.Sub(d.Center).Scale(t))
}

func projectAllOntoDisks(points []geometry.Point, disks []geometry.Disk) {
	for i := range points {
		points[i] = projectOntoDisk(points[i], disks[i])
	}
}

// chainRelax runs Gauss-Seidel sweeps: each interior point moves to the
// point of its disk closest to the segment joining its two (fixed-for-this-
// sweep) neighbors. This is the block-coordinate-descent relaxation of the
// convex "shortest ordered touring polyline" objective; it always improves
// or holds the objective and converges to a local optimum that is global
// whenever consecutive disks' feasible regions overlap along the chain
// (the common case for well-separated CETSP instances).
func (s *Solver) chainRelax(points []geometry.Point, disks []geometry.Disk, fixedStart, fixedEnd *geometry.Point) {
	k := len(points)
	isTour := fixedStart == nil

	neighbor := func(offset int, i int) geometry.Point {
		j := i + offset
		if isTour {
			j = ((j % k) + k) % k

			return points[j]
		}
		if j < 0 {
			return *fixedStart
		}
		if j >= k {
			return *fixedEnd
		}

		return points[j]
	}

	for iter := 0; iter < s.cfg.SweepIters; iter++ {
		var maxMove float64
		for i := 0; i < k; i++ {
			prev := neighbor(-1, i)
			next := neighbor(1, i)
			updated := closestPointOnSegmentToCircle(prev, next, disks[i])
			maxMove = math.Max(maxMove, updated.Dist(points[i]))
			points[i] = updated
		}
		if maxMove < s.cfg.SweepTol {
			break
		}
	}
}

// polish runs a gonum/optimize BFGS pass (gradient by finite differences,
// gonum/diff/fd) over the flattened coordinate vector against a penalized
// objective (sum of segment lengths plus
// a quadratic penalty for leaving a disk), which can nudge points past the
// chain-relaxation's local optimum on longer chains. Infeasibility at the
// end of polishing is corrected by the caller's hard projection step.
func (s *Solver) polish(points []geometry.Point, disks []geometry.Disk, fixedStart, fixedEnd *geometry.Point) {
	k := len(points)
	isTour := fixedStart == nil
	x0 := make([]float64, 2*k)
	for i, p := range points {
		x0[2*i], x0[2*i+1] = p.X, p.Y
	}

	neighbor := func(x []float64, offset, i int) geometry.Point {
		j := i + offset
		if isTour {
			j = ((j % k) + k) % k

			return geometry.Point{X: x[2*j], Y: x[2*j+1]}
		}
		if j < 0 {
			return *fixedStart
		}
		if j >= k {
			return *fixedEnd
		}

		return geometry.Point{X: x[2*j], Y: x[2*j+1]}
	}

	penalty := s.cfg.PenaltyWeight
	fn := func(x []float64) float64 {
		var total float64
		for i := 0; i < k; i++ {
			p := geometry.Point{X: x[2*i], Y: x[2*i+1]}
			next := neighbor(x, 1, i)
			if isTour || i < k-1 {
				total += p.Dist(next)
			}
			over := p.Dist(disks[i].Center) - disks[i].Radius
			if over > 0 {
				total += penalty * over * over
			}
		}
		if !isTour {
			first := geometry.Point{X: x[0], Y: x[1]}
			last := geometry.Point{X: x[2*(k-1)], Y: x[2*(k-1)+1]}
			total += fixedStart.Dist(first) + last.Dist(*fixedEnd)
		}

		return total
	}

	problem := optimize.Problem{
		Func: fn,
		Grad: func(grad, x []float64) { fd.Gradient(grad, fn, x, nil) },
	}
	result, err := optimize.Minimize(problem, x0, &optimize.Settings{
		MajorIterations: s.cfg.PolishIters,
	}, &optimize.BFGS{})
	if err != nil || result == nil {
		return // ErrDidNotConverge-class: keep the chain-relaxation result
	}
	for i := range points {
		points[i] = geometry.Point{X: result.X[2*i], Y: result.X[2*i+1]}
	}
}

// materialize builds the closed/open public Trajectory (first==last for a
// tour, per the geometry package's Trajectory invariant) and computes the
// spanning mask: a hitting point spans iff removing it and connecting its
// neighbors directly would shorten the path by more than collinearTol.
func materialize(points []geometry.Point, disks []geometry.Disk, fixedStart, fixedEnd *geometry.Point) (geometry.Trajectory, []bool) {
	k := len(points)
	isTour := fixedStart == nil

	var full []geometry.Point
	if isTour {
		full = make([]geometry.Point, k+1)
		copy(full, points)
		full[k] = points[0]
	} else {
		full = make([]geometry.Point, k+2)
		full[0] = *fixedStart
		copy(full[1:], points)
		full[k+1] = *fixedEnd
	}

	spanning := make([]bool, k)
	for i := 0; i < k; i++ {
		var prev, next geometry.Point
		if isTour {
			prev = points[((i-1)%k+k)%k]
			next = points[(i+1)%k]
		} else {
			if i == 0 {
				prev = *fixedStart
			} else {
				prev = points[i-1]
			}
			if i == k-1 {
				next = *fixedEnd
			} else {
				next = points[i+1]
			}
		}
		direct := prev.Dist(next)
		viaPoint := prev.Dist(points[i]) + points[i].Dist(next)
		spanning[i] = viaPoint-direct > collinearTol
	}

	return geometry.NewTrajectory(full), spanning
}
