package geometry

import "math"

// roundScale stabilizes lengths to 1e-9 absolute precision, matching the
// cost-stabilization convention used throughout this module's numeric code.
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// Trajectory is an ordered polyline realized by a sequence of touching
// points. A tour trajectory has its first point equal to its last; a path
// trajectory does not. The total length is computed once and cached -
// Trajectory is treated as immutable after construction by every caller in
// this module.
type Trajectory struct {
	Points []Point

	lengthCached bool
	length       float64
}

// NewTrajectory constructs a trajectory from an explicit point sequence.
//
// Complexity: O(1) (length is computed lazily on first Length() call).
func NewTrajectory(points []Point) Trajectory {
	return Trajectory{Points: points}
}

// IsTour reports whether the trajectory is closed (first point == last).
// A trajectory with fewer than 2 points is degenerate and reports true
// (a single point is trivially its own closure).
//
// Complexity: O(1).
func (t *Trajectory) IsTour() bool {
	if len(t.Points) < 2 {
		return true
	}

	return t.Points[0].Equal(t.Points[len(t.Points)-1])
}

// Length returns the Euclidean length of the polyline, cached after the
// first call. The cache is invalidated only by constructing a new
// Trajectory value (Points is never mutated in place by this package).
//
// Complexity: O(n) on first call, O(1) thereafter.
func (t *Trajectory) Length() float64 {
	if t.lengthCached {
		return t.length
	}

	var sum float64
	for i := 0; i+1 < len(t.Points); i++ {
		sum += t.Points[i].Dist(t.Points[i+1])
	}
	t.length = round1e9(sum)
	t.lengthCached = true

	return t.length
}

// Distance returns the minimum distance from any point on the trajectory
// (vertices and interior segment points alike) to the disk's center, minus
// the disk's radius. A non-positive result means the trajectory already
// touches the disk.
//
// Complexity: O(n).
func (t *Trajectory) Distance(d Disk) float64 {
	if len(t.Points) == 0 {
		return math.Inf(1)
	}
	if len(t.Points) == 1 {
		return t.Points[0].Dist(d.Center) - d.Radius
	}

	min := math.Inf(1)
	for i := 0; i+1 < len(t.Points); i++ {
		dist := DistanceToSegment(t.Points[i], t.Points[i+1], d.Center)
		if dist < min {
			min = dist
		}
	}

	return min - d.Radius
}

// Covers reports whether the trajectory touches disk d within tolerance
// eps: Distance(d) <= eps.
//
// Complexity: O(n).
func (t *Trajectory) Covers(d Disk, eps float64) bool {
	return t.Distance(d) <= eps
}

// CoversAll reports whether the trajectory touches every disk in disks
// within tolerance eps.
//
// Complexity: O(n*m) for m disks.
func (t *Trajectory) CoversAll(disks []Disk, eps float64) bool {
	for _, d := range disks {
		if !t.Covers(d, eps) {
			return false
		}
	}

	return true
}

// IsSimple reports whether the trajectory is non-self-intersecting: no two
// non-adjacent segments cross. Adjacent segments sharing an endpoint (and,
// for a tour, the first/last segment pair sharing the closure point) are
// not considered crossings.
//
// Complexity: O(n²).
func (t *Trajectory) IsSimple() bool {
	n := len(t.Points)
	if n < 4 {
		return true
	}
	segCount := n - 1
	for i := 0; i < segCount; i++ {
		for j := i + 1; j < segCount; j++ {
			if j == i+1 {
				continue // adjacent segments share an endpoint by construction
			}
			if i == 0 && j == segCount-1 && t.Points[0].Equal(t.Points[n-1]) {
				continue // closing segment of a tour shares the start point
			}
			if SegmentsIntersect(t.Points[i], t.Points[i+1], t.Points[j], t.Points[j+1]) {
				return false
			}
		}
	}

	return true
}
