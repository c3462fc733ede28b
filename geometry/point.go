// Package geometry provides the plane-geometry primitives shared by the
// instance and bnb packages: points, disks, trajectories, segment
// distance, convex hull, and onion-layer peeling.
//
// Design:
//   - Value types (Point, Disk) are small and copied freely.
//   - No panics on well-formed numeric input; NaN/Inf handling is the
//     caller's responsibility (the instance package validates disks
//     before they ever reach here).
//   - Deterministic: no randomness, ties broken by index order.
package geometry

import "math"

// Point is a coordinate in the Euclidean plane.
type Point struct {
	X, Y float64
}

// Sub returns p-q as a vector.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Dot returns the dot product of p and q treated as vectors.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Cross returns the z-component of the cross product p×q.
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

// SquaredDist returns the squared Euclidean distance between p and q.
//
// Complexity: O(1).
func (p Point) SquaredDist(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y

	return dx*dx + dy*dy
}

// Dist returns the Euclidean distance between p and q.
//
// Complexity: O(1).
func (p Point) Dist(q Point) float64 {
	return math.Sqrt(p.SquaredDist(q))
}

// Equal reports whether p and q have identical coordinates.
func (p Point) Equal(q Point) bool { return p.X == q.X && p.Y == q.Y }

// DistanceToSegment returns the Euclidean distance from point p to the
// closed segment [s0,s1]. Degenerate segments (s0==s1) fall back to the
// point-to-point distance.
//
// Complexity: O(1).
func DistanceToSegment(s0, s1, p Point) float64 {
	d := s1.Sub(s0)
	lenSq := d.Dot(d)
	if lenSq == 0 {
		return p.Dist(s0)
	}

	// Project p onto the line through s0,s1, clamped to [0,1].
	t := p.Sub(s0).Dot(d) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	proj := s0.Add(d.Scale(t))

	return p.Dist(proj)
}

// SegmentsIntersect reports whether closed segments [a0,a1] and [b0,b1]
// intersect: a proper crossing, an endpoint of one lying on the other, or a
// collinear overlap (used by Trajectory.IsSimple). Shared endpoints between
// consecutive segments of a polyline are not considered intersections by
// the caller, which only tests non-adjacent segment pairs.
//
// Complexity: O(1).
func SegmentsIntersect(a0, a1, b0, b1 Point) bool {
	d1 := direction(b0, b1, a0)
	d2 := direction(b0, b1, a1)
	d3 := direction(a0, a1, b0)
	d4 := direction(a0, a1, b1)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	if d1 == 0 && onSegment(b0, b1, a0) {
		return true
	}
	if d2 == 0 && onSegment(b0, b1, a1) {
		return true
	}
	if d3 == 0 && onSegment(a0, a1, b0) {
		return true
	}
	if d4 == 0 && onSegment(a0, a1, b1) {
		return true
	}

	return false
}

func direction(p, q, r Point) float64 {
	return q.Sub(p).Cross(r.Sub(p))
}

func onSegment(p, q, r Point) bool {
	return math.Min(p.X, q.X) <= r.X && r.X <= math.Max(p.X, q.X) &&
		math.Min(p.Y, q.Y) <= r.Y && r.Y <= math.Max(p.Y, q.Y)
}
