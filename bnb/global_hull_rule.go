package bnb

import (
	"github.com/katalvlaran/cetsp/geometry"
	"github.com/katalvlaran/cetsp/instance"
)

// GlobalConvexHullRule rejects candidate sequences whose hull-disk
// sub-sequence is not consistent with the convex hull's CCW cyclic order
// (tour), or not bitonic (path). Proves the theorem that an optimal CETSP
// tour visits the disks lying on the convex hull of disk centers in CCW
// order.
type GlobalConvexHullRule struct {
	order map[int]float64
	isTour bool
}

// Setup computes, for every disk whose center lies on the convex hull of
// disk centers (or whose disk intersects a hull edge), its scalar `order`
// value: arc length along the hull from a canonical start vertex.
//
// Complexity: O(n log n) (one convex hull) plus O(n·h) for off-hull disks
// (h hull vertices, each hull edge tested per off-hull disk).
func (r *GlobalConvexHullRule) Setup(inst *instance.Instance, root *Node, pool *SolutionPool) error {
	r.isTour = inst.IsTour()
	disks := inst.Disks()
	centers := make([]geometry.Point, len(disks))
	for i, d := range disks {
		centers[i] = d.Center
	}
	hull := geometry.ConvexHull(centers)
	r.order = hullArcOrder(disks, centers, hull)

	return nil
}

// IsOK implements SequenceRule.
func (r *GlobalConvexHullRule) IsOK(candidate []int) bool {
	vals := orderedSubsequence(candidate, r.order)
	if len(vals) < 2 {
		return true
	}
	if r.isTour {
		return monotoneNonDecreasing(vals)
	}

	return bitonicRotated(vals)
}

// hullArcOrder assigns arc-length order values to hull disks and to
// off-hull disks whose disk intersects a hull edge (the latter ordered by
// their projection onto that edge).
func hullArcOrder(disks []geometry.Disk, centers []geometry.Point, hull []int) map[int]float64 {
	order := make(map[int]float64, len(hull))
	if len(hull) == 0 {
		return order
	}

	cum := make([]float64, len(hull))
	var acc float64
	for i := range hull {
		order[hull[i]] = acc
		cum[i] = acc
		next := centers[hull[(i+1)%len(hull)]]
		acc += centers[hull[i]].Dist(next)
	}

	onHull := make(map[int]bool, len(hull))
	for _, idx := range hull {
		onHull[idx] = true
	}

	for i, d := range disks {
		if onHull[i] {
			continue
		}
		bestDist := d.Radius
		bestOrder, found := 0.0, false
		for e := 0; e < len(hull); e++ {
			a, b := centers[hull[e]], centers[hull[(e+1)%len(hull)]]
			dist := geometry.DistanceToSegment(a, b, d.Center)
			if dist > d.Radius {
				continue
			}
			proj := projectArcLength(a, b, d.Center, cum[e])
			if !found || dist < bestDist {
				found = true
				bestDist = dist
				bestOrder = proj
			}
		}
		if found {
			order[i] = bestOrder
		}
	}

	return order
}

// projectArcLength returns the arc-length order value of p's projection
// onto segment [a,b], whose own order value (at a) is baseOrder.
func projectArcLength(a, b, p geometry.Point, baseOrder float64) float64 {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		return baseOrder
	}
	t := p.Sub(a).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return baseOrder + t*a.Dist(b)
}

// orderedSubsequence extracts, in candidate's own order, the order values
// of the disks in candidate that have an assigned order.
func orderedSubsequence(candidate []int, order map[int]float64) []float64 {
	vals := make([]float64, 0, len(candidate))
	for _, idx := range candidate {
		if v, ok := order[idx]; ok {
			vals = append(vals, v)
		}
	}

	return vals
}
