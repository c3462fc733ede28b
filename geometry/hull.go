// Package geometry — convex hull and onion-layer peeling.
//
// ConvexHull implements Andrew's monotone-chain algorithm. OnionLayers
// repeatedly peels the convex hull off the remaining points, grounded on
// the layered-peeling idea in original_source/src/convex_hull_order.cpp
// and on the dense O(n²) numerical style of lvlath's tsp/bound_onetree.go
// 1-tree machinery (ported here to hull peeling rather than MST building).
package geometry

import "sort"

// ConvexHull returns the indices of pts lying on the convex hull, in
// counter-clockwise order, starting from the leftmost-then-lowest point.
// Points lying strictly inside a hull edge (collinear with its endpoints)
// are excluded. Points are assumed distinct; duplicate coordinates
// collapse to one hull vertex.
//
// Complexity: O(n log n).
func ConvexHull(pts []Point) []int {
	n := len(pts)
	if n < 3 {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}

		return idx
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		a, b := pts[order[i]], pts[order[j]]
		if a.X != b.X {
			return a.X < b.X
		}

		return a.Y < b.Y
	})

	cross := func(o, a, b int) float64 {
		return pts[a].Sub(pts[o]).Cross(pts[b].Sub(pts[o]))
	}

	// Build lower hull.
	var lower []int
	for _, p := range order {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	// Build upper hull.
	var upper []int
	for i := n - 1; i >= 0; i-- {
		p := order[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)

	return hull
}

// OnionLayers repeatedly computes the convex hull of the remaining points
// and peels it off, returning successive layers as index slices into the
// original pts slice (layer 0 is the outermost hull).
//
// Complexity: O(n² log n) worst case (n layers, each an O(n log n) hull).
func OnionLayers(pts []Point) [][]int {
	remaining := make([]int, len(pts))
	for i := range remaining {
		remaining[i] = i
	}

	var layers [][]int
	for len(remaining) > 0 {
		sub := make([]Point, len(remaining))
		for i, idx := range remaining {
			sub[i] = pts[idx]
		}
		hullLocal := ConvexHull(sub)
		if len(hullLocal) == 0 {
			break
		}

		layer := make([]int, len(hullLocal))
		onLayer := make(map[int]bool, len(hullLocal))
		for i, li := range hullLocal {
			layer[i] = remaining[li]
			onLayer[li] = true
		}
		layers = append(layers, layer)

		next := remaining[:0:0]
		for i, idx := range remaining {
			if !onLayer[i] {
				next = append(next, idx)
			}
		}
		remaining = next
	}

	return layers
}
