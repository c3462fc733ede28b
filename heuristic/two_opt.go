package heuristic

import "github.com/katalvlaran/cetsp/geometry"

// TwoOpt runs deterministic first-improvement 2-opt over order (a
// permutation of disk indices), using center-to-center distance as the
// edge cost. isTour selects whether order closes on itself (wraparound
// edge order[n-1]-order[0]) or is left open (path instance).
//
// order is mutated in place and also returned for convenience.
//
// Complexity: O(iter*n^2), one O(n^2) scan per accepted improving move.
func TwoOpt(disks []geometry.Disk, order []int, isTour bool) []int {
	n := len(order)
	if n < 4 {
		return order
	}

	d := func(i, j int) float64 { return disks[order[i]].Center.Dist(disks[order[j]].Center) }

	// edge(t) is the cost of the edge leaving position t, or 0 if t is the
	// last position of an open path (no edge leaves it).
	edge := func(t int) float64 {
		next := t + 1
		if next == n {
			if !isTour {
				return 0
			}
			next = 0
		}

		return d(t, next)
	}

	improved := true
	for improved {
		improved = false
		for i := 0; i < n-2 && !improved; i++ {
			for k := i + 2; k < n; k++ {
				if !isTour && k == n-1 && i == 0 {
					continue // reversing the whole open path changes nothing
				}

				delta := twoOptDelta(d, edge, i, k, n, isTour)
				if delta < -1e-9 {
					reverseSegment(order, i+1, k)
					improved = true

					break
				}
			}
		}
	}

	return order
}

// twoOptDelta computes the length change of breaking edges leaving
// positions i and k and reversing the segment (i+1..k): the new edges are
// (i, k) and (i+1, k's successor).
func twoOptDelta(d func(i, j int) float64, edge func(t int) float64, i, k, n int, isTour bool) float64 {
	before := edge(i) + edge(k)

	next := k + 1
	var after float64
	if next == n {
		if !isTour {
			after = d(i, k) // the tail edge (i+1 .. k successor) vanishes
		} else {
			after = d(i, k) + d(i+1, 0)
		}
	} else {
		after = d(i, k) + d(i+1, next)
	}

	return after - before
}

// reverseSegment reverses order[i:j+1] in place.
func reverseSegment(order []int, i, j int) {
	for i < j {
		order[i], order[j] = order[j], order[i]
		i++
		j--
	}
}
