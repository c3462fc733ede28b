// Package heuristic builds a fast, inexact initial tour/path order over an
// instance's disk centers, used to seed the exact engine's solution pool
// with a real upper bound before the search tree explores a single node.
// Sequencing ignores disk radii (center-to-center Euclidean distance is a
// valid lower bound on any trajectory visiting those disks, so the
// resulting order is a reasonable proxy); the final length reported to the
// caller always comes from materializing the order through the same
// socp.Relaxation the B&B driver itself uses, not from the proxy distance.
//
// Grounded on lvlath's tsp package: NearestNeighbor mirrors the greedy
// construction step of its Christofides pipeline (tsp/approx.go), and
// TwoOpt mirrors the deterministic first-improvement local search of
// tsp/two_opt.go, both adapted from graph-matrix distances to disk centers.
package heuristic

import "github.com/katalvlaran/cetsp/geometry"

// NearestNeighbor returns a visiting order over disks (indices into disks)
// built by repeatedly stepping to the nearest unvisited center, starting
// from index 0.
//
// Errors: ErrTooFewDisks if len(disks) < 2.
//
// Complexity: O(n^2).
func NearestNeighbor(disks []geometry.Disk) ([]int, error) {
	n := len(disks)
	if n < 2 {
		return nil, ErrTooFewDisks
	}

	visited := make([]bool, n)
	order := make([]int, 0, n)

	cur := 0
	visited[cur] = true
	order = append(order, cur)

	for len(order) < n {
		best := -1
		bestDist := 0.0
		for j := 0; j < n; j++ {
			if visited[j] {
				continue
			}
			d := disks[cur].Center.Dist(disks[j].Center)
			if best == -1 || d < bestDist {
				best = j
				bestDist = d
			}
		}
		visited[best] = true
		order = append(order, best)
		cur = best
	}

	return order, nil
}
