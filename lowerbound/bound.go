package lowerbound

import (
	"math"

	"github.com/katalvlaran/cetsp/geometry"
	"gonum.org/v1/gonum/mat"
)

// Bound computes the missing-disks lower bound: a floor on the additional
// length an existing trajectory must grow by to also cover a set of disks
// it does not yet touch. Wire its result into bnb.BranchAndBound.AddLowerBound
// alongside (or in place of) the SOCP-relaxation bound.
type Bound struct{}

// Compute bounds the minimum extra length needed to insert every disk in
// missing into traj, modeled as a 0/1 assignment: each missing disk is
// assigned to exactly one trajectory edge (insertion cost = the detour
// length through the disk's center minus the edge it replaces, minus the
// disk's radius, floored at 0), and each edge hosts at most one inserted
// disk. The LP relaxation of this transportation-polytope model is
// integral, so the branch-and-bound solver in milp.go settles it without
// branching in practice; it is still routed through the general solver.
//
// Errors:
//   - ErrNoMissingDisks if missing is empty.
//   - ErrDegenerateTrajectory if traj has fewer than 2 points.
//   - ErrSimplexFailed if the LP relaxation could not be solved.
//
// Complexity: O(m*k) to build the cost matrix (m missing disks, k edges),
// plus the MIP solver's own cost.
func (Bound) Compute(traj geometry.Trajectory, missing []geometry.Disk) (float64, error) {
	if len(missing) == 0 {
		return 0, ErrNoMissingDisks
	}
	if len(traj.Points) < 2 {
		return 0, ErrDegenerateTrajectory
	}

	m := len(missing)
	k := len(traj.Points) - 1
	nVar := m * k

	cost := make([]float64, nVar)
	for i, d := range missing {
		for e := 0; e < k; e++ {
			a, b := traj.Points[e], traj.Points[e+1]
			detour := a.Dist(d.Center) + d.Center.Dist(b) - a.Dist(b) - d.Radius
			if detour < 0 {
				detour = 0
			}
			cost[i*k+e] = detour
		}
	}

	// Assignment equalities: each missing disk assigned to exactly one edge.
	aData := make([]float64, m*nVar)
	for i := 0; i < m; i++ {
		for e := 0; e < k; e++ {
			aData[i*nVar+i*k+e] = 1
		}
	}
	A := mat.NewDense(m, nVar, aData)
	bVec := make([]float64, m)
	for i := range bVec {
		bVec[i] = 1
	}

	// Capacity inequalities: each edge hosts at most one inserted disk.
	gData := make([]float64, k*nVar)
	for e := 0; e < k; e++ {
		for i := 0; i < m; i++ {
			gData[e*nVar+i*k+e] = 1
		}
	}
	G := mat.NewDense(k, nVar, gData)
	hVec := make([]float64, k)
	for e := range hVec {
		hVec[e] = 1
	}

	obj, _, err := solveBinaryMIP(cost, A, bVec, G, hVec)
	if err != nil {
		return 0, ErrSimplexFailed
	}

	return math.Max(obj, 0), nil
}
