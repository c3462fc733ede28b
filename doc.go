// Package cetsp provides an exact Branch-and-Bound solver for the
// Close-Enough Traveling Salesman Problem (CETSP): given a set of disks
// in the plane, find the shortest closed tour (or fixed-endpoint path)
// that touches at least one point of every disk.
//
// The engine proves optimality to within a user-specified relative gap
// rather than claiming exact global optimality outright; it stops early
// when a wall-clock budget is exceeded, in which case it returns the
// best incumbent found together with the proven lower bound.
//
// Everything is organized under focused subpackages:
//
//	geometry/   — points, disks, trajectories, convex hull / onion layers
//	instance/   — the disk collection, lazy constraints, revision counter
//	socp/       — the second-order-cone "shortest touring trajectory" relaxation
//	bnb/        — the Branch-and-Bound tree, strategies, rules, and driver
//	lowerbound/ — an optional MIP-based lower bound for disks missing from a fixed tour
//	heuristic/  — a nearest-neighbor + 2-opt seed for the solution pool's upper bound
//	internal/telemetry/ — structured logging factory and Prometheus metric variables
//
// Runnable Example functions live in the geometry and instance packages;
// the repository has no demo binary.
//
// Typical usage:
//
//	inst, err := instance.New(disks, nil, 0.01)
//	relax := socp.NewSolver(socp.DefaultConfig())
//	algo := bnb.New(inst, relax, bnb.DefaultConfig())
//	err = algo.Optimize(30*time.Second, 0.01, false)
//	best, ok := algo.Solution()
package cetsp
