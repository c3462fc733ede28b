// Package lowerbound implements the engine's optional missing-disks lower
// bound: given a node's current trajectory and the instance disks it does
// not yet cover, bound the minimum extra length required to insert them,
// via a small 0/1 assignment MIP solved with an LP-relaxation-plus-branch-
// and-bound engine grounded on jjhbw-GoMILP's subproblem/branch pattern.
package lowerbound

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// subProblem is one node of the binary-MIP branch-and-bound tree: the
// original problem (c, A, b equalities; G, h inequalities) plus the extra
// single-variable bound constraints accumulated by branching.
type subProblem struct {
	c []float64
	A *mat.Dense
	b []float64
	G *mat.Dense
	h []float64

	// bnbBounds holds, per branched variable, the tightened upper or lower
	// bound imposed by a previous branch decision.
	bnbBounds []bnbBound
}

type bnbBound struct {
	variable int
	// isUpper true means x[variable] <= value; false means x[variable] >= value.
	isUpper bool
	value   float64
}

// combineInequalities folds the branch-and-bound bound constraints into
// the original G/h pair, same technique as GoMILP's subProblem method of
// the same name.
func (p subProblem) combineInequalities() (*mat.Dense, []float64) {
	if len(p.bnbBounds) == 0 {
		return p.G, p.h
	}

	nVar := len(p.c)
	h := append([]float64(nil), p.h...)
	var rows []float64
	for _, bnd := range p.bnbBounds {
		row := make([]float64, nVar)
		if bnd.isUpper {
			row[bnd.variable] = 1
			h = append(h, bnd.value)
		} else {
			row[bnd.variable] = -1
			h = append(h, -bnd.value)
		}
		rows = append(rows, row...)
	}
	bnbG := mat.NewDense(len(p.bnbBounds), nVar, rows)

	if p.G == nil {
		return bnbG, h
	}

	origRows, _ := p.G.Dims()
	full := mat.NewDense(origRows+len(p.bnbBounds), nVar, nil)
	full.Stack(p.G, bnbG)

	return full, h
}

// convertToEqualities appends slack variables so that Gx<=h becomes
// [A 0; G I][x;s] = [b;h], the standard form gonum's Simplex requires.
// Ported from GoMILP's function of the same purpose.
func convertToEqualities(c []float64, A *mat.Dense, b []float64, G *mat.Dense, h []float64) (cNew []float64, aNew *mat.Dense, bNew []float64) {
	nVar := len(c)
	nCons := len(b)
	nIneq := len(h)
	nNewVar := nVar + nIneq
	nNewCons := nCons + nIneq

	cNew = make([]float64, nNewVar)
	copy(cNew, c)

	bNew = make([]float64, nNewCons)
	copy(bNew, b)
	copy(bNew[nCons:], h)

	aNew = mat.NewDense(nNewCons, nNewVar, nil)
	if A != nil && nCons > 0 {
		aNew.Slice(0, nCons, 0, nVar).(*mat.Dense).Copy(A)
	}
	if nIneq > 0 {
		aNew.Slice(nCons, nNewCons, 0, nVar).(*mat.Dense).Copy(G)
		bottomRight := aNew.Slice(nCons, nNewCons, nVar, nNewVar).(*mat.Dense)
		for i := 0; i < nIneq; i++ {
			bottomRight.Set(i, i, 1)
		}
	}

	return cNew, aNew, bNew
}

// solve runs the LP relaxation of p and returns its objective and the
// original (non-slack) variable values.
func (p subProblem) solve() (float64, []float64, error) {
	G, h := p.combineInequalities()

	var z float64
	var x []float64
	var err error
	if G != nil && len(h) > 0 {
		c, A, b := convertToEqualities(p.c, p.A, p.b, G, h)
		z, x, err = lp.Simplex(c, A, b, 0, nil)
		if err == nil && len(x) > len(p.c) {
			x = x[:len(p.c)]
		}
	} else {
		z, x, err = lp.Simplex(p.c, p.A, p.b, 0, nil)
	}

	return z, x, err
}

// mostFractional returns the index of the variable closest to 0.5, or -1
// if every variable is within tol of an integer.
func mostFractional(x []float64, tol float64) int {
	best := -1
	bestDist := 0.5
	for i, v := range x {
		frac := v - math.Floor(v)
		dist := math.Abs(frac - 0.5)
		if frac > tol && frac < 1-tol && dist < bestDist {
			bestDist = dist
			best = i
		}
	}

	return best
}

// solveBinaryMIP finds the minimum-cost integral solution to
// min c^T x s.t. Ax=b, Gx<=h, x in {0,1}^n, via LP-relaxation branch and
// bound. Returns the incumbent's objective and assignment.
//
// The specific assignment-with-capacity structure this package builds
// (see bound.go) is a transportation polytope, whose LP relaxation is
// already integral by total unimodularity; branching below still runs
// the general-purpose path so the solver is not silently specialized to
// that one shape.
func solveBinaryMIP(c []float64, A *mat.Dense, b []float64, G *mat.Dense, h []float64) (float64, []float64, error) {
	root := subProblem{c: c, A: A, b: b, G: G, h: h}

	stack := []subProblem{root}
	incumbentObj := math.Inf(1)
	var incumbentX []float64

	const maxNodes = 2000
	const tol = 1e-6

	for i := 0; i < maxNodes && len(stack) > 0; i++ {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		z, x, err := p.solve()
		if err != nil {
			continue // infeasible subproblem; prune
		}
		if z >= incumbentObj {
			continue // bound-dominated; prune
		}

		branchVar := mostFractional(x, tol)
		if branchVar < 0 {
			incumbentObj = z
			incumbentX = append([]float64(nil), x...)

			continue
		}

		floorVal := math.Floor(x[branchVar])
		down := p
		down.bnbBounds = append(append([]bnbBound(nil), p.bnbBounds...), bnbBound{variable: branchVar, isUpper: true, value: floorVal})
		up := p
		up.bnbBounds = append(append([]bnbBound(nil), p.bnbBounds...), bnbBound{variable: branchVar, isUpper: false, value: floorVal + 1})
		stack = append(stack, down, up)
	}

	if incumbentX == nil {
		return 0, nil, ErrSimplexFailed
	}

	return incumbentObj, incumbentX, nil
}
