package bnb

// monotoneNonDecreasing reports whether vals, rotated so its minimum is
// first, is non-decreasing.
//
// Complexity: O(n).
func monotoneNonDecreasing(vals []float64) bool {
	if len(vals) < 2 {
		return true
	}
	rotated := rotateToMin(vals)
	for i := 1; i < len(rotated); i++ {
		if rotated[i] < rotated[i-1] {
			return false
		}
	}

	return true
}

// bitonicRotated reports whether vals, rotated so its minimum is first, is
// bitonic: non-decreasing up to a peak, then non-increasing (a purely
// monotone sequence, peak at either end, satisfies this trivially).
//
// Complexity: O(n).
func bitonicRotated(vals []float64) bool {
	if len(vals) < 3 {
		return true
	}
	rotated := rotateToMin(vals)

	i := 1
	for i < len(rotated) && rotated[i] >= rotated[i-1] {
		i++
	}
	for i < len(rotated) && rotated[i] <= rotated[i-1] {
		i++
	}

	return i == len(rotated)
}

// rotateToMin returns vals rotated so that its minimum-valued element is
// first, breaking ties by the earliest such index.
func rotateToMin(vals []float64) []float64 {
	minIdx := 0
	for i, v := range vals {
		if v < vals[minIdx] {
			minIdx = i
		}
	}
	out := make([]float64, len(vals))
	for i := range out {
		out[i] = vals[(minIdx+i)%len(vals)]
	}

	return out
}

// layeredHullCheck reports whether positions (indices into a layer's CCW
// hull-ordered disk list, n total) satisfy the layered-hull ordering rule:
// monotone if monotoneOnly, bitonic otherwise. Both the forward (CCW) and
// reversed (CW) reading of positions are tried, matching §4.7.2 step 2's
// "reverse the list if necessary".
//
// Complexity: O(n).
func layeredHullCheck(positions []int, n int, monotoneOnly bool) bool {
	if len(positions) < 2 {
		return true
	}

	forward := unrollCircular(positions, n)
	if layeredHullCheckUnrolled(forward, monotoneOnly) {
		return true
	}

	reversed := make([]int, len(positions))
	for i, p := range positions {
		reversed[i] = (n - p) % n
	}
	backward := unrollCircular(reversed, n)

	return layeredHullCheckUnrolled(backward, monotoneOnly)
}

func layeredHullCheckUnrolled(vals []int, monotoneOnly bool) bool {
	fvals := make([]float64, len(vals))
	for i, v := range vals {
		fvals[i] = float64(v)
	}
	if monotoneOnly {
		for i := 1; i < len(fvals); i++ {
			if fvals[i] < fvals[i-1] {
				return false
			}
		}

		return true
	}

	i := 1
	for i < len(fvals) && fvals[i] >= fvals[i-1] {
		i++
	}
	for i < len(fvals) && fvals[i] <= fvals[i-1] {
		i++
	}

	return i == len(fvals)
}

// unrollCircular rewrites positions (each in [0,n)) into a non-decreasing-
// step sequence by adding the smallest non-negative multiple of n needed
// to keep each step forward, modeling a CCW walk around a hull of size n
// starting from positions[0].
func unrollCircular(positions []int, n int) []int {
	out := make([]int, len(positions))
	out[0] = positions[0]
	for i := 1; i < len(positions); i++ {
		prev := out[i-1]
		cur := positions[i]
		for cur < prev {
			cur += n
		}
		out[i] = cur
	}

	return out
}
