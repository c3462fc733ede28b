package bnb

import (
	"math/rand"

	"github.com/katalvlaran/cetsp/geometry"
	"github.com/katalvlaran/cetsp/instance"
	"github.com/katalvlaran/cetsp/socp"
)

// RootStrategy constructs the engine's initial node.
type RootStrategy interface {
	Root(inst *instance.Instance, relax socp.Relaxation) (*Node, error)
}

// LongestEdgePlusFurthestCircle seeds a tour with the three-disk sequence
// {the two disks with the greatest center-center distance, plus the disk
// maximizing the sum of distances to those two centers}; for fewer than
// four disks it seeds with all of them. A three-disk tour seed is put in
// counter-clockwise order of centers. A path instance is seeded with the
// single disk maximizing d(start,·)+d(end,·).
type LongestEdgePlusFurthestCircle struct{}

// Root implements RootStrategy.
func (LongestEdgePlusFurthestCircle) Root(inst *instance.Instance, relax socp.Relaxation) (*Node, error) {
	disks := inst.Disks()

	if inst.IsPath() {
		start, _ := inst.Start()
		end, _ := inst.End()
		best := 0
		bestScore := -1.0
		for i, d := range disks {
			score := d.Center.Dist(start) + d.Center.Dist(end)
			if score > bestScore {
				bestScore = score
				best = i
			}
		}
		partial, err := newPartialSequenceSolution(inst, []int{best}, relax)
		if err != nil {
			return nil, err
		}

		return newNode(partial, nil, 0), nil
	}

	if len(disks) < 4 {
		seq := make([]int, len(disks))
		for i := range seq {
			seq[i] = i
		}
		if len(seq) == 3 && disks[1].Center.Sub(disks[0].Center).Cross(disks[2].Center.Sub(disks[0].Center)) < 0 {
			seq[1], seq[2] = seq[2], seq[1]
		}
		partial, err := newPartialSequenceSolution(inst, seq, relax)
		if err != nil {
			return nil, err
		}

		return newNode(partial, nil, 0), nil
	}

	a, b := farthestPair(disks)
	c := furthestFromPair(disks, a, b)
	// Counter-clockwise order, the one GlobalConvexHullRule accepts on tours.
	if disks[b].Center.Sub(disks[a].Center).Cross(disks[c].Center.Sub(disks[a].Center)) < 0 {
		b, c = c, b
	}
	partial, err := newPartialSequenceSolution(inst, []int{a, b, c}, relax)
	if err != nil {
		return nil, err
	}

	return newNode(partial, nil, 0), nil
}

func farthestPair(disks []geometry.Disk) (int, int) {
	bestA, bestB := 0, 1
	bestDist := -1.0
	for i := 0; i < len(disks); i++ {
		for j := i + 1; j < len(disks); j++ {
			d := disks[i].Center.Dist(disks[j].Center)
			if d > bestDist {
				bestDist = d
				bestA, bestB = i, j
			}
		}
	}

	return bestA, bestB
}

func furthestFromPair(disks []geometry.Disk, a, b int) int {
	best := 0
	bestScore := -1.0
	for i, d := range disks {
		if i == a || i == b {
			continue
		}
		score := d.Center.Dist(disks[a].Center) + d.Center.Dist(disks[b].Center)
		if score > bestScore {
			bestScore = score
			best = i
		}
	}

	return best
}

// ConvexHull seeds a tour with the convex hull order of disk centers,
// dropping any non-spanning disk from that order. Rejects path instances.
type ConvexHull struct{}

// Root implements RootStrategy.
//
// Errors: ErrConvexHullRootOnPath (ConfigurationError) for a path instance.
func (ConvexHull) Root(inst *instance.Instance, relax socp.Relaxation) (*Node, error) {
	if inst.IsPath() {
		return nil, configErr(ErrConvexHullRootOnPath)
	}

	disks := inst.Disks()
	centers := make([]geometry.Point, len(disks))
	for i, d := range disks {
		centers[i] = d.Center
	}
	hull := geometry.ConvexHull(centers)

	partial, err := newPartialSequenceSolution(inst, hull, relax)
	if err != nil {
		return nil, err
	}
	simplified, err := partial.Simplify(relax)
	if err != nil {
		return nil, err
	}

	return newNode(simplified, nil, 0), nil
}

// RandomRoot shuffles the full disk set (tour) or picks a uniformly random
// single disk (path) as the root seed. Intended only for ablation studies;
// a nil Rng falls back to a generator seeded with 1.
type RandomRoot struct {
	Rng *rand.Rand
}

// Root implements RootStrategy.
func (r RandomRoot) Root(inst *instance.Instance, relax socp.Relaxation) (*Node, error) {
	rng := r.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	if inst.IsPath() {
		n := inst.Size()
		partial, err := newPartialSequenceSolution(inst, []int{rng.Intn(n)}, relax)
		if err != nil {
			return nil, err
		}

		return newNode(partial, nil, 0), nil
	}

	n := inst.Size()
	seq := make([]int, n)
	for i := range seq {
		seq[i] = i
	}
	rng.Shuffle(n, func(i, j int) { seq[i], seq[j] = seq[j], seq[i] })

	partial, err := newPartialSequenceSolution(inst, seq, relax)
	if err != nil {
		return nil, err
	}

	return newNode(partial, nil, 0), nil
}
