package bnb

import (
	"github.com/katalvlaran/cetsp/geometry"
	"github.com/katalvlaran/cetsp/instance"
)

// LayeredConvexHullRule generalizes GlobalConvexHullRule to the full onion
// peeling of disk centers: layer 0 is the outer hull, layer 1 the hull of
// what remains after removing layer 0, and so on. Each layer's disks must
// individually be visited in a monotone (tour, layer 0) or bitonic
// (otherwise) order of hull positions on that layer, read either CCW or CW.
//
// The recursive "between adjacent outer-hull vertices, recheck the inner
// layer" refinement from §4.7.2 step 4 is not implemented, for tours or
// paths: only the per-layer checks below run.
type LayeredConvexHullRule struct {
	layers []layerInfo
	isTour bool
}

type layerInfo struct {
	position map[int]int // disk index -> index within this layer's CCW list
	size     int
}

// Setup computes the onion layers of disk centers.
//
// Complexity: O(n² log n) worst case (OnionLayers' own bound).
func (r *LayeredConvexHullRule) Setup(inst *instance.Instance, root *Node, pool *SolutionPool) error {
	r.isTour = inst.IsTour()
	disks := inst.Disks()
	centers := make([]geometry.Point, len(disks))
	for i, d := range disks {
		centers[i] = d.Center
	}

	rawLayers := geometry.OnionLayers(centers)
	r.layers = make([]layerInfo, len(rawLayers))
	for li, layer := range rawLayers {
		pos := make(map[int]int, len(layer))
		for p, diskIdx := range layer {
			pos[diskIdx] = p
		}
		r.layers[li] = layerInfo{position: pos, size: len(layer)}
	}

	return nil
}

// IsOK implements SequenceRule: every layer's restriction of candidate
// must satisfy the monotone (tour, layer 0) or bitonic (otherwise) rule.
func (r *LayeredConvexHullRule) IsOK(candidate []int) bool {
	for li, layer := range r.layers {
		positions := make([]int, 0, len(candidate))
		for _, idx := range candidate {
			if p, ok := layer.position[idx]; ok {
				positions = append(positions, p)
			}
		}
		monotoneOnly := r.isTour && li == 0
		if !layeredHullCheck(positions, layer.size, monotoneOnly) {
			return false
		}
	}

	return true
}
