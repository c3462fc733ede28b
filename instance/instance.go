// Package instance models a CETSP instance: an ordered collection of
// disks plus an optional fixed (start,end) pair that turns a tour
// instance into a path instance.
//
// Design:
//   - Input disks are sorted by increasing radius; any disk that entirely
//     contains a previously accepted (smaller-or-equal) disk is dropped
//     at construction, since touching the smaller disk already satisfies
//     the larger one.
//   - AddDisk applies the same containment dedup and, only when it
//     actually changes the disk set, bumps Revision so that nodes
//     computed against a stale revision know to re-verify feasibility.
//   - Default feasibility tolerance eps is 0.01, matching the original
//     engine's FEASIBILITY_TOL default.
package instance

import (
	"sort"

	"github.com/katalvlaran/cetsp/geometry"
)

// DefaultEps is the default ε-feasibility tolerance.
const DefaultEps = 0.01

// Endpoints fixes the start and end point of a path instance.
type Endpoints struct {
	Start, End geometry.Point
}

// Instance is an ordered collection of disks, optionally turned into a
// path instance by a fixed (start,end) pair.
type Instance struct {
	disks    []geometry.Disk
	path     *Endpoints
	eps      float64
	revision int
}

// New constructs an Instance from disks (copied; never aliased) and an
// optional path endpoint pair. Disks are sorted by increasing radius and
// any disk that entirely contains an already-accepted disk is dropped.
//
// Errors:
//   - ErrInvalidRadius if any disk has Radius < 0.
//   - ErrInvalidEps if eps < 0.
//   - ErrEmptyDisks if path is nil (tour mode) and disks is empty.
//
// Complexity: O(n log n + n²) (sort plus pairwise containment dedup).
func New(disks []geometry.Disk, path *Endpoints, eps float64) (*Instance, error) {
	if eps < 0 {
		return nil, ErrInvalidEps
	}
	for _, d := range disks {
		if d.Radius < 0 {
			return nil, ErrInvalidRadius
		}
	}
	if path == nil && len(disks) == 0 {
		return nil, ErrEmptyDisks
	}
	if eps == 0 {
		eps = DefaultEps
	}

	inst := &Instance{eps: eps}
	if path != nil {
		ep := *path
		inst.path = &ep
	}

	sorted := make([]geometry.Disk, len(disks))
	copy(sorted, disks)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Radius < sorted[j].Radius })

	for _, d := range sorted {
		inst.insertIfNotCovered(d)
	}

	return inst, nil
}

// insertIfNotCovered appends d unless d itself entirely contains an
// already-accepted disk. Accepted disks are scanned in acceptance order
// (increasing radius), so existing is always smaller-or-equal-radius; d
// containing existing means touching existing already satisfies d, so d
// is redundant and dropped.
//
// Complexity: O(k) where k is the current disk count.
func (inst *Instance) insertIfNotCovered(d geometry.Disk) bool {
	for _, existing := range inst.disks {
		if d.ContainsDisk(existing) {
			return false
		}
	}
	inst.disks = append(inst.disks, d)

	return true
}

// AddDisk adds a lazily-discovered disk to the instance. If d entirely
// contains an already-accepted disk, touching that smaller disk already
// satisfies d, so d is redundant and silently discarded without changing
// the revision counter. Otherwise d is appended and Revision is
// incremented, invalidating any node's cached feasibility confirmed at an
// earlier revision.
//
// Errors:
//   - ErrInvalidRadius if d.Radius < 0.
//
// Complexity: O(n).
func (inst *Instance) AddDisk(d geometry.Disk) (added bool, err error) {
	if d.Radius < 0 {
		return false, ErrInvalidRadius
	}
	if inst.insertIfNotCovered(d) {
		inst.revision++

		return true, nil
	}

	return false, nil
}

// Disks returns a defensive copy of the accepted disk set.
//
// Complexity: O(n).
func (inst *Instance) Disks() []geometry.Disk {
	out := make([]geometry.Disk, len(inst.disks))
	copy(out, inst.disks)

	return out
}

// Size returns the number of accepted disks.
func (inst *Instance) Size() int { return len(inst.disks) }

// At returns the disk at index i.
//
// Errors: ErrIndexOutOfRange.
func (inst *Instance) At(i int) (geometry.Disk, error) {
	if i < 0 || i >= len(inst.disks) {
		return geometry.Disk{}, ErrIndexOutOfRange
	}

	return inst.disks[i], nil
}

// IsPath reports whether the instance has fixed endpoints.
func (inst *Instance) IsPath() bool { return inst.path != nil }

// IsTour reports whether the instance is a closed-tour instance.
func (inst *Instance) IsTour() bool { return inst.path == nil }

// Start returns the fixed start point of a path instance.
//
// Errors: ErrNotPathInstance.
func (inst *Instance) Start() (geometry.Point, error) {
	if inst.path == nil {
		return geometry.Point{}, ErrNotPathInstance
	}

	return inst.path.Start, nil
}

// End returns the fixed end point of a path instance.
//
// Errors: ErrNotPathInstance.
func (inst *Instance) End() (geometry.Point, error) {
	if inst.path == nil {
		return geometry.Point{}, ErrNotPathInstance
	}

	return inst.path.End, nil
}

// Eps returns the ε-feasibility tolerance.
func (inst *Instance) Eps() float64 { return inst.eps }

// Revision returns the monotonically increasing revision counter.
func (inst *Instance) Revision() int { return inst.revision }
