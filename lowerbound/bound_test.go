package lowerbound_test

import (
	"testing"

	"github.com/katalvlaran/cetsp/geometry"
	"github.com/katalvlaran/cetsp/lowerbound"
	"github.com/stretchr/testify/require"
)

func TestComputeRejectsEmptyMissing(t *testing.T) {
	traj := geometry.NewTrajectory([]geometry.Point{{X: 0, Y: 0}, {X: 1, Y: 0}})
	_, err := lowerbound.Bound{}.Compute(traj, nil)
	require.ErrorIs(t, err, lowerbound.ErrNoMissingDisks)
}

func TestComputeRejectsDegenerateTrajectory(t *testing.T) {
	traj := geometry.NewTrajectory([]geometry.Point{{X: 0, Y: 0}})
	missing := []geometry.Disk{{Center: geometry.Point{X: 1, Y: 1}, Radius: 0.1}}
	_, err := lowerbound.Bound{}.Compute(traj, missing)
	require.ErrorIs(t, err, lowerbound.ErrDegenerateTrajectory)
}

func TestComputeSingleDiskSingleEdge(t *testing.T) {
	// Out-and-back tour along the single segment (0,0)-(10,0) (two edges);
	// a disk sitting well off it at (5,5) with radius 1 forces a strictly
	// positive detour.
	traj := geometry.NewTrajectory([]geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 0}})
	missing := []geometry.Disk{{Center: geometry.Point{X: 5, Y: 5}, Radius: 1}}

	inc, err := lowerbound.Bound{}.Compute(traj, missing)
	require.NoError(t, err)
	require.Greater(t, inc, 0.0)
}

func TestComputeMonotoneInMissingCount(t *testing.T) {
	traj := geometry.NewTrajectory([]geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 0}})
	one := []geometry.Disk{{Center: geometry.Point{X: 5, Y: 5}, Radius: 1}}
	two := []geometry.Disk{
		{Center: geometry.Point{X: 5, Y: 5}, Radius: 1},
		{Center: geometry.Point{X: 5, Y: -5}, Radius: 1},
	}

	incOne, err := lowerbound.Bound{}.Compute(traj, one)
	require.NoError(t, err)
	incTwo, err := lowerbound.Bound{}.Compute(traj, two)
	require.NoError(t, err)

	require.GreaterOrEqual(t, incTwo, incOne)
}
