package geometry_test

import (
	"testing"

	"github.com/katalvlaran/cetsp/geometry"
	"github.com/stretchr/testify/require"
)

func TestPointDist(t *testing.T) {
	p1 := geometry.Point{X: 0, Y: 0}
	p2 := geometry.Point{X: 2, Y: 0}
	require.Equal(t, 2.0, p1.Dist(p2))
	require.Equal(t, 4.0, p1.SquaredDist(p2))
	require.True(t, p1.Equal(p1))
	require.False(t, p1.Equal(p2))
}

func TestDiskContains(t *testing.T) {
	c1 := geometry.Disk{Center: geometry.Point{X: 0, Y: 0}, Radius: 1}
	c2 := geometry.Disk{Center: geometry.Point{X: 0, Y: 0}, Radius: 0.5}
	p := geometry.Point{X: 1, Y: 0}
	require.True(t, c1.Contains(p))
	require.False(t, c2.Contains(p))
}

func TestDiskContainsDisk(t *testing.T) {
	big := geometry.Disk{Center: geometry.Point{X: 0, Y: 0}, Radius: 5}
	small := geometry.Disk{Center: geometry.Point{X: 1, Y: 0}, Radius: 1}
	require.True(t, big.ContainsDisk(small))
	require.False(t, small.ContainsDisk(big))
}

func TestDistanceToSegment(t *testing.T) {
	s0 := geometry.Point{X: 0, Y: 0}
	s1 := geometry.Point{X: 10, Y: 0}
	require.InDelta(t, 0.0, geometry.DistanceToSegment(s0, s1, geometry.Point{X: 0, Y: 0}), 1e-9)
	require.InDelta(t, 1.0, geometry.DistanceToSegment(s0, s1, geometry.Point{X: 0, Y: 1}), 1e-9)
	require.InDelta(t, 1.0, geometry.DistanceToSegment(s0, s1, geometry.Point{X: 0, Y: -1}), 1e-9)
	require.InDelta(t, 1.0, geometry.DistanceToSegment(s0, s1, geometry.Point{X: -1, Y: 0}), 1e-9)
	require.InDelta(t, 1.0, geometry.DistanceToSegment(s0, s1, geometry.Point{X: 11, Y: 0}), 1e-9)
}

func TestTrajectoryBasics(t *testing.T) {
	traj := geometry.NewTrajectory([]geometry.Point{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 5, Y: 5}})
	require.False(t, traj.IsTour())
	require.Equal(t, 10.0, traj.Length())

	c1 := geometry.Disk{Center: geometry.Point{X: 0, Y: 0}, Radius: 1}
	require.Equal(t, -1.0, traj.Distance(c1))
	require.True(t, traj.Covers(c1, 0.01))
}

func TestTrajectorySinglePoint(t *testing.T) {
	traj := geometry.NewTrajectory([]geometry.Point{{X: 0, Y: 0}})
	require.True(t, traj.IsTour())
	require.Equal(t, 0.0, traj.Length())
	d := geometry.Disk{Center: geometry.Point{X: 3, Y: 4}, Radius: 1}
	require.InDelta(t, 4.0, traj.Distance(d), 1e-9)
}

func TestTrajectoryIsSimple(t *testing.T) {
	simple := geometry.NewTrajectory([]geometry.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}})
	require.True(t, simple.IsSimple())

	crossed := geometry.NewTrajectory([]geometry.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 0}})
	require.False(t, crossed.IsSimple())
}

func TestConvexHullSquare(t *testing.T) {
	pts := []geometry.Point{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 5, Y: 5}, {X: 0, Y: 5}, {X: 2, Y: 2}}
	hull := geometry.ConvexHull(pts)
	require.Len(t, hull, 4)
	for _, idx := range hull {
		require.NotEqual(t, 4, idx) // interior point excluded
	}
}

func TestOnionLayers(t *testing.T) {
	pts := []geometry.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, // outer square
		{X: 4, Y: 4}, {X: 6, Y: 4}, {X: 6, Y: 6}, {X: 4, Y: 6}, // inner square
		{X: 5, Y: 5}, // center
	}
	layers := geometry.OnionLayers(pts)
	require.Len(t, layers, 3)
	require.Len(t, layers[0], 4)
	require.Len(t, layers[1], 4)
	require.Len(t, layers[2], 1)
}
