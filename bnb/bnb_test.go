package bnb_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/cetsp/bnb"
	"github.com/katalvlaran/cetsp/geometry"
	"github.com/katalvlaran/cetsp/instance"
	"github.com/katalvlaran/cetsp/socp"
	"github.com/stretchr/testify/require"
)

func diskAt(x, y, r float64) geometry.Disk {
	return geometry.Disk{Center: geometry.Point{X: x, Y: y}, Radius: r}
}

func TestOptimizeSingleDiskTour(t *testing.T) {
	inst, err := instance.New([]geometry.Disk{diskAt(0, 0, 1)}, nil, 0)
	require.NoError(t, err)

	relax := socp.NewSolver(socp.Config{})
	driver := bnb.New(inst, relax, bnb.DefaultConfig())
	require.NoError(t, driver.Optimize(5*time.Second, 0.01, false))

	require.InDelta(t, 0, driver.UpperBound(), 1e-6)
}

func TestOptimizeTwoZeroRadiusDisks(t *testing.T) {
	inst, err := instance.New([]geometry.Disk{diskAt(0, 0, 0), diskAt(3, 0, 0)}, nil, 0)
	require.NoError(t, err)

	relax := socp.NewSolver(socp.Config{})
	driver := bnb.New(inst, relax, bnb.DefaultConfig())
	require.NoError(t, driver.Optimize(5*time.Second, 0.01, false))

	require.InDelta(t, 6.0, driver.UpperBound(), 1e-3)
}

func TestOptimizeSquareCorners(t *testing.T) {
	disks := []geometry.Disk{
		diskAt(0, 0, 0),
		diskAt(5, 0, 0),
		diskAt(5, 5, 0),
		diskAt(0, 5, 0),
	}
	inst, err := instance.New(disks, nil, 0)
	require.NoError(t, err)

	relax := socp.NewSolver(socp.Config{})
	driver := bnb.New(inst, relax, bnb.DefaultConfig())
	require.NoError(t, driver.Optimize(10*time.Second, 0.01, false))

	require.InDelta(t, 20.0, driver.UpperBound(), 0.5)
	stats := driver.Statistics()
	require.Greater(t, stats.NodesExplored, 0)
}

func TestOptimizeConvexHullRootRejectsPath(t *testing.T) {
	ep := instance.Endpoints{Start: geometry.Point{X: 0, Y: 0}, End: geometry.Point{X: 1, Y: 0}}
	inst, err := instance.New([]geometry.Disk{diskAt(0.5, 0, 1)}, &ep, 0)
	require.NoError(t, err)

	relax := socp.NewSolver(socp.Config{})
	cfg := bnb.DefaultConfig()
	cfg.RootStrategy = bnb.ConvexHull{}
	driver := bnb.New(inst, relax, cfg)

	err = driver.Optimize(time.Second, 0.01, false)
	require.Error(t, err)
	var be *bnb.Error
	require.ErrorAs(t, err, &be)
	require.Equal(t, bnb.KindConfiguration, be.Kind)
}

func TestSolutionPoolMonotone(t *testing.T) {
	pool := bnb.NewSolutionPool()
	long := geometry.NewTrajectory([]geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 0}})
	short := geometry.NewTrajectory([]geometry.Point{{X: 0, Y: 0}, {X: 1, Y: 0}})

	require.True(t, pool.Add(long))
	require.False(t, pool.Add(long))
	require.True(t, pool.Add(short))
	require.InDelta(t, 1.0, pool.UpperBound(), 1e-9)
}
