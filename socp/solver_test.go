package socp_test

import (
	"testing"

	"github.com/katalvlaran/cetsp/geometry"
	"github.com/katalvlaran/cetsp/socp"
	"github.com/stretchr/testify/require"
)

func diskAt(x, y, r float64) geometry.Disk {
	return geometry.Disk{Center: geometry.Point{X: x, Y: y}, Radius: r}
}

func TestSolveSingleDiskTour(t *testing.T) {
	s := socp.NewSolver(socp.Config{})
	res, err := s.Solve([]geometry.Disk{diskAt(0, 0, 1)}, nil)
	require.NoError(t, err)
	require.Len(t, res.Spanning, 1)
	require.InDelta(t, 0, res.Trajectory.Length(), 1e-6)
}

func TestSolveTwoZeroRadiusDisksTour(t *testing.T) {
	s := socp.NewSolver(socp.Config{})
	res, err := s.Solve([]geometry.Disk{diskAt(0, 0, 0), diskAt(3, 0, 0)}, nil)
	require.NoError(t, err)
	require.InDelta(t, 6.0, res.Trajectory.Length(), 1e-6)
	require.True(t, res.Spanning[0])
	require.True(t, res.Spanning[1])
}

func TestSolveDegeneratePathNoDisks(t *testing.T) {
	s := socp.NewSolver(socp.Config{})
	start := geometry.Point{X: 1, Y: 1}
	res, err := s.Solve(nil, &socp.Endpoints{Start: start, End: start})
	require.NoError(t, err)
	require.InDelta(t, 0, res.Trajectory.Length(), 1e-9)
	require.Empty(t, res.Spanning)
}

func TestSolvePathThreeCollinearDisks(t *testing.T) {
	s := socp.NewSolver(socp.Config{})
	path := &socp.Endpoints{Start: geometry.Point{X: 0, Y: 0}, End: geometry.Point{X: 10, Y: 0}}
	disks := []geometry.Disk{diskAt(3, 0, 1), diskAt(5, 0, 1), diskAt(7, 0, 1)}
	res, err := s.Solve(disks, path)
	require.NoError(t, err)
	require.InDelta(t, 10.0, res.Trajectory.Length(), 1e-3)
	for i, spanning := range res.Spanning {
		require.False(t, spanning, "disk %d should be a pass-through, not a turn", i)
	}
}

func TestSolveEmptyTourSequenceErrors(t *testing.T) {
	s := socp.NewSolver(socp.Config{})
	_, err := s.Solve(nil, nil)
	require.ErrorIs(t, err, socp.ErrEmptySequence)
}

func TestSolveFeasibilityAlwaysHolds(t *testing.T) {
	s := socp.NewSolver(socp.Config{})
	disks := []geometry.Disk{diskAt(0, 0, 0.5), diskAt(4, 3, 0.5), diskAt(8, 0, 0.5), diskAt(4, -3, 0.5)}
	res, err := s.Solve(disks, nil)
	require.NoError(t, err)
	require.True(t, res.Trajectory.CoversAll(disks, 1e-6))
}
