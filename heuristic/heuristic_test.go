package heuristic_test

import (
	"testing"

	"github.com/katalvlaran/cetsp/geometry"
	"github.com/katalvlaran/cetsp/heuristic"
	"github.com/katalvlaran/cetsp/instance"
	"github.com/katalvlaran/cetsp/socp"
	"github.com/stretchr/testify/require"
)

func squareDisks() []geometry.Disk {
	return []geometry.Disk{
		{Center: geometry.Point{X: 0, Y: 0}},
		{Center: geometry.Point{X: 10, Y: 10}},
		{Center: geometry.Point{X: 10, Y: 0}},
		{Center: geometry.Point{X: 0, Y: 10}},
	}
}

func TestNearestNeighborRejectsTooFew(t *testing.T) {
	_, err := heuristic.NearestNeighbor([]geometry.Disk{{}})
	require.ErrorIs(t, err, heuristic.ErrTooFewDisks)
}

func TestNearestNeighborVisitsEveryDiskOnce(t *testing.T) {
	disks := squareDisks()
	order, err := heuristic.NearestNeighbor(disks)
	require.NoError(t, err)
	require.Len(t, order, len(disks))

	seen := make(map[int]bool)
	for _, idx := range order {
		require.False(t, seen[idx])
		seen[idx] = true
	}
}

func TestTwoOptNeverWorsensTour(t *testing.T) {
	disks := squareDisks()
	// Deliberately bad order: 0, 2, 3, 1 (crosses the square diagonally twice).
	order := []int{0, 2, 3, 1}

	before := tourLength(disks, order, true)
	after := heuristic.TwoOpt(disks, append([]int(nil), order...), true)
	require.LessOrEqual(t, tourLength(disks, after, true), before+1e-9)
}

func tourLength(disks []geometry.Disk, order []int, isTour bool) float64 {
	total := 0.0
	for i := 0; i+1 < len(order); i++ {
		total += disks[order[i]].Center.Dist(disks[order[i+1]].Center)
	}
	if isTour && len(order) > 1 {
		total += disks[order[len(order)-1]].Center.Dist(disks[order[0]].Center)
	}

	return total
}

func TestSeedProducesFeasibleTrajectory(t *testing.T) {
	inst, err := instance.New(squareDisks(), nil, 0.01)
	require.NoError(t, err)

	relax := socp.NewSolver(socp.DefaultConfig())
	traj, err := heuristic.Seed(inst, relax)
	require.NoError(t, err)
	require.True(t, traj.CoversAll(inst.Disks(), 1e-6))
}

func TestSeedRejectsTooFewDisks(t *testing.T) {
	inst, err := instance.New(nil, &instance.Endpoints{
		Start: geometry.Point{X: 0, Y: 0},
		End:   geometry.Point{X: 1, Y: 1},
	}, 0.01)
	require.NoError(t, err)

	_, err = heuristic.Seed(inst, socp.NewSolver(socp.DefaultConfig()))
	require.ErrorIs(t, err, heuristic.ErrTooFewDisks)
}
