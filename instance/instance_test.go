package instance_test

import (
	"testing"

	"github.com/katalvlaran/cetsp/geometry"
	"github.com/katalvlaran/cetsp/instance"
	"github.com/stretchr/testify/require"
)

func disk(x, y, r float64) geometry.Disk {
	return geometry.Disk{Center: geometry.Point{X: x, Y: y}, Radius: r}
}

func TestNewTourRequiresDisks(t *testing.T) {
	_, err := instance.New(nil, nil, 0)
	require.ErrorIs(t, err, instance.ErrEmptyDisks)
}

func TestNewRejectsNegativeRadius(t *testing.T) {
	_, err := instance.New([]geometry.Disk{disk(0, 0, -1)}, nil, 0)
	require.ErrorIs(t, err, instance.ErrInvalidRadius)
}

func TestContainmentDedup(t *testing.T) {
	// The radius-5 disk entirely contains the radius-1 disk centered at
	// the same point, so touching the smaller disk already satisfies the
	// larger one; the radius-5 disk must be dropped.
	disks := []geometry.Disk{
		disk(0, 0, 5),
		disk(0, 0, 1),
		disk(10, 10, 1),
	}
	inst, err := instance.New(disks, nil, 0)
	require.NoError(t, err)
	require.Equal(t, 2, inst.Size())
}

func TestAllIdenticalDisksCollapse(t *testing.T) {
	disks := []geometry.Disk{disk(1, 1, 2), disk(1, 1, 2), disk(1, 1, 2)}
	inst, err := instance.New(disks, nil, 0)
	require.NoError(t, err)
	require.Equal(t, 1, inst.Size())
}

func TestAddDiskRevision(t *testing.T) {
	inst, err := instance.New([]geometry.Disk{disk(0, 0, 1)}, nil, 0)
	require.NoError(t, err)
	require.Equal(t, 0, inst.Revision())

	// A new disk that entirely contains the already-accepted one is
	// redundant (touching the smaller disk already satisfies it) and is
	// discarded without bumping the revision.
	added, err := inst.AddDisk(disk(0, 0, 5))
	require.NoError(t, err)
	require.False(t, added)
	require.Equal(t, 0, inst.Revision())

	added, err = inst.AddDisk(disk(10, 10, 1))
	require.NoError(t, err)
	require.True(t, added)
	require.Equal(t, 1, inst.Revision())
}

func TestPathInstance(t *testing.T) {
	ep := instance.Endpoints{Start: geometry.Point{X: 0, Y: 0}, End: geometry.Point{X: 1, Y: 1}}
	inst, err := instance.New(nil, &ep, 0)
	require.NoError(t, err)
	require.True(t, inst.IsPath())
	require.False(t, inst.IsTour())

	start, err := inst.Start()
	require.NoError(t, err)
	require.Equal(t, ep.Start, start)
}

func TestDefaultEps(t *testing.T) {
	inst, err := instance.New([]geometry.Disk{disk(0, 0, 1)}, nil, 0)
	require.NoError(t, err)
	require.Equal(t, instance.DefaultEps, inst.Eps())
}
