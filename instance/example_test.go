package instance_test

import (
	"fmt"

	"github.com/katalvlaran/cetsp/geometry"
	"github.com/katalvlaran/cetsp/instance"
)

// ExampleNew builds a tour instance from three disks; the radius-5 disk
// entirely contains another one and gets dropped at construction.
func ExampleNew() {
	disks := []geometry.Disk{
		{Center: geometry.Point{X: 0, Y: 0}, Radius: 5},
		{Center: geometry.Point{X: 1, Y: 0}, Radius: 1}, // contained by the disk above
		{Center: geometry.Point{X: 20, Y: 0}, Radius: 1},
	}
	inst, err := instance.New(disks, nil, 0)
	if err != nil {
		fmt.Println(err)

		return
	}
	fmt.Println(inst.Size(), inst.IsTour())
	// Output: 2 true
}

// ExampleInstance_AddDisk shows a redundant lazy constraint — one that
// entirely contains an already-accepted disk — being discarded without
// bumping the revision counter.
func ExampleInstance_AddDisk() {
	disks := []geometry.Disk{{Center: geometry.Point{X: 0, Y: 0}, Radius: 5}}
	inst, _ := instance.New(disks, nil, 0)

	added, _ := inst.AddDisk(geometry.Disk{Center: geometry.Point{X: 0, Y: 0}, Radius: 10})
	fmt.Println(added, inst.Revision())

	added, _ = inst.AddDisk(geometry.Disk{Center: geometry.Point{X: 50, Y: 0}, Radius: 1})
	fmt.Println(added, inst.Revision())
	// Output:
	// false 0
	// true 1
}
