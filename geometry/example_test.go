package geometry_test

import (
	"fmt"

	"github.com/katalvlaran/cetsp/geometry"
)

// ExampleConvexHull computes the hull of a 10×10 square's corners, listed
// in input order (0,0), (10,0), (10,10), (0,10) — already counter-clockwise,
// so the hull visits them in the same order.
func ExampleConvexHull() {
	pts := []geometry.Point{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 10, Y: 10},
		{X: 0, Y: 10},
	}
	fmt.Println(geometry.ConvexHull(pts))
	// Output: [0 1 2 3]
}

// ExampleTrajectory_Length builds a closed square tour and reports its
// perimeter.
func ExampleTrajectory_Length() {
	traj := geometry.NewTrajectory([]geometry.Point{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 10, Y: 10},
		{X: 0, Y: 10},
		{X: 0, Y: 0},
	})
	fmt.Println(traj.Length())
	// Output: 40
}
