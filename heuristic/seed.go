package heuristic

import (
	"github.com/katalvlaran/cetsp/geometry"
	"github.com/katalvlaran/cetsp/instance"
	"github.com/katalvlaran/cetsp/socp"
)

// Seed builds a fast feasible trajectory for inst via nearest-neighbor
// construction plus 2-opt polish on disk centers, then materializes it
// through relax (the same relaxation collaborator the B&B driver uses),
// so the returned trajectory is a real upper bound the driver can prune
// against from its very first node, not just a proxy-distance estimate.
//
// Errors: ErrTooFewDisks if inst has fewer than 2 disks; otherwise any
// error relax.Solve returns for the constructed sequence.
func Seed(inst *instance.Instance, relax socp.Relaxation) (geometry.Trajectory, error) {
	disks := inst.Disks()
	if len(disks) < 2 {
		return geometry.Trajectory{}, ErrTooFewDisks
	}

	order, err := NearestNeighbor(disks)
	if err != nil {
		return geometry.Trajectory{}, err
	}
	order = TwoOpt(disks, order, inst.IsTour())

	ordered := make([]geometry.Disk, len(order))
	for i, idx := range order {
		ordered[i] = disks[idx]
	}

	var path *socp.Endpoints
	if inst.IsPath() {
		start, _ := inst.Start()
		end, _ := inst.End()
		path = &socp.Endpoints{Start: start, End: end}
	}

	res, err := relax.Solve(ordered, path)
	if err != nil {
		return geometry.Trajectory{}, err
	}

	return res.Trajectory, nil
}
