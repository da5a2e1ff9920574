package solver

import (
	"errors"
	"fmt"

	"github.com/fleetplan/fleet-provision-planner/pkg/core"
)

// ErrUnsatisfiable reports that a host type cannot hold its assigned tasks
// no matter how many instances are provisioned: some capacity dimension is
// zero while the aggregate demand there is positive.
var ErrUnsatisfiable = errors.New("unsatisfiable host type")

// RequiredInstances computes the minimum number of instances of host type
// h needed to cover the given per-dimension demand totals. Each dimension
// contributes ceil(total/capacity) instances (zero when the total is
// zero); the result is the maximum across dimensions, i.e. the count
// forced by the bottleneck dimension.
//
// This is the homogeneous bin-packing lower bound: each host type is
// packed independently, and a single dominating dimension makes the bound
// exact.
func RequiredInstances(c *core.Catalog, h int, totals []int64) (int, error) {
	capacity := c.Capacity(h)
	instances := 0
	for d, total := range totals {
		if total == 0 {
			continue
		}
		if capacity[d] == 0 {
			return 0, fmt.Errorf("%w: host type %q has zero capacity in dimension %d with demand %d",
				ErrUnsatisfiable, c.HostTypeName(h), d, total)
		}
		n := int((total + capacity[d] - 1) / capacity[d])
		if n > instances {
			instances = n
		}
	}
	return instances, nil
}

// demandTotals sums the per-dimension demand of the given tasks.
func demandTotals(c *core.Catalog, tasks []int) []int64 {
	totals := make([]int64, c.Dimensions())
	for _, t := range tasks {
		for d, v := range c.Demand(t) {
			totals[d] += v
		}
	}
	return totals
}
