package solver

import "github.com/fleetplan/fleet-provision-planner/pkg/core"

// Fits reports whether task t can run on a single instance of host type h:
// every demand dimension must be covered by the corresponding capacity.
// Co-location of multiple tasks is not considered here; that is the
// aggregation step's job.
func Fits(c *core.Catalog, t, h int) bool {
	demand := c.Demand(t)
	capacity := c.Capacity(h)
	for d, v := range demand {
		if v > capacity[d] {
			return false
		}
	}
	return true
}

// Feasible reports whether every assigned task in a fits the host type it
// is placed on. Unassigned tasks make the assignment not feasible.
func Feasible(c *core.Catalog, a *core.Assignment) bool {
	for t := 0; t < a.NumTasks(); t++ {
		h := a.HostOf(t)
		if h == core.Unassigned || !Fits(c, t, h) {
			return false
		}
	}
	return true
}

// feasibleHosts returns, per task, the host type ordinals the task fits,
// in ascending order. An empty inner slice means the task fits nowhere.
func feasibleHosts(c *core.Catalog) [][]int {
	hosts := make([][]int, c.NumTasks())
	for t := range hosts {
		for h := 0; h < c.NumHostTypes(); h++ {
			if Fits(c, t, h) {
				hosts[t] = append(hosts[t], h)
			}
		}
	}
	return hosts
}
