package solver

import (
	"fmt"

	"github.com/fleetplan/fleet-provision-planner/pkg/core"
)

// PlanFor derives the provisioning plan for a complete assignment: the
// required instance count per host type and the total cost. The result is
// a pure function of the assignment; ErrUnsatisfiable propagates when some
// host type cannot hold its tasks at any instance count.
//
// The returned plan is not marked certified; only the optimizer certifies
// optimality.
func PlanFor(c *core.Catalog, a *core.Assignment) (*core.Plan, error) {
	if a.NumTasks() != c.NumTasks() || a.NumHostTypes() != c.NumHostTypes() {
		return nil, fmt.Errorf("assignment shape %dx%d does not match catalog %dx%d",
			a.NumTasks(), a.NumHostTypes(), c.NumTasks(), c.NumHostTypes())
	}
	if !a.Complete() {
		return nil, fmt.Errorf("assignment is not complete")
	}

	plan := &core.Plan{
		Assignment: a,
		Instances:  make([]int, c.NumHostTypes()),
	}
	for h := 0; h < c.NumHostTypes(); h++ {
		n, err := RequiredInstances(c, h, demandTotals(c, a.TasksOn(h)))
		if err != nil {
			return nil, err
		}
		plan.Instances[h] = n
		plan.TotalCost += float64(n) * c.UnitCost(h)
	}
	return plan, nil
}
