// Package solver implements the cost-minimizing provisioning search.
//
// Given a validated core.Catalog, the solver assigns every task to exactly
// one host type, derives how many instances of each type the assignment
// forces, and minimizes the summed provisioning cost.
//
// Key components:
//
//   - Fits: per-dimension feasibility predicate for one (task, host type)
//     pair
//   - RequiredInstances: homogeneous bin-packing lower bound per host type
//     (ceiling division per dimension, maximum across dimensions)
//   - PlanFor: plan and total cost for a complete assignment
//   - Optimizer: branch-and-bound search over the assignment space
//
// Search strategy:
//
// The assignment space has hostTypes^numTasks points. The optimizer walks
// it depth first in task order, skipping host types a task does not fit,
// and prunes any branch whose committed demand already forces at least the
// incumbent cost. First-level branches are distributed across workers that
// share a single incumbent cell, so better plans found by one worker
// tighten the pruning of all others.
//
// Example usage:
//
//	catalog, err := core.NewCatalogFromSpec(data)
//	if err != nil {
//	    return err
//	}
//
//	plan, err := solver.New(catalog).Solve(ctx)
//	if errors.Is(err, solver.ErrInfeasible) {
//	    // some task fits no host type
//	}
//
//	for h, n := range plan.Instances {
//	    log.Info("provision", "hostType", catalog.HostTypeName(h), "instances", n)
//	}
//
// The solver is designed to be:
//   - Exact: without a time limit the result is a certified optimum
//   - Deterministic: same catalog, same plan, at any worker count
//   - Observable: structured logging and Prometheus search statistics
package solver
