// Package config defines the declarative inputs to the planner.
//
// Two kinds of input are handled:
//
//   - CatalogData: the problem statement — host types with capacities and
//     unit costs, and tasks with resource demands. Validated eagerly on
//     load; a malformed catalog is an ErrInvalidCatalog, never a partial
//     answer later.
//   - PlannerSpec: runtime settings for the search (worker count, optional
//     time limit), with environment-variable overrides.
//
// Configuration sources, in priority order:
//
//  1. Values supplied programmatically by the caller
//  2. Environment variables (FLEETPLAN_* for planner settings)
//  3. Default values
//
// Example usage:
//
//	data, err := config.ParseCatalogData(raw)
//	if err != nil {
//	    return err
//	}
//
//	spec, err := config.NewPlannerSpecFromEnv()
//	if err != nil {
//	    return err
//	}
//
// Reading catalog bytes from files or flags is deliberately left to the
// embedding application; this package only parses and validates.
package config
