// Package core provides the domain model for the provisioning planner.
//
// The types here represent the entities and relationships of the
// provisioning problem:
//
//   - Catalog: validated, immutable host types and tasks
//   - Assignment: total task-to-host-type mapping with its inverse view
//   - Plan: required instance counts and total cost for an assignment
//
// These types form the foundation for the search algorithms in the solver
// package.
//
// The core package is designed to be:
//   - Immutable where possible (the catalog never changes after load)
//   - Consistent by construction (both assignment views share one owner)
//   - Independent of any I/O or transport concerns (pure domain logic)
package core
