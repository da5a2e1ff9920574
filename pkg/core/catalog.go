/*
Copyright 2026 The fleetplan Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package core

import (
	"fmt"

	"github.com/fleetplan/fleet-provision-planner/pkg/config"
)

// Catalog is the validated, immutable problem statement: the host types
// available for provisioning and the tasks to place. Host types and tasks
// are addressed by dense 0-based ordinals in catalog order; names are kept
// for results and logging.
//
// A Catalog is read-only after construction and safe to share across
// search workers without locking.
type Catalog struct {
	hostTypes []config.HostTypeSpec
	tasks     []config.TaskSpec
	dims      int
}

// NewCatalogFromSpec validates the given data and freezes it into a
// Catalog. The input is deep-copied; later mutation of data does not
// affect the catalog. Returns an error wrapping config.ErrInvalidCatalog
// on malformed input.
func NewCatalogFromSpec(data *config.CatalogData) (*Catalog, error) {
	if data == nil {
		return nil, fmt.Errorf("%w: nil catalog data", config.ErrInvalidCatalog)
	}
	if err := data.Validate(); err != nil {
		return nil, err
	}

	c := &Catalog{
		hostTypes: make([]config.HostTypeSpec, len(data.HostTypes)),
		tasks:     make([]config.TaskSpec, len(data.Tasks)),
		dims:      data.Dimensions(),
	}
	for i, h := range data.HostTypes {
		h.Capacity = append([]int64(nil), h.Capacity...)
		c.hostTypes[i] = h
	}
	for i, t := range data.Tasks {
		t.Demand = append([]int64(nil), t.Demand...)
		c.tasks[i] = t
	}
	return c, nil
}

// NumHostTypes returns the number of host types in the catalog.
func (c *Catalog) NumHostTypes() int { return len(c.hostTypes) }

// NumTasks returns the number of tasks in the catalog.
func (c *Catalog) NumTasks() int { return len(c.tasks) }

// Dimensions returns the number of resource dimensions.
func (c *Catalog) Dimensions() int { return c.dims }

// Capacity returns the per-dimension capacity of host type h.
// Callers must not modify the returned slice.
func (c *Catalog) Capacity(h int) []int64 { return c.hostTypes[h].Capacity }

// Demand returns the per-dimension demand of task t.
// Callers must not modify the returned slice.
func (c *Catalog) Demand(t int) []int64 { return c.tasks[t].Demand }

// UnitCost returns the per-instance cost of host type h.
func (c *Catalog) UnitCost(h int) float64 { return c.hostTypes[h].UnitCost }

// HostTypeName returns the name of host type h.
func (c *Catalog) HostTypeName(h int) string { return c.hostTypes[h].Name }

// TaskName returns the name of task t.
func (c *Catalog) TaskName(t int) string { return c.tasks[t].Name }
