package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrInvalidCatalog reports malformed catalog input: negative values,
// duplicate names, inconsistent resource dimensionality, or empty lists.
// Detected eagerly at load; callers match it with errors.Is.
var ErrInvalidCatalog = errors.New("invalid catalog")

// HostTypeSpec describes one provisionable machine class.
type HostTypeSpec struct {
	// Name is the unique host type identifier.
	Name string `yaml:"name" json:"name"`

	// Capacity is the per-unit resource capacity, one entry per resource
	// dimension (e.g. CPU, memory). All entries must be non-negative.
	Capacity []int64 `yaml:"capacity" json:"capacity"`

	// UnitCost is the provisioning cost of one instance of this type.
	UnitCost float64 `yaml:"unitCost" json:"unitCost"`
}

// TaskSpec describes one workload unit to be placed.
type TaskSpec struct {
	// Name is the unique task identifier.
	Name string `yaml:"name" json:"name"`

	// Demand is the per-dimension resource demand, with the same
	// dimensionality as the host type capacities.
	Demand []int64 `yaml:"demand" json:"demand"`
}

// CatalogData is the declarative input to the planner: the host type
// catalog and the task set.
type CatalogData struct {
	HostTypes []HostTypeSpec `yaml:"hostTypes" json:"hostTypes"`
	Tasks     []TaskSpec     `yaml:"tasks" json:"tasks"`
}

// Validate checks a single host type entry against the expected
// dimensionality. A zero capacity in some dimension is allowed; such a
// type simply cannot host tasks with positive demand there.
func (h *HostTypeSpec) Validate(dims int) error {
	if h.Name == "" {
		return fmt.Errorf("host type name must not be empty")
	}
	if len(h.Capacity) != dims {
		return fmt.Errorf("host type %q has %d capacity dimensions, want %d", h.Name, len(h.Capacity), dims)
	}
	for d, c := range h.Capacity {
		if c < 0 {
			return fmt.Errorf("host type %q capacity[%d] must be >= 0, got %d", h.Name, d, c)
		}
	}
	if h.UnitCost < 0 {
		return fmt.Errorf("host type %q unitCost must be >= 0, got %g", h.Name, h.UnitCost)
	}
	return nil
}

// Validate checks a single task entry against the expected dimensionality.
func (t *TaskSpec) Validate(dims int) error {
	if t.Name == "" {
		return fmt.Errorf("task name must not be empty")
	}
	if len(t.Demand) != dims {
		return fmt.Errorf("task %q has %d demand dimensions, want %d", t.Name, len(t.Demand), dims)
	}
	for d, v := range t.Demand {
		if v < 0 {
			return fmt.Errorf("task %q demand[%d] must be >= 0, got %d", t.Name, d, v)
		}
	}
	return nil
}

// Validate checks the whole catalog. The first host type entry fixes the
// resource dimensionality for every other entry.
func (c *CatalogData) Validate() error {
	if len(c.HostTypes) == 0 {
		return fmt.Errorf("%w: no host types", ErrInvalidCatalog)
	}
	if len(c.Tasks) == 0 {
		return fmt.Errorf("%w: no tasks", ErrInvalidCatalog)
	}

	dims := len(c.HostTypes[0].Capacity)
	if dims == 0 {
		return fmt.Errorf("%w: host type %q has no capacity dimensions", ErrInvalidCatalog, c.HostTypes[0].Name)
	}

	hostNames := make(map[string]struct{}, len(c.HostTypes))
	for i := range c.HostTypes {
		h := &c.HostTypes[i]
		if err := h.Validate(dims); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
		}
		if _, dup := hostNames[h.Name]; dup {
			return fmt.Errorf("%w: duplicate host type %q", ErrInvalidCatalog, h.Name)
		}
		hostNames[h.Name] = struct{}{}
	}

	taskNames := make(map[string]struct{}, len(c.Tasks))
	for i := range c.Tasks {
		t := &c.Tasks[i]
		if err := t.Validate(dims); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
		}
		if _, dup := taskNames[t.Name]; dup {
			return fmt.Errorf("%w: duplicate task %q", ErrInvalidCatalog, t.Name)
		}
		taskNames[t.Name] = struct{}{}
	}
	return nil
}

// Dimensions returns the resource dimensionality of the catalog.
// Only meaningful after Validate has succeeded.
func (c *CatalogData) Dimensions() int {
	if len(c.HostTypes) == 0 {
		return 0
	}
	return len(c.HostTypes[0].Capacity)
}

// ParseCatalogData unmarshals a yaml document into CatalogData and
// validates it. Where the bytes come from is the caller's concern.
func ParseCatalogData(raw []byte) (*CatalogData, error) {
	var data CatalogData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if err := data.Validate(); err != nil {
		return nil, err
	}
	return &data, nil
}
