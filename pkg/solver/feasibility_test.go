package solver

import (
	"testing"

	"github.com/fleetplan/fleet-provision-planner/pkg/config"
	"github.com/fleetplan/fleet-provision-planner/pkg/core"
)

func mustCatalog(t testing.TB, data *config.CatalogData) *core.Catalog {
	t.Helper()
	c, err := core.NewCatalogFromSpec(data)
	if err != nil {
		t.Fatalf("NewCatalogFromSpec() error = %v", err)
	}
	return c
}

func TestFits(t *testing.T) {
	c := mustCatalog(t, &config.CatalogData{
		HostTypes: []config.HostTypeSpec{
			{Name: "tiny", Capacity: []int64{1, 1}, UnitCost: 1},
			{Name: "big", Capacity: []int64{8, 8}, UnitCost: 4},
			{Name: "no-cpu", Capacity: []int64{0, 8}, UnitCost: 1},
		},
		Tasks: []config.TaskSpec{
			{Name: "light", Demand: []int64{1, 1}},
			{Name: "heavy", Demand: []int64{4, 2}},
			{Name: "mem-only", Demand: []int64{0, 3}},
		},
	})

	tests := []struct {
		name string
		task int
		host int
		want bool
	}{
		{name: "light fits tiny", task: 0, host: 0, want: true},
		{name: "heavy exceeds tiny", task: 1, host: 0, want: false},
		{name: "heavy fits big", task: 1, host: 1, want: true},
		{name: "cpu demand on zero-cpu host", task: 0, host: 2, want: false},
		{name: "zero cpu demand on zero-cpu host", task: 2, host: 2, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fits(c, tt.task, tt.host); got != tt.want {
				t.Errorf("Fits(%d, %d) = %v, want %v", tt.task, tt.host, got, tt.want)
			}
		})
	}
}

func TestFeasible(t *testing.T) {
	c := mustCatalog(t, &config.CatalogData{
		HostTypes: []config.HostTypeSpec{
			{Name: "small", Capacity: []int64{2, 2}, UnitCost: 1},
			{Name: "large", Capacity: []int64{8, 8}, UnitCost: 4},
		},
		Tasks: []config.TaskSpec{
			{Name: "a", Demand: []int64{1, 1}},
			{Name: "b", Demand: []int64{4, 4}},
		},
	})

	a := core.NewAssignment(2, 2)
	a.Assign(0, 0)
	if Feasible(c, a) {
		t.Error("incomplete assignment reported feasible")
	}

	a.Assign(1, 1)
	if !Feasible(c, a) {
		t.Error("feasible assignment reported infeasible")
	}

	a.Assign(1, 0) // b does not fit small
	if Feasible(c, a) {
		t.Error("oversubscribed pair reported feasible")
	}
}

func TestFeasibleHosts(t *testing.T) {
	c := mustCatalog(t, &config.CatalogData{
		HostTypes: []config.HostTypeSpec{
			{Name: "s", Capacity: []int64{1, 1}, UnitCost: 1},
			{Name: "m", Capacity: []int64{2, 2}, UnitCost: 2},
			{Name: "l", Capacity: []int64{4, 4}, UnitCost: 3},
		},
		Tasks: []config.TaskSpec{
			{Name: "a", Demand: []int64{2, 1}},
			{Name: "b", Demand: []int64{5, 5}},
		},
	})

	hosts := feasibleHosts(c)
	if len(hosts[0]) != 2 || hosts[0][0] != 1 || hosts[0][1] != 2 {
		t.Errorf("feasibleHosts()[0] = %v, want [1 2]", hosts[0])
	}
	if len(hosts[1]) != 0 {
		t.Errorf("feasibleHosts()[1] = %v, want empty", hosts[1])
	}
}
