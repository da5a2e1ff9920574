package solver

import (
	"context"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fleetplan/fleet-provision-planner/pkg/config"
	"github.com/fleetplan/fleet-provision-planner/pkg/core"
)

// Escalating catalog: host type i has capacity (i, i) at cost 2i, task i
// demands (i, i), for i = 1..10. Task i therefore fits exactly the host
// types i..10.
func escalatingCatalogData(n int) *config.CatalogData {
	data := &config.CatalogData{}
	for i := 1; i <= n; i++ {
		data.HostTypes = append(data.HostTypes, config.HostTypeSpec{
			Name:     fmt.Sprintf("host-%d", i),
			Capacity: []int64{int64(i), int64(i)},
			UnitCost: float64(2 * i),
		})
		data.Tasks = append(data.Tasks, config.TaskSpec{
			Name:   fmt.Sprintf("task-%d", i),
			Demand: []int64{int64(i), int64(i)},
		})
	}
	return data
}

var _ = Describe("Provisioning an escalating fleet", func() {
	var (
		catalog *core.Catalog
		plan    *core.Plan
	)

	BeforeEach(func() {
		var err error
		catalog, err = core.NewCatalogFromSpec(escalatingCatalogData(10))
		Expect(err).NotTo(HaveOccurred())

		plan, err = New(catalog, WithWorkers(4)).Solve(context.Background())
		Expect(err).NotTo(HaveOccurred())
	})

	It("returns a certified optimum", func() {
		Expect(plan.Certified).To(BeTrue())

		wantCost, wantHosts, found := bruteForce(catalog)
		Expect(found).To(BeTrue())
		Expect(plan.TotalCost).To(Equal(wantCost))
		Expect(plan.Assignment.HostVector()).To(Equal(wantHosts))
	})

	It("places every task on a host type it fits", func() {
		Expect(plan.Assignment.Complete()).To(BeTrue())
		for t := 0; t < catalog.NumTasks(); t++ {
			h := plan.Assignment.HostOf(t)
			Expect(Fits(catalog, t, h)).To(BeTrue(),
				"task %s on host type %s", catalog.TaskName(t), catalog.HostTypeName(h))
			// task i fits only host types i..n
			Expect(h).To(BeNumerically(">=", t))
		}
	})

	It("keeps both assignment views consistent", func() {
		for t := 0; t < catalog.NumTasks(); t++ {
			h := plan.Assignment.HostOf(t)
			Expect(plan.Assignment.TasksOn(h)).To(ContainElement(t))
		}
		for h := 0; h < catalog.NumHostTypes(); h++ {
			for _, t := range plan.Assignment.TasksOn(h) {
				Expect(plan.Assignment.HostOf(t)).To(Equal(h))
			}
		}
	})

	It("derives instance counts from the assignment", func() {
		var total float64
		for h := 0; h < catalog.NumHostTypes(); h++ {
			n, err := RequiredInstances(catalog, h, demandTotals(catalog, plan.Assignment.TasksOn(h)))
			Expect(err).NotTo(HaveOccurred())
			Expect(plan.Instances[h]).To(Equal(n))
			total += float64(n) * catalog.UnitCost(h)
		}
		Expect(plan.TotalCost).To(Equal(total))
	})
})

var _ = Describe("Solving repeatedly", func() {
	It("yields the identical plan on every run", func() {
		catalog, err := core.NewCatalogFromSpec(escalatingCatalogData(8))
		Expect(err).NotTo(HaveOccurred())

		first, err := New(catalog, WithWorkers(1)).Solve(context.Background())
		Expect(err).NotTo(HaveOccurred())

		for _, workers := range []int{1, 2, 6} {
			plan, err := New(catalog, WithWorkers(workers)).Solve(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(plan.TotalCost).To(Equal(first.TotalCost))
			Expect(plan.Assignment.HostVector()).To(Equal(first.Assignment.HostVector()))
			Expect(plan.Instances).To(Equal(first.Instances))
		}
	})
})
