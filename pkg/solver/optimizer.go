package solver

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fleetplan/fleet-provision-planner/internal/logging"
	"github.com/fleetplan/fleet-provision-planner/internal/metrics"
	"github.com/fleetplan/fleet-provision-planner/pkg/config"
	"github.com/fleetplan/fleet-provision-planner/pkg/core"
)

// ErrInfeasible reports that no locally feasible complete assignment
// exists: some task fits no host type in any dimension.
var ErrInfeasible = errors.New("no feasible assignment")

// Option configures an Optimizer.
type Option func(*Optimizer)

// WithWorkers sets the number of parallel search workers.
func WithWorkers(n int) Option {
	return func(o *Optimizer) { o.workers = n }
}

// WithTimeLimit bounds the wall-clock time of Solve. Zero means no limit.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Optimizer) { o.timeLimit = d }
}

// WithPlannerSpec applies a full planner settings spec.
func WithPlannerSpec(spec *config.PlannerSpec) Option {
	return func(o *Optimizer) {
		o.workers = spec.Workers
		o.timeLimit = spec.TimeLimit
	}
}

// Optimizer finds the cost-minimal provisioning plan for a catalog by
// branch-and-bound search over task-to-host-type assignments.
type Optimizer struct {
	catalog   *core.Catalog
	workers   int
	timeLimit time.Duration
}

// New creates an Optimizer for the given catalog with default planner
// settings, overridden by opts.
func New(c *core.Catalog, opts ...Option) *Optimizer {
	defaults := config.DefaultPlannerSpec()
	o := &Optimizer{
		catalog:   c,
		workers:   defaults.Workers,
		timeLimit: defaults.TimeLimit,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Solve searches for the provisioning plan of minimum total cost.
//
// The search branches over tasks in catalog order, trying host types in
// ascending order and skipping pairs the task does not fit. A branch is
// pruned when the cost already forced by its committed demand cannot beat
// the best complete plan found so far. First-level branches are split
// across workers; all workers share one incumbent.
//
// Among equal-cost optima the lexicographically smallest host vector wins,
// which is the assignment the sequential ascending enumeration would find
// first. The result is therefore deterministic regardless of worker count
// and scheduling.
//
// Returns ErrInfeasible when some task fits no host type. If a time limit
// cuts the search short with an incumbent in hand, that plan is returned
// with Certified=false; with no incumbent the context error is surfaced.
func (o *Optimizer) Solve(ctx context.Context) (*core.Plan, error) {
	logger := logging.FromContext(ctx).WithName("solver")
	start := time.Now()
	defer func() { metrics.SolveDuration.Observe(time.Since(start).Seconds()) }()

	feasible := feasibleHosts(o.catalog)
	for t, hosts := range feasible {
		if len(hosts) == 0 {
			return nil, fmt.Errorf("%w: task %q fits no host type", ErrInfeasible, o.catalog.TaskName(t))
		}
	}

	if o.timeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeLimit)
		defer cancel()
	}

	inc := &incumbent{}
	roots := feasible[0]
	workers := o.workers
	if workers > len(roots) {
		workers = len(roots)
	}
	if workers < 1 {
		workers = 1
	}

	rootCh := make(chan int, len(roots))
	for _, h := range roots {
		rootCh <- h
	}
	close(rootCh)

	var nodesTotal, prunedTotal atomic.Uint64
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			s := newSearcher(o.catalog, feasible, inc)
			defer func() {
				nodesTotal.Add(s.nodes)
				prunedTotal.Add(s.pruned)
			}()
			for h := range rootCh {
				s.place(0, h)
				s.nodes++
				var err error
				if s.inc.shouldPrune(s.bound(), s.hosts[:1]) {
					s.pruned++
				} else {
					err = s.dfs(gctx, 1)
				}
				s.remove(0, h)
				if err != nil {
					return err
				}
			}
			return nil
		})
	}
	searchErr := g.Wait()
	metrics.NodesExpanded.Add(float64(nodesTotal.Load()))
	metrics.BranchesPruned.Add(float64(prunedTotal.Load()))

	if !inc.found {
		if searchErr != nil {
			return nil, fmt.Errorf("search aborted before any complete plan: %w", searchErr)
		}
		// Unreachable when every task fits some host type, since host
		// types never run out of instances. Kept as a guard.
		return nil, ErrInfeasible
	}

	best := core.NewAssignment(o.catalog.NumTasks(), o.catalog.NumHostTypes())
	for t, h := range inc.hosts {
		best.Assign(t, h)
	}
	plan, err := PlanFor(o.catalog, best)
	if err != nil {
		return nil, err
	}
	plan.Certified = searchErr == nil

	logger.V(logging.DEBUG).Info("search finished",
		"totalCost", plan.TotalCost,
		"certified", plan.Certified,
		"nodesExpanded", nodesTotal.Load(),
		"branchesPruned", prunedTotal.Load(),
		"duration", time.Since(start))
	return plan, nil
}

// searcher is the per-worker depth-first search state: the assignment
// prefix and the committed per-host demand totals it implies.
type searcher struct {
	cat      *core.Catalog
	feasible [][]int
	inc      *incumbent

	hosts  []int     // task-indexed host ordinals, Unassigned past the prefix
	totals [][]int64 // per host type, per dimension committed demand
	nodes  uint64
	pruned uint64
}

func newSearcher(cat *core.Catalog, feasible [][]int, inc *incumbent) *searcher {
	s := &searcher{
		cat:      cat,
		feasible: feasible,
		inc:      inc,
		hosts:    make([]int, cat.NumTasks()),
		totals:   make([][]int64, cat.NumHostTypes()),
	}
	for t := range s.hosts {
		s.hosts[t] = core.Unassigned
	}
	for h := range s.totals {
		s.totals[h] = make([]int64, cat.Dimensions())
	}
	return s
}

func (s *searcher) place(task, h int) {
	s.hosts[task] = h
	for d, v := range s.cat.Demand(task) {
		s.totals[h][d] += v
	}
}

func (s *searcher) remove(task, h int) {
	s.hosts[task] = core.Unassigned
	for d, v := range s.cat.Demand(task) {
		s.totals[h][d] -= v
	}
}

// bound returns the total cost of the instances already forced by the
// committed demand. Further assignments only add demand, so this is a
// valid lower bound on every completion of the prefix; at a leaf it is the
// exact plan cost. Zero capacity with positive demand cannot occur here
// because branching only places tasks on host types they fit.
func (s *searcher) bound() float64 {
	var total float64
	for h := range s.totals {
		capacity := s.cat.Capacity(h)
		forced := 0
		for d, td := range s.totals[h] {
			if td == 0 {
				continue
			}
			n := int((td + capacity[d] - 1) / capacity[d])
			if n > forced {
				forced = n
			}
		}
		total += float64(forced) * s.cat.UnitCost(h)
	}
	return total
}

func (s *searcher) dfs(ctx context.Context, task int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.nodes++
	if task == s.cat.NumTasks() {
		if s.inc.offer(s.bound(), s.hosts) {
			metrics.IncumbentUpdates.Inc()
		}
		return nil
	}
	for _, h := range s.feasible[task] {
		s.place(task, h)
		var err error
		if s.inc.shouldPrune(s.bound(), s.hosts[:task+1]) {
			s.pruned++
		} else {
			err = s.dfs(ctx, task+1)
		}
		s.remove(task, h)
		if err != nil {
			return err
		}
	}
	return nil
}

// incumbent is the best complete plan found so far, shared by all workers.
// Candidates are ordered by cost, then by lexicographic host vector, so
// the winner is independent of which worker finds what first.
type incumbent struct {
	mu    sync.Mutex
	found bool
	cost  float64
	hosts []int
}

// offer proposes a complete assignment with the given cost. Returns true
// if it replaced the incumbent.
func (in *incumbent) offer(cost float64, hosts []int) bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.found {
		if cost > in.cost {
			return false
		}
		if cost == in.cost && !lexLess(hosts, in.hosts) {
			return false
		}
	}
	in.found = true
	in.cost = cost
	in.hosts = append(in.hosts[:0], hosts...)
	return true
}

// shouldPrune reports whether a branch with the given cost lower bound and
// assignment prefix cannot end up as the result. A branch whose bound
// equals the incumbent cost survives only while its prefix can still win
// the lexicographic tie-break.
func (in *incumbent) shouldPrune(bound float64, prefix []int) bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	if !in.found {
		return false
	}
	if bound > in.cost {
		return true
	}
	if bound < in.cost {
		return false
	}
	return !prefixCanWin(prefix, in.hosts)
}

func lexLess(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// prefixCanWin reports whether some completion of prefix could be
// lexicographically smaller than, or equal to, full.
func prefixCanWin(prefix, full []int) bool {
	for i, h := range prefix {
		if h != full[i] {
			return h < full[i]
		}
	}
	return true
}
