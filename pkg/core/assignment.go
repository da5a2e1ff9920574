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

import "slices"

// Unassigned is the forward-map value for a task that has no host type yet.
// A complete Assignment contains no Unassigned entries.
const Unassigned = -1

// Assignment maps every task to the host type it runs on, and maintains
// the inverse view (tasks per host type) alongside. Both views are updated
// only through Assign, so the channeling invariant — task t maps to host h
// iff t appears in the task list of h — holds at every observable point.
type Assignment struct {
	taskToHost  []int
	hostToTasks [][]int
}

// NewAssignment returns an empty assignment for the given problem shape.
// All tasks start Unassigned.
func NewAssignment(numTasks, numHostTypes int) *Assignment {
	a := &Assignment{
		taskToHost:  make([]int, numTasks),
		hostToTasks: make([][]int, numHostTypes),
	}
	for t := range a.taskToHost {
		a.taskToHost[t] = Unassigned
	}
	return a
}

// Assign places task on host, moving it off its previous host type if it
// was already assigned.
func (a *Assignment) Assign(task, host int) {
	if prev := a.taskToHost[task]; prev != Unassigned {
		a.hostToTasks[prev] = slices.DeleteFunc(a.hostToTasks[prev], func(t int) bool {
			return t == task
		})
	}
	a.taskToHost[task] = host
	a.hostToTasks[host] = append(a.hostToTasks[host], task)
}

// HostOf returns the host type of task, or Unassigned.
func (a *Assignment) HostOf(task int) int { return a.taskToHost[task] }

// TasksOn returns the tasks assigned to host, in assignment order.
// Callers must not modify the returned slice.
func (a *Assignment) TasksOn(host int) []int { return a.hostToTasks[host] }

// NumTasks returns the number of tasks covered by the assignment.
func (a *Assignment) NumTasks() int { return len(a.taskToHost) }

// NumHostTypes returns the number of host types covered by the assignment.
func (a *Assignment) NumHostTypes() int { return len(a.hostToTasks) }

// Complete reports whether every task has a host type.
func (a *Assignment) Complete() bool {
	for _, h := range a.taskToHost {
		if h == Unassigned {
			return false
		}
	}
	return true
}

// HostVector returns the forward map as a task-indexed slice of host
// ordinals. The slice is a copy.
func (a *Assignment) HostVector() []int {
	return append([]int(nil), a.taskToHost...)
}

// Clone returns an independent copy of the assignment.
func (a *Assignment) Clone() *Assignment {
	c := &Assignment{
		taskToHost:  append([]int(nil), a.taskToHost...),
		hostToTasks: make([][]int, len(a.hostToTasks)),
	}
	for h, tasks := range a.hostToTasks {
		c.hostToTasks[h] = append([]int(nil), tasks...)
	}
	return c
}

// Plan is the provisioning plan derived from a complete assignment: how
// many instances of each host type to buy, and what it costs in total.
// A Plan is recomputed from its Assignment, never mutated independently.
type Plan struct {
	// Assignment is the task-to-host-type mapping the plan was derived
	// from.
	Assignment *Assignment

	// Instances is the required instance count per host type ordinal.
	Instances []int

	// TotalCost is the summed provisioning cost across host types.
	TotalCost float64

	// Certified is true when the plan is a proven global optimum, false
	// when the search was cut short and this is only the best plan found.
	Certified bool
}
