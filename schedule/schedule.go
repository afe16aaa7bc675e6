package schedule

import (
	"errors"
	"fmt"
	"strings"

	"github.com/accelsim/scratchplan/core"
)

// ErrCyclicGraph indicates the ready queue emptied before every operator was
// scheduled: the DAG contains a cycle.
var ErrCyclicGraph = errors.New("schedule: cyclic graph")

// Schedule is the ordered sequence S = [op_0, ..., op_{N-1}] produced by
// Build. step(op) is its index in S.
type Schedule struct {
	order []core.OperatorID
	step  map[core.OperatorID]int
}

// Build computes the deterministic topological order of g via Kahn's
// algorithm with FIFO tie-break on graph insertion order. Returns
// ErrCyclicGraph (naming the unscheduled operators) if a cycle prevents full
// linearization.
//
// Complexity: O(V + E).
func Build(g *core.Graph) (*Schedule, error) {
	ops := g.Operators()

	// dependents[p] lists operators that have an input produced by p, with
	// one entry per such input (so a producer referenced twice by the same
	// consumer is decremented twice, matching inDegree's edge count).
	dependents := make(map[core.OperatorID][]core.OperatorID, len(ops))
	inDegree := make(map[core.OperatorID]int, len(ops))

	for _, id := range ops {
		op, err := g.Operator(id)
		if err != nil {
			return nil, fmt.Errorf("schedule: %w", err)
		}
		for _, in := range op.Inputs {
			producer, ok := g.Producer(in)
			if !ok {
				continue // graph input: no pending producer
			}
			dependents[producer] = append(dependents[producer], id)
			inDegree[id]++
		}
	}

	var ready []core.OperatorID
	for _, id := range ops {
		if inDegree[id] == 0 {
			ready = append(ready, id)
		}
	}

	order := make([]core.OperatorID, 0, len(ops))
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		order = append(order, id)

		for _, dep := range dependents[id] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				ready = append(ready, dep)
			}
		}
	}

	if len(order) != len(ops) {
		var stuck []string
		for _, id := range ops {
			if inDegree[id] > 0 {
				op, _ := g.Operator(id)
				stuck = append(stuck, op.Name)
			}
		}
		return nil, fmt.Errorf("%w: %d of %d operators scheduled, unscheduled: %s", ErrCyclicGraph, len(order), len(ops), strings.Join(stuck, ", "))
	}

	step := make(map[core.OperatorID]int, len(order))
	for i, id := range order {
		step[id] = i
	}

	return &Schedule{order: order, step: step}, nil
}

// Order returns the full linear schedule S.
func (s *Schedule) Order() []core.OperatorID {
	out := make([]core.OperatorID, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the schedule length N.
func (s *Schedule) Len() int {
	return len(s.order)
}

// Step returns the index of op within the schedule, and whether op was
// scheduled at all.
func (s *Schedule) Step(op core.OperatorID) (int, bool) {
	i, ok := s.step[op]
	return i, ok
}

// At returns the operator scheduled at step i.
func (s *Schedule) At(i int) (core.OperatorID, bool) {
	if i < 0 || i >= len(s.order) {
		return -1, false
	}
	return s.order[i], true
}
