package pin

import (
	"fmt"

	"github.com/accelsim/scratchplan/core"
	"github.com/accelsim/scratchplan/schedule"
)

// Plan walks sched in reverse to build the initial pin superset: at step i
// every input of op_i is a candidate, and anything pinned at step i+1 is
// copied backward into step i (a tensor resident for a later step must also
// be resident at every intervening step). A tensor is never copied back into
// the very step that produces it: nothing needs to be kept resident to avoid
// re-fetching a value that does not exist until that step completes.
//
// Host-side operators (core.Operator.IsHostSide) never contribute their own
// inputs as candidates, since the accelerator never pins anything for them,
// but they still participate in the copy-forward chain like any other step.
//
// Complexity: O(N) amortized (each tensor is appended to a bounded number of
// steps).
func Plan(sched *schedule.Schedule, g *core.Graph) (*Table, error) {
	table, err := NewTable(sched, g)
	if err != nil {
		return nil, err
	}

	order := sched.Order()
	n := len(order)

	for i := n - 1; i >= 0; i-- {
		op, err := g.Operator(order[i])
		if err != nil {
			return nil, fmt.Errorf("pin: %w", err)
		}

		if !op.IsHostSide() {
			for _, in := range op.Inputs {
				table.Add(i, in)
			}
		}

		if i < n-1 {
			for _, t := range table.StepTensors(i + 1) {
				if producedAt(op, t) {
					// t comes into existence only as op_i's own output;
					// there is nothing to avoid re-fetching at the very
					// step that creates it.
					continue
				}
				table.Add(i, t)
			}
		}
	}

	return table, nil
}

func producedAt(op *core.Operator, t core.TensorID) bool {
	for _, out := range op.Outputs {
		if out == t {
			return true
		}
	}
	return false
}
