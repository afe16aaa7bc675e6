package liveness

import (
	"fmt"

	"github.com/accelsim/scratchplan/core"
	"github.com/accelsim/scratchplan/schedule"
)

// Map associates every tensor reachable as an operator input or output with
// its liveness Record. Tensors never referenced by the schedule have no
// entry.
type Map map[core.TensorID]*Record

// Get returns the Record for t, or ErrUnknownTensor if t was never used by
// the schedule this Map was built from.
func (m Map) Get(t core.TensorID) (*Record, error) {
	r, ok := m[t]
	if !ok {
		return nil, fmt.Errorf("%w: tensor id %d", ErrUnknownTensor, t)
	}
	return r, nil
}

// Build walks sched from step 0 upward, recording the use-step of every
// input and output tensor of the operator executing at each step, then
// deduplicates every tensor's use-step list.
//
// Build is idempotent: running it twice on the same schedule produces equal
// records.
//
// Complexity: O(N) where N is the schedule length (each operator has a
// bounded number of tensor slots).
func Build(sched *schedule.Schedule, g *core.Graph) (Map, error) {
	records := make(Map)

	order := sched.Order()
	for step, opID := range order {
		op, err := g.Operator(opID)
		if err != nil {
			return nil, fmt.Errorf("liveness: %w", err)
		}

		for _, tID := range op.Inputs {
			recordTensorUse(records, g, tID, step)
		}
		for _, tID := range op.Outputs {
			recordTensorUse(records, g, tID, step)
		}
	}

	for _, r := range records {
		r.finalize()
	}

	return records, nil
}

func recordTensorUse(records Map, g *core.Graph, t core.TensorID, step int) {
	r, ok := records[t]
	if !ok {
		tensor, err := g.Tensor(t)
		name := ""
		if err == nil {
			name = tensor.Name
		}
		r = newRecord(name)
		records[t] = r
	}
	r.recordUse(step)
}
