package pin

import (
	"fmt"
	"sort"

	"github.com/accelsim/scratchplan/core"
	"github.com/accelsim/scratchplan/liveness"
	"github.com/accelsim/scratchplan/schedule"
)

// Validate prunes table in place (§4.4), returning the same *Table for
// convenience. spmCapacity is the per-SPM byte capacity and k the scratchpad
// count (the writable budget reserves one pad for output).
//
// Phase A drops any (step, tensor) claim outside the tensor's liveness
// interval. A tensor bigger than a single SPM (onsram-lifetime) is then
// removed from every step regardless of the aggregate budget below it could
// never occupy any one pad for its whole lifetime. Phase B then greedily
// fits each step's remaining candidates, ascending by FoMd (ties broken by
// ascending tensor name), into the writable budget B = spmCapacity * (k-1).
// Validate fails with ErrPlanInfeasible only when a step's own mandatory
// inputs alone exceed B.
func Validate(table *Table, sched *schedule.Schedule, g *core.Graph, live liveness.Map, spmCapacity int64, k int) (*Table, error) {
	order := sched.Order()

	if err := pruneTTL(table, g, live); err != nil {
		return nil, err
	}

	// onsram-lifetime: a tensor bigger than a single SPM can never be pinned,
	// independent of the aggregate multi-pad budget checked below.
	enforceOnsramLifetime(table, g, spmCapacity)

	budget := spmCapacity * int64(k-1)

	for i, opID := range order {
		op, err := g.Operator(opID)
		if err != nil {
			return nil, fmt.Errorf("pin: %w", err)
		}

		var used int64
		mandatory := make(map[core.TensorID]bool, len(op.Inputs))
		if !op.IsHostSide() {
			for _, in := range op.Inputs {
				tensor, err := g.Tensor(in)
				if err != nil {
					return nil, fmt.Errorf("pin: %w", err)
				}
				used += tensor.StorageBytes()
				mandatory[in] = true
			}
			if used > budget {
				return nil, fmt.Errorf("%w: operator %q mandatory inputs require %d bytes, budget is %d", ErrPlanInfeasible, op.Name, used, budget)
			}
		}

		candidates := make([]core.TensorID, 0, len(table.StepTensors(i)))
		for _, t := range table.StepTensors(i) {
			if !mandatory[t] {
				candidates = append(candidates, t)
			}
		}

		sortByFoMD(candidates, g, live)

		for _, t := range candidates {
			tensor, err := g.Tensor(t)
			if err != nil {
				return nil, fmt.Errorf("pin: %w", err)
			}
			size := tensor.StorageBytes()
			if used+size > budget {
				table.Remove(i, t)
				continue
			}
			used += size
		}
	}

	return table, nil
}

// pruneTTL implements Phase A.
func pruneTTL(table *Table, g *core.Graph, live liveness.Map) error {
	for i := 0; i < table.Len(); i++ {
		for _, t := range table.StepTensors(i) {
			rec, err := live.Get(t)
			if err != nil {
				return fmt.Errorf("pin: %w", err)
			}
			if i < rec.Start() || i > rec.End() {
				table.Remove(i, t)
			}
		}
	}
	return nil
}

// enforceOnsramLifetime removes any tensor too large for a single SPM
// (spmCapacity) from every step it was claimed pinned at: no occupancy
// assignment could ever hold it, regardless of the aggregate budget.
func enforceOnsramLifetime(table *Table, g *core.Graph, spmCapacity int64) {
	seen := make(map[core.TensorID]bool)
	for i := 0; i < table.Len(); i++ {
		for _, t := range table.StepTensors(i) {
			if seen[t] {
				continue
			}
			seen[t] = true
			tensor, err := g.Tensor(t)
			if err != nil {
				continue
			}
			if tensor.StorageBytes() > spmCapacity {
				table.RemoveEverywhere(t)
			}
		}
	}
}

func sortByFoMD(ids []core.TensorID, g *core.Graph, live liveness.Map) {
	sort.Slice(ids, func(i, j int) bool {
		ri, errI := live.Get(ids[i])
		rj, errJ := live.Get(ids[j])
		if errI != nil || errJ != nil {
			return false
		}
		if ri.FoMD() != rj.FoMD() {
			return ri.FoMD() < rj.FoMD()
		}
		ti, _ := g.Tensor(ids[i])
		tj, _ := g.Tensor(ids[j])
		if ti == nil || tj == nil {
			return false
		}
		return ti.Name < tj.Name
	})
}
