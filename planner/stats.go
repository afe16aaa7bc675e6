package planner

// PlanStats is a read-only snapshot of a planning pass's pinning outcome,
// supplementing the original's ad hoc "max_pinned_outputs" counter with a
// queryable summary. It is computed from the validated pin table only; the
// recursive mapper's assignment is not reflected in it.
type PlanStats struct {
	// PinHitCount is the total number of (step, tensor) pin entries across
	// the whole schedule.
	PinHitCount int

	// BytesPinnedByStep[i] is the sum of storage bytes pinned at step i.
	BytesPinnedByStep []int64

	// PeakBytesPinned is the maximum of BytesPinnedByStep.
	PeakBytesPinned int64
}

// Stats computes a PlanStats snapshot in O(N+T).
func (p *Plan) Stats() PlanStats {
	n := p.sched.Len()
	perStep := make([]int64, n)
	hitCount := 0
	var peak int64

	for i := 0; i < n; i++ {
		var sum int64
		for _, t := range p.table.StepTensors(i) {
			tensor, err := p.g.Tensor(t)
			if err != nil {
				continue
			}
			sum += tensor.StorageBytes()
			hitCount++
		}
		perStep[i] = sum
		if sum > peak {
			peak = sum
		}
	}

	return PlanStats{
		PinHitCount:       hitCount,
		BytesPinnedByStep: perStep,
		PeakBytesPinned:   peak,
	}
}
