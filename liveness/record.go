package liveness

import (
	"fmt"
	"sort"
	"strings"
)

// Record holds the liveness profile of a single tensor: the sorted, deduped
// set of schedule steps at which it is used, and the derived quantities
// start/end/TTL/UL/FoMD.
type Record struct {
	// TensorName is carried for diagnostics (error messages, String()).
	TensorName string

	uses []int
}

// newRecord creates an empty Record for the named tensor.
func newRecord(name string) *Record {
	return &Record{TensorName: name}
}

// recordUse appends a schedule step at which the tensor was referenced.
// Duplicates are tolerated here and removed by finalize.
func (r *Record) recordUse(step int) {
	r.uses = append(r.uses, step)
}

// finalize sorts and deduplicates the use-step list. Idempotent.
func (r *Record) finalize() {
	sort.Ints(r.uses)
	if len(r.uses) == 0 {
		return
	}
	out := r.uses[:1]
	for _, s := range r.uses[1:] {
		if s != out[len(out)-1] {
			out = append(out, s)
		}
	}
	r.uses = out
}

// Uses returns the sorted, deduplicated schedule steps at which the tensor
// is referenced.
func (r *Record) Uses() []int {
	out := make([]int, len(r.uses))
	copy(out, r.uses)
	return out
}

// Start returns min(uses).
func (r *Record) Start() int {
	return r.uses[0]
}

// End returns max(uses).
func (r *Record) End() int {
	return r.uses[len(r.uses)-1]
}

// TTL returns End() - Start(): the schedule-step interval over which the
// tensor is live.
func (r *Record) TTL() int {
	return r.End() - r.Start()
}

// UnusedLiveness returns TTL() - |uses|, which grows with the steps during
// which a live tensor is not referenced. A tensor referenced at every step
// of its interval has UnusedLiveness -1.
func (r *Record) UnusedLiveness() int {
	return r.TTL() - len(r.uses)
}

// MemoryBoundness is a reserved figure-of-merit component, currently always
// 0. It is part of the public contract so FoMD's ordering effect stays
// stable once this term is implemented.
func (r *Record) MemoryBoundness() float64 {
	return 0
}

// Impact is a reserved figure-of-merit component, currently always 0.
func (r *Record) Impact() float64 {
	return 0
}

// FoMD returns the Figure of Merit for pinning Decisions:
// UnusedLiveness + MemoryBoundness + Impact.
func (r *Record) FoMD() float64 {
	return float64(r.UnusedLiveness()) + r.MemoryBoundness() + r.Impact()
}

// String renders the use-step list for debugging and test failure output.
func (r *Record) String() string {
	parts := make([]string, len(r.uses))
	for i, s := range r.uses {
		parts[i] = fmt.Sprintf("%d", s)
	}
	return fmt.Sprintf("%s: [%s]", r.TensorName, strings.Join(parts, ", "))
}
