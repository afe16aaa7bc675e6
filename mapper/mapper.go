package mapper

import (
	"fmt"

	"github.com/accelsim/scratchplan/core"
	"github.com/accelsim/scratchplan/schedule"
)

// noSlot marks an absent input-1 slot (single-input operators).
const noSlot = -1

// Assignment is the result of FindOptimalMapping: per-step scratchpad ids
// for up to two inputs and exactly one output.
type Assignment struct {
	// In holds [in0Spm, in1Spm] per step; In[i][1] is noSlot for a
	// single-input operator.
	In [][2]int

	// Out holds the output scratchpad id per step.
	Out []int
}

// FindOptimalMapping performs a depth-first backtracking search over
// schedule steps, assigning each step's input(s) and output to distinct
// scratchpad ids in {0,...,k-1}, maximizing the number of outputs that a
// downstream reusing step finds already resident (§4.5). Capacity is
// verified continuously: an output pinned at step i for reuse at step j must
// not push any scratchpad's committed bytes over spmCapacity at any step in
// [i, j].
//
// Determinism: candidate (a, b) pairs are enumerated in a fixed ascending
// order, so the returned assignment is the same every call on the same
// inputs.
func FindOptimalMapping(sched *schedule.Schedule, g *core.Graph, spmCapacity int64, k int) (*Assignment, int, error) {
	order := sched.Order()
	n := len(order)

	ops := make([]*core.Operator, n)
	for i, id := range order {
		op, err := g.Operator(id)
		if err != nil {
			return nil, 0, fmt.Errorf("mapper: %w", err)
		}
		ops[i] = op
	}

	reuseEdges := buildReuseEdges(ops)

	sizeOf := func(t core.TensorID) (int64, error) {
		tensor, err := g.Tensor(t)
		if err != nil {
			return 0, fmt.Errorf("mapper: %w", err)
		}
		return tensor.StorageBytes(), nil
	}

	s := &search{
		ops:        ops,
		reuseEdges: reuseEdges,
		spmCap:     spmCapacity,
		k:          k,
		sizeOf:     sizeOf,
		usage:      make(map[int][]int64, k),
		inAssign:   make([][2]int, n),
		outAssign:  make([]int, n),
		bestCount:  -1, // so the first complete assignment is always recorded
	}
	for spm := 0; spm < k; spm++ {
		s.usage[spm] = make([]int64, n)
	}

	best, err := s.dfs(0, 0)
	if err != nil {
		return nil, 0, err
	}

	return &Assignment{In: s.bestIn, Out: s.bestOut}, best, nil
}

type search struct {
	ops        []*core.Operator
	reuseEdges [][]int // reuseEdges[i] = downstream steps reusing step i's output
	spmCap     int64
	k          int
	sizeOf     func(core.TensorID) (int64, error)

	usage     map[int][]int64 // usage[spm][step] = bytes committed
	inAssign  [][2]int
	outAssign []int

	bestCount int
	bestIn    [][2]int
	bestOut   []int
}

// dfs assigns step i onward, returning the best total pin count achievable
// from this partial state.
func (s *search) dfs(i int, pinCount int) (int, error) {
	n := len(s.ops)
	if i == n {
		if pinCount > s.bestCount {
			s.bestCount = pinCount
			s.bestIn = cloneIn(s.inAssign)
			s.bestOut = append([]int(nil), s.outAssign...)
		}
		return pinCount, nil
	}

	op := s.ops[i]
	hasSecondInput := len(op.Inputs) == 2

	in0Size, err := s.sizeOf(op.Inputs[0])
	if err != nil {
		return 0, err
	}
	var in1Size int64
	if hasSecondInput {
		in1Size, err = s.sizeOf(op.Inputs[1])
		if err != nil {
			return 0, err
		}
	}
	outSize, err := s.sizeOf(op.Outputs[0])
	if err != nil {
		return 0, err
	}

	best := pinCount

	for a := 0; a < s.k; a++ {
		bValues := []int{noSlot}
		if hasSecondInput {
			bValues = bValues[:0]
			for b := 0; b < s.k; b++ {
				if b != a {
					bValues = append(bValues, b)
				}
			}
		}

		for _, b := range bValues {
			outSpm := remainingSpm(s.k, a, b)

			reserved, ok := s.commit(i, a, b, outSpm, in0Size, in1Size, outSize)
			if !ok {
				s.rollback(i, reserved)
				continue
			}

			gain := s.pinGainForStep(i, a, b, op)

			result, err := s.dfs(i+1, pinCount+gain)
			if err != nil {
				s.rollback(i, reserved)
				return 0, err
			}
			if result > best {
				best = result
			}

			s.rollback(i, reserved)
		}
	}

	return best, nil
}

// reservation records a scratchpad+step+byte delta applied during commit, so
// rollback can undo exactly what was added.
type reservation struct {
	spm, step int
	delta     int64
}

func (s *search) commit(i, a, b, outSpm int, in0Size, in1Size, outSize int64) ([]reservation, bool) {
	var res []reservation

	add := func(spm, step int, delta int64) bool {
		if s.usage[spm][step]+delta > s.spmCap {
			return false
		}
		s.usage[spm][step] += delta
		res = append(res, reservation{spm, step, delta})
		return true
	}

	if !add(a, i, in0Size) {
		return res, false
	}
	if b != noSlot {
		if !add(b, i, in1Size) {
			return res, false
		}
	}

	windowEnd := i
	for _, j := range s.reuseEdges[i] {
		if j > windowEnd {
			windowEnd = j
		}
	}
	for step := i; step <= windowEnd; step++ {
		if !add(outSpm, step, outSize) {
			return res, false
		}
	}

	s.inAssign[i] = [2]int{a, b}
	s.outAssign[i] = outSpm

	return res, true
}

func (s *search) rollback(i int, res []reservation) {
	for _, r := range res {
		s.usage[r.spm][r.step] -= r.delta
	}
	s.inAssign[i] = [2]int{noSlot, noSlot}
	s.outAssign[i] = noSlot
}

// pinGainForStep counts, for each input slot of op, whether it matches the
// scratchpad its producing step's output was assigned to.
func (s *search) pinGainForStep(i, a, b int, op *core.Operator) int {
	gain := 0
	slots := []int{a}
	inputs := []core.TensorID{op.Inputs[0]}
	if b != noSlot {
		slots = append(slots, b)
		inputs = append(inputs, op.Inputs[1])
	}
	for idx, slot := range slots {
		producerStep, ok := s.producerStepOf(inputs[idx], i)
		if !ok {
			continue
		}
		if s.outAssign[producerStep] == slot {
			gain++
		}
	}
	return gain
}

// producerStepOf finds the schedule step (strictly before i) at which t was
// produced, if any step before i produced it as an output.
func (s *search) producerStepOf(t core.TensorID, before int) (int, bool) {
	for step := 0; step < before; step++ {
		for _, out := range s.ops[step].Outputs {
			if out == t {
				return step, true
			}
		}
	}
	return -1, false
}

func remainingSpm(k, a, b int) int {
	for s := 0; s < k; s++ {
		if s != a && s != b {
			return s
		}
	}
	return 0
}

func cloneIn(in [][2]int) [][2]int {
	out := make([][2]int, len(in))
	copy(out, in)
	return out
}

// buildReuseEdges returns, for each step i, the list (in step order) of
// later steps whose operator consumes op_i's output tensor as an input.
func buildReuseEdges(ops []*core.Operator) [][]int {
	n := len(ops)
	edges := make([][]int, n)

	producerStep := make(map[core.TensorID]int)
	for i, op := range ops {
		for _, out := range op.Outputs {
			producerStep[out] = i
		}
	}

	for j, op := range ops {
		for _, in := range op.Inputs {
			if p, ok := producerStep[in]; ok && p < j {
				edges[p] = append(edges[p], j)
			}
		}
	}

	return edges
}
