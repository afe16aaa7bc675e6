package pin

import (
	"fmt"

	"github.com/accelsim/scratchplan/core"
	"github.com/accelsim/scratchplan/schedule"
)

// Table holds two consistent views of the same pin assignment: pinsByStep
// (schedule-step keyed, ordered) and pinsByOpName (operator-name keyed, for a
// runtime that only has names at dispatch time). Both views are mutated only
// through Add/Remove, which keeps them in lockstep; the teacher-source's
// Phase-B bug (only the pointer-keyed view was updated) cannot recur here
// because there is no second code path that bypasses these two methods.
type Table struct {
	byStep   [][]core.TensorID
	opAtStep []string
	byOpName map[string][]core.TensorID
}

// NewTable builds an empty Table sized to sched's length, pre-recording the
// operator name executing at each step so Add/Remove can maintain the
// name-keyed view without a second lookup.
func NewTable(sched *schedule.Schedule, g *core.Graph) (*Table, error) {
	n := sched.Len()
	t := &Table{
		byStep:   make([][]core.TensorID, n),
		opAtStep: make([]string, n),
		byOpName: make(map[string][]core.TensorID),
	}

	order := sched.Order()
	for step, opID := range order {
		op, err := g.Operator(opID)
		if err != nil {
			return nil, fmt.Errorf("pin: %w", err)
		}
		t.opAtStep[step] = op.Name
	}

	return t, nil
}

// Add records tensor as pinned at step, updating both views. A no-op if
// already present at that step.
func (t *Table) Add(step int, tensor core.TensorID) {
	if step < 0 || step >= len(t.byStep) {
		return
	}
	if contains(t.byStep[step], tensor) {
		return
	}
	t.byStep[step] = append(t.byStep[step], tensor)

	name := t.opAtStep[step]
	t.byOpName[name] = append(t.byOpName[name], tensor)
}

// Remove drops tensor from step, updating both views. A no-op if absent.
func (t *Table) Remove(step int, tensor core.TensorID) {
	if step < 0 || step >= len(t.byStep) {
		return
	}
	t.byStep[step] = removeID(t.byStep[step], tensor)

	name := t.opAtStep[step]
	t.byOpName[name] = removeID(t.byOpName[name], tensor)
}

// Has reports whether tensor is pinned at step.
func (t *Table) Has(step int, tensor core.TensorID) bool {
	if step < 0 || step >= len(t.byStep) {
		return false
	}
	return contains(t.byStep[step], tensor)
}

// StepTensors returns the ordered list of tensors pinned at step.
func (t *Table) StepTensors(step int) []core.TensorID {
	if step < 0 || step >= len(t.byStep) {
		return nil
	}
	out := make([]core.TensorID, len(t.byStep[step]))
	copy(out, t.byStep[step])
	return out
}

// OpTensors returns the ordered list of tensors pinned at the step executing
// opName.
func (t *Table) OpTensors(opName string) []core.TensorID {
	list := t.byOpName[opName]
	out := make([]core.TensorID, len(list))
	copy(out, list)
	return out
}

// Len returns the number of steps this Table covers.
func (t *Table) Len() int {
	return len(t.byStep)
}

// PinnedInputs intersects opName's declared inputs against its recorded pin
// list, the runtime-facing query the original SPManager::getPinnedTensors
// performs at dispatch time.
func (t *Table) PinnedInputs(opName string, inputs []core.TensorID) []core.TensorID {
	pinned := t.byOpName[opName]
	var out []core.TensorID
	for _, in := range inputs {
		if contains(pinned, in) {
			out = append(out, in)
		}
	}
	return out
}

// RemoveEverywhere removes tensor from every step it is pinned at, the
// onsram-lifetime enforcement for a tensor that can never fit its budget.
func (t *Table) RemoveEverywhere(tensor core.TensorID) {
	for step := range t.byStep {
		t.Remove(step, tensor)
	}
}

func contains(list []core.TensorID, t core.TensorID) bool {
	for _, v := range list {
		if v == t {
			return true
		}
	}
	return false
}

func removeID(list []core.TensorID, t core.TensorID) []core.TensorID {
	for i, v := range list {
		if v == t {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
