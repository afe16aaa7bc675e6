package schedule_test

import (
	"fmt"

	"github.com/accelsim/scratchplan/core"
	"github.com/accelsim/scratchplan/schedule"
)

// ExampleBuild schedules a small diamond-shaped operator DAG:
//
//	a -> op1 -> b -\
//	a -> op2 -> c --+-> op3 -> d
//
// op1 and op2 both depend only on "a" and are inserted in that order, so
// Kahn's FIFO tie-break schedules op1 before op2.
func ExampleBuild() {
	g := core.NewGraph()
	a, _ := g.AddTensor("a", []int{4}, 4)
	b, _ := g.AddTensor("b", []int{4}, 4)
	c, _ := g.AddTensor("c", []int{4}, 4)
	d, _ := g.AddTensor("d", []int{4}, 4)

	_, _ = g.AddOperator("op1", []core.TensorID{a}, []core.TensorID{b})
	_, _ = g.AddOperator("op2", []core.TensorID{a}, []core.TensorID{c})
	_, _ = g.AddOperator("op3", []core.TensorID{b, c}, []core.TensorID{d})

	sched, err := schedule.Build(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, id := range sched.Order() {
		op, _ := g.Operator(id)
		fmt.Println(op.Name)
	}

	// Output:
	// op1
	// op2
	// op3
}
