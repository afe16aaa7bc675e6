package planner_test

import (
	"fmt"

	"github.com/accelsim/scratchplan/core"
	"github.com/accelsim/scratchplan/planner"
)

// ExampleRun plans a three-tensor chain a -> op1 -> b -> op2 -> c. With a
// generous scratchpad capacity, a is pinned at step 0 and b at step 1; b is
// not pinned at step 0, the step that produces it.
func ExampleRun() {
	g := core.NewGraph()
	a, _ := g.AddTensor("a", []int{64}, 4)
	b, _ := g.AddTensor("b", []int{64}, 4)
	c, _ := g.AddTensor("c", []int{64}, 4)
	_, _ = g.AddOperator("op1", []core.TensorID{a}, []core.TensorID{b})
	_, _ = g.AddOperator("op2", []core.TensorID{b}, []core.TensorID{c})

	p, err := planner.Run(g, planner.WithSpmCapacity(1024))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for i := 0; i < p.GetSchedule().Len(); i++ {
		fmt.Println(i, p.GetPinMap(i))
	}

	// Output:
	// 0 [0]
	// 1 [1]
}
