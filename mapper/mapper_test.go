package mapper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accelsim/scratchplan/core"
	"github.com/accelsim/scratchplan/mapper"
	"github.com/accelsim/scratchplan/schedule"
)

func TestFindOptimalMapping_AssignsDistinctSlots(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddTensor("a", []int{4}, 4)
	b, _ := g.AddTensor("b", []int{4}, 4)
	c, _ := g.AddTensor("c", []int{4}, 4)
	d, _ := g.AddTensor("d", []int{4}, 4)
	e, _ := g.AddTensor("e", []int{4}, 4)

	_, err := g.AddOperator("op", []core.TensorID{a, b}, []core.TensorID{c})
	require.NoError(t, err)
	_, err = g.AddOperator("op2", []core.TensorID{c, d}, []core.TensorID{e})
	require.NoError(t, err)

	sched, err := schedule.Build(g)
	require.NoError(t, err)

	assignment, count, err := mapper.FindOptimalMapping(sched, g, 1024, 3)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, count, 0)

	for i := 0; i < sched.Len(); i++ {
		in0, in1 := assignment.In[i][0], assignment.In[i][1]
		out := assignment.Out[i]
		assert.NotEqual(t, in0, out)
		if in1 != -1 {
			assert.NotEqual(t, in0, in1)
			assert.NotEqual(t, in1, out)
		}
	}
}

func TestFindOptimalMapping_PinsReusedOutput(t *testing.T) {
	// a,b -> op -> c; c,d -> op2 -> e: c is immediately reused, so the
	// optimal search should find at least one pin.
	g := core.NewGraph()
	a, _ := g.AddTensor("a", []int{4}, 4)
	b, _ := g.AddTensor("b", []int{4}, 4)
	c, _ := g.AddTensor("c", []int{4}, 4)
	d, _ := g.AddTensor("d", []int{4}, 4)
	e, _ := g.AddTensor("e", []int{4}, 4)

	_, err := g.AddOperator("op", []core.TensorID{a, b}, []core.TensorID{c})
	require.NoError(t, err)
	_, err = g.AddOperator("op2", []core.TensorID{c, d}, []core.TensorID{e})
	require.NoError(t, err)

	sched, err := schedule.Build(g)
	require.NoError(t, err)

	_, count, err := mapper.FindOptimalMapping(sched, g, 1024, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestFindOptimalMapping_Deterministic(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddTensor("a", []int{4}, 4)
	out, _ := g.AddTensor("out", []int{4}, 4)
	_, err := g.AddOperator("reorder_1", []core.TensorID{a}, []core.TensorID{out})
	require.NoError(t, err)

	sched, err := schedule.Build(g)
	require.NoError(t, err)

	a1, c1, err := mapper.FindOptimalMapping(sched, g, 1024, 3)
	require.NoError(t, err)
	a2, c2, err := mapper.FindOptimalMapping(sched, g, 1024, 3)
	require.NoError(t, err)

	assert.Equal(t, c1, c2)
	assert.Equal(t, a1, a2)
}

func TestFindOptimalMapping_SingleInputOperator(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddTensor("a", []int{4}, 4)
	out, _ := g.AddTensor("out", []int{4}, 4)
	_, err := g.AddOperator("reorder_1", []core.TensorID{a}, []core.TensorID{out})
	require.NoError(t, err)

	sched, err := schedule.Build(g)
	require.NoError(t, err)

	assignment, _, err := mapper.FindOptimalMapping(sched, g, 1024, 3)
	require.NoError(t, err)

	assert.Equal(t, -1, assignment.In[0][1])
}
