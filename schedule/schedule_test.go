package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accelsim/scratchplan/core"
	"github.com/accelsim/scratchplan/schedule"
)

func mustTensor(t *testing.T, g *core.Graph, name string) core.TensorID {
	t.Helper()
	id, err := g.AddTensor(name, []int{64}, 4)
	require.NoError(t, err)
	return id
}

// TestBuild_SimpleChain orders a linear chain: a -> op1 -> b -> op2 -> c.
func TestBuild_SimpleChain(t *testing.T) {
	g := core.NewGraph()
	a := mustTensor(t, g, "a")
	b := mustTensor(t, g, "b")
	c := mustTensor(t, g, "c")

	op1, err := g.AddOperator("op1", []core.TensorID{a}, []core.TensorID{b})
	require.NoError(t, err)
	op2, err := g.AddOperator("op2", []core.TensorID{b}, []core.TensorID{c})
	require.NoError(t, err)

	sched, err := schedule.Build(g)
	require.NoError(t, err)
	assert.Equal(t, []core.OperatorID{op1, op2}, sched.Order())

	step1, ok := sched.Step(op1)
	require.True(t, ok)
	assert.Equal(t, 0, step1)

	step2, ok := sched.Step(op2)
	require.True(t, ok)
	assert.Equal(t, 1, step2)
}

// TestBuild_FIFOTieBreak verifies that two independently-ready operators
// schedule in their graph insertion order.
func TestBuild_FIFOTieBreak(t *testing.T) {
	g := core.NewGraph()
	a := mustTensor(t, g, "a")
	b := mustTensor(t, g, "b")
	c := mustTensor(t, g, "c")
	d := mustTensor(t, g, "d")

	opSecond, err := g.AddOperator("second", []core.TensorID{b}, []core.TensorID{d})
	require.NoError(t, err)
	opFirst, err := g.AddOperator("first", []core.TensorID{a}, []core.TensorID{c})
	require.NoError(t, err)

	sched, err := schedule.Build(g)
	require.NoError(t, err)
	assert.Equal(t, []core.OperatorID{opSecond, opFirst}, sched.Order())
}

// TestBuild_CyclicGraph verifies a cycle between two operators is rejected.
func TestBuild_CyclicGraph(t *testing.T) {
	g := core.NewGraph()
	a := mustTensor(t, g, "a")
	b := mustTensor(t, g, "b")

	_, err := g.AddOperator("op1", []core.TensorID{a}, []core.TensorID{b})
	require.NoError(t, err)
	_, err = g.AddOperator("op2", []core.TensorID{b}, []core.TensorID{a})
	require.NoError(t, err)

	_, err = schedule.Build(g)
	assert.ErrorIs(t, err, schedule.ErrCyclicGraph)
}

func TestBuild_TwoInputOp(t *testing.T) {
	g := core.NewGraph()
	a := mustTensor(t, g, "a")
	b := mustTensor(t, g, "b")
	c := mustTensor(t, g, "c")
	d := mustTensor(t, g, "d")
	e := mustTensor(t, g, "e")

	op1, err := g.AddOperator("op", []core.TensorID{a, b}, []core.TensorID{c})
	require.NoError(t, err)
	op2, err := g.AddOperator("op2", []core.TensorID{c, d}, []core.TensorID{e})
	require.NoError(t, err)

	sched, err := schedule.Build(g)
	require.NoError(t, err)
	assert.Equal(t, []core.OperatorID{op1, op2}, sched.Order())
}
