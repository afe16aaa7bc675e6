package core

import (
	"errors"
	"strings"
)

// Sentinel errors for core graph construction.
var (
	// ErrEmptyTensorName indicates a tensor was registered with an empty name.
	ErrEmptyTensorName = errors.New("core: tensor name is empty")

	// ErrEmptyOperatorName indicates an operator was registered with an empty name.
	ErrEmptyOperatorName = errors.New("core: operator name is empty")

	// ErrDuplicateOperator indicates an operator name was already registered.
	ErrDuplicateOperator = errors.New("core: duplicate operator name")

	// ErrUnknownTensor indicates an operator referenced a tensor ID not present in the arena.
	ErrUnknownTensor = errors.New("core: unknown tensor id")

	// ErrUnknownOperator indicates a lookup referenced an operator ID not present in the arena.
	ErrUnknownOperator = errors.New("core: unknown operator id")

	// ErrInvalidInputCount indicates an operator declared zero or more than two inputs.
	ErrInvalidInputCount = errors.New("core: operator must declare 1 or 2 inputs")

	// ErrInvalidOutputCount indicates an operator declared a number of outputs other than one.
	ErrInvalidOutputCount = errors.New("core: operator must declare exactly 1 output")
)

// TensorID is the arena index of a Tensor within a Graph. Tensor identity is
// this index; two TensorIDs compare equal iff they name the same tensor.
type TensorID int

// OperatorID is the arena index of an Operator within a Graph.
type OperatorID int

// Tensor is an immutable handle: a name, a shape, and a scalar element byte
// width. StorageBytes is derived, never stored, so it can never drift from
// Shape/ElemBytes.
type Tensor struct {
	// Name uniquely identifies this tensor for diagnostics and for the
	// name-keyed PinTable view.
	Name string

	// Shape lists dimension sizes in order; StorageBytes is their product
	// times ElemBytes.
	Shape []int

	// ElemBytes is the byte width of one scalar element.
	ElemBytes int
}

// StorageBytes returns product(Shape) * ElemBytes.
// Complexity: O(len(Shape)).
func (t *Tensor) StorageBytes() int64 {
	size := int64(1)
	for _, d := range t.Shape {
		size *= int64(d)
	}
	return size * int64(t.ElemBytes)
}

// Operator is an immutable DAG node: a stable name, ordered inputs (1 or 2
// tensors), and exactly one output. Operators are created once by Graph's
// builder methods and never mutated afterward.
type Operator struct {
	// Name uniquely identifies this operator.
	Name string

	// Inputs are ordered tensor handles consumed by this operator (len 1 or 2).
	Inputs []TensorID

	// Outputs holds the single tensor produced by this operator.
	Outputs []TensorID
}

// IsHostSide reports whether this operator runs purely on the host (a
// "reorder" or "data" operator) and therefore never causes SPM pinning,
// per the planner's naming convention.
func (op *Operator) IsHostSide() bool {
	return strings.HasPrefix(op.Name, "reorder") || strings.HasPrefix(op.Name, "data")
}
