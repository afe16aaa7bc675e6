// Package core defines the operator DAG consumed by the planner: Tensor and
// Operator are arena-indexed (identity is the arena index, not a pointer or
// a string ID) so that construction, cloning, and determinism checks never
// need a pointer-keyed map.
//
// A Graph is built once by an external model loader (out of scope for this
// module) and is immutable from the planner's point of view: operators and
// tensors are appended during construction and never mutated or removed
// afterward. Graph itself remains safe for concurrent construction (guarded
// by two sync.RWMutex, one for the tensor arena and one for the operator arena) because a loader may populate it from more than
// one goroutine; the planner that later walks a finished Graph does so
// single-threaded, per the package-level contract described in
// github.com/accelsim/scratchplan's root doc comment.
//
// Errors:
//
//	ErrEmptyTensorName   - tensor name is empty.
//	ErrEmptyOperatorName - operator name is empty.
//	ErrDuplicateOperator - operator name already registered.
//	ErrUnknownTensor     - operator references a tensor ID outside the arena.
//	ErrInvalidInputCount - operator declares 0 or more than 2 inputs.
//	ErrInvalidOutputCount - operator declares a number of outputs other than 1.
package core
