// Package mapper implements an in-process alternative to writing ILP
// artifacts for an external solver: a depth-first backtracking search that
// assigns each schedule step's two input slots and one output slot to
// distinct scratchpad ids while maximizing the number of outputs that stay
// resident for a downstream reuse instead of being re-DMA'd.
//
// The search fixes the original implementation's two documented bugs: sizes
// reused across both input slots of the same step are counted once (not
// twice) toward a scratchpad's occupied bytes, and the per-window byte
// accumulator always returns its sum instead of silently discarding it.
package mapper
