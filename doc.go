// Package scratchplan is a static graph analyzer and scratchpad-pinning
// planner for a small-scratchpad neural-network accelerator simulator.
//
// Given a DAG of tensor operators, scratchplan computes ahead of execution:
//
//   - a deterministic linear schedule (package schedule)
//   - a per-tensor liveness profile (package liveness)
//   - a proposed SPM pinning assignment that avoids redundant DMA transfers
//     (package pin), pruned to respect hard capacity constraints
//   - a compact matrix encoding for an external ILP solver (package matrix)
//   - an in-process backtracking SPM assignment alternative (package mapper)
//
// Everything is single-threaded and non-suspending: planning is a batch
// computation over an in-memory operator DAG built by package core, with no
// callbacks, no cancellation points, and no I/O besides the final artifact
// write. A planner instance (package planner) owns its liveness/pin state
// exclusively for the duration of one planning pass; nothing is process-wide.
//
// Subpackages:
//
//	core/     — Tensor/Operator arena and the operator DAG (core.Graph)
//	schedule/ — topological linearization (Kahn's algorithm, FIFO tie-break)
//	liveness/ — per-tensor use-step tracking and figure-of-merit (FoMD)
//	pin/      — pin-candidate proposal and capacity-aware pruning
//	matrix/   — ILP artifact construction and on-disk emission
//	mapper/   — exact-ish backtracking SPM id assignment
//	planner/  — top-level orchestration (Run, DryRun) and exported queries
//
// Operator kernels, model-file parsing, and the DMA/scratchpad hardware
// model are external collaborators; scratchplan emits intent, it does not
// execute it.
package scratchplan
