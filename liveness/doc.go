// Package liveness computes, for every tensor referenced in a schedule, the
// sorted set of schedule steps at which it is used (as either an operator
// input or output) and the figure-of-merit derived from that set.
//
// Build walks the schedule from step 0 upward exactly once, recording the
// step index against every input and output tensor of the operator
// executing at that step, then deduplicates each tensor's use-step list.
// A tensor appearing as both an input and an output at the same step, or
// twice as an input, is recorded once per distinct step.
//
// Record.FoMD (Figure of Merit for pinning Decisions) equals UnusedLiveness
// plus two reserved placeholder terms, MemoryBoundness and Impact, which
// currently both return 0. They remain part of the public contract so that
// FoMD ordering stays stable and testable even before those terms are
// implemented.
package liveness
