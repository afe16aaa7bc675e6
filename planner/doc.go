// Package planner is the top-level orchestration entry point: given an
// operator DAG, it runs the tile hook, builds the schedule, the liveness
// profile, and the pruned pin table, then exposes read-only queries plus two
// alternative finishers: writing ILP artifacts for an external solver, or
// running the in-process recursive scratchpad mapper.
//
// Configuration follows functional options (PlanOption), mirroring how the
// rest of this module's configurable components are constructed: capacity
// and scratchpad count have no hardcoded default capacity, since the
// backend must supply it, but the scratchpad count defaults to 3 (two input
// pads, one output pad).
package planner
