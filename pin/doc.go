// Package pin proposes and prunes the set of tensors that should stay
// resident ("pinned") in an on-accelerator scratchpad (SPM) across schedule
// steps, to avoid redundant DMA transfers.
//
// Table maintains two consistent views of the same assignment: step-keyed
// (for the planner) and operator-name-keyed (for a runtime that only has
// operator names at dispatch time), kept in lockstep by a single
// insertion/removal helper, fixing the teacher-source's latent bug where
// only one view was updated by the pruning pass.
//
// Plan proposes an upper-bound candidate set by walking the schedule in
// reverse (§4.3): a tensor pinned at a later step must also be resident at
// every intervening step. Validate then prunes that superset in two phases:
// Phase A removes claims outside a tensor's liveness interval; onsram-lifetime
// is then enforced (a tensor larger than a single SPM is never pinned
// anywhere); Phase B greedily fits the remainder into the writable SPM
// budget, ordered by ascending FoMD (ties broken by ascending tensor name).
//
// Errors:
//
//	ErrPlanInfeasible - a mandatory input alone exceeds the writable budget.
package pin
