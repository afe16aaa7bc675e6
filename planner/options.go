package planner

import "github.com/accelsim/scratchplan/core"

const defaultScratchpadCount = 3

type config struct {
	spmCapacity int64
	k           int
	tile        func(core.OperatorID) error
}

func defaultConfig() config {
	return config{k: defaultScratchpadCount}
}

// PlanOption configures a planning pass.
type PlanOption func(*config)

// WithSpmCapacity sets the per-scratchpad byte capacity. Required: there is
// no safe default since this is a backend-provided constant.
func WithSpmCapacity(bytes int64) PlanOption {
	return func(c *config) { c.spmCapacity = bytes }
}

// WithScratchpadCount sets K, the number of scratchpads (default 3: two
// input pads and one output pad).
func WithScratchpadCount(k int) PlanOption {
	return func(c *config) { c.k = k }
}

// WithTileHook registers a callback invoked once per operator, in graph
// insertion order, before scheduling. Kernel tiling is an external
// collaborator; Run delegates to it without inspecting its effects. Skipped
// entirely by DryRun.
func WithTileHook(tile func(core.OperatorID) error) PlanOption {
	return func(c *config) { c.tile = tile }
}
