package planner

import (
	"fmt"

	"github.com/accelsim/scratchplan/core"
	"github.com/accelsim/scratchplan/liveness"
	"github.com/accelsim/scratchplan/mapper"
	"github.com/accelsim/scratchplan/matrix"
	"github.com/accelsim/scratchplan/pin"
	"github.com/accelsim/scratchplan/schedule"
)

// Plan is the result of one planning pass: a schedule, a liveness profile,
// and a validated pin table. It is owned exclusively by the caller that
// built it; a Plan is not safe for concurrent reuse, though independent
// Plans over disjoint graphs share no state and are safe to use concurrently.
type Plan struct {
	g     *core.Graph
	sched *schedule.Schedule
	live  liveness.Map
	table *pin.Table

	spmCapacity int64
	k           int
}

// Run performs, in order: the tile hook (if configured), Scheduler,
// LivenessBuilder, PinPlanner, and both phases of PinValidator.
func Run(g *core.Graph, opts ...PlanOption) (*Plan, error) {
	return run(g, opts, true)
}

// DryRun performs the same scheduling, liveness, and pinning passes as Run,
// but never invokes the tile hook, since it executes no operator kernel.
func DryRun(g *core.Graph, opts ...PlanOption) (*Plan, error) {
	return run(g, opts, false)
}

func run(g *core.Graph, opts []PlanOption, invokeTile bool) (*Plan, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.spmCapacity <= 0 {
		return nil, ErrMissingSpmCapacity
	}

	if invokeTile && cfg.tile != nil {
		for _, id := range g.Operators() {
			if err := cfg.tile(id); err != nil {
				return nil, fmt.Errorf("planner: tile hook: %w", err)
			}
		}
	}

	sched, err := schedule.Build(g)
	if err != nil {
		return nil, err
	}

	live, err := liveness.Build(sched, g)
	if err != nil {
		return nil, err
	}

	table, err := pin.Plan(sched, g)
	if err != nil {
		return nil, err
	}

	table, err = pin.Validate(table, sched, g, live, cfg.spmCapacity, cfg.k)
	if err != nil {
		return nil, err
	}

	return &Plan{
		g:           g,
		sched:       sched,
		live:        live,
		table:       table,
		spmCapacity: cfg.spmCapacity,
		k:           cfg.k,
	}, nil
}

// GetSchedule returns the schedule produced by this planning pass.
func (p *Plan) GetSchedule() *schedule.Schedule {
	return p.sched
}

// GetLiveness returns the liveness record for tensor t.
func (p *Plan) GetLiveness(t core.TensorID) (*liveness.Record, error) {
	return p.live.Get(t)
}

// GetPinMap returns the tensors pinned at step, in insertion order.
func (p *Plan) GetPinMap(step int) []core.TensorID {
	return p.table.StepTensors(step)
}

// GetPinMapByName returns the tensors pinned at the step executing opName.
func (p *Plan) GetPinMapByName(opName string) []core.TensorID {
	return p.table.OpTensors(opName)
}

// EmitArtifacts builds the ILP matrix/size artifacts from this plan and
// writes them to dir, which must already exist and be writable.
func (p *Plan) EmitArtifacts(dir string) error {
	art, err := matrix.Build(p.sched, p.g, p.spmCapacity)
	if err != nil {
		return err
	}
	return art.WriteTo(dir)
}

// RunRecursiveMapper runs the in-process backtracking scratchpad mapper as
// an alternative finisher for callers that will not invoke an external
// solver, returning its assignment and the achieved pin count.
func (p *Plan) RunRecursiveMapper() (*mapper.Assignment, int, error) {
	return mapper.FindOptimalMapping(p.sched, p.g, p.spmCapacity, p.k)
}
