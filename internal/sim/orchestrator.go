// Package sim runs the tick-synchronous fleet simulation: a coordination
// phase every N ticks (broadcast, fetch, priority, conflict detection,
// replan), followed every tick by a movement phase. See spec.md §4.6.
package sim

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/elektrokombinacika/mapf-het-research/internal/algo"
	"github.com/elektrokombinacika/mapf-het-research/internal/bridge"
	"github.com/elektrokombinacika/mapf-het-research/internal/core"
	"github.com/elektrokombinacika/mapf-het-research/internal/simerr"
)

// Config holds the parameters of one orchestrator run.
type Config struct {
	// CoordinationInterval is the tick modulus at which the coordination
	// phase runs; the reference implementation fixes this at 5.
	CoordinationInterval int

	// MaxReplanAttempts bounds the dead-end recovery loop within one
	// coordination phase before the run is declared a consensus failure.
	MaxReplanAttempts int

	// ForecastLength truncates each agent's broadcast path to this many
	// cells (see core.Agent.Broadcast); -1 broadcasts the full path.
	ForecastLength float64

	// MaxTicks bounds a run that never converges (e.g. an oscillating
	// dead-end rotation); Run returns simerr.ErrConsensusFailure if hit.
	MaxTicks int
}

// DefaultConfig mirrors the reference implementation's fixed constants.
func DefaultConfig() Config {
	return Config{
		CoordinationInterval: 5,
		MaxReplanAttempts:    3,
		ForecastLength:       -1,
		MaxTicks:             1_000_000,
	}
}

// Orchestrator drives a Fleet through ticks per spec.md §4.6.
type Orchestrator struct {
	cfg   Config
	fleet *core.Fleet
	bus   *bridge.Bus
	log   zerolog.Logger
	tick  int
}

// NewOrchestrator builds an orchestrator for fleet, logging through log.
func NewOrchestrator(fleet *core.Fleet, cfg Config, log zerolog.Logger) *Orchestrator {
	for _, a := range fleet.Agents {
		a.ForecastLength = cfg.ForecastLength
	}
	return &Orchestrator{cfg: cfg, fleet: fleet, bus: bridge.NewBus(fleet.Agents), log: log}
}

// Tick returns the current simulation tick.
func (o *Orchestrator) Tick() int { return o.tick }

// Run steps the simulation until every agent has arrived, ctx is
// cancelled, or cfg.MaxTicks is exceeded (simerr.ErrConsensusFailure).
// A coordination-phase consensus failure also returns
// simerr.ErrConsensusFailure; an invariant breach returns
// simerr.ErrInvariantViolation. Both are terminal: the run does not
// retry past either.
func (o *Orchestrator) Run(ctx context.Context) error {
	for !o.fleet.AllArrived() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if o.tick >= o.cfg.MaxTicks {
			return fmt.Errorf("orchestrator: %w: exceeded %d ticks", simerr.ErrConsensusFailure, o.cfg.MaxTicks)
		}

		if err := o.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step advances the simulation by a single tick: a coordination phase
// when the tick is a multiple of CoordinationInterval, followed by a
// movement phase for every agent that has not yet arrived.
func (o *Orchestrator) Step() error {
	if o.tick%o.cfg.CoordinationInterval == 0 {
		if err := o.coordinate(); err != nil {
			return err
		}
	}

	for _, a := range o.fleet.Agents {
		if a.Arrived {
			continue
		}
		a.Move()
		if err := core.CheckMoveInvariants(a); err != nil {
			return fmt.Errorf("tick %d: %w", o.tick, err)
		}
	}

	o.tick++
	return nil
}

// coordinate runs broadcast/fetch/priority/conflict-detect/replan, the
// subroutine executed every CoordinationInterval ticks.
func (o *Orchestrator) coordinate() error {
	agents := o.fleet.Agents

	o.bus.PublishAll()
	o.bus.DeliverAll(false)

	for _, a := range agents {
		algo.CheckMaxEta(a)
	}
	o.bus.DeliverAll(false)

	collision := false
	for _, a := range agents {
		coll, _ := algo.WillCollide(a)
		collision = collision || coll
	}
	if !collision {
		return nil
	}

	okay := make(map[core.AgentID]bool, len(agents))
	for attempt := 0; attempt < o.cfg.MaxReplanAttempts; attempt++ {
		for _, a := range agents {
			if a.Arrived {
				okay[a.ID] = true
				continue
			}
			err := algo.ModifyPath(a, o.fleet.Grid, len(agents))
			if err != nil && !errors.Is(err, simerr.ErrPlannerDeadEnd) {
				return err
			}
			okay[a.ID] = err == nil
			o.bus.DeliverFrom(a.ID, false)
		}

		allOkay := true
		for _, a := range agents {
			if !okay[a.ID] {
				allOkay = false
				break
			}
		}
		if allOkay {
			return nil
		}

		o.log.Warn().Int("tick", o.tick).Int("attempt", attempt+1).Msg("dead end occurred, forcing priority rebroadcast")
		o.bus.DeliverStuckForced(okay)
	}

	return fmt.Errorf("tick %d: %w", o.tick, simerr.ErrConsensusFailure)
}
