package game

import (
	"context"
	"fmt"

	"github.com/cenkalti/backoff/v5"

	"github.com/samdwyer/ascendant/internal/gamedata"
	"github.com/samdwyer/ascendant/internal/world"
)

// Generator builds floors for a run. Recoverable generation failures
// (placement exhaustion, a connectivity violation) are retried with a
// nudged seed up to the configured retry bound; configuration errors are
// permanent and surface immediately.
type Generator struct {
	cfg    Config
	traps  *gamedata.TrapRegistry
	chests *gamedata.ChestTierRegistry
}

// NewGenerator creates a floor generator for the given configuration.
func NewGenerator(cfg Config, traps *gamedata.TrapRegistry, chests *gamedata.ChestTierRegistry) *Generator {
	return &Generator{
		cfg:    cfg,
		traps:  traps,
		chests: chests,
	}
}

// FloorAt generates the floor for the given depth.
func (g *Generator) FloorAt(ctx context.Context, depth int) (*world.Floor, error) {
	base := floorSeed(g.cfg.Seed, depth)

	attempt := int64(0)
	op := func() (*world.Floor, error) {
		seed := base + attempt
		attempt++

		gen := world.DefaultGenConfig(depth)
		gen.Traps = g.traps
		gen.Chests = g.chests
		if g.cfg.TrapDensity > 0 {
			gen.TrapDensity = g.cfg.TrapDensity
		}
		if g.cfg.ChestCount > 0 {
			gen.ChestCount = g.cfg.ChestCount
		}

		floor, err := world.NewFloor(g.cfg.Width, g.cfg.Height, seed, gen)
		if err != nil {
			// Bad configuration never fixes itself; don't retry.
			return nil, backoff.Permanent(err)
		}
		if err := floor.Generate(ctx); err != nil {
			return nil, err
		}
		return floor, nil
	}

	floor, err := backoff.Retry(ctx, op,
		backoff.WithBackOff(&backoff.ZeroBackOff{}),
		backoff.WithMaxTries(g.cfg.MaxGenRetries),
	)
	if err != nil {
		return nil, fmt.Errorf("generate floor at depth %d: %w", depth, err)
	}
	return floor, nil
}

// floorSeed derives the per-depth seed from the run's base seed, so every
// floor of a run is distinct but the whole run replays from one seed.
func floorSeed(base int64, depth int) int64 {
	return base + int64(depth)*1000
}
