package game

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/ascendant/internal/entity"
	"github.com/samdwyer/ascendant/internal/gamedata"
	"github.com/samdwyer/ascendant/internal/hazard"
	"github.com/samdwyer/ascendant/internal/telemetry"
	"github.com/samdwyer/ascendant/internal/ui"
	"github.com/samdwyer/ascendant/internal/world"
)

// Game holds the entire game state.
type Game struct {
	screen    *ui.Screen
	renderer  *ui.Renderer
	generator *Generator
	hazards   *hazard.Resolver
	chests    *gamedata.ChestTierRegistry

	floor   *world.Floor
	party   *entity.Party
	depth   int
	state   State
	running bool
}

// New creates a new game instance.
func New(cfg Config) (*Game, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	traps := gamedata.MustLoadTrapRegistry()
	chests := gamedata.MustLoadChestTierRegistry()

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		screen:    screen,
		renderer:  ui.NewRenderer(screen, traps, chests),
		generator: NewGenerator(cfg, traps, chests),
		hazards:   hazard.NewResolver(traps),
		chests:    chests,
		depth:     cfg.Depth,
		state:     StateExplore,
		running:   true,
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	ctx, initSpan := tracer.Start(ctx, "game.init")
	err := g.descendTo(ctx, g.depth)
	if err != nil {
		initSpan.End()
		g.screen.Close()
		return err
	}

	initSpan.SetAttributes(
		attribute.Int("floor.rooms", len(g.floor.Rooms())),
		attribute.Int("party.start_x", g.party.X),
		attribute.Int("party.start_y", g.party.Y),
	)
	initSpan.End()

	for g.running {
		g.renderer.Render(g.floor, g.party)
		g.handleInput(ctx)
	}

	g.screen.Close()
	return nil
}

// descendTo generates the floor at the given depth and places the party on
// its spawn point.
func (g *Game) descendTo(ctx context.Context, depth int) error {
	floor, err := g.generator.FloorAt(ctx, depth)
	if err != nil {
		return err
	}

	spawn := floor.SpawnPoint()
	if g.party == nil {
		g.party = entity.NewParty(spawn.X, spawn.Y)
	} else {
		g.party.X, g.party.Y = spawn.X, spawn.Y
	}
	if err := floor.TileAt(spawn.X, spawn.Y).SetOccupant(g.party); err != nil {
		return err
	}

	g.floor = floor
	g.depth = depth
	return nil
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.tryMove(ctx, 0, -1)
	case tcell.KeyDown:
		g.tryMove(ctx, 0, 1)
	case tcell.KeyLeft:
		g.tryMove(ctx, -1, 0)
	case tcell.KeyRight:
		g.tryMove(ctx, 1, 0)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		}
	}
}

// tryMove attempts to move the party by the given delta, resolving whatever
// the destination tile holds: chests are opened by bumping into them, traps
// trigger on entry, stairs descend to the next floor.
func (g *Game) tryMove(ctx context.Context, dx, dy int) {
	if g.state != StateExplore {
		return
	}

	newX := g.party.X + dx
	newY := g.party.Y + dy

	dest := g.floor.TileAt(newX, newY)
	if dest == nil {
		return
	}

	if dest.Kind == world.KindChest {
		g.openChest(dest)
		return
	}
	if !dest.Walkable() {
		return
	}

	from := g.floor.TileAt(g.party.X, g.party.Y)
	from.ClearOccupant()
	if err := dest.SetOccupant(g.party); err != nil {
		// Destination is blocked after all; stay put.
		_ = from.SetOccupant(g.party)
		return
	}
	g.party.Move(dx, dy)

	g.endTurn(dest)

	if g.party.IsAlive() && dest.Kind == world.KindStairsDown {
		if err := g.descendTo(ctx, g.depth+1); err != nil {
			g.renderer.RenderMessage(g.floor, fmt.Sprintf("The way down is blocked: %v", err))
		} else {
			g.renderer.RenderMessage(g.floor, fmt.Sprintf("The party descends to depth %d.", g.depth))
		}
	}
}

// endTurn applies per-turn effects after a successful move: status ticks
// and the trap on the destination tile, if any.
func (g *Game) endTurn(dest *world.Tile) {
	for _, s := range g.party.TickStatuses() {
		if s.Effect == "poisoned" {
			g.party.TakeDamage(1)
		}
	}

	if result := g.hazards.Trigger(dest, g.party); result != nil {
		g.renderer.RenderMessage(g.floor, result.Message)
	}

	if !g.party.IsAlive() {
		g.state = StateDead
		g.renderer.RenderMessage(g.floor, "The party has fallen. Press q to quit.")
	}
}

// openChest marks the chest opened and reports its tier. Loot resolution
// is left to a future inventory system.
func (g *Game) openChest(tile *world.Tile) {
	if tile.Chest == nil || tile.Chest.Opened {
		return
	}
	tile.Chest.Opened = true

	name := "a chest"
	if def := g.chests.GetByTier(tile.Chest.Tier); def != nil {
		name = def.Name
	}
	g.renderer.RenderMessage(g.floor, fmt.Sprintf("The party pries open %s.", name))
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
