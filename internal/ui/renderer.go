package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/ascendant/internal/entity"
	"github.com/samdwyer/ascendant/internal/gamedata"
	"github.com/samdwyer/ascendant/internal/world"
)

// Renderer draws the floor, party and status lines to the screen.
type Renderer struct {
	screen *Screen
	traps  *gamedata.TrapRegistry
	chests *gamedata.ChestTierRegistry

	// ShowHidden reveals untriggered traps; used by the debug view.
	ShowHidden bool
}

// NewRenderer creates a renderer backed by the given screen and data
// registries (used for trap and chest colors).
func NewRenderer(screen *Screen, traps *gamedata.TrapRegistry, chests *gamedata.ChestTierRegistry) *Renderer {
	return &Renderer{
		screen: screen,
		traps:  traps,
		chests: chests,
	}
}

// Render draws the floor and the party on top of it.
func (r *Renderer) Render(floor *world.Floor, party *entity.Party) {
	r.screen.Clear()

	for y := 0; y < floor.Height; y++ {
		for x := 0; x < floor.Width; x++ {
			tile := floor.TileAt(x, y)
			ch, style := r.tileAppearance(tile)
			r.screen.SetContent(x, y, ch, style)
		}
	}

	partyStyle := tcell.StyleDefault.
		Foreground(tcell.ColorYellow).
		Bold(true)
	r.screen.SetContent(party.X, party.Y, party.Symbol, partyStyle)

	r.renderStatus(floor, party)
	r.screen.Show()
}

// tileAppearance returns the rune and style for a tile. Untriggered traps
// are indistinguishable from plain floor unless ShowHidden is set; a
// triggered trap is revealed, inert, in dim red.
func (r *Renderer) tileAppearance(tile *world.Tile) (rune, tcell.Style) {
	switch tile.Kind {
	case world.KindWall:
		return tile.Kind.Rune(), tcell.StyleDefault.Foreground(tcell.ColorDarkGray)

	case world.KindFloor:
		return tile.Kind.Rune(), tcell.StyleDefault.Foreground(tcell.ColorGray)

	case world.KindStairsDown:
		return tile.Kind.Rune(), tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)

	case world.KindTrap:
		if tile.Trap != nil && !tile.Trap.Triggered && !r.ShowHidden {
			return world.KindFloor.Rune(), tcell.StyleDefault.Foreground(tcell.ColorGray)
		}
		return r.trapGlyph(tile), tcell.StyleDefault.Foreground(tcell.ColorRed).Dim(true)

	case world.KindChest:
		return tile.Kind.Rune(), tcell.StyleDefault.Foreground(r.chestColor(tile))

	default:
		return tile.Kind.Rune(), tcell.StyleDefault
	}
}

// trapGlyph looks up the revealed trap's glyph from its definition.
func (r *Renderer) trapGlyph(tile *world.Tile) rune {
	if tile.Trap != nil {
		if def := r.traps.GetByID(tile.Trap.DefID); def != nil {
			return def.GlyphRune()
		}
	}
	return world.KindTrap.Rune()
}

// chestColor looks up the chest's tier color, falling back to white.
func (r *Renderer) chestColor(tile *world.Tile) tcell.Color {
	if tile.Chest != nil {
		if def := r.chests.GetByTier(tile.Chest.Tier); def != nil {
			if color, err := gamedata.ParseHexColor(def.Color); err == nil {
				return color
			}
		}
	}
	return tcell.ColorWhite
}

// renderStatus draws the depth/HP/seed line below the map.
func (r *Renderer) renderStatus(floor *world.Floor, party *entity.Party) {
	status := fmt.Sprintf("Depth %d  HP %d/%d  Seed %d", floor.Depth(), party.HP, party.MaxHP, floor.Seed)
	r.screen.Print(0, floor.Height+1, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

// RenderMessage displays a message on the line below the status bar.
func (r *Renderer) RenderMessage(floor *world.Floor, msg string) {
	// Pad to clear the previous message.
	width, _ := r.screen.Size()
	for len(msg) < width {
		msg += " "
	}
	r.screen.Print(0, floor.Height+2, msg, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	r.screen.Show()
}
