// Package world provides procedural floor generation and map management.
package world

import "fmt"

// TileKind is the closed set of tile variants.
type TileKind int

const (
	// KindWall is an impassable wall tile.
	KindWall TileKind = iota
	// KindFloor is a plain walkable floor tile.
	KindFloor
	// KindStairsDown leads to the next floor of the spire.
	KindStairsDown
	// KindTrap is a hidden hazard. Walkable; renders as floor until triggered.
	KindTrap
	// KindChest is a loot container placed inside a room. Blocks movement.
	KindChest
)

// String returns a human-readable kind name.
func (k TileKind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindFloor:
		return "floor"
	case KindStairsDown:
		return "stairs_down"
	case KindTrap:
		return "trap"
	case KindChest:
		return "chest"
	default:
		return "unknown"
	}
}

// Rune returns the kind's display character. Traps are drawn by the
// renderer as floor until they have been triggered or detected.
func (k TileKind) Rune() rune {
	switch k {
	case KindWall:
		return '#'
	case KindFloor:
		return '.'
	case KindStairsDown:
		return '>'
	case KindTrap:
		return '^'
	case KindChest:
		return '$'
	default:
		return '?'
	}
}

// Walkable returns true if an entity can stand on a tile of this kind.
func (k TileKind) Walkable() bool {
	return k == KindFloor || k == KindStairsDown || k == KindTrap
}

// Occupant is an entity standing on a tile. The world package only tracks
// the reference; entity behavior lives with the game systems.
type Occupant interface {
	GetName() string
}

// Item is a droppable object resting on a tile.
type Item interface {
	GetName() string
}

// TrapState is the mutable hazard data attached to a trap tile.
// Triggering is one-shot: a triggered trap is inert and renders as floor.
type TrapState struct {
	DefID     string // references a gamedata.TrapDef
	Damage    int    // damage already scaled for floor depth
	Triggered bool
}

// ChestState tags a chest tile with its loot tier. The actual loot table
// is resolved by the game layer when the chest is opened.
type ChestState struct {
	Tier   int
	Opened bool
}

// Tile is a single map cell. Position is fixed at creation and matches the
// tile's grid index; kind and the occupant/item slots mutate during
// generation and play.
type Tile struct {
	X, Y  int
	Kind  TileKind
	Trap  *TrapState  // non-nil iff Kind == KindTrap
	Chest *ChestState // non-nil iff Kind == KindChest

	occupant Occupant
	item     Item
}

// Walkable returns true if an entity can step onto this tile.
func (t *Tile) Walkable() bool {
	return t.Kind.Walkable()
}

// Occupant returns the entity on this tile, or nil.
func (t *Tile) Occupant() Occupant {
	return t.occupant
}

// SetOccupant places an entity on the tile. Placement is rejected if the
// tile is not walkable or already holds another entity.
func (t *Tile) SetOccupant(o Occupant) error {
	if !t.Walkable() {
		return fmt.Errorf("tile (%d,%d) is %s, not walkable", t.X, t.Y, t.Kind)
	}
	if t.occupant != nil {
		return fmt.Errorf("tile (%d,%d) is already occupied by %s", t.X, t.Y, t.occupant.GetName())
	}
	t.occupant = o
	return nil
}

// ClearOccupant removes the entity from the tile.
func (t *Tile) ClearOccupant() {
	t.occupant = nil
}

// Item returns the item resting on this tile, or nil.
func (t *Tile) Item() Item {
	return t.item
}

// SetItem drops an item on the tile. Rejected if the tile is not walkable
// or already holds an item.
func (t *Tile) SetItem(it Item) error {
	if !t.Walkable() {
		return fmt.Errorf("tile (%d,%d) is %s, cannot hold an item", t.X, t.Y, t.Kind)
	}
	if t.item != nil {
		return fmt.Errorf("tile (%d,%d) already holds %s", t.X, t.Y, t.item.GetName())
	}
	t.item = it
	return nil
}

// ClearItem removes the item from the tile.
func (t *Tile) ClearItem() {
	t.item = nil
}
