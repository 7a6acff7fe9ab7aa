package world

import "testing"

type fakeEntity struct{ name string }

func (e *fakeEntity) GetName() string { return e.name }

type fakeItem struct{ name string }

func (i *fakeItem) GetName() string { return i.name }

func TestTileKindWalkability(t *testing.T) {
	walkable := map[TileKind]bool{
		KindWall:       false,
		KindFloor:      true,
		KindStairsDown: true,
		KindTrap:       true,
		KindChest:      false,
	}
	for kind, want := range walkable {
		if kind.Walkable() != want {
			t.Errorf("%s.Walkable() = %v, want %v", kind, kind.Walkable(), want)
		}
	}
}

func TestTileOccupancy(t *testing.T) {
	tile := &Tile{X: 3, Y: 4, Kind: KindFloor}
	first := &fakeEntity{name: "party"}
	second := &fakeEntity{name: "goblin"}

	if err := tile.SetOccupant(first); err != nil {
		t.Fatalf("placing on empty floor tile: %v", err)
	}
	if tile.Occupant() != first {
		t.Error("Occupant() did not return the placed entity")
	}

	// Double occupancy must be rejected.
	if err := tile.SetOccupant(second); err == nil {
		t.Error("expected error placing onto an occupied tile")
	}

	tile.ClearOccupant()
	if tile.Occupant() != nil {
		t.Error("ClearOccupant left an occupant behind")
	}
	if err := tile.SetOccupant(second); err != nil {
		t.Errorf("placing after clear: %v", err)
	}
}

func TestTileOccupancyRejectsWalls(t *testing.T) {
	wall := &Tile{X: 0, Y: 0, Kind: KindWall}
	if err := wall.SetOccupant(&fakeEntity{name: "party"}); err == nil {
		t.Error("expected error placing an entity on a wall")
	}

	chest := &Tile{X: 1, Y: 0, Kind: KindChest}
	if err := chest.SetOccupant(&fakeEntity{name: "party"}); err == nil {
		t.Error("expected error placing an entity on a chest")
	}
}

func TestTileItemSlot(t *testing.T) {
	tile := &Tile{X: 2, Y: 2, Kind: KindFloor}

	if err := tile.SetItem(&fakeItem{name: "potion"}); err != nil {
		t.Fatalf("dropping item on floor tile: %v", err)
	}
	if err := tile.SetItem(&fakeItem{name: "sword"}); err == nil {
		t.Error("expected error dropping a second item")
	}

	tile.ClearItem()
	if tile.Item() != nil {
		t.Error("ClearItem left an item behind")
	}

	wall := &Tile{X: 0, Y: 0, Kind: KindWall}
	if err := wall.SetItem(&fakeItem{name: "potion"}); err == nil {
		t.Error("expected error dropping an item on a wall")
	}
}

func TestTileKindStrings(t *testing.T) {
	cases := []struct {
		kind TileKind
		name string
		r    rune
	}{
		{KindWall, "wall", '#'},
		{KindFloor, "floor", '.'},
		{KindStairsDown, "stairs_down", '>'},
		{KindTrap, "trap", '^'},
		{KindChest, "chest", '$'},
	}
	for _, c := range cases {
		if c.kind.String() != c.name {
			t.Errorf("String() = %q, want %q", c.kind.String(), c.name)
		}
		if c.kind.Rune() != c.r {
			t.Errorf("Rune() = %q, want %q", c.kind.Rune(), c.r)
		}
	}
}
