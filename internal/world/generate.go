package world

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/ascendant/internal/telemetry"
)

// Generate runs the full generation pipeline: grid init, room placement,
// corridor carving, connectivity validation, feature placement. The phases
// run synchronously against the floor's own rng, so the same seed always
// produces a bit-identical grid. Generate may be called again; it rebuilds
// the floor from scratch with the same result.
func (f *Floor) Generate(ctx context.Context) error {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "floor.generate")
	defer span.End()
	_ = ctx

	startTime := time.Now()

	f.reset()
	f.initGrid()

	if err := f.placeRooms(); err != nil {
		return err
	}
	f.connectRooms()

	if !f.FullyConnected() {
		return fmt.Errorf("%w: seed %d left unreachable rooms", ErrDisconnected, f.Seed)
	}

	f.placeStairs()
	f.placeTraps()
	f.placeChests()
	f.generated = true

	span.SetAttributes(
		attribute.Int("floor.width", f.Width),
		attribute.Int("floor.height", f.Height),
		attribute.Int("floor.depth", f.cfg.Depth),
		attribute.Int64("floor.seed", f.Seed),
		attribute.Int("floor.room_count", len(f.rooms)),
		attribute.Int("floor.trap_count", len(f.traps)),
		attribute.Int("floor.chest_count", len(f.chests)),
		attribute.Int64("floor.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return nil
}

// reset returns the floor to its pre-generation state and reseeds the rng
// so repeated Generate calls are idempotent.
func (f *Floor) reset() {
	f.rng = rand.New(rand.NewSource(f.Seed))
	f.rooms = nil
	f.traps = nil
	f.chests = nil
	f.stairs = Point{}
	f.spawn = Point{}
	f.generated = false
}

// initGrid allocates the tile grid with every tile a wall.
func (f *Floor) initGrid() {
	f.Tiles = make([][]Tile, f.Height)
	for y := range f.Tiles {
		f.Tiles[y] = make([]Tile, f.Width)
		for x := range f.Tiles[y] {
			f.Tiles[y][x] = Tile{X: x, Y: y, Kind: KindWall}
		}
	}
}

// placeRooms draws a target room count and proposes random rectangles until
// the target is met or the attempt budget runs out. Each accepted room is
// carved to floor immediately. Falling short of the configured minimum is a
// typed failure so callers can regenerate with another seed.
func (f *Floor) placeRooms() error {
	target := f.cfg.RoomCountMin + f.rng.Intn(f.cfg.RoomCountMax-f.cfg.RoomCountMin+1)

	attempts := 0
	for len(f.rooms) < target && attempts < maxPlacementAttempts {
		attempts++

		width := MinRoomSize + f.rng.Intn(MaxRoomSize-MinRoomSize+1)
		height := MinRoomSize + f.rng.Intn(MaxRoomSize-MinRoomSize+1)

		maxX := f.Width - width - EdgeBuffer
		maxY := f.Height - height - EdgeBuffer
		if maxX <= EdgeBuffer || maxY <= EdgeBuffer {
			continue
		}

		candidate := Room{
			X:      EdgeBuffer + f.rng.Intn(maxX-EdgeBuffer+1),
			Y:      EdgeBuffer + f.rng.Intn(maxY-EdgeBuffer+1),
			Width:  width,
			Height: height,
		}

		if f.anyRoomTooClose(candidate) {
			continue
		}

		f.rooms = append(f.rooms, candidate)
		f.carveRoom(candidate)
	}

	if len(f.rooms) < f.cfg.RoomCountMin {
		return fmt.Errorf("%w: placed %d of at least %d rooms in %d attempts",
			ErrRoomPlacement, len(f.rooms), f.cfg.RoomCountMin, maxPlacementAttempts)
	}

	// The first room's center is the floor entry; stairs and traps keep off it.
	cx, cy := f.rooms[0].Center()
	f.spawn = Point{cx, cy}

	return nil
}

// anyRoomTooClose returns true if the candidate violates the RoomGap buffer
// against any placed room.
func (f *Floor) anyRoomTooClose(candidate Room) bool {
	for _, room := range f.rooms {
		if candidate.TooClose(room, RoomGap) {
			return true
		}
	}
	return false
}

// carveRoom sets all tiles within the room to floor.
func (f *Floor) carveRoom(room Room) {
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			f.Tiles[y][x].Kind = KindFloor
		}
	}
}

// connectRooms joins each room to the previous one with an L-shaped,
// 1-tile-wide corridor between their centers, producing a path graph over
// the rooms. Corridors may cross rooms or each other; overlapping tiles are
// simply floor.
func (f *Floor) connectRooms() {
	for i := 1; i < len(f.rooms); i++ {
		x1, y1 := f.rooms[i-1].Center()
		x2, y2 := f.rooms[i].Center()

		if f.rng.Intn(2) == 0 {
			f.carveHorizontalTunnel(x1, x2, y1)
			f.carveVerticalTunnel(y1, y2, x2)
		} else {
			f.carveVerticalTunnel(y1, y2, x1)
			f.carveHorizontalTunnel(x1, x2, y2)
		}
	}
}

// carveHorizontalTunnel carves a horizontal tunnel, inclusive of both ends.
func (f *Floor) carveHorizontalTunnel(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if f.InBounds(x, y) && f.Tiles[y][x].Kind == KindWall {
			f.Tiles[y][x].Kind = KindFloor
		}
	}
}

// carveVerticalTunnel carves a vertical tunnel, inclusive of both ends.
func (f *Floor) carveVerticalTunnel(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if f.InBounds(x, y) && f.Tiles[y][x].Kind == KindWall {
			f.Tiles[y][x].Kind = KindFloor
		}
	}
}

// placeStairs marks a single stairs-down tile inside a random room,
// preferring the room's center. Room interiors only, so stairs never land
// in a corridor, and the spawn tile is excluded.
func (f *Floor) placeStairs() {
	if len(f.rooms) == 0 {
		return
	}

	room := f.rooms[f.rng.Intn(len(f.rooms))]
	cx, cy := room.Center()

	if f.Tiles[cy][cx].Kind == KindFloor && (Point{cx, cy}) != f.spawn {
		f.setStairs(cx, cy)
		return
	}

	candidates := f.roomFloorTiles(room)
	if len(candidates) == 0 {
		// Center was the spawn or otherwise taken and the room has no other
		// floor tile; fall back to any room tile on the whole floor.
		for _, r := range f.rooms {
			candidates = append(candidates, f.roomFloorTiles(r)...)
		}
	}
	if len(candidates) == 0 {
		return
	}

	p := candidates[f.rng.Intn(len(candidates))]
	f.setStairs(p.X, p.Y)
}

func (f *Floor) setStairs(x, y int) {
	f.Tiles[y][x].Kind = KindStairsDown
	f.stairs = Point{x, y}
}

// roomFloorTiles returns the room's plain floor tiles in row-major order,
// excluding the spawn tile.
func (f *Floor) roomFloorTiles(room Room) []Point {
	var tiles []Point
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			if f.Tiles[y][x].Kind != KindFloor {
				continue
			}
			if (Point{x, y}) == f.spawn {
				continue
			}
			tiles = append(tiles, Point{x, y})
		}
	}
	return tiles
}

// placeTraps converts a density-determined share of eligible floor tiles
// into hidden traps. Stairs, chests and the spawn tile are never eligible.
// Trap kind is a weighted draw from the registry; damage scales with depth.
func (f *Floor) placeTraps() {
	if f.cfg.TrapDensity <= 0 {
		return
	}

	eligible := f.eligibleTrapTiles()
	count := int(math.Round(f.cfg.TrapDensity * float64(len(eligible))))
	if count > len(eligible) {
		count = len(eligible)
	}
	if count <= 0 {
		return
	}

	for _, idx := range f.rng.Perm(len(eligible))[:count] {
		p := eligible[idx]
		def := f.cfg.Traps.PickRandom(f.rng)
		if def == nil {
			return
		}

		tile := &f.Tiles[p.Y][p.X]
		tile.Kind = KindTrap
		tile.Trap = &TrapState{
			DefID:  def.ID,
			Damage: def.ScaledDamage(f.cfg.Depth),
		}
		f.traps = append(f.traps, p)
	}
}

// eligibleTrapTiles returns every plain floor tile except the spawn tile,
// in row-major order.
func (f *Floor) eligibleTrapTiles() []Point {
	var tiles []Point
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			if f.Tiles[y][x].Kind != KindFloor {
				continue
			}
			if (Point{x, y}) == f.spawn {
				continue
			}
			tiles = append(tiles, Point{x, y})
		}
	}
	return tiles
}

// placeChests places the configured number of chests on plain floor tiles
// inside rooms, tagged with a depth-weighted loot tier. Running out of free
// room tiles skips the remaining chests rather than failing the floor.
func (f *Floor) placeChests() {
	for i := 0; i < f.cfg.ChestCount; i++ {
		candidates := f.chestCandidateTiles()
		if len(candidates) == 0 {
			return
		}

		p := candidates[f.rng.Intn(len(candidates))]
		tile := &f.Tiles[p.Y][p.X]
		tile.Kind = KindChest
		tile.Chest = &ChestState{
			Tier: f.cfg.Chests.TierForDepth(f.rng, f.cfg.Depth),
		}
		f.chests = append(f.chests, p)
	}
}

// chestCandidateTiles returns plain floor tiles inside rooms, excluding the
// spawn tile, in row-major order. Stairs and traps already carry a
// different kind, so a chest can never stack on them.
func (f *Floor) chestCandidateTiles() []Point {
	var tiles []Point
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			if f.Tiles[y][x].Kind != KindFloor {
				continue
			}
			if (Point{x, y}) == f.spawn {
				continue
			}
			if f.RoomIndexAt(x, y) < 0 {
				continue
			}
			tiles = append(tiles, Point{x, y})
		}
	}
	return tiles
}
