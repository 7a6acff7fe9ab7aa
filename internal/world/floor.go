package world

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/samdwyer/ascendant/internal/gamedata"
)

const (
	// Default floor dimensions
	DefaultWidth  = 20
	DefaultHeight = 20

	// Room placement parameters
	DefaultMinRooms = 5  // Lower bound of the room count draw
	DefaultMaxRooms = 10 // Upper bound of the room count draw
	MinRoomSize     = 3  // Minimum room dimension
	MaxRoomSize     = 8  // Maximum room dimension

	// EdgeBuffer is the minimum distance between any room and the grid edge.
	EdgeBuffer = 1

	// RoomGap is the minimum wall gap required between two rooms. A gap of
	// zero lets rooms share a wall edge and appear merged on screen.
	RoomGap = 1

	// maxPlacementAttempts bounds the rejection-sampling loop so room
	// placement always terminates.
	maxPlacementAttempts = 100
)

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// GenConfig carries the tunable generation parameters for one floor.
// The zero value of any field falls back to a sensible default.
type GenConfig struct {
	Depth        int     // 1-based floor depth, scales trap damage and chest tiers
	RoomCountMin int     // Minimum rooms to place (default 5)
	RoomCountMax int     // Maximum rooms to place (default 10)
	TrapDensity  float64 // Fraction of eligible floor tiles that become traps
	ChestCount   int     // Number of chests to place

	Traps  *gamedata.TrapRegistry      // Trap kinds and weights (default: embedded data)
	Chests *gamedata.ChestTierRegistry // Loot tiers and depth weighting (default: embedded data)
}

// DefaultGenConfig returns the generation parameters used for a standard
// floor at the given depth.
func DefaultGenConfig(depth int) GenConfig {
	return GenConfig{
		Depth:        depth,
		RoomCountMin: DefaultMinRooms,
		RoomCountMax: DefaultMaxRooms,
		TrapDensity:  trapDensityForDepth(depth),
		ChestCount:   chestCountForDepth(depth),
	}
}

// trapDensityForDepth ramps trap coverage from 2% toward 5% as the party
// descends.
func trapDensityForDepth(depth int) float64 {
	d := 0.02 + float64(depth-1)*0.002
	if d > 0.05 {
		d = 0.05
	}
	return d
}

// chestCountForDepth grants an extra chest every five depths.
func chestCountForDepth(depth int) int {
	return 1 + (depth-1)/5
}

// Floor owns the full tile grid for one dungeon level along with the rooms,
// stairs, traps and chests placed on it. A Floor is constructed with a seed
// and populated by Generate; afterwards it is handed read-only to the
// renderer and game systems. Only tile occupancy and one-shot trap
// triggering mutate it during play.
type Floor struct {
	ID     uuid.UUID
	Width  int
	Height int
	Seed   int64

	Tiles [][]Tile // indexed [y][x]

	cfg    GenConfig
	rng    *rand.Rand
	rooms  []Room
	stairs Point
	spawn  Point
	traps  []Point
	chests []Point

	generated bool
}

// NewFloor creates an ungenerated floor. Configuration problems are
// reported here, before any generation work happens.
func NewFloor(width, height int, seed int64, cfg GenConfig) (*Floor, error) {
	if cfg.RoomCountMin == 0 && cfg.RoomCountMax == 0 {
		cfg.RoomCountMin = DefaultMinRooms
		cfg.RoomCountMax = DefaultMaxRooms
	}
	if cfg.Depth < 1 {
		cfg.Depth = 1
	}
	if cfg.Traps == nil {
		cfg.Traps = gamedata.MustLoadTrapRegistry()
	}
	if cfg.Chests == nil {
		cfg.Chests = gamedata.MustLoadChestTierRegistry()
	}

	minDim := MinRoomSize + 2*EdgeBuffer
	if width < minDim || height < minDim {
		return nil, fmt.Errorf("%w: %dx%d grid cannot fit a %dx%d room with a %d-tile edge buffer",
			ErrConfig, width, height, MinRoomSize, MinRoomSize, EdgeBuffer)
	}
	if cfg.RoomCountMin < 1 || cfg.RoomCountMin > cfg.RoomCountMax {
		return nil, fmt.Errorf("%w: room count range [%d,%d] is invalid",
			ErrConfig, cfg.RoomCountMin, cfg.RoomCountMax)
	}
	if cfg.TrapDensity < 0 || cfg.TrapDensity > 1 {
		return nil, fmt.Errorf("%w: trap density %.3f outside [0,1]", ErrConfig, cfg.TrapDensity)
	}
	if cfg.ChestCount < 0 {
		return nil, fmt.Errorf("%w: chest count %d is negative", ErrConfig, cfg.ChestCount)
	}

	return &Floor{
		ID:     uuid.New(),
		Width:  width,
		Height: height,
		Seed:   seed,
		cfg:    cfg,
	}, nil
}

// Generated returns true once Generate has completed successfully.
func (f *Floor) Generated() bool {
	return f.generated
}

// Depth returns the floor's 1-based depth.
func (f *Floor) Depth() int {
	return f.cfg.Depth
}

// InBounds returns true if the position lies on the grid.
func (f *Floor) InBounds(x, y int) bool {
	return x >= 0 && x < f.Width && y >= 0 && y < f.Height
}

// TileAt returns the tile at the given position, or nil if out of bounds.
func (f *Floor) TileAt(x, y int) *Tile {
	if !f.InBounds(x, y) {
		return nil
	}
	return &f.Tiles[y][x]
}

// IsWalkable returns true if the given position can be walked on.
func (f *Floor) IsWalkable(x, y int) bool {
	if !f.InBounds(x, y) {
		return false
	}
	return f.Tiles[y][x].Walkable()
}

// Rooms returns the placed rooms in placement order.
func (f *Floor) Rooms() []Room {
	out := make([]Room, len(f.rooms))
	copy(out, f.rooms)
	return out
}

// RoomIndexAt returns the index of the room containing the position, or -1
// if the position is not inside any room.
func (f *Floor) RoomIndexAt(x, y int) int {
	for i, room := range f.rooms {
		if room.Contains(x, y) {
			return i
		}
	}
	return -1
}

// StairsPosition returns the stairs-down tile position.
func (f *Floor) StairsPosition() Point {
	return f.stairs
}

// SpawnPoint returns the floor's entry tile (the first room's center).
func (f *Floor) SpawnPoint() Point {
	return f.spawn
}

// TrapPositions returns the trap tile positions in placement order.
func (f *Floor) TrapPositions() []Point {
	out := make([]Point, len(f.traps))
	copy(out, f.traps)
	return out
}

// ChestPositions returns the chest tile positions in placement order.
func (f *Floor) ChestPositions() []Point {
	out := make([]Point, len(f.chests))
	copy(out, f.chests)
	return out
}

// Reachable runs a breadth-first search over walkable tiles from the given
// start position and reports which tiles were visited. Exposed for external
// pathfinding as well as the generator's own connectivity validation.
func (f *Floor) Reachable(start Point) [][]bool {
	visited := make([][]bool, f.Height)
	for y := range visited {
		visited[y] = make([]bool, f.Width)
	}
	if !f.IsWalkable(start.X, start.Y) {
		return visited
	}

	// Iterative worklist; no recursion so large grids cannot blow the stack.
	queue := []Point{start}
	visited[start.Y][start.X] = true

	dirs := []Point{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range dirs {
			nx, ny := cur.X+d.X, cur.Y+d.Y
			if !f.InBounds(nx, ny) || visited[ny][nx] {
				continue
			}
			if f.Tiles[ny][nx].Walkable() {
				visited[ny][nx] = true
				queue = append(queue, Point{nx, ny})
			}
		}
	}
	return visited
}

// FullyConnected reports whether every room is reachable from the first
// room via walkable tiles. A false result after generation indicates a
// corridor connector defect, not a recoverable runtime condition.
func (f *Floor) FullyConnected() bool {
	if len(f.rooms) < 2 {
		return true
	}

	cx, cy := f.rooms[0].Center()
	visited := f.Reachable(Point{cx, cy})

	for _, room := range f.rooms {
		if !roomVisited(room, visited) {
			return false
		}
	}
	return true
}

// roomVisited returns true if at least one of the room's tiles was reached.
func roomVisited(room Room, visited [][]bool) bool {
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			if visited[y][x] {
				return true
			}
		}
	}
	return false
}
