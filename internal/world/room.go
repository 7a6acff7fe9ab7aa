package world

// Room represents a rectangular room on a floor. Rooms are immutable once
// placed.
type Room struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions of the room
}

// Center returns the center coordinates of the room.
func (r Room) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Contains returns true if the given point is inside the room.
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersects returns true if this room overlaps with another room.
func (r Room) Intersects(other Room) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// TooClose returns true if the other room overlaps this one after this room
// is grown by gap tiles on every side. With gap >= 1 this also rejects rooms
// that merely share a wall edge, which on screen look like one merged room.
func (r Room) TooClose(other Room, gap int) bool {
	grown := Room{
		X:      r.X - gap,
		Y:      r.Y - gap,
		Width:  r.Width + 2*gap,
		Height: r.Height + 2*gap,
	}
	return grown.Intersects(other)
}
