package components

import (
	"fmt"
	"math/rand"
)

// Coord is a tile position on the world grid. Valid instances only come out
// of Bounds methods, so any Coord in hand is inside the grid it was made for.
// Copied by value, never mutated in place.
type Coord struct {
	X, Y int
}

// String renders the coordinate as "(x, y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// ManhattanDist returns |dx| + |dy| between two coordinates.
func (c Coord) ManhattanDist(o Coord) int {
	dx := c.X - o.X
	if dx < 0 {
		dx = -dx
	}
	dy := c.Y - o.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Bounds is the world extent in tiles. Coordinates are valid in
// [0, Width) x [0, Height).
type Bounds struct {
	Width, Height int
}

// Contains reports whether (x, y) is inside the grid.
func (b Bounds) Contains(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// At constructs a coordinate, or ok=false if (x, y) is outside the grid.
func (b Bounds) At(x, y int) (Coord, bool) {
	if !b.Contains(x, y) {
		return Coord{}, false
	}
	return Coord{X: x, Y: y}, true
}

// Random returns a uniformly sampled coordinate inside the grid.
func (b Bounds) Random(rng *rand.Rand) Coord {
	return Coord{X: rng.Intn(b.Width), Y: rng.Intn(b.Height)}
}

// Center returns the grid midpoint.
func (b Bounds) Center() Coord {
	return Coord{X: b.Width / 2, Y: b.Height / 2}
}

// Tiles returns the total tile count.
func (b Bounds) Tiles() int {
	return b.Width * b.Height
}

// CheckedMove returns the coordinate shifted by (dx, dy), or ok=false if the
// result would leave the grid. Used for an ant's real step: the caller gets
// to try another direction instead of being clamped into a wall.
func (c Coord) CheckedMove(b Bounds, dx, dy int) (Coord, bool) {
	return b.At(c.X+dx, c.Y+dy)
}

// ClampedMove returns the coordinate shifted by (dx, dy), saturating at the
// grid edges. Used for look-ahead when reading pheromone neighbors, so edge
// tiles can still be inspected.
func (c Coord) ClampedMove(b Bounds, dx, dy int) Coord {
	x := c.X + dx
	if x < 0 {
		x = 0
	} else if x >= b.Width {
		x = b.Width - 1
	}
	y := c.Y + dy
	if y < 0 {
		y = 0
	} else if y >= b.Height {
		y = b.Height - 1
	}
	return Coord{X: x, Y: y}
}
