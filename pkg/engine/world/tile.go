// Package world defines the tile grid that maps are carved into.
package world

// Tile is the state of a single grid cell.
type Tile uint8

// Tile constants
const (
	Wall Tile = iota
	Floor
)

// String returns the string representation of a tile
func (t Tile) String() string {
	switch t {
	case Wall:
		return "Wall"
	case Floor:
		return "Floor"
	default:
		return "Unknown"
	}
}

// IsWalkable returns true if the tile can be stepped on
func (t Tile) IsWalkable() bool {
	return t == Floor
}

// Point is an integer grid coordinate. X is the column, Y is the row.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p moved by the delta of dir
func (p Point) Add(dir Direction) Point {
	dx, dy := dir.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// ManhattanDistance returns |dx| + |dy| between two points
func ManhattanDistance(a, b Point) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
