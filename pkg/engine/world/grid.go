package world

import "fmt"

// Grid is a width × height tile map addressed as cells[y][x].
// A freshly built grid is solid wall.
type Grid struct {
	cells  [][]Tile
	width  int
	height int
}

// NewGrid creates a new all-wall grid with the given dimensions
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Build(width, height)
	return g
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(width, height int) {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.width = width
	g.height = height
	g.cells = make([][]Tile, height)
	for y := range g.cells {
		g.cells[y] = make([]Tile, width)
	}
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// InBounds checks if an x/y position is within grid bounds
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsPlayablePosition checks if a position is within the playable area (not on the perimeter)
// This ensures a 1-cell wall border around the entire map
func (g *Grid) IsPlayablePosition(x, y int) bool {
	return x >= 1 && x < g.width-1 && y >= 1 && y < g.height-1
}

// At returns the tile at the given position; out-of-bounds positions read as Wall
func (g *Grid) At(x, y int) Tile {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g.cells[y][x]
}

// Set replaces the tile at the given position. Returns false if out of bounds.
func (g *Grid) Set(x, y int, t Tile) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.cells[y][x] = t
	return true
}

// Carve marks the cell as Floor. Returns false if out of bounds.
func (g *Grid) Carve(x, y int) bool {
	return g.Set(x, y, Floor)
}

// CarveRect marks every cell of the rectangle as Floor, clipped to the grid
func (g *Grid) CarveRect(x, y, width, height int) {
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			g.Carve(col, row)
		}
	}
}

// IsWalkable returns true when (x, y) is in bounds and Floor
func (g *Grid) IsWalkable(x, y int) bool {
	return g.At(x, y).IsWalkable()
}

// WalkableNeighbors returns the in-bounds Floor cells adjacent to p in
// North, East, South, West order
func (g *Grid) WalkableNeighbors(p Point) []Point {
	neighbors := make([]Point, 0, 4)
	for _, dir := range AllDirections() {
		n := p.Add(dir)
		if g.IsWalkable(n.X, n.Y) {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// Rows returns a copy of the tiles addressed as rows[y][x]
func (g *Grid) Rows() [][]Tile {
	rows := make([][]Tile, g.height)
	for y := range g.cells {
		rows[y] = append([]Tile(nil), g.cells[y]...)
	}
	return rows
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	return &Grid{cells: g.Rows(), width: g.width, height: g.height}
}

// Equal reports whether both grids have the same size and tiles
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// ForEachCell iterates over all cells in the grid, calling the provided function for each
func (g *Grid) ForEachCell(fn func(x, y int, t Tile)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(x, y, g.cells[y][x])
		}
	}
}

// CountFloor returns the number of Floor cells
func (g *Grid) CountFloor() int {
	n := 0
	g.ForEachCell(func(x, y int, t Tile) {
		if t == Floor {
			n++
		}
	})
	return n
}

// Validate checks the grid for common issues and returns an error if it is malformed
func (g *Grid) Validate() error {
	if g.width <= 0 || g.height <= 0 {
		return fmt.Errorf("grid has invalid dimensions %dx%d", g.width, g.height)
	}
	if len(g.cells) != g.height {
		return fmt.Errorf("grid has %d rows, want %d", len(g.cells), g.height)
	}
	for y, row := range g.cells {
		if len(row) != g.width {
			return fmt.Errorf("grid row %d has %d columns, want %d", y, len(row), g.width)
		}
	}
	return nil
}
