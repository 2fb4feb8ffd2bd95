package dungeon

import (
	"math/rand"

	"darkdepths/pkg/engine/world"
)

// Carve digs an L-shaped corridor between the centres of every connected
// pair of rooms. Each pair is carved once; the leg order (horizontal first or
// vertical first) is picked per corridor from rng.
func Carve(grid *world.Grid, rooms []Room, rng *rand.Rand) {
	for i, room := range rooms {
		for _, j := range room.Connections {
			if j <= i {
				continue
			}
			CarveCorridor(grid, room.Center(), rooms[j].Center(), rng.Intn(2) == 0)
		}
	}
}

// CarveCorridor digs an L-shaped corridor from a to b. With horizontalFirst it
// runs along row a.Y to column b.X and then along column b.X to b.Y; otherwise
// it runs along column a.X first and then along row b.Y. Cells already Floor
// are left as they are and cells outside the grid are ignored.
func CarveCorridor(grid *world.Grid, a, b world.Point, horizontalFirst bool) {
	if horizontalFirst {
		carveHorizontal(grid, a.Y, a.X, b.X)
		carveVertical(grid, b.X, a.Y, b.Y)
		return
	}
	carveVertical(grid, a.X, a.Y, b.Y)
	carveHorizontal(grid, b.Y, a.X, b.X)
}

// carveHorizontal carves row y from startX to endX inclusive
func carveHorizontal(grid *world.Grid, y, startX, endX int) {
	if startX > endX {
		startX, endX = endX, startX
	}
	for x := startX; x <= endX; x++ {
		grid.Carve(x, y)
	}
}

// carveVertical carves column x from startY to endY inclusive
func carveVertical(grid *world.Grid, x, startY, endY int) {
	if startY > endY {
		startY, endY = endY, startY
	}
	for y := startY; y <= endY; y++ {
		grid.Carve(x, y)
	}
}

// CorridorPoints returns the cells CarveCorridor would carve, from a to b in
// walking order
func CorridorPoints(a, b world.Point, horizontalFirst bool) []world.Point {
	corner := world.Point{X: b.X, Y: a.Y}
	if !horizontalFirst {
		corner = world.Point{X: a.X, Y: b.Y}
	}

	points := []world.Point{a}
	for _, target := range []world.Point{corner, b} {
		current := points[len(points)-1]
		for current != target {
			current.X += sign(target.X - current.X)
			current.Y += sign(target.Y - current.Y)
			points = append(points, current)
		}
	}
	return points
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
