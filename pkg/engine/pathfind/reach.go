package pathfind

import (
	"github.com/zyedidia/generic/mapset"

	"darkdepths/pkg/engine/world"
)

// Distances runs a breadth-first search from start and returns the step count
// to every reachable walkable cell. An unwalkable start yields an empty map.
func Distances(grid Walkable, start world.Point) map[world.Point]int {
	dist := make(map[world.Point]int)
	if grid == nil || !grid.IsWalkable(start.X, start.Y) {
		return dist
	}

	dist[start] = 0
	queue := []world.Point{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range world.AllDirections() {
			n := current.Add(dir)
			if _, seen := dist[n]; seen || !grid.IsWalkable(n.X, n.Y) {
				continue
			}
			dist[n] = dist[current] + 1
			queue = append(queue, n)
		}
	}
	return dist
}

// Reachable returns the set of walkable cells connected to start
func Reachable(grid Walkable, start world.Point) mapset.Set[world.Point] {
	reachable := mapset.New[world.Point]()
	for p := range Distances(grid, start) {
		reachable.Put(p)
	}
	return reachable
}

// Furthest returns the reachable cell with the longest path distance from
// start. Ties go to the cell first reached in North, East, South, West
// expansion order. ok is false when start is not walkable.
func Furthest(grid Walkable, start world.Point) (p world.Point, dist int, ok bool) {
	if grid == nil || !grid.IsWalkable(start.X, start.Y) {
		return world.Point{}, 0, false
	}

	visited := mapset.New[world.Point]()
	visited.Put(start)
	type cellDist struct {
		p    world.Point
		dist int
	}
	queue := []cellDist{{start, 0}}
	furthest, maxDist := start, 0

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current.dist > maxDist {
			furthest, maxDist = current.p, current.dist
		}

		for _, dir := range world.AllDirections() {
			n := current.p.Add(dir)
			if visited.Has(n) || !grid.IsWalkable(n.X, n.Y) {
				continue
			}
			visited.Put(n)
			queue = append(queue, cellDist{n, current.dist + 1})
		}
	}
	return furthest, maxDist, true
}
