// Package pathfind answers shortest-path and reachability queries over a
// four-connected tile grid.
package pathfind

import (
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"darkdepths/pkg/engine/world"
)

// Walkable is the read-only view of a grid that the searches need.
// *world.Grid satisfies it.
type Walkable interface {
	Width() int
	Height() int
	IsWalkable(x, y int) bool
}

// node is one entry in the open set. Stale entries (a cheaper route to the
// same point was pushed later) are skipped when popped.
type node struct {
	p   world.Point
	g   int
	h   int
	seq int
}

func lessNode(a, b node) bool {
	if fa, fb := a.g+a.h, b.g+b.h; fa != fb {
		return fa < fb
	}
	if a.h != b.h {
		return a.h < b.h
	}
	return a.seq < b.seq
}

// FindPath returns a shortest four-directional path from start to end,
// inclusive of both endpoints, or nil if end cannot be reached. Both endpoints
// must be walkable. Each call allocates its own working state, so concurrent
// calls against the same unchanging grid are safe.
func FindPath(grid Walkable, start, end world.Point) []world.Point {
	if grid == nil || !grid.IsWalkable(start.X, start.Y) || !grid.IsWalkable(end.X, end.Y) {
		return nil
	}
	if start == end {
		return []world.Point{start}
	}

	width := grid.Width()
	index := func(p world.Point) int { return p.Y*width + p.X }

	area := width * grid.Height()
	gScore := make([]int, area)
	for i := range gScore {
		gScore[i] = -1
	}
	cameFrom := make(map[world.Point]world.Point)
	closed := mapset.New[world.Point]()

	open := heap.New(lessNode)
	seq := 0
	gScore[index(start)] = 0
	open.Push(node{p: start, g: 0, h: world.ManhattanDistance(start, end), seq: seq})

	for open.Size() > 0 {
		current, _ := open.Pop()
		if closed.Has(current.p) || current.g != gScore[index(current.p)] {
			continue
		}
		if current.p == end {
			return reconstructPath(cameFrom, start, end)
		}
		closed.Put(current.p)

		for _, dir := range world.AllDirections() {
			next := current.p.Add(dir)
			if !grid.IsWalkable(next.X, next.Y) || closed.Has(next) {
				continue
			}
			tentative := current.g + 1
			if known := gScore[index(next)]; known >= 0 && tentative >= known {
				continue
			}
			gScore[index(next)] = tentative
			cameFrom[next] = current.p
			seq++
			open.Push(node{p: next, g: tentative, h: world.ManhattanDistance(next, end), seq: seq})
		}
	}

	return nil
}

// reconstructPath walks predecessors back from end and reverses the result
func reconstructPath(cameFrom map[world.Point]world.Point, start, end world.Point) []world.Point {
	path := []world.Point{end}
	for current := end; current != start; {
		current = cameFrom[current]
		path = append(path, current)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// PathLength returns the number of steps in a path (one less than its point count)
func PathLength(path []world.Point) int {
	if len(path) == 0 {
		return 0
	}
	return len(path) - 1
}
