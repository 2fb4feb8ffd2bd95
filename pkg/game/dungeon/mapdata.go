package dungeon

import (
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"darkdepths/pkg/engine/pathfind"
	"darkdepths/pkg/engine/world"
)

// MapData is the output of one generation run. It is not modified after
// Generate returns it.
type MapData struct {
	Grid   *world.Grid
	Rooms  []Room
	Edges  []Edge
	Config MapConfig
	Placer string
	Seed   int64
	Stats  Stats
}

// Clone returns a deep copy of the map. Changes to the copy's grid, rooms or
// edges do not reach m.
func (m *MapData) Clone() *MapData {
	if m == nil {
		return nil
	}
	c := *m
	if m.Grid != nil {
		c.Grid = m.Grid.Clone()
	}
	c.Rooms = CloneRooms(m.Rooms)
	c.Edges = slices.Clone(m.Edges)
	return &c
}

// RoomAt returns the index of the room containing (x, y)
func (m *MapData) RoomAt(x, y int) (int, bool) {
	for i, r := range m.Rooms {
		if r.Contains(x, y) {
			return i, true
		}
	}
	return -1, false
}

// RoomsOfType returns the indices of all rooms with the given type, in index order
func (m *MapData) RoomsOfType(t RoomType) []int {
	var indices []int
	for i, r := range m.Rooms {
		if r.Type == t {
			indices = append(indices, i)
		}
	}
	return indices
}

// StartRoom returns the index of the Start room
func (m *MapData) StartRoom() (int, bool) {
	return m.firstOfType(Start)
}

// BossRoom returns the index of the Boss room
func (m *MapData) BossRoom() (int, bool) {
	return m.firstOfType(Boss)
}

func (m *MapData) firstOfType(t RoomType) (int, bool) {
	for i, r := range m.Rooms {
		if r.Type == t {
			return i, true
		}
	}
	return -1, false
}

// CountByType returns the number of rooms of each type
func (m *MapData) CountByType() map[RoomType]int {
	counts := make(map[RoomType]int)
	for _, r := range m.Rooms {
		counts[r.Type]++
	}
	return counts
}

// Validate checks the map invariants: rooms inside the border and carved,
// no two rooms closer than RoomSeparation, connections forming a spanning
// tree, every connected pair of rooms joined by walkable floor, exactly one
// Start room, and a single Boss room furthest from Start.
// Errors wrap ErrInvariant.
func (m *MapData) Validate() error {
	if m.Grid == nil {
		return fmt.Errorf("%w: map has no grid", ErrInvariant)
	}
	if err := m.Grid.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvariant, err)
	}
	if len(m.Rooms) == 0 {
		return fmt.Errorf("%w: map has no rooms", ErrInvariant)
	}

	for _, check := range []func() error{m.validatePlacement, m.validateTree, m.validateCorridors, m.validateRoles} {
		if err := check(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvariant, err)
		}
	}
	return nil
}

func (m *MapData) validatePlacement() error {
	for i, r := range m.Rooms {
		if r.Width < 1 || r.Height < 1 {
			return fmt.Errorf("room %d has size %dx%d", i, r.Width, r.Height)
		}
		if !m.Grid.IsPlayablePosition(r.X, r.Y) || !m.Grid.IsPlayablePosition(r.X+r.Width-1, r.Y+r.Height-1) {
			return fmt.Errorf("room %d at (%d,%d) %dx%d leaves the playable area", i, r.X, r.Y, r.Width, r.Height)
		}
		for y := r.Y; y < r.Y+r.Height; y++ {
			for x := r.X; x < r.X+r.Width; x++ {
				if !m.Grid.IsWalkable(x, y) {
					return fmt.Errorf("room %d tile (%d,%d) is not floor", i, x, y)
				}
			}
		}
		for j := i + 1; j < len(m.Rooms); j++ {
			if r.Intersects(m.Rooms[j], RoomSeparation) {
				return fmt.Errorf("room %d overlaps room %d", i, j)
			}
		}
	}
	return nil
}

func (m *MapData) validateTree() error {
	degree := 0
	for i, r := range m.Rooms {
		for _, j := range r.Connections {
			if j < 0 || j >= len(m.Rooms) || j == i {
				return fmt.Errorf("room %d has invalid connection %d", i, j)
			}
			if !m.Rooms[j].IsConnectedTo(i) {
				return fmt.Errorf("connection %d -> %d is not mirrored", i, j)
			}
		}
		degree += len(r.Connections)
	}
	if edges := degree / 2; edges != len(m.Rooms)-1 {
		return fmt.Errorf("room graph has %d edges, want %d", edges, len(m.Rooms)-1)
	}

	visited := mapset.New[int]()
	visited.Put(0)
	queue := []int{0}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, j := range m.Rooms[current].Connections {
			if !visited.Has(j) {
				visited.Put(j)
				queue = append(queue, j)
			}
		}
	}
	if visited.Size() != len(m.Rooms) {
		return fmt.Errorf("room graph reaches %d of %d rooms", visited.Size(), len(m.Rooms))
	}
	return nil
}

// validateCorridors checks that the connected room graph is one walkable
// region of the grid. Since the graph is a tree, every room centre being
// reachable from room 0 covers every connected pair.
func (m *MapData) validateCorridors() error {
	reachable := pathfind.Reachable(m.Grid, m.Rooms[0].Center())
	for i, r := range m.Rooms {
		if c := r.Center(); !reachable.Has(c) {
			return fmt.Errorf("room %d centre (%d,%d) is not reachable from room 0", i, c.X, c.Y)
		}
	}
	return nil
}

func (m *MapData) validateRoles() error {
	counts := m.CountByType()
	if counts[Start] != 1 {
		return fmt.Errorf("map has %d start rooms, want 1", counts[Start])
	}
	wantBoss := 1
	if len(m.Rooms) < 2 {
		wantBoss = 0
	}
	if counts[Boss] != wantBoss {
		return fmt.Errorf("map has %d boss rooms, want %d", counts[Boss], wantBoss)
	}
	if wantBoss == 0 {
		return nil
	}

	start, _ := m.StartRoom()
	boss, _ := m.BossRoom()
	bossDist := CenterDistance(m.Rooms[start], m.Rooms[boss])
	for i, r := range m.Rooms {
		if i != start && CenterDistance(m.Rooms[start], r) > bossDist {
			return fmt.Errorf("room %d is further from start than the boss room", i)
		}
	}
	return nil
}
