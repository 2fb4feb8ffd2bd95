// Package mapmanager owns the active dungeon map and answers the queries the
// rest of the game makes against it: walkability, room lookup and paths.
package mapmanager

import (
	"io"
	"log"
	"sync"

	"darkdepths/pkg/engine/pathfind"
	"darkdepths/pkg/engine/world"
	"darkdepths/pkg/game/dungeon"
)

// State is the lifecycle state of a Manager
type State int

const (
	// Empty means no map is loaded
	Empty State = iota
	// Ready means a generated map is loaded
	Ready
)

func (s State) String() string {
	if s == Ready {
		return "Ready"
	}
	return "Empty"
}

// Manager holds at most one map at a time. Queries may run concurrently with
// each other and with GenerateMap: a new map is built off to the side and
// swapped in once complete, so readers never see a half-built grid. Maps
// handed out by the manager are copies; the loaded map is never shared.
type Manager struct {
	mu      sync.RWMutex
	current *dungeon.MapData
	version uint64

	// genMu serializes GenerateMap and Clear, including event delivery
	genMu     sync.Mutex
	generator *dungeon.Generator

	logger *log.Logger

	subMu       sync.Mutex
	subscribers map[int]Listener
	nextSubID   int
}

// New creates an empty manager that generates maps with the given generator.
// A nil logger discards log output.
func New(generator *dungeon.Generator, logger *log.Logger) *Manager {
	if generator == nil {
		generator = dungeon.NewGenerator(1)
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Manager{
		generator:   generator,
		logger:      logger,
		subscribers: make(map[int]Listener),
	}
}

// GenerateMap builds a new map from cfg and replaces the current one. It
// returns a copy of the new map. On error the current map is left in place.
func (m *Manager) GenerateMap(cfg dungeon.MapConfig) (*dungeon.MapData, error) {
	m.genMu.Lock()
	defer m.genMu.Unlock()

	data, err := m.generator.Generate(cfg)
	if err != nil {
		m.logger.Printf("map generation failed: %v", err)
		return nil, err
	}

	m.mu.Lock()
	m.current = data
	m.version++
	version := m.version
	m.mu.Unlock()

	if short := data.Stats.Shortfall(); short > 0 {
		m.logger.Printf("placed %d of %d rooms (%d short) after %d attempts",
			data.Stats.PlacedRooms, data.Stats.TargetRooms, short, data.Stats.Attempts)
	} else {
		m.logger.Printf("generated %dx%d map with %d rooms using %s placer",
			cfg.Width, cfg.Height, len(data.Rooms), data.Placer)
	}

	m.publish(Event{Type: MapGenerated, Map: data.Clone(), Version: version})
	return data.Clone(), nil
}

// Clear discards the current map. Queries behave as if no map was ever
// generated until the next GenerateMap.
func (m *Manager) Clear() {
	m.genMu.Lock()
	defer m.genMu.Unlock()

	m.mu.Lock()
	had := m.current != nil
	m.current = nil
	if had {
		m.version++
	}
	version := m.version
	m.mu.Unlock()

	if had {
		m.logger.Printf("map cleared")
		m.publish(Event{Type: MapCleared, Version: version})
	}
}

// Current returns a copy of the loaded map, or nil when the manager is Empty
func (m *Manager) Current() *dungeon.MapData {
	return m.snapshot().Clone()
}

// Version counts the changes made to the loaded map. It increases by one on
// every successful GenerateMap and on every Clear that discarded a map.
func (m *Manager) Version() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.version
}

// snapshot returns the loaded map itself. Callers must not modify it.
func (m *Manager) snapshot() *dungeon.MapData {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// State reports whether a map is loaded
func (m *Manager) State() State {
	if m.snapshot() == nil {
		return Empty
	}
	return Ready
}

// IsWalkable returns false for out-of-bounds positions, walls and when no
// map is loaded
func (m *Manager) IsWalkable(x, y int) bool {
	data := m.snapshot()
	if data == nil {
		return false
	}
	return data.Grid.IsWalkable(x, y)
}

// GetAdjacentWalkablePositions returns the walkable neighbours of (x, y) in
// North, East, South, West order
func (m *Manager) GetAdjacentWalkablePositions(x, y int) []world.Point {
	data := m.snapshot()
	if data == nil {
		return nil
	}
	return data.Grid.WalkableNeighbors(world.Pt(x, y))
}

// GetRoomAt returns the room containing (x, y)
func (m *Manager) GetRoomAt(x, y int) (dungeon.Room, bool) {
	data := m.snapshot()
	if data == nil {
		return dungeon.Room{}, false
	}
	i, ok := data.RoomAt(x, y)
	if !ok {
		return dungeon.Room{}, false
	}
	return data.Rooms[i].Clone(), true
}

// GetStartRoom returns the Start room
func (m *Manager) GetStartRoom() (dungeon.Room, bool) {
	return m.roomOfType(dungeon.Start)
}

// GetBossRoom returns the Boss room. Single-room maps have none.
func (m *Manager) GetBossRoom() (dungeon.Room, bool) {
	return m.roomOfType(dungeon.Boss)
}

// GetTreasureRooms returns all Treasure rooms
func (m *Manager) GetTreasureRooms() []dungeon.Room {
	return m.roomsOfType(dungeon.Treasure)
}

// GetShopRooms returns all Shop rooms
func (m *Manager) GetShopRooms() []dungeon.Room {
	return m.roomsOfType(dungeon.Shop)
}

// Rooms returns a copy of every room of the current map
func (m *Manager) Rooms() []dungeon.Room {
	data := m.snapshot()
	if data == nil {
		return nil
	}
	return dungeon.CloneRooms(data.Rooms)
}

func (m *Manager) roomOfType(t dungeon.RoomType) (dungeon.Room, bool) {
	rooms := m.roomsOfType(t)
	if len(rooms) == 0 {
		return dungeon.Room{}, false
	}
	return rooms[0], true
}

func (m *Manager) roomsOfType(t dungeon.RoomType) []dungeon.Room {
	data := m.snapshot()
	if data == nil {
		return nil
	}
	var rooms []dungeon.Room
	for _, i := range data.RoomsOfType(t) {
		rooms = append(rooms, data.Rooms[i].Clone())
	}
	return rooms
}

// FindPath returns a shortest walkable path from (x1, y1) to (x2, y2),
// inclusive of both ends. The result is empty when there is no map, either
// end is not walkable, or no route exists.
func (m *Manager) FindPath(x1, y1, x2, y2 int) []world.Point {
	data := m.snapshot()
	if data == nil {
		return nil
	}
	return pathfind.FindPath(data.Grid, world.Pt(x1, y1), world.Pt(x2, y2))
}
