package dungeon

import (
	"math/rand"

	"darkdepths/pkg/engine/world"
)

// RoomPlacer lays out the rooms of a map. Implementations must keep every
// room inside the grid's 1-tile border, keep rooms at least RoomSeparation
// tiles apart, carve each accepted room into the grid, and return the rooms
// typed Normal with no connections.
type RoomPlacer interface {
	Place(grid *world.Grid, cfg MapConfig, rng *rand.Rand) ([]Room, Stats)
	Name() string
}

// Stats describes how room placement went. PlacedRooms may be lower than
// TargetRooms, or even lower than MapConfig.MinRooms, when the grid is
// crowded.
type Stats struct {
	TargetRooms int
	PlacedRooms int
	Attempts    int
}

// Shortfall returns how many rooms placement fell short of the target
func (s Stats) Shortfall() int {
	if s.PlacedRooms >= s.TargetRooms {
		return 0
	}
	return s.TargetRooms - s.PlacedRooms
}

// Available placers
var (
	Scatter = &ScatterPlacer{}
	BSP     = &BSPPlacer{}
)

// DefaultPlacer is the placer used when a Generator has none set
var DefaultPlacer RoomPlacer = Scatter

// PlacerByName returns the placer with the given Name, or nil
func PlacerByName(name string) RoomPlacer {
	for _, p := range []RoomPlacer{Scatter, BSP} {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

// ScatterPlacer drops randomly sized rooms at random positions and rejects
// any that crowd an earlier room.
type ScatterPlacer struct{}

// Name returns the name of this placer
func (p *ScatterPlacer) Name() string {
	return "scatter"
}

// Place picks a target count in [MinRooms, MaxRooms] and, for each slot,
// samples up to MaxPlacementAttempts candidates. A slot whose attempts all
// fail is skipped.
func (p *ScatterPlacer) Place(grid *world.Grid, cfg MapConfig, rng *rand.Rand) ([]Room, Stats) {
	target := targetRooms(cfg, rng)
	stats := Stats{TargetRooms: target}
	rooms := make([]Room, 0, target)

	for slot := 0; slot < target; slot++ {
		for attempt := 0; attempt < MaxPlacementAttempts; attempt++ {
			stats.Attempts++

			room, ok := randomRoom(grid, cfg, rng)
			if !ok || overlapsAny(room, rooms) {
				continue
			}

			grid.CarveRect(room.X, room.Y, room.Width, room.Height)
			rooms = append(rooms, room)
			break
		}
	}

	stats.PlacedRooms = len(rooms)
	return rooms, stats
}

// targetRooms picks the number of rooms to try for. The range is clamped to
// [0, MaxRoomCount] so a config that skipped Validate cannot overflow it.
func targetRooms(cfg MapConfig, rng *rand.Rand) int {
	hi := min(max(cfg.MaxRooms, 0), MaxRoomCount)
	lo := min(max(cfg.MinRooms, 0), hi)
	return lo + rng.Intn(hi-lo+1)
}

// randomRoom samples one candidate rectangle. ok is false when the sampled
// size cannot fit inside the grid border at all.
func randomRoom(grid *world.Grid, cfg MapConfig, rng *rand.Rand) (Room, bool) {
	w := cfg.MinRoomSize + rng.Intn(cfg.MaxRoomSize-cfg.MinRoomSize+1)
	h := cfg.MinRoomSize + rng.Intn(cfg.MaxRoomSize-cfg.MinRoomSize+1)
	if w > grid.Width()-2 || h > grid.Height()-2 {
		return Room{}, false
	}

	x := 1 + rng.Intn(grid.Width()-w-1)
	y := 1 + rng.Intn(grid.Height()-h-1)
	return Room{X: x, Y: y, Width: w, Height: h, Type: Normal}, true
}

// overlapsAny reports whether candidate comes within RoomSeparation of any placed room
func overlapsAny(candidate Room, rooms []Room) bool {
	for _, r := range rooms {
		if candidate.Intersects(r, RoomSeparation) {
			return true
		}
	}
	return false
}
