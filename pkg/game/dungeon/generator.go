package dungeon

import (
	"fmt"
	"math/rand"

	"darkdepths/pkg/engine/world"
)

// Generator runs the generation pipeline: room placement, spanning-tree
// connection, corridor carving, then room classification. A Generator owns
// its random source and is not safe for concurrent use.
type Generator struct {
	// Placer lays out rooms; DefaultPlacer is used when nil.
	Placer RoomPlacer

	rng  *rand.Rand
	seed int64
}

// NewGenerator creates a generator whose output is fully determined by seed
// and the sequence of configs passed to Generate
func NewGenerator(seed int64) *Generator {
	return &Generator{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed the generator was created with
func (g *Generator) Seed() int64 {
	return g.seed
}

// Generate builds a new map. The config is validated before any work is
// done. Placing fewer rooms than cfg.MinRooms is not an error; placing none
// returns ErrNoRooms.
func (g *Generator) Generate(cfg MapConfig) (*MapData, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	placer := g.Placer
	if placer == nil {
		placer = DefaultPlacer
	}

	grid := world.NewGrid(cfg.Width, cfg.Height)

	rooms, stats := placer.Place(grid, cfg, g.rng)
	if len(rooms) == 0 {
		return nil, fmt.Errorf("%w: %s placer made %d attempts on a %dx%d grid with room size %d-%d",
			ErrNoRooms, placer.Name(), stats.Attempts, cfg.Width, cfg.Height, cfg.MinRoomSize, cfg.MaxRoomSize)
	}

	edges := Connect(rooms)
	Carve(grid, rooms, g.rng)
	Classify(rooms, cfg, g.rng)

	m := &MapData{
		Grid:   grid,
		Rooms:  rooms,
		Edges:  edges,
		Config: cfg,
		Placer: placer.Name(),
		Seed:   g.seed,
		Stats:  stats,
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}
