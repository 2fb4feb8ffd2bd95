package dungeon

import (
	"errors"
	"math"
	"testing"

	"darkdepths/pkg/engine/pathfind"
	"darkdepths/pkg/engine/world"
)

// generateMaps runs the full pipeline for several seeds with the given placer.
func generateMaps(t *testing.T, placer RoomPlacer, cfg MapConfig, seeds int) []*MapData {
	t.Helper()
	maps := make([]*MapData, 0, seeds)
	for seed := int64(1); seed <= int64(seeds); seed++ {
		g := NewGenerator(seed)
		g.Placer = placer
		m, err := g.Generate(cfg)
		if err != nil {
			t.Fatalf("seed %d: Generate() error = %v", seed, err)
		}
		maps = append(maps, m)
	}
	return maps
}

func allPlacers() []RoomPlacer {
	return []RoomPlacer{Scatter, BSP}
}

func TestGenerate_NoOverlap(t *testing.T) {
	for _, placer := range allPlacers() {
		t.Run(placer.Name(), func(t *testing.T) {
			for _, m := range generateMaps(t, placer, DefaultConfig(), 25) {
				for i := range m.Rooms {
					for j := range m.Rooms {
						if i != j && m.Rooms[i].Intersects(m.Rooms[j], RoomSeparation) {
							t.Fatalf("seed %d: room %d %+v overlaps room %d %+v", m.Seed, i, m.Rooms[i], j, m.Rooms[j])
						}
					}
				}
			}
		})
	}
}

func TestGenerate_SpanningTree(t *testing.T) {
	for _, placer := range allPlacers() {
		t.Run(placer.Name(), func(t *testing.T) {
			for _, m := range generateMaps(t, placer, DefaultConfig(), 25) {
				n := len(m.Rooms)
				if len(m.Edges) != n-1 {
					t.Errorf("seed %d: %d edges for %d rooms, want %d", m.Seed, len(m.Edges), n, n-1)
				}

				degree := 0
				for _, r := range m.Rooms {
					degree += len(r.Connections)
				}
				if degree != 2*(n-1) {
					t.Errorf("seed %d: total degree = %d, want %d", m.Seed, degree, 2*(n-1))
				}

				visited := map[int]bool{0: true}
				stack := []int{0}
				for len(stack) > 0 {
					cur := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					for _, j := range m.Rooms[cur].Connections {
						if !visited[j] {
							visited[j] = true
							stack = append(stack, j)
						}
					}
				}
				if len(visited) != n {
					t.Errorf("seed %d: room graph reaches %d of %d rooms", m.Seed, len(visited), n)
				}
			}
		})
	}
}

func TestGenerate_CorridorsJoinConnectedRooms(t *testing.T) {
	for _, placer := range allPlacers() {
		t.Run(placer.Name(), func(t *testing.T) {
			for _, m := range generateMaps(t, placer, DefaultConfig(), 10) {
				for _, e := range m.Edges {
					a, b := m.Rooms[e.A], m.Rooms[e.B]
					// Top-left corner of A to bottom-right corner of B
					from := world.Pt(a.X, a.Y)
					to := world.Pt(b.X+b.Width-1, b.Y+b.Height-1)
					if path := pathfind.FindPath(m.Grid, from, to); len(path) == 0 {
						t.Errorf("seed %d: no path from room %d to room %d", m.Seed, e.A, e.B)
					}
				}
			}
		})
	}
}

func TestGenerate_Roles(t *testing.T) {
	for _, placer := range allPlacers() {
		t.Run(placer.Name(), func(t *testing.T) {
			cfg := DefaultConfig()
			for _, m := range generateMaps(t, placer, cfg, 25) {
				counts := m.CountByType()
				if counts[Start] != 1 {
					t.Errorf("seed %d: %d start rooms, want 1", m.Seed, counts[Start])
				}
				if counts[Boss] > 1 {
					t.Errorf("seed %d: %d boss rooms, want at most 1", m.Seed, counts[Boss])
				}

				start, _ := m.StartRoom()
				if boss, ok := m.BossRoom(); ok {
					bossDist := CenterDistance(m.Rooms[start], m.Rooms[boss])
					for i, r := range m.Rooms {
						if d := CenterDistance(m.Rooms[start], r); i != start && d > bossDist {
							t.Errorf("seed %d: room %d at distance %d beats boss distance %d", m.Seed, i, d, bossDist)
						}
					}
				}

				remaining := len(m.Rooms) - counts[Start] - counts[Boss]
				wantTreasure := min(cfg.MinTreasureRooms, remaining)
				if counts[Treasure] != wantTreasure {
					t.Errorf("seed %d: %d treasure rooms, want %d", m.Seed, counts[Treasure], wantTreasure)
				}
				wantShop := min(cfg.MinShopRooms, remaining-wantTreasure)
				if counts[Shop] != wantShop {
					t.Errorf("seed %d: %d shop rooms, want %d", m.Seed, counts[Shop], wantShop)
				}
			}
		})
	}
}

func TestGenerate_ConcreteScenario(t *testing.T) {
	m, err := NewGenerator(42).Generate(DefaultConfig())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if n := len(m.Rooms); n < 1 || n > 15 {
		t.Errorf("len(Rooms) = %d, want 1..15", n)
	}
	if m.Grid.Height() != 50 || m.Grid.Width() != 50 {
		t.Errorf("grid size = %dx%d, want 50x50", m.Grid.Width(), m.Grid.Height())
	}
	start, ok := m.StartRoom()
	if !ok {
		t.Fatal("no start room")
	}
	c := m.Rooms[start].Center()
	if !m.Grid.IsWalkable(c.X, c.Y) {
		t.Errorf("start room centre (%d,%d) is not walkable", c.X, c.Y)
	}
	if m.Stats.PlacedRooms != len(m.Rooms) {
		t.Errorf("Stats.PlacedRooms = %d, want %d", m.Stats.PlacedRooms, len(m.Rooms))
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	for _, placer := range allPlacers() {
		t.Run(placer.Name(), func(t *testing.T) {
			a := NewGenerator(7)
			a.Placer = placer
			b := NewGenerator(7)
			b.Placer = placer

			ma, err := a.Generate(DefaultConfig())
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			mb, err := b.Generate(DefaultConfig())
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if !ma.Grid.Equal(mb.Grid) {
				t.Error("same seed produced different grids")
			}
			if len(ma.Rooms) != len(mb.Rooms) {
				t.Fatalf("same seed produced %d and %d rooms", len(ma.Rooms), len(mb.Rooms))
			}
			for i := range ma.Rooms {
				if ma.Rooms[i].Type != mb.Rooms[i].Type || ma.Rooms[i].Center() != mb.Rooms[i].Center() {
					t.Errorf("room %d differs: %+v vs %+v", i, ma.Rooms[i], mb.Rooms[i])
				}
			}
		})
	}
}

func TestGenerate_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinRoomSize = 12
	cfg.MaxRoomSize = 6
	if _, err := NewGenerator(1).Generate(cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Generate() error = %v, want ErrInvalidConfig", err)
	}
}

func TestGenerate_RejectsOversizedConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *MapConfig)
	}{
		{"int max rooms", func(c *MapConfig) { c.MinRooms, c.MaxRooms = 0, math.MaxInt }},
		{"million rooms", func(c *MapConfig) { c.MaxRooms = 1_000_000 }},
		{"huge grid", func(c *MapConfig) { c.Width, c.Height = 1 << 20, 1 << 20 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if _, err := NewGenerator(1).Generate(cfg); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Generate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestGenerate_NoRooms(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 8
	cfg.Height = 8
	cfg.MinRoomSize = 10
	cfg.MaxRoomSize = 12

	for _, placer := range allPlacers() {
		t.Run(placer.Name(), func(t *testing.T) {
			g := NewGenerator(1)
			g.Placer = placer
			_, err := g.Generate(cfg)
			if !errors.Is(err, ErrNoRooms) {
				t.Fatalf("Generate() error = %v, want ErrNoRooms", err)
			}

			m, err := g.Generate(cfg.Relaxed())
			if err != nil {
				t.Fatalf("Generate(Relaxed()) error = %v", err)
			}
			if len(m.Rooms) < 1 {
				t.Errorf("Relaxed config placed no rooms")
			}
		})
	}
}

func TestGenerate_SingleRoom(t *testing.T) {
	cfg := MapConfig{Width: 12, Height: 12, MinRooms: 1, MaxRooms: 1, MinRoomSize: 3, MaxRoomSize: 4, MinTreasureRooms: 2, MinShopRooms: 1}
	m, err := NewGenerator(3).Generate(cfg)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(m.Rooms) != 1 {
		t.Fatalf("len(Rooms) = %d, want 1", len(m.Rooms))
	}
	if m.Rooms[0].Type != Start {
		t.Errorf("single room type = %v, want Start", m.Rooms[0].Type)
	}
	if _, ok := m.BossRoom(); ok {
		t.Error("single-room map has a boss room")
	}
	if len(m.Edges) != 0 {
		t.Errorf("len(Edges) = %d, want 0", len(m.Edges))
	}
}

func TestGenerate_ShortfallIsNotAnError(t *testing.T) {
	// Room for only a handful of 5x5 rooms
	cfg := MapConfig{Width: 20, Height: 20, MinRooms: 10, MaxRooms: 10, MinRoomSize: 5, MaxRoomSize: 5}
	m, err := NewGenerator(5).Generate(cfg)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if m.Stats.Shortfall() == 0 {
		t.Errorf("Stats = %+v, expected a shortfall", m.Stats)
	}
	if m.Stats.TargetRooms != 10 {
		t.Errorf("Stats.TargetRooms = %d, want 10", m.Stats.TargetRooms)
	}
}

func TestGenerate_LevelConfigs(t *testing.T) {
	for level := 1; level <= 12; level++ {
		for _, placer := range allPlacers() {
			g := NewGenerator(int64(level))
			g.Placer = placer
			if _, err := g.Generate(LevelConfig(level)); err != nil {
				t.Errorf("level %d (%s): Generate() error = %v", level, placer.Name(), err)
			}
		}
	}
}

// unconnectedPair returns two rooms that are not joined by a corridor.
func unconnectedPair(t *testing.T, m *MapData) (int, int) {
	t.Helper()
	for i := range m.Rooms {
		for j := i + 1; j < len(m.Rooms); j++ {
			if !m.Rooms[i].IsConnectedTo(j) {
				return i, j
			}
		}
	}
	t.Fatal("every pair of rooms is connected")
	return 0, 0
}

func TestMapData_ValidateDetectsBrokenMaps(t *testing.T) {
	fresh := func() *MapData {
		m, err := NewGenerator(11).Generate(DefaultConfig())
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		return m
	}

	tests := []struct {
		name   string
		mutate func(m *MapData)
	}{
		{"no grid", func(m *MapData) { m.Grid = nil }},
		{"no rooms", func(m *MapData) { m.Rooms = nil }},
		{"two starts", func(m *MapData) {
			for i := range m.Rooms {
				if m.Rooms[i].Type != Start {
					m.Rooms[i].Type = Start
					return
				}
			}
		}},
		{"no boss", func(m *MapData) {
			i, _ := m.BossRoom()
			m.Rooms[i].Type = Normal
		}},
		{"extra connection", func(m *MapData) {
			i, j := unconnectedPair(t, m)
			connect(m.Rooms, i, j)
		}},
		{"one-way connection", func(m *MapData) {
			i, j := unconnectedPair(t, m)
			m.Rooms[i].Connections = append(m.Rooms[i].Connections, j)
		}},
		{"filled room", func(m *MapData) {
			r := m.Rooms[0]
			m.Grid.Set(r.X, r.Y, world.Wall)
		}},
	}

	if err := fresh().Validate(); err != nil {
		t.Fatalf("Validate() on a fresh map = %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := fresh()
			tt.mutate(m)
			if err := m.Validate(); !errors.Is(err, ErrInvariant) {
				t.Errorf("Validate() = %v, want ErrInvariant", err)
			}
		})
	}
}

func TestMapData_RoomAt(t *testing.T) {
	m, err := NewGenerator(9).Generate(DefaultConfig())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	for i, r := range m.Rooms {
		c := r.Center()
		if got, ok := m.RoomAt(c.X, c.Y); !ok || got != i {
			t.Errorf("RoomAt(centre of %d) = %d, %v", i, got, ok)
		}
	}
	if _, ok := m.RoomAt(0, 0); ok {
		t.Error("RoomAt(0,0) found a room on the border")
	}
}
