// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"darkdepths/pkg/engine/pathfind"
	"darkdepths/pkg/engine/world"
	"darkdepths/pkg/game/dungeon"
	"darkdepths/pkg/game/renderer"
)

// MapDumpFilename is the default file written by DumpMapToFile
const MapDumpFilename = "map.txt"

// DumpMap writes a full debug dump of m to w: metadata, legend, map, rooms
// with their connections and walking distances, and the corridor edges.
// Format is human- and LLM-readable (sections, key: value, consistent structure).
func DumpMap(w io.Writer, m *dungeon.MapData) error {
	if m == nil || m.Grid == nil {
		return fmt.Errorf("no map")
	}

	d := &dumper{w: w}
	width, height := m.Grid.Width(), m.Grid.Height()

	start, hasStart := m.StartRoom()
	var distances map[world.Point]int
	startCell := world.Pt(-1, -1)
	if hasStart {
		startCell = m.Rooms[start].Center()
		distances = pathfind.Distances(m.Grid, startCell)
	}

	// --- Metadata ---
	d.println("=== MAP DUMP DEBUG (layout, rooms, corridors) ===")
	d.println("")
	d.println("--- Metadata ---")
	d.printf("seed: %d\n", m.Seed)
	d.printf("placer: %s\n", m.Placer)
	d.printf("grid_width: %d\n", width)
	d.printf("grid_height: %d\n", height)
	d.printf("coordinate_system: x,y (0-based, x=horizontal, y=vertical)\n")
	d.printf("floor_cells: %d\n", m.Grid.CountFloor())
	d.printf("rooms_target: %d\n", m.Stats.TargetRooms)
	d.printf("rooms_placed: %d\n", m.Stats.PlacedRooms)
	d.printf("placement_attempts: %d\n", m.Stats.Attempts)
	d.printf("corridor_weight: %d\n", dungeon.TotalWeight(m.Edges))
	d.printf("start_cell: %d,%d\n", startCell.X, startCell.Y)
	if far, dist, ok := pathfind.Furthest(m.Grid, startCell); ok {
		d.printf("furthest_cell: %d,%d (distance %d)\n", far.X, far.Y, dist)
	}
	d.printf("config: %+v\n", m.Config)
	d.println("")

	// --- Legend ---
	d.println("--- Legend (cell symbols) ---")
	for _, entry := range renderer.Legend() {
		if entry.Style == renderer.StylePath {
			continue
		}
		d.printf("%s = %s  ", renderer.Glyph(entry.Style, true), entry.Label)
	}
	d.println("")
	d.println("")

	// --- Map ---
	d.println("--- Map ---")
	layout := renderer.NewLayout(renderer.Frame{Map: m})
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			d.printf("%s", renderer.Glyph(layout.Style(x, y), true))
		}
		d.println("")
	}
	d.println("")

	// --- Rooms ---
	d.println("--- Rooms ---")
	for i, r := range m.Rooms {
		c := r.Center()
		walk := -1
		if dist, ok := distances[c]; ok {
			walk = dist
		}
		links := append([]int(nil), r.Connections...)
		sort.Ints(links)
		d.printf("  room: %d type: %s x: %d y: %d width: %d height: %d center: %d,%d walk_from_start: %d connections: %v\n",
			i, r.Type, r.X, r.Y, r.Width, r.Height, c.X, c.Y, walk, links)
	}
	d.println("")

	// --- Corridors ---
	d.println("--- Corridors (minimum spanning tree, in order accepted) ---")
	for _, e := range m.Edges {
		d.printf("  from: %d to: %d weight: %d\n", e.A, e.B, e.Weight)
	}

	return d.err
}

// DumpMapToFile writes DumpMap output to path, or to MapDumpFilename in the
// working directory when path is empty. Returns the absolute path written.
func DumpMapToFile(m *dungeon.MapData, path string) (string, error) {
	if path == "" {
		path = MapDumpFilename
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	if err := DumpMap(f, m); err != nil {
		f.Close()
		return "", err
	}
	return absPath, f.Close()
}

// dumper keeps the first write error so the dump code can stay linear
type dumper struct {
	w   io.Writer
	err error
}

func (d *dumper) printf(format string, args ...any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, format, args...)
}

func (d *dumper) println(s string) {
	d.printf("%s\n", s)
}
