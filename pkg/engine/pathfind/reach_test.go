package pathfind

import (
	"testing"

	"darkdepths/pkg/engine/world"
)

func TestDistances(t *testing.T) {
	g := gridFromRows(
		"...#.",
		".#.#.",
		".....",
	)
	dist := Distances(g, world.Pt(0, 0))
	cases := []struct {
		p    world.Point
		want int
	}{
		{world.Pt(0, 0), 0},
		{world.Pt(2, 0), 2},
		{world.Pt(2, 2), 4},
		{world.Pt(4, 0), 8},
	}
	for _, c := range cases {
		if got, ok := dist[c.p]; !ok || got != c.want {
			t.Errorf("Distances[%v] = %d (ok=%v), want %d", c.p, got, ok, c.want)
		}
	}
	if _, ok := dist[world.Pt(1, 1)]; ok {
		t.Error("wall cell (1,1) should not appear in distances")
	}
}

func TestDistances_FromWall(t *testing.T) {
	g := gridFromRows("#.")
	if got := len(Distances(g, world.Pt(0, 0))); got != 0 {
		t.Errorf("len(Distances from wall) = %d, want 0", got)
	}
}

func TestReachable(t *testing.T) {
	g := gridFromRows(
		"..#..",
		"..#..",
	)
	r := Reachable(g, world.Pt(0, 0))
	if r.Size() != 4 {
		t.Errorf("Reachable size = %d, want 4", r.Size())
	}
	if r.Has(world.Pt(3, 0)) {
		t.Error("cell across the wall should not be reachable")
	}
}

func TestFurthest(t *testing.T) {
	g := gridFromRows(
		".....",
		"####.",
		".....",
	)
	p, d, ok := Furthest(g, world.Pt(0, 0))
	if !ok {
		t.Fatal("Furthest ok = false, want true")
	}
	if p != world.Pt(0, 2) || d != 10 {
		t.Errorf("Furthest = %v at %d, want (0,2) at 10", p, d)
	}
	if _, _, ok := Furthest(g, world.Pt(0, 1)); ok {
		t.Error("Furthest from a wall should report ok = false")
	}
}
