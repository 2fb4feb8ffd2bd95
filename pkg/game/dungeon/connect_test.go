package dungeon

import (
	"math/rand"
	"testing"
)

func TestUnionFind(t *testing.T) {
	uf := newUnionFind(5)
	if uf.sets != 5 {
		t.Fatalf("sets = %d, want 5", uf.sets)
	}

	if !uf.union(0, 1) {
		t.Error("union(0, 1) = false, want true")
	}
	if !uf.union(2, 3) {
		t.Error("union(2, 3) = false, want true")
	}
	if uf.union(1, 0) {
		t.Error("union(1, 0) = true for rooms already joined")
	}
	if !uf.union(1, 3) {
		t.Error("union(1, 3) = false, want true")
	}
	if uf.find(0) != uf.find(2) {
		t.Error("0 and 2 should share a root")
	}
	if uf.find(4) == uf.find(0) {
		t.Error("4 should still be on its own")
	}
	if uf.sets != 2 {
		t.Errorf("sets = %d, want 2", uf.sets)
	}
}

// row returns n 3x3 rooms in a horizontal line, spaced gap tiles apart.
func row(n, gap int) []Room {
	rooms := make([]Room, n)
	for i := range rooms {
		rooms[i] = Room{X: 1 + i*(3+gap), Y: 1, Width: 3, Height: 3}
	}
	return rooms
}

func TestConnect_Line(t *testing.T) {
	rooms := row(4, 2)
	edges := Connect(rooms)

	want := []Edge{{0, 1, 5}, {1, 2, 5}, {2, 3, 5}}
	if len(edges) != len(want) {
		t.Fatalf("Connect() returned %d edges, want %d", len(edges), len(want))
	}
	for i := range want {
		if edges[i] != want[i] {
			t.Errorf("edge %d = %+v, want %+v", i, edges[i], want[i])
		}
	}
	if got := TotalWeight(edges); got != 15 {
		t.Errorf("TotalWeight() = %d, want 15", got)
	}
	if !rooms[1].IsConnectedTo(0) || !rooms[1].IsConnectedTo(2) || rooms[0].IsConnectedTo(3) {
		t.Errorf("unexpected connections: %v %v %v %v", rooms[0].Connections, rooms[1].Connections, rooms[2].Connections, rooms[3].Connections)
	}
}

func TestConnect_PicksShortEdges(t *testing.T) {
	// Two clusters far apart: exactly one long edge should bridge them.
	rooms := []Room{
		{X: 1, Y: 1, Width: 3, Height: 3},
		{X: 6, Y: 1, Width: 3, Height: 3},
		{X: 40, Y: 30, Width: 3, Height: 3},
		{X: 45, Y: 30, Width: 3, Height: 3},
	}
	edges := Connect(rooms)
	if len(edges) != 3 {
		t.Fatalf("Connect() returned %d edges, want 3", len(edges))
	}

	long := 0
	for _, e := range edges {
		if e.Weight > 10 {
			long++
		}
	}
	if long != 1 {
		t.Errorf("%d long edges in tree, want 1: %+v", long, edges)
	}
	// 5 + 5 + the shortest bridge (room 1 to room 2)
	if got, want := TotalWeight(edges), 5+5+CenterDistance(rooms[1], rooms[2]); got != want {
		t.Errorf("TotalWeight() = %d, want %d", got, want)
	}
}

func TestConnect_MinimalAgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 20; trial++ {
		n := 2 + rng.Intn(5)
		rooms := make([]Room, n)
		for i := range rooms {
			rooms[i] = Room{X: rng.Intn(60), Y: rng.Intn(60), Width: 3, Height: 3}
		}

		got := TotalWeight(Connect(rooms))
		if want := bruteForceMST(rooms); got != want {
			t.Errorf("trial %d: tree weight = %d, want %d", trial, got, want)
		}
	}
}

// bruteForceMST returns the MST weight using Prim's algorithm over the full graph.
func bruteForceMST(rooms []Room) int {
	inTree := make([]bool, len(rooms))
	inTree[0] = true
	total := 0
	for added := 1; added < len(rooms); added++ {
		best, bestIdx := -1, -1
		for i := range rooms {
			if !inTree[i] {
				continue
			}
			for j := range rooms {
				if inTree[j] {
					continue
				}
				if d := CenterDistance(rooms[i], rooms[j]); best < 0 || d < best {
					best, bestIdx = d, j
				}
			}
		}
		inTree[bestIdx] = true
		total += best
	}
	return total
}

func TestConnect_Degenerate(t *testing.T) {
	if edges := Connect(nil); edges != nil {
		t.Errorf("Connect(nil) = %v, want nil", edges)
	}
	one := row(1, 0)
	if edges := Connect(one); edges != nil {
		t.Errorf("Connect(one room) = %v, want nil", edges)
	}
	if len(one[0].Connections) != 0 {
		t.Errorf("single room has connections %v", one[0].Connections)
	}
}
