package dungeon

import "sort"

// Edge is an undirected corridor between rooms A and B, weighted by the
// Manhattan distance between their centres.
type Edge struct {
	A, B   int
	Weight int
}

// candidateEdges returns every room pair (i < j) in index order
func candidateEdges(rooms []Room) []Edge {
	edges := make([]Edge, 0, len(rooms)*(len(rooms)-1)/2)
	for i := range rooms {
		for j := i + 1; j < len(rooms); j++ {
			edges = append(edges, Edge{A: i, B: j, Weight: CenterDistance(rooms[i], rooms[j])})
		}
	}
	return edges
}

// Connect computes a minimum spanning tree over the room centres with
// Kruskal's algorithm and records each tree edge in both rooms'
// Connections. Equal-weight edges keep their index order. The tree edges are
// returned in the order they were accepted.
func Connect(rooms []Room) []Edge {
	if len(rooms) < 2 {
		return nil
	}

	edges := candidateEdges(rooms)
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	uf := newUnionFind(len(rooms))
	tree := make([]Edge, 0, len(rooms)-1)
	for _, e := range edges {
		if uf.sets == 1 {
			break
		}
		if !uf.union(e.A, e.B) {
			continue
		}
		connect(rooms, e.A, e.B)
		tree = append(tree, e)
	}
	return tree
}

// TotalWeight returns the sum of the edge weights
func TotalWeight(edges []Edge) int {
	total := 0
	for _, e := range edges {
		total += e.Weight
	}
	return total
}
