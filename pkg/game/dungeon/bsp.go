package dungeon

import (
	"math/rand"

	"darkdepths/pkg/engine/world"
)

// BSPPlacer lays out rooms using Binary Space Partitioning: the playable area
// is split recursively and a room is placed in some of the leaves.
type BSPPlacer struct{}

// Name returns the name of this placer
func (p *BSPPlacer) Name() string {
	return "bsp"
}

// bspNode represents a node in the BSP tree
type bspNode struct {
	x, y, width, height int
	left, right         *bspNode
}

// Place splits the area inside the grid border, shuffles the leaves, and
// places one room in each leaf until the target count is reached. Leaves too
// small for MinRoomSize are skipped.
func (p *BSPPlacer) Place(grid *world.Grid, cfg MapConfig, rng *rand.Rand) ([]Room, Stats) {
	target := targetRooms(cfg, rng)
	stats := Stats{TargetRooms: target}
	if grid.Width() < 3 || grid.Height() < 3 {
		return nil, stats
	}

	// Create BSP tree (leaving 1 cell border for perimeter walls)
	root := &bspNode{
		x:      1,
		y:      1,
		width:  grid.Width() - 2,
		height: grid.Height() - 2,
	}

	// A leaf needs room for the smallest room plus the separation strip on
	// its right and bottom edges.
	minSize := cfg.MinRoomSize + RoomSeparation
	if minSize < 2 {
		minSize = 2
	}
	splitBSP(root, minSize, rng)

	leaves := collectLeaves(root)
	rng.Shuffle(len(leaves), func(i, j int) {
		leaves[i], leaves[j] = leaves[j], leaves[i]
	})

	rooms := make([]Room, 0, target)
	for _, leaf := range leaves {
		if len(rooms) >= target {
			break
		}
		stats.Attempts++

		room, ok := leaf.createRoom(cfg, rng)
		if !ok || overlapsAny(room, rooms) {
			continue
		}

		grid.CarveRect(room.X, room.Y, room.Width, room.Height)
		rooms = append(rooms, room)
	}

	stats.PlacedRooms = len(rooms)
	return rooms, stats
}

// splitBSP recursively splits a BSP node
func splitBSP(node *bspNode, minSize int, rng *rand.Rand) {
	if node.width < minSize*2 && node.height < minSize*2 {
		return // Too small to split
	}

	// Decide split direction
	var splitHorizontal bool
	if node.width > node.height && node.width >= minSize*2 {
		splitHorizontal = false // Split vertically
	} else if node.height > node.width && node.height >= minSize*2 {
		splitHorizontal = true // Split horizontally
	} else if node.width >= minSize*2 && node.height >= minSize*2 {
		splitHorizontal = rng.Intn(2) == 0
	} else if node.width >= minSize*2 {
		splitHorizontal = false
	} else {
		splitHorizontal = true
	}

	if splitHorizontal {
		// Split horizontally (top and bottom)
		splitPoint := minSize + rng.Intn(node.height-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPoint}
		node.right = &bspNode{x: node.x, y: node.y + splitPoint, width: node.width, height: node.height - splitPoint}
	} else {
		// Split vertically (left and right)
		splitPoint := minSize + rng.Intn(node.width-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: splitPoint, height: node.height}
		node.right = &bspNode{x: node.x + splitPoint, y: node.y, width: node.width - splitPoint, height: node.height}
	}

	splitBSP(node.left, minSize, rng)
	splitBSP(node.right, minSize, rng)
}

// collectLeaves returns the leaves of the tree in left-to-right order
func collectLeaves(node *bspNode) []*bspNode {
	if node.left == nil && node.right == nil {
		return []*bspNode{node}
	}

	var leaves []*bspNode
	if node.left != nil {
		leaves = append(leaves, collectLeaves(node.left)...)
	}
	if node.right != nil {
		leaves = append(leaves, collectLeaves(node.right)...)
	}
	return leaves
}

// createRoom places a randomly sized room inside the leaf. The last
// RoomSeparation columns and rows of the leaf stay wall so rooms in
// neighbouring leaves never touch.
func (node *bspNode) createRoom(cfg MapConfig, rng *rand.Rand) (Room, bool) {
	availW := node.width - RoomSeparation
	availH := node.height - RoomSeparation
	if availW < cfg.MinRoomSize || availH < cfg.MinRoomSize {
		return Room{}, false
	}

	maxW := cfg.MaxRoomSize
	if maxW > availW {
		maxW = availW
	}
	maxH := cfg.MaxRoomSize
	if maxH > availH {
		maxH = availH
	}

	roomWidth := cfg.MinRoomSize + rng.Intn(maxW-cfg.MinRoomSize+1)
	roomHeight := cfg.MinRoomSize + rng.Intn(maxH-cfg.MinRoomSize+1)
	roomX := node.x + rng.Intn(availW-roomWidth+1)
	roomY := node.y + rng.Intn(availH-roomHeight+1)

	return Room{X: roomX, Y: roomY, Width: roomWidth, Height: roomHeight, Type: Normal}, true
}
