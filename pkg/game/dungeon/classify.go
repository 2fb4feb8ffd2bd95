package dungeon

import "math/rand"

// Classify assigns room roles in place: one random room becomes Start, the
// room furthest from it (by centre Manhattan distance, first one wins on a
// tie) becomes Boss, then up to MinTreasureRooms and MinShopRooms of the
// remaining Normal rooms are picked at random. Fewer special rooms are
// assigned when there are not enough Normal rooms left.
func Classify(rooms []Room, cfg MapConfig, rng *rand.Rand) {
	if len(rooms) == 0 {
		return
	}
	for i := range rooms {
		rooms[i].Type = Normal
	}

	start := rng.Intn(len(rooms))
	rooms[start].Type = Start

	boss, bossDist := -1, -1
	for i := range rooms {
		if i == start {
			continue
		}
		if d := CenterDistance(rooms[start], rooms[i]); d > bossDist {
			boss, bossDist = i, d
		}
	}
	if boss >= 0 {
		rooms[boss].Type = Boss
	}

	var candidates []int
	for i := range rooms {
		if rooms[i].Type == Normal {
			candidates = append(candidates, i)
		}
	}
	candidates = assignRandom(rooms, candidates, Treasure, cfg.MinTreasureRooms, rng)
	assignRandom(rooms, candidates, Shop, cfg.MinShopRooms, rng)
}

// assignRandom gives up to count random candidates the room type and returns
// the candidates left over
func assignRandom(rooms []Room, candidates []int, t RoomType, count int, rng *rand.Rand) []int {
	for n := 0; n < count && len(candidates) > 0; n++ {
		pick := rng.Intn(len(candidates))
		rooms[candidates[pick]].Type = t
		candidates = append(candidates[:pick], candidates[pick+1:]...)
	}
	return candidates
}
