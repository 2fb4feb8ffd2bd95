// Package dungeon generates single-floor dungeon maps: non-overlapping
// rectangular rooms joined by a minimum spanning tree of L-shaped corridors,
// with one start room, a boss room and treasure/shop rooms assigned on top.
package dungeon

import (
	"errors"
	"fmt"
)

// Generation constants
const (
	// MaxPlacementAttempts is how many candidate rectangles a placer samples
	// for one room slot before giving up on that slot.
	MaxPlacementAttempts = 100

	// RoomSeparation is the minimum number of wall tiles between two rooms.
	RoomSeparation = 1

	// MaxGridSize caps the width and height of a map.
	MaxGridSize = 500

	// MaxRoomCount caps MaxRooms. Connecting rooms considers every pair, so
	// the room count is kept to the hundreds.
	MaxRoomCount = 500
)

// Errors returned by generation
var (
	ErrInvalidConfig = errors.New("invalid map config")
	ErrNoRooms       = errors.New("no rooms could be placed")
	ErrInvariant     = errors.New("generated map violates an invariant")
)

// MapConfig holds the parameters for one generation run
type MapConfig struct {
	Width            int `yaml:"width"`
	Height           int `yaml:"height"`
	MinRooms         int `yaml:"min_rooms"`
	MaxRooms         int `yaml:"max_rooms"`
	MinRoomSize      int `yaml:"min_room_size"`
	MaxRoomSize      int `yaml:"max_room_size"`
	MinTreasureRooms int `yaml:"min_treasure_rooms"`
	MinShopRooms     int `yaml:"min_shop_rooms"`
}

// DefaultConfig returns a 50x50 map with 10-15 rooms of size 5-10
func DefaultConfig() MapConfig {
	return MapConfig{
		Width:            50,
		Height:           50,
		MinRooms:         10,
		MaxRooms:         15,
		MinRoomSize:      5,
		MaxRoomSize:      10,
		MinTreasureRooms: 2,
		MinShopRooms:     1,
	}
}

// Validate rejects configs the generator cannot work with. Configs that merely
// make it hard to reach MinRooms are accepted.
func (c MapConfig) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: grid size %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	case c.Width > MaxGridSize || c.Height > MaxGridSize:
		return fmt.Errorf("%w: grid size %dx%d exceeds %dx%d", ErrInvalidConfig, c.Width, c.Height, MaxGridSize, MaxGridSize)
	case c.MinRoomSize < 1:
		return fmt.Errorf("%w: min room size %d must be at least 1", ErrInvalidConfig, c.MinRoomSize)
	case c.MaxRoomSize > MaxGridSize:
		return fmt.Errorf("%w: max room size %d exceeds %d", ErrInvalidConfig, c.MaxRoomSize, MaxGridSize)
	case c.MinRoomSize > c.MaxRoomSize:
		return fmt.Errorf("%w: min room size %d exceeds max room size %d", ErrInvalidConfig, c.MinRoomSize, c.MaxRoomSize)
	case c.MinRooms < 0 || c.MaxRooms < 1:
		return fmt.Errorf("%w: room count range [%d, %d] is empty", ErrInvalidConfig, c.MinRooms, c.MaxRooms)
	case c.MaxRooms > MaxRoomCount:
		return fmt.Errorf("%w: max rooms %d exceeds %d", ErrInvalidConfig, c.MaxRooms, MaxRoomCount)
	case c.MinRooms > c.MaxRooms:
		return fmt.Errorf("%w: min rooms %d exceeds max rooms %d", ErrInvalidConfig, c.MinRooms, c.MaxRooms)
	case c.MinTreasureRooms < 0 || c.MinShopRooms < 0:
		return fmt.Errorf("%w: treasure (%d) and shop (%d) minimums must not be negative", ErrInvalidConfig, c.MinTreasureRooms, c.MinShopRooms)
	}
	return nil
}

// Relaxed returns a config more likely to place at least one room: rooms are
// shrunk to fit inside the grid border and the room count floor drops to one.
func (c MapConfig) Relaxed() MapConfig {
	r := c
	fit := c.Width - 2
	if h := c.Height - 2; h < fit {
		fit = h
	}
	if fit < 1 {
		fit = 1
	}
	if r.MaxRoomSize > fit {
		r.MaxRoomSize = fit
	}
	if r.MinRoomSize > r.MaxRoomSize {
		r.MinRoomSize = r.MaxRoomSize
	}
	if r.MinRoomSize > 3 {
		r.MinRoomSize = (r.MinRoomSize + 1) / 2
	}
	if r.MinRooms > 1 {
		r.MinRooms = 1
	}
	if r.MaxRooms < 1 {
		r.MaxRooms = 1
	}
	return r
}

// LevelConfig scales the default config with the level number: the grid and
// room counts grow each level and are capped, and deeper levels ask for more
// treasure and shop rooms.
// Level 1: 40x30 with 6-9 rooms, Level 5: 64x46 with 10-13 rooms, Level 10: 94x66 with 15-18 rooms
func LevelConfig(level int) MapConfig {
	if level < 1 {
		level = 1
	}

	width := 34 + level*6
	height := 26 + level*4

	// Cap maximum size
	if width > 120 {
		width = 120
	}
	if height > 80 {
		height = 80
	}

	minRooms := 5 + level
	if minRooms > 20 {
		minRooms = 20
	}

	return MapConfig{
		Width:            width,
		Height:           height,
		MinRooms:         minRooms,
		MaxRooms:         minRooms + 3,
		MinRoomSize:      4,
		MaxRoomSize:      min(8+level/3, 20),
		MinTreasureRooms: 1 + level/4,
		MinShopRooms:     1,
	}
}
