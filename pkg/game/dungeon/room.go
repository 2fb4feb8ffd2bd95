package dungeon

import (
	"slices"

	"darkdepths/pkg/engine/world"
)

// RoomType is the semantic role of a room
type RoomType int

// Room types. New rooms start as Normal.
const (
	Normal RoomType = iota
	Start
	Boss
	Treasure
	Shop
)

// AllRoomTypes returns every room type in declaration order
func AllRoomTypes() []RoomType {
	return []RoomType{Normal, Start, Boss, Treasure, Shop}
}

// String returns the string representation of a room type
func (t RoomType) String() string {
	switch t {
	case Normal:
		return "Normal"
	case Start:
		return "Start"
	case Boss:
		return "Boss"
	case Treasure:
		return "Treasure"
	case Shop:
		return "Shop"
	default:
		return "Unknown"
	}
}

// Room is an axis-aligned rectangle of floor tiles. Connections holds the
// indices, into the owning room slice, of the rooms joined to this one by a
// corridor.
type Room struct {
	X, Y          int
	Width, Height int
	Type          RoomType
	Connections   []int
}

// Clone returns a copy of the room that shares no memory with r
func (r Room) Clone() Room {
	r.Connections = slices.Clone(r.Connections)
	return r
}

// CloneRooms deep-copies a room slice
func CloneRooms(rooms []Room) []Room {
	if rooms == nil {
		return nil
	}
	out := make([]Room, len(rooms))
	for i, r := range rooms {
		out[i] = r.Clone()
	}
	return out
}

// Center returns the integer centre tile of the room
func (r Room) Center() world.Point {
	return world.Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether (x, y) lies inside the room
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersects reports whether r, grown by margin tiles on every side, overlaps other
func (r Room) Intersects(other Room, margin int) bool {
	return r.X-margin < other.X+other.Width && r.X+r.Width+margin > other.X &&
		r.Y-margin < other.Y+other.Height && r.Y+r.Height+margin > other.Y
}

// Area returns the number of tiles covered by the room
func (r Room) Area() int {
	return r.Width * r.Height
}

// IsConnectedTo reports whether the room index j is in r's connections
func (r Room) IsConnectedTo(j int) bool {
	for _, c := range r.Connections {
		if c == j {
			return true
		}
	}
	return false
}

// CenterDistance returns the Manhattan distance between two room centres
func CenterDistance(a, b Room) int {
	return world.ManhattanDistance(a.Center(), b.Center())
}

// connect records an undirected connection between rooms i and j
func connect(rooms []Room, i, j int) {
	rooms[i].Connections = append(rooms[i].Connections, j)
	rooms[j].Connections = append(rooms[j].Connections, i)
}
