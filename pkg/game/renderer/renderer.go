// Package renderer turns a generated map into something a player can look at.
// Backends live in the tui and ebiten subpackages; this package holds what
// they share: per-cell styles, glyphs and labels.
package renderer

import (
	"github.com/zyedidia/generic/mapset"

	"darkdepths/pkg/engine/world"
	"darkdepths/pkg/game/dungeon"
	"darkdepths/pkg/game/locale"
)

// Glyphs for each style, Unicode and plain ASCII
var (
	glyphs = map[TextStyle]string{
		StyleWall:     "▒",
		StyleCorridor: "░",
		StyleRoom:     "·",
		StyleStart:    "◎",
		StyleBoss:     "◆",
		StyleTreasure: "■",
		StyleShop:     "□",
		StylePath:     "•",
	}
	plainGlyphs = map[TextStyle]string{
		StyleWall:     "#",
		StyleCorridor: ",",
		StyleRoom:     ".",
		StyleStart:    "S",
		StyleBoss:     "B",
		StyleTreasure: "T",
		StyleShop:     "$",
		StylePath:     "*",
	}
)

// Glyph returns the character drawn for a cell of the given style
func Glyph(style TextStyle, plain bool) string {
	if plain {
		return plainGlyphs[style]
	}
	return glyphs[style]
}

// RoomStyle returns the style used for floor tiles of a room type
func RoomStyle(t dungeon.RoomType) TextStyle {
	switch t {
	case dungeon.Start:
		return StyleStart
	case dungeon.Boss:
		return StyleBoss
	case dungeon.Treasure:
		return StyleTreasure
	case dungeon.Shop:
		return StyleShop
	default:
		return StyleRoom
	}
}

// RoomLabel returns the display name of a room type
func RoomLabel(t dungeon.RoomType) string {
	return locale.Get(t.String())
}

// LegendEntry pairs a style with its display label
type LegendEntry struct {
	Style TextStyle
	Label string
}

// Legend returns the legend entries in display order
func Legend() []LegendEntry {
	entries := []LegendEntry{
		{StyleWall, locale.Get("Wall")},
		{StyleCorridor, locale.Get("Corridor")},
	}
	for _, t := range dungeon.AllRoomTypes() {
		entries = append(entries, LegendEntry{RoomStyle(t), RoomLabel(t)})
	}
	return append(entries, LegendEntry{StylePath, locale.Get("Path")})
}

// Layout resolves the style of every cell of a frame. Building one is linear
// in the grid area; lookups are constant time.
type Layout struct {
	grid   *world.Grid
	rooms  [][]int
	path   mapset.Set[world.Point]
	roomOf []dungeon.RoomType
}

// NewLayout indexes the rooms and path of a frame
func NewLayout(f Frame) *Layout {
	l := &Layout{path: mapset.New[world.Point]()}
	if f.Map == nil || f.Map.Grid == nil {
		return l
	}

	l.grid = f.Map.Grid
	l.rooms = make([][]int, l.grid.Height())
	for y := range l.rooms {
		l.rooms[y] = make([]int, l.grid.Width())
		for x := range l.rooms[y] {
			l.rooms[y][x] = -1
		}
	}
	for i, r := range f.Map.Rooms {
		l.roomOf = append(l.roomOf, r.Type)
		for y := r.Y; y < r.Y+r.Height; y++ {
			for x := r.X; x < r.X+r.Width; x++ {
				if l.grid.InBounds(x, y) {
					l.rooms[y][x] = i
				}
			}
		}
	}
	for _, p := range f.Path {
		l.path.Put(p)
	}
	return l
}

// Size returns the grid dimensions, or zero when there is no map
func (l *Layout) Size() (width, height int) {
	if l.grid == nil {
		return 0, 0
	}
	return l.grid.Width(), l.grid.Height()
}

// Style returns the style of the cell at (x, y). Path cells take priority
// over room and corridor floor.
func (l *Layout) Style(x, y int) TextStyle {
	if l.grid == nil || !l.grid.IsWalkable(x, y) {
		return StyleWall
	}
	if l.path.Has(world.Pt(x, y)) {
		return StylePath
	}
	if i := l.rooms[y][x]; i >= 0 {
		return RoomStyle(l.roomOf[i])
	}
	return StyleCorridor
}
