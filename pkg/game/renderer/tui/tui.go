// Package tui draws maps as coloured text for a terminal.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"darkdepths/pkg/engine/pathfind"
	"darkdepths/pkg/engine/terminal"
	"darkdepths/pkg/game/locale"
	"darkdepths/pkg/game/renderer"
)

// legendColumn is the display width reserved for each legend label
const legendColumn = 12

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out   io.Writer
	plain bool
	cols  int

	styles map[renderer.TextStyle]color.Style
}

// New creates a new TUI renderer writing to out
func New(out io.Writer) *TUIRenderer {
	return &TUIRenderer{out: out}
}

// SetPlain switches to ASCII glyphs without colour codes
func (t *TUIRenderer) SetPlain(plain bool) {
	t.plain = plain
}

// SetWidth fixes the number of columns drawn. Zero means the terminal width.
func (t *TUIRenderer) SetWidth(cols int) {
	t.cols = cols
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.styles = map[renderer.TextStyle]color.Style{
		renderer.StyleWall:     {color.FgGray},
		renderer.StyleCorridor: {color.FgWhite},
		renderer.StyleRoom:     {color.FgBlue},
		renderer.StyleStart:    {color.FgGreen, color.OpBold},
		renderer.StyleBoss:     {color.FgRed, color.OpBold},
		renderer.StyleTreasure: {color.FgYellow, color.OpBold},
		renderer.StyleShop:     {color.FgCyan},
		renderer.StylePath:     {color.FgMagenta, color.OpBold},
		renderer.StyleTitle:    {color.FgGreen, color.OpBold},
		renderer.StyleSubtle:   {color.FgGray, color.OpBold},
	}
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	if t.plain {
		return text
	}
	if s, ok := t.styles[style]; ok {
		return s.Sprint(text)
	}
	return text
}

// GetViewportSize returns the number of rows and columns available
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	width, height := terminal.GetSize()
	if t.cols > 0 {
		width = t.cols
	}
	return height, width
}

// RenderFrame writes the title, the map clipped to the viewport width, a
// legend and the room table
func (t *TUIRenderer) RenderFrame(f renderer.Frame) error {
	if t.styles == nil {
		t.Init()
	}

	var sb strings.Builder
	if f.Title != "" {
		sb.WriteString(t.StyleText(f.Title, renderer.StyleTitle))
		sb.WriteString("\n")
	}
	if f.Map == nil {
		sb.WriteString(t.StyleText("-", renderer.StyleSubtle))
		sb.WriteString("\n")
		_, err := io.WriteString(t.out, sb.String())
		return err
	}

	_, cols := t.GetViewportSize()
	t.writeMap(&sb, renderer.NewLayout(f), cols)
	sb.WriteString("\n")
	t.writeLegend(&sb, cols)
	sb.WriteString("\n")
	t.writeSummary(&sb, f)
	t.writeRooms(&sb, f)

	_, err := io.WriteString(t.out, sb.String())
	return err
}

// writeMap draws one line per grid row. Runs of cells with the same style are
// coloured together to keep the escape codes down.
func (t *TUIRenderer) writeMap(sb *strings.Builder, layout *renderer.Layout, cols int) {
	width, height := layout.Size()
	if cols > 0 && width > cols {
		width = cols
	}

	for y := 0; y < height; y++ {
		var run strings.Builder
		runStyle := renderer.StyleNormal
		for x := 0; x < width; x++ {
			style := layout.Style(x, y)
			if style != runStyle && run.Len() > 0 {
				sb.WriteString(t.StyleText(run.String(), runStyle))
				run.Reset()
			}
			runStyle = style
			run.WriteString(renderer.Glyph(style, t.plain))
		}
		if run.Len() > 0 {
			sb.WriteString(t.StyleText(run.String(), runStyle))
		}
		sb.WriteString("\n")
	}
}

func (t *TUIRenderer) writeLegend(sb *strings.Builder, cols int) {
	sb.WriteString(t.StyleText(locale.Get("Legend"), renderer.StyleTitle))
	sb.WriteString("\n")

	entryWidth := 2 + legendColumn
	perLine := 1
	if cols > entryWidth {
		perLine = cols / entryWidth
	}

	for i, entry := range renderer.Legend() {
		if i > 0 && i%perLine == 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(t.StyleText(renderer.Glyph(entry.Style, t.plain), entry.Style))
		sb.WriteString(" ")
		sb.WriteString(runewidth.FillRight(runewidth.Truncate(entry.Label, legendColumn, "…"), legendColumn+1))
	}
	sb.WriteString("\n")
}

func (t *TUIRenderer) writeSummary(sb *strings.Builder, f renderer.Frame) {
	m := f.Map
	sb.WriteString(locale.Get("%d rooms, %d corridors, seed %d", len(m.Rooms), len(m.Edges), m.Seed))
	sb.WriteString("\n")
	if m.Stats.Shortfall() > 0 {
		sb.WriteString(t.StyleText(locale.Get("Placed %d of %d rooms", m.Stats.PlacedRooms, m.Stats.TargetRooms), renderer.StyleSubtle))
		sb.WriteString("\n")
	}
	if f.Path != nil {
		if len(f.Path) == 0 {
			sb.WriteString(t.StyleText(locale.Get("No path"), renderer.StyleBoss))
		} else {
			sb.WriteString(t.StyleText(locale.Get("Path length %d", pathfind.PathLength(f.Path)), renderer.StylePath))
		}
		sb.WriteString("\n")
	}
}

// writeRooms prints one line per room: index, type, position, size and links
func (t *TUIRenderer) writeRooms(sb *strings.Builder, f renderer.Frame) {
	sb.WriteString("\n")
	sb.WriteString(t.StyleText(locale.Get("Rooms"), renderer.StyleTitle))
	sb.WriteString("\n")

	labelWidth := 0
	for _, r := range f.Map.Rooms {
		if w := runewidth.StringWidth(renderer.RoomLabel(r.Type)); w > labelWidth {
			labelWidth = w
		}
	}

	for i, r := range f.Map.Rooms {
		label := runewidth.FillRight(renderer.RoomLabel(r.Type), labelWidth)
		links := make([]string, len(r.Connections))
		for k, j := range r.Connections {
			links[k] = fmt.Sprint(j)
		}
		fmt.Fprintf(sb, "%3d %s %s (%d,%d) %dx%d -> %s\n",
			i,
			t.StyleText(renderer.Glyph(renderer.RoomStyle(r.Type), t.plain), renderer.RoomStyle(r.Type)),
			label, r.X, r.Y, r.Width, r.Height, strings.Join(links, ","))
	}
}
