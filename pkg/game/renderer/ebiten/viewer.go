package ebiten

import (
	"bytes"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gomono"

	"darkdepths/pkg/engine/pathfind"
	"darkdepths/pkg/engine/world"
	"darkdepths/pkg/game/dungeon"
	"darkdepths/pkg/game/locale"
	"darkdepths/pkg/game/mapmanager"
	"darkdepths/pkg/game/renderer"
)

// Viewer is an ebiten.Game showing the manager's current map. R regenerates
// the map with the viewer's config, a left click draws the path from the
// start room centre to the clicked tile, and Escape closes the window.
type Viewer struct {
	manager  *mapmanager.Manager
	cfg      dungeon.MapConfig
	tileSize int

	frame  renderer.Frame
	layout *renderer.Layout
	status string
	failed bool

	fontSource  *text.GoTextFaceSource
	face        *text.GoTextFace
	unsubscribe func()
}

// New creates a viewer. tileSize <= 0 uses the default.
func New(manager *mapmanager.Manager, cfg dungeon.MapConfig, tileSize int) *Viewer {
	if tileSize <= 0 {
		tileSize = defaultTileSize
	}
	v := &Viewer{
		manager:  manager,
		cfg:      cfg,
		tileSize: tileSize,
	}
	v.unsubscribe = manager.Subscribe(v.onMapEvent)
	v.showMap(manager.Current())
	return v
}

// Init loads the font
func (v *Viewer) Init() {
	if v.fontSource != nil {
		return
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		// Text is skipped without a font; the map still draws.
		return
	}
	v.fontSource = src
	v.face = &text.GoTextFace{Source: src, Size: fontSize}
}

// Run opens the window and blocks until it is closed
func (v *Viewer) Run(title string) error {
	defer v.unsubscribe()
	v.Init()

	w, h := v.screenSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(v)
}

// RenderFrame replaces what the viewer shows. The next Draw picks it up.
func (v *Viewer) RenderFrame(f renderer.Frame) error {
	v.frame = f
	v.layout = renderer.NewLayout(f)
	return nil
}

// StyleText returns the text unchanged; colours come from the palette
func (v *Viewer) StyleText(s string, style renderer.TextStyle) string {
	return s
}

// GetViewportSize returns the map size in tiles
func (v *Viewer) GetViewportSize() (rows, cols int) {
	cols, rows = v.layout.Size()
	return rows, cols
}

func (v *Viewer) onMapEvent(e mapmanager.Event) {
	v.showMap(e.Map)
}

func (v *Viewer) showMap(m *dungeon.MapData) {
	v.RenderFrame(renderer.Frame{Map: m})
	v.failed = false
	if m == nil {
		v.status = ""
		return
	}
	v.status = locale.Get("%d rooms, %d corridors, seed %d", len(m.Rooms), len(m.Edges), m.Seed)
}

// Update handles input (Ebiten interface)
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if _, err := v.manager.GenerateMap(v.cfg); err != nil {
			v.status = err.Error()
			v.failed = true
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if p, ok := v.tileAt(x, y); ok {
			v.pathTo(p)
		}
	}
	return nil
}

// tileAt converts screen coordinates to a grid position
func (v *Viewer) tileAt(sx, sy int) (world.Point, bool) {
	w, h := v.layout.Size()
	x := (sx - mapMargin) / v.tileSize
	y := (sy - mapMargin) / v.tileSize
	if sx < mapMargin || sy < mapMargin || x >= w || y >= h {
		return world.Point{}, false
	}
	return world.Pt(x, y), true
}

func (v *Viewer) pathTo(p world.Point) {
	start, ok := v.manager.GetStartRoom()
	if !ok {
		return
	}
	c := start.Center()
	path := v.manager.FindPath(c.X, c.Y, p.X, p.Y)

	frame := v.frame
	frame.Path = path
	v.RenderFrame(frame)

	v.failed = len(path) == 0
	if v.failed {
		v.status = locale.Get("No path")
		return
	}
	v.status = locale.Get("Path length %d", pathfind.PathLength(path))
}

// Draw renders the map and status line (Ebiten interface)
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	w, h := v.layout.Size()
	ts := float32(v.tileSize)
	vector.DrawFilledRect(screen, mapMargin/2, mapMargin/2,
		float32(w)*ts+mapMargin, float32(h)*ts+mapMargin, colorMapBackground, false)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			style := v.layout.Style(x, y)
			c, ok := tileColors[style]
			if !ok {
				continue
			}
			// One pixel gap between floor tiles keeps the grid readable
			gap := float32(1)
			if style == renderer.StyleWall {
				gap = 0
			}
			vector.DrawFilledRect(screen,
				mapMargin+float32(x)*ts, mapMargin+float32(y)*ts,
				ts-gap, ts-gap, c, false)
		}
	}

	statusY := float64(mapMargin + h*v.tileSize + mapMargin/2)
	statusColor := colorText
	if v.failed {
		statusColor = colorDenied
	}
	v.drawText(screen, v.status, mapMargin, statusY, statusColor)
	v.drawText(screen, locale.Get("R: regenerate  Click: path from entrance  Esc: quit"), mapMargin, statusY+fontSize+6, colorSubtle)
}

func (v *Viewer) drawText(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	if v.face == nil || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, v.face, op)
}

// Layout returns the viewer's logical screen size (Ebiten interface)
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.screenSize()
}

func (v *Viewer) screenSize() (int, int) {
	w, h := v.layout.Size()
	if w == 0 || h == 0 {
		w, h = v.cfg.Width, v.cfg.Height
	}
	return w*v.tileSize + mapMargin*2, h*v.tileSize + mapMargin*2 + statusHeight
}

var _ renderer.Renderer = (*Viewer)(nil)
