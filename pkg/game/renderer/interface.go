package renderer

import (
	"darkdepths/pkg/engine/world"
	"darkdepths/pkg/game/dungeon"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleWall
	StyleCorridor
	StyleRoom
	StyleStart
	StyleBoss
	StyleTreasure
	StyleShop
	StylePath
	StyleTitle
	StyleSubtle
)

// Frame is everything a renderer draws in one go: the map, read-only, and an
// optional path overlay
type Frame struct {
	Title string
	Map   *dungeon.MapData
	Path  []world.Point
}

// Renderer defines the interface for map rendering backends.
// Renderers only read the map; they never change it.
type Renderer interface {
	// Init initializes the renderer (colors, fonts, window, etc.)
	Init()

	// RenderFrame draws a complete frame
	RenderFrame(f Frame) error

	// StyleText applies a style to text and returns the styled string
	// For TUI this applies ANSI colors, for GUI it may return the text unchanged
	StyleText(text string, style TextStyle) string

	// GetViewportSize returns the current viewport dimensions (rows, cols)
	GetViewportSize() (rows, cols int)
}
