// Package ebiten shows generated maps in a window and lets the user
// regenerate them and query paths with the mouse.
package ebiten

import (
	"image/color"

	"darkdepths/pkg/game/renderer"
)

// Color palette for the viewer
var (
	colorBackground    = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground = color.RGBA{15, 15, 26, 255}    // Darker for map area
	colorText          = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorSubtle        = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorDenied        = color.RGBA{255, 100, 100, 255} // Bright red

	tileColors = map[renderer.TextStyle]color.RGBA{
		renderer.StyleWall:     {60, 60, 80, 255},
		renderer.StyleCorridor: {100, 100, 120, 255},
		renderer.StyleRoom:     {160, 160, 180, 255},
		renderer.StyleStart:    {0, 220, 0, 255},
		renderer.StyleBoss:     {255, 80, 80, 255},
		renderer.StyleTreasure: {255, 200, 100, 255},
		renderer.StyleShop:     {100, 150, 255, 255},
		renderer.StylePath:     {255, 150, 255, 255},
	}
)

// Layout constants
const (
	defaultTileSize = 12
	mapMargin       = 20
	statusHeight    = 48
	fontSize        = 14
)
