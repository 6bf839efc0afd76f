package ui

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/martin-jw/santas-little-digger/internal/actor"
	"github.com/martin-jw/santas-little-digger/internal/grid"
	"github.com/martin-jw/santas-little-digger/internal/tiledata"
	"github.com/martin-jw/santas-little-digger/internal/tilemap"
)

// edgeGlyphs maps an auto-tile offset to a display glyph, mirroring the
// atlas ordering convention: index 0 is the fully-connected interior, index
// 1 the isolated tile, the rest edge and corner variants.
var edgeGlyphs = [16]rune{
	'█', '◆', '▀', '▐', '▄', '▌', '◤', '◢', '◣', '◥',
	'▬', '▮', '▛', '▜', '▟', '▙',
}

// Renderer draws the world to the screen with the camera locked to the
// player's continuous position.
type Renderer struct {
	screen *Screen
	styles map[string]tcell.Style // keyed by hex color
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{
		screen: screen,
		styles: make(map[string]tcell.Style),
	}
}

// RenderLoading draws the pre-generation loading screen.
func (r *Renderer) RenderLoading() {
	r.screen.Clear()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range "Loading..." {
		r.screen.SetContent(i, 0, ch, style)
	}
	r.screen.Show()
}

// Render draws every visible tile and the player. The player renders at the
// viewport center; tiles are placed relative to the player's interpolated
// world position, so the camera glides during movement. World Y grows
// upward, terminal Y downward, hence the flip.
func (r *Renderer) Render(m *tilemap.Tilemap, player *actor.Actor) {
	r.screen.Clear()

	width, height := r.screen.Size()
	camX := player.WorldX / m.TileSize
	camY := player.WorldY / m.TileSize

	for y := uint32(0); y < m.Size.Height; y++ {
		for x := uint32(0); x < m.Size.Width; x++ {
			pos := grid.TilePos{X: x, Y: y}
			tile, ok := m.Tile(pos)
			if !ok || !tile.Visible {
				continue
			}

			sx := width/2 + int(math.Round(float64(x)+0.5-camX))
			sy := height/2 - int(math.Round(float64(y)+0.5-camY))
			if sx < 0 || sx >= width || sy < 0 || sy >= height {
				continue
			}
			r.screen.SetContent(sx, sy, tileGlyph(tile), r.styleFor(tile.Color))
		}
	}

	playerStyle := tcell.StyleDefault.
		Foreground(tcell.ColorYellow).
		Bold(true)
	r.screen.SetContent(width/2, height/2, player.Glyph, playerStyle)

	r.screen.Show()
}

// tileGlyph picks the glyph for a tile. Directional tiles with a nonzero
// auto-tile offset show their edge variant; everything else uses the
// definition glyph.
func tileGlyph(tile *tilemap.Entity) rune {
	if offset := tile.TextureOffset(); offset > 0 && offset < 16 {
		return edgeGlyphs[offset]
	}
	return tile.Glyph
}

// styleFor resolves and caches the style for a hex color.
func (r *Renderer) styleFor(hex string) tcell.Style {
	if style, ok := r.styles[hex]; ok {
		return style
	}

	color, err := tiledata.ParseHexColor(hex)
	if err != nil {
		color = tcell.ColorWhite
	}
	style := tcell.StyleDefault.Foreground(color)
	r.styles[hex] = style
	return style
}
