package sdlhost

import (
	"fmt"

	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/cobblekit/actionmenu/pkg/actionmenu"
	"github.com/cobblekit/actionmenu/pkg/actionmenu/constants"
	"github.com/cobblekit/actionmenu/pkg/actionmenu/internal"
)

// Canvas implements actionmenu.Canvas on an SDL renderer. Rendered text
// lines are cached as textures keyed by content and color.
type Canvas struct {
	renderer *sdl.Renderer
	fonts    *fontSet
	cache    *textureCache

	// When a theme ships an SVG arrow it stands in for the built-in
	// chevron glyph.
	arrowOverride *actionmenu.Glyph
}

func newCanvas(renderer *sdl.Renderer, fonts *fontSet) *Canvas {
	return &Canvas{
		renderer: renderer,
		fonts:    fonts,
		cache:    newTextureCache(),
	}
}

func (c *Canvas) destroy() {
	c.cache.destroy()
}

func (c *Canvas) FillRect(r actionmenu.Rect, col actionmenu.Color) {
	c.renderer.SetDrawColor(col.R, col.G, col.B, col.A)
	c.renderer.FillRect(&sdl.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H})
}

func (c *Canvas) FillRoundedRect(r actionmenu.Rect, radius int32, col actionmenu.Color) {
	gfx.RoundedBoxRGBA(c.renderer, r.X, r.Y, r.X+r.W-1, r.Y+r.H-1, radius, col.R, col.G, col.B, col.A)
}

func (c *Canvas) FillCircle(cx, cy, radius int32, col actionmenu.Color) {
	gfx.FilledCircleRGBA(c.renderer, cx, cy, radius, col.R, col.G, col.B, col.A)
}

// DrawText renders text word-wrapped to the bounds width, left aligned,
// top anchored. Lines past the bottom of the bounds are dropped.
func (c *Canvas) DrawText(text string, bounds actionmenu.Rect, col actionmenu.Color) {
	if text == "" {
		return
	}

	lineHeight := c.fonts.lineHeight()
	y := bounds.Y
	for _, line := range c.fonts.wrapText(text, bounds.W) {
		if y >= bounds.Y+bounds.H {
			break
		}
		if line != "" {
			c.drawLine(line, bounds.X, y, col)
		}
		y += lineHeight
	}
}

func (c *Canvas) drawLine(line string, x, y int32, col actionmenu.Color) {
	key := fmt.Sprintf("%s|%02x%02x%02x%02x", line, col.R, col.G, col.B, col.A)

	texture := c.cache.get(key)
	if texture == nil {
		surface, err := c.fonts.Menu.RenderUTF8Blended(line, sdl.Color{R: col.R, G: col.G, B: col.B, A: col.A})
		if err != nil {
			internal.GetFrameworkLogger().Warn("text render failed", "error", err)
			return
		}
		texture, err = c.renderer.CreateTextureFromSurface(surface)
		surface.Free()
		if err != nil {
			internal.GetFrameworkLogger().Warn("texture creation failed", "error", err)
			return
		}
		c.cache.set(key, texture)
	}

	_, _, w, h, err := texture.Query()
	if err != nil {
		return
	}
	c.renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: w, H: h})
}

// DrawGlyph blits a 1-bit glyph, one filled rect per set bit. Rows are
// packed LSB first, matching the layout in the constants package.
func (c *Canvas) DrawGlyph(g actionmenu.Glyph, x, y int32, col actionmenu.Color) {
	if c.arrowOverride != nil && g.W == constants.ArrowGlyphWidth && g.H == constants.ArrowGlyphHeight {
		g = *c.arrowOverride
	}

	c.renderer.SetDrawColor(col.R, col.G, col.B, col.A)
	bytesPerRow := int((g.W + 7) / 8)
	for row := int32(0); row < g.H; row++ {
		for bit := int32(0); bit < g.W; bit++ {
			b := g.Rows[int(row)*bytesPerRow+int(bit/8)]
			if b&(1<<(bit%8)) != 0 {
				c.renderer.FillRect(&sdl.Rect{X: x + bit, Y: y + row, W: 1, H: 1})
			}
		}
	}
}
