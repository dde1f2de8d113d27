package dasher

import (
	"math"

	"github.com/vovakirdan/tui-dasher/internal/core"
)

// Visual characters for the terminal raster.
const (
	PlayerBody  = '█'
	PlayerHead  = '▄'
	PlayerLeg1  = '╱'
	PlayerLeg2  = '╲'
	ClearChar   = ' '
	BoxFillChar = ' '
)

// nebulaGlyphs cycles with the displayed obstacle frame.
var nebulaGlyphs = []rune{'@', '%', '#', '*', '+', '*', '#', '%'}

// bandStyle describes how one background pattern is drawn in cells.
type bandStyle struct {
	glyph  rune
	color  core.Color
	block  float64 // Texture pixels per building
	minH   float64 // Building height as a fraction of the band
	maxH   float64
	gapMod uint32 // Every gapMod-th block is empty; 0 for none
}

var bandStyles = map[string]bandStyle{
	"skyline": {glyph: '░', color: core.ColorGray, block: 32, minH: 0.35, maxH: 0.7},
	"towers":  {glyph: '▒', color: core.ColorBlue, block: 24, minH: 0.2, maxH: 0.45, gapMod: 3},
	"street":  {glyph: '▓', color: core.ColorMagenta, block: 44, minH: 0.04, maxH: 0.14, gapMod: 4},
}

// Raster maps world pixels onto a cell screen.
type Raster struct {
	WorldW, WorldH float64
	// TextLift raises outcome text by this many rows (banner animation).
	TextLift int
}

// Draw executes cmds into dst in order.
func (r Raster) Draw(dst *core.Screen, cmds []Command) {
	for _, c := range cmds {
		switch c.Kind {
		case CmdClear:
			dst.Fill(ClearChar, c.Color)
		case CmdRegion:
			if c.Layer != "" {
				r.drawBand(dst, c)
			} else {
				r.drawSprite(dst, c)
			}
		case CmdText:
			r.drawText(dst, c)
		}
	}
}

func (r Raster) cellX(dst *core.Screen, x float64) int {
	return int(math.Floor(x * float64(dst.Width()) / r.WorldW))
}

func (r Raster) cellY(dst *core.Screen, y float64) int {
	return int(math.Floor(y * float64(dst.Height()) / r.WorldH))
}

// worldX returns the world x at the center of cell column cx.
func (r Raster) worldX(dst *core.Screen, cx int) float64 {
	return (float64(cx) + 0.5) * r.WorldW / float64(dst.Width())
}

// BandProfile returns the building height at texture column u of a band
// pattern, as a fraction of the band height. Gaps between buildings are 0.
// Unknown patterns are drawn as a skyline.
func BandProfile(pattern string, u float64) float64 {
	style := bandStyleFor(pattern)
	if u < 0 {
		return 0
	}
	h := hash32(uint32(u / style.block))
	if style.gapMod > 0 && h%style.gapMod == 0 {
		return 0
	}
	return style.minH + (style.maxH-style.minH)*float64(h%1000)/999
}

// BandColor returns the color a band pattern is drawn in.
func BandColor(pattern string) core.Color {
	return bandStyleFor(pattern).color
}

func bandStyleFor(pattern string) bandStyle {
	if style, ok := bandStyles[pattern]; ok {
		return style
	}
	return bandStyles["skyline"]
}

// drawBand draws one tile of a parallax band as a row of buildings whose
// heights depend only on the texture column, so the band scrolls as a whole.
func (r Raster) drawBand(dst *core.Screen, c Command) {
	style := bandStyleFor(c.Layer)

	span := c.Src.W * c.Scale
	bandH := c.Src.H * c.Scale
	bottom := core.Min(r.cellY(dst, c.Dst.Y+bandH), dst.Height())

	x0 := core.Max(r.cellX(dst, c.Dst.X), 0)
	x1 := core.Min(r.cellX(dst, c.Dst.X+span), dst.Width())
	for cx := x0; cx < x1; cx++ {
		u := (r.worldX(dst, cx) - c.Dst.X) / c.Scale
		if u < 0 || u >= c.Src.W {
			continue
		}
		frac := BandProfile(c.Layer, u)
		if frac == 0 {
			continue
		}
		top := r.cellY(dst, c.Dst.Y+bandH*(1-frac))
		for cy := core.Max(top, 0); cy < bottom; cy++ {
			dst.SetColored(cx, cy, style.glyph, style.color)
		}
	}
}

// drawSprite draws the player or an obstacle inside its scaled frame box.
func (r Raster) drawSprite(dst *core.Screen, c Command) {
	scale := c.Scale
	if scale <= 0 {
		scale = 1
	}
	x0 := r.cellX(dst, c.Dst.X)
	y0 := r.cellY(dst, c.Dst.Y)
	x1 := r.cellX(dst, c.Dst.X+c.Src.W*scale)
	y1 := r.cellY(dst, c.Dst.Y+c.Src.H*scale)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	frame := 0
	if c.Src.W > 0 {
		frame = int(c.Src.X / c.Src.W)
	}

	switch c.Texture {
	case TexturePlayer:
		drawRunner(dst, x0, y0, x1, y1, frame)
	case TextureObstacle:
		drawNebula(dst, x0, y0, x1, y1, frame)
	default:
		dst.FillRect(x0, y0, x1-x0, y1-y0, '?', c.Color)
	}
}

// drawRunner draws the player in the middle half of its box: a head row,
// a body and legs that swap with the animation frame.
func drawRunner(dst *core.Screen, x0, y0, x1, y1, frame int) {
	w := x1 - x0
	left := x0 + w/4
	right := core.Max(x1-w/4, left+1)
	bottom := y1 - 1

	for x := left; x < right; x++ {
		dst.SetColored(x, y0, PlayerHead, core.ColorBrightYellow)
		for y := y0 + 1; y < bottom; y++ {
			dst.SetColored(x, y, PlayerBody, core.ColorYellow)
		}
	}

	legA, legB := PlayerLeg1, PlayerLeg2
	if frame%2 == 1 {
		legA, legB = legB, legA
	}
	for x := left; x < right; x++ {
		leg := legA
		if (x-left)%2 == 1 {
			leg = legB
		}
		dst.SetColored(x, bottom, leg, core.ColorYellow)
	}
}

// drawNebula draws an ellipse filling the box; its glyph and color pulse
// with the animation frame.
func drawNebula(dst *core.Screen, x0, y0, x1, y1, frame int) {
	glyph := nebulaGlyphs[frame%len(nebulaGlyphs)]
	color := core.ColorBrightMagenta
	if frame%2 == 1 {
		color = core.ColorMagenta
	}

	cx := float64(x0+x1-1) / 2
	cy := float64(y0+y1-1) / 2
	rx := math.Max(float64(x1-x0)/2, 0.5)
	ry := math.Max(float64(y1-y0)/2, 0.5)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dx := (float64(x) - cx) / rx
			dy := (float64(y) - cy) / ry
			if dx*dx+dy*dy <= 1 {
				dst.SetColored(x, y, glyph, color)
			}
		}
	}
}

// drawText draws the message centered in a box around the command's row.
// Large sizes are letter-spaced.
func (r Raster) drawText(dst *core.Screen, c Command) {
	text := c.Text
	if c.Size >= 60 {
		text = spaced(text)
	}

	n := len([]rune(text))
	boxW := n + 4
	boxH := 3
	boxX := (dst.Width() - boxW) / 2
	boxY := r.cellY(dst, c.Dst.Y) - boxH/2 - r.TextLift

	dst.FillRect(boxX, boxY, boxW, boxH, BoxFillChar, c.Color)
	dst.DrawBox(boxX, boxY, boxW, boxH, c.Color)
	dst.DrawText(boxX+2, boxY+1, text, c.Color)
}

func spaced(s string) string {
	runes := []rune(s)
	out := make([]rune, 0, 2*len(runes))
	for i, r := range runes {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, r)
	}
	return string(out)
}

// hash32 scrambles a block index into a stable pseudo-random value.
func hash32(x uint32) uint32 {
	x ^= x >> 16
	x *= 0x7feb352d
	x ^= x >> 15
	x *= 0x846ca68b
	x ^= x >> 16
	return x
}
