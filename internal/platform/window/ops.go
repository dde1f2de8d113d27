package window

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-dasher/internal/games/dasher"
)

// debugGlyphH is the height of ebitenutil's debug font.
const debugGlyphH = 16

// texKey identifies a generated texture. Bands are keyed by pattern too,
// since configs may reuse a texture slot for several patterns.
type texKey struct {
	id      dasher.TextureID
	pattern string
}

// drawOp is a region command resolved to ebiten terms.
type drawOp struct {
	key   texKey
	src   image.Rectangle
	scale float64
	x, y  float64
}

func regionOp(c dasher.Command) drawOp {
	scale := c.Scale
	if scale <= 0 {
		scale = 1
	}
	return drawOp{
		key: texKey{id: c.Texture, pattern: c.Layer},
		src: image.Rect(
			int(c.Src.X), int(c.Src.Y),
			int(c.Src.X+c.Src.W), int(c.Src.Y+c.Src.H),
		),
		scale: scale,
		x:     c.Dst.X,
		y:     c.Dst.Y,
	}
}

// textOp places text drawn with the debug font, scaled to the command's
// font size and raised by lift pixels.
func textOp(c dasher.Command, lift float64) drawOp {
	scale := float64(c.Size) / debugGlyphH
	if scale < 1 {
		scale = 1
	}
	return drawOp{
		scale: scale,
		x:     c.Dst.X,
		y:     c.Dst.Y - lift,
	}
}

func (o drawOp) geoM() ebiten.GeoM {
	var m ebiten.GeoM
	m.Scale(o.scale, o.scale)
	m.Translate(o.x, o.y)
	return m
}
