package window

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/vovakirdan/tui-dasher/internal/config"
	"github.com/vovakirdan/tui-dasher/internal/core"
	"github.com/vovakirdan/tui-dasher/internal/games/dasher"
)

// Palette for the generated sprites.
var (
	scarfColor  = color.RGBA{210, 60, 60, 255}
	skinColor   = color.RGBA{240, 200, 160, 255}
	bodyColor   = color.RGBA{70, 90, 160, 255}
	nebulaOuter = color.RGBA{150, 60, 200, 255}
	nebulaInner = color.RGBA{250, 150, 250, 255}
	windowLight = color.RGBA{250, 230, 120, 255}
)

// toRGBA converts a core color to an image color.
func toRGBA(c core.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{r, g, b, a}
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(img, r.Intersect(img.Bounds()), &image.Uniform{C: c}, image.Point{}, draw.Src)
}

func fillCircle(img *image.RGBA, cx, cy, radius float64, clip image.Rectangle, c color.Color) {
	r := image.Rect(
		int(math.Floor(cx-radius)), int(math.Floor(cy-radius)),
		int(math.Ceil(cx+radius))+1, int(math.Ceil(cy+radius))+1,
	).Intersect(clip)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
			if dx*dx+dy*dy <= radius*radius {
				img.Set(x, y, c)
			}
		}
	}
}

// PlayerSheet draws a horizontal strip of running frames: a figure with a
// red scarf whose legs swing through one stride across the strip.
func PlayerSheet(sheet config.SpriteSheet) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, sheet.Width, sheet.Height))
	fw, fh := sheet.FrameWidth(), sheet.FrameHeight()
	if fw == 0 || fh == 0 {
		return img
	}

	for i := 0; i < sheet.Frames; i++ {
		ox := i * fw
		clip := image.Rect(ox, 0, ox+fw, fh)
		unit := float64(fw) / 16

		cx := float64(ox) + float64(fw)/2
		phase := 2 * math.Pi * float64(i) / float64(sheet.Frames)
		swing := math.Sin(phase) * 3 * unit

		// Legs
		hip := int(10 * unit)
		for _, dx := range []float64{swing, -swing} {
			foot := int(cx + dx)
			fillRect(img, image.Rect(foot-int(unit), hip, foot+int(unit), fh).Intersect(clip), bodyColor)
		}

		// Torso, scarf, head
		fillRect(img, image.Rect(int(cx-2*unit), int(5*unit), int(cx+2*unit), hip+int(unit)), bodyColor)
		fillRect(img, image.Rect(int(cx-5*unit+swing/2), int(5*unit), int(cx+2*unit), int(6*unit)), scarfColor)
		fillCircle(img, cx, 3*unit, 2*unit, clip, skinColor)
	}
	return img
}

// NebulaSheet draws a grid of pulsing nebula frames. Every row repeats the
// same pulse; the column sets its phase.
func NebulaSheet(sheet config.SpriteSheet) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, sheet.Width, sheet.Height))
	fw, fh := sheet.FrameWidth(), sheet.FrameHeight()
	if fw == 0 || fh == 0 {
		return img
	}

	for row := 0; row < sheet.Rows; row++ {
		for col := 0; col < sheet.Columns; col++ {
			clip := image.Rect(col*fw, row*fh, (col+1)*fw, (row+1)*fh)
			cx := float64(col*fw) + float64(fw)/2
			cy := float64(row*fh) + float64(fh)/2
			pulse := math.Sin(2 * math.Pi * float64(col) / float64(sheet.Columns))
			radius := float64(fw) * (0.32 + 0.06*pulse)
			fillCircle(img, cx, cy, radius, clip, nebulaOuter)
			fillCircle(img, cx, cy, radius*0.55, clip, nebulaInner)
		}
	}
	return img
}

// BandTexture draws one copy of a parallax band: buildings following
// dasher.BandProfile, lit windows on the taller patterns.
func BandTexture(pattern string, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	c := toRGBA(dasher.BandColor(pattern))

	for x := 0; x < width; x++ {
		frac := dasher.BandProfile(pattern, float64(x)+0.5)
		if frac == 0 {
			continue
		}
		top := int(float64(height) * (1 - frac))
		fillRect(img, image.Rect(x, top, x+1, height), c)
		if pattern != "street" && x%6 == 2 {
			for y := top + 4; y < height-4; y += 8 {
				img.Set(x, y, windowLight)
			}
		}
	}
	return img
}
