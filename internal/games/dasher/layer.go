package dasher

import "github.com/vovakirdan/tui-dasher/internal/config"

// Layer is one parallax background band. It scrolls left at its own speed
// and is drawn as two adjacent copies so the band tiles without a seam.
type Layer struct {
	Name         string
	Texture      TextureID
	Pattern      string
	Offset       float64 // Horizontal scroll position, in (-Span(), 0]
	Speed        float64 // Leftward speed, pixels per second
	Scale        float64
	TextureWidth int
	TextureH     int
}

// NewLayer builds a band from its config at offset 0.
func NewLayer(cfg config.DasherLayer, tex TextureID) Layer {
	return Layer{
		Name:         cfg.Name,
		Texture:      tex,
		Pattern:      cfg.Pattern,
		Speed:        cfg.Speed,
		Scale:        cfg.Scale,
		TextureWidth: cfg.Width,
		TextureH:     cfg.Height,
	}
}

// Span returns the on-screen width of one copy of the texture.
func (l Layer) Span() float64 {
	return float64(l.TextureWidth) * l.Scale
}

// Advance scrolls the band and wraps it to 0 once a full copy has passed.
func (l *Layer) Advance(dt float64) {
	l.Offset += -l.Speed * dt
	if l.Offset <= -l.Span() {
		l.Offset = 0
	}
}

// Tiles returns the x positions of the two copies drawn each frame.
func (l Layer) Tiles() [2]float64 {
	return [2]float64{l.Offset, l.Offset + l.Span()}
}
