package dasher

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// BannerDuration is how long the outcome banner takes to settle, in seconds.
const BannerDuration = 0.8

// Banner drops the outcome message in from above the screen once the
// session ends. It only moves the text; the world stays frozen.
type Banner struct {
	tween    *gween.Tween
	lift     float32
	finished bool
}

// NewBanner returns a banner that starts lift rows above its resting place
// and bounces down to it.
func NewBanner(lift float64) *Banner {
	return &Banner{
		tween: gween.New(float32(lift), 0, BannerDuration, ease.OutBounce),
		lift:  float32(lift),
	}
}

// Update advances the drop by dt seconds.
func (b *Banner) Update(dt float64) {
	if b.finished || !(dt > 0) {
		return
	}
	b.lift, b.finished = b.tween.Update(float32(dt))
}

// Lift returns how far above its resting place the banner is drawn.
func (b *Banner) Lift() float64 {
	return float64(b.lift)
}

// Done reports whether the banner has settled.
func (b *Banner) Done() bool {
	return b.finished
}
