package dasher

import (
	"math"
	"testing"
)

func TestBannerSettles(t *testing.T) {
	b := NewBanner(10)
	if b.Lift() != 10 || b.Done() {
		t.Fatalf("new banner: lift=%v done=%v", b.Lift(), b.Done())
	}

	for i := 0; i < 100 && !b.Done(); i++ {
		b.Update(1.0 / 60)
		if b.Lift() < -1e-3 || b.Lift() > 10+1e-3 {
			t.Fatalf("lift %v left [0, 10]", b.Lift())
		}
	}

	if !b.Done() {
		t.Fatal("banner did not settle")
	}
	if math.Abs(b.Lift()) > 1e-3 {
		t.Errorf("settled lift = %v, expected 0", b.Lift())
	}
}

func TestBannerIgnoresInvalidDelta(t *testing.T) {
	b := NewBanner(6)
	b.Update(-1)
	b.Update(math.NaN())
	b.Update(0)
	if b.Lift() != 6 {
		t.Errorf("lift = %v, expected 6", b.Lift())
	}
}
