package layout

import (
	"bytes"
	"image"
	"testing"
)

func rgba(c *Canvas) *image.RGBA {
	return c.Image().(*image.RGBA)
}

func maxRed(c *Canvas) uint8 {
	img := rgba(c)
	var max uint8
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] > max {
			max = img.Pix[i]
		}
	}
	return max
}

func TestPlace_Idempotent(t *testing.T) {
	s := spec("Hello world this is a test", 1, 10, 10)
	lay, _ := Measure(s, fakeMetrics{}, 180, 10000, 0.5)

	c1 := NewCanvasSize(300, 200, CanvasBackground)
	c2 := NewCanvasSize(300, 200, CanvasBackground)

	Place(s, lay, c1, fakeMetrics{}, 10, 50, PlaceOptions{})
	Place(s, lay, c2, fakeMetrics{}, 10, 50, PlaceOptions{})
	Place(s, lay, c2, fakeMetrics{}, 10, 50, PlaceOptions{})

	if !bytes.Equal(rgba(c1).Pix, rgba(c2).Pix) {
		t.Error("placing twice with identical arguments changed the output")
	}
}

func TestPlace_ReturnsBottomY(t *testing.T) {
	s := spec("Hello world", 1, 10, 10)
	lay, _ := Measure(s, fakeMetrics{}, 1000, 10000, 0.5)

	c := NewCanvasSize(1000, 400, CanvasBackground)
	got := Place(s, lay, c, fakeMetrics{}, 10, 60, PlaceOptions{})
	if want := 60 + lay.BoxH; got != want {
		t.Errorf("bottom y = %d, want %d", got, want)
	}
}

func TestPlace_BoldHighlight(t *testing.T) {
	s := spec("Attack with Winter Orb today", 1, 10, 10)
	s.BoldPhrases = []string{"Winter Orb"}
	lay, _ := Measure(s, fakeMetrics{}, 10000, 10000, 0.5)

	plain := NewCanvasSize(600, 200, CanvasBackground)
	Place(s, lay, plain, fakeMetrics{}, 10, 60, PlaceOptions{})
	if got := maxRed(plain); got > 180 {
		t.Errorf("without bold placement, max intensity = %d, want <= 180", got)
	}

	bold := NewCanvasSize(600, 200, CanvasBackground)
	Place(s, lay, bold, fakeMetrics{}, 10, 60, PlaceOptions{Bold: true})
	if got := maxRed(bold); got < 255 {
		t.Errorf("with bold placement, max intensity = %d, want a full-intensity glyph", got)
	}
}

func TestPlace_NoBoldPhrasesNoHighlight(t *testing.T) {
	s := spec("nothing to highlight here", 1, 10, 10)
	lay, _ := Measure(s, fakeMetrics{}, 10000, 10000, 0.5)

	c := NewCanvasSize(600, 200, CanvasBackground)
	Place(s, lay, c, fakeMetrics{}, 10, 60, PlaceOptions{Bold: true})
	if got := maxRed(c); got > 180 {
		t.Errorf("max intensity = %d, want <= 180 when no phrase matches", got)
	}
}

func TestPlace_BulletCircle(t *testing.T) {
	s := spec(`First point\pSecond point`, 1, 40, 10)
	s.ParagraphMode = true
	s.Bullet = true
	s.BulletRadius = 25
	s.ParagraphSpacing = 1.5
	lay, _ := Measure(s, fakeMetrics{}, 1000, 10000, 0.5)

	c := NewCanvasSize(1000, 400, CanvasBackground)
	x, y := 40, 80
	Place(s, lay, c, fakeMetrics{}, x, y, PlaceOptions{})

	centerY := y + (lay.BoxH-lay.Height)/2 - lay.LineHeight/2
	r, _, _, _ := rgba(c).At(x, centerY).RGBA()
	if uint8(r>>8) != 180 {
		t.Errorf("bullet center at (%d,%d) has intensity %d, want 180", x, centerY, uint8(r>>8))
	}
}

func TestPlace_CenteredIgnoresMargins(t *testing.T) {
	s := spec("Hi", 1, 400, 10)
	lay, _ := Measure(s, fakeMetrics{}, 1000, 10000, 0.5)

	left := NewCanvasSize(1000, 200, CanvasBackground)
	centered := NewCanvasSize(1000, 200, CanvasBackground)
	Place(s, lay, left, fakeMetrics{}, 400, 60, PlaceOptions{})
	Place(s, lay, centered, fakeMetrics{}, 400, 60, PlaceOptions{Centered: true})

	if bytes.Equal(rgba(left).Pix, rgba(centered).Pix) {
		t.Error("centered placement matched margin placement; centering had no effect")
	}
}
