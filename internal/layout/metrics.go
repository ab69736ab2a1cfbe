package layout

import (
	"math"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// fontUnitPx is the pixel height of the typeface at scale 1.0.
const fontUnitPx = 22.0

// Metrics abstracts the font backend: it measures what a string would occupy
// if drawn at a given scale and stroke width, and resolves the face used to
// draw it. Measurement and drawing must go through the same implementation so
// placement never disagrees with the widths computed during wrapping.
type Metrics interface {
	// TextSize returns the pixel width and height the string occupies above
	// the baseline.
	TextSize(s string, scale float64, stroke int) (w, h int)

	// Face resolves the drawing face for a scale/stroke pair.
	Face(scale float64, stroke int) font.Face
}

// StrokeForScale derives the stroke width from a font scale. Stroke width is
// never set independently; it is recomputed whenever the scale changes.
func StrokeForScale(scale float64) int {
	return int(math.Ceil(scale * 3))
}

type faceKey struct {
	scale  float64
	stroke int
}

// FaceMetrics implements Metrics on top of a parsed TrueType font, caching
// one face per scale/stroke pair.
type FaceMetrics struct {
	fnt *truetype.Font

	mu    sync.Mutex
	faces map[faceKey]font.Face
}

// NewFaceMetrics wraps a parsed TrueType font.
func NewFaceMetrics(fnt *truetype.Font) *FaceMetrics {
	return &FaceMetrics{fnt: fnt, faces: make(map[faceKey]font.Face)}
}

// DefaultMetrics returns metrics backed by the embedded Go Regular typeface.
func DefaultMetrics() (*FaceMetrics, error) {
	fnt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return NewFaceMetrics(fnt), nil
}

func (m *FaceMetrics) Face(scale float64, stroke int) font.Face {
	key := faceKey{scale: scale, stroke: stroke}

	m.mu.Lock()
	defer m.mu.Unlock()
	if face, ok := m.faces[key]; ok {
		return face
	}
	face := truetype.NewFace(m.fnt, &truetype.Options{
		Size: scale * fontUnitPx,
		DPI:  72,
	})
	m.faces[key] = face
	return face
}

func (m *FaceMetrics) TextSize(s string, scale float64, stroke int) (int, int) {
	face := m.Face(scale, stroke)
	d := &font.Drawer{Face: face}
	w := d.MeasureString(s).Ceil() + stroke
	h := face.Metrics().Ascent.Ceil() + stroke
	return w, h
}
