package layout

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

const (
	// CanvasWidth and CanvasHeight are the fixed resolution of one card face.
	CanvasWidth  = 4488
	CanvasHeight = 3288

	// CanvasBackground is the gray value every face starts filled with.
	CanvasBackground = 34

	// SeparatorWidth is the stroke width of decorative separator lines.
	SeparatorWidth = 5
)

// Gray returns an opaque color with all three channels at the given intensity.
func Gray(v uint8) color.Color {
	return color.RGBA{R: v, G: v, B: v, A: 255}
}

// Canvas is a fixed-size pixel buffer for one card face.
type Canvas struct {
	img *image.RGBA
	dc  *gg.Context
}

// NewCanvas creates a background-filled canvas of the standard face size.
func NewCanvas() *Canvas {
	return NewCanvasSize(CanvasWidth, CanvasHeight, CanvasBackground)
}

// NewCanvasSize creates a canvas of an explicit size and background fill.
func NewCanvasSize(w, h int, background uint8) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{Gray(background)}, image.Point{}, draw.Src)
	return &Canvas{img: img, dc: gg.NewContextForRGBA(img)}
}

func (c *Canvas) Width() int  { return c.img.Bounds().Dx() }
func (c *Canvas) Height() int { return c.img.Bounds().Dy() }

// Image exposes the underlying pixel buffer.
func (c *Canvas) Image() image.Image { return c.img }

// Line draws a straight line from (x1, y1) to (x2, y2).
func (c *Canvas) Line(x1, x2, y1, y2 int, col color.Color, width float64) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(float64(x1), float64(y1), float64(x2), float64(y2))
	c.dc.Stroke()
}

// FillCircle draws a filled circle centered at (x, y).
func (c *Canvas) FillCircle(x, y, r int, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawCircle(float64(x), float64(y), float64(r))
	c.dc.Fill()
}

// Text draws a string with its baseline origin at (x, y).
func (c *Canvas) Text(s string, x, y int, face font.Face, col color.Color) {
	c.dc.SetFontFace(face)
	c.dc.SetColor(col)
	c.dc.DrawString(s, float64(x), float64(y))
}

// Blit copies a sub-image onto the canvas with its top-left corner at (x, y).
func (c *Canvas) Blit(img image.Image, x, y int) {
	b := img.Bounds()
	r := image.Rect(x, y, x+b.Dx(), y+b.Dy())
	draw.Draw(c.img, r, img, b.Min, draw.Src)
}

// SavePNG writes the canvas to disk.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, c.img)
}

// ShowMargins overlays margin guide lines: horizontal guides in yellow,
// vertical guides in cyan.
func (c *Canvas) ShowMargins(xMargin, yMargin int) {
	w, h := c.Width(), c.Height()
	yellow := color.RGBA{R: 255, G: 255, A: 255}
	cyan := color.RGBA{G: 255, B: 255, A: 255}

	c.Line(xMargin, w-xMargin, yMargin, yMargin, yellow, SeparatorWidth)
	c.Line(xMargin, w-xMargin, h-yMargin, h-yMargin, yellow, SeparatorWidth)

	c.Line(xMargin, xMargin, yMargin, h-yMargin, cyan, SeparatorWidth)
	c.Line(w-xMargin, w-xMargin, yMargin, h-yMargin, cyan, SeparatorWidth)
}
