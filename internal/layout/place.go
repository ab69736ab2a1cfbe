package layout

// PlaceOptions controls horizontal centering and bold-phrase highlighting
// during placement.
type PlaceOptions struct {
	Centered bool
	Bold     bool
}

// boldColor is the full-intensity highlight used for bold words.
const boldColor = 255

// Place draws a measured block onto the canvas with its origin at (x, y).
// It must be called with the layout produced by Measure for the same spec;
// it never re-wraps and mutates nothing but the canvas. The block is
// vertically centered within its own bounding box. Returns the next free Y
// coordinate, y plus the bounding-box height.
func Place(spec TextSpec, lay *MeasuredLayout, c *Canvas, m Metrics, x, y int, opts PlaceOptions) int {
	face := m.Face(lay.Scale, lay.Stroke)
	base := Gray(spec.Style.Color)

	curY := y + (lay.BoxH-lay.Height)/2

	for i, para := range lay.Paragraphs {
		if i != 0 {
			curY += int((1 + spec.ParagraphSpacing*spec.Style.LineSpacing) * float64(lay.LineHeight))
		}

		xLeft := x
		if spec.ParagraphMode && spec.Bullet {
			c.FillCircle(x, curY-lay.LineHeight/2, spec.BulletRadius, base)
			xLeft = x + spec.BulletRadius + lay.SpaceW
		}

		for j, line := range para.Lines {
			curX := xLeft
			if opts.Centered {
				// Centering ignores the margins entirely.
				curX = (c.Width() - line.W) / 2
			}

			lastH := lay.LineHeight
			for _, w := range line.Words {
				col := base
				if opts.Bold && w.Bold {
					col = Gray(boldColor)
				}
				c.Text(w.Text, curX, curY, face, col)
				curX += w.W
				lastH = w.H
			}

			if j != len(para.Lines)-1 {
				curY += int(float64(lastH) * (1 + spec.Style.LineSpacing))
			}
		}
	}

	return y + lay.BoxH
}
