package layout

import (
	"fmt"
	"image"
)

const (
	// QRPadding is the vertical inset applied when blitting the graphic
	// below its separator line.
	QRPadding = 200

	// separatorOverhang extends separator lines past the text margins.
	separatorOverhang = 50

	// frontExtraPadding is additional vertical slack reserved on the front
	// face beyond the measured blocks.
	frontExtraPadding = 100
)

// Block pairs a text spec with its measured layout for composition.
type Block struct {
	Spec   TextSpec
	Layout *MeasuredLayout
}

// RequiredHeight sums the vertical space a face needs: margins, separator
// spacing, the graphic, extra padding, and each block's bounding box plus
// one line height.
func RequiredHeight(blocks []Block, graphicHeight, topMargin, botMargin, breakSpacing, numBreaks, padding int) int {
	h := topMargin + botMargin + numBreaks*breakSpacing + graphicHeight + padding
	for _, b := range blocks {
		h += b.Layout.BoxH + b.Layout.LineHeight
	}
	return h
}

// Composer stacks measured blocks, separator lines and the graphic onto a
// face. It rejects faces whose required vertical space exceeds the canvas
// height: nothing is drawn on such a face and a warning is returned.
type Composer struct {
	Metrics Metrics

	TopMargin, BotMargin    int
	LeftMargin, RightMargin int
	BreakSpacing            int
}

func (pc *Composer) separator(c *Canvas, y int) {
	c.Line(pc.LeftMargin-separatorOverhang, c.Width()-pc.RightMargin+separatorOverhang, y, y, Gray(255), SeparatorWidth)
}

// ComposeFront lays out the front face: centered title, separator, points
// prefix and value, bolded summary, separator, the graphic at the right
// margin, and the caption anchored to the graphic's vertical center.
func (pc *Composer) ComposeFront(c *Canvas, name string, title, prefix, points, summary, caption Block, graphic image.Image) []string {
	qrW := graphic.Bounds().Dx()
	qrH := graphic.Bounds().Dy()

	required := RequiredHeight([]Block{title, points, summary}, qrH,
		pc.TopMargin, pc.BotMargin, pc.BreakSpacing, 2, frontExtraPadding)
	if c.Height()-required < 0 {
		return []string{fmt.Sprintf("Front text uses too much vertical space for %s.", name)}
	}

	titleY := pc.TopMargin + title.Layout.LineHeight
	titlePointsLineY := titleY + title.Layout.BoxH - pc.BreakSpacing
	pointsY := titlePointsLineY + 2*pc.BreakSpacing + points.Layout.LineHeight
	summaryY := pointsY + points.Layout.BoxH + summary.Layout.LineHeight
	summaryQRLineY := summaryY + summary.Layout.BoxH + pc.BreakSpacing

	Place(title.Spec, title.Layout, c, pc.Metrics, pc.LeftMargin, titleY, PlaceOptions{Centered: true})
	pc.separator(c, titlePointsLineY)
	Place(prefix.Spec, prefix.Layout, c, pc.Metrics, pc.LeftMargin, pointsY, PlaceOptions{})
	Place(points.Spec, points.Layout, c, pc.Metrics, pc.LeftMargin+prefix.Layout.Width, pointsY, PlaceOptions{})
	Place(summary.Spec, summary.Layout, c, pc.Metrics, pc.LeftMargin, summaryY, PlaceOptions{Bold: true})
	pc.separator(c, summaryQRLineY)

	qrX := c.Width() - pc.RightMargin - qrW
	qrY := summaryQRLineY + QRPadding/2
	c.Blit(graphic, qrX, qrY)

	capY := qrY + qrH - caption.Layout.BoxH + (caption.Layout.BoxH-caption.Layout.Height)/2
	Place(caption.Spec, caption.Layout, c, pc.Metrics, pc.LeftMargin, capY, PlaceOptions{})

	return nil
}

// ComposeBack lays out the back face: centered title, separator, and the
// bulleted, bolded body.
func (pc *Composer) ComposeBack(c *Canvas, name string, title, body Block) []string {
	required := RequiredHeight([]Block{title}, 0,
		pc.TopMargin, pc.BotMargin, pc.BreakSpacing, 1,
		body.Layout.LineHeight+body.Layout.Height)
	if c.Height()-required < 0 {
		return []string{fmt.Sprintf("Back text uses too much vertical space for %s.", name)}
	}

	titleY := pc.TopMargin + title.Layout.LineHeight
	titleBodyLineY := titleY + title.Layout.BoxH - pc.BreakSpacing
	bodyY := titleBodyLineY + 2*pc.BreakSpacing + body.Layout.LineHeight

	Place(title.Spec, title.Layout, c, pc.Metrics, pc.LeftMargin, titleY, PlaceOptions{Centered: true})
	pc.separator(c, titleBodyLineY)
	Place(body.Spec, body.Layout, c, pc.Metrics, pc.LeftMargin, bodyY, PlaceOptions{Bold: true})

	return nil
}
