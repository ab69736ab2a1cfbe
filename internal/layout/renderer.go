package layout

import (
	"fmt"
	"image"

	"deckprimer/internal/models"
)

// Per-field bounding-box height ceilings. Empirical; tuned for the standard
// face resolution.
const (
	maxBoxTitle     = 280
	maxBoxPrefix    = 200
	maxBoxPoints    = 600
	maxBoxSummary   = 1000
	maxBoxCaption   = 500
	maxBoxBackBody  = 2400
	maxBoxBackTitle = 280

	// minBodyScale is the absolute scale floor for the long-form fields.
	minBodyScale = 2.5
)

const pointsPrefixText = "Points: "

const captionText = "Scan the QR code on the right to see the full deck list " +
	"on Moxfield. For more information, see the other side of this card."

// CardFaces is the result of rendering one record: both faces, the measured
// blocks for introspection, and the diagnostics accumulated along the way.
type CardFaces struct {
	Front, Back *Canvas
	Blocks      []Block
	Diagnostics []string
}

// Renderer turns one record plus a pre-rendered graphic into a front and a
// back face.
type Renderer struct {
	Metrics Metrics

	// ShowMargins overlays margin guides on both faces.
	ShowMargins bool
}

// Render lays out one record. The graphic is blitted as-is on the front
// face; it must already be at its target size.
func (r *Renderer) Render(rec models.Record, graphic image.Image) *CardFaces {
	diags := []string{fmt.Sprintf("Calculating bounding boxes for %s.", rec.ImageName)}

	front := NewCanvas()
	back := NewCanvas()

	summary := TextSpec{
		Name:        "Summary Text",
		Text:        rec.SummaryText,
		Style:       NewStyle(rec.SummaryFontScale, rec.SummaryFontColor, rec.SummaryLineSpacing, rec.LeftMargin, rec.RightMargin),
		BoldPhrases: rec.BoldWords,
	}
	summaryLay, d := Measure(summary, r.Metrics, front.Width(), maxBoxSummary, minBodyScale)
	diags = append(diags, d...)

	// The caption inherits the summary's terminal scale and wraps short of
	// the graphic.
	qrW := graphic.Bounds().Dx()
	caption := TextSpec{
		Name: "QR Text",
		Text: captionText,
		Style: NewStyle(summaryLay.Scale, rec.SummaryFontColor, rec.SummaryLineSpacing,
			rec.LeftMargin, rec.RightMargin+rec.QROffset+qrW),
	}
	captionLay, d := Measure(caption, r.Metrics, front.Width(), maxBoxCaption, summaryLay.Scale)
	diags = append(diags, d...)

	// The prefix width determines the points value's left margin, so the
	// prefix is measured first.
	prefix := TextSpec{
		Name:  "Points Prefix",
		Text:  pointsPrefixText,
		Style: NewStyle(rec.PointsFontScale, rec.PointsFontColor, rec.PointsLineSpacing, rec.LeftMargin, rec.RightMargin),
	}
	prefixLay, d := Measure(prefix, r.Metrics, front.Width(), maxBoxPrefix, summaryLay.Scale+ScaleStep)
	diags = append(diags, d...)

	points := TextSpec{
		Name: "Points Text",
		Text: rec.PointsText,
		Style: NewStyle(rec.PointsFontScale, rec.PointsFontColor, rec.PointsLineSpacing,
			rec.LeftMargin+prefixLay.Width, rec.RightMargin),
		Delim:  ";",
		Joiner: ",",
	}
	pointsLay, d := Measure(points, r.Metrics, front.Width(), maxBoxPoints, summaryLay.Scale+ScaleStep)
	diags = append(diags, d...)

	// If the value shrank below the prefix, pull the prefix down to the
	// value's scale and re-derive the value's left margin from the updated
	// prefix width.
	if pointsLay.Scale < prefixLay.Scale {
		diags = append(diags, fmt.Sprintf(
			"%s points text is smaller than the points prefix, recalculating.", rec.ImageName))
		prefix.Style = prefix.Style.WithScale(pointsLay.Scale)
		prefixLay, d = Measure(prefix, r.Metrics, front.Width(), maxBoxPrefix, pointsLay.Scale)
		diags = append(diags, d...)
		points.Style.LeftMargin = rec.LeftMargin + prefixLay.Width
		pointsLay, d = Measure(points, r.Metrics, front.Width(), maxBoxPoints, pointsLay.Scale)
		diags = append(diags, d...)
	}

	title := TextSpec{
		Name:  "Front Title",
		Text:  rec.TitleText,
		Style: NewStyle(rec.TitleFontScale, rec.TitleFontColor, rec.TitleLineSpacing, rec.LeftMargin, rec.RightMargin),
	}
	titleLay, d := Measure(title, r.Metrics, front.Width(), maxBoxTitle, pointsLay.Scale+ScaleStep)
	diags = append(diags, d...)

	backBody := TextSpec{
		Name: "Back Body Text",
		Text: rec.BackBodyText,
		Style: NewStyle(rec.BackBodyFontScale, rec.BackBodyFontColor, rec.BackBodyLineSpacing,
			rec.LeftMargin, rec.RightMargin),
		ParagraphMode:    true,
		Bullet:           rec.BulletPoints,
		BulletRadius:     DefaultBulletRadius,
		ParagraphSpacing: rec.ParagraphSpacing,
		BoldPhrases:      rec.BoldWords,
	}
	backBodyLay, d := Measure(backBody, r.Metrics, back.Width(), maxBoxBackBody, minBodyScale)
	diags = append(diags, d...)

	backTitle := TextSpec{
		Name: "Back Title Text",
		Text: rec.BackTitleText,
		Style: NewStyle(rec.BackTitleFontScale, rec.BackTitleFontColor, rec.BackTitleLineSpacing,
			rec.LeftMargin, rec.RightMargin),
	}
	backTitleLay, d := Measure(backTitle, r.Metrics, back.Width(), maxBoxBackTitle, backBodyLay.Scale+1)
	diags = append(diags, d...)

	pc := &Composer{
		Metrics:      r.Metrics,
		TopMargin:    rec.TopMargin,
		BotMargin:    rec.BotMargin,
		LeftMargin:   rec.LeftMargin,
		RightMargin:  rec.RightMargin,
		BreakSpacing: rec.LineBreakSpacing,
	}

	titleB := Block{title, titleLay}
	prefixB := Block{prefix, prefixLay}
	pointsB := Block{points, pointsLay}
	summaryB := Block{summary, summaryLay}
	captionB := Block{caption, captionLay}
	backTitleB := Block{backTitle, backTitleLay}
	backBodyB := Block{backBody, backBodyLay}

	diags = append(diags, pc.ComposeFront(front, rec.ImageName, titleB, prefixB, pointsB, summaryB, captionB, graphic)...)
	diags = append(diags, pc.ComposeBack(back, rec.ImageName, backTitleB, backBodyB)...)

	if r.ShowMargins {
		front.ShowMargins(rec.LeftMargin-separatorOverhang, rec.TopMargin-separatorOverhang)
		back.ShowMargins(rec.LeftMargin-separatorOverhang, rec.TopMargin-separatorOverhang)
	}

	return &CardFaces{
		Front:       front,
		Back:        back,
		Blocks:      []Block{titleB, prefixB, pointsB, summaryB, captionB, backTitleB, backBodyB},
		Diagnostics: diags,
	}
}
