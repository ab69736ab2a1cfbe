package layout

// Empirical layout constants. The bounding-box padding and scale step have no
// principled derivation; they are kept as named values because downstream
// output must match them exactly for visual parity.
const (
	// ScaleStep is the fixed decrement applied to the font scale on each
	// auto-fit retry.
	ScaleStep = 0.5

	// BoxPadWidth and BoxPadHeight pad the measured content size into the
	// bounding box, absorbing ascenders, descenders and bullet circles.
	BoxPadWidth  = 100
	BoxPadHeight = 80

	// ParagraphBreak separates paragraphs inside a text field.
	ParagraphBreak = `\p`

	// DefaultBulletRadius is the radius of the paragraph bullet circle.
	DefaultBulletRadius = 25
)

// Style carries the visual parameters of a text block. Stroke width is
// derived from the scale via StrokeForScale and is recomputed whenever the
// scale changes, never set independently.
type Style struct {
	Scale       float64
	Stroke      int
	Color       uint8
	LineSpacing float64
	LeftMargin  int
	RightMargin int
}

// NewStyle builds a style with the stroke width derived from the scale.
func NewStyle(scale float64, color uint8, lineSpacing float64, left, right int) Style {
	return Style{
		Scale:       scale,
		Stroke:      StrokeForScale(scale),
		Color:       color,
		LineSpacing: lineSpacing,
		LeftMargin:  left,
		RightMargin: right,
	}
}

// WithScale returns a copy of the style at a new scale, with the stroke
// width recomputed.
func (s Style) WithScale(scale float64) Style {
	s.Scale = scale
	s.Stroke = StrokeForScale(scale)
	return s
}

// TextSpec is the immutable description of a text block: content plus style
// and layout mode. Measurement never mutates it; every measurement produces a
// fresh MeasuredLayout instead.
type TextSpec struct {
	// Name identifies the block in diagnostics.
	Name string
	Text string

	Style Style

	// ParagraphMode splits Text on ParagraphBreak and reserves room for a
	// bullet at the left edge of each paragraph.
	ParagraphMode    bool
	Bullet           bool
	BulletRadius     int
	ParagraphSpacing float64

	// Delim splits Text into words; when it is not a single space, Joiner is
	// appended to every word but the last (e.g. ";"-separated values
	// rendered comma-joined).
	Delim  string
	Joiner string

	// BoldPhrases are highlighted at full intensity during placement when
	// bold placement is requested.
	BoldPhrases []string
}

// Word is one placed word, carrying its leading space or joiner as wrapped.
type Word struct {
	Text string
	W, H int
	Bold bool
}

// Line is one wrapped line with its measured extent.
type Line struct {
	Words []Word
	W, H  int
}

// Paragraph is the wrapped lines of one paragraph.
type Paragraph struct {
	Lines []Line
}

// MeasuredLayout is the output of Measure: the wrapped paragraphs and the
// final geometry at the terminal scale. Place consumes it as-is and never
// re-wraps.
type MeasuredLayout struct {
	Scale  float64
	Stroke int

	Paragraphs []Paragraph

	// Width and Height are the content extent; BoxW and BoxH add the fixed
	// bounding-box padding.
	Width, Height int
	BoxW, BoxH    int

	// LineHeight is the height of a single space at the terminal scale;
	// SpaceW is its width.
	LineHeight int
	SpaceW     int
}

// Words flattens the layout's word sequence in order, one slice per
// paragraph, with leading spaces and joiners stripped.
func (l *MeasuredLayout) Words() [][]string {
	out := make([][]string, len(l.Paragraphs))
	for i, p := range l.Paragraphs {
		for _, line := range p.Lines {
			for _, w := range line.Words {
				out[i] = append(out[i], trimLeadingSpace(w.Text))
			}
		}
	}
	return out
}

func trimLeadingSpace(s string) string {
	if len(s) > 0 && s[0] == ' ' {
		return s[1:]
	}
	return s
}
