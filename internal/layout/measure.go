package layout

import (
	"fmt"
	"strings"
)

// Measure wraps and measures a text block against a canvas width, shrinking
// the font scale in fixed steps until the bounding box fits maxBoxHeight or
// the scale floor is reached. The spec is never mutated; each candidate scale
// produces a fresh layout. Returns the terminal layout and any diagnostics
// (scale downgrades, floor reached).
func Measure(spec TextSpec, m Metrics, canvasWidth, maxBoxHeight int, minScale float64) (*MeasuredLayout, []string) {
	var diags []string

	scale := spec.Style.Scale
	for {
		lay := wrapAt(spec, m, canvasWidth, scale)

		// The floor terminates measurement even when the box is still too
		// tall; the caller's fit check deals with any remaining overflow.
		if scale <= minScale {
			diags = append(diags, fmt.Sprintf("Reached minimum font scale for %s.", spec.Name))
			return lay, diags
		}
		if lay.BoxH <= maxBoxHeight {
			return lay, diags
		}

		scale -= ScaleStep
		if scale < minScale {
			scale = minScale
		}
		diags = append(diags, fmt.Sprintf(
			"Exceeded maximum bounding box for %s. Recalculating with font scale %g.", spec.Name, scale))
	}
}

// wrapAt performs one wrap-and-measure pass at a fixed scale.
func wrapAt(spec TextSpec, m Metrics, canvasWidth int, scale float64) *MeasuredLayout {
	stroke := StrokeForScale(scale)
	spaceW, spaceH := m.TextSize(" ", scale, stroke)

	lay := &MeasuredLayout{
		Scale:      scale,
		Stroke:     stroke,
		LineHeight: spaceH,
		SpaceW:     spaceW,
	}

	// Paragraph mode reserves room at the left edge for the bullet circle.
	left := spec.Style.LeftMargin
	if spec.ParagraphMode {
		left += spec.BulletRadius + spaceW
	}
	limit := canvasWidth - spec.Style.RightMargin

	delim := spec.Delim
	if delim == "" {
		delim = " "
	}

	var rawParagraphs []string
	if spec.ParagraphMode {
		rawParagraphs = strings.Split(spec.Text, ParagraphBreak)
	} else {
		rawParagraphs = []string{spec.Text}
	}

	for _, raw := range rawParagraphs {
		words := strings.Split(raw, delim)
		var para Paragraph
		var cur Line
		curX := left

		for ix := range words {
			word := strings.TrimLeft(words[ix], " ")
			if ix != 0 {
				word = " " + word
			}
			if ix != len(words)-1 && delim != " " {
				word += spec.Joiner
			}

			w, h := m.TextSize(word, scale, stroke)
			if len(cur.Words) > 0 && curX+w > limit {
				// Start a new line: drop the leading space and reset X to the
				// bare word's extent. A word wider than the whole available
				// width stays alone on its line.
				para.Lines = append(para.Lines, cur)
				cur = Line{}
				word = trimLeadingSpace(word)
				w, h = m.TextSize(word, scale, stroke)
				curX = left + w
			} else {
				curX += w
			}
			cur.Words = append(cur.Words, Word{Text: word, W: w, H: h})
		}
		para.Lines = append(para.Lines, cur)
		lay.Paragraphs = append(lay.Paragraphs, para)
	}

	for i := range lay.Paragraphs {
		if i != 0 {
			lay.Height += int(float64(spaceH) * spec.ParagraphSpacing * spec.Style.LineSpacing)
		}
		lines := lay.Paragraphs[i].Lines
		for j := range lines {
			line := &lines[j]
			line.W, line.H = m.TextSize(lineText(line), scale, stroke)
			lay.Height += line.H
			if j != len(lines)-1 {
				lay.Height += int(float64(spaceH) * spec.Style.LineSpacing)
			}
			if line.W > lay.Width {
				lay.Width = line.W
			}
		}
	}

	lay.BoxW = lay.Width + BoxPadWidth
	lay.BoxH = lay.Height + BoxPadHeight

	markBold(lay, spec.BoldPhrases)
	return lay
}

func lineText(l *Line) string {
	var b strings.Builder
	for _, w := range l.Words {
		b.WriteString(w.Text)
	}
	return b.String()
}

// markBold flags every word belonging to an occurrence of a configured
// phrase. Matching runs over each paragraph's pre-wrap word sequence, so a
// phrase spanning a wrapped line boundary still matches. A phrase word
// matches a text word that contains it, so trailing punctuation does not
// break the match.
func markBold(lay *MeasuredLayout, phrases []string) {
	if len(phrases) == 0 {
		return
	}
	for pi := range lay.Paragraphs {
		var words []*Word
		for li := range lay.Paragraphs[pi].Lines {
			line := &lay.Paragraphs[pi].Lines[li]
			for wi := range line.Words {
				words = append(words, &line.Words[wi])
			}
		}
		for _, phrase := range phrases {
			target := strings.Fields(phrase)
			if len(target) == 0 {
				continue
			}
			for start := 0; start+len(target) <= len(words); start++ {
				match := true
				for k, t := range target {
					if !strings.Contains(trimLeadingSpace(words[start+k].Text), t) {
						match = false
						break
					}
				}
				if match {
					for k := range target {
						words[start+k].Bold = true
					}
				}
			}
		}
	}
}
