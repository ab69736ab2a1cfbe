package models

import (
	"fmt"
	"regexp"
	"strings"
)

// Record is one validated configuration row describing a single card.
// All fields are well-typed and defaulted by the config loader before the
// layout engine ever sees them.
type Record struct {
	ImageName string

	TitleText     string
	PointsText    string
	SummaryText   string
	BackTitleText string
	BackBodyText  string

	TitleFontScale     float64
	PointsFontScale    float64
	SummaryFontScale   float64
	BackTitleFontScale float64
	BackBodyFontScale  float64

	TitleFontColor     uint8
	PointsFontColor    uint8
	SummaryFontColor   uint8
	BackTitleFontColor uint8
	BackBodyFontColor  uint8

	TitleLineSpacing     float64
	PointsLineSpacing    float64
	SummaryLineSpacing   float64
	BackTitleLineSpacing float64
	BackBodyLineSpacing  float64

	TopMargin   int
	BotMargin   int
	LeftMargin  int
	RightMargin int

	QRURL    string
	QRSize   int
	QROffset int

	LineBreakSpacing int
	BulletPoints     bool
	BoldWords        []string
	ParagraphSpacing float64
}

var (
	invalidNameChars = regexp.MustCompile("[.#<$+%>!`&*'\"|{}?=/:\\\\@, ]")
)

// SanitizeImageName normalizes a user-supplied image name into something safe
// to use as a file name stem. An empty name is synthesized from the 1-based
// row index, zero-padded to two digits.
func SanitizeImageName(raw string, row int) string {
	if raw == "" {
		return fmt.Sprintf("image_%02d", row+1)
	}
	trimmed := strings.Trim(strings.ToLower(raw), "\" .-_")
	return invalidNameChars.ReplaceAllString(trimmed, "_")
}
