// Package config loads and validates the CSV configuration feeding the card
// renderer. Every field has a documented default applied when the value is
// absent or malformed, so the layout engine only ever sees well-typed
// records.
package config

import (
	"encoding/csv"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"deckprimer/internal/models"
)

// Per-field defaults, applied when a value is missing or malformed.
const (
	DefaultTitleScale     = 6.0
	DefaultPointsScale    = 5.0
	DefaultSummaryScale   = 3.5
	DefaultBackTitleScale = 6.0
	DefaultBackBodyScale  = 3.5

	DefaultTitleColor     = 255
	DefaultPointsColor    = 220
	DefaultSummaryColor   = 180
	DefaultBackTitleColor = 255
	DefaultBackBodyColor  = 180

	DefaultLineSpacing         = 1.2
	DefaultBackBodyLineSpacing = 1.1

	DefaultMargin           = 400
	DefaultQRSize           = 600
	DefaultQROffset         = 75
	DefaultLineBreakSpacing = 35
	DefaultParagraphSpacing = 1.5
)

var (
	floatPattern   = regexp.MustCompile(`^\d+.?\d*$`)
	intPattern     = regexp.MustCompile(`^\d+$`)
	unnamedPattern = regexp.MustCompile(`^Unnamed: \d+$`)
)

// Load reads a CSV configuration file into validated records. The first row
// is the header; unnamed filler columns are ignored.
func Load(path string) ([]models.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	cols := make(map[string]int)
	for i, name := range rows[0] {
		name = strings.TrimSpace(name)
		if unnamedPattern.MatchString(name) {
			continue
		}
		cols[name] = i
	}

	records := make([]models.Record, 0, len(rows)-1)
	for rowIx, row := range rows[1:] {
		get := func(col string) string {
			ix, ok := cols[col]
			if !ok || ix >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[ix])
		}

		rec := models.Record{
			ImageName: models.SanitizeImageName(get("image_name"), rowIx),

			TitleText:     get("title_text"),
			PointsText:    get("points_text"),
			SummaryText:   get("summary_text"),
			BackTitleText: get("back_title_text"),
			BackBodyText:  get("back_body_text"),

			TitleFontScale:     validFloat(get("title_font_scale"), DefaultTitleScale),
			PointsFontScale:    validFloat(get("points_font_scale"), DefaultPointsScale),
			SummaryFontScale:   validFloat(get("summary_font_scale"), DefaultSummaryScale),
			BackTitleFontScale: validFloat(get("back_title_font_scale"), DefaultBackTitleScale),
			BackBodyFontScale:  validFloat(get("back_body_font_scale"), DefaultBackBodyScale),

			TitleFontColor:     validColor(get("title_font_color"), DefaultTitleColor),
			PointsFontColor:    validColor(get("points_font_color"), DefaultPointsColor),
			SummaryFontColor:   validColor(get("summary_font_color"), DefaultSummaryColor),
			BackTitleFontColor: validColor(get("back_title_font_color"), DefaultBackTitleColor),
			BackBodyFontColor:  validColor(get("back_body_font_color"), DefaultBackBodyColor),

			TitleLineSpacing:     validFloat(get("title_line_spacing"), DefaultLineSpacing),
			PointsLineSpacing:    validFloat(get("points_line_spacing"), DefaultLineSpacing),
			SummaryLineSpacing:   validFloat(get("summary_line_spacing"), DefaultLineSpacing),
			BackTitleLineSpacing: validFloat(get("back_title_line_spacing"), DefaultLineSpacing),
			BackBodyLineSpacing:  validFloat(get("back_body_line_spacing"), DefaultBackBodyLineSpacing),

			TopMargin:   validInt(get("top_margin"), DefaultMargin),
			BotMargin:   validInt(get("bot_margin"), DefaultMargin),
			LeftMargin:  validInt(get("left_margin"), DefaultMargin),
			RightMargin: validInt(get("right_margin"), DefaultMargin),

			QRURL:    get("qr_url"),
			QRSize:   validInt(get("qr_size"), DefaultQRSize),
			QROffset: validInt(get("qr_offset"), DefaultQROffset),

			LineBreakSpacing: validInt(get("line_break_spacing"), DefaultLineBreakSpacing),
			BulletPoints:     get("bullet_points") != "0",
			BoldWords:        splitBoldWords(get("bold_words")),
			ParagraphSpacing: validFloat(get("paragraph_spacing"), DefaultParagraphSpacing),
		}
		records = append(records, rec)
	}

	return records, nil
}

func validFloat(s string, alt float64) float64 {
	if !floatPattern.MatchString(s) {
		return alt
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return alt
	}
	return v
}

func validInt(s string, alt int) int {
	if !intPattern.MatchString(s) {
		return alt
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return alt
	}
	return v
}

func validColor(s string, alt uint8) uint8 {
	v := validInt(s, int(alt))
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// splitBoldWords splits the semicolon-delimited phrase list, dropping empty
// entries so an unset field highlights nothing.
func splitBoldWords(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ";") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
