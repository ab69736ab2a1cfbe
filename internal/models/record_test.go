package models

import "testing"

func TestSanitizeImageName(t *testing.T) {
	cases := []struct {
		raw  string
		row  int
		want string
	}{
		{"", 0, "image_01"},
		{"", 11, "image_12"},
		{"My Deck", 0, "my_deck"},
		{"\" Azorius Control .\"", 0, "azorius_control"},
		{"mono-red", 0, "mono-red"},
		{"a/b:c?d", 0, "a_b_c_d"},
		{"deck#1, v2", 0, "deck_1__v2"},
		{"UPPER", 0, "upper"},
	}
	for _, c := range cases {
		if got := SanitizeImageName(c.raw, c.row); got != c.want {
			t.Errorf("SanitizeImageName(%q, %d) = %q, want %q", c.raw, c.row, got, c.want)
		}
	}
}
