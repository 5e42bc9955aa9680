package styles

import "testing"

func TestCanonicalNumberToken(t *testing.T) {
	cases := []struct {
		format, levelText, want string
	}{
		{"decimal", "%1.", "1."},
		{"Decimal", "", "1."},
		{"decimalZero", "%1.", "01."},
		{"lowerLetter", "%1)", "a."},
		{"upperLetter", "", "A."},
		{"lowerRoman", "", "i."},
		{"upperRoman", "", "I."},
		{"", "%1)", "1)"},
		{"", "%1.%2.", "1.1."},
		{"custom", "Step %1:", "Step 1:"},
		{"", "", "1."},
	}
	for _, c := range cases {
		if got := CanonicalNumberToken(c.format, c.levelText); got != c.want {
			t.Errorf("CanonicalNumberToken(%q, %q) = %q, want %q", c.format, c.levelText, got, c.want)
		}
	}
}

func TestNormalizeBullet(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"•", "•"},
		{"–", "–"},
		{"◦", "◦"},
		{"-", "-"},
		{"", "•"}, // Wingdings bullet in the Private Use Area
		{"", "•"},
		{"xx", "•"},
		{"", "•"},
		{"  •  ", "•"},
	}
	for _, c := range cases {
		if got := NormalizeBullet(c.in); got != c.want {
			t.Errorf("NormalizeBullet(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
