package styles

import (
	"regexp"
	"strings"
)

// DefaultBullet is the bullet glyph substituted for unrecognized or
// symbol-font bullets.
const DefaultBullet = "•"

// knownBullets are glyphs kept as-is when extracted from a reference.
var knownBullets = map[string]bool{
	"•": true, "◦": true, "▪": true, "▫": true, "‣": true,
	"·": true, "∙": true, "-": true, "–": true, "*": true,
	"→": true, "■": true, "○": true, "●": true,
}

var placeholderRe = regexp.MustCompile(`%\d`)

// CanonicalNumberToken maps an extracted numbering definition to a canonical
// number-format token such as "1.", "a." or "i.". The format token takes
// priority when it resolves; otherwise the literal level text is kept with
// its placeholders normalized to "1". An empty definition yields "1.".
func CanonicalNumberToken(format, levelText string) string {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "decimal":
		return "1."
	case "decimalzero", "decimalleadingzero":
		return "01."
	case "lowerletter":
		return "a."
	case "upperletter":
		return "A."
	case "lowerroman":
		return "i."
	case "upperroman":
		return "I."
	}

	if levelText = strings.TrimSpace(levelText); levelText != "" {
		return placeholderRe.ReplaceAllString(levelText, "1")
	}
	return "1."
}

// NormalizeBullet returns a usable bullet glyph for an extracted one.
// Private Use Area runes (symbol-font bullets such as U+F0B7 surviving
// extraction) and anything else unrecognized normalize to the default
// bullet.
func NormalizeBullet(glyph string) string {
	glyph = strings.TrimSpace(glyph)
	if glyph == "" {
		return DefaultBullet
	}
	if knownBullets[glyph] {
		return glyph
	}
	return DefaultBullet
}
