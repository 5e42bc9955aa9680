package richtext

import (
	"strings"

	"github.com/tsawler/typeset/model"
)

// Parse tokenizes s into styled text runs. Concatenating the Text fields of
// the returned runs reproduces s with all markers removed. Adjacent runs
// with identical styling are merged.
//
// Marker semantics:
//   - "**" toggles bold.
//   - A single "*" that is not part of a "**" pair toggles italic. There is
//     no escape mechanism for a literal asterisk; this is a documented
//     limitation of the marker syntax.
//   - "[color=#RRGGBB]" opens a color span and "[/color]" closes the most
//     recent one. Color spans may nest. An unterminated span applies to the
//     remainder of the input.
//
// Empty input yields an empty (nil) run list.
func Parse(s string) []model.TextRun {
	var (
		runs   []model.TextRun
		buf    strings.Builder
		bold   bool
		italic bool
		colors []string
	)

	currentColor := func() string {
		if len(colors) == 0 {
			return ""
		}
		return colors[len(colors)-1]
	}

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		runs = appendRun(runs, model.TextRun{
			Text:   buf.String(),
			Bold:   bold,
			Italic: italic,
			Color:  currentColor(),
		})
		buf.Reset()
	}

	for i := 0; i < len(s); {
		switch {
		case strings.HasPrefix(s[i:], "**"):
			flush()
			bold = !bold
			i += 2

		case s[i] == '*':
			flush()
			italic = !italic
			i++

		case strings.HasPrefix(s[i:], "[/color]"):
			flush()
			if len(colors) > 0 {
				colors = colors[:len(colors)-1]
			}
			i += len("[/color]")

		case strings.HasPrefix(s[i:], "[color="):
			value, end, ok := parseColorTag(s[i:])
			if !ok {
				buf.WriteByte(s[i])
				i++
				break
			}
			flush()
			colors = append(colors, value)
			i += end

		default:
			buf.WriteByte(s[i])
			i++
		}
	}

	flush()
	return runs
}

// Strip returns s with all inline style markers removed.
func Strip(s string) string {
	var sb strings.Builder
	for _, r := range Parse(s) {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// appendRun appends r, merging it into the previous run when the styling
// triple (bold, italic, color) is identical.
func appendRun(runs []model.TextRun, r model.TextRun) []model.TextRun {
	if n := len(runs); n > 0 {
		last := &runs[n-1]
		if last.Bold == r.Bold && last.Italic == r.Italic && last.Color == r.Color {
			last.Text += r.Text
			return runs
		}
	}
	return append(runs, r)
}

// parseColorTag parses a "[color=#RRGGBB]" prefix of s. It returns the color
// value, the tag's length in bytes, and whether the tag was well formed.
func parseColorTag(s string) (string, int, bool) {
	const open = "[color="
	end := strings.IndexByte(s, ']')
	if end < 0 {
		return "", 0, false
	}
	value := s[len(open):end]
	if !isHexColor(value) {
		return "", 0, false
	}
	return value, end + 1, true
}

// isHexColor reports whether v is "#" followed by 6 hex digits.
func isHexColor(v string) bool {
	if len(v) != 7 || v[0] != '#' {
		return false
	}
	for i := 1; i < len(v); i++ {
		c := v[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
