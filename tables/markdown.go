package tables

import "strings"

// lineBreakMarker replaces embedded newlines in rendered cells.
const lineBreakMarker = "<br>"

// RenderMarkdown renders a table as canonical markdown-table text: a
// pipe-delimited header row, a "---" separator per column, and one
// pipe-delimited row per data row. Literal pipes in cells are escaped and
// embedded newlines become a line-break marker.
func RenderMarkdown(t *Table) string {
	if t == nil || len(t.Headers) == 0 {
		return ""
	}

	var sb strings.Builder
	writeRow(&sb, t.Headers)

	sb.WriteString("|")
	for range t.Headers {
		sb.WriteString(" --- |")
	}
	sb.WriteString("\n")

	for _, row := range t.Rows {
		writeRow(&sb, row)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// IsMarkdownTable reports whether text already looks like a rendered
// markdown table: a pipe header line followed by a separator line.
func IsMarkdownTable(text string) bool {
	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		if s := strings.TrimSpace(raw); s != "" {
			lines = append(lines, s)
		}
	}
	if len(lines) < 2 {
		return false
	}
	if !strings.Contains(lines[0], "|") {
		return false
	}
	return isSeparatorLine(lines[1])
}

func writeRow(sb *strings.Builder, cells []string) {
	sb.WriteString("|")
	for _, cell := range cells {
		sb.WriteString(" ")
		sb.WriteString(escapeCell(cell))
		sb.WriteString(" |")
	}
	sb.WriteString("\n")
}

func escapeCell(cell string) string {
	cell = strings.ReplaceAll(cell, "|", `\|`)
	cell = strings.ReplaceAll(cell, "\r\n", "\n")
	cell = strings.ReplaceAll(cell, "\n", lineBreakMarker)
	return cell
}
