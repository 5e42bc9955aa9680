package tables

import (
	"regexp"
	"strings"
)

// Table is a parsed text table: a header row plus zero or more data rows.
// Every row has exactly len(Headers) cells.
type Table struct {
	Headers []string
	Rows    [][]string
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int {
	if t == nil {
		return 0
	}
	return len(t.Headers)
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// splitMode identifies the column strategy chosen for a table. The header
// line picks the mode and every data row is split the same way.
type splitMode int

const (
	modePipe splitMode = iota
	modeTab
	modeWideSpaces   // runs of 3+ spaces
	modeNarrowSpaces // runs of 2+ spaces (fallback)
)

var (
	wideSpaceRe   = regexp.MustCompile(` {3,}`)
	narrowSpaceRe = regexp.MustCompile(` {2,}`)
)

// LooksLikeTableLine reports whether a single line is plausibly a table row:
// it contains a pipe with content on both sides, or splits on tabs into two
// or more non-empty fields, or splits on space runs (three or more spaces,
// falling back to two) into two or more non-empty fields.
func LooksLikeTableLine(line string) bool {
	if strings.Contains(line, "|") {
		if countNonEmpty(splitPipes(line)) >= 2 {
			return true
		}
	}
	if strings.Contains(line, "\t") {
		if countNonEmpty(strings.Split(line, "\t")) >= 2 {
			return true
		}
	}
	if countNonEmpty(wideSpaceRe.Split(strings.TrimSpace(line), -1)) >= 2 {
		return true
	}
	return countNonEmpty(narrowSpaceRe.Split(strings.TrimSpace(line), -1)) >= 2
}

// Parse parses tabular text into a Table. The first line that splits into
// two or more columns becomes the header and fixes the column strategy and
// count; subsequent lines are split the same way, with overflow columns
// folded into the last cell and under-filled rows buffered until the
// expected cell count is reached. Lines that fail to split at all continue
// the previous cell.
//
// Parse returns nil when no line yields at least two header columns or when
// no data rows result.
func Parse(text string) *Table {
	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		if s := strings.TrimSpace(raw); s != "" {
			lines = append(lines, s)
		}
	}

	headerIdx := -1
	var headers []string
	var mode splitMode
	for i, line := range lines {
		if isSeparatorLine(line) {
			continue
		}
		if cells, m, ok := detectColumns(line); ok {
			headerIdx, headers, mode = i, cells, m
			break
		}
	}
	if headerIdx < 0 || len(headers) < 2 {
		return nil
	}

	want := len(headers)
	var rows [][]string
	var pending []string

	for _, line := range lines[headerIdx+1:] {
		if isSeparatorLine(line) {
			continue
		}
		cols := splitColumns(line, mode)
		if len(cols) <= 1 {
			// Continuation of the previous cell.
			cont := strings.TrimSpace(line)
			if cont == "" {
				continue
			}
			switch {
			case len(pending) > 0:
				pending[len(pending)-1] = strings.TrimSpace(pending[len(pending)-1] + " " + cont)
			case len(rows) > 0:
				last := rows[len(rows)-1]
				last[want-1] = strings.TrimSpace(last[want-1] + " " + cont)
			default:
				pending = append(pending, cont)
			}
			continue
		}

		if len(pending) == 0 && len(cols) >= want {
			// A complete row on one line; overflow columns fold into
			// the last cell.
			row := make([]string, want)
			copy(row, cols)
			if len(cols) > want {
				row[want-1] = strings.TrimSpace(strings.Join(cols[want-1:], " "))
			}
			rows = append(rows, row)
			continue
		}

		// Under-filled: buffer and complete from subsequent lines.
		pending = append(pending, cols...)
		for len(pending) >= want {
			row := make([]string, want)
			copy(row, pending[:want])
			rows = append(rows, row)
			pending = pending[want:]
		}
	}
	if len(pending) > 0 {
		row := make([]string, want)
		copy(row, pending)
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil
	}
	return &Table{Headers: headers, Rows: rows}
}

// detectColumns tries each column strategy in priority order (pipe, tab,
// wide space runs, narrow space runs) and returns the first that yields two
// or more non-empty columns.
func detectColumns(line string) ([]string, splitMode, bool) {
	if strings.Contains(line, "|") {
		if cells := nonEmpty(splitPipes(line)); len(cells) >= 2 {
			return cells, modePipe, true
		}
	}
	if strings.Contains(line, "\t") {
		if cells := nonEmpty(strings.Split(line, "\t")); len(cells) >= 2 {
			return cells, modeTab, true
		}
	}
	if cells := nonEmpty(wideSpaceRe.Split(line, -1)); len(cells) >= 2 {
		return cells, modeWideSpaces, true
	}
	if cells := nonEmpty(narrowSpaceRe.Split(line, -1)); len(cells) >= 2 {
		return cells, modeNarrowSpaces, true
	}
	return nil, 0, false
}

// splitColumns splits a data row using the header's strategy.
func splitColumns(line string, mode splitMode) []string {
	switch mode {
	case modePipe:
		return nonEmptyInterior(splitPipes(line))
	case modeTab:
		return nonEmpty(strings.Split(line, "\t"))
	case modeWideSpaces:
		return nonEmpty(wideSpaceRe.Split(line, -1))
	default:
		return nonEmpty(narrowSpaceRe.Split(line, -1))
	}
}

// splitPipes splits a line on unescaped pipes, trims each cell, drops a
// leading/trailing empty cell produced by boundary pipes, and unescapes
// pipe and line-break markers.
func splitPipes(line string) []string {
	var cells []string
	var cur strings.Builder
	escaped := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case escaped:
			if c != '|' {
				cur.WriteByte('\\')
			}
			cur.WriteByte(c)
			escaped = false
		case c == '\\':
			escaped = true
		case c == '|':
			cells = append(cells, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	if escaped {
		cur.WriteByte('\\')
	}
	cells = append(cells, cur.String())

	// Drop boundary cells from leading/trailing pipes.
	if len(cells) > 0 && strings.TrimSpace(cells[0]) == "" {
		cells = cells[1:]
	}
	if len(cells) > 0 && strings.TrimSpace(cells[len(cells)-1]) == "" {
		cells = cells[:len(cells)-1]
	}

	for i := range cells {
		cells[i] = strings.TrimSpace(strings.ReplaceAll(cells[i], lineBreakMarker, " "))
	}
	return cells
}

// isSeparatorLine reports whether the line is a markdown header separator
// such as "| --- | :--- |".
func isSeparatorLine(line string) bool {
	seen := false
	for _, r := range line {
		switch r {
		case '-':
			seen = true
		case '|', ':', ' ', '\t':
		default:
			return false
		}
	}
	return seen
}

func countNonEmpty(fields []string) int {
	n := 0
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			n++
		}
	}
	return n
}

// nonEmpty trims every field and drops empty ones.
func nonEmpty(fields []string) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if s := strings.TrimSpace(f); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// nonEmptyInterior keeps interior empty cells (meaningful in pipe layouts)
// but yields nil for a line with no real content.
func nonEmptyInterior(cells []string) []string {
	if countNonEmpty(cells) == 0 {
		return nil
	}
	return cells
}
