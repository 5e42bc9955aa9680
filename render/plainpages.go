package render

import (
	"strconv"
	"strings"

	"github.com/tsawler/typeset/model"
	"github.com/tsawler/typeset/tables"
)

// DefaultLinesPerPage is the page height used when callers pass 0.
const DefaultLinesPerPage = 50

// Page is one page of paginated plain-text output.
type Page struct {
	Lines []string
}

// PlainPages lays the document's blocks out onto fixed-height pages. Blocks
// requesting a page break start a new page; a block whose lines do not fit
// the remainder of the current page spills onto the next one. It consumes
// the same resolved style as the HTML adapter, so the two targets never
// disagree on spacing, markers or indentation.
func PlainPages(doc *model.FormattedDocument, linesPerPage int) []Page {
	if linesPerPage <= 0 {
		linesPerPage = DefaultLinesPerPage
	}

	var pages []Page
	var current []string

	flush := func() {
		if len(current) > 0 {
			pages = append(pages, Page{Lines: current})
			current = nil
		}
	}
	emit := func(line string) {
		if len(current) >= linesPerPage {
			flush()
		}
		current = append(current, line)
	}

	pendingBlank := 0
	for i := range doc.Blocks {
		b := &doc.Blocks[i]
		r := ResolveBlockStyle(b, doc.Directives)

		if r.PageBreakBefore {
			flush()
			pendingBlank = 0
		}

		if len(current) > 0 {
			gap := r.SpacingBefore
			if pendingBlank > gap {
				gap = pendingBlank
			}
			for j := 0; j < gap && len(current) < linesPerPage; j++ {
				emit("")
			}
		}

		for _, line := range blockLines(b, r) {
			emit(line)
		}
		pendingBlank = r.SpacingAfter
	}
	flush()
	return pages
}

// blockLines renders one block as plain text lines with its markers and
// indentation applied.
func blockLines(b *model.FormattedBlock, r Resolved) []string {
	pad := strings.Repeat(" ", r.Indent)

	if b.Type.IsList() {
		lines := make([]string, 0, len(b.ListItems))
		for i, item := range b.ListItems {
			marker := r.BulletSymbol
			if b.Type == model.ElementNumberedList {
				marker = numberedMarker(r.NumberFormat, i+1)
			}
			lines = append(lines, pad+marker+" "+runsText(item))
		}
		return lines
	}

	if b.Type == model.ElementTable {
		if b.TableData != nil {
			md := tables.RenderMarkdown(&tables.Table{Headers: b.TableData.Headers, Rows: b.TableData.Rows})
			return strings.Split(strings.TrimRight(md, "\n"), "\n")
		}
		return strings.Split(b.PlainText(), "\n")
	}
	if b.Type == model.ElementCodeBlock {
		return strings.Split(b.PlainText(), "\n")
	}

	line := runsText(b.Runs)
	if b.Numbering != "" {
		line = b.Numbering + " " + line
	}
	return []string{pad + line}
}

// numberedMarker renders a 1-based item index under a canonical
// number-format token, falling back to decimal.
func numberedMarker(format string, index int) string {
	suffix := "."
	body := format
	if format != "" {
		if last := format[len(format)-1]; last == '.' || last == ')' || last == ':' {
			suffix = string(last)
			body = format[:len(format)-1]
		}
	}
	switch body {
	case "a":
		return string(rune('a'+(index-1)%26)) + suffix
	case "A":
		return string(rune('A'+(index-1)%26)) + suffix
	default:
		return strconv.Itoa(index) + suffix
	}
}

func runsText(runs []model.TextRun) string {
	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}
