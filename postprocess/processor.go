package postprocess

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/tsawler/typeset/model"
	"github.com/tsawler/typeset/tables"
)

const (
	// MaxNotes caps the correction notes recorded on the summary.
	MaxNotes = 20

	// promotion thresholds for reclassifying a paragraph as a heading.
	promoteMaxLen   = 120
	promoteMaxWords = 12

	// tableConfidence is the floor applied to re-detected tables.
	tableConfidence = 0.85
)

// promotionKeywords are heading-like lead words that trigger promotion even
// without a colon.
var promotionKeywords = []string{"overview", "summary", "objective", "context"}

// Processor applies targeted corrections to an already formatted block
// list, independent of the template that produced it. Each change is
// recorded as a "<blockId>: <description>" note on the document summary.
type Processor struct {
	// Reference carries the extracted style attributes of the reference
	// document, when one was used. Only the heading fonts are consulted.
	Reference *model.StyleExtraction
}

// NewProcessor creates a processor without a reference extraction.
func NewProcessor() *Processor {
	return &Processor{}
}

// Process corrects the document's blocks in place: heading promotion, bold
// enforcement on headings, list item trimming and table re-detection. The
// summary's correction notes and per-category counts are updated.
func (p *Processor) Process(doc *model.FormattedDocument) {
	if doc == nil {
		return
	}

	var notes []string
	note := func(id, format string, args ...interface{}) {
		if len(notes) < MaxNotes {
			notes = append(notes, id+": "+fmt.Sprintf(format, args...))
		}
	}

	for i := range doc.Blocks {
		b := &doc.Blocks[i]

		if b.Type == model.ElementParagraph {
			if target, ok := p.promotionTarget(b); ok {
				from := b.Type
				b.Type = target
				if b.Insight != nil {
					b.Insight.Role = target.Role()
				}
				note(b.ID, "promoted %s to %s", from, target)
			}
		}

		if b.Type.IsHeading() {
			if forceBold(b.Runs) {
				note(b.ID, "enforced bold on %s heading", b.Type)
			}
		}

		if b.Type.IsList() {
			if trimListItems(b.ListItems) {
				note(b.ID, "trimmed list item whitespace")
			}
		}

		if b.Type != model.ElementTable {
			if t := redetectTable(b); t != nil {
				from := b.Type
				b.Type = model.ElementTable
				b.TableData = &model.TableExtra{Headers: t.Headers, Rows: t.Rows}
				b.ListItems = nil
				if b.Insight != nil {
					b.Insight.Role = model.ElementTable.Role()
					if b.Insight.Confidence < tableConfidence {
						b.Insight.Confidence = tableConfidence
					}
				}
				note(b.ID, "reclassified %s as table (%dx%d)", from, t.RowCount(), t.ColumnCount())
			}
		}
	}

	doc.Summary.Corrections = append(doc.Summary.Corrections, notes...)
	if len(doc.Summary.Corrections) > MaxNotes {
		doc.Summary.Corrections = doc.Summary.Corrections[:MaxNotes]
	}
	doc.Summary.Counts = model.CountBlocks(doc.Blocks)
}

// promotionTarget decides whether a paragraph block reads like a heading
// and, if so, which heading level it becomes. Colon-led labels and keyword
// leads promote to section; a font matching the reference's secondary
// heading fonts promotes to subsection.
func (p *Processor) promotionTarget(b *model.FormattedBlock) (model.ElementType, bool) {
	text := strings.TrimSpace(b.PlainText())
	if text == "" || len(text) >= promoteMaxLen || len(strings.Fields(text)) > promoteMaxWords {
		return 0, false
	}
	if !headingLead(text) {
		return 0, false
	}

	lower := strings.ToLower(text)
	if strings.Contains(text, ":") {
		return model.ElementSection, true
	}
	for _, kw := range promotionKeywords {
		if strings.HasPrefix(lower, kw) {
			return model.ElementSection, true
		}
	}
	if p.fontMatchesReferenceHeading(b.Typography.Font) {
		return model.ElementSubsection, true
	}
	return 0, false
}

// headingLead reports whether the text starts the way headings do: with a
// capital, digit, quote or bracket.
func headingLead(text string) bool {
	r := []rune(text)[0]
	switch {
	case unicode.IsUpper(r) || unicode.IsDigit(r):
		return true
	case r == '"' || r == '\'' || r == '“' || r == '‘':
		return true
	case r == '(' || r == '[':
		return true
	}
	return false
}

func (p *Processor) fontMatchesReferenceHeading(font string) bool {
	if p.Reference == nil || font == "" {
		return false
	}
	for _, level := range []string{"h2", "h3"} {
		if t, ok := p.Reference.Simplified.HeadingStyles[level]; ok && t.Font == font {
			return true
		}
	}
	return false
}

// forceBold sets Bold on every run, reporting whether anything changed.
func forceBold(runs []model.TextRun) bool {
	changed := false
	for i := range runs {
		if !runs[i].Bold {
			runs[i].Bold = true
			changed = true
		}
	}
	return changed
}

// trimListItems trims surrounding whitespace in every item's run text.
func trimListItems(items [][]model.TextRun) bool {
	changed := false
	for _, runs := range items {
		for i := range runs {
			if trimmed := strings.TrimSpace(runs[i].Text); trimmed != runs[i].Text {
				runs[i].Text = trimmed
				changed = true
			}
		}
	}
	return changed
}

// redetectTable tries to parse a non-table block's content as a table,
// preferring the raw content over the styled run text.
func redetectTable(b *model.FormattedBlock) *tables.Table {
	if t := tables.Parse(b.RawContent); t != nil {
		return t
	}
	return tables.Parse(b.PlainText())
}
