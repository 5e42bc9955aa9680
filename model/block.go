package model

import "strings"

// TextRun is a span of text with uniform inline styling.
type TextRun struct {
	Text   string
	Bold   bool
	Italic bool
	Color  string
}

// GeneralDirectives is the subset of a style template's general rules that
// downstream renderers need to lay out blocks.
type GeneralDirectives struct {
	Font             string
	FontSize         float64
	Color            string
	ParagraphSpacing int
	IndentSize       int
	LineHeight       float64
	Alignment        Alignment
	Justify          bool
	BulletSymbol     string
	NumberFormat     string
}

// FormattedBlock is the renderer-neutral unit produced by the formatting
// engine. Exactly one of Runs (non-list types) or ListItems (list types) is
// meaningful, and TableData is present iff Type is ElementTable.
type FormattedBlock struct {
	// ID is an opaque unique key for the block.
	ID string

	// ElementID references the source element this block was built from.
	ElementID string

	// Type is the block's element type.
	Type ElementType

	// Numbering is the substituted numbering string ("Chapter 3"), when
	// the style's rule carries a numbering pattern.
	Numbering string

	// SpacingBefore and SpacingAfter are blank-line counts.
	SpacingBefore int
	SpacingAfter  int

	// Runs is the styled text content for non-list blocks.
	Runs []TextRun

	// ListItems is the styled content per item for list blocks.
	ListItems [][]TextRun

	Alignment  Alignment
	LineHeight float64
	Indent     int

	// BulletSymbol and NumberFormat are the list markers renderers use.
	BulletSymbol string
	NumberFormat string

	// PageBreakBefore requests a page break before this block.
	PageBreakBefore bool

	// Typography is the resolved font treatment for this block.
	Typography Typography

	// RawContent is the element's original, unformatted content.
	RawContent string

	// Insight is the refreshed semantic annotation for this block.
	Insight *SemanticInsight

	// TableData holds the parsed table for table blocks.
	TableData *TableExtra
}

// PlainText returns the block's text content with inline styling discarded:
// the concatenated runs for non-list blocks, or the newline-joined items for
// list blocks.
func (b *FormattedBlock) PlainText() string {
	if b.Type.IsList() {
		lines := make([]string, 0, len(b.ListItems))
		for _, item := range b.ListItems {
			var sb strings.Builder
			for _, r := range item {
				sb.WriteString(r.Text)
			}
			lines = append(lines, sb.String())
		}
		return strings.Join(lines, "\n")
	}
	var sb strings.Builder
	for _, r := range b.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// SummaryCounts are per-category block counts for a formatted document.
type SummaryCounts struct {
	Titles     int
	Headings   int
	Paragraphs int
	Lists      int
	Tables     int
	Other      int
}

// Summary describes how a formatted document was produced.
type Summary struct {
	// DetectorVersion and TemplateVersion tag the pipeline stages that
	// produced this document.
	DetectorVersion string
	TemplateVersion string

	// Counts are per-category block counts.
	Counts SummaryCounts

	// Corrections are human-readable notes recorded by the semantic
	// post-processor, capped at its configured limit.
	Corrections []string
}

// FormattedDocument is the full output of the formatting pipeline.
type FormattedDocument struct {
	// Text is the flattened formatted rendering. It is informational;
	// renderers consume Blocks.
	Text string

	// Blocks is the ordered list of renderer-neutral blocks.
	Blocks []FormattedBlock

	// StyleID identifies the style template that was applied.
	StyleID string

	// Directives are the document-wide defaults renderers need.
	Directives GeneralDirectives

	// Summary describes the pipeline stages and per-category counts.
	Summary Summary
}

// NewBlockID returns a fresh opaque block id.
func NewBlockID() string {
	return NewElementID()
}

// CountBlocks tallies blocks into per-category summary counts.
func CountBlocks(blocks []FormattedBlock) SummaryCounts {
	var c SummaryCounts
	for i := range blocks {
		switch et := blocks[i].Type; {
		case et == ElementTitle:
			c.Titles++
		case et.IsHeading():
			c.Headings++
		case et == ElementParagraph:
			c.Paragraphs++
		case et.IsList():
			c.Lists++
		case et == ElementTable:
			c.Tables++
		default:
			c.Other++
		}
	}
	return c
}
