package render

import (
	"github.com/tsawler/typeset/model"
)

// Resolved is the effective per-block presentation both output adapters
// consume. It merges the block's own fields with the document-wide
// directives, so individual adapters never duplicate the fallback logic.
type Resolved struct {
	Font       string
	FontSize   float64
	Color      string
	Bold       bool
	Alignment  model.Alignment
	LineHeight float64

	SpacingBefore int
	SpacingAfter  int
	Indent        int

	BulletSymbol string
	NumberFormat string

	PageBreakBefore bool
}

// ResolveBlockStyle computes the effective presentation for one block under
// the document directives. Block-level values win; zero values fall back to
// the directives, and justified body text picks up the directive-level
// justify flag.
func ResolveBlockStyle(b *model.FormattedBlock, d model.GeneralDirectives) Resolved {
	r := Resolved{
		Font:            b.Typography.Font,
		FontSize:        b.Typography.Size,
		Color:           b.Typography.Color,
		Bold:            b.Typography.Bold,
		Alignment:       b.Alignment,
		LineHeight:      b.LineHeight,
		SpacingBefore:   b.SpacingBefore,
		SpacingAfter:    b.SpacingAfter,
		Indent:          b.Indent,
		BulletSymbol:    b.BulletSymbol,
		NumberFormat:    b.NumberFormat,
		PageBreakBefore: b.PageBreakBefore,
	}

	if r.Font == "" {
		r.Font = d.Font
	}
	if r.FontSize <= 0 {
		r.FontSize = d.FontSize
	}
	if r.Color == "" {
		r.Color = d.Color
	}
	if r.LineHeight <= 0 {
		r.LineHeight = d.LineHeight
	}
	if r.BulletSymbol == "" {
		r.BulletSymbol = d.BulletSymbol
	}
	if r.NumberFormat == "" {
		r.NumberFormat = d.NumberFormat
	}
	if d.Justify && r.Alignment == model.AlignLeft && b.Type == model.ElementParagraph {
		r.Alignment = model.AlignJustify
	}
	return r
}
