package model

// FormattingRule is the per-element-type portion of a style template.
// Spacing values are in blank-line units; Indent is in space-equivalents.
type FormattingRule struct {
	// Prefix and Suffix are markdown-equivalent markers applied to the
	// flat-text rendering (e.g. "# " for a title). They do not appear in
	// block runs.
	Prefix string
	Suffix string

	// SpacingBefore and SpacingAfter are blank-line counts.
	SpacingBefore int
	SpacingAfter  int

	Bold      bool
	Italic    bool
	Uppercase bool
	Center    bool

	// PageBreakBefore requests a page break before the element in
	// paginated output.
	PageBreakBefore bool

	// Indent is the first-line indent in space-equivalents; 0 defers to
	// the general indent size for paragraph elements.
	Indent int

	// LineHeight overrides the general line height when > 0.
	LineHeight float64

	// Numbering is an optional numbering pattern with {n}, {N} and {nn}
	// placeholders, e.g. "Chapter {n}" or "{n}.{n}".
	Numbering string

	// Typography overrides the general typography when non-nil.
	Typography *Typography
}

// GeneralRules are the document-wide defaults of a style template.
type GeneralRules struct {
	// ParagraphSpacing is the blank-line count between paragraphs.
	ParagraphSpacing int

	// IndentSize is the paragraph indent in space-equivalents.
	IndentSize int

	// LineHeight is the base line height multiplier.
	LineHeight float64

	// Alignment is the base alignment for body text.
	Alignment Alignment

	// Justify requests justified body text where the output target
	// supports it.
	Justify bool

	Font     string
	FontSize float64
	Color    string

	// BulletSymbol is the glyph used for bullet list items.
	BulletSymbol string

	// NumberFormat is the canonical numbering token for numbered lists,
	// e.g. "1.", "a.", "i.".
	NumberFormat string
}

// StyleTemplate is the resolved rule set for one style: per-element-type
// formatting rules plus document-wide general rules. Templates are built
// once per style id and cached for the remainder of the process lifetime.
type StyleTemplate struct {
	StyleID string
	Rules   map[ElementType]FormattingRule
	General GeneralRules
}

// RuleFor returns the formatting rule for the given element type and
// whether an explicit rule exists. Callers that receive ok == false fall
// back to the general rules.
func (t *StyleTemplate) RuleFor(et ElementType) (FormattingRule, bool) {
	if t == nil || t.Rules == nil {
		return FormattingRule{}, false
	}
	r, ok := t.Rules[et]
	return r, ok
}

// Directives extracts the subset of general rules downstream renderers need.
func (t *StyleTemplate) Directives() GeneralDirectives {
	if t == nil {
		return GeneralDirectives{}
	}
	return GeneralDirectives{
		Font:             t.General.Font,
		FontSize:         t.General.FontSize,
		Color:            t.General.Color,
		ParagraphSpacing: t.General.ParagraphSpacing,
		IndentSize:       t.General.IndentSize,
		LineHeight:       t.General.LineHeight,
		Alignment:        t.General.Alignment,
		Justify:          t.General.Justify,
		BulletSymbol:     t.General.BulletSymbol,
		NumberFormat:     t.General.NumberFormat,
	}
}
