package model

// StyleExtraction is the result of analyzing a reference document's styles.
// It is produced by an external analyzer and consumed read-only by the style
// template learner and the validator. A failed analysis still yields a
// usable value: Success is false and the learner substitutes defaults for
// every missing attribute.
type StyleExtraction struct {
	// Success reports whether the analyzer extracted anything useful.
	Success bool

	// Confidence is the analyzer's confidence in [0, 1].
	Confidence float64

	// Simplified holds the analyzer's condensed view of the style.
	Simplified SimplifiedStyles

	// Raw holds the analyzer's low-level attributes.
	Raw RawStyles
}

// SimplifiedStyles is the condensed style view: one value per concern,
// already reconciled by the analyzer.
type SimplifiedStyles struct {
	Font             string
	FontSize         float64
	TextColor        string
	HeadingColor     string
	AccentColor      string
	ParagraphSpacing float64 // points
	LineHeight       float64
	AlignJustify     bool
	BulletSymbol     string

	// HeadingStyles maps normalized heading levels ("h1".."h3") to the
	// typography observed for that level.
	HeadingStyles map[string]Typography
}

// RawStyles is the low-level extraction: everything the analyzer saw,
// before reconciliation.
type RawStyles struct {
	DefaultFont string
	Fonts       []string
	FontSizes   []float64
	Colors      []string

	// DocDefaults are the document-wide defaults, when present.
	DocDefaults RawDocDefaults

	// ParagraphStyles are the named paragraph styles of the reference.
	ParagraphStyles []RawParagraphStyle

	// NumberingLevels are the reference's list numbering definitions.
	NumberingLevels []RawNumberingLevel

	// SpacingSamples and LineHeightSamples are per-paragraph observations
	// used when no explicit defaults exist.
	SpacingSamples    []float64 // points
	LineHeightSamples []float64
}

// RawDocDefaults are document-wide defaults from the reference.
type RawDocDefaults struct {
	SpacingPts float64
	LineHeight float64
}

// RawParagraphStyle is one named paragraph style from the reference.
type RawParagraphStyle struct {
	StyleID          string
	Name             string
	SpacingBeforePts float64
	SpacingAfterPts  float64
	AlignCenter      bool
	Bold             bool
	Font             string
	SizePts          float64
	Color            string
}

// RawNumberingLevel is one list numbering level from the reference.
type RawNumberingLevel struct {
	// Level is the zero-based nesting level.
	Level int

	// Format is the numbering format token, e.g. "decimal", "lowerRoman",
	// "bullet". Empty when the reference did not state one.
	Format string

	// LevelText is the literal level pattern, e.g. "%1." or a bullet
	// glyph for bullet levels.
	LevelText string
}

// HeadingTypography returns the merged typography for a normalized heading
// level ("h1".."h3"), preferring the simplified view and falling back to the
// first raw paragraph style whose name matches the level.
func (se *StyleExtraction) HeadingTypography(level string) (Typography, bool) {
	if se == nil {
		return Typography{}, false
	}
	if t, ok := se.Simplified.HeadingStyles[level]; ok {
		return t, true
	}
	return Typography{}, false
}
