package model

// Alignment represents horizontal text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignJustify
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	default:
		return "left"
	}
}

// Typography describes the resolved font treatment of a block or rule.
type Typography struct {
	Font  string
	Size  float64
	Color string
	Bold  bool
}

// ContentSignals are cheap lexical facts about an element's text, recorded
// at detection time and reused by later heuristic passes.
type ContentSignals struct {
	// AllCaps is true when the text's letters are (almost) all uppercase.
	AllCaps bool

	// ListMarker is true when the text starts with a bullet or numbered
	// list prefix.
	ListMarker bool

	// HasColon is true when the text contains a colon.
	HasColon bool
}

// LayoutSnapshot records the layout actually applied to a block.
type LayoutSnapshot struct {
	Alignment     Alignment
	SpacingBefore int
	SpacingAfter  int
	Indent        int
}

// SemanticInsight annotates an element or block with its inferred role and
// the confidence of that inference. The detector attaches a stub insight to
// every element; the formatting engine refreshes it with the typography and
// layout that were actually applied.
type SemanticInsight struct {
	// Role is the semantic role, e.g. "section-heading" or "body-text".
	Role string

	// Confidence is the detection confidence in [0, 1].
	Confidence float64

	// Source identifies which stage produced this insight, e.g.
	// "structure-detector" or "style-template".
	Source string

	// Typography is the applied font treatment, when known.
	Typography *Typography

	// Layout is the applied layout, when known.
	Layout *LayoutSnapshot

	// Signals are the element's lexical content signals.
	Signals ContentSignals
}
