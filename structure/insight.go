package structure

import (
	"strings"

	"github.com/tsawler/typeset/model"
)

// newElement creates a detected element with a fresh id and a semantic
// insight stub.
func newElement(et model.ElementType, content string, level int, start, end int) model.DocumentElement {
	return model.DocumentElement{
		ID:       model.NewElementID(),
		Type:     et,
		Content:  content,
		Level:    level,
		Position: model.Position{Start: start, End: end},
		Insight:  newInsightStub(et, content),
	}
}

// newInsightStub builds the detector's per-element insight: a role mapped
// from the element type, a fixed per-type confidence, and cheap lexical
// content signals.
func newInsightStub(et model.ElementType, content string) *model.SemanticInsight {
	return &model.SemanticInsight{
		Role:       et.Role(),
		Confidence: confidenceFor(et, content),
		Source:     "structure-detector",
		Signals: model.ContentSignals{
			AllCaps:    isAllCaps(content),
			ListMarker: hasListMarker(content),
			HasColon:   strings.Contains(content, ":"),
		},
	}
}

// confidenceFor returns the fixed detection confidence per element type.
// Paragraph confidence grows with length: very short fragments are the
// least certain classification.
func confidenceFor(et model.ElementType, content string) float64 {
	switch et {
	case model.ElementTitle:
		return 0.95
	case model.ElementChapter, model.ElementSection, model.ElementSubsection:
		return 0.9
	case model.ElementBulletList, model.ElementNumberedList:
		return 0.85
	case model.ElementParagraph:
		switch n := len(content); {
		case n < 50:
			return 0.6
		case n < 200:
			return 0.7
		default:
			return 0.8
		}
	default:
		return 0.7
	}
}

// hasListMarker reports whether the text begins with a bullet glyph or a
// numbered-item prefix.
func hasListMarker(content string) bool {
	r, ok := firstRune(content)
	if !ok {
		return false
	}
	if isBulletRune(r) {
		return true
	}
	return numberedItemRe.MatchString(content)
}
