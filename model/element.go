package model

import (
	"strings"

	"github.com/google/uuid"
)

// ElementType represents the logical type of a document element.
type ElementType int

const (
	ElementUnknown ElementType = iota
	ElementTitle
	ElementChapter
	ElementSection
	ElementSubsection
	ElementParagraph
	ElementBulletList
	ElementNumberedList
	ElementTable
	ElementTableOfContents
	ElementFootnote
	ElementCitation
	ElementCodeBlock
	ElementImageCaption
	ElementHeader
	ElementFooter
)

func (et ElementType) String() string {
	switch et {
	case ElementTitle:
		return "title"
	case ElementChapter:
		return "chapter"
	case ElementSection:
		return "section"
	case ElementSubsection:
		return "subsection"
	case ElementParagraph:
		return "paragraph"
	case ElementBulletList:
		return "bulletList"
	case ElementNumberedList:
		return "numberedList"
	case ElementTable:
		return "table"
	case ElementTableOfContents:
		return "tableOfContents"
	case ElementFootnote:
		return "footnote"
	case ElementCitation:
		return "citation"
	case ElementCodeBlock:
		return "codeBlock"
	case ElementImageCaption:
		return "imageCaption"
	case ElementHeader:
		return "header"
	case ElementFooter:
		return "footer"
	default:
		return "unknown"
	}
}

// ParseElementType converts the string form back to an ElementType.
// Unrecognized names return ElementUnknown.
func ParseElementType(s string) ElementType {
	for et := ElementTitle; et <= ElementFooter; et++ {
		if et.String() == s {
			return et
		}
	}
	return ElementUnknown
}

// IsHeading reports whether the type is a heading-like element.
func (et ElementType) IsHeading() bool {
	switch et {
	case ElementTitle, ElementChapter, ElementSection, ElementSubsection:
		return true
	}
	return false
}

// IsList reports whether the type carries list items rather than runs.
func (et ElementType) IsList() bool {
	return et == ElementBulletList || et == ElementNumberedList
}

// HeadingLevel returns the canonical heading depth (1-4) for heading types,
// and 0 for everything else.
func (et ElementType) HeadingLevel() int {
	switch et {
	case ElementTitle:
		return 1
	case ElementChapter:
		return 2
	case ElementSection:
		return 3
	case ElementSubsection:
		return 4
	}
	return 0
}

// HTMLTag returns the block-level tag downstream renderers use for this type:
// title maps to h1, chapter to h2, section to h3, subsection to h4, lists to
// ul/ol, tables to table, and everything else to p.
func (et ElementType) HTMLTag() string {
	switch et {
	case ElementTitle:
		return "h1"
	case ElementChapter:
		return "h2"
	case ElementSection:
		return "h3"
	case ElementSubsection:
		return "h4"
	case ElementBulletList:
		return "ul"
	case ElementNumberedList:
		return "ol"
	case ElementTable:
		return "table"
	case ElementCodeBlock:
		return "pre"
	default:
		return "p"
	}
}

// Role returns the semantic role name recorded in insights for this type.
func (et ElementType) Role() string {
	switch et {
	case ElementTitle:
		return "document-title"
	case ElementChapter:
		return "chapter-heading"
	case ElementSection:
		return "section-heading"
	case ElementSubsection:
		return "subsection-heading"
	case ElementParagraph:
		return "body-text"
	case ElementBulletList:
		return "bullet-list"
	case ElementNumberedList:
		return "numbered-list"
	case ElementTable:
		return "tabular-data"
	case ElementTableOfContents:
		return "table-of-contents"
	case ElementFootnote:
		return "footnote"
	case ElementCitation:
		return "citation"
	case ElementCodeBlock:
		return "code"
	case ElementImageCaption:
		return "caption"
	case ElementHeader:
		return "page-header"
	case ElementFooter:
		return "page-footer"
	default:
		return "unknown"
	}
}

// Position is a half-open character offset range [Start, End) into the
// source text.
type Position struct {
	Start int
	End   int
}

// ListExtra carries the parsed items of a list element, markers stripped.
type ListExtra struct {
	Items []string
}

// ItemsOrSplit returns the recorded items, falling back to splitting the
// joined content on newlines. Safe on a nil receiver.
func (l *ListExtra) ItemsOrSplit(content string) []string {
	if l != nil && len(l.Items) > 0 {
		return l.Items
	}
	if content == "" {
		return nil
	}
	return strings.Split(content, "\n")
}

// TableExtra carries the parsed cells of a table element.
type TableExtra struct {
	Headers []string
	Rows    [][]string
}

// DocumentElement is one classified logical unit of source text. Elements
// are created once by structure detection and are immutable afterward,
// except for Insight, which may be attached post-creation.
type DocumentElement struct {
	// ID is an opaque unique key for the element.
	ID string

	// Type is the detected element type.
	Type ElementType

	// Content is the cleaned text with structural markers stripped.
	Content string

	// Level is the heading depth (1-4) for heading types, 0 otherwise.
	Level int

	// ParentID is the id of the nearest enclosing heading element, or
	// empty when the element sits at the top of the forest.
	ParentID string

	// Position is the element's character span in the source text.
	Position Position

	// List holds parsed list items for bulletList/numberedList elements.
	List *ListExtra

	// Table holds parsed cells for table elements.
	Table *TableExtra

	// Insight is the detector's semantic annotation for this element.
	Insight *SemanticInsight
}

// NewElementID returns a fresh opaque element id.
func NewElementID() string {
	return uuid.NewString()
}
