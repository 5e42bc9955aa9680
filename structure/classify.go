package structure

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/tsawler/typeset/model"
)

// lineContext carries the surrounding-line facts a classifier may need.
type lineContext struct {
	// PrevBlank and NextBlank report whether the adjacent lines are blank
	// (or the document boundary).
	PrevBlank bool
	NextBlank bool

	// Tail is true when the line sits in the last portion of the
	// document, where footnotes are expected.
	Tail bool
}

// lineClass is the result of classifying a single line.
type lineClass struct {
	Type model.ElementType

	// Level is the heading depth for heading types.
	Level int

	// Content is the line text with structural markers stripped.
	Content string
}

// classifier is one heuristic rule. Rules are pure functions; they return
// ok == false when the line does not match.
type classifier func(line string, ctx lineContext, cfg Config) (lineClass, bool)

// classifiers is the fixed priority order of the classification cascade.
var classifiers = []classifier{
	classifyMarkerHeading,
	classifyChapterKeyword,
	classifySectionKeyword,
	classifyNumberedHeading,
	classifyRomanChapter,
	classifyBulletItem,
	classifyNumberedItem,
	classifyTOC,
	classifyFootnote,
	classifyImplicitHeading,
}

// classifyLine runs the cascade and reports the first match.
func classifyLine(line string, ctx lineContext, cfg Config) (lineClass, bool) {
	for _, rule := range classifiers {
		if lc, ok := rule(line, ctx, cfg); ok {
			return lc, true
		}
	}
	return lineClass{}, false
}

var markerHeadingRe = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)

// classifyMarkerHeading matches explicit "#"-style heading markers. One
// marker is the document title, two a chapter, three a section, four or
// more a subsection.
func classifyMarkerHeading(line string, _ lineContext, _ Config) (lineClass, bool) {
	m := markerHeadingRe.FindStringSubmatch(line)
	if m == nil {
		return lineClass{}, false
	}
	var et model.ElementType
	switch len(m[1]) {
	case 1:
		et = model.ElementTitle
	case 2:
		et = model.ElementChapter
	case 3:
		et = model.ElementSection
	default:
		et = model.ElementSubsection
	}
	return lineClass{Type: et, Level: et.HeadingLevel(), Content: strings.TrimSpace(m[2])}, true
}

// chapterKeywordRe matches "Chapter 3", "CHAPITRE IV" and similar headings
// in a small set of locale keywords.
var chapterKeywordRe = regexp.MustCompile(`^(?i)(chapter|chapitre|cap[ií]tulo|capitolo|kapitel)\s+(\d+|[IVXLCDM]+)\b`)

func classifyChapterKeyword(line string, _ lineContext, cfg Config) (lineClass, bool) {
	if len(line) >= cfg.MaxHeadingLen || !chapterKeywordRe.MatchString(line) {
		return lineClass{}, false
	}
	return lineClass{Type: model.ElementChapter, Level: 2, Content: strings.TrimSpace(line)}, true
}

var sectionKeywordRe = regexp.MustCompile(`^(?i)(section|secci[oó]n|abschnitt|partie)\s+(\d+|[IVXLCDM]+)\b`)

func classifySectionKeyword(line string, _ lineContext, cfg Config) (lineClass, bool) {
	if len(line) >= cfg.MaxHeadingLen || !sectionKeywordRe.MatchString(line) {
		return lineClass{}, false
	}
	return lineClass{Type: model.ElementSection, Level: 3, Content: strings.TrimSpace(line)}, true
}

var (
	subsectionNumRe = regexp.MustCompile(`^(\d+(?:\.\d+)+)[.)]?\s+(\S.*)$`)
	sectionNumRe    = regexp.MustCompile(`^(\d+)\.\s+(\S.*)$`)
)

// classifyNumberedHeading matches "1. Introduction" and "1.2 Methods"
// style headings. The remainder must look like a heading (short, starting
// with a capital or digit, no terminal sentence punctuation); otherwise the
// line falls through to the numbered-list rule.
func classifyNumberedHeading(line string, _ lineContext, cfg Config) (lineClass, bool) {
	if m := subsectionNumRe.FindStringSubmatch(line); m != nil && headingLike(m[2], cfg) {
		return lineClass{Type: model.ElementSubsection, Level: 4, Content: strings.TrimSpace(m[2])}, true
	}
	if m := sectionNumRe.FindStringSubmatch(line); m != nil && headingLike(m[2], cfg) {
		return lineClass{Type: model.ElementSection, Level: 3, Content: strings.TrimSpace(m[2])}, true
	}
	return lineClass{}, false
}

var romanChapterRe = regexp.MustCompile(`^([IVXLCDM]{1,7})[.)]\s+(\S.*)$`)

// classifyRomanChapter matches "IV. The Storm" style chapter headings.
func classifyRomanChapter(line string, _ lineContext, cfg Config) (lineClass, bool) {
	m := romanChapterRe.FindStringSubmatch(line)
	if m == nil || !headingLike(m[2], cfg) {
		return lineClass{}, false
	}
	return lineClass{Type: model.ElementChapter, Level: 2, Content: strings.TrimSpace(m[2])}, true
}

// bulletRunes is the set of recognized bullet glyphs. Private Use Area
// runes (symbol-font bullets surviving extraction) are also accepted.
var bulletRunes = map[rune]bool{
	'•': true, '◦': true, '▪': true, '▫': true, '‣': true,
	'·': true, '∙': true, '-': true, '–': true, '—': true,
	'*': true, '→': true, '▶': true, '►': true, '■': true,
	'○': true, '●': true, '✓': true, '✔': true, '❖': true,
}

// isBulletRune reports whether r can open a bullet list item.
func isBulletRune(r rune) bool {
	if bulletRunes[r] {
		return true
	}
	return r >= 0xE000 && r <= 0xF8FF // Private Use Area
}

func classifyBulletItem(line string, _ lineContext, _ Config) (lineClass, bool) {
	runes := []rune(line)
	if len(runes) < 3 || !isBulletRune(runes[0]) {
		return lineClass{}, false
	}
	if !unicode.IsSpace(runes[1]) {
		return lineClass{}, false
	}
	content := strings.TrimSpace(string(runes[2:]))
	if content == "" {
		return lineClass{}, false
	}
	return lineClass{Type: model.ElementBulletList, Content: content}, true
}

var numberedItemRe = regexp.MustCompile(`^\(?(\d{1,3}|[a-zA-Z]|[ivxlcdm]{1,6})[.)]\s+(\S.*)$`)

func classifyNumberedItem(line string, _ lineContext, _ Config) (lineClass, bool) {
	m := numberedItemRe.FindStringSubmatch(line)
	if m == nil {
		return lineClass{}, false
	}
	return lineClass{Type: model.ElementNumberedList, Content: strings.TrimSpace(m[2])}, true
}

// tocKeywords are whole-line matches for a table of contents heading.
var tocKeywords = map[string]bool{
	"table of contents":  true,
	"contents":           true,
	"toc":                true,
	"índice":             true,
	"indice":             true,
	"sommaire":           true,
	"inhaltsverzeichnis": true,
}

func classifyTOC(line string, _ lineContext, _ Config) (lineClass, bool) {
	if !tocKeywords[strings.ToLower(strings.TrimSpace(line))] {
		return lineClass{}, false
	}
	return lineClass{Type: model.ElementTableOfContents, Content: strings.TrimSpace(line)}, true
}

var footnoteRe = regexp.MustCompile(`^(\[\d+\]|\d+)\s+\S`)

// classifyFootnote matches short bracket- or digit-prefixed lines in the
// tail of the document. Digit-with-dot forms never reach this rule; the
// numbered-list rule claims them first.
func classifyFootnote(line string, ctx lineContext, cfg Config) (lineClass, bool) {
	if !ctx.Tail || len(line) >= cfg.MaxFootnoteLen || !footnoteRe.MatchString(line) {
		return lineClass{}, false
	}
	return lineClass{Type: model.ElementFootnote, Content: strings.TrimSpace(line)}, true
}

// classifyImplicitHeading promotes a short line isolated by blank lines to
// a section heading when it is ALL CAPS or strongly title-cased.
func classifyImplicitHeading(line string, ctx lineContext, cfg Config) (lineClass, bool) {
	if !ctx.PrevBlank || !ctx.NextBlank {
		return lineClass{}, false
	}
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) >= cfg.ImplicitHeadingMaxLen {
		return lineClass{}, false
	}
	if isAllCaps(trimmed) {
		return lineClass{Type: model.ElementSection, Level: 3, Content: trimmed}, true
	}
	if endsWithSentencePunct(trimmed) {
		return lineClass{}, false
	}
	if titleCaseRatio(trimmed) > cfg.TitleCaseRatio {
		return lineClass{Type: model.ElementSection, Level: 3, Content: trimmed}, true
	}
	return lineClass{}, false
}

// headingLike reports whether text after a numbering marker reads like a
// heading rather than a list item or sentence.
func headingLike(rest string, cfg Config) bool {
	rest = strings.TrimSpace(rest)
	if rest == "" || len(rest) >= cfg.MaxHeadingLen {
		return false
	}
	if len(strings.Fields(rest)) > cfg.MaxHeadingWords {
		return false
	}
	if endsWithSentencePunct(rest) {
		return false
	}
	first, _ := firstRune(rest)
	return unicode.IsUpper(first) || unicode.IsDigit(first)
}

func endsWithSentencePunct(s string) bool {
	switch s[len(s)-1] {
	case '.', '!', '?', ';', ',':
		return true
	}
	return false
}

// isAllCaps reports whether at least 90% of the letters are uppercase,
// requiring a minimum of three letters.
func isAllCaps(s string) bool {
	upper, lower := 0, 0
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper++
		case unicode.IsLower(r):
			lower++
		}
	}
	if upper+lower < 3 {
		return false
	}
	return lower == 0 || float64(upper)/float64(upper+lower) > 0.9
}

// titleCaseRatio returns the fraction of words starting with an uppercase
// letter or digit.
func titleCaseRatio(s string) float64 {
	words := strings.Fields(s)
	if len(words) == 0 {
		return 0
	}
	capped := 0
	for _, w := range words {
		r, _ := firstRune(w)
		if unicode.IsUpper(r) || unicode.IsDigit(r) {
			capped++
		}
	}
	return float64(capped) / float64(len(words))
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}
