package structure

import (
	"testing"

	"github.com/tsawler/typeset/model"
)

var isolated = lineContext{PrevBlank: true, NextBlank: true}

func TestClassifyMarkerHeadings(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		line    string
		want    model.ElementType
		level   int
		content string
	}{
		{"# Title", model.ElementTitle, 1, "Title"},
		{"## Getting Started", model.ElementChapter, 2, "Getting Started"},
		{"### Details", model.ElementSection, 3, "Details"},
		{"#### Fine Print", model.ElementSubsection, 4, "Fine Print"},
		{"###### Very Deep", model.ElementSubsection, 4, "Very Deep"},
	}
	for _, tt := range tests {
		lc, ok := classifyLine(tt.line, isolated, cfg)
		if !ok {
			t.Fatalf("classifyLine(%q) did not match", tt.line)
		}
		if lc.Type != tt.want || lc.Level != tt.level || lc.Content != tt.content {
			t.Errorf("classifyLine(%q) = %+v, want type=%v level=%d content=%q",
				tt.line, lc, tt.want, tt.level, tt.content)
		}
	}
}

func TestClassifyChapterKeywords(t *testing.T) {
	cfg := DefaultConfig()
	for _, line := range []string{"Chapter 1", "CHAPTER 12: The Sea", "Chapitre IV", "Capítulo 3"} {
		lc, ok := classifyLine(line, lineContext{}, cfg)
		if !ok || lc.Type != model.ElementChapter {
			t.Errorf("classifyLine(%q) = %+v, ok=%v; want chapter", line, lc, ok)
		}
	}

	lc, ok := classifyLine("Section 2 Scope", lineContext{}, cfg)
	if !ok || lc.Type != model.ElementSection {
		t.Errorf("Section keyword: got %+v, ok=%v", lc, ok)
	}
}

func TestClassifyNumberedHeadingVsList(t *testing.T) {
	cfg := DefaultConfig()

	lc, ok := classifyLine("1. Introduction", lineContext{}, cfg)
	if !ok || lc.Type != model.ElementSection || lc.Content != "Introduction" {
		t.Errorf("numbered heading: got %+v, ok=%v", lc, ok)
	}

	lc, ok = classifyLine("1.2 Methods", lineContext{}, cfg)
	if !ok || lc.Type != model.ElementSubsection || lc.Content != "Methods" {
		t.Errorf("dotted heading: got %+v, ok=%v", lc, ok)
	}

	// A sentence after the marker reads like a list item, not a heading.
	lc, ok = classifyLine("1. Buy milk and eggs from the store today.", lineContext{}, cfg)
	if !ok || lc.Type != model.ElementNumberedList {
		t.Errorf("numbered item: got %+v, ok=%v", lc, ok)
	}
}

func TestClassifyRomanChapter(t *testing.T) {
	cfg := DefaultConfig()
	lc, ok := classifyLine("IV. The Storm", lineContext{}, cfg)
	if !ok || lc.Type != model.ElementChapter || lc.Content != "The Storm" {
		t.Errorf("roman chapter: got %+v, ok=%v", lc, ok)
	}
}

func TestClassifyBullets(t *testing.T) {
	cfg := DefaultConfig()
	for _, line := range []string{"• first point", "- dashed item", "* starred item", " symbol-font bullet"} {
		lc, ok := classifyLine(line, lineContext{}, cfg)
		if !ok || lc.Type != model.ElementBulletList {
			t.Errorf("classifyLine(%q) = %+v, ok=%v; want bulletList", line, lc, ok)
		}
	}

	// A dash without a following space is not a bullet.
	if lc, ok := classifyLine("-nope", lineContext{}, cfg); ok && lc.Type == model.ElementBulletList {
		t.Errorf("-nope misclassified as bullet: %+v", lc)
	}
}

func TestClassifyLetteredItems(t *testing.T) {
	cfg := DefaultConfig()
	for _, line := range []string{"a) option one, with detail.", "B. second choice here."} {
		lc, ok := classifyLine(line, lineContext{}, cfg)
		if !ok || lc.Type != model.ElementNumberedList {
			t.Errorf("classifyLine(%q) = %+v, ok=%v; want numberedList", line, lc, ok)
		}
	}
}

func TestClassifyTOC(t *testing.T) {
	cfg := DefaultConfig()
	lc, ok := classifyLine("Table of Contents", lineContext{}, cfg)
	if !ok || lc.Type != model.ElementTableOfContents {
		t.Errorf("TOC: got %+v, ok=%v", lc, ok)
	}
}

func TestClassifyFootnote(t *testing.T) {
	cfg := DefaultConfig()

	lc, ok := classifyLine("[1] See the appendix for details", lineContext{Tail: true}, cfg)
	if !ok || lc.Type != model.ElementFootnote {
		t.Errorf("footnote in tail: got %+v, ok=%v", lc, ok)
	}

	// Outside the tail region the same line is not a footnote.
	if lc, ok := classifyLine("[1] See the appendix for details", lineContext{}, cfg); ok {
		t.Errorf("footnote outside tail matched: %+v", lc)
	}
}

func TestClassifyImplicitHeading(t *testing.T) {
	cfg := DefaultConfig()

	lc, ok := classifyLine("EXECUTIVE SUMMARY", isolated, cfg)
	if !ok || lc.Type != model.ElementSection {
		t.Errorf("all-caps heading: got %+v, ok=%v", lc, ok)
	}

	lc, ok = classifyLine("Market Analysis And Outlook", isolated, cfg)
	if !ok || lc.Type != model.ElementSection {
		t.Errorf("title-case heading: got %+v, ok=%v", lc, ok)
	}

	// Not isolated by blank lines: stays prose.
	if lc, ok := classifyLine("EXECUTIVE SUMMARY", lineContext{PrevBlank: true}, cfg); ok {
		t.Errorf("non-isolated line matched: %+v", lc)
	}

	// Ordinary sentences stay prose even when isolated.
	if lc, ok := classifyLine("This is a normal short sentence.", isolated, cfg); ok {
		t.Errorf("sentence misclassified: %+v", lc)
	}
}

func TestIsAllCaps(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"MEMORANDUM", true},
		{"EXECUTIVE SUMMARY 2024", true},
		{"Mixed Case Words", false},
		{"AB", false}, // too few letters
		{"123 456", false},
	}
	for _, tt := range tests {
		if got := isAllCaps(tt.in); got != tt.want {
			t.Errorf("isAllCaps(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTitleCaseRatio(t *testing.T) {
	if r := titleCaseRatio("Market Analysis Report"); r != 1.0 {
		t.Errorf("ratio = %v, want 1.0", r)
	}
	if r := titleCaseRatio("a plain lowercase sentence"); r != 0 {
		t.Errorf("ratio = %v, want 0", r)
	}
}
