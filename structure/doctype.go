package structure

import (
	"regexp"
	"strings"

	"github.com/tsawler/typeset/model"
)

var chapterTextRe = regexp.MustCompile(`(?i)\bchapter\s+\d+\b`)

// inferDocumentType classifies the overall document by keyword and phrase
// rules checked in fixed priority order. The first rule that fires wins;
// documents matching nothing are reports.
func inferDocumentType(content string, elements []model.DocumentElement, cfg Config) model.DocumentType {
	lower := strings.ToLower(content)

	if strings.Contains(lower, "memorandum") ||
		(strings.Contains(lower, "to:") && strings.Contains(lower, "from:") &&
			(strings.Contains(lower, "re:") || strings.Contains(lower, "subject:"))) {
		return model.DocTypeMemo
	}

	for i := range elements {
		if elements[i].Type == model.ElementChapter {
			return model.DocTypeBook
		}
	}
	if chapterTextRe.MatchString(lower) {
		return model.DocTypeBook
	}

	if strings.Contains(lower, "abstract") && strings.Contains(lower, "references") {
		return model.DocTypePaper
	}

	if strings.Contains(lower, "proposal") && strings.Contains(lower, "budget") {
		return model.DocTypeProposal
	}

	for _, kw := range []string{"installation", "troubleshooting", "user guide", "manual"} {
		if strings.Contains(lower, kw) {
			return model.DocTypeManual
		}
	}

	if len(elements) < cfg.ArticleMaxElements && strings.Contains(lower, "conclusion") {
		return model.DocTypeArticle
	}

	return model.DocTypeReport
}

// extractTitle picks the document title: the first title element, else the
// first chapter or section heading, else the first short paragraph near the
// top of the document.
func extractTitle(elements []model.DocumentElement, cfg Config) string {
	for i := range elements {
		if elements[i].Type == model.ElementTitle {
			return elements[i].Content
		}
	}
	for i := range elements {
		switch elements[i].Type {
		case model.ElementChapter, model.ElementSection:
			return elements[i].Content
		}
	}
	for i := range elements {
		el := &elements[i]
		if el.Type != model.ElementParagraph {
			continue
		}
		if el.Position.Start >= cfg.TitleSearchWindow {
			break
		}
		if len(el.Content) < cfg.TitleMaxLen {
			return el.Content
		}
	}
	return ""
}
