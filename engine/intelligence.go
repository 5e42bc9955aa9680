package engine

import (
	"regexp"
	"strings"

	"github.com/tsawler/typeset/model"
)

// Intelligence is a per-style content enrichment strategy. Enrich receives
// an element's raw content (or a single list item) and returns it with
// inline markers added; it must never drop content. Strategies are selected
// by style id, with a pass-through default for styles that define none.
type Intelligence interface {
	Name() string
	Enrich(content string, el *model.DocumentElement, general model.GeneralRules) string
}

var intelligences = map[string]Intelligence{
	"sales-proposal":  salesProposal{accent: "#0F3460"},
	"marketing-brief": marketingBrief{minLabelItems: 2},
	"business-memo":   businessMemo{},
}

func intelligenceFor(styleID string) Intelligence {
	if s, ok := intelligences[styleID]; ok {
		return s
	}
	return passThrough{}
}

type passThrough struct{}

func (passThrough) Name() string { return "generic" }

func (passThrough) Enrich(content string, _ *model.DocumentElement, _ model.GeneralRules) string {
	return content
}

var (
	currencyRe   = regexp.MustCompile(`\$[\d,]+(?:\.\d+)?(?:\s?(?:million|billion|thousand|[MBK]))?`)
	percentRe    = regexp.MustCompile(`\b\d+(?:\.\d+)?%`)
	multiplierRe = regexp.MustCompile(`\b\d+(?:\.\d+)?x\b`)
	acronymRe    = regexp.MustCompile(`\b(?:ROI|KPI|SLA|ARR|MRR|CAGR|TCO|NPV|EBITDA|YoY|QoQ)\b`)
	quarterRe    = regexp.MustCompile(`\bQ[1-4](?:\s+\d{4})?\b`)
	dateRe       = regexp.MustCompile(`\b(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2}(?:,\s*\d{4})?\b`)
)

// salesProposal highlights financial figures and business terms: currency
// and percentage values get the accent color, multipliers, acronyms, dates
// and quarter references get plain bold.
type salesProposal struct {
	accent string
}

func (salesProposal) Name() string { return "sales-proposal" }

func (s salesProposal) Enrich(content string, _ *model.DocumentElement, _ model.GeneralRules) string {
	content = wrapMatches(content, currencyRe, s.accent)
	content = wrapMatches(content, percentRe, s.accent)
	content = wrapMatches(content, multiplierRe, "")
	content = wrapMatches(content, acronymRe, "")
	content = wrapMatches(content, quarterRe, "")
	content = wrapMatches(content, dateRe, "")
	return content
}

var marketingKeywordRe = regexp.MustCompile(`(?i)\b(brand|campaign|launch|audience|engagement|conversion|awareness|positioning|reach)\b`)

// marketingBrief restructures label-led paragraphs into bullet runs, bolds
// marketing vocabulary and italicizes parenthetical asides of three or more
// words.
type marketingBrief struct {
	minLabelItems int
}

func (marketingBrief) Name() string { return "marketing-brief" }

func (m marketingBrief) Enrich(content string, el *model.DocumentElement, general model.GeneralRules) string {
	if el.Type == model.ElementParagraph {
		if out, ok := labelToBullets(content, general.BulletSymbol, m.minLabelItems); ok {
			return out
		}
	}
	content = wrapMatches(content, marketingKeywordRe, "")
	return italicizeParentheticals(content, 3)
}

var memoFieldRe = regexp.MustCompile(`^(To|From|Date|Re|Subject|Cc):`)

// businessMemo bolds the memo header fields and date references.
type businessMemo struct{}

func (businessMemo) Name() string { return "business-memo" }

func (businessMemo) Enrich(content string, _ *model.DocumentElement, _ model.GeneralRules) string {
	if m := memoFieldRe.FindString(content); m != "" {
		content = "**" + m + "**" + content[len(m):]
	}
	return wrapMatches(content, dateRe, "")
}

// wrapMatches bolds every match of re in s, optionally inside a color tag.
// Matches already flanked by bold markers are left alone, so repeated
// enrichment passes never double-wrap.
func wrapMatches(s string, re *regexp.Regexp, color string) string {
	locs := re.FindAllStringIndex(s, -1)
	if len(locs) == 0 {
		return s
	}
	var b strings.Builder
	last := 0
	for _, loc := range locs {
		start, end := loc[0], loc[1]
		if start < last {
			continue
		}
		b.WriteString(s[last:start])
		m := s[start:end]
		if strings.HasSuffix(s[:start], "**") && strings.HasPrefix(s[end:], "**") {
			b.WriteString(m)
		} else {
			if color != "" {
				b.WriteString("[color=" + color + "]")
			}
			b.WriteString("**" + m + "**")
			if color != "" {
				b.WriteString("[/color]")
			}
		}
		last = end
	}
	b.WriteString(s[last:])
	return b.String()
}

var labelRe = regexp.MustCompile(`^([A-Z][^:\n]{0,60}):\s+(.+)$`)

// labelToBullets rewrites "Label: item, item, item" into a bold label line
// followed by one bullet line per item. It only fires when at least
// minItems items parse out; anything else is returned unchanged.
func labelToBullets(content, bullet string, minItems int) (string, bool) {
	m := labelRe.FindStringSubmatch(content)
	if m == nil {
		return content, false
	}
	items := splitListItems(m[2])
	if len(items) < minItems {
		return content, false
	}
	if bullet == "" {
		bullet = "•"
	}
	var b strings.Builder
	b.WriteString("**" + m[1] + ":**")
	for _, item := range items {
		b.WriteString("\n" + bullet + " " + item)
	}
	return b.String(), true
}

// splitListItems splits an enumeration on semicolons when present, else on
// commas, dropping empties.
func splitListItems(s string) []string {
	sep := ","
	if strings.Contains(s, ";") {
		sep = ";"
	}
	parts := strings.Split(s, sep)
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	return items
}

var parenRe = regexp.MustCompile(`\(([^()]+)\)`)

// italicizeParentheticals wraps parenthetical asides of at least minWords
// words in italic markers. Asides already carrying markers are skipped.
func italicizeParentheticals(s string, minWords int) string {
	return parenRe.ReplaceAllStringFunc(s, func(m string) string {
		inner := m[1 : len(m)-1]
		if len(strings.Fields(inner)) < minWords || strings.Contains(inner, "*") {
			return m
		}
		return "(*" + inner + "*)"
	})
}
