package styles

import (
	"math"
	"strings"

	"github.com/tsawler/typeset/model"
)

// pointsPerSpacingUnit converts extracted spacing in points to blank-line
// units: 12pt of paragraph spacing is roughly one blank line.
const pointsPerSpacingUnit = 12.0

// Learn derives a style template from a reference document's extracted
// style attributes. Every attribute resolves through a preference chain:
// the simplified extraction first, then raw document defaults, then
// computed averages of observed samples, then fixed fallbacks. A nil or
// failed extraction therefore still yields a functional template.
func Learn(styleID string, ext *model.StyleExtraction) *model.StyleTemplate {
	if ext == nil {
		ext = &model.StyleExtraction{}
	}

	general := learnGeneral(ext)
	rules := learnHeadingRules(ext, general)

	// Non-heading body types inherit the general typography; only their
	// spacing and indentation are styled.
	rules[model.ElementParagraph] = model.FormattingRule{SpacingAfter: general.ParagraphSpacing}
	rules[model.ElementBulletList] = model.FormattingRule{SpacingBefore: 1, SpacingAfter: 1, Indent: 2}
	rules[model.ElementNumberedList] = model.FormattingRule{SpacingBefore: 1, SpacingAfter: 1, Indent: 2}
	rules[model.ElementTable] = model.FormattingRule{SpacingBefore: 1, SpacingAfter: 1}

	// Element types a reference document rarely exhibits fall back to the
	// default profile's rules.
	if memo, ok := buildPredefined(DefaultStyleID); ok {
		for _, et := range []model.ElementType{
			model.ElementTableOfContents, model.ElementFootnote,
			model.ElementCitation, model.ElementCodeBlock,
			model.ElementImageCaption, model.ElementHeader, model.ElementFooter,
		} {
			if r, exists := memo.Rules[et]; exists {
				rules[et] = r
			}
		}
	}

	return &model.StyleTemplate{StyleID: styleID, Rules: rules, General: general}
}

func learnGeneral(ext *model.StyleExtraction) model.GeneralRules {
	g := model.GeneralRules{
		Font:         firstNonEmpty(ext.Simplified.Font, ext.Raw.DefaultFont, firstOf(ext.Raw.Fonts), "Calibri"),
		Color:        firstNonEmpty(ext.Simplified.TextColor, firstOf(ext.Raw.Colors), "#000000"),
		BulletSymbol: NormalizeBullet(extractedBullet(ext)),
		NumberFormat: extractedNumberFormat(ext),
		Alignment:    model.AlignLeft,
		Justify:      ext.Simplified.AlignJustify,
	}
	if g.Justify {
		g.Alignment = model.AlignJustify
	}

	g.FontSize = firstPositive(ext.Simplified.FontSize, firstPositiveOf(ext.Raw.FontSizes), 11)

	spacingPts := firstPositive(
		ext.Simplified.ParagraphSpacing,
		ext.Raw.DocDefaults.SpacingPts,
		average(ext.Raw.SpacingSamples),
		pointsPerSpacingUnit,
	)
	g.ParagraphSpacing = spacingUnits(spacingPts)

	g.LineHeight = firstPositive(
		ext.Simplified.LineHeight,
		ext.Raw.DocDefaults.LineHeight,
		average(ext.Raw.LineHeightSamples),
		1.15,
	)

	g.IndentSize = 0
	return g
}

// headingKeywords maps style-name keywords to the element type and the
// normalized heading level used for typography lookup.
var headingKeywords = []struct {
	keywords []string
	et       model.ElementType
	level    string
}{
	{[]string{"title"}, model.ElementTitle, "h1"},
	{[]string{"heading 1", "heading1", "h1"}, model.ElementChapter, "h1"},
	{[]string{"heading 2", "heading2", "h2"}, model.ElementSection, "h2"},
	{[]string{"heading 3", "heading3", "h3"}, model.ElementSubsection, "h3"},
}

func learnHeadingRules(ext *model.StyleExtraction, general model.GeneralRules) map[model.ElementType]model.FormattingRule {
	rules := make(map[model.ElementType]model.FormattingRule)

	prefixes := map[model.ElementType]string{
		model.ElementTitle:      "# ",
		model.ElementChapter:    "## ",
		model.ElementSection:    "### ",
		model.ElementSubsection: "#### ",
	}

	for _, hk := range headingKeywords {
		rule := model.FormattingRule{
			Prefix: prefixes[hk.et],
			Bold:   true, // headings default to bold absent evidence
		}

		if ps := matchParagraphStyle(ext.Raw.ParagraphStyles, hk.keywords); ps != nil {
			rule.SpacingBefore = spacingUnits(ps.SpacingBeforePts)
			rule.SpacingAfter = spacingUnits(ps.SpacingAfterPts)
			rule.Center = ps.AlignCenter
			rule.Bold = ps.Bold
			rule.Typography = &model.Typography{
				Font:  firstNonEmpty(ps.Font, general.Font),
				Size:  firstPositive(ps.SizePts, general.FontSize),
				Color: firstNonEmpty(ps.Color, ext.Simplified.HeadingColor, general.Color),
				Bold:  ps.Bold,
			}
		}

		// The simplified heading typography wins over raw style values.
		if t, ok := ext.HeadingTypography(hk.level); ok {
			merged := t
			if merged.Font == "" {
				merged.Font = firstNonEmpty(typFont(rule.Typography), general.Font)
			}
			if merged.Size == 0 {
				merged.Size = firstPositive(typSize(rule.Typography), general.FontSize)
			}
			if merged.Color == "" {
				merged.Color = firstNonEmpty(typColor(rule.Typography), ext.Simplified.HeadingColor, general.Color)
			}
			rule.Typography = &merged
			if merged.Bold {
				rule.Bold = true
			}
		}

		if hk.et == model.ElementTitle && rule.Typography == nil {
			// No title evidence at all: keep a centered bold title.
			rule.Center = true
		}

		rules[hk.et] = rule
	}

	return rules
}

// matchParagraphStyle finds the first raw paragraph style whose name or id
// contains one of the keywords (case-insensitive).
func matchParagraphStyle(styles []model.RawParagraphStyle, keywords []string) *model.RawParagraphStyle {
	for i := range styles {
		name := strings.ToLower(styles[i].Name)
		id := strings.ToLower(styles[i].StyleID)
		for _, kw := range keywords {
			if strings.Contains(name, kw) || strings.Contains(id, strings.ReplaceAll(kw, " ", "")) {
				return &styles[i]
			}
		}
	}
	return nil
}

// extractedBullet picks the reference's bullet glyph: the simplified value
// first, else the level text of the first bullet numbering level.
func extractedBullet(ext *model.StyleExtraction) string {
	if ext.Simplified.BulletSymbol != "" {
		return ext.Simplified.BulletSymbol
	}
	for _, lvl := range ext.Raw.NumberingLevels {
		if strings.EqualFold(lvl.Format, "bullet") {
			return lvl.LevelText
		}
	}
	return ""
}

// extractedNumberFormat canonicalizes the first non-bullet numbering level.
func extractedNumberFormat(ext *model.StyleExtraction) string {
	for _, lvl := range ext.Raw.NumberingLevels {
		if strings.EqualFold(lvl.Format, "bullet") {
			continue
		}
		if lvl.Format != "" || lvl.LevelText != "" {
			return CanonicalNumberToken(lvl.Format, lvl.LevelText)
		}
	}
	return "1."
}

// spacingUnits converts points to blank-line units, rounded, floored at 0.
func spacingUnits(pts float64) int {
	if pts <= 0 {
		return 0
	}
	return int(math.Round(pts / pointsPerSpacingUnit))
}

func average(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		sum += s
	}
	return sum / float64(len(samples))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstPositive(values ...float64) float64 {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}

func firstOf(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func firstPositiveOf(values []float64) float64 {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}

func typFont(t *model.Typography) string {
	if t == nil {
		return ""
	}
	return t.Font
}

func typSize(t *model.Typography) float64 {
	if t == nil {
		return 0
	}
	return t.Size
}

func typColor(t *model.Typography) string {
	if t == nil {
		return ""
	}
	return t.Color
}
