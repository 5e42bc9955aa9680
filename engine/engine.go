package engine

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tsawler/typeset/model"
	"github.com/tsawler/typeset/richtext"
	"github.com/tsawler/typeset/structure"
	"github.com/tsawler/typeset/styles"
	"github.com/tsawler/typeset/tables"
	"github.com/tsawler/typeset/validate"
)

// PageBreakMarker separates pages in the flat text rendering.
const PageBreakMarker = "\f"

// insightSource tags insights refreshed by the formatting pass.
const insightSource = "style-template"

// Engine formats a detected document structure under a style template.
type Engine struct {
	checker *validate.Checker
}

// New creates an engine with the default content-preservation thresholds.
func New() *Engine {
	return NewWithChecker(nil)
}

// NewWithChecker creates an engine using the given checker for the
// per-element preservation gate. A nil checker gets the defaults.
func NewWithChecker(c *validate.Checker) *Engine {
	if c == nil {
		c = validate.NewChecker()
	}
	return &Engine{checker: c}
}

// Format applies the template to every element in document order and
// returns the formatted document: renderer-neutral blocks, document-wide
// directives, the semantic summary and an informational flat text
// rendering.
func (e *Engine) Format(doc *model.DocumentStructure, tpl *model.StyleTemplate) *model.FormattedDocument {
	if tpl == nil {
		tpl = styles.Fallback(styles.DefaultStyleID)
	}

	fd := &model.FormattedDocument{
		StyleID:    tpl.StyleID,
		Directives: tpl.Directives(),
		Summary: model.Summary{
			DetectorVersion: structure.Version,
			TemplateVersion: styles.TemplateVersion,
		},
	}
	if doc == nil || len(doc.Elements) == 0 {
		return fd
	}

	intel := intelligenceFor(tpl.StyleID)
	upper := cases.Upper(language.Und)
	var counters headingCounters
	var flat strings.Builder
	pendingBlank := 0

	for i := range doc.Elements {
		el := &doc.Elements[i]
		block, line := e.formatElement(el, tpl, intel, &counters, upper)

		if len(fd.Blocks) > 0 {
			gap := block.SpacingBefore
			if pendingBlank > gap {
				gap = pendingBlank
			}
			flat.WriteString(strings.Repeat("\n", gap+1))
		}
		if block.PageBreakBefore {
			flat.WriteString(PageBreakMarker + "\n")
		}
		flat.WriteString(line)
		pendingBlank = block.SpacingAfter

		fd.Blocks = append(fd.Blocks, block)
	}

	fd.Text = flat.String()
	fd.Summary.Counts = model.CountBlocks(fd.Blocks)
	return fd
}

// formatElement produces the block for one element plus its flat text line.
// Prefix/suffix markers, heading numbering, list markers and paragraph
// indentation appear only in the flat line; the block carries them as
// structured fields instead.
func (e *Engine) formatElement(el *model.DocumentElement, tpl *model.StyleTemplate, intel Intelligence, counters *headingCounters, upper cases.Caser) (model.FormattedBlock, string) {
	rule, hasRule := tpl.RuleFor(el.Type)
	general := tpl.General

	content := el.Content
	var items []string

	switch {
	case el.Type == model.ElementTable:
		if el.Table != nil && !tables.IsMarkdownTable(content) {
			content = tables.RenderMarkdown(&tables.Table{Headers: el.Table.Headers, Rows: el.Table.Rows})
		}
	case el.Type == model.ElementCodeBlock:
		if !strings.HasPrefix(strings.TrimSpace(content), "```") {
			content = "```\n" + content + "\n```"
		}
	case el.Type.IsList():
		items = el.List.ItemsOrSplit(content)
		enriched := make([]string, len(items))
		for i, item := range items {
			enriched[i] = intel.Enrich(strings.TrimSpace(item), el, general)
		}
		items = enriched
	case el.Type == model.ElementParagraph:
		// Headings skip enrichment so the uppercase transform below
		// never runs over inline marker syntax.
		content = intel.Enrich(content, el, general)
	}

	if el.Type.IsHeading() {
		counters.advance(el.Type)
	}
	numbering := counters.substitute(rule.Numbering, el.Type)

	if rule.Uppercase && !el.Type.IsList() {
		content = upper.String(content)
	}
	if !el.Type.IsList() && el.Type != model.ElementTable && el.Type != model.ElementCodeBlock {
		content = applyWrappers(content, rule)
	}

	// Content loss is never acceptable: if the transforms above dropped
	// words, discard them and keep the element's original content.
	plain := content
	if el.Type.IsList() {
		plain = strings.Join(items, "\n")
	}
	if p := e.checker.CheckPreservation(el.Content, plain); !p.Acceptable {
		content = el.Content
		items = nil
		if el.Type.IsList() {
			items = el.List.ItemsOrSplit(el.Content)
		}
	}

	block := e.buildBlock(el, rule, hasRule, general, content, items, numbering)
	return block, flatLine(&block, rule, general, content, items)
}

func (e *Engine) buildBlock(el *model.DocumentElement, rule model.FormattingRule, hasRule bool, general model.GeneralRules, content string, items []string, numbering string) model.FormattedBlock {
	alignment := general.Alignment
	if rule.Center {
		alignment = model.AlignCenter
	}
	lineHeight := general.LineHeight
	if rule.LineHeight > 0 {
		lineHeight = rule.LineHeight
	}
	indent := rule.Indent
	if indent == 0 && el.Type == model.ElementParagraph {
		indent = general.IndentSize
	}
	spacingAfter := rule.SpacingAfter
	if !hasRule && el.Type == model.ElementParagraph {
		spacingAfter = general.ParagraphSpacing
	}
	typography := resolveTypography(rule, general)

	block := model.FormattedBlock{
		ID:              model.NewBlockID(),
		ElementID:       el.ID,
		Type:            el.Type,
		Numbering:       numbering,
		SpacingBefore:   rule.SpacingBefore,
		SpacingAfter:    spacingAfter,
		Alignment:       alignment,
		LineHeight:      lineHeight,
		Indent:          indent,
		BulletSymbol:    general.BulletSymbol,
		NumberFormat:    general.NumberFormat,
		PageBreakBefore: rule.PageBreakBefore,
		Typography:      typography,
		RawContent:      el.Content,
	}

	switch {
	case el.Type.IsList():
		block.ListItems = make([][]model.TextRun, len(items))
		for i, item := range items {
			block.ListItems[i] = richtext.Parse(item)
		}
	case el.Type == model.ElementTable || el.Type == model.ElementCodeBlock:
		block.Runs = []model.TextRun{{Text: content}}
	default:
		block.Runs = richtext.Parse(content)
	}
	if el.Type == model.ElementTable {
		block.TableData = el.Table
	}

	confidence := 0.5
	var signals model.ContentSignals
	if el.Insight != nil {
		confidence = el.Insight.Confidence
		signals = el.Insight.Signals
	}
	block.Insight = &model.SemanticInsight{
		Role:       el.Type.Role(),
		Confidence: confidence,
		Source:     insightSource,
		Typography: &typography,
		Layout: &model.LayoutSnapshot{
			Alignment:     alignment,
			SpacingBefore: block.SpacingBefore,
			SpacingAfter:  block.SpacingAfter,
			Indent:        indent,
		},
		Signals: signals,
	}

	return block
}

// flatLine renders one block's flat text: markers, numbering, list glyphs
// and indentation that the structured block expresses as fields.
func flatLine(block *model.FormattedBlock, rule model.FormattingRule, general model.GeneralRules, content string, items []string) string {
	if block.Type.IsList() {
		pad := strings.Repeat(" ", block.Indent)
		lines := make([]string, len(items))
		for i, item := range items {
			marker := block.BulletSymbol
			if block.Type == model.ElementNumberedList {
				marker = listMarker(block.NumberFormat, i+1)
			}
			lines[i] = pad + marker + " " + item
		}
		return strings.Join(lines, "\n")
	}

	line := content
	if block.Numbering != "" {
		line = block.Numbering + " " + line
	}
	if block.Indent > 0 && block.Type == model.ElementParagraph {
		line = strings.Repeat(" ", block.Indent) + line
	}
	return rule.Prefix + line + rule.Suffix
}

func applyWrappers(s string, rule model.FormattingRule) string {
	if s == "" {
		return s
	}
	if rule.Bold && !(strings.HasPrefix(s, "**") && strings.HasSuffix(s, "**")) {
		s = "**" + s + "**"
	}
	if rule.Italic && !(strings.HasPrefix(s, "*") && strings.HasSuffix(s, "*")) {
		s = "*" + s + "*"
	}
	return s
}

// resolveTypography merges an element rule's typography override over the
// general defaults.
func resolveTypography(rule model.FormattingRule, general model.GeneralRules) model.Typography {
	t := model.Typography{
		Font:  general.Font,
		Size:  general.FontSize,
		Color: general.Color,
		Bold:  rule.Bold,
	}
	if o := rule.Typography; o != nil {
		if o.Font != "" {
			t.Font = o.Font
		}
		if o.Size > 0 {
			t.Size = o.Size
		}
		if o.Color != "" {
			t.Color = o.Color
		}
		if o.Bold {
			t.Bold = true
		}
	}
	return t
}
