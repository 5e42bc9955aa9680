package engine

import (
	"strings"
	"testing"

	"github.com/tsawler/typeset/model"
	"github.com/tsawler/typeset/structure"
	"github.com/tsawler/typeset/styles"
	"github.com/tsawler/typeset/validate"
)

func resolve(t *testing.T, styleID string) *model.StyleTemplate {
	t.Helper()
	return styles.NewResolver(styles.NewMemoryCache()).Resolve(styleID)
}

func element(et model.ElementType, content string) model.DocumentElement {
	el := model.DocumentElement{
		ID:      model.NewElementID(),
		Type:    et,
		Content: content,
	}
	if et.IsList() {
		el.List = &model.ListExtra{Items: strings.Split(content, "\n")}
	}
	return el
}

func docOf(elements ...model.DocumentElement) *model.DocumentStructure {
	return &model.DocumentStructure{Elements: elements}
}

func TestFormatEmptyStructure(t *testing.T) {
	fd := New().Format(docOf(), resolve(t, "business-memo"))
	if fd.Text != "" || len(fd.Blocks) != 0 {
		t.Errorf("got %q / %d blocks", fd.Text, len(fd.Blocks))
	}
	if fd.Summary.DetectorVersion != structure.Version || fd.Summary.TemplateVersion != styles.TemplateVersion {
		t.Errorf("summary versions = %+v", fd.Summary)
	}
	if fd.StyleID != "business-memo" {
		t.Errorf("StyleID = %q", fd.StyleID)
	}
}

func TestFormatNilTemplateUsesFallback(t *testing.T) {
	fd := New().Format(docOf(element(model.ElementParagraph, "hello world")), nil)
	if fd.Directives.Font != "Calibri" {
		t.Errorf("Directives.Font = %q", fd.Directives.Font)
	}
	if len(fd.Blocks) != 1 {
		t.Fatalf("blocks = %d", len(fd.Blocks))
	}
}

func TestMemoTitleRendering(t *testing.T) {
	doc := structure.NewDetector().Detect("MEMORANDUM\n\nTo: All staff regarding the renovation.")
	fd := New().Format(doc, resolve(t, "business-memo"))

	if len(fd.Blocks) < 2 {
		t.Fatalf("blocks = %d", len(fd.Blocks))
	}
	title := fd.Blocks[0]
	if title.Type != model.ElementTitle {
		t.Fatalf("first block type = %v", title.Type)
	}
	if title.Alignment != model.AlignCenter {
		t.Error("title should center")
	}
	if !title.Typography.Bold {
		t.Error("title typography should be bold")
	}
	if got := title.PlainText(); got != "MEMORANDUM" {
		t.Errorf("PlainText = %q", got)
	}
	if !title.Runs[0].Bold {
		t.Error("title run should be bold")
	}
	if !strings.HasPrefix(fd.Text, "# **MEMORANDUM**") {
		t.Errorf("flat text = %q", fd.Text)
	}
}

func TestUppercaseTransform(t *testing.T) {
	doc := docOf(element(model.ElementChapter, "Executive Summary"))
	fd := New().Format(doc, resolve(t, "sales-proposal"))
	b := fd.Blocks[0]
	if got := b.PlainText(); got != "EXECUTIVE SUMMARY" {
		t.Errorf("PlainText = %q", got)
	}
	if !b.PageBreakBefore {
		t.Error("sales-proposal chapters request page breaks")
	}
	if !strings.Contains(fd.Text, PageBreakMarker) {
		t.Error("flat text missing page break marker")
	}
	if b.RawContent != "Executive Summary" {
		t.Errorf("RawContent = %q", b.RawContent)
	}
}

func TestHeadingNumbering(t *testing.T) {
	doc := docOf(
		element(model.ElementChapter, "Install"),
		element(model.ElementSection, "Requirements"),
		element(model.ElementSection, "Steps"),
		element(model.ElementSubsection, "Linux"),
		element(model.ElementChapter, "Configure"),
		element(model.ElementSection, "Overview"),
	)
	fd := New().Format(doc, resolve(t, "technical-manual"))

	want := []string{"1.", "1.1", "1.2", "1.2.1", "2.", "2.1"}
	for i, w := range want {
		if got := fd.Blocks[i].Numbering; got != w {
			t.Errorf("block %d numbering = %q, want %q", i, got, w)
		}
	}
	if !strings.Contains(fd.Text, "## 1. **Install**") {
		t.Errorf("flat text = %q", fd.Text)
	}
	if !strings.Contains(fd.Text, "### 2.1 **Overview**") {
		t.Errorf("flat text = %q", fd.Text)
	}
}

func TestChapterWordNumbering(t *testing.T) {
	doc := docOf(
		element(model.ElementChapter, "The Beginning"),
		element(model.ElementChapter, "The Middle"),
	)
	fd := New().Format(doc, resolve(t, "book-manuscript"))
	if fd.Blocks[0].Numbering != "Chapter 1" || fd.Blocks[1].Numbering != "Chapter 2" {
		t.Errorf("numbering = %q / %q", fd.Blocks[0].Numbering, fd.Blocks[1].Numbering)
	}
}

func TestBulletListRendering(t *testing.T) {
	doc := docOf(element(model.ElementBulletList, "first point\nsecond point"))
	fd := New().Format(doc, resolve(t, "sales-proposal"))
	b := fd.Blocks[0]
	if b.BulletSymbol != "▸" {
		t.Errorf("BulletSymbol = %q", b.BulletSymbol)
	}
	if len(b.ListItems) != 2 {
		t.Fatalf("ListItems = %d", len(b.ListItems))
	}
	if !strings.Contains(fd.Text, "▸ first point") {
		t.Errorf("flat text = %q", fd.Text)
	}
}

func TestNumberedListMarkers(t *testing.T) {
	doc := docOf(element(model.ElementNumberedList, "alpha\nbeta\ngamma"))
	fd := New().Format(doc, resolve(t, "marketing-brief"))
	for i, want := range []string{"1) alpha", "2) beta", "3) gamma"} {
		if !strings.Contains(fd.Text, want) {
			t.Errorf("flat text missing item %d %q: %q", i, want, fd.Text)
		}
	}
}

func TestSalesProposalEnrichment(t *testing.T) {
	doc := docOf(element(model.ElementParagraph,
		"Revenue reached $2.5 million in Q3 2025, a 14% gain and 3x the prior ROI."))
	fd := New().Format(doc, resolve(t, "sales-proposal"))
	b := fd.Blocks[0]

	var sawCurrency, sawPercent, sawAcronym bool
	for _, r := range b.Runs {
		if r.Text == "$2.5 million" && r.Bold && r.Color == "#0F3460" {
			sawCurrency = true
		}
		if r.Text == "14%" && r.Bold && r.Color == "#0F3460" {
			sawPercent = true
		}
		if r.Text == "ROI" && r.Bold {
			sawAcronym = true
		}
	}
	if !sawCurrency || !sawPercent || !sawAcronym {
		t.Errorf("runs = %+v", b.Runs)
	}
	if b.PlainText() != "Revenue reached $2.5 million in Q3 2025, a 14% gain and 3x the prior ROI." {
		t.Errorf("PlainText = %q, content must survive enrichment", b.PlainText())
	}
}

func TestMarketingBriefLabelToBullets(t *testing.T) {
	doc := docOf(element(model.ElementParagraph,
		"Goals: grow brand awareness, boost engagement, expand total reach"))
	fd := New().Format(doc, resolve(t, "marketing-brief"))
	b := fd.Blocks[0]

	if !strings.Contains(fd.Text, "– grow brand awareness") {
		t.Errorf("flat text = %q", fd.Text)
	}
	if len(b.Runs) == 0 || !b.Runs[0].Bold || b.Runs[0].Text != "Goals:" {
		t.Errorf("first run = %+v, want bold label", b.Runs)
	}
}

func TestMarketingBriefParentheticals(t *testing.T) {
	doc := docOf(element(model.ElementParagraph,
		"The campaign runs next month (pending final budget approval) nationwide."))
	fd := New().Format(doc, resolve(t, "marketing-brief"))

	var sawItalic bool
	for _, r := range fd.Blocks[0].Runs {
		if r.Italic && r.Text == "pending final budget approval" {
			sawItalic = true
		}
	}
	if !sawItalic {
		t.Errorf("runs = %+v", fd.Blocks[0].Runs)
	}
}

func TestMemoFieldBolding(t *testing.T) {
	doc := docOf(element(model.ElementParagraph, "From: Facilities, effective June 2, 2025."))
	fd := New().Format(doc, resolve(t, "business-memo"))
	runs := fd.Blocks[0].Runs
	if len(runs) == 0 || !runs[0].Bold || runs[0].Text != "From:" {
		t.Errorf("runs = %+v", runs)
	}
}

func TestTableRerendered(t *testing.T) {
	el := element(model.ElementTable, "Name  Role\nAda   Engineer")
	el.Table = &model.TableExtra{
		Headers: []string{"Name", "Role"},
		Rows:    [][]string{{"Ada", "Engineer"}},
	}
	fd := New().Format(docOf(el), resolve(t, "classic-report"))
	b := fd.Blocks[0]
	if b.TableData == nil || b.TableData.Headers[0] != "Name" {
		t.Fatalf("TableData = %+v", b.TableData)
	}
	if !strings.Contains(fd.Text, "| Name | Role |") {
		t.Errorf("flat text = %q", fd.Text)
	}
}

func TestCodeBlockFenced(t *testing.T) {
	doc := docOf(element(model.ElementCodeBlock, "x := 1"))
	fd := New().Format(doc, resolve(t, "technical-manual"))
	if !strings.HasPrefix(fd.Blocks[0].Runs[0].Text, "```") {
		t.Errorf("code content = %q", fd.Blocks[0].Runs[0].Text)
	}

	already := docOf(element(model.ElementCodeBlock, "```\nx := 1\n```"))
	fd = New().Format(already, resolve(t, "technical-manual"))
	if strings.HasPrefix(fd.Blocks[0].Runs[0].Text, "``````") {
		t.Error("fences doubled")
	}
}

func TestSpacingInFlatText(t *testing.T) {
	doc := docOf(
		element(model.ElementSection, "Findings"),
		element(model.ElementParagraph, "Things were found."),
	)
	fd := New().Format(doc, resolve(t, "business-memo"))
	// section spacing_after 1 blank line between the two blocks
	if !strings.Contains(fd.Text, "Findings**\n\nThings were found.") {
		t.Errorf("flat text = %q", fd.Text)
	}
}

func TestInsightRefreshed(t *testing.T) {
	el := element(model.ElementSection, "Scope")
	el.Insight = &model.SemanticInsight{Role: "section-heading", Confidence: 0.9, Source: "structure-detector"}
	fd := New().Format(docOf(el), resolve(t, "business-memo"))
	in := fd.Blocks[0].Insight
	if in == nil || in.Source != "style-template" {
		t.Fatalf("insight = %+v", in)
	}
	if in.Confidence != 0.9 {
		t.Errorf("Confidence = %v, want carried from element", in.Confidence)
	}
	if in.Typography == nil || in.Layout == nil {
		t.Error("insight missing typography/layout snapshot")
	}

	bare := element(model.ElementParagraph, "no stub here")
	fd = New().Format(docOf(bare), resolve(t, "business-memo"))
	if got := fd.Blocks[0].Insight.Confidence; got != 0.5 {
		t.Errorf("default Confidence = %v", got)
	}
}

func TestSummaryCounts(t *testing.T) {
	doc := docOf(
		element(model.ElementTitle, "Report"),
		element(model.ElementSection, "One"),
		element(model.ElementSection, "Two"),
		element(model.ElementParagraph, "Body text."),
		element(model.ElementBulletList, "a\nb"),
		element(model.ElementFootnote, "[1] note"),
	)
	fd := New().Format(doc, resolve(t, "classic-report"))
	c := fd.Summary.Counts
	if c.Titles != 1 || c.Headings != 2 || c.Paragraphs != 1 || c.Lists != 1 || c.Other != 1 {
		t.Errorf("counts = %+v", c)
	}
}

func TestPreservationFallbackReverts(t *testing.T) {
	// An impossible threshold forces every element through the revert
	// path: blocks must carry the original, unformatted content.
	e := NewWithChecker(&validate.Checker{MinPreservation: 2, MaxCharDrift: validate.DefaultMaxCharDrift})
	content := "Revenue reached $2.5 million in Q3."
	fd := e.Format(docOf(element(model.ElementParagraph, content)), resolve(t, "sales-proposal"))
	b := fd.Blocks[0]
	if got := b.PlainText(); got != content {
		t.Errorf("PlainText = %q, want original content back", got)
	}
	for _, r := range b.Runs {
		if r.Bold || r.Color != "" {
			t.Errorf("reverted block still carries styling: %+v", r)
		}
	}
}

func TestFormatNeverLosesContent(t *testing.T) {
	input := "PROJECT PHOENIX\n\nChapter 1. Inception\n\nThe budget grew to $1.2 million, a 22% increase (well beyond the initial Q1 2025 estimate).\n\n- hire three engineers\n- extend the SLA window\n\n1. draft the plan\n2. review with stakeholders\n\nName | Role\nAda | Lead\nGrace | Advisor\n"
	doc := structure.NewDetector().Detect(input)
	for _, id := range styles.KnownStyles() {
		fd := New().Format(doc, resolve(t, id))
		for i := range fd.Blocks {
			p := validate.CheckPreservation(fd.Blocks[i].RawContent, fd.Blocks[i].PlainText())
			if !p.Acceptable {
				t.Errorf("%s block %d lost content: %+v", id, i, p)
			}
		}
	}
}

func TestListMarker(t *testing.T) {
	cases := []struct {
		format string
		index  int
		want   string
	}{
		{"1.", 3, "3."},
		{"1)", 2, "2)"},
		{"01.", 7, "07."},
		{"a.", 1, "a."},
		{"a.", 27, "a."},
		{"A.", 2, "B."},
		{"i.", 4, "iv."},
		{"I.", 9, "IX."},
		{"", 5, "5."},
	}
	for _, c := range cases {
		if got := listMarker(c.format, c.index); got != c.want {
			t.Errorf("listMarker(%q, %d) = %q, want %q", c.format, c.index, got, c.want)
		}
	}
}

func TestCounterSubstitution(t *testing.T) {
	var c headingCounters
	c.advance(model.ElementChapter)
	c.advance(model.ElementSection)
	c.advance(model.ElementSection)
	c.advance(model.ElementSubsection)

	if got := c.substitute("{n}.", model.ElementSection); got != "2." {
		t.Errorf("section = %q", got)
	}
	if got := c.substitute("{n}.{n}", model.ElementSection); got != "1.2" {
		t.Errorf("chapter.section = %q", got)
	}
	if got := c.substitute("{n}.{n}.{n}", model.ElementSubsection); got != "1.2.1" {
		t.Errorf("full chain = %q", got)
	}
	if got := c.substitute("Chapter {N}", model.ElementChapter); got != "Chapter I" {
		t.Errorf("roman = %q", got)
	}
	if got := c.substitute("{nn}", model.ElementChapter); got != "01" {
		t.Errorf("padded = %q", got)
	}
	if got := c.substitute("", model.ElementChapter); got != "" {
		t.Errorf("empty pattern = %q", got)
	}
	if got := c.substitute("{n}.", model.ElementParagraph); got != "" {
		t.Errorf("non-heading = %q", got)
	}
}
