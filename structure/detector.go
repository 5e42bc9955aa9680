package structure

import (
	"strings"

	"github.com/tsawler/typeset/model"
	"github.com/tsawler/typeset/tables"
)

// Version tags the detector revision recorded in formatted-document
// summaries.
const Version = "detector-v2"

// Config holds the tunable thresholds of structure detection.
type Config struct {
	// ImplicitHeadingMaxLen is the maximum length of a line promoted to a
	// heading without an explicit marker.
	ImplicitHeadingMaxLen int

	// TitleCaseRatio is the minimum fraction of capitalized words for the
	// implicit title-case heading rule.
	TitleCaseRatio float64

	// MaxHeadingLen and MaxHeadingWords bound the text of numbered and
	// keyword headings.
	MaxHeadingLen   int
	MaxHeadingWords int

	// MaxFootnoteLen bounds footnote lines.
	MaxFootnoteLen int

	// FootnoteTailRatio is the fraction of the document, measured from
	// the end, where footnotes are expected.
	FootnoteTailRatio float64

	// TitleSearchWindow and TitleMaxLen bound the fallback title search
	// over leading paragraphs.
	TitleSearchWindow int
	TitleMaxLen       int

	// ArticleMaxElements is the element-count ceiling for the article
	// document-type rule.
	ArticleMaxElements int
}

// DefaultConfig returns the default detection thresholds.
func DefaultConfig() Config {
	return Config{
		ImplicitHeadingMaxLen: 100,
		TitleCaseRatio:        0.7,
		MaxHeadingLen:         100,
		MaxHeadingWords:       12,
		MaxFootnoteLen:        100,
		FootnoteTailRatio:     0.2,
		TitleSearchWindow:     500,
		TitleMaxLen:           100,
		ArticleMaxElements:    50,
	}
}

// Detector detects document structure from plain text.
type Detector struct {
	config Config
}

// NewDetector creates a detector with default configuration.
func NewDetector() *Detector {
	return &Detector{config: DefaultConfig()}
}

// NewDetectorWithConfig creates a detector with custom thresholds.
func NewDetectorWithConfig(cfg Config) *Detector {
	return &Detector{config: cfg}
}

// Detect scans content line by line and returns the detected structure.
// It never fails: empty or unclassifiable input yields a structure whose
// elements are plain paragraphs (or none at all).
func (d *Detector) Detect(content string) *model.DocumentStructure {
	cfg := d.config
	lines := strings.Split(content, "\n")

	// Character offset of each line start.
	offsets := make([]int, len(lines))
	pos := 0
	for i, l := range lines {
		offsets[i] = pos
		pos += len(l) + 1
	}

	tailStart := int(float64(len(lines)) * (1 - cfg.FootnoteTailRatio))

	var elements []model.DocumentElement

	// Running paragraph accumulator.
	var paraLines []string
	paraStart := 0

	flushPara := func(end int) {
		if len(paraLines) == 0 {
			return
		}
		text := strings.TrimSpace(strings.Join(paraLines, " "))
		paraLines = nil
		if text == "" {
			return
		}
		elements = append(elements, newElement(model.ElementParagraph, text, 0, paraStart, end))
	}

	blankAt := func(i int) bool {
		return i < 0 || i >= len(lines) || strings.TrimSpace(lines[i]) == ""
	}

	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			flushPara(offsets[i])
			i++
			continue
		}

		// Tables first, with one line of context on either side.
		if isTableStart(lines, i) {
			j := consumeTableLines(lines, i)
			text := strings.Join(trimmedSlice(lines[i:j]), "\n")
			if t := tables.Parse(text); t != nil {
				flushPara(offsets[i])
				el := newElement(model.ElementTable, text, 0, offsets[i], lineEnd(offsets, lines, j-1))
				el.Table = &model.TableExtra{Headers: t.Headers, Rows: t.Rows}
				elements = append(elements, el)
				i = j
				continue
			}
			// No valid table here; fall through to normal
			// classification of this line.
		}

		// Fenced code blocks.
		if strings.HasPrefix(line, "```") {
			flushPara(offsets[i])
			j := i + 1
			for j < len(lines) && !strings.HasPrefix(strings.TrimSpace(lines[j]), "```") {
				j++
			}
			code := strings.Join(lines[i+1:min(j, len(lines))], "\n")
			end := lineEnd(offsets, lines, min(j, len(lines)-1))
			elements = append(elements, newElement(model.ElementCodeBlock, code, 0, offsets[i], end))
			i = j + 1
			continue
		}

		ctx := lineContext{
			PrevBlank: blankAt(i - 1),
			NextBlank: blankAt(i + 1),
			Tail:      i >= tailStart,
		}
		lc, ok := classifyLine(line, ctx, cfg)
		if !ok {
			if len(paraLines) == 0 {
				paraStart = offsets[i]
			}
			paraLines = append(paraLines, line)
			i++
			continue
		}

		flushPara(offsets[i])

		if lc.Type.IsList() {
			// Group consecutive items of the same list type.
			items := []string{lc.Content}
			j := i + 1
			for j < len(lines) {
				next := strings.TrimSpace(lines[j])
				if next == "" {
					break
				}
				nctx := lineContext{
					PrevBlank: blankAt(j - 1),
					NextBlank: blankAt(j + 1),
					Tail:      j >= tailStart,
				}
				nlc, nok := classifyLine(next, nctx, cfg)
				if !nok || nlc.Type != lc.Type {
					break
				}
				items = append(items, nlc.Content)
				j++
			}
			el := newElement(lc.Type, strings.Join(items, "\n"), 0, offsets[i], lineEnd(offsets, lines, j-1))
			el.List = &model.ListExtra{Items: items}
			elements = append(elements, el)
			i = j
			continue
		}

		elements = append(elements, newElement(lc.Type, lc.Content, lc.Level, offsets[i], lineEnd(offsets, lines, i)))
		i++
	}
	flushPara(len(content))

	// A lone implicit heading opening the document is its title.
	promoteLeadingTitle(elements)

	hierarchy := buildHierarchy(elements)

	ds := &model.DocumentStructure{
		Elements:  elements,
		Hierarchy: hierarchy,
		Metadata:  buildMetadata(content, elements),
	}
	ds.Type = inferDocumentType(content, elements, cfg)
	ds.Title = extractTitle(elements, cfg)
	return ds
}

// isTableStart reports whether line i opens a table region: the line is
// table-like, and either it contains a pipe or an adjacent line is also
// table-like. The context requirement keeps isolated double-spaced prose
// from becoming single-line tables.
func isTableStart(lines []string, i int) bool {
	line := strings.TrimSpace(lines[i])
	if !tables.LooksLikeTableLine(line) {
		return false
	}
	if strings.Contains(line, "|") {
		return true
	}
	prevLike := i-1 >= 0 && tables.LooksLikeTableLine(strings.TrimSpace(lines[i-1]))
	nextLike := i+1 < len(lines) && tables.LooksLikeTableLine(strings.TrimSpace(lines[i+1]))
	return prevLike || nextLike
}

// consumeTableLines returns the exclusive end index of the table region
// starting at i. Non-table lines surrounded by table lines are folded in as
// row continuations.
func consumeTableLines(lines []string, i int) int {
	j := i
	for j < len(lines) {
		line := strings.TrimSpace(lines[j])
		if line == "" {
			break
		}
		if tables.LooksLikeTableLine(line) {
			j++
			continue
		}
		// Continuation only when sandwiched between table lines.
		if j+1 < len(lines) {
			next := strings.TrimSpace(lines[j+1])
			if next != "" && tables.LooksLikeTableLine(next) {
				j++
				continue
			}
		}
		break
	}
	return j
}

// promoteLeadingTitle retypes a document-opening implicit section heading
// to the title when no explicit title exists.
func promoteLeadingTitle(elements []model.DocumentElement) {
	if len(elements) == 0 {
		return
	}
	for i := range elements {
		if elements[i].Type == model.ElementTitle {
			return
		}
	}
	first := &elements[0]
	if first.Type == model.ElementSection && first.Position.Start == 0 {
		first.Type = model.ElementTitle
		first.Level = 1
		if first.Insight != nil {
			first.Insight.Role = model.ElementTitle.Role()
			first.Insight.Confidence = confidenceFor(model.ElementTitle, first.Content)
		}
	}
}

func buildMetadata(content string, elements []model.DocumentElement) model.StructureMetadata {
	meta := model.StructureMetadata{
		WordCount:  len(strings.Fields(content)),
		TypeCounts: make(map[model.ElementType]int),
	}
	for i := range elements {
		et := elements[i].Type
		meta.TypeCounts[et]++
		switch et {
		case model.ElementTable:
			meta.HasTables = true
		case model.ElementBulletList, model.ElementNumberedList:
			meta.HasLists = true
		case model.ElementCodeBlock:
			meta.HasCode = true
		case model.ElementTableOfContents:
			meta.HasTOC = true
		}
	}
	return meta
}

func trimmedSlice(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = strings.TrimSpace(l)
	}
	return out
}

// lineEnd returns the character offset just past line i.
func lineEnd(offsets []int, lines []string, i int) int {
	if i < 0 {
		return 0
	}
	if i >= len(lines) {
		i = len(lines) - 1
	}
	return offsets[i] + len(lines[i])
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
