package render

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/typeset/model"
)

// HTMLFlow renders a formatted document as a continuous page-flow HTML
// fragment: one element per block, inline styles carrying the resolved
// typography and layout.
type HTMLFlow struct{}

// NewHTMLFlow creates the page-flow adapter.
func NewHTMLFlow() *HTMLFlow {
	return &HTMLFlow{}
}

// Render serializes the document's blocks into an HTML fragment rooted at a
// styled div.
func (f *HTMLFlow) Render(doc *model.FormattedDocument) (string, error) {
	root := elem("div")
	setStyle(root, containerStyle(doc.Directives))

	for i := range doc.Blocks {
		b := &doc.Blocks[i]
		root.AppendChild(blockNode(b, ResolveBlockStyle(b, doc.Directives)))
	}

	var sb strings.Builder
	if err := html.Render(&sb, root); err != nil {
		return "", fmt.Errorf("rendering html flow: %w", err)
	}
	return sb.String(), nil
}

func blockNode(b *model.FormattedBlock, r Resolved) *html.Node {
	switch tag := b.Type.HTMLTag(); tag {
	case "ul":
		return listNode(b, r, false)
	case "ol":
		return listNode(b, r, true)
	case "table":
		return tableNode(b, r)
	case "pre":
		n := elem("pre")
		setStyle(n, blockStyle(r))
		n.AppendChild(textNode(b.PlainText()))
		return n
	default:
		n := elem(tag)
		setStyle(n, blockStyle(r))
		if b.Numbering != "" {
			n.AppendChild(textNode(b.Numbering + " "))
		}
		appendRuns(n, b.Runs)
		return n
	}
}

func listNode(b *model.FormattedBlock, r Resolved, numbered bool) *html.Node {
	var n *html.Node
	if numbered {
		n = elem("ol")
		if t := olType(r.NumberFormat); t != "1" {
			setAttr(n, "type", t)
		}
		setStyle(n, blockStyle(r))
	} else {
		// The bullet glyph is rendered inline so the style's symbol
		// survives targets without list-style support.
		n = elem("ul")
		setAttr(n, "style", "list-style:none;"+blockStyle(r))
	}

	for _, item := range b.ListItems {
		li := elem("li")
		if !numbered {
			li.AppendChild(textNode(r.BulletSymbol + " "))
		}
		appendRuns(li, item)
		n.AppendChild(li)
	}
	return n
}

// olType maps a canonical number-format token to the HTML ordered-list type
// attribute.
func olType(format string) string {
	switch strings.TrimRight(format, ".):") {
	case "a":
		return "a"
	case "A":
		return "A"
	case "i":
		return "i"
	case "I":
		return "I"
	default:
		return "1"
	}
}

func tableNode(b *model.FormattedBlock, r Resolved) *html.Node {
	n := elem("table")
	setStyle(n, blockStyle(r))
	if b.TableData == nil {
		tr := elem("tr")
		td := elem("td")
		td.AppendChild(textNode(b.PlainText()))
		tr.AppendChild(td)
		n.AppendChild(tr)
		return n
	}

	thead := elem("thead")
	hr := elem("tr")
	for _, h := range b.TableData.Headers {
		th := elem("th")
		th.AppendChild(textNode(h))
		hr.AppendChild(th)
	}
	thead.AppendChild(hr)
	n.AppendChild(thead)

	tbody := elem("tbody")
	for _, row := range b.TableData.Rows {
		tr := elem("tr")
		for _, cell := range row {
			td := elem("td")
			td.AppendChild(textNode(cell))
			tr.AppendChild(td)
		}
		tbody.AppendChild(tr)
	}
	n.AppendChild(tbody)
	return n
}

// appendRuns converts styled runs to text nodes wrapped in strong/em/span
// as their flags require.
func appendRuns(parent *html.Node, runs []model.TextRun) {
	for _, run := range runs {
		n := textNode(run.Text)
		if run.Color != "" {
			span := elem("span")
			setAttr(span, "style", "color:"+run.Color)
			span.AppendChild(n)
			n = span
		}
		if run.Italic {
			em := elem("em")
			em.AppendChild(n)
			n = em
		}
		if run.Bold {
			strong := elem("strong")
			strong.AppendChild(n)
			n = strong
		}
		parent.AppendChild(n)
	}
}

func containerStyle(d model.GeneralDirectives) string {
	var parts []string
	if d.Font != "" {
		parts = append(parts, "font-family:"+d.Font)
	}
	if d.FontSize > 0 {
		parts = append(parts, fmt.Sprintf("font-size:%gpt", d.FontSize))
	}
	if d.Color != "" {
		parts = append(parts, "color:"+d.Color)
	}
	if d.LineHeight > 0 {
		parts = append(parts, fmt.Sprintf("line-height:%g", d.LineHeight))
	}
	return strings.Join(parts, ";")
}

func blockStyle(r Resolved) string {
	parts := []string{
		"font-family:" + r.Font,
		fmt.Sprintf("font-size:%gpt", r.FontSize),
		"color:" + r.Color,
	}
	if r.Bold {
		parts = append(parts, "font-weight:bold")
	}
	if r.Alignment != model.AlignLeft {
		parts = append(parts, "text-align:"+r.Alignment.String())
	}
	if r.LineHeight > 0 {
		parts = append(parts, fmt.Sprintf("line-height:%g", r.LineHeight))
	}
	if r.SpacingBefore > 0 {
		parts = append(parts, fmt.Sprintf("margin-top:%dem", r.SpacingBefore))
	}
	if r.SpacingAfter > 0 {
		parts = append(parts, fmt.Sprintf("margin-bottom:%dem", r.SpacingAfter))
	}
	if r.Indent > 0 {
		parts = append(parts, fmt.Sprintf("text-indent:%dch", r.Indent))
	}
	if r.PageBreakBefore {
		parts = append(parts, "page-break-before:always")
	}
	return strings.Join(parts, ";")
}

func elem(name string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     name,
		DataAtom: atom.Lookup([]byte(name)),
	}
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func setStyle(n *html.Node, style string) {
	setAttr(n, "style", style)
}

func setAttr(n *html.Node, key, val string) {
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}
