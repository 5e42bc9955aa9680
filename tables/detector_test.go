package tables

import (
	"reflect"
	"strings"
	"testing"
)

func TestLooksLikeTableLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"Name | Role | Location", true},
		{"| a | b |", true},
		{"Name\tRole\tLocation", true},
		{"Name    Role    Location", true},
		{"Name  Role", true}, // two-space fallback
		{"just a plain sentence with single spaces", false},
		{"| lonely", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := LooksLikeTableLine(tt.line); got != tt.want {
			t.Errorf("LooksLikeTableLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestParsePipeTable(t *testing.T) {
	text := "Name | Role\nAda | Engineer\nGrace | Admiral"
	tbl := Parse(text)
	if tbl == nil {
		t.Fatal("Parse returned nil")
	}
	if !reflect.DeepEqual(tbl.Headers, []string{"Name", "Role"}) {
		t.Errorf("Headers = %v", tbl.Headers)
	}
	if tbl.RowCount() != 2 {
		t.Fatalf("RowCount = %d, want 2", tbl.RowCount())
	}
	if !reflect.DeepEqual(tbl.Rows[0], []string{"Ada", "Engineer"}) {
		t.Errorf("Rows[0] = %v", tbl.Rows[0])
	}
}

func TestParseTabTable(t *testing.T) {
	text := "Qtr\tRevenue\tGrowth\nQ1\t$1.2M\t8%\nQ2\t$1.4M\t16%"
	tbl := Parse(text)
	if tbl == nil {
		t.Fatal("Parse returned nil")
	}
	if tbl.ColumnCount() != 3 || tbl.RowCount() != 2 {
		t.Fatalf("got %dx%d, want 3x2", tbl.ColumnCount(), tbl.RowCount())
	}
	if tbl.Rows[1][1] != "$1.4M" {
		t.Errorf("Rows[1][1] = %q", tbl.Rows[1][1])
	}
}

func TestParseSpaceAlignedTable(t *testing.T) {
	text := "Item        Count   Status\nWidgets     42      OK\nSprockets   7       Backordered"
	tbl := Parse(text)
	if tbl == nil {
		t.Fatal("Parse returned nil")
	}
	want := []string{"Item", "Count", "Status"}
	if !reflect.DeepEqual(tbl.Headers, want) {
		t.Errorf("Headers = %v, want %v", tbl.Headers, want)
	}
	if tbl.Rows[0][2] != "OK" {
		t.Errorf("Rows[0][2] = %q", tbl.Rows[0][2])
	}
}

func TestParseOverflowFoldsIntoLastCell(t *testing.T) {
	text := "A | B\none | two | extra | more\nx | y"
	tbl := Parse(text)
	if tbl == nil {
		t.Fatal("Parse returned nil")
	}
	if tbl.Rows[0][1] != "two extra more" {
		t.Errorf("overflow row = %v", tbl.Rows[0])
	}
}

func TestParseUnderfilledRowsMerge(t *testing.T) {
	// A row split across two physical lines with the pipe strategy.
	text := "A | B | C\none | two\nthree\nx | y | z"
	tbl := Parse(text)
	if tbl == nil {
		t.Fatal("Parse returned nil")
	}
	if tbl.RowCount() != 2 {
		t.Fatalf("RowCount = %d, want 2: %v", tbl.RowCount(), tbl.Rows)
	}
	// "three" fails to split, so it continues the buffered cell; the next
	// line's columns complete the row and its leftovers start the next.
	if !reflect.DeepEqual(tbl.Rows[0], []string{"one", "two three", "x"}) {
		t.Errorf("Rows[0] = %v", tbl.Rows[0])
	}
	if !reflect.DeepEqual(tbl.Rows[1], []string{"y", "z", ""}) {
		t.Errorf("Rows[1] = %v", tbl.Rows[1])
	}
}

func TestParseNegativeCases(t *testing.T) {
	if tbl := Parse("Name | Role"); tbl != nil {
		t.Errorf("single line should yield nil, got %+v", tbl)
	}
	prose := "This is a paragraph.\nIt has several lines of prose.\nNone of them are aligned."
	if tbl := Parse(prose); tbl != nil {
		t.Errorf("prose should yield nil, got %+v", tbl)
	}
	if tbl := Parse(""); tbl != nil {
		t.Error("empty input should yield nil")
	}
}

func TestRenderMarkdown(t *testing.T) {
	tbl := &Table{
		Headers: []string{"Name", "Role"},
		Rows:    [][]string{{"Ada", "Engineer"}, {"Pipe|r", "Line\nbreak"}},
	}
	got := RenderMarkdown(tbl)
	lines := strings.Split(got, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), got)
	}
	if lines[0] != "| Name | Role |" {
		t.Errorf("header line = %q", lines[0])
	}
	if lines[1] != "| --- | --- |" {
		t.Errorf("separator line = %q", lines[1])
	}
	if !strings.Contains(lines[3], `Pipe\|r`) {
		t.Errorf("pipe not escaped: %q", lines[3])
	}
	if !strings.Contains(lines[3], "Line<br>break") {
		t.Errorf("newline not converted: %q", lines[3])
	}
}

func TestIsMarkdownTable(t *testing.T) {
	tbl := &Table{Headers: []string{"a", "b"}, Rows: [][]string{{"1", "2"}}}
	if !IsMarkdownTable(RenderMarkdown(tbl)) {
		t.Error("rendered table not recognized as markdown")
	}
	if IsMarkdownTable("Name | Role\nAda | Engineer") {
		t.Error("pipe text without separator should not be markdown")
	}
}

// normalizeWS collapses runs of whitespace to single spaces and trims.
func normalizeWS(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func TestRoundTrip(t *testing.T) {
	cases := []*Table{
		{
			Headers: []string{"Name", "Role"},
			Rows:    [][]string{{"Ada", "Engineer"}, {"Grace", "Admiral"}},
		},
		{
			Headers: []string{"Qtr", "Revenue", "Growth"},
			Rows:    [][]string{{"Q1", "$1.2M", "8%"}},
		},
		{
			Headers: []string{"Key", "Value"},
			Rows:    [][]string{{"multi\nline", "with | pipe"}},
		},
	}

	for _, orig := range cases {
		rendered := RenderMarkdown(orig)
		parsed := Parse(rendered)
		if parsed == nil {
			t.Fatalf("round trip parse failed for:\n%s", rendered)
		}
		if !reflect.DeepEqual(parsed.Headers, orig.Headers) {
			t.Errorf("headers: got %v, want %v", parsed.Headers, orig.Headers)
		}
		if parsed.RowCount() != orig.RowCount() {
			t.Fatalf("rows: got %d, want %d", parsed.RowCount(), orig.RowCount())
		}
		for i := range orig.Rows {
			for j := range orig.Rows[i] {
				want := normalizeWS(orig.Rows[i][j])
				got := normalizeWS(parsed.Rows[i][j])
				if got != want {
					t.Errorf("cell [%d][%d]: got %q, want %q", i, j, got, want)
				}
			}
		}
	}

	// Idempotence: parse(render(parse(x))) reproduces parse(x).
	src := "Name | Role\nAda | Engineer\nGrace | Admiral"
	first := Parse(src)
	second := Parse(RenderMarkdown(first))
	if !reflect.DeepEqual(first, second) {
		t.Errorf("idempotence broken:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
