package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/tsawler/typeset/model"
)

// headingCounters tracks running chapter/section/subsection numbers. Each
// heading bumps its own counter and resets everything below it.
type headingCounters struct {
	chapter    int
	section    int
	subsection int
}

func (c *headingCounters) advance(et model.ElementType) {
	switch et {
	case model.ElementChapter:
		c.chapter++
		c.section = 0
		c.subsection = 0
	case model.ElementSection:
		c.section++
		c.subsection = 0
	case model.ElementSubsection:
		c.subsection++
	}
}

// chain returns the counter values from chapter down to the element's own
// level.
func (c *headingCounters) chain(et model.ElementType) []int {
	switch et {
	case model.ElementChapter:
		return []int{c.chapter}
	case model.ElementSection:
		return []int{c.chapter, c.section}
	case model.ElementSubsection:
		return []int{c.chapter, c.section, c.subsection}
	}
	return nil
}

var numberingPlaceholderRe = regexp.MustCompile(`\{(?:nn|n|N)\}`)

// substitute fills a numbering pattern's placeholders with the counter
// chain, aligned so the last placeholder carries the element's own counter:
// a one-placeholder section pattern numbers by section, while "{n}.{n}"
// yields chapter.section.
func (c *headingCounters) substitute(pattern string, et model.ElementType) string {
	chain := c.chain(et)
	if pattern == "" || len(chain) == 0 {
		return ""
	}
	k := len(numberingPlaceholderRe.FindAllString(pattern, -1))
	if k == 0 {
		return pattern
	}
	vals := chain
	if k < len(vals) {
		vals = vals[len(vals)-k:]
	}

	i := 0
	return numberingPlaceholderRe.ReplaceAllStringFunc(pattern, func(m string) string {
		v := vals[len(vals)-1]
		if i < len(vals) {
			v = vals[i]
		}
		i++
		switch m {
		case "{N}":
			return romanUpper(v)
		case "{nn}":
			return fmt.Sprintf("%02d", v)
		default:
			return strconv.Itoa(v)
		}
	})
}

// listMarker renders the marker for a 1-based list item index under a
// canonical number-format token ("1.", "01.", "a.", "A.", "i.", "I.",
// "1)").
func listMarker(format string, index int) string {
	if format == "" {
		format = "1."
	}
	body, suffix := format, ""
	if last := format[len(format)-1]; last == '.' || last == ')' || last == ':' {
		body, suffix = format[:len(format)-1], string(last)
	}
	switch body {
	case "a":
		return letterMarker(index, false) + suffix
	case "A":
		return letterMarker(index, true) + suffix
	case "i":
		return strings.ToLower(romanUpper(index)) + suffix
	case "I":
		return romanUpper(index) + suffix
	case "01":
		return fmt.Sprintf("%02d", index) + suffix
	default:
		return strconv.Itoa(index) + suffix
	}
}

func letterMarker(n int, upper bool) string {
	if n < 1 {
		n = 1
	}
	base := byte('a')
	if upper {
		base = 'A'
	}
	return string(base + byte((n-1)%26))
}

var romanValues = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

func romanUpper(n int) string {
	if n <= 0 {
		return strconv.Itoa(n)
	}
	var b strings.Builder
	for _, rv := range romanValues {
		for n >= rv.value {
			b.WriteString(rv.symbol)
			n -= rv.value
		}
	}
	return b.String()
}
