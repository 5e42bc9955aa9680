package validate

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/typeset/richtext"
)

const (
	// DefaultMinPreservation is the minimum fraction of original words
	// that must survive formatting.
	DefaultMinPreservation = 0.95

	// DefaultMaxCharDrift is the maximum relative character-count change
	// a conformant rendering may exhibit.
	DefaultMaxCharDrift = 0.05

	// maxReportedWords bounds the missing/added word samples in results.
	maxReportedWords = 10

	// duplicationRatio is the added-vocabulary fraction above which the
	// preservation check flags possible duplication.
	duplicationRatio = 0.10
)

// Checker holds the thresholds for both checks. The zero value is not
// usable; construct with NewChecker and adjust fields as needed.
type Checker struct {
	MinPreservation float64
	MaxCharDrift    float64
}

// NewChecker returns a Checker with the default thresholds.
func NewChecker() *Checker {
	return &Checker{
		MinPreservation: DefaultMinPreservation,
		MaxCharDrift:    DefaultMaxCharDrift,
	}
}

// Conformity is the result of the full word-set comparison.
type Conformity struct {
	// Conformant is true when no original words are missing and the
	// character drift is under the threshold.
	Conformant bool

	// Score is the weighted score in [0, 100]:
	// (preservationRate*0.7 + additionPenalty*0.3) * 100.
	Score float64

	// MissingWords and AddedWords sample the differing vocabulary, capped
	// at ten words each, in first-occurrence order.
	MissingWords []string
	AddedWords   []string

	// CharDrift is the relative character-count change after
	// normalization.
	CharDrift float64
}

// Preservation is the result of the engine's per-element content check.
type Preservation struct {
	// Acceptable is true when the preservation score exceeds the
	// threshold.
	Acceptable bool

	// Score is 1 - missingWords/originalWords, in [0, 1].
	Score float64

	// MissingWords samples the lost vocabulary, capped at ten words.
	MissingWords []string

	// Issues carries non-fatal observations, such as possible content
	// duplication.
	Issues []string
}

// CheckConformity compares the formatted text against the original by
// normalized word sets and reports the weighted conformity score.
func (c *Checker) CheckConformity(original, formatted string) Conformity {
	origNorm := normalize(original)
	fmtNorm := normalize(formatted)

	origWords, origSet := words(origNorm)
	_, fmtSet := words(fmtNorm)

	missing := difference(origWords, fmtSet)
	fmtWords, _ := words(fmtNorm)
	added := difference(fmtWords, origSet)

	var drift float64
	if len(origNorm) > 0 {
		drift = abs(float64(len(fmtNorm)-len(origNorm))) / float64(len(origNorm))
	}

	if len(origWords) == 0 {
		return Conformity{Conformant: true, Score: 100, CharDrift: drift}
	}

	preservation := floor0(1 - float64(len(missing))/float64(len(origWords)))
	additionPenalty := floor0(1 - float64(len(added))/float64(len(origWords)))
	score := (preservation*0.7 + additionPenalty*0.3) * 100

	return Conformity{
		Conformant:   len(missing) == 0 && drift < c.MaxCharDrift,
		Score:        score,
		MissingWords: cap10(missing),
		AddedWords:   cap10(added),
		CharDrift:    drift,
	}
}

// CheckPreservation is the simpler per-element check: the score depends only
// on missing words. Added vocabulary is non-fatal but flagged as possible
// duplication when it exceeds ten percent of the original vocabulary.
func (c *Checker) CheckPreservation(original, formatted string) Preservation {
	origNorm := normalize(original)
	fmtNorm := normalize(formatted)

	origWords, origSet := words(origNorm)
	_, fmtSet := words(fmtNorm)

	if len(origWords) == 0 {
		return Preservation{Acceptable: true, Score: 1}
	}

	missing := difference(origWords, fmtSet)
	score := floor0(1 - float64(len(missing))/float64(len(origWords)))

	p := Preservation{
		Acceptable:   score > c.MinPreservation,
		Score:        score,
		MissingWords: cap10(missing),
	}

	fmtWords, _ := words(fmtNorm)
	added := difference(fmtWords, origSet)
	if float64(len(added)) > duplicationRatio*float64(len(origWords)) {
		p.Issues = append(p.Issues, fmt.Sprintf("possible duplication: %d words not in original", len(added)))
	}
	return p
}

// CheckConformity runs the full comparison with default thresholds.
func CheckConformity(original, formatted string) Conformity {
	return NewChecker().CheckConformity(original, formatted)
}

// CheckPreservation runs the per-element check with default thresholds.
func CheckPreservation(original, formatted string) Preservation {
	return NewChecker().CheckPreservation(original, formatted)
}

// markerRe strips the formatting artifacts the engine introduces: heading
// markers, fences, table pipes, list glyphs and page-break characters.
var markerRe = regexp.MustCompile("(?m)^#{1,6}\\s+|```|[|•◦▪▫▸‣∙■○●\f]")

// wordRe extracts word tokens: letter/digit runs joined by apostrophes or
// hyphens.
var wordRe = regexp.MustCompile(`[\p{L}\p{N}]+(?:['’-][\p{L}\p{N}]+)*`)

// normalize strips inline and block markers, applies NFKC, lowercases and
// collapses whitespace so both inputs compare on content alone.
func normalize(s string) string {
	s = richtext.Strip(s)
	s = markerRe.ReplaceAllString(s, " ")
	s = norm.NFKC.String(s)
	s = strings.ToLower(s)
	return strings.Join(strings.Fields(s), " ")
}

// words returns the token list in first-occurrence order (deduplicated) and
// the corresponding set.
func words(s string) ([]string, map[string]bool) {
	tokens := wordRe.FindAllString(s, -1)
	set := make(map[string]bool, len(tokens))
	ordered := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !set[t] {
			set[t] = true
			ordered = append(ordered, t)
		}
	}
	return ordered, set
}

func difference(ordered []string, other map[string]bool) []string {
	var out []string
	for _, w := range ordered {
		if !other[w] {
			out = append(out, w)
		}
	}
	return out
}

func cap10(words []string) []string {
	if len(words) > maxReportedWords {
		return words[:maxReportedWords]
	}
	return words
}

func floor0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
