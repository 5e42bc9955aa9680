package styles

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/typeset/model"
)

// DefaultStyleID is the profile substituted when a requested style id is
// unknown.
const DefaultStyleID = "business-memo"

//go:embed profiles.yaml
var builtinProfileData []byte

var (
	builtinOnce sync.Once
	builtins    map[string]profileDef
	builtinErr  error
)

// profileFile is the YAML shape of a profile definition file.
type profileFile struct {
	Styles map[string]profileDef `yaml:"styles"`
}

type profileDef struct {
	General generalDef         `yaml:"general"`
	Rules   map[string]ruleDef `yaml:"rules"`
}

type generalDef struct {
	ParagraphSpacing int     `yaml:"paragraph_spacing"`
	IndentSize       int     `yaml:"indent_size"`
	LineHeight       float64 `yaml:"line_height"`
	Alignment        string  `yaml:"alignment"`
	Justify          bool    `yaml:"justify"`
	Font             string  `yaml:"font"`
	FontSize         float64 `yaml:"font_size"`
	Color            string  `yaml:"color"`
	BulletSymbol     string  `yaml:"bullet_symbol"`
	NumberFormat     string  `yaml:"number_format"`
}

type ruleDef struct {
	Prefix          string  `yaml:"prefix"`
	Suffix          string  `yaml:"suffix"`
	SpacingBefore   int     `yaml:"spacing_before"`
	SpacingAfter    int     `yaml:"spacing_after"`
	Bold            bool    `yaml:"bold"`
	Italic          bool    `yaml:"italic"`
	Uppercase       bool    `yaml:"uppercase"`
	Center          bool    `yaml:"center"`
	PageBreakBefore bool    `yaml:"page_break_before"`
	Indent          int     `yaml:"indent"`
	LineHeight      float64 `yaml:"line_height"`
	Numbering       string  `yaml:"numbering"`
	Font            string  `yaml:"font"`
	FontSize        float64 `yaml:"font_size"`
	Color           string  `yaml:"color"`
}

func loadBuiltins() (map[string]profileDef, error) {
	builtinOnce.Do(func() {
		var pf profileFile
		if err := yaml.Unmarshal(builtinProfileData, &pf); err != nil {
			builtinErr = fmt.Errorf("parsing built-in profiles: %w", err)
			return
		}
		builtins = pf.Styles
	})
	return builtins, builtinErr
}

// KnownStyles returns the sorted ids of all built-in style profiles.
func KnownStyles() []string {
	defs, err := loadBuiltins()
	if err != nil {
		return nil
	}
	ids := make([]string, 0, len(defs))
	for id := range defs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// IsKnownStyle reports whether id names a built-in profile.
func IsKnownStyle(id string) bool {
	defs, err := loadBuiltins()
	if err != nil {
		return false
	}
	_, ok := defs[id]
	return ok
}

// LoadProfile parses a caller-supplied YAML profile definition and returns
// the template for the given style id within it.
func LoadProfile(id string, data []byte) (*model.StyleTemplate, error) {
	var pf profileFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing profile data: %w", err)
	}
	def, ok := pf.Styles[id]
	if !ok {
		return nil, fmt.Errorf("style %q not defined", id)
	}
	return def.toTemplate(id), nil
}

// buildPredefined builds the template for a built-in style id. The second
// return value is false for unknown ids.
func buildPredefined(id string) (*model.StyleTemplate, bool) {
	defs, err := loadBuiltins()
	if err != nil {
		return nil, false
	}
	def, ok := defs[id]
	if !ok {
		return nil, false
	}
	return def.toTemplate(id), true
}

func (d profileDef) toTemplate(id string) *model.StyleTemplate {
	general := model.GeneralRules{
		ParagraphSpacing: d.General.ParagraphSpacing,
		IndentSize:       d.General.IndentSize,
		LineHeight:       d.General.LineHeight,
		Alignment:        parseAlignment(d.General.Alignment),
		Justify:          d.General.Justify,
		Font:             d.General.Font,
		FontSize:         d.General.FontSize,
		Color:            d.General.Color,
		BulletSymbol:     NormalizeBullet(d.General.BulletSymbol),
		NumberFormat:     d.General.NumberFormat,
	}
	if general.NumberFormat == "" {
		general.NumberFormat = "1."
	}
	if general.LineHeight == 0 {
		general.LineHeight = 1.15
	}

	rules := make(map[model.ElementType]model.FormattingRule, len(d.Rules))
	for name, rd := range d.Rules {
		et := model.ParseElementType(name)
		if et == model.ElementUnknown {
			continue
		}
		rules[et] = rd.toRule()
	}

	return &model.StyleTemplate{StyleID: id, Rules: rules, General: general}
}

func (rd ruleDef) toRule() model.FormattingRule {
	rule := model.FormattingRule{
		Prefix:          rd.Prefix,
		Suffix:          rd.Suffix,
		SpacingBefore:   rd.SpacingBefore,
		SpacingAfter:    rd.SpacingAfter,
		Bold:            rd.Bold,
		Italic:          rd.Italic,
		Uppercase:       rd.Uppercase,
		Center:          rd.Center,
		PageBreakBefore: rd.PageBreakBefore,
		Indent:          rd.Indent,
		LineHeight:      rd.LineHeight,
		Numbering:       rd.Numbering,
	}
	if rd.Font != "" || rd.FontSize != 0 || rd.Color != "" {
		rule.Typography = &model.Typography{
			Font:  rd.Font,
			Size:  rd.FontSize,
			Color: rd.Color,
			Bold:  rd.Bold,
		}
	}
	return rule
}

func parseAlignment(s string) model.Alignment {
	switch s {
	case "center":
		return model.AlignCenter
	case "right":
		return model.AlignRight
	case "justify":
		return model.AlignJustify
	default:
		return model.AlignLeft
	}
}
