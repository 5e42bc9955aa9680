package typeset

import (
	"fmt"

	"github.com/tsawler/typeset/engine"
	"github.com/tsawler/typeset/model"
	"github.com/tsawler/typeset/postprocess"
	"github.com/tsawler/typeset/structure"
	"github.com/tsawler/typeset/styles"
	"github.com/tsawler/typeset/validate"
)

// Formatter holds the configuration of one reformatting run. Chain methods
// return modified copies, so a configured Formatter can be stored and
// branched safely:
//
//	base := typeset.Reformat(content).WithCache(cache)
//	memo, _, _ := base.WithStyle("business-memo").Run()
//	report, _, _ := base.WithStyle("classic-report").Run()
type Formatter struct {
	content     string
	styleID     string
	reference   *model.StyleExtraction
	cache       styles.Cache
	detectorCfg *structure.Config
	postProcess bool
	validate    bool
}

// clone creates a copy for the immutable chain methods.
func (f *Formatter) clone() *Formatter {
	c := *f
	return &c
}

// WithStyle selects the style template by id. Unknown ids degrade to the
// default profile with a warning rather than failing.
func (f *Formatter) WithStyle(id string) *Formatter {
	c := f.clone()
	c.styleID = id
	return c
}

// WithReference supplies a reference document's extracted style attributes;
// the template is then learned from them under the configured style id
// instead of looked up from the built-in profiles.
func (f *Formatter) WithReference(ext *model.StyleExtraction) *Formatter {
	c := f.clone()
	c.reference = ext
	return c
}

// WithCache supplies the template cache. Callers that reuse one cache
// across runs amortize template construction; learned styles should be
// deleted from it when their owning session ends.
func (f *Formatter) WithCache(cache styles.Cache) *Formatter {
	c := f.clone()
	c.cache = cache
	return c
}

// WithDetectorConfig overrides the structure detection thresholds.
func (f *Formatter) WithDetectorConfig(cfg structure.Config) *Formatter {
	c := f.clone()
	c.detectorCfg = &cfg
	return c
}

// PostProcess enables or disables the semantic correction pass. Enabled by
// default.
func (f *Formatter) PostProcess(enabled bool) *Formatter {
	c := f.clone()
	c.postProcess = enabled
	return c
}

// Validate enables or disables the final conformity check. Enabled by
// default; a failed check is a warning, never an error.
func (f *Formatter) Validate(enabled bool) *Formatter {
	c := f.clone()
	c.validate = enabled
	return c
}

// Run executes the pipeline: structure detection, template resolution,
// formatting, optional post-processing and optional validation. Warnings
// carry degraded-mode notes. Malformed or empty input degrades to a
// best-effort (possibly empty) document rather than an error; the error
// result is reserved for failures of injected collaborators.
func (f *Formatter) Run() (*model.FormattedDocument, []Warning, error) {
	detector := structure.NewDetector()
	if f.detectorCfg != nil {
		detector = structure.NewDetectorWithConfig(*f.detectorCfg)
	}
	doc := detector.Detect(f.content)

	var warnings []Warning
	resolver := styles.NewResolver(f.cache)

	var tpl *model.StyleTemplate
	if f.reference != nil {
		if !f.reference.Success {
			warnings = append(warnings, Warning{
				Stage:   WarnStyles,
				Message: fmt.Sprintf("reference extraction failed; style %q built from fallback attributes", f.styleID),
			})
		}
		tpl = resolver.ResolveLearned(f.styleID, f.reference)
	} else {
		if !styles.IsKnownStyle(f.styleID) {
			warnings = append(warnings, Warning{
				Stage:   WarnStyles,
				Message: fmt.Sprintf("unknown style %q; using %s defaults", f.styleID, styles.DefaultStyleID),
			})
		}
		tpl = resolver.Resolve(f.styleID)
	}

	fd := engine.New().Format(doc, tpl)

	if f.postProcess {
		(&postprocess.Processor{Reference: f.reference}).Process(fd)
	}

	if f.validate {
		if c := validate.CheckConformity(f.content, fd.Text); !c.Conformant {
			warnings = append(warnings, Warning{
				Stage: WarnValidate,
				Message: fmt.Sprintf("conformity %.1f: %d words missing, char drift %.1f%%",
					c.Score, len(c.MissingWords), c.CharDrift*100),
			})
		}
	}

	return fd, warnings, nil
}
