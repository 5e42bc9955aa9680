// Package typeset provides a fluent API for reformatting plain extracted
// text under a style template: structure detection, template resolution,
// formatting, semantic post-processing and content validation in one pass.
//
// Basic usage:
//
//	doc, warnings, err := typeset.Reformat(content).Run()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", typeset.FormatWarnings(warnings))
//	}
//
// With options:
//
//	doc, _, err := typeset.Reformat(content).
//	    WithStyle("technical-manual").
//	    Validate(false).
//	    Run()
//
// For advanced use cases, the lower-level structure, styles, engine,
// postprocess, validate and render packages are also available.
package typeset

import (
	"github.com/tsawler/typeset/model"
	"github.com/tsawler/typeset/styles"
)

// Reformat starts a fluent run over the given content. The default
// configuration applies the business-memo style with post-processing and
// validation enabled.
//
// Example:
//
//	doc, warnings, err := typeset.Reformat(content).WithStyle("classic-report").Run()
func Reformat(content string) *Formatter {
	return &Formatter{
		content:     content,
		styleID:     styles.DefaultStyleID,
		postProcess: true,
		validate:    true,
	}
}

// Must is a helper that wraps a call to Run and panics if the error is
// non-nil. It discards warnings and returns just the document. It is
// intended for use in scripts or tests where error handling would be
// cumbersome.
//
// Example:
//
//	doc := typeset.Must(typeset.Reformat(content).Run())
func Must(doc *model.FormattedDocument, _ []Warning, err error) *model.FormattedDocument {
	if err != nil {
		panic(err)
	}
	return doc
}
