// Package postprocess runs a second, template-independent correction pass
// over formatted blocks: paragraphs that read like headings are promoted,
// heading runs are forced bold, list items are trimmed and blocks whose
// content parses as a table are reclassified. Every change is recorded as a
// human-readable note on the document summary, capped at a fixed limit.
package postprocess
