// Package engine applies a resolved style template to a detected document
// structure, producing renderer-neutral formatted blocks plus a flat text
// rendering.
//
// Formatting is a single pass in document order: per-style intelligence
// enrichment first, then the generic transforms (spacing, case, wrapper
// markers, heading numbering, list markers), then block construction. The
// pass ends with a per-element safety check: any element whose formatted
// text loses content against the original is reverted to its raw content,
// because formatting is never preferred over completeness.
package engine
