// Package styles resolves style templates: the per-element-type formatting
// rules plus document-wide defaults the formatting engine applies.
//
// Templates come from two construction paths with the same output shape:
// predefined profiles (embedded YAML definitions looked up by style id) and
// learned profiles (derived from a reference document's extracted style
// attributes). Resolution is cached process-wide, keyed by style id and
// template version; building a template is a pure function of its inputs,
// so concurrent duplicate builds are harmless.
package styles
