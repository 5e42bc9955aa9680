// Package tables detects and parses tabular text. It recognizes
// pipe-delimited, tab-delimited and multi-space-aligned layouts, parses them
// into a header plus data rows, and renders tables back to canonical
// markdown-table text.
//
// Detection is heuristic: Parse returns nil whenever the input does not
// yield at least two header columns and one data row, and callers are
// expected to fall back to treating the text as plain paragraphs.
package tables
