// Package richtext tokenizes lightweight inline style markers into
// style-tagged text runs. It understands **bold**, *italic* and
// [color=#RRGGBB]...[/color] markers, which may nest and overlap in any
// combination.
package richtext
