// Package structure detects the logical structure of plain extracted text.
// It scans the source line by line, classifies each line or block into an
// element type (headings, paragraphs, lists, tables, code, footnotes),
// groups the elements into a heading hierarchy, and infers the overall
// document type and title.
//
// Classification is an ordered cascade of independent heuristic predicates;
// the first predicate that matches wins, and a line that matches nothing is
// accumulated into the running paragraph. Ambiguity is therefore never an
// error: unmatched text always survives as paragraph content.
package structure
