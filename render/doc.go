// Package render turns a frozen digraph.Graph into human-readable output:
// a numbered vertex list, the row-labelled cost matrix, Graphviz DOT text and
// SVG rendered through Graphviz.
//
// Nothing here affects graph semantics; it is the printing glue used by the CLI.
package render
