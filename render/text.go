package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/costpath/digraph"
)

// Vertices writes the vertex list as
//
//	Nodes (count: 3):
//	[1]: A
//	[2]: B
//	[3]: C
func Vertices(w io.Writer, g *digraph.Graph) error {
	names := g.Vertices()
	if _, err := fmt.Fprintf(w, "Nodes (count: %d):\n", len(names)); err != nil {
		return err
	}
	for i, name := range names {
		if _, err := fmt.Fprintf(w, "[%d]: %s\n", i+1, name); err != nil {
			return err
		}
	}
	return nil
}

// Matrix writes one line per row: the row's vertex name followed by its costs,
// space-separated, in registration order.
func Matrix(w io.Writer, g *digraph.Graph) error {
	names := g.Vertices()
	var sb strings.Builder
	for i, row := range g.Matrix() {
		sb.Reset()
		sb.WriteString(names[i])
		for _, c := range row {
			sb.WriteByte(' ')
			sb.WriteString(strconv.FormatInt(c, 10))
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

// Edges writes one "from -> to  weight" line per edge in enumeration order.
func Edges(w io.Writer, g *digraph.Graph) error {
	for _, e := range g.NamedEdges() {
		if _, err := fmt.Fprintf(w, "%s -> %s  %d\n", e.From, e.To, e.Weight); err != nil {
			return err
		}
	}
	return nil
}
