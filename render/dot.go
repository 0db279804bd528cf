package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/costpath/digraph"
)

// ToDOT converts g to Graphviz DOT. Vertices are declared in registration order,
// edges in enumeration order, each labelled with its weight. Negative edges are
// drawn in red.
func ToDOT(g *digraph.Graph) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=circle, fontsize=14];\n")
	buf.WriteString("\n")

	for _, name := range g.Vertices() {
		fmt.Fprintf(&buf, "  %s;\n", dotQuote(name))
	}

	buf.WriteString("\n")
	for _, e := range g.NamedEdges() {
		attrs := "label=" + dotQuote(fmt.Sprint(e.Weight))
		if e.Weight < 0 {
			attrs += ", color=red, fontcolor=red"
		}
		fmt.Fprintf(&buf, "  %s -> %s [%s];\n", dotQuote(e.From), dotQuote(e.To), attrs)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// dotEscaper escapes the two characters DOT treats specially inside a
// double-quoted ID. Everything else, including UTF-8 and tabs, is literal.
var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// dotQuote renders s as a DOT double-quoted ID.
func dotQuote(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}

// RenderSVG renders DOT text to SVG using the embedded Graphviz runtime.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
