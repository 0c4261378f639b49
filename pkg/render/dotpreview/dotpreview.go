// Package dotpreview renders a static server-side preview of a graph
// through Graphviz. The interactive HTML document stays the primary
// artifact; the preview exists for pipelines that need an image next to
// it (reports, READMEs, thumbnails).
package dotpreview

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/vizlab/netvis/pkg/graph"
)

// ToDOT serializes the registry to Graphviz DOT. Labels come from the
// node records; a few attributes with direct DOT equivalents (color,
// shape mapped from the canvas vocabulary) are carried over, everything
// else is dropped because DOT has no home for it.
func ToDOT(g *graph.Graph) string {
	var buf bytes.Buffer
	if g.Directed() {
		buf.WriteString("digraph G {\n")
	} else {
		buf.WriteString("graph G {\n")
	}
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [style=filled, fillcolor=white];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		attrs := []string{fmt.Sprintf("label=%q", n.Label)}
		if shape := dotShape(n.Shape); shape != "" {
			attrs = append(attrs, fmt.Sprintf("shape=%s", shape))
		}
		if color, ok := n.Attrs["color"].(string); ok {
			attrs = append(attrs, fmt.Sprintf("fillcolor=%q", color))
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	op := "--"
	if g.Directed() {
		op = "->"
	}
	for _, e := range g.Edges() {
		if title, ok := e.Attrs["title"].(string); ok {
			fmt.Fprintf(&buf, "  %q %s %q [label=%q];\n", e.From, op, e.To, title)
			continue
		}
		fmt.Fprintf(&buf, "  %q %s %q;\n", e.From, op, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// dotShape maps the canvas shape vocabulary onto Graphviz shapes. The
// default canvas shape is a filled dot, which Graphviz calls a circle.
func dotShape(shape string) string {
	switch shape {
	case "", "dot", "circle":
		return "circle"
	case "box", "square":
		return "box"
	case "ellipse":
		return "ellipse"
	case "diamond":
		return "diamond"
	case "triangle":
		return "triangle"
	default:
		return ""
	}
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
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
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
