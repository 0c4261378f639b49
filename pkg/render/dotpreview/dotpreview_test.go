package dotpreview

import (
	"strings"
	"testing"

	"github.com/vizlab/netvis/pkg/graph"
)

func buildGraph(t *testing.T, opts ...graph.Option) *graph.Graph {
	t.Helper()
	g := graph.New(opts...)
	if _, err := g.AddNode("a", graph.Attrs{"color": "#ff0000"}); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddNode("b", graph.Attrs{"shape": "box"}); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddEdge("a", "b", graph.Attrs{"title": "depends"}); err != nil {
		t.Fatal(err)
	}
	return g
}

func TestToDOTUndirected(t *testing.T) {
	dot := ToDOT(buildGraph(t))

	for _, want := range []string{
		"graph G {",
		`"a" [label="a", shape=circle, fillcolor="#ff0000"];`,
		`"b" [label="b", shape=box, fillcolor="#97c2fc"];`,
		`"a" -- "b" [label="depends"];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "->") {
		t.Error("undirected DOT should not contain directed edges")
	}
}

func TestToDOTDirected(t *testing.T) {
	dot := ToDOT(buildGraph(t, graph.WithDirected()))

	if !strings.HasPrefix(dot, "digraph G {") {
		t.Errorf("directed DOT should be a digraph:\n%s", dot)
	}
	if !strings.Contains(dot, `"a" -> "b"`) {
		t.Errorf("directed edge missing:\n%s", dot)
	}
}

func TestDotShape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "circle"},
		{"dot", "circle"},
		{"square", "box"},
		{"diamond", "diamond"},
		{"star", ""}, // no DOT equivalent
	}
	for _, tt := range tests {
		if got := dotShape(tt.in); got != tt.want {
			t.Errorf("dotShape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
