package network

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vizlab/netvis/pkg/graph"
	"github.com/vizlab/netvis/pkg/options"
	"github.com/vizlab/netvis/pkg/render/htmldoc"
)

func TestNewDefaults(t *testing.T) {
	n := New()
	if n.height != DefaultHeight || n.width != DefaultWidth {
		t.Errorf("size = %s × %s, want %s × %s", n.width, n.height, DefaultWidth, DefaultHeight)
	}
	if n.bgcolor != DefaultBGColor {
		t.Errorf("bgcolor = %s, want %s", n.bgcolor, DefaultBGColor)
	}
	if n.Graph().NumNodes() != 0 || n.Graph().NumEdges() != 0 {
		t.Error("new network should start empty")
	}
	if !n.Options().Physics.Enabled {
		t.Error("physics should default to enabled")
	}
}

func TestOptionsApplied(t *testing.T) {
	n := New(
		WithSize("500px", "800px"),
		WithBGColor("#222222"),
		WithFontColor("#eeeeee"),
		WithHeading("Topology"),
		WithNotebook(),
	)
	if n.height != "500px" || n.width != "800px" {
		t.Errorf("size = %s × %s", n.width, n.height)
	}
	if n.bgcolor != "#222222" || n.fontColor != "#eeeeee" {
		t.Errorf("colors = %s / %s", n.bgcolor, n.fontColor)
	}
	if n.heading != "Topology" {
		t.Errorf("heading = %s", n.heading)
	}
	if !n.Notebook() {
		t.Error("notebook flag not set")
	}
}

func TestDirectedPropagates(t *testing.T) {
	n := New(WithDirected())
	if _, err := n.AddNode("a", nil); err != nil {
		t.Fatal(err)
	}
	if _, err := n.AddNode("b", nil); err != nil {
		t.Fatal(err)
	}
	edge, err := n.AddEdge("a", "b", nil)
	if err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if edge.Attrs["arrows"] != "to" {
		t.Error("directed network should arrow its edges")
	}

	adj := n.AdjacencyList()
	if len(adj["a"]) != 1 || len(adj["b"]) != 0 {
		t.Errorf("adjacency = %v, want out-neighbors only", adj)
	}
}

func TestStrictEndpointsDefault(t *testing.T) {
	n := New()
	if _, err := n.AddNode("a", nil); err != nil {
		t.Fatal(err)
	}
	if _, err := n.AddEdge("a", "ghost", nil); !errors.Is(err, graph.ErrUnknownEndpoint) {
		t.Errorf("AddEdge to undeclared node = %v, want ErrUnknownEndpoint", err)
	}
}

func TestAutoEndpoints(t *testing.T) {
	n := New(WithAutoEndpoints())
	if _, err := n.AddEdge("a", "b", nil); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if n.Graph().NumNodes() != 2 {
		t.Errorf("nodes = %d, want 2", n.Graph().NumNodes())
	}
}

func TestFontColorApplied(t *testing.T) {
	n := New(WithFontColor("#336699"))
	node, err := n.AddNode("a", nil)
	if err != nil {
		t.Fatal(err)
	}
	font, ok := node.Attrs["font"].(map[string]any)
	if !ok || font["color"] != "#336699" {
		t.Errorf("font attr = %v, want color #336699", node.Attrs["font"])
	}

	// Explicit per-node font wins.
	custom, err := n.AddNode("b", graph.Attrs{"font": map[string]any{"color": "red"}})
	if err != nil {
		t.Fatal(err)
	}
	font = custom.Attrs["font"].(map[string]any)
	if font["color"] != "red" {
		t.Errorf("per-node font overridden: %v", font)
	}
}

func TestHierarchicalLayout(t *testing.T) {
	n := New(WithHierarchicalLayout())
	if n.Options().Layout == nil {
		t.Fatal("hierarchical layout not configured")
	}
	if !n.Options().Layout.Hierarchical.Enabled {
		t.Error("hierarchical layout should be enabled")
	}
}

func TestSolverHelpers(t *testing.T) {
	n := New()

	n.BarnesHut(options.DefaultBarnesHut())
	if n.Options().Physics.Solver != "barnesHut" {
		t.Errorf("solver = %s", n.Options().Physics.Solver)
	}
	n.ForceAtlas2Based(options.DefaultForceAtlas2Based())
	if n.Options().Physics.Solver != "forceAtlas2Based" {
		t.Errorf("solver = %s", n.Options().Physics.Solver)
	}
	if n.Options().Physics.BarnesHut != nil {
		t.Error("switching solvers should clear the previous block")
	}
	n.HRepulsion(options.DefaultHierarchicalRepulsion())
	if n.Options().Physics.Solver != "hierarchicalRepulsion" {
		t.Errorf("solver = %s", n.Options().Physics.Solver)
	}
}

func TestToggles(t *testing.T) {
	n := New()

	n.TogglePhysics(false)
	if n.Options().Physics.Enabled {
		t.Error("TogglePhysics(false) ignored")
	}
	n.ToggleStabilization(false)
	if n.Options().Physics.Stabilization.Enabled {
		t.Error("ToggleStabilization(false) ignored")
	}
	n.ToggleDragNodes(false)
	if n.Options().Interaction.DragNodes {
		t.Error("ToggleDragNodes(false) ignored")
	}
	n.ToggleHideEdgesOnDrag(true)
	if !n.Options().Interaction.HideEdgesOnDrag {
		t.Error("ToggleHideEdgesOnDrag(true) ignored")
	}
	n.SetEdgeSmooth("continuous")
	if n.Options().Edges.Smooth.Type != "continuous" {
		t.Errorf("smooth type = %s", n.Options().Edges.Smooth.Type)
	}
	n.InheritEdgeColors(false)
	if n.Options().Edges.Color.Inherit != false {
		t.Errorf("inherit = %v", n.Options().Edges.Color.Inherit)
	}
}

func TestGenerateHTML(t *testing.T) {
	n := New(WithHeading("Cluster"))
	if _, err := n.AddNode(0, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := n.AddNode(1, graph.Attrs{"color": "#00ff00"}); err != nil {
		t.Fatal(err)
	}
	if _, err := n.AddEdge(0, 1, nil); err != nil {
		t.Fatal(err)
	}

	html, err := n.GenerateHTML()
	if err != nil {
		t.Fatalf("GenerateHTML: %v", err)
	}
	for _, want := range []string{
		"Cluster",
		`"id":"0"`,
		`"color":"#00ff00"`,
		`"from":"0","to":"1"`,
		`"physics"`,
		"new vis.Network",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestGenerateHTMLRawOptions(t *testing.T) {
	n := New()
	if _, err := n.AddNode("a", nil); err != nil {
		t.Fatal(err)
	}
	if err := n.SetOptions(`var options = {"physics": {"enabled": false}}`); err != nil {
		t.Fatalf("SetOptions: %v", err)
	}

	html, err := n.GenerateHTML()
	if err != nil {
		t.Fatalf("GenerateHTML: %v", err)
	}
	if !strings.Contains(html, `{"physics": {"enabled": false}}`) {
		t.Error("raw options not passed through")
	}
	if strings.Contains(html, "netvis-loading") {
		t.Error("loading bar should follow the raw physics override")
	}
}

func TestShowButtons(t *testing.T) {
	n := New()
	n.ShowButtons("physics", "nodes")

	if n.Options().Configure == nil || !n.Options().Configure.Enabled {
		t.Fatal("configure block not enabled")
	}
	js, err := n.Options().JSON()
	if err != nil {
		t.Fatal(err)
	}
	var decoded struct {
		Configure struct {
			Enabled bool     `json:"enabled"`
			Filter  []string `json:"filter"`
		} `json:"configure"`
	}
	if err := json.Unmarshal([]byte(js), &decoded); err != nil {
		t.Fatalf("options JSON invalid: %v", err)
	}
	if !decoded.Configure.Enabled {
		t.Error("configure not enabled in options JSON")
	}
	if want := []string{"physics", "nodes"}; !reflect.DeepEqual(decoded.Configure.Filter, want) {
		t.Errorf("filter = %v, want %v", decoded.Configure.Filter, want)
	}
}

func TestFromDOT(t *testing.T) {
	n := New()
	n.FromDOT("digraph {\n  a -> b;\n}")

	html, err := n.GenerateHTML()
	if err != nil {
		t.Fatalf("GenerateHTML: %v", err)
	}
	if !strings.Contains(html, "vis.parseDOTNetwork") {
		t.Error("DOT mode should parse client-side")
	}
	if !strings.Contains(html, "digraph { a -\\u003e b; }") {
		t.Error("collapsed DOT source missing from document")
	}
}

func TestWriteHTML(t *testing.T) {
	n := New()
	if _, err := n.AddNode("a", nil); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "net.html")
	if err := n.WriteHTML(path); err != nil {
		t.Fatalf("WriteHTML: %v", err)
	}

	if err := n.WriteHTML(filepath.Join(t.TempDir(), "net.txt")); !errors.Is(err, htmldoc.ErrNotHTML) {
		t.Errorf("WriteHTML to .txt = %v, want ErrNotHTML", err)
	}
}

func TestEmbedHTML(t *testing.T) {
	n := New(WithNotebook(), WithSize("400px", "600px"))
	if _, err := n.AddNode("a", nil); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "embed.html")
	frame, err := n.Show(path)
	if err != nil {
		t.Fatalf("Show: %v", err)
	}
	for _, want := range []string{"<iframe", `width="600px"`, `height="400px"`} {
		if !strings.Contains(frame, want) {
			t.Errorf("frame missing %q: %s", want, frame)
		}
	}
}

func TestImportAppliesFontColor(t *testing.T) {
	n := New(WithFontColor("#101010"), WithAutoEndpoints())
	src := stubSource{
		nodes: []graph.SourceNode{{ID: 1}, {ID: 2}},
		edges: []graph.SourceEdge{{From: 1, To: 2}},
	}
	if err := n.Import(src); err != nil {
		t.Fatalf("Import: %v", err)
	}
	node, err := n.GetNode(1)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := node.Attrs["font"]; !ok {
		t.Error("imported node missing network font color")
	}
}

type stubSource struct {
	nodes []graph.SourceNode
	edges []graph.SourceEdge
}

func (s stubSource) Nodes() []graph.SourceNode { return s.nodes }
func (s stubSource) Edges() []graph.SourceEdge { return s.edges }
