package network

import (
	"fmt"
	"strings"

	"github.com/vizlab/netvis/pkg/graph"
	"github.com/vizlab/netvis/pkg/options"
	"github.com/vizlab/netvis/pkg/render/htmldoc"
)

// Default display configuration, matching the library's canvas defaults.
const (
	DefaultHeight  = "600px"
	DefaultWidth   = "100%"
	DefaultBGColor = "#ffffff"
)

// Network ties a graph registry to an options object and the global
// display configuration, and produces the final HTML artifact. All
// visualization functionality hangs off a Network instance.
//
// A Network is an explicit, independently constructible value: multiple
// independent networks can coexist in one process.
type Network struct {
	graph *graph.Graph
	opts  *options.Options

	height    string
	width     string
	heading   string
	bgcolor   string
	fontColor string
	directed  bool
	notebook  bool

	selectMenu            bool
	neighborhoodHighlight bool
	configure             bool

	dot       string
	scriptURL string
	styleURL  string
}

// Option configures a Network at construction time. The options mirror
// the display knobs a caller would otherwise set field by field: canvas
// size, directedness, colors, heading, notebook surfacing, hierarchical
// layout, and endpoint policy.
type Option func(*Network, *[]graph.Option)

// WithSize sets the canvas height and width (CSS lengths, e.g. "600px",
// "100%").
func WithSize(height, width string) Option {
	return func(n *Network, _ *[]graph.Option) {
		n.height = height
		n.width = width
	}
}

// WithDirected makes the network directed: edges render arrows and
// adjacency reports out-neighbors.
func WithDirected() Option {
	return func(n *Network, gopts *[]graph.Option) {
		n.directed = true
		*gopts = append(*gopts, graph.WithDirected())
	}
}

// WithAutoEndpoints lets AddEdge create missing endpoints as bare nodes.
func WithAutoEndpoints() Option {
	return func(_ *Network, gopts *[]graph.Option) {
		*gopts = append(*gopts, graph.WithAutoEndpoints())
	}
}

// WithBGColor sets the canvas background color.
func WithBGColor(color string) Option {
	return func(n *Network, _ *[]graph.Option) { n.bgcolor = color }
}

// WithFontColor sets the node label text color.
func WithFontColor(color string) Option {
	return func(n *Network, _ *[]graph.Option) { n.fontColor = color }
}

// WithHeading sets the document heading.
func WithHeading(heading string) Option {
	return func(n *Network, _ *[]graph.Option) { n.heading = heading }
}

// WithNotebook switches the export surface to notebook embedding:
// WriteHTML still writes the file, and EmbedHTML returns an inline frame
// snippet pointing at it.
func WithNotebook() Option {
	return func(n *Network, _ *[]graph.Option) { n.notebook = true }
}

// WithHierarchicalLayout enables the hierarchical layout module.
func WithHierarchicalLayout() Option {
	return func(n *Network, _ *[]graph.Option) {
		n.opts = options.New(true)
	}
}

// WithCDN overrides the pinned CDN URLs for the library script and
// stylesheet.
func WithCDN(scriptURL, styleURL string) Option {
	return func(n *Network, _ *[]graph.Option) {
		n.scriptURL = scriptURL
		n.styleURL = styleURL
	}
}

// New creates a network with an empty registry and default options.
func New(opts ...Option) *Network {
	n := &Network{
		opts:    options.New(false),
		height:  DefaultHeight,
		width:   DefaultWidth,
		bgcolor: DefaultBGColor,
	}
	var gopts []graph.Option
	for _, opt := range opts {
		opt(n, &gopts)
	}
	n.graph = graph.New(gopts...)
	return n
}

// Graph returns the underlying registry for direct access.
func (n *Network) Graph() *graph.Graph { return n.graph }

// Options returns the options object for direct manipulation.
func (n *Network) Options() *options.Options { return n.opts }

// String summarizes the network for debugging.
func (n *Network) String() string {
	return fmt.Sprintf("Network |N|=%d |E|=%d (%s × %s)",
		n.graph.NumNodes(), n.graph.NumEdges(), n.width, n.height)
}

// =============================================================================
// Registry Delegation
// =============================================================================

// AddNode inserts one node, applying the network-level font color when the
// node does not carry its own font attribute.
func (n *Network) AddNode(id any, attrs graph.Attrs) (*graph.Node, error) {
	node, err := n.graph.AddNode(id, attrs)
	if err != nil {
		return nil, err
	}
	n.applyFontColor(node)
	return node, nil
}

// AddNodes inserts multiple nodes; see the registry's bulk semantics.
func (n *Network) AddNodes(ids any, attrs graph.BulkAttrs) ([]*graph.Node, error) {
	nodes, err := n.graph.AddNodes(ids, attrs)
	if err != nil {
		return nil, err
	}
	for _, node := range nodes {
		n.applyFontColor(node)
	}
	return nodes, nil
}

// AddEdge inserts one edge between declared nodes.
func (n *Network) AddEdge(from, to any, attrs graph.Attrs) (*graph.Edge, error) {
	return n.graph.AddEdge(from, to, attrs)
}

// AddEdges inserts multiple edges.
func (n *Network) AddEdges(links []graph.Link) error {
	return n.graph.AddEdges(links)
}

// GetNode looks a node up by identity.
func (n *Network) GetNode(id any) (*graph.Node, error) {
	return n.graph.GetNode(id)
}

// AdjacencyList returns the derived neighbor mapping.
func (n *Network) AdjacencyList() map[string][]string {
	return n.graph.AdjacencyList()
}

// Neighbors returns the neighbor identities of one node.
func (n *Network) Neighbors(id any) ([]string, error) {
	return n.graph.Neighbors(id)
}

// Import ingests an external graph representation.
func (n *Network) Import(src graph.Source) error {
	if err := n.graph.Import(src); err != nil {
		return err
	}
	if n.fontColor != "" {
		for _, node := range n.graph.Nodes() {
			n.applyFontColor(node)
		}
	}
	return nil
}

func (n *Network) applyFontColor(node *graph.Node) {
	if n.fontColor == "" {
		return
	}
	if node.Attrs == nil {
		node.Attrs = graph.Attrs{}
	}
	if _, ok := node.Attrs["font"]; !ok {
		node.Attrs["font"] = map[string]any{"color": n.fontColor}
	}
}

// =============================================================================
// Options Helpers
// =============================================================================

// BarnesHut selects the quadtree gravity solver.
func (n *Network) BarnesHut(params options.BarnesHut) {
	n.opts.Physics.UseBarnesHut(params)
}

// ForceAtlas2Based selects the forceAtlas2Based solver.
func (n *Network) ForceAtlas2Based(params options.ForceAtlas2Based) {
	n.opts.Physics.UseForceAtlas2Based(params)
}

// Repulsion selects the repulsion solver.
func (n *Network) Repulsion(params options.Repulsion) {
	n.opts.Physics.UseRepulsion(params)
}

// HRepulsion selects the hierarchicalRepulsion solver.
func (n *Network) HRepulsion(params options.HierarchicalRepulsion) {
	n.opts.Physics.UseHierarchicalRepulsion(params)
}

// TogglePhysics switches the physics simulation on or off.
func (n *Network) TogglePhysics(enabled bool) {
	n.opts.Physics.Enabled = enabled
}

// ToggleStabilization switches pre-paint stabilization on or off.
func (n *Network) ToggleStabilization(enabled bool) {
	n.opts.Physics.Stabilization.Enabled = enabled
}

// ToggleDragNodes switches node dragging on or off.
func (n *Network) ToggleDragNodes(enabled bool) {
	n.opts.Interaction.DragNodes = enabled
}

// ToggleHideEdgesOnDrag hides edges while panning for large networks.
func (n *Network) ToggleHideEdgesOnDrag(hide bool) {
	n.opts.Interaction.HideEdgesOnDrag = hide
}

// ToggleHideNodesOnDrag hides nodes while panning.
func (n *Network) ToggleHideNodesOnDrag(hide bool) {
	n.opts.Interaction.HideNodesOnDrag = hide
}

// SetEdgeSmooth sets the edge smoothing type (dynamic, continuous,
// discrete, diagonalCross, straightCross, horizontal, vertical, curvedCW,
// curvedCCW, cubicBezier).
func (n *Network) SetEdgeSmooth(smoothType string) {
	n.opts.Edges.Smooth.Enabled = true
	n.opts.Edges.Smooth.Type = smoothType
}

// InheritEdgeColors controls whether edges take the color of their source
// node.
func (n *Network) InheritEdgeColors(inherit bool) {
	n.opts.Edges.Color.Inherit = inherit
}

// ShowButtons enables the in-page options editor. With no filter every
// section is shown; otherwise only the named sections (nodes, edges,
// layout, interaction, manipulation, physics, selection, renderer).
func (n *Network) ShowButtons(filter ...string) {
	n.configure = true
	n.opts.Configure = &options.Configure{Enabled: true, Filter: filter}
}

// SetOptions replaces the options object with a raw JSON override,
// typically pasted from the in-browser editor.
func (n *Network) SetOptions(raw string) error {
	return n.opts.SetRaw(raw)
}

// EnableSelectMenu adds a node selection menu to the document.
func (n *Network) EnableSelectMenu() { n.selectMenu = true }

// EnableNeighborhoodHighlight dims everything but the selected node's
// neighborhood on click.
func (n *Network) EnableNeighborhoodHighlight() { n.neighborhoodHighlight = true }

// FromDOT switches the document to DOT pass-through mode: the source is
// embedded and parsed client-side by the library, and the registry
// content is ignored for rendering.
func (n *Network) FromDOT(dot string) {
	n.dot = strings.Join(strings.Fields(dot), " ")
}

// DOT returns the pass-through source set by [Network.FromDOT], or the
// empty string when the network renders from the registry.
func (n *Network) DOT() string { return n.dot }

// =============================================================================
// Export
// =============================================================================

// documentData assembles the template payload from the registry state.
func (n *Network) documentData() (htmldoc.Data, error) {
	optsJSON, err := n.opts.JSON()
	if err != nil {
		return htmldoc.Data{}, err
	}

	d := htmldoc.Data{
		Heading:               n.heading,
		Height:                n.height,
		Width:                 n.width,
		BGColor:               n.bgcolor,
		FontColor:             n.fontColor,
		OptionsJSON:           optsJSON,
		PhysicsEnabled:        n.opts.PhysicsEnabled(),
		Configure:             n.configure,
		SelectMenu:            n.selectMenu,
		NeighborhoodHighlight: n.neighborhoodHighlight,
		DOT:                   n.dot,
		ScriptURL:             n.scriptURL,
		StyleURL:              n.styleURL,
	}

	if n.dot == "" {
		nodes := n.graph.Nodes()
		edges := n.graph.Edges()
		d.Nodes = make([]map[string]any, len(nodes))
		for i, node := range nodes {
			d.Nodes[i] = node.Data()
		}
		d.Edges = make([]map[string]any, len(edges))
		for i, edge := range edges {
			d.Edges[i] = edge.Data()
		}
	}
	return d, nil
}

// GenerateHTML renders the network into a complete HTML document.
func (n *Network) GenerateHTML() (string, error) {
	d, err := n.documentData()
	if err != nil {
		return "", err
	}
	return htmldoc.Render(d)
}

// WriteHTML renders the network and writes it to path. The path must end
// in .html.
func (n *Network) WriteHTML(path string) error {
	d, err := n.documentData()
	if err != nil {
		return err
	}
	return htmldoc.WriteFile(d, path)
}

// EmbedHTML writes the document next to the caller and returns an inline
// frame snippet for notebook-style surfacing. The registry semantics are
// unchanged; only how the artifact is surfaced differs.
func (n *Network) EmbedHTML(path string) (string, error) {
	if err := n.WriteHTML(path); err != nil {
		return "", err
	}
	return htmldoc.IFrame(path, n.width, n.height), nil
}

// Notebook reports whether the network was built for notebook embedding.
func (n *Network) Notebook() bool { return n.notebook }

// Show writes the document to path. In notebook mode it returns the
// inline frame snippet; otherwise it returns the empty string.
func (n *Network) Show(path string) (string, error) {
	if n.notebook {
		return n.EmbedHTML(path)
	}
	if err := n.WriteHTML(path); err != nil {
		return "", err
	}
	return "", nil
}

// SaveGraph is an alias for WriteHTML kept for symmetry with the
// serialization helpers.
func (n *Network) SaveGraph(path string) error { return n.WriteHTML(path) }

// WriteGraphJSON serializes the registry (not the document) to a JSON
// file, so a network can be rebuilt or served later.
func (n *Network) WriteGraphJSON(path string) error {
	return graph.WriteFile(n.graph, path)
}

