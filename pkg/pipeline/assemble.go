package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/vizlab/netvis/pkg/graph"
	"github.com/vizlab/netvis/pkg/network"
	"github.com/vizlab/netvis/pkg/observability"
)

// Assemble builds a network from a loaded source and the display
// configuration.
func Assemble(ctx context.Context, src Source, opts Options) (net *network.Network, err error) {
	start := time.Now()
	nodes, edges := 0, 0
	if src.Graph != nil {
		nodes, edges = src.Graph.NumNodes(), src.Graph.NumEdges()
	}
	observability.Pipeline().OnAssembleStart(ctx, nodes, edges)
	defer func() {
		observability.Pipeline().OnAssembleComplete(ctx, time.Since(start), err)
	}()

	nopts := []network.Option{
		network.WithSize(opts.Height, opts.Width),
		network.WithBGColor(opts.BGColor),
	}
	if opts.Heading != "" {
		nopts = append(nopts, network.WithHeading(opts.Heading))
	}
	if opts.FontColor != "" {
		nopts = append(nopts, network.WithFontColor(opts.FontColor))
	}
	if opts.Hierarchical {
		nopts = append(nopts, network.WithHierarchicalLayout())
	}
	if opts.Directed || (src.Graph != nil && src.Graph.Directed()) {
		nopts = append(nopts, network.WithDirected())
	}
	nopts = append(nopts, network.WithAutoEndpoints())

	net = network.New(nopts...)

	switch {
	case src.DOT != "":
		net.FromDOT(src.DOT)
	case src.Graph != nil:
		if err := net.Import(registrySource{src.Graph}); err != nil {
			return nil, fmt.Errorf("assemble network: %w", err)
		}
	default:
		return nil, fmt.Errorf("empty source")
	}

	if opts.NoPhysics {
		net.TogglePhysics(false)
	}
	if opts.ShowButtons {
		net.ShowButtons()
	}
	if opts.SelectMenu {
		net.EnableSelectMenu()
	}
	if opts.Highlight {
		net.EnableNeighborhoodHighlight()
	}
	if opts.RawOptions != "" {
		if err := net.SetOptions(opts.RawOptions); err != nil {
			return nil, fmt.Errorf("apply options override: %w", err)
		}
	}
	return net, nil
}

// registrySource adapts a loaded registry to the import interface so the
// assembled network gets its own copy of the nodes and edges.
type registrySource struct {
	g *graph.Graph
}

func (s registrySource) Nodes() []graph.SourceNode {
	nodes := s.g.Nodes()
	out := make([]graph.SourceNode, len(nodes))
	for i, n := range nodes {
		attrs := graph.Attrs{"label": n.Label, "shape": n.Shape}
		for k, v := range n.Attrs {
			attrs[k] = v
		}
		out[i] = graph.SourceNode{ID: n.ID, Attrs: attrs}
	}
	return out
}

func (s registrySource) Edges() []graph.SourceEdge {
	edges := s.g.Edges()
	out := make([]graph.SourceEdge, len(edges))
	for i, e := range edges {
		out[i] = graph.SourceEdge{From: e.From, To: e.To, Attrs: e.Attrs}
	}
	return out
}
