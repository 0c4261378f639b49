// Package render provides output generation for graph registries.
//
// # Overview
//
// This package groups the two rendering backends:
//
//   - Interactive HTML documents (in [htmldoc] subpackage)
//   - Static Graphviz previews (in [dotpreview] subpackage)
//
// # HTML Documents
//
// The [htmldoc] subpackage renders a network into a self-contained HTML
// page that loads vis-network and instantiates the graph client-side. It
// also produces iframe snippets for notebook embedding.
//
//	data := htmldoc.Data{Height: "600px", Width: "100%"}
//	html, err := htmldoc.Render(data)
//
// # DOT Previews
//
// The [dotpreview] subpackage emits Graphviz DOT from a registry and
// renders static SVG or PNG previews via goccy/go-graphviz. Previews are
// useful for thumbnails and terminals where a browser is unavailable.
//
//	dot := dotpreview.ToDOT(g)
//	svg, err := dotpreview.RenderSVG(ctx, dot)
//
// [htmldoc]: github.com/vizlab/netvis/pkg/render/htmldoc
// [dotpreview]: github.com/vizlab/netvis/pkg/render/dotpreview
package render
