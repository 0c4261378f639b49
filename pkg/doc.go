// Package pkg provides the core libraries for netvis graph visualization.
//
// # Overview
//
// Netvis turns graph registries into interactive vis-network HTML pages and
// static Graphviz previews. The pkg directory is organized into four main
// areas:
//
//  1. [graph] - The registry: nodes, edges, attribute bags, serialization
//  2. [network] / [options] - User-facing assembly and vis.js configuration
//  3. [render] - Output generation (HTML documents, DOT previews)
//  4. [pipeline] / [server] / [store] / [cache] - Orchestration and persistence
//
// # Architecture
//
// The typical data flow through netvis:
//
//	Graph file (JSON / DOT)
//	         ↓
//	    [graph] package (registry construction + validation)
//	         ↓
//	    [network] package (display assembly, physics, menus)
//	         ↓
//	    [render/htmldoc] or [render/dotpreview]
//	         ↓
//	    HTML / SVG / PNG output
//
// # Quick Start
//
// Build a network and write it to an HTML page:
//
//	import "github.com/vizlab/netvis/pkg/network"
//
//	net := network.New(network.WithDirected(), network.WithHeading("Services"))
//	net.AddNode("gateway", nil)
//	net.AddNode("auth", map[string]any{"color": "#d94a4a"})
//	net.AddEdge("gateway", "auth", nil)
//	if err := net.WriteHTML("services.html"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Main Packages
//
// [graph] - The graph registry. Node and edge declaration with attribute
// bags, endpoint validation, adjacency queries, external graph import, and
// the JSON document format used by files, the store, and the cache.
//
// [options] - Typed vis.js option groups (physics solvers, hierarchical
// layout, interaction, configure panel) plus raw JSON passthrough.
//
// [network] - User-facing assembly layer tying a registry to display
// options and producing HTML documents or notebook iframes.
//
// [render/htmldoc] - HTML document generation from Go templates, loading
// vis-network from a CDN or custom URLs.
//
// [render/dotpreview] - Graphviz DOT emission and static SVG/PNG preview
// rendering via goccy/go-graphviz.
//
// [pipeline] - Load, assemble, and render stages with artifact caching.
// Used by the CLI and the server so both produce identical output.
//
// [server] - HTTP viewer over a document store: create, list, view, and
// delete stored graphs, rendering pages on demand.
//
// [store] - Document persistence. MemoryStore for tests and single-process
// servers, MongoStore for durable deployments.
//
// [cache] - Rendered artifact caching with file and Redis backends, content
// hashing, scoped keys, and retry helpers.
//
// [observability] - Hook interfaces for pipeline, cache, and HTTP events
// with no-op defaults.
//
// [buildinfo] - Version metadata injected at build time.
package pkg
