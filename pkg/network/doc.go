// Package network is the user-facing assembly point of the library: it
// ties a graph registry to a physics/layout options object and the
// global display configuration, and exports the result as a
// self-contained HTML document.
//
// A typical session builds a network, populates it, and writes the
// artifact:
//
//	net := network.New(network.WithHeading("Deps"))
//	net.AddNode(1, graph.Attrs{"label": "core"})
//	net.AddNode(2, nil)
//	net.AddEdge(1, 2, nil)
//	net.WriteHTML("deps.html")
//
// Display configuration (size, colors, heading) lives on the Network;
// per-node and per-edge attributes live in the registry; simulation
// behavior lives in the options object, reachable via Options() or the
// helper methods (BarnesHut, TogglePhysics, SetEdgeSmooth, ...).
package network
