// Package graph implements the node/edge registry backing netvis networks.
//
// A [Graph] accumulates uniquely identified nodes and (from, to) edges in
// insertion order, together with open attribute bags of visualization
// hints. It enforces the registry invariants - unique node identities,
// declared edge endpoints, consistent bulk attribute vectors - and exposes
// the read operations (lookup, adjacency listing) callers need before
// handing the data to the HTML emitter.
//
// # Identities
//
// Node identities may be supplied as strings or any numeric type and are
// stored in canonical string form. A node's label defaults to the string
// form of its identity and its shape defaults to "dot".
//
// # Edge endpoints
//
// By default an edge may only connect nodes that already exist; adding an
// edge with an unknown endpoint fails with [ErrUnknownEndpoint]. Building
// the graph with [WithAutoEndpoints] switches to implicit creation of
// missing endpoints as bare nodes. Parallel edges between the same pair
// are permitted.
//
// # Serialization
//
// Graphs serialize to a node-link JSON document:
//
//	{
//	  "nodes": [{"id": "a", "label": "a", "shape": "dot"}],
//	  "edges": [{"from": "a", "to": "b"}]
//	}
//
// Common operations:
//
//	g, _ := graph.ReadFile("graph.json")   // File → Graph
//	graph.WriteFile(g, "out.json")         // Graph → File
//	data, _ := graph.Marshal(g)            // Graph → []byte
//	doc, _ := graph.Unmarshal(data)        // []byte → Document
//
// # Concurrency
//
// A Graph is a plain in-process value: safe for concurrent reads, not for
// concurrent mutation.
package graph
