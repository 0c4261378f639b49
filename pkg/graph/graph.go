package graph

import (
	"fmt"
	"strconv"
)

// DefaultShape is the shape applied to nodes that do not specify one.
const DefaultShape = "dot"

// DefaultColor is the color applied to nodes that do not specify one.
const DefaultColor = "#97c2fc"

// Attrs stores arbitrary visualization attributes attached to a node or an
// edge. Values should be strings, numbers, booleans, or nested maps of the
// same - anything that survives a JSON round-trip unchanged.
type Attrs map[string]any

// clone returns a shallow copy so callers cannot mutate registry state
// through the map they passed in.
func (a Attrs) clone() Attrs {
	if a == nil {
		return nil
	}
	out := make(Attrs, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Node is a uniquely identified vertex with a display attribute bag.
// Label and Shape always carry their defaults after insertion; everything
// else lives in Attrs.
type Node struct {
	ID    string `json:"id" bson:"id"`
	Label string `json:"label" bson:"label"`
	Shape string `json:"shape" bson:"shape"`
	Attrs Attrs  `json:"attrs,omitempty" bson:"attrs,omitempty"`
}

// Data flattens the node into the object shape the embedded visualization
// library consumes: id, label, shape, plus every extra attribute.
func (n *Node) Data() map[string]any {
	out := make(map[string]any, len(n.Attrs)+3)
	for k, v := range n.Attrs {
		out[k] = v
	}
	out["id"] = n.ID
	out["label"] = n.Label
	out["shape"] = n.Shape
	return out
}

// Edge is a (from, to) relation between two node identities with its own
// attribute bag. Parallel edges between the same pair are permitted.
type Edge struct {
	From  string `json:"from" bson:"from"`
	To    string `json:"to" bson:"to"`
	Attrs Attrs  `json:"attrs,omitempty" bson:"attrs,omitempty"`
}

// Data flattens the edge into the object shape the embedded visualization
// library consumes.
func (e *Edge) Data() map[string]any {
	out := make(map[string]any, len(e.Attrs)+2)
	for k, v := range e.Attrs {
		out[k] = v
	}
	out["from"] = e.From
	out["to"] = e.To
	return out
}

// Graph is the in-memory registry of declared nodes and edges. Insertion
// order is preserved for both sequences because it drives rendering order.
//
// The zero value is not usable - use [New]. Graph is not safe for
// concurrent mutation without external synchronization.
type Graph struct {
	nodes         []*Node
	index         map[string]*Node
	edges         []*Edge
	directed      bool
	autoEndpoints bool
}

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithDirected makes the graph directed. Directed edges default their
// "arrows" attribute to "to", and adjacency listings report out-neighbors
// only.
func WithDirected() Option {
	return func(g *Graph) { g.directed = true }
}

// WithAutoEndpoints makes [Graph.AddEdge] create missing endpoints as bare
// nodes (default label and shape) instead of failing with
// [ErrUnknownEndpoint].
func WithAutoEndpoints() Option {
	return func(g *Graph) { g.autoEndpoints = true }
}

// New creates an empty graph registry.
func New(opts ...Option) *Graph {
	g := &Graph{index: make(map[string]*Node)}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Directed reports whether the graph is directed.
func (g *Graph) Directed() bool { return g.directed }

// coerceID converts a caller-supplied identity (string or number) to its
// canonical string form.
func coerceID(id any) (string, error) {
	switch v := id.(type) {
	case string:
		if v == "" {
			return "", ErrInvalidID
		}
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	case int8:
		return strconv.FormatInt(int64(v), 10), nil
	case int16:
		return strconv.FormatInt(int64(v), 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	default:
		return "", fmt.Errorf("%w: got %T", ErrInvalidID, id)
	}
}

// AddNode inserts one node. The identity may be a string or any numeric
// type; it is stored in canonical string form. Unset fields receive
// defaults: label is the string form of the identity, shape is
// [DefaultShape], color is [DefaultColor]. Returns [ErrDuplicateID] if
// the identity is already present; a failed call does not mutate the
// graph.
func (g *Graph) AddNode(id any, attrs Attrs) (*Node, error) {
	key, err := coerceID(id)
	if err != nil {
		return nil, err
	}
	if _, exists := g.index[key]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateID, key)
	}
	return g.insertNode(key, attrs), nil
}

// insertNode appends a node that has already passed identity validation.
func (g *Graph) insertNode(key string, attrs Attrs) *Node {
	n := &Node{ID: key, Label: key, Shape: DefaultShape}
	bag := attrs.clone()
	if bag == nil {
		bag = Attrs{}
	}
	if label, ok := bag["label"]; ok {
		n.Label = fmt.Sprint(label)
		delete(bag, "label")
	}
	if shape, ok := bag["shape"].(string); ok && shape != "" {
		n.Shape = shape
		delete(bag, "shape")
	}
	if _, ok := bag["color"]; !ok {
		bag["color"] = DefaultColor
	}
	n.Attrs = bag
	g.nodes = append(g.nodes, n)
	g.index[key] = n
	return n
}

// GetNode looks a node up by identity. Returns [ErrNodeNotFound] on a miss.
func (g *Graph) GetNode(id any) (*Node, error) {
	key, err := coerceID(id)
	if err != nil {
		return nil, err
	}
	n, ok := g.index[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, key)
	}
	return n, nil
}

// Node is the comma-ok variant of [Graph.GetNode].
func (g *Graph) Node(id any) (*Node, bool) {
	key, err := coerceID(id)
	if err != nil {
		return nil, false
	}
	n, ok := g.index[key]
	return n, ok
}

// Has reports whether a node with the given identity exists.
func (g *Graph) Has(id any) bool {
	_, ok := g.Node(id)
	return ok
}

// AddEdge inserts one edge between two declared nodes. Both endpoints must
// already exist unless the graph was built with [WithAutoEndpoints], in
// which case missing endpoints are created as bare nodes first. On a
// directed graph the "arrows" attribute defaults to "to". A failed call
// does not mutate the graph.
func (g *Graph) AddEdge(from, to any, attrs Attrs) (*Edge, error) {
	src, err := coerceID(from)
	if err != nil {
		return nil, err
	}
	dst, err := coerceID(to)
	if err != nil {
		return nil, err
	}

	for _, key := range []string{src, dst} {
		if _, ok := g.index[key]; ok {
			continue
		}
		if !g.autoEndpoints {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEndpoint, key)
		}
		g.insertNode(key, nil)
	}

	e := &Edge{From: src, To: dst, Attrs: attrs.clone()}
	if g.directed {
		if _, ok := e.Attrs["arrows"]; !ok {
			if e.Attrs == nil {
				e.Attrs = Attrs{}
			}
			e.Attrs["arrows"] = "to"
		}
	}
	g.edges = append(g.edges, e)
	return e, nil
}

// Link describes one edge for [Graph.AddEdges]. Width is optional; zero
// means unset.
type Link struct {
	From  any
	To    any
	Width float64
}

// AddEdges inserts multiple edges. The call is all-or-nothing: every
// endpoint is validated before any edge is appended (unless auto-endpoint
// creation is enabled, which cannot fail on endpoints).
func (g *Graph) AddEdges(links []Link) error {
	if !g.autoEndpoints {
		for _, l := range links {
			for _, id := range []any{l.From, l.To} {
				key, err := coerceID(id)
				if err != nil {
					return err
				}
				if _, ok := g.index[key]; !ok {
					return fmt.Errorf("%w: %q", ErrUnknownEndpoint, key)
				}
			}
		}
	}
	for _, l := range links {
		var attrs Attrs
		if l.Width != 0 {
			attrs = Attrs{"width": l.Width}
		}
		if _, err := g.AddEdge(l.From, l.To, attrs); err != nil {
			return err
		}
	}
	return nil
}

// Nodes returns the node sequence in insertion order. The slice must not
// be modified.
func (g *Graph) Nodes() []*Node { return g.nodes }

// Edges returns the edge sequence in insertion order. The slice must not
// be modified.
func (g *Graph) Edges() []*Edge { return g.edges }

// NodeIDs returns the node identities in insertion order.
func (g *Graph) NodeIDs() []string {
	ids := make([]string, len(g.nodes))
	for i, n := range g.nodes {
		ids[i] = n.ID
	}
	return ids
}

// NumNodes returns the number of nodes.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// NumEdges returns the number of edges.
func (g *Graph) NumEdges() int { return len(g.edges) }

// AdjacencyList computes, for every node, the list of neighbor identities
// in edge-insertion order. On undirected graphs an edge contributes both
// directions; on directed graphs only out-neighbors are listed. Neighbor
// lists are de-duplicated, so parallel edges appear once. The result is
// derived on demand and calling it twice without mutation yields identical
// results.
func (g *Graph) AdjacencyList() map[string][]string {
	adj := make(map[string][]string, len(g.nodes))
	seen := make(map[string]map[string]bool, len(g.nodes))
	for _, n := range g.nodes {
		adj[n.ID] = []string{}
		seen[n.ID] = make(map[string]bool)
	}

	appendOnce := func(from, to string) {
		if !seen[from][to] {
			seen[from][to] = true
			adj[from] = append(adj[from], to)
		}
	}

	for _, e := range g.edges {
		appendOnce(e.From, e.To)
		if !g.directed && e.From != e.To {
			appendOnce(e.To, e.From)
		}
	}
	return adj
}

// Neighbors returns the neighbor identities of one node, in edge-insertion
// order. Returns [ErrNodeNotFound] if the node does not exist.
func (g *Graph) Neighbors(id any) ([]string, error) {
	key, err := coerceID(id)
	if err != nil {
		return nil, err
	}
	if _, ok := g.index[key]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, key)
	}
	return g.AdjacencyList()[key], nil
}
