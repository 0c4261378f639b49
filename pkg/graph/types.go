package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Document - Graph Serialization
// =============================================================================

// Document is the canonical serialization format for graph registries.
// Used for files, API payloads, storage, and caching.
//
// The format is human-readable and designed for round-trip fidelity:
// build → export → re-import produces an identical registry. Node and edge
// order is preserved because it drives rendering order.
type Document struct {
	Directed bool   `json:"directed,omitempty" bson:"directed,omitempty"`
	Nodes    []Node `json:"nodes" bson:"nodes"`
	Edges    []Edge `json:"edges" bson:"edges"`
}

// Export converts a registry to its serialization format.
func Export(g *Graph) Document {
	doc := Document{
		Directed: g.directed,
		Nodes:    make([]Node, len(g.nodes)),
		Edges:    make([]Edge, len(g.edges)),
	}
	for i, n := range g.nodes {
		doc.Nodes[i] = *n
		doc.Nodes[i].Attrs = n.Attrs.clone()
	}
	for i, e := range g.edges {
		doc.Edges[i] = *e
		doc.Edges[i].Attrs = e.Attrs.clone()
	}
	return doc
}

// Build converts a document back into a live registry. Returns an error if
// the document violates registry invariants (duplicate identities, edges
// referencing undeclared nodes).
func Build(doc Document, opts ...Option) (*Graph, error) {
	if doc.Directed {
		opts = append(opts, WithDirected())
	}
	g := New(opts...)
	for _, n := range doc.Nodes {
		attrs := n.Attrs.clone()
		if attrs == nil {
			attrs = Attrs{}
		}
		if n.Label != "" {
			attrs["label"] = n.Label
		}
		if n.Shape != "" {
			attrs["shape"] = n.Shape
		}
		if _, err := g.AddNode(n.ID, attrs); err != nil {
			return nil, fmt.Errorf("add node %s: %w", n.ID, err)
		}
	}
	for _, e := range doc.Edges {
		if _, err := g.AddEdge(e.From, e.To, e.Attrs); err != nil {
			return nil, fmt.Errorf("add edge %s→%s: %w", e.From, e.To, err)
		}
	}
	return g, nil
}

// =============================================================================
// Serialization API
// =============================================================================

// Marshal converts a registry to indented JSON bytes.
func Marshal(g *Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal deserializes JSON bytes to a Document.
func Unmarshal(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Write writes a registry as JSON to an io.Writer.
func Write(g *Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Export(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Read decodes a JSON graph document from an io.Reader into a registry.
func Read(r io.Reader, opts ...Option) (*Graph, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return Build(doc, opts...)
}

// WriteFile writes a registry to a JSON file created with 0644 permissions.
func WriteFile(g *Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(g, f)
}

// ReadFile reads a JSON file and returns the decoded registry. Returns
// validation errors for documents that violate registry invariants.
func ReadFile(path string, opts ...Option) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, opts...)
}
