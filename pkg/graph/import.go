package graph

import "fmt"

// SourceNode is one node offered by an external graph representation.
type SourceNode struct {
	ID    any
	Attrs Attrs
}

// SourceEdge is one edge offered by an external graph representation.
type SourceEdge struct {
	From  any
	To    any
	Attrs Attrs
}

// Source is the capability interface for ingesting an external graph.
// Any representation that can enumerate its nodes with attribute mappings
// and its edges with endpoint identities can be imported; no other
// contract is assumed.
type Source interface {
	Nodes() []SourceNode
	Edges() []SourceEdge
}

// Import copies every node and edge of src into the graph. Recognized
// attribute keys (label, shape, and the bulk allow-list) are applied as
// usual; unrecognized keys are preserved verbatim in the attribute bags
// and passed through to the export step unchanged.
//
// Nodes whose identity already exists are skipped, so sources that
// enumerate endpoint nodes repeatedly import cleanly. Edge endpoints that
// name nodes absent from both src and the graph follow the graph's
// endpoint policy.
func (g *Graph) Import(src Source) error {
	for _, sn := range src.Nodes() {
		key, err := coerceID(sn.ID)
		if err != nil {
			return fmt.Errorf("import node: %w", err)
		}
		if _, exists := g.index[key]; exists {
			continue
		}
		g.insertNode(key, sn.Attrs)
	}
	for _, se := range src.Edges() {
		if _, err := g.AddEdge(se.From, se.To, se.Attrs); err != nil {
			return fmt.Errorf("import edge: %w", err)
		}
	}
	return nil
}
