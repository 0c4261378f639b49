package graph

import "fmt"

// bulkAttrKeys is the fixed allow-list of attribute keys accepted by
// [Graph.AddNodes].
var bulkAttrKeys = map[string]bool{
	"size":  true,
	"value": true,
	"title": true,
	"x":     true,
	"y":     true,
	"label": true,
	"color": true,
	"shape": true,
}

// BulkAttrs maps a recognized attribute key to one value per supplied ID.
type BulkAttrs map[string][]any

// coerceIDs expands the polymorphic id collection accepted by
// [Graph.AddNodes] into canonical string identities.
func coerceIDs(ids any) ([]string, error) {
	switch v := ids.(type) {
	case string:
		// A bare string is split into one node per character. This mirrors
		// iterating a string: each character is its own identity.
		out := make([]string, 0, len(v))
		for _, r := range v {
			out = append(out, string(r))
		}
		return out, nil
	case []string:
		out := make([]string, len(v))
		for i, s := range v {
			key, err := coerceID(s)
			if err != nil {
				return nil, err
			}
			out[i] = key
		}
		return out, nil
	case []int:
		out := make([]string, len(v))
		for i, n := range v {
			out[i], _ = coerceID(n)
		}
		return out, nil
	case []any:
		out := make([]string, len(v))
		for i, id := range v {
			key, err := coerceID(id)
			if err != nil {
				return nil, err
			}
			out[i] = key
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: bulk IDs must be a string, []string, []int, or []any, got %T", ErrInvalidID, ids)
	}
}

// AddNodes inserts multiple nodes at once. The ids argument may be a
// []string, []int, []any of string/number identities, or a bare string
// whose characters become individual identities.
//
// Each key of attrs must be in the allow-list (size, value, title, x, y,
// label, color, shape) and supply exactly one value per id; the value at
// index i is attached to the node at index i.
//
// Unknown keys ([ErrUnknownAttr]) and length disagreements
// ([ErrLengthMismatch]) are detected before any node is inserted, so a
// failed call does not mutate the graph. Identities already present - in
// the registry or earlier in the same batch - are skipped, so character
// splitting of strings with repeated characters stays usable.
func (g *Graph) AddNodes(ids any, attrs BulkAttrs) ([]*Node, error) {
	keys, err := coerceIDs(ids)
	if err != nil {
		return nil, err
	}

	for k, values := range attrs {
		if !bulkAttrKeys[k] {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAttr, k)
		}
		if len(values) != len(keys) {
			return nil, fmt.Errorf("%w: %q has %d values for %d IDs",
				ErrLengthMismatch, k, len(values), len(keys))
		}
	}

	var nodes []*Node
	for i, key := range keys {
		if _, exists := g.index[key]; exists {
			continue
		}
		var bag Attrs
		if len(attrs) > 0 {
			bag = make(Attrs, len(attrs))
			for k, values := range attrs {
				bag[k] = values[i]
			}
		}
		nodes = append(nodes, g.insertNode(key, bag))
	}
	return nodes, nil
}
