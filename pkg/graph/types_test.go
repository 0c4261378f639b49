package graph

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestMarshalRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Graph
	}{
		{
			name:  "Empty",
			build: func() *Graph { return New() },
		},
		{
			name: "Simple",
			build: func() *Graph {
				g := New()
				g.AddNode("a", Attrs{"color": "#00ff1e"})
				g.AddNode("b", Attrs{"label": "Node B", "size": 12.0})
				g.AddEdge("a", "b", Attrs{"width": 2.0})
				return g
			},
		},
		{
			name: "Directed",
			build: func() *Graph {
				g := New(WithDirected())
				g.AddNode(1, nil)
				g.AddNode(2, nil)
				g.AddEdge(1, 2, nil)
				return g
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := tt.build()

			data, err := Marshal(g)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}

			got, err := Read(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("Read: %v", err)
			}

			if got.NumNodes() != g.NumNodes() || got.NumEdges() != g.NumEdges() {
				t.Fatalf("round trip: %d nodes / %d edges, want %d / %d",
					got.NumNodes(), got.NumEdges(), g.NumNodes(), g.NumEdges())
			}
			if got.Directed() != g.Directed() {
				t.Error("directed flag lost in round trip")
			}
			if !reflect.DeepEqual(got.NodeIDs(), g.NodeIDs()) {
				t.Errorf("node order = %v, want %v", got.NodeIDs(), g.NodeIDs())
			}
		})
	}
}

func TestMarshalPreservesAttrs(t *testing.T) {
	g := New()
	g.AddNode("a", Attrs{"color": "red", "custom_hint": "opaque"})

	data, err := Marshal(g)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	doc, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if doc.Nodes[0].Attrs["custom_hint"] != "opaque" {
		t.Errorf("custom_hint = %v, want opaque", doc.Nodes[0].Attrs["custom_hint"])
	}
	if doc.Nodes[0].Label != "a" || doc.Nodes[0].Shape != "dot" {
		t.Error("defaults should be serialized explicitly")
	}
}

func TestBuildValidates(t *testing.T) {
	tests := []struct {
		name    string
		doc     Document
		wantErr error
	}{
		{
			name: "DuplicateNode",
			doc: Document{
				Nodes: []Node{{ID: "a"}, {ID: "a"}},
			},
			wantErr: ErrDuplicateID,
		},
		{
			name: "DanglingEdge",
			doc: Document{
				Nodes: []Node{{ID: "a"}},
				Edges: []Edge{{From: "a", To: "ghost"}},
			},
			wantErr: ErrUnknownEndpoint,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Build(tt.doc); !errors.Is(err, tt.wantErr) {
				t.Errorf("Build error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestReadWriteFile(t *testing.T) {
	g := New()
	g.AddNodes([]string{"a", "b"}, nil)
	g.AddEdge("a", "b", nil)

	path := filepath.Join(t.TempDir(), "graph.json")
	if err := WriteFile(g, path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got.NumNodes() != 2 || got.NumEdges() != 1 {
		t.Errorf("read back %d nodes / %d edges, want 2 / 1", got.NumNodes(), got.NumEdges())
	}

	// Output must be valid indented JSON.
	data, _ := os.ReadFile(path)
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("ReadFile should fail for a missing file")
	}
}
