package options

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDefaults(t *testing.T) {
	o := New(false)

	if !o.Physics.Enabled {
		t.Error("physics should be enabled by default")
	}
	if !o.Physics.Stabilization.Enabled || o.Physics.Stabilization.Iterations != 1000 {
		t.Error("stabilization defaults wrong")
	}
	if o.Layout != nil {
		t.Error("non-hierarchical options should carry no layout block")
	}
	if !o.Interaction.DragNodes {
		t.Error("dragNodes should default to true")
	}
	if o.Edges.Smooth.Type != "dynamic" {
		t.Errorf("smooth type = %s, want dynamic", o.Edges.Smooth.Type)
	}
}

func TestHierarchicalLayout(t *testing.T) {
	o := New(true)
	if o.Layout == nil || !o.Layout.Hierarchical.Enabled {
		t.Fatal("hierarchical options should enable the layout block")
	}
	if o.Layout.Hierarchical.LevelSeparation != 150 || o.Layout.Hierarchical.SortMethod != "hubsize" {
		t.Error("hierarchical defaults wrong")
	}

	o.Layout.SetLevelSeparation(300)
	o.Layout.SetTreeSpacing(500)
	if o.Layout.Hierarchical.LevelSeparation != 300 || o.Layout.Hierarchical.TreeSpacing != 500 {
		t.Error("layout setters did not apply")
	}
}

func TestSolverSelection(t *testing.T) {
	tests := []struct {
		name   string
		apply  func(p *Physics)
		solver string
		field  string
	}{
		{"BarnesHut", func(p *Physics) { p.UseBarnesHut(DefaultBarnesHut()) }, "barnesHut", "barnesHut"},
		{"ForceAtlas2", func(p *Physics) { p.UseForceAtlas2Based(DefaultForceAtlas2Based()) }, "forceAtlas2Based", "forceAtlas2Based"},
		{"Repulsion", func(p *Physics) { p.UseRepulsion(DefaultRepulsion()) }, "repulsion", "repulsion"},
		{"HRepulsion", func(p *Physics) { p.UseHierarchicalRepulsion(DefaultHierarchicalRepulsion()) }, "hierarchicalRepulsion", "hierarchicalRepulsion"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := New(false)
			tt.apply(&o.Physics)

			if o.Physics.Solver != tt.solver {
				t.Errorf("solver = %s, want %s", o.Physics.Solver, tt.solver)
			}

			out, err := o.JSON()
			if err != nil {
				t.Fatalf("JSON: %v", err)
			}
			var raw map[string]any
			if err := json.Unmarshal([]byte(out), &raw); err != nil {
				t.Fatalf("output is not valid JSON: %v", err)
			}
			physics := raw["physics"].(map[string]any)
			if _, ok := physics[tt.field]; !ok {
				t.Errorf("physics block missing %s", tt.field)
			}
		})
	}
}

func TestSolverSelectionIsExclusive(t *testing.T) {
	o := New(false)
	o.Physics.UseBarnesHut(DefaultBarnesHut())
	o.Physics.UseRepulsion(DefaultRepulsion())

	if o.Physics.BarnesHut != nil {
		t.Error("switching solvers should clear the previous block")
	}
	if o.Physics.Repulsion == nil {
		t.Error("repulsion block should be set")
	}
}

func TestJSONFieldNames(t *testing.T) {
	o := New(false)
	o.Physics.UseBarnesHut(DefaultBarnesHut())

	out, err := o.JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	for _, field := range []string{
		`"gravitationalConstant"`, `"springConstant"`, `"avoidOverlap"`,
		`"hideEdgesOnDrag"`, `"updateInterval"`, `"inherit"`,
	} {
		if !strings.Contains(out, field) {
			t.Errorf("serialized options missing %s", field)
		}
	}
}

func TestSetRaw(t *testing.T) {
	o := New(false)

	raw := `var options = {"physics": {"enabled": false}}`
	if err := o.SetRaw(raw); err != nil {
		t.Fatalf("SetRaw: %v", err)
	}

	out, err := o.JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if out != `{"physics": {"enabled": false}}` {
		t.Errorf("JSON = %s, want the raw override", out)
	}
	if o.PhysicsEnabled() {
		t.Error("PhysicsEnabled should read through the raw override")
	}

	if err := o.SetRaw("not json"); err == nil {
		t.Error("SetRaw should reject input without a JSON object")
	}
	if err := o.SetRaw("{broken"); err == nil {
		t.Error("SetRaw should reject malformed JSON")
	}
}

func TestPhysicsEnabledDefaultsTrueInRaw(t *testing.T) {
	o := New(false)
	if err := o.SetRaw(`{"edges": {}}`); err != nil {
		t.Fatalf("SetRaw: %v", err)
	}
	if !o.PhysicsEnabled() {
		t.Error("raw override without a physics block should report physics enabled")
	}
}
