package options

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Options models the global options object handed to the embedded
// visualization library. Its JSON representation is injected into the
// generated document verbatim, so field names follow the library's
// conventions rather than Go's.
type Options struct {
	Configure   *Configure  `json:"configure,omitempty"`
	Edges       EdgeOptions `json:"edges"`
	Interaction Interaction `json:"interaction"`
	Layout      *Layout     `json:"layout,omitempty"`
	Physics     Physics     `json:"physics"`

	// raw, when set, replaces the whole marshaled object. See SetRaw.
	raw string
}

// New creates the default options object. When hierarchical is true a
// hierarchical layout block is included, mirroring the library's layout
// module defaults.
func New(hierarchical bool) *Options {
	o := &Options{
		Edges:       defaultEdgeOptions(),
		Interaction: defaultInteraction(),
		Physics:     defaultPhysics(),
	}
	if hierarchical {
		o.Layout = defaultLayout()
	}
	return o
}

// SetRaw overrides the options wholesale with a user-supplied JSON object,
// typically copied out of the in-browser options editor. Anything before
// the first opening brace (such as "var options = ") is discarded. Returns
// an error if the remainder is not a valid JSON object.
func (o *Options) SetRaw(raw string) error {
	idx := strings.Index(raw, "{")
	if idx < 0 {
		return fmt.Errorf("options override contains no JSON object")
	}
	trimmed := raw[idx:]
	var probe map[string]any
	if err := json.Unmarshal([]byte(trimmed), &probe); err != nil {
		return fmt.Errorf("parse options override: %w", err)
	}
	o.raw = trimmed
	return nil
}

// JSON returns the serialized options object for template injection.
func (o *Options) JSON() (string, error) {
	if o.raw != "" {
		return o.raw, nil
	}
	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal options: %w", err)
	}
	return string(data), nil
}

// PhysicsEnabled reports whether the physics simulation is on, looking
// through a raw override when one is set.
func (o *Options) PhysicsEnabled() bool {
	if o.raw == "" {
		return o.Physics.Enabled
	}
	var probe struct {
		Physics struct {
			Enabled *bool `json:"enabled"`
		} `json:"physics"`
	}
	if err := json.Unmarshal([]byte(o.raw), &probe); err != nil {
		return true
	}
	if probe.Physics.Enabled == nil {
		return true
	}
	return *probe.Physics.Enabled
}

// =============================================================================
// Configure - Options Editor UI
// =============================================================================

// Configure controls the interactive options editor rendered under the
// canvas.
type Configure struct {
	Enabled bool     `json:"enabled"`
	Filter  []string `json:"filter,omitempty"`
}

// =============================================================================
// Edges
// =============================================================================

// EdgeOptions holds edge smoothness and color inheritance settings.
type EdgeOptions struct {
	Color  EdgeColor `json:"color"`
	Smooth Smooth    `json:"smooth"`
}

// Smooth configures curved edge drawing. Dynamic smoothing adds an
// invisible support node per edge that takes part in the physics
// simulation.
type Smooth struct {
	Enabled bool   `json:"enabled"`
	Type    string `json:"type"`
}

// EdgeColor controls how edges derive their color. Inherit may be true,
// false, "from", "to", or "both".
type EdgeColor struct {
	Inherit any `json:"inherit"`
}

func defaultEdgeOptions() EdgeOptions {
	return EdgeOptions{
		Color:  EdgeColor{Inherit: true},
		Smooth: Smooth{Enabled: true, Type: "dynamic"},
	}
}

// =============================================================================
// Interaction
// =============================================================================

// Interaction holds the user-interaction toggles.
type Interaction struct {
	DragNodes       bool `json:"dragNodes"`
	HideEdgesOnDrag bool `json:"hideEdgesOnDrag"`
	HideNodesOnDrag bool `json:"hideNodesOnDrag"`
}

func defaultInteraction() Interaction {
	return Interaction{DragNodes: true}
}

// =============================================================================
// Layout
// =============================================================================

// Layout configures the initial node placement.
type Layout struct {
	RandomSeed     int          `json:"randomSeed"`
	ImprovedLayout bool         `json:"improvedLayout"`
	Hierarchical   Hierarchical `json:"hierarchical"`
}

// Hierarchical configures the layered layout algorithm.
type Hierarchical struct {
	Enabled              bool   `json:"enabled"`
	LevelSeparation      int    `json:"levelSeparation"`
	TreeSpacing          int    `json:"treeSpacing"`
	BlockShifting        bool   `json:"blockShifting"`
	EdgeMinimization     bool   `json:"edgeMinimization"`
	ParentCentralization bool   `json:"parentCentralization"`
	SortMethod           string `json:"sortMethod"`
}

func defaultLayout() *Layout {
	return &Layout{
		ImprovedLayout: true,
		Hierarchical: Hierarchical{
			Enabled:              true,
			LevelSeparation:      150,
			TreeSpacing:          200,
			BlockShifting:        true,
			EdgeMinimization:     true,
			ParentCentralization: true,
			SortMethod:           "hubsize",
		},
	}
}

// SetLevelSeparation sets the distance between hierarchy levels.
func (l *Layout) SetLevelSeparation(distance int) {
	l.Hierarchical.LevelSeparation = distance
}

// SetTreeSpacing sets the distance between independent trees.
func (l *Layout) SetTreeSpacing(distance int) {
	l.Hierarchical.TreeSpacing = distance
}

// SetEdgeMinimization toggles whitespace reduction along free axes.
func (l *Layout) SetEdgeMinimization(enabled bool) {
	l.Hierarchical.EdgeMinimization = enabled
}
