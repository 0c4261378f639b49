package options

// Physics configures the force simulation that animates the network.
// Exactly one solver block is populated at a time; Solver names the one
// in effect (the library defaults to barnesHut when unset).
type Physics struct {
	Enabled               bool                   `json:"enabled"`
	Solver                string                 `json:"solver,omitempty"`
	Stabilization         Stabilization          `json:"stabilization"`
	BarnesHut             *BarnesHut             `json:"barnesHut,omitempty"`
	ForceAtlas2Based      *ForceAtlas2Based      `json:"forceAtlas2Based,omitempty"`
	Repulsion             *Repulsion             `json:"repulsion,omitempty"`
	HierarchicalRepulsion *HierarchicalRepulsion `json:"hierarchicalRepulsion,omitempty"`
}

func defaultPhysics() Physics {
	return Physics{
		Enabled: true,
		Stabilization: Stabilization{
			Enabled:        true,
			Iterations:     1000,
			UpdateInterval: 50,
			Fit:            true,
		},
	}
}

// Stabilization pre-simulates the network before first paint.
type Stabilization struct {
	Enabled          bool `json:"enabled"`
	Iterations       int  `json:"iterations"`
	UpdateInterval   int  `json:"updateInterval"`
	OnlyDynamicEdges bool `json:"onlyDynamicEdges"`
	Fit              bool `json:"fit"`
}

// BarnesHut is the quadtree-based gravity model. It is the fastest solver
// and the recommended default for non-hierarchical layouts.
type BarnesHut struct {
	GravitationalConstant float64 `json:"gravitationalConstant"`
	CentralGravity        float64 `json:"centralGravity"`
	SpringLength          float64 `json:"springLength"`
	SpringConstant        float64 `json:"springConstant"`
	Damping               float64 `json:"damping"`
	AvoidOverlap          float64 `json:"avoidOverlap"`
}

// DefaultBarnesHut returns the solver defaults.
func DefaultBarnesHut() BarnesHut {
	return BarnesHut{
		GravitationalConstant: -80000,
		CentralGravity:        0.3,
		SpringLength:          250,
		SpringConstant:        0.001,
		Damping:               0.09,
	}
}

// ForceAtlas2Based adapts the ForceAtlas2 equations to the barnesHut
// implementation: distance-independent central gravity and linear
// repulsion, with node masses scaled by connected edge count.
type ForceAtlas2Based struct {
	GravitationalConstant float64 `json:"gravitationalConstant"`
	CentralGravity        float64 `json:"centralGravity"`
	SpringLength          float64 `json:"springLength"`
	SpringConstant        float64 `json:"springConstant"`
	Damping               float64 `json:"damping"`
	AvoidOverlap          float64 `json:"avoidOverlap"`
}

// DefaultForceAtlas2Based returns the solver defaults.
func DefaultForceAtlas2Based() ForceAtlas2Based {
	return ForceAtlas2Based{
		GravitationalConstant: -50,
		CentralGravity:        0.01,
		SpringLength:          100,
		SpringConstant:        0.08,
		Damping:               0.4,
	}
}

// Repulsion assumes a simplified repulsive field around each node, its
// force decreasing linearly with distance.
type Repulsion struct {
	NodeDistance   float64 `json:"nodeDistance"`
	CentralGravity float64 `json:"centralGravity"`
	SpringLength   float64 `json:"springLength"`
	SpringConstant float64 `json:"springConstant"`
	Damping        float64 `json:"damping"`
}

// DefaultRepulsion returns the solver defaults.
func DefaultRepulsion() Repulsion {
	return Repulsion{
		NodeDistance:   100,
		CentralGravity: 0.2,
		SpringLength:   200,
		SpringConstant: 0.05,
		Damping:        0.09,
	}
}

// HierarchicalRepulsion is the repulsion model with hierarchy levels taken
// into account and forces normalized.
type HierarchicalRepulsion struct {
	NodeDistance   float64 `json:"nodeDistance"`
	CentralGravity float64 `json:"centralGravity"`
	SpringLength   float64 `json:"springLength"`
	SpringConstant float64 `json:"springConstant"`
	Damping        float64 `json:"damping"`
}

// DefaultHierarchicalRepulsion returns the solver defaults.
func DefaultHierarchicalRepulsion() HierarchicalRepulsion {
	return HierarchicalRepulsion{
		NodeDistance:   120,
		CentralGravity: 0.0,
		SpringLength:   100,
		SpringConstant: 0.01,
		Damping:        0.09,
	}
}

// UseBarnesHut selects the barnesHut solver with the given parameters.
func (p *Physics) UseBarnesHut(params BarnesHut) {
	p.clearSolvers()
	p.BarnesHut = &params
	p.Solver = "barnesHut"
}

// UseForceAtlas2Based selects the forceAtlas2Based solver.
func (p *Physics) UseForceAtlas2Based(params ForceAtlas2Based) {
	p.clearSolvers()
	p.ForceAtlas2Based = &params
	p.Solver = "forceAtlas2Based"
}

// UseRepulsion selects the repulsion solver.
func (p *Physics) UseRepulsion(params Repulsion) {
	p.clearSolvers()
	p.Repulsion = &params
	p.Solver = "repulsion"
}

// UseHierarchicalRepulsion selects the hierarchicalRepulsion solver.
func (p *Physics) UseHierarchicalRepulsion(params HierarchicalRepulsion) {
	p.clearSolvers()
	p.HierarchicalRepulsion = &params
	p.Solver = "hierarchicalRepulsion"
}

func (p *Physics) clearSolvers() {
	p.BarnesHut = nil
	p.ForceAtlas2Based = nil
	p.Repulsion = nil
	p.HierarchicalRepulsion = nil
}
