package model

// ExpansionInputs is the canonical "inputs to the expander" object.
//
// Everything here is assembled at configuration-load time and treated as
// immutable afterwards; the expander is a pure function of this value.
type ExpansionInputs struct {
	Technologies []BaseTechnology
	Variants     []Variant

	// Bounds maps a base technology id to its per-variant share bounds.
	// Technologies absent from the map default to Unconstrained().
	Bounds map[string]ShareBounds

	// Periods and Nodes scope every emitted share constraint.
	Periods []int
	Nodes   []string
}
