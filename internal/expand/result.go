package expand

import "cooling-expander/internal/model"

// Result is the complete output of one expansion run.
// Slices are sorted (composites by id, constraints by group/period/node) so
// identical inputs always produce byte-identical output.
type Result struct {
	Composites  []model.CompositeTechnology
	Constraints []model.ShareConstraint

	Summary Summary
}

// Summary contains aggregate counts for logging and API responses.
type Summary struct {
	BasesExpanded int // technologies that received at least one variant
	BasesExempt   int
	Composites    int
	Constraints   int
	Periods       int
	Nodes         int
}

// CompositesByBase groups the emitted composites by their originating base
// technology id.
func (r *Result) CompositesByBase() map[string][]model.CompositeTechnology {
	out := make(map[string][]model.CompositeTechnology)
	for _, c := range r.Composites {
		out[c.BaseID] = append(out[c.BaseID], c)
	}
	return out
}
