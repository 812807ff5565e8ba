package expand

import (
	"sort"

	"cooling-expander/internal/model"
)

type Engine struct{}

func New() *Engine { return &Engine{} }

// Run expands the base technology set into cooling composites plus share
// constraints. It is a pure function of its inputs: no hidden state, and
// identical inputs yield identical (sorted) output. On any error no partial
// result is returned.
func (e *Engine) Run(inputs model.ExpansionInputs) (*Result, error) {
	if len(inputs.Technologies) == 0 {
		return nil, &ConfigError{Message: "no technologies declared"}
	}
	if len(inputs.Variants) == 0 {
		return nil, &ConfigError{Message: "no variants declared"}
	}
	if len(inputs.Periods) == 0 {
		return nil, &ConfigError{Message: "no periods declared"}
	}
	if len(inputs.Nodes) == 0 {
		return nil, &ConfigError{Message: "no nodes declared"}
	}

	variants, err := indexVariants(inputs.Variants)
	if err != nil {
		return nil, err
	}

	techs, err := sortedTechnologies(inputs.Technologies)
	if err != nil {
		return nil, err
	}

	if err := checkBounds(inputs.Bounds, techs); err != nil {
		return nil, err
	}

	res := &Result{
		Summary: Summary{
			Periods: len(inputs.Periods),
			Nodes:   len(inputs.Nodes),
		},
	}
	seen := make(map[string]bool)

	for _, base := range techs {
		if base.Exempt {
			res.Summary.BasesExempt++
			continue
		}

		applicable, err := applicableVariants(base, variants)
		if err != nil {
			return nil, err
		}

		members := make([]string, 0, len(applicable))
		for _, v := range applicable {
			comp, err := derive(base, v)
			if err != nil {
				return nil, err
			}
			if seen[comp.ID] {
				return nil, &DuplicateIDError{ID: comp.ID}
			}
			seen[comp.ID] = true
			res.Composites = append(res.Composites, comp)
			members = append(members, comp.ID)
		}

		bounds := model.Unconstrained()
		if b, ok := inputs.Bounds[base.ID]; ok {
			bounds = b
		}
		// A single applicable variant degenerates to a fixed 100% share.
		// Still emitted, so every expanded base has exactly one group.
		if len(members) == 1 {
			bounds = model.ShareBounds{Min: 1, Max: 1}
		}

		for _, period := range inputs.Periods {
			for _, node := range inputs.Nodes {
				res.Constraints = append(res.Constraints, model.ShareConstraint{
					GroupID:   base.ID,
					MemberIDs: members,
					Period:    period,
					Node:      node,
					MinShare:  bounds.Min,
					MaxShare:  bounds.Max,
				})
			}
		}
		res.Summary.BasesExpanded++
	}

	sort.Slice(res.Composites, func(i, j int) bool {
		return res.Composites[i].ID < res.Composites[j].ID
	})
	sort.Slice(res.Constraints, func(i, j int) bool {
		a, b := res.Constraints[i], res.Constraints[j]
		if a.GroupID != b.GroupID {
			return a.GroupID < b.GroupID
		}
		if a.Period != b.Period {
			return a.Period < b.Period
		}
		return a.Node < b.Node
	})

	res.Summary.Composites = len(res.Composites)
	res.Summary.Constraints = len(res.Constraints)
	return res, nil
}

// derive computes the composite parameters for one (base, variant) pair.
// Efficiency penalties are additive; resource intensities scale with the
// base's output capacity.
func derive(base model.BaseTechnology, v model.Variant) (model.CompositeTechnology, error) {
	eff := base.Efficiency - v.EfficiencyPenalty
	if eff <= 0 {
		return model.CompositeTechnology{}, &ConfigError{
			Subject: model.CompositeID(base.ID, v.ID),
			Message: "efficiency penalty consumes the entire base efficiency",
		}
	}
	cost := base.VariableCost + v.CostDelta
	if cost < 0 {
		return model.CompositeTechnology{}, &ConfigError{
			Subject: model.CompositeID(base.ID, v.ID),
			Message: "cost delta drives variable cost below zero",
		}
	}
	return model.CompositeTechnology{
		ID:                 model.CompositeID(base.ID, v.ID),
		BaseID:             base.ID,
		VariantID:          v.ID,
		Efficiency:         eff,
		Cost:               cost,
		WaterWithdrawalM3:  v.WithdrawalRate * base.OutputCapacityMW,
		WaterConsumptionM3: v.ConsumptionRate * base.OutputCapacityMW,
		ParasiticLoad:      v.ParasiticLoad,
	}, nil
}

// applicableVariants resolves the variant set for one base: the explicit list
// when declared, otherwise every declared variant. A non-exempt base with no
// applicable variant is a configuration error.
func applicableVariants(base model.BaseTechnology, byID map[string]model.Variant) ([]model.Variant, error) {
	var out []model.Variant
	if len(base.CoolingVariants) > 0 {
		for _, id := range base.CoolingVariants {
			v, ok := byID[id]
			if !ok {
				return nil, &ConfigError{
					Subject: base.ID,
					Message: "references undefined variant " + id,
				}
			}
			out = append(out, v)
		}
	} else {
		for _, v := range byID {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil, &ConfigError{
			Subject: base.ID,
			Message: "no applicable cooling variant and not declared exempt",
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func indexVariants(variants []model.Variant) (map[string]model.Variant, error) {
	byID := make(map[string]model.Variant, len(variants))
	for _, v := range variants {
		if err := v.Validate(); err != nil {
			return nil, &ConfigError{Message: err.Error()}
		}
		if _, ok := byID[v.ID]; ok {
			return nil, &ConfigError{Subject: v.ID, Message: "variant declared twice"}
		}
		byID[v.ID] = v
	}
	return byID, nil
}

func sortedTechnologies(techs []model.BaseTechnology) ([]model.BaseTechnology, error) {
	out := make([]model.BaseTechnology, len(techs))
	copy(out, techs)
	seen := make(map[string]bool, len(out))
	for _, t := range out {
		if err := t.Validate(); err != nil {
			return nil, &ConfigError{Message: err.Error()}
		}
		if seen[t.ID] {
			return nil, &ConfigError{Subject: t.ID, Message: "technology declared twice"}
		}
		seen[t.ID] = true
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func checkBounds(bounds map[string]model.ShareBounds, techs []model.BaseTechnology) error {
	byID := make(map[string]model.BaseTechnology, len(techs))
	for _, t := range techs {
		byID[t.ID] = t
	}
	ids := make([]string, 0, len(bounds))
	for id := range bounds {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		b := bounds[id]
		t, ok := byID[id]
		if !ok {
			return &ConfigError{Subject: id, Message: "bounds declared for undefined technology"}
		}
		if t.Exempt {
			return &ConfigError{Subject: id, Message: "bounds declared for exempt technology"}
		}
		if err := b.Validate(); err != nil {
			return &BoundsError{Base: id, Min: b.Min, Max: b.Max, Err: err}
		}
	}
	return nil
}
