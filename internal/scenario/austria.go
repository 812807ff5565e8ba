package scenario

import "cooling-expander/internal/model"

// Built-in Austria tutorial base set. This mirrors the seven-plant Austrian
// energy model (horizon 2010-2040 in 10y steps, single node) and is used by
// the demo and as a known-good fixture. Austria is landlocked, so the thermal
// plants list freshwater/air cooling explicitly and never ot_saline.

// AustriaPeriods returns the tutorial model horizon.
func AustriaPeriods() []int {
	return []int{2010, 2020, 2030, 2040}
}

// AustriaNodes returns the single-node spatial set.
func AustriaNodes() []string {
	return []string{"Austria"}
}

// AustriaBaseTechnologies returns the seven tutorial power plants. The
// renewable plants are exempt from cooling expansion.
func AustriaBaseTechnologies() []model.BaseTechnology {
	freshwater := []string{"ot_fresh", "cl_fresh", "air"}
	return []model.BaseTechnology{
		{ID: "coal_ppl", Efficiency: 0.35, OutputCapacityMW: 600, VariableCost: 100, Fuel: "coal", LifetimeYears: 40, CoolingVariants: freshwater},
		{ID: "gas_ppl", Efficiency: 0.45, OutputCapacityMW: 400, VariableCost: 80, Fuel: "gas", LifetimeYears: 30, CoolingVariants: freshwater},
		{ID: "oil_ppl", Efficiency: 0.38, OutputCapacityMW: 200, VariableCost: 120, Fuel: "oil", LifetimeYears: 30, CoolingVariants: freshwater},
		{ID: "bio_ppl", Efficiency: 0.30, OutputCapacityMW: 150, VariableCost: 90, Fuel: "biomass", LifetimeYears: 30, CoolingVariants: freshwater},
		{ID: "hydro_ppl", Efficiency: 0.90, OutputCapacityMW: 300, VariableCost: 10, Fuel: "water", LifetimeYears: 80, Exempt: true},
		{ID: "wind_ppl", Efficiency: 1.0, OutputCapacityMW: 100, VariableCost: 5, Fuel: "wind", LifetimeYears: 25, Exempt: true},
		{ID: "solar_pv_ppl", Efficiency: 1.0, OutputCapacityMW: 80, VariableCost: 5, Fuel: "sun", LifetimeYears: 25, Exempt: true},
	}
}

// DefaultCoolingVariants returns the four standard cooling modes.
// Penalties are additive efficiency deltas; rates are m³/MWh.
func DefaultCoolingVariants() []model.Variant {
	return []model.Variant{
		{ID: "ot_fresh", EfficiencyPenalty: 0.02, CostDelta: 5, WithdrawalRate: 2.5, ConsumptionRate: 0.1, ParasiticLoad: 0.01},
		{ID: "cl_fresh", EfficiencyPenalty: 0.03, CostDelta: 10, WithdrawalRate: 0.8, ConsumptionRate: 0.6, ParasiticLoad: 0.02},
		{ID: "air", EfficiencyPenalty: 0.05, CostDelta: 15, WithdrawalRate: 0, ConsumptionRate: 0, ParasiticLoad: 0.03},
		{ID: "ot_saline", EfficiencyPenalty: 0.025, CostDelta: 6, WithdrawalRate: 2.3, ConsumptionRate: 0.05, ParasiticLoad: 0.012},
	}
}

// AustriaBounds returns the default share bounds for the tutorial set:
// once-through freshwater cooling at the big thermal plants is capped to keep
// the mix from collapsing onto the cheapest variant.
func AustriaBounds() map[string]model.ShareBounds {
	return map[string]model.ShareBounds{
		"coal_ppl": {Min: 0.1, Max: 0.9},
		"gas_ppl":  {Min: 0.0, Max: 0.8},
	}
}

// AustriaInputs assembles the full built-in input set.
func AustriaInputs() model.ExpansionInputs {
	return model.ExpansionInputs{
		Technologies: AustriaBaseTechnologies(),
		Variants:     DefaultCoolingVariants(),
		Bounds:       AustriaBounds(),
		Periods:      AustriaPeriods(),
		Nodes:        AustriaNodes(),
	}
}
