package scenario

// WaterSupplyTechnologies returns the standard water-supply side of the
// system: extraction techs feeding the freshwater and saline commodities the
// cooling composites draw from. Values are deliberately simple tutorial-scale
// numbers, not calibrated data.
func WaterSupplyTechnologies() []SupplyRecord {
	return []SupplyRecord{
		{
			ID:             "extract_freshwater",
			Commodity:      "freshwater",
			LifetimeYears:  60,
			CapacityFactor: 0.9,
			VariableCost:   0.1,
		},
		{
			ID:             "extract_groundwater",
			Commodity:      "freshwater",
			LifetimeYears:  40,
			CapacityFactor: 0.85,
			VariableCost:   0.25,
		},
		{
			ID:             "extract_saline",
			Commodity:      "saline",
			LifetimeYears:  60,
			CapacityFactor: 0.9,
			VariableCost:   0.05,
		},
	}
}
