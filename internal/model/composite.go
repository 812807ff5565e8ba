package model

// CompositeSeparator joins a base technology id with a variant id.
// Keep this stable; composite ids appear in exported records and CSV output.
const CompositeSeparator = "__"

// CompositeID returns the canonical identifier for a (base, variant) pairing,
// e.g. "coal_ppl__ot_fresh".
func CompositeID(baseID, variantID string) string {
	return baseID + CompositeSeparator + variantID
}

// CompositeTechnology is one expanded (base, variant) pairing with derived
// parameters. Composites are emitted once per valid pair and never mutated
// after expansion.
// Units:
// - Efficiency: fraction, base efficiency minus the variant penalty
// - Cost: $/MWh, base variable cost plus the variant delta
// - WaterWithdrawalM3: m³ per hour at full output (rate × capacity)
// - WaterConsumptionM3: m³ per hour at full output
type CompositeTechnology struct {
	ID        string
	BaseID    string
	VariantID string

	Efficiency         float64
	Cost               float64
	WaterWithdrawalM3  float64
	WaterConsumptionM3 float64
	ParasiticLoad      float64
}
