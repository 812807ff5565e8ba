package models

// ExpandRequest represents the request body for running an expansion
type ExpandRequest struct {
	Config  ExpansionConfig `json:"config" binding:"required"`
	Options ExpandOptions   `json:"options,omitempty"`
}

// ExpansionConfig mirrors the YAML configuration sections inline in JSON.
type ExpansionConfig struct {
	Scenario     ScenarioConfig          `json:"scenario" binding:"required"`
	Technologies []TechnologyConfig      `json:"technologies" binding:"required"`
	Variants     []VariantConfig         `json:"variants,omitempty"`
	VariantFile  string                  `json:"variant_file,omitempty"`
	Bounds       map[string]BoundsConfig `json:"bounds,omitempty"`
}

// ScenarioConfig scopes constraints temporally and spatially.
type ScenarioConfig struct {
	Periods []int    `json:"periods"`
	Nodes   []string `json:"nodes"`
}

// TechnologyConfig defines one base technology.
type TechnologyConfig struct {
	ID               string   `json:"id"`
	Efficiency       float64  `json:"efficiency"`
	OutputCapacityMW float64  `json:"output_capacity_mw"`
	VariableCost     float64  `json:"variable_cost"`
	Fuel             string   `json:"fuel,omitempty"`
	LifetimeYears    int      `json:"lifetime_years,omitempty"`
	Exempt           bool     `json:"exempt,omitempty"`
	CoolingVariants  []string `json:"cooling_variants,omitempty"`
}

// VariantConfig defines one cooling variant.
type VariantConfig struct {
	ID                string  `json:"id"`
	EfficiencyPenalty float64 `json:"efficiency_penalty"`
	CostDelta         float64 `json:"cost_delta"`
	WithdrawalRate    float64 `json:"withdrawal_rate"`
	ConsumptionRate   float64 `json:"consumption_rate"`
	ParasiticLoad     float64 `json:"parasitic_load,omitempty"`
}

// BoundsConfig defines a share bound for one base technology's variant group.
type BoundsConfig struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ExpandOptions contains optional expansion parameters
type ExpandOptions struct {
	IncludeRecords bool `json:"include_records,omitempty"` // default: false
	Store          bool `json:"store,omitempty"`           // keep result for later retrieval
	IncludeSupply  bool `json:"include_supply,omitempty"`  // append water-supply technologies
}

// AnalyzeRequest represents a request to compute cooling trade-offs
type AnalyzeRequest struct {
	Config ExpansionConfig `json:"config" binding:"required"`
}
