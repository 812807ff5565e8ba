package models

import "cooling-expander/internal/scenario"

// ExpandResponse represents the response from an expansion run
type ExpandResponse struct {
	ID      string        `json:"id,omitempty"`
	Status  string        `json:"status"`
	Summary ExpandSummary `json:"summary"`

	// Records is included only when requested (include_records=true).
	Records *scenario.Document `json:"records,omitempty"`
}

// ExpandSummary contains aggregated expansion results
type ExpandSummary struct {
	BasesExpanded int `json:"bases_expanded"`
	BasesExempt   int `json:"bases_exempt"`
	Composites    int `json:"composites"`
	Constraints   int `json:"constraints"`
	Periods       int `json:"periods"`
	Nodes         int `json:"nodes"`
}

// AnalyzeResponse represents the response from a trade-off analysis
type AnalyzeResponse struct {
	Tradeoffs []Tradeoff `json:"tradeoffs"`
}

// Tradeoff is one ranked per-base cooling trade-off summary
type Tradeoff struct {
	Rank int    `json:"rank"`
	Base string `json:"base"`

	Count int `json:"count"`

	MaxEfficiency           float64 `json:"max_efficiency"`
	MinEfficiency           float64 `json:"min_efficiency"`
	MaxWithdrawalM3         float64 `json:"max_withdrawal_m3"`
	MinWithdrawalM3         float64 `json:"min_withdrawal_m3"`
	WithdrawalSpreadM3      float64 `json:"withdrawal_spread_m3"`
	WaterPerEfficiencyPoint float64 `json:"water_per_efficiency_point"`
	DriestVariant           string  `json:"driest_variant"`
	ThirstiestVariant       string  `json:"thirstiest_variant"`
}

// VariantInfo represents information about a variant preset file
type VariantInfo struct {
	ID       string         `json:"id"`
	File     string         `json:"file"`
	Variants []VariantSpecs `json:"variants"`
}

// VariantSpecs contains the headline numbers for one variant
type VariantSpecs struct {
	ID                string  `json:"id"`
	EfficiencyPenalty float64 `json:"efficiency_penalty"`
	WithdrawalRate    float64 `json:"withdrawal_rate"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
