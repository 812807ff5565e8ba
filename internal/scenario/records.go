package scenario

import (
	"encoding/json"
	"fmt"
	"os"

	"cooling-expander/internal/expand"
)

// Document is the JSON handoff consumed by the scenario-optimization engine's
// loader. The expander never calls the engine's solve step; it only produces
// this document.
//
// Record shapes are stable: each composite as (id, base_id, variant_id,
// efficiency, cost, resource intensities), each share constraint as
// (group_id, member_ids, period, node, min_share, max_share).
type Document struct {
	Model    string `json:"model"`
	Scenario string `json:"scenario"`

	Technologies []TechnologyRecord `json:"technologies"`
	Shares       []ShareRecord      `json:"shares"`
	Supply       []SupplyRecord     `json:"supply,omitempty"`
}

// TechnologyRecord is one expanded cooling technology.
type TechnologyRecord struct {
	ID                 string  `json:"id"`
	BaseID             string  `json:"base_id"`
	VariantID          string  `json:"variant_id"`
	Efficiency         float64 `json:"efficiency"`
	Cost               float64 `json:"cost"`
	WaterWithdrawalM3  float64 `json:"water_withdrawal_m3"`
	WaterConsumptionM3 float64 `json:"water_consumption_m3"`
	ParasiticLoad      float64 `json:"parasitic_load,omitempty"`
}

// ShareRecord is one share-constraint group scoped to a period and node.
type ShareRecord struct {
	GroupID   string   `json:"group_id"`
	MemberIDs []string `json:"member_ids"`
	Period    int      `json:"period"`
	Node      string   `json:"node"`
	MinShare  float64  `json:"min_share"`
	MaxShare  float64  `json:"max_share"`
}

// SupplyRecord is one water-supply technology made available to the engine
// alongside the cooling composites.
type SupplyRecord struct {
	ID             string  `json:"id"`
	Commodity      string  `json:"commodity"`
	LifetimeYears  int     `json:"lifetime_years"`
	CapacityFactor float64 `json:"capacity_factor"`
	VariableCost   float64 `json:"variable_cost"`
}

// BuildDocument converts an expansion result into the engine handoff document.
// When includeSupply is set the standard water-supply technologies are
// appended so the cooling water inputs have a producing side.
func BuildDocument(modelName, scenarioName string, res *expand.Result, includeSupply bool) *Document {
	doc := &Document{
		Model:    modelName,
		Scenario: scenarioName,
	}
	for _, c := range res.Composites {
		doc.Technologies = append(doc.Technologies, TechnologyRecord{
			ID:                 c.ID,
			BaseID:             c.BaseID,
			VariantID:          c.VariantID,
			Efficiency:         c.Efficiency,
			Cost:               c.Cost,
			WaterWithdrawalM3:  c.WaterWithdrawalM3,
			WaterConsumptionM3: c.WaterConsumptionM3,
			ParasiticLoad:      c.ParasiticLoad,
		})
	}
	for _, s := range res.Constraints {
		doc.Shares = append(doc.Shares, ShareRecord{
			GroupID:   s.GroupID,
			MemberIDs: s.MemberIDs,
			Period:    s.Period,
			Node:      s.Node,
			MinShare:  s.MinShare,
			MaxShare:  s.MaxShare,
		})
	}
	if includeSupply {
		doc.Supply = WaterSupplyTechnologies()
	}
	return doc
}

// WriteJSON writes the document to path, pretty-printed for diffability.
func WriteJSON(path string, doc *Document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

// ReadJSON loads a previously written document, e.g. for inspection tooling.
func ReadJSON(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &doc, nil
}
