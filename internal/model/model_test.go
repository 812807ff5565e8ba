package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompositeID(t *testing.T) {
	assert.Equal(t, "coal_ppl__ot_fresh", CompositeID("coal_ppl", "ot_fresh"))
}

func TestBaseTechnologyValidate(t *testing.T) {
	valid := BaseTechnology{ID: "coal_ppl", Efficiency: 0.35, OutputCapacityMW: 600, VariableCost: 100, LifetimeYears: 40}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*BaseTechnology)
	}{
		{"missing id", func(t *BaseTechnology) { t.ID = "" }},
		{"zero efficiency", func(t *BaseTechnology) { t.Efficiency = 0 }},
		{"efficiency above one", func(t *BaseTechnology) { t.Efficiency = 1.2 }},
		{"zero capacity", func(t *BaseTechnology) { t.OutputCapacityMW = 0 }},
		{"negative cost", func(t *BaseTechnology) { t.VariableCost = -1 }},
		{"exempt with variant list", func(t *BaseTechnology) {
			t.Exempt = true
			t.CoolingVariants = []string{"air"}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tech := valid
			tt.mutate(&tech)
			assert.Error(t, tech.Validate())
		})
	}
}

func TestVariantValidate(t *testing.T) {
	valid := Variant{ID: "ot_fresh", EfficiencyPenalty: 0.02, CostDelta: 5, WithdrawalRate: 2.5, ConsumptionRate: 0.1, ParasiticLoad: 0.01}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Variant)
	}{
		{"missing id", func(v *Variant) { v.ID = "" }},
		{"zero penalty", func(v *Variant) { v.EfficiencyPenalty = 0 }},
		{"negative penalty", func(v *Variant) { v.EfficiencyPenalty = -0.1 }},
		{"penalty of one", func(v *Variant) { v.EfficiencyPenalty = 1 }},
		{"negative withdrawal", func(v *Variant) { v.WithdrawalRate = -1 }},
		{"consumption above withdrawal", func(v *Variant) {
			v.WithdrawalRate = 0.1
			v.ConsumptionRate = 0.5
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := valid
			tt.mutate(&v)
			assert.Error(t, v.Validate())
		})
	}
}

func TestShareBoundsValidate(t *testing.T) {
	assert.NoError(t, Unconstrained().Validate())
	assert.NoError(t, ShareBounds{Min: 0.1, Max: 0.9}.Validate())
	assert.NoError(t, ShareBounds{Min: 1, Max: 1}.Validate())

	assert.Error(t, ShareBounds{Min: 0.9, Max: 0.1}.Validate())
	assert.Error(t, ShareBounds{Min: -0.1, Max: 0.5}.Validate())
	assert.Error(t, ShareBounds{Min: 0.1, Max: 1.5}.Validate())
}
