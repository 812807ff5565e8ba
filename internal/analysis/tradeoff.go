package analysis

import (
	"math"

	"cooling-expander/internal/model"
)

// CoolingTradeoff is a per-base summary of the efficiency/water trade-off
// across that base's cooling variants. It does not depend on activity levels;
// it compares the variants' derived parameters directly.
type CoolingTradeoff struct {
	Base string

	Count int

	MaxEfficiency float64
	MinEfficiency float64
	// Withdrawal in m³ per hour at full output.
	MaxWithdrawalM3 float64
	MinWithdrawalM3 float64

	EfficiencySpread   float64
	WithdrawalSpreadM3 float64

	// WaterPerEfficiencyPoint is the withdrawal (m³/h) avoided per point of
	// efficiency given up, moving from the thirstiest to the driest variant.
	// Zero when all variants have the same efficiency.
	WaterPerEfficiencyPoint float64

	// DriestVariant and ThirstiestVariant identify the extremes by withdrawal.
	DriestVariant     string
	ThirstiestVariant string
}

// ComputeTradeoff summarizes one base group. An empty group yields a zero value.
func ComputeTradeoff(composites []model.CompositeTechnology) CoolingTradeoff {
	t := CoolingTradeoff{}
	if len(composites) == 0 {
		return t
	}
	t.Base = composites[0].BaseID
	t.Count = len(composites)

	t.MinEfficiency = math.Inf(1)
	t.MaxEfficiency = math.Inf(-1)
	t.MinWithdrawalM3 = math.Inf(1)
	t.MaxWithdrawalM3 = math.Inf(-1)

	for _, c := range composites {
		if c.Efficiency < t.MinEfficiency {
			t.MinEfficiency = c.Efficiency
		}
		if c.Efficiency > t.MaxEfficiency {
			t.MaxEfficiency = c.Efficiency
		}
		if c.WaterWithdrawalM3 < t.MinWithdrawalM3 {
			t.MinWithdrawalM3 = c.WaterWithdrawalM3
			t.DriestVariant = c.VariantID
		}
		if c.WaterWithdrawalM3 > t.MaxWithdrawalM3 {
			t.MaxWithdrawalM3 = c.WaterWithdrawalM3
			t.ThirstiestVariant = c.VariantID
		}
	}

	t.EfficiencySpread = t.MaxEfficiency - t.MinEfficiency
	t.WithdrawalSpreadM3 = t.MaxWithdrawalM3 - t.MinWithdrawalM3
	if t.EfficiencySpread > 0 {
		t.WaterPerEfficiencyPoint = t.WithdrawalSpreadM3 / t.EfficiencySpread
	}
	return t
}
