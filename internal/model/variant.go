package model

import (
	"errors"
	"fmt"
)

// Variant defines a cooling mode that can be attached to a base technology.
// Units:
// - EfficiencyPenalty: fraction subtracted from the base efficiency
// - CostDelta: $/MWh added to the base variable cost
// - WithdrawalRate / ConsumptionRate: m³ water per MWh of output
// - ParasiticLoad: fraction of output consumed by the cooling system itself
type Variant struct {
	ID                string
	EfficiencyPenalty float64
	CostDelta         float64
	WithdrawalRate    float64
	ConsumptionRate   float64
	ParasiticLoad     float64
}

func (v Variant) Validate() error {
	if v.ID == "" {
		return errors.New("variant id is required")
	}
	// Strictly positive: every cooling system costs some efficiency, and a
	// zero penalty would let a composite tie its base.
	if v.EfficiencyPenalty <= 0 || v.EfficiencyPenalty >= 1 {
		return fmt.Errorf("variant %s: EfficiencyPenalty must be in (0, 1)", v.ID)
	}
	if v.WithdrawalRate < 0 {
		return fmt.Errorf("variant %s: WithdrawalRate must be >= 0", v.ID)
	}
	if v.ConsumptionRate < 0 {
		return fmt.Errorf("variant %s: ConsumptionRate must be >= 0", v.ID)
	}
	if v.ConsumptionRate > v.WithdrawalRate {
		return fmt.Errorf("variant %s: ConsumptionRate cannot exceed WithdrawalRate", v.ID)
	}
	if v.ParasiticLoad < 0 || v.ParasiticLoad >= 1 {
		return fmt.Errorf("variant %s: ParasiticLoad must be in [0, 1)", v.ID)
	}
	return nil
}
