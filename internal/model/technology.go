package model

import (
	"errors"
	"fmt"
)

// BaseTechnology defines a power-generation technology before cooling expansion.
// Units:
// - Efficiency: fraction (0..1], electrical output per unit fuel input
// - OutputCapacityMW: MW
// - VariableCost: $/MWh
// - LifetimeYears: years
type BaseTechnology struct {
	ID               string
	Efficiency       float64
	OutputCapacityMW float64
	VariableCost     float64
	Fuel             string
	LifetimeYears    int

	// Exempt marks a technology that takes no cooling variants at all
	// (e.g. wind, solar PV). An exempt technology produces no composites
	// and no share constraint.
	Exempt bool

	// CoolingVariants optionally restricts which variants apply to this
	// technology. Empty means "all declared variants" unless Exempt.
	CoolingVariants []string
}

func (t BaseTechnology) Validate() error {
	if t.ID == "" {
		return errors.New("technology id is required")
	}
	if t.Efficiency <= 0 || t.Efficiency > 1 {
		return fmt.Errorf("technology %s: Efficiency must be in (0, 1]", t.ID)
	}
	if t.OutputCapacityMW <= 0 {
		return fmt.Errorf("technology %s: OutputCapacityMW must be > 0", t.ID)
	}
	if t.VariableCost < 0 {
		return fmt.Errorf("technology %s: VariableCost must be >= 0", t.ID)
	}
	if t.LifetimeYears < 0 {
		return fmt.Errorf("technology %s: LifetimeYears must be >= 0", t.ID)
	}
	if t.Exempt && len(t.CoolingVariants) > 0 {
		return fmt.Errorf("technology %s: exempt technology cannot list cooling variants", t.ID)
	}
	return nil
}
