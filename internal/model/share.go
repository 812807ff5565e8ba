package model

import "fmt"

// ShareBounds bounds the fractional activity share a single cooling variant may
// take of its base technology's total activity. [0,1] means unconstrained.
type ShareBounds struct {
	Min float64
	Max float64
}

// Unconstrained is the default bound applied when a technology declares none.
func Unconstrained() ShareBounds {
	return ShareBounds{Min: 0, Max: 1}
}

func (b ShareBounds) Validate() error {
	if b.Min < 0 || b.Min > 1 || b.Max < 0 || b.Max > 1 {
		return fmt.Errorf("share bounds [%g, %g] must lie within [0, 1]", b.Min, b.Max)
	}
	if b.Min > b.Max {
		return fmt.Errorf("share bounds min %g exceeds max %g", b.Min, b.Max)
	}
	return nil
}

// ShareConstraint bounds the activity mix among the composites of one base
// technology in one period at one node. MemberIDs always covers every
// composite derived from the base; the member shares must sum to the base's
// total activity (conservation is enforced by the downstream engine, the
// constraint only declares the bounds).
type ShareConstraint struct {
	GroupID   string
	MemberIDs []string
	Period    int
	Node      string
	MinShare  float64
	MaxShare  float64
}
