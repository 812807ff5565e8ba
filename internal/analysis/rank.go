package analysis

import (
	"sort"

	"cooling-expander/internal/model"
)

type RankedTradeoff struct {
	CoolingTradeoff
}

// RankByWithdrawalSpread computes trade-offs per base group and sorts
// descending by withdrawal spread, i.e. the plants with the most water at
// stake in the cooling choice come first.
func RankByWithdrawalSpread(byBase map[string][]model.CompositeTechnology) []RankedTradeoff {
	out := make([]RankedTradeoff, 0, len(byBase))
	for _, composites := range byBase {
		t := ComputeTradeoff(composites)
		out = append(out, RankedTradeoff{CoolingTradeoff: t})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].WithdrawalSpreadM3 != out[j].WithdrawalSpreadM3 {
			return out[i].WithdrawalSpreadM3 > out[j].WithdrawalSpreadM3
		}
		return out[i].Base < out[j].Base
	})
	return out
}
