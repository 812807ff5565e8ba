package expand

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"cooling-expander/internal/model"
)

func WriteCompositesCSV(path string, composites []model.CompositeTechnology) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"id",
		"base_id",
		"variant_id",
		"efficiency",
		"cost",
		"water_withdrawal_m3",
		"water_consumption_m3",
		"parasitic_load",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, c := range composites {
		row := []string{
			c.ID,
			c.BaseID,
			c.VariantID,
			fmtFloat(c.Efficiency),
			fmtFloat(c.Cost),
			fmtFloat(c.WaterWithdrawalM3),
			fmtFloat(c.WaterConsumptionM3),
			fmtFloat(c.ParasiticLoad),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func WriteConstraintsCSV(path string, constraints []model.ShareConstraint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"group_id",
		"member_ids",
		"period",
		"node",
		"min_share",
		"max_share",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, s := range constraints {
		row := []string{
			s.GroupID,
			strings.Join(s.MemberIDs, ";"),
			strconv.Itoa(s.Period),
			s.Node,
			fmtFloat(s.MinShare),
			fmtFloat(s.MaxShare),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
