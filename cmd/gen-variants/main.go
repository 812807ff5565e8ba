package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"cooling-expander/internal/config"
	"cooling-expander/internal/scenario"

	"gopkg.in/yaml.v3"
)

// gen-variants (re)generates the variant preset files under examples/variants
// from the built-in defaults, so the presets served by the API stay in sync
// with the code.
func main() {
	outDir := flag.String("out", "examples/variants", "Output directory for preset files")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}

	var defaults []config.VariantConfig
	for _, v := range scenario.DefaultCoolingVariants() {
		defaults = append(defaults, config.VariantConfig{
			ID:                v.ID,
			EfficiencyPenalty: v.EfficiencyPenalty,
			CostDelta:         v.CostDelta,
			WithdrawalRate:    v.WithdrawalRate,
			ConsumptionRate:   v.ConsumptionRate,
			ParasiticLoad:     v.ParasiticLoad,
		})
	}

	presets := map[string][]config.VariantConfig{
		"default.yaml": defaults,
		// Freshwater-only preset for landlocked regions.
		"freshwater.yaml": withoutVariant(defaults, "ot_saline"),
	}

	for name, variants := range presets {
		path := filepath.Join(*outDir, name)
		if err := writePreset(path, variants); err != nil {
			log.Fatalf("write %s: %v", path, err)
		}
		fmt.Printf("Wrote %d variants to %s\n", len(variants), path)
	}
}

func withoutVariant(variants []config.VariantConfig, id string) []config.VariantConfig {
	out := make([]config.VariantConfig, 0, len(variants))
	for _, v := range variants {
		if v.ID != id {
			out = append(out, v)
		}
	}
	return out
}

func writePreset(path string, variants []config.VariantConfig) error {
	wrapper := struct {
		Variants []config.VariantConfig `yaml:"variants"`
	}{Variants: variants}

	raw, err := yaml.Marshal(wrapper)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}
