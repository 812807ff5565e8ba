package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cooling-expander/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
// Recognized top-level sections: scenario, technologies, variants, bounds.
type Config struct {
	Scenario ScenarioConfig `yaml:"scenario"`

	// Optional: load variant definitions from a separate YAML
	// (e.g. examples/variants/*.yaml). Inline variants with the same id
	// override fields of the file-loaded definition.
	VariantFile string `yaml:"variant_file"`

	Technologies []TechnologyConfig      `yaml:"technologies"`
	Variants     []VariantConfig         `yaml:"variants"`
	Bounds       map[string]BoundsConfig `yaml:"bounds"`
}

// ScenarioConfig scopes the expansion temporally and spatially.
type ScenarioConfig struct {
	Periods []int    `yaml:"periods"`
	Nodes   []string `yaml:"nodes"`
}

type TechnologyConfig struct {
	ID               string   `yaml:"id"`
	Efficiency       float64  `yaml:"efficiency"`
	OutputCapacityMW float64  `yaml:"output_capacity_mw"`
	VariableCost     float64  `yaml:"variable_cost"`
	Fuel             string   `yaml:"fuel"`
	LifetimeYears    int      `yaml:"lifetime_years"`
	Exempt           bool     `yaml:"exempt"`
	CoolingVariants  []string `yaml:"cooling_variants"`
}

type VariantConfig struct {
	ID                string  `yaml:"id"`
	EfficiencyPenalty float64 `yaml:"efficiency_penalty"`
	CostDelta         float64 `yaml:"cost_delta"`
	WithdrawalRate    float64 `yaml:"withdrawal_rate"`
	ConsumptionRate   float64 `yaml:"consumption_rate"`
	ParasiticLoad     float64 `yaml:"parasitic_load"`
}

type BoundsConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If variant_file is set, load it and merge in any inline overrides.
	if c.VariantFile != "" {
		variantPath := c.VariantFile
		if !filepath.IsAbs(variantPath) {
			// Prefer interpreting relative paths as relative to the config file directory,
			// but fall back to the provided path (relative to cwd) if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), variantPath)
			if _, err := os.Stat(cand); err == nil {
				variantPath = cand
			}
		}
		loaded, err := LoadVariantFile(variantPath)
		if err != nil {
			return nil, err
		}
		c.Variants = MergeVariants(loaded, c.Variants)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if len(c.Scenario.Periods) == 0 {
		return errors.New("scenario.periods is required")
	}
	if len(c.Scenario.Nodes) == 0 {
		return errors.New("scenario.nodes is required")
	}
	if len(c.Technologies) == 0 {
		return errors.New("technologies section is required")
	}
	if len(c.Variants) == 0 {
		return errors.New("variants section is required")
	}
	// Validate entries by constructing the model values.
	for _, t := range c.Technologies {
		if err := t.ToModel().Validate(); err != nil {
			return fmt.Errorf("technology config invalid: %w", err)
		}
	}
	for _, v := range c.Variants {
		if err := v.ToModel().Validate(); err != nil {
			return fmt.Errorf("variant config invalid: %w", err)
		}
	}
	for id, b := range c.Bounds {
		if err := (model.ShareBounds{Min: b.Min, Max: b.Max}).Validate(); err != nil {
			return fmt.Errorf("bounds for %s invalid: %w", id, err)
		}
	}
	return nil
}

// ToInputs converts the loaded config into the expander's input object.
func (c *Config) ToInputs() model.ExpansionInputs {
	in := model.ExpansionInputs{
		Periods: c.Scenario.Periods,
		Nodes:   c.Scenario.Nodes,
		Bounds:  make(map[string]model.ShareBounds, len(c.Bounds)),
	}
	for _, t := range c.Technologies {
		in.Technologies = append(in.Technologies, t.ToModel())
	}
	for _, v := range c.Variants {
		in.Variants = append(in.Variants, v.ToModel())
	}
	for id, b := range c.Bounds {
		in.Bounds[id] = model.ShareBounds{Min: b.Min, Max: b.Max}
	}
	return in
}

func (t TechnologyConfig) ToModel() model.BaseTechnology {
	return model.BaseTechnology{
		ID:               t.ID,
		Efficiency:       t.Efficiency,
		OutputCapacityMW: t.OutputCapacityMW,
		VariableCost:     t.VariableCost,
		Fuel:             t.Fuel,
		LifetimeYears:    t.LifetimeYears,
		Exempt:           t.Exempt,
		CoolingVariants:  t.CoolingVariants,
	}
}

func (v VariantConfig) ToModel() model.Variant {
	return model.Variant{
		ID:                v.ID,
		EfficiencyPenalty: v.EfficiencyPenalty,
		CostDelta:         v.CostDelta,
		WithdrawalRate:    v.WithdrawalRate,
		ConsumptionRate:   v.ConsumptionRate,
		ParasiticLoad:     v.ParasiticLoad,
	}
}

type variantFileWrapper struct {
	Variants []VariantConfig `yaml:"variants"`
}

// LoadVariantFile reads a standalone variant preset file
// (a YAML document with a single top-level variants section).
func LoadVariantFile(path string) ([]VariantConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var w variantFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return nil, err
	}
	return w.Variants, nil
}

// MergeVariants overlays inline variant definitions onto the file-loaded base
// list, matching by id. Non-zero fields of an override replace the base
// fields; overrides with unknown ids are appended as new variants.
func MergeVariants(base, overrides []VariantConfig) []VariantConfig {
	out := make([]VariantConfig, len(base))
	copy(out, base)
	index := make(map[string]int, len(out))
	for i, v := range out {
		index[v.ID] = i
	}
	for _, o := range overrides {
		i, ok := index[o.ID]
		if !ok {
			index[o.ID] = len(out)
			out = append(out, o)
			continue
		}
		merged := out[i]
		if o.EfficiencyPenalty != 0 {
			merged.EfficiencyPenalty = o.EfficiencyPenalty
		}
		if o.CostDelta != 0 {
			merged.CostDelta = o.CostDelta
		}
		if o.WithdrawalRate != 0 {
			merged.WithdrawalRate = o.WithdrawalRate
		}
		if o.ConsumptionRate != 0 {
			merged.ConsumptionRate = o.ConsumptionRate
		}
		if o.ParasiticLoad != 0 {
			merged.ParasiticLoad = o.ParasiticLoad
		}
		out[i] = merged
	}
	return out
}
