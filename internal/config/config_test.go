package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validConfig = `
scenario:
  periods: [2020, 2030]
  nodes: [Austria]
technologies:
  - id: coal_ppl
    efficiency: 0.35
    output_capacity_mw: 600
    variable_cost: 100
    fuel: coal
    lifetime_years: 40
  - id: wind_ppl
    efficiency: 1.0
    output_capacity_mw: 100
    variable_cost: 5
    exempt: true
variants:
  - id: ot_fresh
    efficiency_penalty: 0.02
    cost_delta: 5
    withdrawal_rate: 2.5
    consumption_rate: 0.1
bounds:
  coal_ppl:
    min: 0.1
    max: 0.9
`

func TestLoad_Valid(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", validConfig)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []int{2020, 2030}, cfg.Scenario.Periods)
	assert.Equal(t, []string{"Austria"}, cfg.Scenario.Nodes)
	require.Len(t, cfg.Technologies, 2)
	assert.True(t, cfg.Technologies[1].Exempt)
	require.Len(t, cfg.Variants, 1)
	assert.InDelta(t, 2.5, cfg.Variants[0].WithdrawalRate, 1e-9)

	in := cfg.ToInputs()
	assert.Len(t, in.Technologies, 2)
	assert.Len(t, in.Variants, 1)
	assert.Contains(t, in.Bounds, "coal_ppl")
}

func TestLoad_VariantFileMerge(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "presets.yaml", `
variants:
  - id: ot_fresh
    efficiency_penalty: 0.02
    cost_delta: 5
    withdrawal_rate: 2.5
    consumption_rate: 0.1
  - id: air
    efficiency_penalty: 0.05
    cost_delta: 15
`)
	path := writeFile(t, dir, "config.yaml", `
scenario:
  periods: [2020]
  nodes: [Austria]
variant_file: presets.yaml
technologies:
  - id: coal_ppl
    efficiency: 0.35
    output_capacity_mw: 600
    variable_cost: 100
variants:
  - id: ot_fresh
    cost_delta: 7
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Len(t, cfg.Variants, 2)
	byID := map[string]VariantConfig{}
	for _, v := range cfg.Variants {
		byID[v.ID] = v
	}
	// Inline override replaces the preset's cost delta and keeps the rest.
	assert.InDelta(t, 7, byID["ot_fresh"].CostDelta, 1e-9)
	assert.InDelta(t, 0.02, byID["ot_fresh"].EfficiencyPenalty, 1e-9)
	assert.InDelta(t, 0.05, byID["air"].EfficiencyPenalty, 1e-9)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "missing periods",
			content: `
scenario:
  nodes: [Austria]
technologies:
  - id: coal_ppl
    efficiency: 0.35
    output_capacity_mw: 600
variants:
  - id: air
    efficiency_penalty: 0.05
`,
			wantErr: "scenario.periods",
		},
		{
			name: "missing technologies section",
			content: `
scenario:
  periods: [2020]
  nodes: [Austria]
variants:
  - id: air
    efficiency_penalty: 0.05
`,
			wantErr: "technologies section",
		},
		{
			name: "missing variants section",
			content: `
scenario:
  periods: [2020]
  nodes: [Austria]
technologies:
  - id: coal_ppl
    efficiency: 0.35
    output_capacity_mw: 600
`,
			wantErr: "variants section",
		},
		{
			name: "efficiency out of range",
			content: `
scenario:
  periods: [2020]
  nodes: [Austria]
technologies:
  - id: coal_ppl
    efficiency: 1.35
    output_capacity_mw: 600
variants:
  - id: air
    efficiency_penalty: 0.05
`,
			wantErr: "Efficiency",
		},
		{
			name: "bounds min above max",
			content: `
scenario:
  periods: [2020]
  nodes: [Austria]
technologies:
  - id: coal_ppl
    efficiency: 0.35
    output_capacity_mw: 600
variants:
  - id: air
    efficiency_penalty: 0.05
bounds:
  coal_ppl:
    min: 0.8
    max: 0.2
`,
			wantErr: "bounds for coal_ppl",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := writeFile(t, dir, "config.yaml", tt.content)

			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeVariants_AppendsUnknown(t *testing.T) {
	base := []VariantConfig{{ID: "air", EfficiencyPenalty: 0.05}}
	out := MergeVariants(base, []VariantConfig{{ID: "ot_fresh", EfficiencyPenalty: 0.02}})
	require.Len(t, out, 2)
	assert.Equal(t, "ot_fresh", out[1].ID)
}
