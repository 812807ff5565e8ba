package main

import (
	"flag"
	"fmt"
	"os"

	"cooling-expander/internal/config"
	"cooling-expander/internal/expand"
	"cooling-expander/internal/scenario"
)

// Demo:
// - Build the Austria tutorial base set in code (no config file needed)
// - Expand it with the default cooling variants
// - Print the added technologies and constraints to show how the pieces fit
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional; overrides the built-in Austria set)")
	outJSON := flag.String("out", "", "Optional path to write the scenario handoff JSON")
	flag.Parse()

	// Defaults: the built-in Austria set (7 plants, 2010-2040, single node).
	inputs := scenario.AustriaInputs()

	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		inputs = cfg.ToInputs()
	}

	engine := expand.New()
	res, err := engine.Run(inputs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "expansion failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("=== Cooling Technology Expansion Demo ===")
	fmt.Printf("Expanded %d plants (%d exempt from cooling)\n",
		res.Summary.BasesExpanded, res.Summary.BasesExempt)

	fmt.Printf("\nAdded %d cooling technology variants:\n", len(res.Composites))
	for _, c := range res.Composites {
		fmt.Printf("  - %-24s eff=%.2f cost=%6.1f withdrawal=%8.1f m3/h\n",
			c.ID, c.Efficiency, c.Cost, c.WaterWithdrawalM3)
	}

	fmt.Printf("\nAdded %d share constraints (showing one period/node per group):\n",
		len(res.Constraints))
	seen := map[string]bool{}
	for _, s := range res.Constraints {
		if seen[s.GroupID] {
			continue
		}
		seen[s.GroupID] = true
		fmt.Printf("  - %-14s share in [%.2f, %.2f], %d members\n",
			s.GroupID, s.MinShare, s.MaxShare, len(s.MemberIDs))
	}

	if *outJSON != "" {
		doc := scenario.BuildDocument("Austrian energy model + Water", "baseline_cooling", res, true)
		if err := scenario.WriteJSON(*outJSON, doc); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote scenario handoff to %s\n", *outJSON)
	}
}
