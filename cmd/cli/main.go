package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"cooling-expander/internal/analysis"
	"cooling-expander/internal/config"
	"cooling-expander/internal/expand"
	"cooling-expander/internal/scenario"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "expand":
		cmdExpand(os.Args[2:])
	case "analyze":
		cmdAnalyze(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli expand --config examples/config.yaml --out-dir results/")
	fmt.Println("  cli analyze --config examples/config.yaml")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - expand writes composites.csv, constraints.csv and scenario.json")
	fmt.Println("  - analyze prints a per-plant cooling trade-off table")
}

func cmdExpand(args []string) {
	fs := flag.NewFlagSet("expand", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	outDir := fs.String("out-dir", "results", "Output directory")
	modelName := fs.String("model", "energy model", "Model name written into scenario.json")
	scenName := fs.String("scenario", "baseline_cooling", "Scenario name written into scenario.json")
	supply := fs.Bool("supply", true, "Include water-supply technologies in scenario.json")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}

	engine := expand.New()
	res, err := engine.Run(cfg.ToInputs())
	if err != nil {
		fmt.Fprintf(os.Stderr, "expansion failed: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		panic(err)
	}
	compositesPath := filepath.Join(*outDir, "composites.csv")
	if err := expand.WriteCompositesCSV(compositesPath, res.Composites); err != nil {
		panic(err)
	}
	constraintsPath := filepath.Join(*outDir, "constraints.csv")
	if err := expand.WriteConstraintsCSV(constraintsPath, res.Constraints); err != nil {
		panic(err)
	}
	scenarioPath := filepath.Join(*outDir, "scenario.json")
	doc := scenario.BuildDocument(*modelName, *scenName, res, *supply)
	if err := scenario.WriteJSON(scenarioPath, doc); err != nil {
		panic(err)
	}

	fmt.Printf("Wrote %d composites to %s\n", len(res.Composites), compositesPath)
	fmt.Printf("Wrote %d constraints to %s\n", len(res.Constraints), constraintsPath)
	fmt.Printf("Wrote scenario handoff to %s\n", scenarioPath)
	fmt.Printf("Expanded %d plants (%d exempt) over %d periods x %d nodes\n",
		res.Summary.BasesExpanded, res.Summary.BasesExempt, res.Summary.Periods, res.Summary.Nodes)
}

func cmdAnalyze(args []string) {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}

	engine := expand.New()
	res, err := engine.Run(cfg.ToInputs())
	if err != nil {
		fmt.Fprintf(os.Stderr, "expansion failed: %v\n", err)
		os.Exit(1)
	}

	ranked := analysis.RankByWithdrawalSpread(res.CompositesByBase())
	fmt.Printf("%-4s %-14s %-6s %-12s %-16s %-12s %-12s\n",
		"rank", "plant", "count", "eff min/max", "withdraw m3/h", "driest", "thirstiest")
	for i, r := range ranked {
		fmt.Printf("%-4d %-14s %-6d %-5.2f/%-5.2f  %7.1f-%-7.1f %-12s %-12s\n",
			i+1,
			r.Base,
			r.Count,
			r.MinEfficiency,
			r.MaxEfficiency,
			r.MinWithdrawalM3,
			r.MaxWithdrawalM3,
			r.DriestVariant,
			r.ThirstiestVariant,
		)
	}
}
