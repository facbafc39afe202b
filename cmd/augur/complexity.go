package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/mgraile/augur/internal/output"
	"github.com/mgraile/augur/internal/progress"
	"github.com/mgraile/augur/pkg/analyzer"
	"github.com/mgraile/augur/pkg/analyzer/complexity"
)

func complexityCmd() *cli.Command {
	return &cli.Command{
		Name:      "complexity",
		Aliases:   []string{"cx"},
		Usage:     "Analyze cyclomatic and cognitive complexity",
		ArgsUsage: "<snapshot.json>",
		Flags: []cli.Flag{
			&cli.Float64Flag{
				Name:  "threshold",
				Value: 0,
				Usage: "Only show files with average cyclomatic complexity above this value",
			},
			&cli.BoolFlag{
				Name:  "functions-only",
				Usage: "Show only function-level metrics",
			},
		},
		Action: runComplexityCmd,
	}
}

func runComplexityCmd(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	snap, err := loadSnapshot(c)
	if err != nil {
		return err
	}
	if len(snap.Files) == 0 {
		color.Yellow("Snapshot contains no files")
		return nil
	}

	threshold := c.Float64("threshold")
	functionsOnly := c.Bool("functions-only")

	bar := progress.NewTracker("Analyzing complexity...", len(snap.Files))
	ctx := analyzer.WithTracker(c.Context, bar.Analyzer())
	result, err := complexity.New().Analyze(ctx, snap)
	bar.FinishSuccess()
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	formatter, err := newFormatter(c, cfg)
	if err != nil {
		return err
	}
	defer formatter.Close()

	var rows [][]string
	headers := []string{"File", "Functions", "Avg CC", "Avg Cognitive", "MI"}
	if functionsOnly {
		headers = []string{"Function", "File", "CC", "Cognitive", "MI"}
	}

	for _, file := range result.Files {
		if threshold > 0 && file.AvgCyclomatic <= threshold {
			continue
		}
		if functionsOnly {
			for _, fn := range file.Functions {
				rows = append(rows, []string{
					truncate(fn.Name, 40),
					truncate(file.Path, 40),
					fmt.Sprintf("%d", fn.Metrics.Cyclomatic),
					fmt.Sprintf("%.1f", fn.Metrics.Cognitive),
					fmt.Sprintf("%.1f", fn.Metrics.MaintainabilityIndex),
				})
			}
			continue
		}
		rows = append(rows, []string{
			truncate(file.Path, 50),
			fmt.Sprintf("%d", len(file.Functions)),
			fmt.Sprintf("%.1f", file.AvgCyclomatic),
			fmt.Sprintf("%.1f", file.AvgCognitive),
			fmt.Sprintf("%.1f", file.AvgMaintainability),
		})
	}

	footer := []string{
		"Total",
		fmt.Sprintf("%d", result.Summary.TotalFunctions),
		fmt.Sprintf("%.1f", result.Summary.AvgCyclomatic),
		fmt.Sprintf("%.1f", result.Summary.AvgCognitive),
		fmt.Sprintf("%.1f", result.Summary.AvgMaintainability),
	}

	table := output.NewTable("Complexity Analysis", headers, rows, footer, result)
	return formatter.Output(table)
}
