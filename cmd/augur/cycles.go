package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/mgraile/augur/internal/output"
	"github.com/mgraile/augur/pkg/analyzer/cycles"
)

func cyclesCmd() *cli.Command {
	return &cli.Command{
		Name:      "cycles",
		Usage:     "Detect circular import dependencies",
		ArgsUsage: "<snapshot.json>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "problematic-only",
				Usage: "Show only cycles mixing static and dynamic imports",
			},
		},
		Action: runCyclesCmd,
	}
}

func runCyclesCmd(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	snap, err := loadSnapshot(c)
	if err != nil {
		return err
	}

	result, err := cycles.New().Analyze(c.Context, snap)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	formatter, err := newFormatter(c, cfg)
	if err != nil {
		return err
	}
	defer formatter.Close()

	if result.Summary.TotalCycles == 0 {
		if formatter.Format() == output.FormatText {
			color.Green("No circular dependencies found")
			return nil
		}
		return formatter.Output(result)
	}

	problematicOnly := c.Bool("problematic-only")

	var rows [][]string
	for i, cycle := range result.Cycles {
		if problematicOnly && !cycle.Problematic {
			continue
		}
		status := "static"
		if cycle.Problematic {
			status = "mixed"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", len(cycle.Files)),
			status,
			truncate(strings.Join(cycle.Files, " -> "), 80),
		})
	}

	footer := []string{
		"Total",
		fmt.Sprintf("%d cycles", result.Summary.TotalCycles),
		fmt.Sprintf("%d problematic", result.Summary.ProblematicCycles),
		fmt.Sprintf("largest: %d files", result.Summary.LargestCycle),
	}

	table := output.NewTable("Circular Dependencies",
		[]string{"#", "Files", "Imports", "Cycle"},
		rows, footer, result)
	return formatter.Output(table)
}
