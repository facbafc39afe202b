package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/mgraile/augur/internal/output"
	"github.com/mgraile/augur/pkg/analyzer/entity"
)

func deadcodeCmd() *cli.Command {
	return &cli.Command{
		Name:      "deadcode",
		Aliases:   []string{"dead"},
		Usage:     "List functions with no usages or call sites",
		ArgsUsage: "<snapshot.json>",
		Action:    runDeadcodeCmd,
	}
}

func runDeadcodeCmd(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	snap, err := loadSnapshot(c)
	if err != nil {
		return err
	}

	calc, err := entity.NewCalculator(snap, calculatorOptions(cfg)...)
	if err != nil {
		return err
	}
	dead := calc.DeadFunctions()
	pct := calc.DeadCodePercentage()

	formatter, err := newFormatter(c, cfg)
	if err != nil {
		return err
	}
	defer formatter.Close()

	if len(dead) == 0 {
		if formatter.Format() == output.FormatText {
			color.Green("No dead functions found")
			return nil
		}
	}

	rows := make([][]string, 0, len(dead))
	for _, identity := range dead {
		rows = append(rows, []string{identity})
	}

	footer := []string{fmt.Sprintf("%d dead (%.0f%%)", len(dead), pct*100)}

	data := struct {
		DeadFunctions      []string `json:"dead_functions"`
		DeadCodePercentage float64  `json:"dead_code_percentage"`
	}{dead, pct}

	table := output.NewTable("Dead Code", []string{"Function"}, rows, footer, data)
	return formatter.Output(table)
}
