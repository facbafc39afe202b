package main

import (
	"fmt"
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/mgraile/augur/internal/output"
	"github.com/mgraile/augur/pkg/analyzer/cohesion"
)

func cohesionCmd() *cli.Command {
	return &cli.Command{
		Name:      "cohesion",
		Usage:     "Analyze class cohesion and file coupling",
		ArgsUsage: "<snapshot.json>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "sort",
				Value: "cohesion",
				Usage: "Sort classes by: cohesion, coupling, methods",
			},
			&cli.IntFlag{
				Name:  "top",
				Value: 20,
				Usage: "Show top N classes",
			},
		},
		Action: runCohesionCmd,
	}
}

func runCohesionCmd(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	snap, err := loadSnapshot(c)
	if err != nil {
		return err
	}

	result, err := cohesion.New().Analyze(c.Context, snap)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	classes := make([]cohesion.ClassResult, len(result.Classes))
	copy(classes, result.Classes)
	switch c.String("sort") {
	case "coupling":
		sort.Slice(classes, func(i, j int) bool { return classes[i].Coupling < classes[j].Coupling })
	case "methods":
		sort.Slice(classes, func(i, j int) bool { return classes[i].Methods > classes[j].Methods })
	default:
		sort.Slice(classes, func(i, j int) bool { return classes[i].Cohesion < classes[j].Cohesion })
	}
	if top := c.Int("top"); top > 0 && len(classes) > top {
		classes = classes[:top]
	}

	formatter, err := newFormatter(c, cfg)
	if err != nil {
		return err
	}
	defer formatter.Close()

	var rows [][]string
	for _, cls := range classes {
		rows = append(rows, []string{
			truncate(cls.Name, 30),
			truncate(cls.Filepath, 40),
			fmt.Sprintf("%d", cls.Methods),
			fmt.Sprintf("%.2f", cls.Cohesion),
			fmt.Sprintf("%.2f", cls.Coupling),
		})
	}

	footer := []string{
		"Average", "",
		fmt.Sprintf("%d classes", result.Summary.TotalClasses),
		fmt.Sprintf("%.2f", result.Summary.AvgCohesion),
		fmt.Sprintf("%.2f", result.Summary.AvgCoupling),
	}

	table := output.NewTable("Cohesion Analysis",
		[]string{"Class", "File", "Methods", "Cohesion", "Coupling"},
		rows, footer, result)
	return formatter.Output(table)
}
