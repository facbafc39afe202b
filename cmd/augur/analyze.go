package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/mgraile/augur/internal/output"
	"github.com/mgraile/augur/internal/vcs"
	"github.com/mgraile/augur/pkg/analyzer/engine"
)

func analyzeCmd() *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Aliases:   []string{"a"},
		Usage:     "Run unified analysis at basic, comprehensive, or deep level",
		ArgsUsage: "<snapshot.json>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "level",
				Aliases: []string{"l"},
				Usage:   "Analysis level: basic, comprehensive, deep",
			},
		},
		Action: runAnalyzeCmd,
	}
}

func runAnalyzeCmd(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	levelName := c.String("level")
	if levelName == "" {
		levelName = cfg.Analysis.Level
	}
	level, err := engine.ParseLevel(levelName)
	if err != nil {
		return err
	}

	snap, err := loadSnapshot(c)
	if err != nil {
		return err
	}

	formatter, err := newFormatter(c, cfg)
	if err != nil {
		return err
	}
	defer formatter.Close()

	store := openCache(c, cfg)
	cacheName := "analyze:" + string(level)
	fingerprint := snap.Fingerprint()

	var result *engine.Result
	if !store.GetJSON(cacheName, fingerprint, &result) || result == nil {
		opts := append(engineOptions(cfg),
			engine.WithCommit(vcs.ShortHash(vcs.HeadCommit("."))))
		eng, err := engine.New(snap, opts...)
		if err != nil {
			return err
		}
		result = eng.Analyze(c.Context, level)
		if result.Error == "" {
			store.SetJSON(cacheName, fingerprint, result)
		}
	}

	if formatter.Format() == output.FormatJSON || formatter.Format() == output.FormatYAML {
		return formatter.Output(result)
	}
	return renderResult(formatter, result)
}

func renderResult(formatter *output.Formatter, result *engine.Result) error {
	if result.Error != "" {
		fmt.Fprintf(formatter.Writer(), "analysis failed: %s\n", result.Error)
	}

	if b := result.Basic; b != nil {
		fmt.Fprintln(formatter.Writer(), b.Summary)
		fmt.Fprintln(formatter.Writer())
	}

	if comp := result.Comprehensive; comp != nil {
		var rows [][]string
		for _, m := range comp.MostImported {
			rows = append(rows, []string{truncate(m.Module, 60), fmt.Sprintf("%d", m.Count)})
		}
		if len(rows) > 0 {
			table := output.NewTable("Most Imported Modules",
				[]string{"Module", "Imports"}, rows, nil, comp.MostImported)
			if err := formatter.Output(table); err != nil {
				return err
			}
		}
		fmt.Fprintf(formatter.Writer(),
			"Avg complexity: %.2f  Naming: %.0f%% snake_case functions, %.0f%% CamelCase classes\n\n",
			comp.AvgComplexity,
			comp.Naming.SnakeCaseFunctions*100,
			comp.Naming.CamelCaseClasses*100)
	}

	if deep := result.Deep; deep != nil {
		card := &output.Scorecard{
			Title: "Codebase Health",
			Score: deep.Health.Score,
			Grade: deep.Health.Grade,
			Components: []output.ScoreComponent{
				{Label: "Maintainability", Value: fmt.Sprintf("%.1f", deep.Health.Maintainability)},
				{Label: "Documentation", Value: fmt.Sprintf("%.0f%%", deep.Health.Documentation*100)},
				{Label: "Test coverage", Value: fmt.Sprintf("%.0f%%", deep.Health.TestCoverage*100)},
				{Label: "Dead code", Value: fmt.Sprintf("%.0f%%", deep.Health.DeadCode*100)},
				{Label: "Debt ratio", Value: fmt.Sprintf("%.2f", deep.Health.DebtRatio)},
			},
			Data: deep,
		}
		if err := formatter.Output(card); err != nil {
			return err
		}

		for _, insight := range deep.Insights {
			fmt.Fprintf(formatter.Writer(), "  ! %s\n", insight)
		}
		for _, rec := range deep.Recommendations {
			fmt.Fprintf(formatter.Writer(), "  > %s\n", rec)
		}
	}

	return nil
}
