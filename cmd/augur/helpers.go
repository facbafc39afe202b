package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/mgraile/augur/internal/cache"
	"github.com/mgraile/augur/internal/output"
	"github.com/mgraile/augur/pkg/analyzer/engine"
	"github.com/mgraile/augur/pkg/analyzer/entity"
	"github.com/mgraile/augur/pkg/codegraph"
	"github.com/mgraile/augur/pkg/config"
)

// snapshotArg returns the snapshot path from the first positional arg.
func snapshotArg(c *cli.Context) (string, error) {
	if c.Args().Len() == 0 {
		return "", fmt.Errorf("snapshot path required")
	}
	return c.Args().First(), nil
}

// loadConfig resolves the effective config. An explicitly passed
// --config path that fails to load is an error; without the flag the
// default search locations apply.
func loadConfig(c *cli.Context) (*config.Config, error) {
	if path := c.String("config"); path != "" {
		return config.Load(path)
	}
	return config.LoadOrDefault(), nil
}

// calculatorOptions maps the configured weights and debt limits onto
// entity calculator options.
func calculatorOptions(cfg *config.Config) []entity.Option {
	return []entity.Option{
		entity.WithWeights(entity.Weights{
			Maintainability: cfg.Weights.Maintainability,
			Documentation:   cfg.Weights.Documentation,
			TestCoverage:    cfg.Weights.TestCoverage,
			DeadCode:        cfg.Weights.DeadCode,
			Debt:            cfg.Weights.Debt,
		}),
		entity.WithDebtThresholds(entity.DebtThresholds{
			FileLines:    cfg.Thresholds.FileLines,
			FunctionDeps: cfg.Thresholds.FunctionDependencies,
			ClassMethods: cfg.Thresholds.ClassMethods,
		}),
	}
}

// engineOptions maps the configured thresholds and analyzer toggles
// onto engine options.
func engineOptions(cfg *config.Config) []engine.Option {
	return []engine.Option{
		engine.WithThresholds(engine.Thresholds{
			Complexity:      cfg.Thresholds.CyclomaticComplexity,
			DocCoverage:     cfg.Thresholds.DocCoverage,
			Instability:     cfg.Thresholds.Instability,
			DebtRatio:       cfg.Thresholds.DebtRatio,
			DeadCode:        cfg.Thresholds.DeadCode,
			Maintainability: cfg.Thresholds.Maintainability,
		}),
		engine.WithToggles(engine.Toggles{
			Complexity: cfg.Analysis.Complexity,
			Cohesion:   cfg.Analysis.Cohesion,
			Cycles:     cfg.Analysis.Cycles,
			DeadCode:   cfg.Analysis.DeadCode,
			Debt:       cfg.Analysis.Debt,
		}),
		engine.WithCalculatorOptions(calculatorOptions(cfg)...),
	}
}

func loadSnapshot(c *cli.Context) (*codegraph.Snapshot, error) {
	path, err := snapshotArg(c)
	if err != nil {
		return nil, err
	}
	snap, err := codegraph.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot %s: %w", path, err)
	}
	return snap, nil
}

func newFormatter(c *cli.Context, cfg *config.Config) (*output.Formatter, error) {
	format := c.String("format")
	if format == "" {
		format = cfg.Output.Format
	}
	return output.NewFormatter(output.ParseFormat(format), c.String("output"), cfg.Output.Color)
}

func openCache(c *cli.Context, cfg *config.Config) *cache.Cache {
	enabled := cfg.Cache.Enabled && !c.Bool("no-cache")
	store, err := cache.New(cfg.Cache.Dir, cfg.Cache.TTL, enabled)
	if err != nil {
		store, _ = cache.New("", 0, false)
	}
	return store
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen < 4 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
