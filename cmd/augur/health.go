package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/mgraile/augur/internal/cache"
	"github.com/mgraile/augur/internal/output"
	"github.com/mgraile/augur/pkg/analyzer/entity"
	"github.com/mgraile/augur/pkg/stats"
)

func healthCmd() *cli.Command {
	return &cli.Command{
		Name:      "health",
		Usage:     "Compute the codebase health summary and grade",
		ArgsUsage: "<snapshot.json>",
		Action:    runHealthCmd,
	}
}

func runHealthCmd(c *cli.Context) error {
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
	summary := calc.Summary()

	formatter, err := newFormatter(c, cfg)
	if err != nil {
		return err
	}
	defer formatter.Close()

	if summary.Error != "" {
		return fmt.Errorf("summary failed: %s", summary.Error)
	}

	trend, runs := recordHealthTrend(openCache(c, cfg), summary.HealthScore)

	card := &output.Scorecard{
		Title: "Codebase Health",
		Score: summary.HealthScore,
		Grade: summary.Grade,
		Components: []output.ScoreComponent{
			{Label: "Files", Value: fmt.Sprintf("%d", summary.Files)},
			{Label: "Functions", Value: fmt.Sprintf("%d", summary.Functions)},
			{Label: "Classes", Value: fmt.Sprintf("%d", summary.Classes)},
			{Label: "Avg complexity", Value: fmt.Sprintf("%.2f", summary.AvgComplexity)},
			{Label: "Maintainability", Value: fmt.Sprintf("%.1f", summary.AvgMaintainability)},
			{Label: "Documentation", Value: fmt.Sprintf("%.0f%%", summary.DocCoverage*100)},
			{Label: "Test coverage", Value: fmt.Sprintf("%.0f%%", summary.TestCoverage*100)},
			{Label: "Dead code", Value: fmt.Sprintf("%.0f%%", summary.DeadCodePercentage*100)},
			{Label: "Debt ratio", Value: fmt.Sprintf("%.2f", summary.DebtRatio)},
		},
		Data: summary,
	}
	if runs >= 2 {
		card.Components = append(card.Components, output.ScoreComponent{
			Label: "Trend",
			Value: fmt.Sprintf("%+.2f pts/run over %d runs", trend.Slope*100, runs),
		})
	}
	return formatter.Output(card)
}

// Cap on the persisted health-score series.
const healthHistoryLimit = 50

const healthHistoryKey = "health-history"

// recordHealthTrend appends the score to the cached series of health
// scores and returns regression statistics over it. The series spans
// snapshot revisions, so entries are stored without a fingerprint.
// With caching disabled the series holds only the current score.
func recordHealthTrend(store *cache.Cache, score float64) (stats.TrendStats, int) {
	var history []float64
	store.GetJSON(healthHistoryKey, "", &history)
	history = append(history, score)
	if len(history) > healthHistoryLimit {
		history = history[len(history)-healthHistoryLimit:]
	}
	store.SetJSON(healthHistoryKey, "", history)
	return stats.ComputeTrend(history), len(history)
}
