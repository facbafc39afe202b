package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig() returned nil")
	}

	if cfg.Analysis.Level != "comprehensive" {
		t.Errorf("Analysis.Level = %s, want comprehensive", cfg.Analysis.Level)
	}
	if !cfg.Analysis.Complexity {
		t.Error("Analysis.Complexity should be true by default")
	}
	if !cfg.Analysis.Cycles {
		t.Error("Analysis.Cycles should be true by default")
	}

	if cfg.Thresholds.CyclomaticComplexity != 5 {
		t.Errorf("Thresholds.CyclomaticComplexity = %f, want 5", cfg.Thresholds.CyclomaticComplexity)
	}
	if cfg.Thresholds.DocCoverage != 0.5 {
		t.Errorf("Thresholds.DocCoverage = %f, want 0.5", cfg.Thresholds.DocCoverage)
	}
	if cfg.Thresholds.Instability != 0.7 {
		t.Errorf("Thresholds.Instability = %f, want 0.7", cfg.Thresholds.Instability)
	}
	if cfg.Thresholds.DebtRatio != 0.3 {
		t.Errorf("Thresholds.DebtRatio = %f, want 0.3", cfg.Thresholds.DebtRatio)
	}
	if cfg.Thresholds.DeadCode != 0.2 {
		t.Errorf("Thresholds.DeadCode = %f, want 0.2", cfg.Thresholds.DeadCode)
	}

	total := cfg.Weights.Maintainability + cfg.Weights.Documentation +
		cfg.Weights.TestCoverage + cfg.Weights.DeadCode + cfg.Weights.Debt
	if total < 0.999 || total > 1.001 {
		t.Errorf("health weights sum to %f, want 1", total)
	}

	if !cfg.Cache.Enabled {
		t.Error("Cache.Enabled should be true by default")
	}
	if cfg.Output.Format != "text" {
		t.Errorf("Output.Format = %s, want text", cfg.Output.Format)
	}
}

func TestLoad_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "augur.toml")
	content := `
[analysis]
level = "deep"

[thresholds]
cyclomatic_complexity = 8.0

[output]
format = "json"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Analysis.Level != "deep" {
		t.Errorf("Analysis.Level = %s, want deep", cfg.Analysis.Level)
	}
	if cfg.Thresholds.CyclomaticComplexity != 8 {
		t.Errorf("Thresholds.CyclomaticComplexity = %f, want 8", cfg.Thresholds.CyclomaticComplexity)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %s, want json", cfg.Output.Format)
	}
	// Unset fields keep defaults.
	if cfg.Thresholds.DocCoverage != 0.5 {
		t.Errorf("Thresholds.DocCoverage = %f, want default 0.5", cfg.Thresholds.DocCoverage)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "augur.yaml")
	content := "analysis:\n  level: basic\ncache:\n  enabled: false\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Analysis.Level != "basic" {
		t.Errorf("Analysis.Level = %s, want basic", cfg.Analysis.Level)
	}
	if cfg.Cache.Enabled {
		t.Error("Cache.Enabled should be false")
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("Load should fail for a missing file")
	}
}
