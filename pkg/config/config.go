package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds all configuration options for augur.
type Config struct {
	// Analysis settings
	Analysis AnalysisConfig `koanf:"analysis"`

	// Thresholds for insights and debt indicators
	Thresholds ThresholdConfig `koanf:"thresholds"`

	// Health score component weights
	Weights WeightConfig `koanf:"weights"`

	// Cache settings
	Cache CacheConfig `koanf:"cache"`

	// Output settings
	Output OutputConfig `koanf:"output"`
}

// AnalysisConfig controls which analyzers run and the default engine
// level.
type AnalysisConfig struct {
	Level      string `koanf:"level"` // basic, comprehensive, deep
	Complexity bool   `koanf:"complexity"`
	Cohesion   bool   `koanf:"cohesion"`
	Cycles     bool   `koanf:"cycles"`
	DeadCode   bool   `koanf:"dead_code"`
	Debt       bool   `koanf:"debt"`
}

// ThresholdConfig defines metric thresholds used by insights and debt
// indicators.
type ThresholdConfig struct {
	CyclomaticComplexity float64 `koanf:"cyclomatic_complexity"`
	DocCoverage          float64 `koanf:"doc_coverage"`
	Instability          float64 `koanf:"instability"`
	DebtRatio            float64 `koanf:"debt_ratio"`
	DeadCode             float64 `koanf:"dead_code"`
	Maintainability      float64 `koanf:"maintainability"`
	FileLines            int     `koanf:"file_lines"`
	FunctionDependencies int     `koanf:"function_dependencies"`
	ClassMethods         int     `koanf:"class_methods"`
}

// WeightConfig defines the health score component weights. The five
// weights should sum to 1.
type WeightConfig struct {
	Maintainability float64 `koanf:"maintainability"`
	Documentation   float64 `koanf:"documentation"`
	TestCoverage    float64 `koanf:"test_coverage"`
	DeadCode        float64 `koanf:"dead_code"`
	Debt            float64 `koanf:"debt"`
}

// CacheConfig controls caching behavior.
type CacheConfig struct {
	Enabled bool   `koanf:"enabled"`
	Dir     string `koanf:"dir"`
	TTL     int    `koanf:"ttl"` // TTL in hours
}

// OutputConfig controls output formatting.
type OutputConfig struct {
	Format  string `koanf:"format"` // text, json, markdown, yaml
	Color   bool   `koanf:"color"`
	Verbose bool   `koanf:"verbose"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			Level:      "comprehensive",
			Complexity: true,
			Cohesion:   true,
			Cycles:     true,
			DeadCode:   true,
			Debt:       true,
		},
		Thresholds: ThresholdConfig{
			CyclomaticComplexity: 5,
			DocCoverage:          0.5,
			Instability:          0.7,
			DebtRatio:            0.3,
			DeadCode:             0.2,
			Maintainability:      50,
			FileLines:            500,
			FunctionDependencies: 10,
			ClassMethods:         20,
		},
		Weights: WeightConfig{
			Maintainability: 0.30,
			Documentation:   0.20,
			TestCoverage:    0.20,
			DeadCode:        0.15,
			Debt:            0.15,
		},
		Cache: CacheConfig{
			Enabled: true,
			Dir:     ".augur/cache",
			TTL:     24,
		},
		Output: OutputConfig{
			Format:  "text",
			Color:   true,
			Verbose: false,
		},
	}
}

// Load loads configuration from a file.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	// Determine parser based on extension
	var parser koanf.Parser
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".toml":
		parser = toml.Parser()
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		parser = toml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault tries to load config from standard locations or returns
// defaults.
func LoadOrDefault() *Config {
	configNames := []string{
		"augur.toml",
		"augur.yaml",
		"augur.yml",
		"augur.json",
		".augur.toml",
		".augur.yaml",
		".augur.yml",
		".augur.json",
	}

	searchDirs := []string{".", ".augur"}

	for _, dir := range searchDirs {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				cfg, err := Load(path)
				if err == nil {
					return cfg
				}
			}
		}
	}

	return DefaultConfig()
}
