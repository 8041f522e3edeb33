// Package config provides configuration for the word statistics service.
// Settings are loaded from an optional config file and WORD_STATS_* environment
// variables via viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Default values applied when a setting is absent or non-positive.
const (
	DefaultAddr              = ":8080"
	DefaultDataDir           = "./word_stats_data"
	DefaultSortThreshold     = 1024
	DefaultDefaultTopN       = 100
	DefaultMaxConcurrentJobs = 4
	DefaultMaxRequestBytes   = 10 << 20 // 10 MiB
)

// Settings contains all configuration options for the service.
type Settings struct {
	Addr              string `mapstructure:"addr"`                // HTTP listen address
	DataDir           string `mapstructure:"data_dir"`            // Directory for persisted reports
	SortThreshold     int    `mapstructure:"sort_threshold"`      // Segment length below which the sorter runs sequentially
	SortBudget        int    `mapstructure:"sort_budget"`         // Parallelism budget; 0 means derive from CPU count
	DefaultTopN       int    `mapstructure:"default_top_n"`       // Default number of records returned by text analysis
	MaxConcurrentJobs int    `mapstructure:"max_concurrent_jobs"` // Worker slots for background analysis jobs
	MaxRequestBytes   int64  `mapstructure:"max_request_bytes"`   // Request body size limit
}

// Load reads settings from the given config file (optional — pass "" to
// rely on defaults and environment variables only). Environment variables
// use the WORD_STATS_ prefix, e.g. WORD_STATS_SORT_THRESHOLD.
func Load(configFile string) (Settings, error) {
	v := viper.New()

	v.SetDefault("addr", DefaultAddr)
	v.SetDefault("data_dir", DefaultDataDir)
	v.SetDefault("sort_threshold", DefaultSortThreshold)
	v.SetDefault("sort_budget", 0)
	v.SetDefault("default_top_n", DefaultDefaultTopN)
	v.SetDefault("max_concurrent_jobs", DefaultMaxConcurrentJobs)
	v.SetDefault("max_request_bytes", DefaultMaxRequestBytes)

	v.SetEnvPrefix("WORD_STATS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return Settings{}, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	settings.ApplyDefaults()
	if problems := settings.Validate(); len(problems) > 0 {
		return Settings{}, fmt.Errorf("invalid settings: %s", strings.Join(problems, "; "))
	}

	return settings, nil
}

// ApplyDefaults fills in default values for unset or non-positive settings.
// SortBudget is deliberately left alone: zero means "derive from CPU count"
// at sort time.
func (s *Settings) ApplyDefaults() {
	if s.Addr == "" {
		s.Addr = DefaultAddr
	}
	if s.DataDir == "" {
		s.DataDir = DefaultDataDir
	}
	if s.SortThreshold <= 0 {
		s.SortThreshold = DefaultSortThreshold
	}
	if s.DefaultTopN <= 0 {
		s.DefaultTopN = DefaultDefaultTopN
	}
	if s.MaxConcurrentJobs <= 0 {
		s.MaxConcurrentJobs = DefaultMaxConcurrentJobs
	}
	if s.MaxRequestBytes <= 0 {
		s.MaxRequestBytes = DefaultMaxRequestBytes
	}
}

// Validate checks the settings for problems and returns a message per
// problem found.
func (s *Settings) Validate() []string {
	var problems []string

	if s.SortBudget < 0 {
		problems = append(problems, fmt.Sprintf("sort_budget must not be negative (got %d)", s.SortBudget))
	}
	if strings.TrimSpace(s.Addr) == "" {
		problems = append(problems, "addr cannot be empty or whitespace-only")
	}
	if strings.TrimSpace(s.DataDir) == "" {
		problems = append(problems, "data_dir cannot be empty or whitespace-only")
	}

	return problems
}
