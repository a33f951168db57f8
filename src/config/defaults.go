package config

import "time"

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Agent: AgentConfig{
			Name:        "complexity-analyzer",
			Version:     "1.0.0",
			Description: "Heuristic source complexity analyzer",
		},
		Analyzer: AnalyzerConfig{
			MaxFunctions:         10,
			MaxClasses:           5,
			ComplexityCap:        50,
			CognitiveFactor:      1.3,
			BodyMinLines:         10,
			BodyMaxLines:         29,
			PlaceholderFunctions: true,
		},
		Recommendations: RecommendationsConfig{
			DecomposeComplexity: 15,
			RefactorComplexity:  25,
			MaxFileCodeLines:    500,
			FunctionComplexity:  10,
			MaxFunctionLines:    50,
		},
		Concurrency: ConcurrencyConfig{
			MaxParallelFiles: 8,
		},
		Cache: CacheConfig{
			Enabled:    true,
			MaxEntries: 256,
		},
		Exclusions: ExclusionsConfig{
			FilePatterns: []string{
				"**/vendor/**", "**/node_modules/**", "**/.git/**",
				"**/dist/**", "**/build/**",
			},
		},
		Server: ServerConfig{
			Address:         ":8080",
			Mode:            "release",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxBodyBytes:    2 << 20,
		},
		Output: OutputConfig{
			Formats:        []string{"json"},
			OutputDir:      ".",
			IncludeSignals: false,
			HotspotsTopN:   10,
		},
		Logging: LoggingConfig{
			Level:            "info",
			Format:           "text",
			IncludeTimestamp: true,
			IncludeCaller:    false,
		},
	}
}
