package config

import "time"

// Config is the root configuration structure
type Config struct {
	Agent           AgentConfig           `yaml:"agent"`
	Analyzer        AnalyzerConfig        `yaml:"analyzer"`
	Recommendations RecommendationsConfig `yaml:"recommendations"`
	Concurrency     ConcurrencyConfig     `yaml:"concurrency"`
	Cache           CacheConfig           `yaml:"cache"`
	Exclusions      ExclusionsConfig      `yaml:"exclusions"`
	Server          ServerConfig          `yaml:"server"`
	Output          OutputConfig          `yaml:"output"`
	Logging         LoggingConfig         `yaml:"logging"`
}

// AgentConfig contains agent metadata
type AgentConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
}

// AnalyzerConfig contains settings for the complexity engine
type AnalyzerConfig struct {
	MaxFunctions    int     `yaml:"max_functions"`
	MaxClasses      int     `yaml:"max_classes"`
	ComplexityCap   int     `yaml:"complexity_cap"`
	CognitiveFactor float64 `yaml:"cognitive_factor"`

	// Function bodies are approximated by a slice of BodyMinLines up to
	// BodyMaxLines lines following the declaration.
	BodyMinLines int `yaml:"body_min_lines"`
	BodyMaxLines int `yaml:"body_max_lines"`

	// PlaceholderFunctions fills the function list with illustrative
	// entries when no declaration is detected.
	PlaceholderFunctions bool `yaml:"placeholder_functions"`
}

// RecommendationsConfig contains thresholds for advisory rules
type RecommendationsConfig struct {
	DecomposeComplexity int `yaml:"decompose_complexity"`
	RefactorComplexity  int `yaml:"refactor_complexity"`
	MaxFileCodeLines    int `yaml:"max_file_code_lines"`
	FunctionComplexity  int `yaml:"function_complexity"`
	MaxFunctionLines    int `yaml:"max_function_lines"`
}

// ConcurrencyConfig contains concurrency settings
type ConcurrencyConfig struct {
	MaxParallelFiles int `yaml:"max_parallel_files"`
}

// CacheConfig contains report caching settings
type CacheConfig struct {
	Enabled    bool `yaml:"enabled"`
	MaxEntries int  `yaml:"max_entries"`
}

// ExclusionsConfig contains exclusion patterns applied when walking directories
type ExclusionsConfig struct {
	FilePatterns []string `yaml:"file_patterns"`
	Files        []string `yaml:"files"`
	Languages    []string `yaml:"languages"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Address         string        `yaml:"address"`
	Mode            string        `yaml:"mode"` // debug, release, test
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"`
}

// OutputConfig contains output settings
type OutputConfig struct {
	Formats        []string `yaml:"formats"`
	OutputDir      string   `yaml:"output_dir"`
	IncludeSignals bool     `yaml:"include_signals"`
	HotspotsTopN   int      `yaml:"hotspots_top_n"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level            string `yaml:"level"`
	Format           string `yaml:"format"` // text, json
	File             string `yaml:"file"`
	IncludeTimestamp bool   `yaml:"include_timestamp"`
	IncludeCaller    bool   `yaml:"include_caller"`
}
