package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"

	"gopkg.in/yaml.v3"
)

// envVarPattern matches ${VAR} or ${VAR:-default}
var envVarPattern = regexp.MustCompile(`\$\{([a-zA-Z_][a-zA-Z0-9_]*)(?::-([^}]*))?\}`)

// SupportedFormats lists the report formats accepted in output.formats
var SupportedFormats = []string{"json", "yaml", "markdown", "md", "sarif"}

// Loader handles configuration loading from YAML files
type Loader struct {
	searchPaths []string
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		searchPaths: []string{
			"config.yaml",
			"config/config.yaml",
			filepath.Join(os.Getenv("HOME"), ".complexity-analyzer", "config.yaml"),
		},
	}
}

// Load loads configuration from a YAML file with environment variable substitution.
// Environment variables can be referenced in the YAML using:
//   - ${VAR_NAME} - substitutes the value of VAR_NAME, empty string if not set
//   - ${VAR_NAME:-default} - substitutes VAR_NAME or "default" if not set
//
// When configPath is empty and no file exists in the search paths, the
// defaults are returned.
func (l *Loader) Load(configPath string) (*Config, error) {
	filePath := l.resolveConfigPath(configPath)
	if filePath == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg, err := l.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return cfg, nil
}

// Parse decodes YAML content over the defaults and validates the result
func (l *Loader) Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()

	expanded := l.expandEnvVars(string(data))
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (l *Loader) resolveConfigPath(configPath string) string {
	if configPath != "" {
		return configPath
	}

	for _, path := range l.searchPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// expandEnvVars expands environment variable references in the input string
func (l *Loader) expandEnvVars(input string) string {
	return envVarPattern.ReplaceAllStringFunc(input, func(match string) string {
		submatches := envVarPattern.FindStringSubmatch(match)
		if len(submatches) < 2 {
			return match
		}

		if val, exists := os.LookupEnv(submatches[1]); exists {
			return val
		}
		if len(submatches) >= 3 {
			return submatches[2]
		}
		return ""
	})
}

// Validate checks that the configuration values are usable
func (c *Config) Validate() error {
	var errs []error

	a := c.Analyzer
	if a.MaxFunctions < 0 || a.MaxClasses < 0 {
		errs = append(errs, errors.New("analyzer.max_functions and analyzer.max_classes must not be negative"))
	}
	if a.ComplexityCap < 1 {
		errs = append(errs, fmt.Errorf("analyzer.complexity_cap must be at least 1, got %d", a.ComplexityCap))
	}
	if a.CognitiveFactor <= 0 {
		errs = append(errs, fmt.Errorf("analyzer.cognitive_factor must be positive, got %v", a.CognitiveFactor))
	}
	if a.BodyMinLines < 1 || a.BodyMaxLines < a.BodyMinLines {
		errs = append(errs, fmt.Errorf("analyzer body line range [%d, %d] is invalid", a.BodyMinLines, a.BodyMaxLines))
	}

	for _, f := range c.Output.Formats {
		if !slices.Contains(SupportedFormats, f) {
			errs = append(errs, fmt.Errorf("unsupported output format: %s", f))
		}
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown logging.level: %s", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown logging.format: %s", c.Logging.Format))
	}

	return errors.Join(errs...)
}
