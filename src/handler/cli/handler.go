package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"complexity-analyzer/src/config"
	"complexity-analyzer/src/util"
)

// ConfigPathEnv names the environment variable consulted when --config is not set
const ConfigPathEnv = "COMPLEXITY_ANALYZER_CONFIG"

// Handler handles CLI commands
type Handler struct {
	cfg        *config.Config
	configPath string
	logLevel   string
	logFormat  string
	rootCmd    *cobra.Command
}

// New creates a new CLI handler
func New() *Handler {
	h := &Handler{}
	h.setupCommands()
	return h
}

func (h *Handler) setupCommands() {
	h.rootCmd = &cobra.Command{
		Use:           "complexity-analyzer",
		Short:         "Heuristic source complexity analyzer",
		Long:          "Estimates complexity metrics and Big-O classes for source files without parsing them",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return h.loadConfig()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = util.DefaultLogger.Sync()
		},
	}

	// Global flags
	h.rootCmd.PersistentFlags().StringVarP(&h.configPath, "config", "c", "",
		"Path to configuration file")
	h.rootCmd.PersistentFlags().StringVar(&h.logLevel, "log-level", "",
		"Override logging level (debug, info, warn, error)")
	h.rootCmd.PersistentFlags().StringVar(&h.logFormat, "log-format", "",
		"Override log format (text, json)")

	// Add subcommands
	h.rootCmd.AddCommand(h.analyzeCmd())
	h.rootCmd.AddCommand(h.serveCmd())
	h.rootCmd.AddCommand(h.languagesCmd())
	h.rootCmd.AddCommand(h.versionCmd())
}

func (h *Handler) loadConfig() error {
	path := h.configPath
	if path == "" {
		path = os.Getenv(ConfigPathEnv)
	}

	cfg, err := config.NewLoader().Load(path)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if h.logLevel != "" || h.logFormat != "" {
		if h.logLevel != "" {
			cfg.Logging.Level = h.logLevel
		}
		if h.logFormat != "" {
			cfg.Logging.Format = h.logFormat
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid logging flags: %w", err)
		}
	}
	h.cfg = cfg

	// Initialize logger from config
	util.SetDefaultLogger(cfg.Logging)
	util.Debug("Configuration loaded successfully")
	util.Debug("Log level set to: %s", cfg.Logging.Level)

	return nil
}

// Command returns the root command
func (h *Handler) Command() *cobra.Command {
	return h.rootCmd
}

// Execute runs the CLI
func (h *Handler) Execute() error {
	return h.rootCmd.Execute()
}

// Run is the main entry point
func Run() {
	handler := New()
	if err := handler.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
