package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/kayz/vidprompt/internal/config"
	"github.com/kayz/vidprompt/internal/debug"
	"github.com/kayz/vidprompt/internal/logger"
	"github.com/kayz/vidprompt/internal/promptbuild"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	logFile  *os.File
)

var rootCmd = &cobra.Command{
	Use:   "vidprompt",
	Short: "Structured video prompt generator",
	Long: `vidprompt turns a structured scene description (subject, action,
location, camera, lighting, style, atmosphere) into a prompt for video models.

Modes:
  vidprompt render   Render a prompt from flags or a request file
  vidprompt form     Fill in the form interactively in the terminal
  vidprompt web      Serve the form with a live preview in the browser
  vidprompt mcp      Expose rendering as MCP tools over stdio`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logFile != nil {
			_ = logFile.Close()
			logFile = nil
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info",
		"Log level: trace, debug, info, warn, error, fatal, panic")
}

// setupLogging applies the log level (flag > config) and the optional log file.
func setupLogging(cmd *cobra.Command) error {
	cfg := loadConfig()

	levelName := cfg.Logging.Level
	if f := cmd.Flags().Lookup("log"); f != nil && f.Changed {
		levelName = logLevel
	}
	level, err := logger.ParseLevel(levelName)
	if err != nil {
		return err
	}
	if debug.Enabled && level > logger.DebugLevel {
		level = logger.DebugLevel
	}
	logger.SetLevel(level)

	if cfg.Logging.File != "" && logFile == nil {
		f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		logger.SetOutput(io.MultiWriter(os.Stderr, f))
	}
	return nil
}

// loadConfig returns the config file contents, or defaults when it is unreadable.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		logger.Warn("Failed to load config %s, using defaults: %v", config.ConfigPath(), err)
		return config.DefaultConfig()
	}
	return cfg
}

// newBuilder applies the default format precedence:
// VIDPROMPT_FORMAT env > config file > markdown. Per-command --format flags
// travel in the request and win over both.
func newBuilder(cfg *config.Config) *promptbuild.Builder {
	renderCfg := cfg.Render
	if env := os.Getenv("VIDPROMPT_FORMAT"); env != "" {
		renderCfg.DefaultFormat = env
	}
	return promptbuild.NewBuilder(renderCfg)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
