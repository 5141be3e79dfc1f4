package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"candlescan/config"
	"candlescan/logging"
)

var rootCmd = &cobra.Command{
	Use:   "candlescan",
	Short: "Candlestick pattern recognition for OHLC data files",
	Long: `Candlescan classifies OHLC price bars into named candlestick patterns
(Doji, Hammer, Shooting Star, Engulfing, Morning/Evening Star) and adds
one aggregated pattern column to the input table.

It provides tools for:
  - Scanning CSV candle files and writing labeled output
  - Summarizing pattern occurrences and the dates they fired
  - Keeping a SQLite history of analysis runs
  - Tuning detector thresholds via a config file`,
	SilenceUsage: true,
}

var (
	cfgFile   string
	logLevel  string
	logPretty bool
)

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// A .env alongside the binary may set defaults; absence is fine.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&logPretty, "pretty", false, "human-readable log output")
}

// loadConfig resolves the effective configuration: file if given,
// defaults otherwise, with flag and environment overrides on top.
func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		path = os.Getenv("CANDLESCAN_CONFIG")
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if logPretty {
		cfg.Log.Pretty = true
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) zerolog.Logger {
	return logging.New(cfg.Log.Level, cfg.Log.Pretty)
}
