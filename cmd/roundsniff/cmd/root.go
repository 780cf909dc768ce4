package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fairwaydata/roundsniff/internal/config"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

const defaultConfigFile = "roundsniff.yaml"

// CLI flags that override config file values
var (
	cfgFile    string
	corpusDir  string
	maxFiles   int
	maxRecords int
	logLevel   string
	logFormat  string
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "roundsniff",
	Short: "JSON Round Corpus Schema Sniffer",
	Long: `A diagnostic CLI for getting a quick read on an unfamiliar corpus of
JSON round files before writing any ingestion code.

It samples a bounded number of files and records, then prints:
  - Field frequency across all sampled records
  - Example values per field
  - Heuristic field groupings (date, score, course, tournament)
  - The most common record shapes (key sets)

The corpus is never modified; the only output is the report on stdout.`,
	Version: Version,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", defaultConfigFile,
		"Path to configuration file")

	// Corpus overrides
	rootCmd.PersistentFlags().StringVarP(&corpusDir, "dir", "d", "",
		"Override corpus directory")
	rootCmd.PersistentFlags().IntVar(&maxFiles, "max-files", 0,
		"Override maximum number of files to sample")
	rootCmd.PersistentFlags().IntVar(&maxRecords, "max-records", 0,
		"Override maximum records sampled per file")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Output
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Disable colored report headers")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// loadConfig resolves the effective configuration: the config file when it
// exists, defaults otherwise, with CLI flag overrides applied on top. A
// config file named explicitly must exist; the default name may be absent.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config

	if _, err := os.Stat(cfgFile); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to stat config file: %w", err)
		}
		if cfgFile != defaultConfigFile {
			return nil, fmt.Errorf("config file %s not found", cfgFile)
		}
		cfg = config.DefaultConfig()
	} else {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	cfg.ApplyOverrides(corpusDir, maxFiles, maxRecords, logLevel, logFormat, noColor)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
