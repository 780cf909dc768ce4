package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fairwaydata/roundsniff/internal/config"
	"github.com/fairwaydata/roundsniff/internal/logger"
	"github.com/fairwaydata/roundsniff/internal/report"
	"github.com/fairwaydata/roundsniff/internal/sniffer"
)

var sniffCmd = &cobra.Command{
	Use:   "sniff",
	Short: "Scan the corpus and print the full schema report",
	Long: `Sniff samples the corpus directory and prints the full report:
key frequencies, sample values, heuristic field candidates, and the most
common record shapes.

The corpus directory must exist and contain at least one .json file. A file
that fails to parse as JSON aborts the run before any report is printed;
files and records with merely unexpected shapes are skipped silently.

Example:
  roundsniff sniff --dir output/rounds`,
	RunE: runSniff,
}

func init() {
	rootCmd.AddCommand(sniffCmd)
}

func runSniff(cmd *cobra.Command, args []string) error {
	agg, cfg, err := sniffCorpus()
	if err != nil {
		return err
	}
	return report.Render(cmd.OutOrStdout(), agg, reportConfig(cfg))
}

// sniffCorpus runs the shared load-config / scan pipeline behind the report
// commands. Nothing is written to stdout until the scan has fully succeeded.
func sniffCorpus() (*sniffer.Aggregate, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	agg, _, err := sniffer.Run(cfg.Corpus.Dir, sniffer.SamplingConfig{
		MaxFiles:          cfg.Sampling.MaxFiles,
		MaxRecordsPerFile: cfg.Sampling.MaxRecordsPerFile,
		MaxSampleValues:   cfg.Sampling.MaxSampleValues,
	}, log)
	if err != nil {
		return nil, nil, err
	}

	return agg, cfg, nil
}

func reportConfig(cfg *config.Config) report.Config {
	return report.Config{
		TopKeys:    cfg.Report.TopKeys,
		SampleKeys: cfg.Report.SampleKeys,
		TopShapes:  cfg.Report.TopShapes,
		Color:      cfg.Report.Color,
	}
}
