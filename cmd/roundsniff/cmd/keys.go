package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fairwaydata/roundsniff/internal/report"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Scan the corpus and print only the key-frequency table",
	Long: `Keys runs the same corpus scan as sniff but prints only the key
frequency section. Handy when the full report is noise and all you want is
"which fields does this data actually use".

Example:
  roundsniff keys --dir output/rounds`,
	RunE: runKeys,
}

func init() {
	rootCmd.AddCommand(keysCmd)
}

func runKeys(cmd *cobra.Command, args []string) error {
	agg, cfg, err := sniffCorpus()
	if err != nil {
		return err
	}
	return report.RenderTopKeys(cmd.OutOrStdout(), agg, reportConfig(cfg))
}
