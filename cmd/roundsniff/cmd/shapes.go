package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fairwaydata/roundsniff/internal/report"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Scan the corpus and print only the record shapes",
	Long: `Shapes runs the same corpus scan as sniff but prints only the most
common record shapes (sorted key sets). Useful for spotting how many distinct
record structures a corpus really contains.

Example:
  roundsniff shapes --dir output/rounds`,
	RunE: runShapes,
}

func init() {
	rootCmd.AddCommand(shapesCmd)
}

func runShapes(cmd *cobra.Command, args []string) error {
	agg, cfg, err := sniffCorpus()
	if err != nil {
		return err
	}
	return report.RenderShapes(cmd.OutOrStdout(), agg, reportConfig(cfg))
}
