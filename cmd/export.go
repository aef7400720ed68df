package cmd

import (
	"github.com/huangsam/freqseed/core"
	"github.com/huangsam/freqseed/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// exportCmd writes all generated statistics to a Parquet file.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export generated statistics to a Parquet file.",
	Long: `Generate every statistics scope from the bundled fixture and write
the rows to a Parquet file instead of a SQL sink.

No database or network access is needed; the same seed produces an
identical file. Useful for inspecting the synthetic data with analytic
tooling before loading it anywhere.

Examples:
  # Export all scopes with the default seed
  freqseed export

  # Pick the output path and a different seed
  freqseed export --parquet-file stats.parquet --seed 7`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		outputPath := viper.GetString("parquet-file")
		if err := core.ExecuteExport(rootCtx, cfg, outputPath); err != nil {
			contract.LogFatal("Cannot run export", err)
		}
	},
}
