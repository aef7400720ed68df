package cmd

import (
	"github.com/huangsam/freqseed/core"
	"github.com/huangsam/freqseed/internal/contract"
	"github.com/spf13/cobra"
)

// setupCmd seeds the companies and departments catalogs.
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Seed the companies and departments catalogs.",
	Long: `Upsert the bundled company and department catalogs into the sink.

Both catalogs are keyed by natural name, so repeated runs refresh display
names and descriptions without duplicating rows. Run this before generating
company or department scoped statistics.

Examples:
  # Seed catalogs into a local MySQL instance
  freqseed setup --sink mysql --db-connect "root:root@tcp(localhost:3306)/codetop_fsrs"

  # Write the seed statements into a script instead
  freqseed setup --sink file --output-file seed.sql`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSetup(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run setup", err)
		}
	},
}
