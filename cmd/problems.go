package cmd

import (
	"github.com/huangsam/freqseed/core"
	"github.com/huangsam/freqseed/internal/contract"
	"github.com/spf13/cobra"
)

// problemsCmd fetches and loads the problem list.
var problemsCmd = &cobra.Command{
	Use:   "problems",
	Short: "Fetch the problem list and upsert it in batches.",
	Long: `Fetch the full problem list from the CodeTop API, normalize it and
upsert the result into the sink in batches.

Each entry is flattened into a problem record with an inferred tag list,
a canonical URL and a difficulty mapping. Malformed entries are skipped
with a warning and the rest of the run continues. The top problems are
also linked to the configured companies.

Examples:
  # Sync problems into MySQL in batches of 100
  freqseed problems --sink mysql --db-connect "root:root@tcp(localhost:3306)/codetop_fsrs"

  # Generate a reviewable SQL script instead of touching a database
  freqseed problems --sink file --output-file codetop_complete_data.sql

  # Load through the mysql client in a docker container
  freqseed problems --sink client --client-container codetop-mysql`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteProblemSync(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run problem sync", err)
		}
	},
}
