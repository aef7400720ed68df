package cmd

import (
	"github.com/huangsam/freqseed/core"
	"github.com/huangsam/freqseed/internal/contract"
	"github.com/huangsam/freqseed/schema"
	"github.com/spf13/cobra"
)

// statsCmd is the parent command for all stats generation scopes.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Generate synthetic frequency statistics for one scope.",
	Long: `Regenerate the frequency statistics for one scope from the bundled
top-100 fixture.

Statistics are synthetic: interview counts, percentiles, difficulty
ratings, success rates and solve times are derived from the frequency
score and rank with seeded randomness, so the same seed always produces
the same rows. Each run deletes the scope wholesale before inserting.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// statsGlobalCmd regenerates the GLOBAL scope.
var statsGlobalCmd = &cobra.Command{
	Use:   "global",
	Short: "Regenerate GLOBAL scope statistics.",
	Long: `Regenerate GLOBAL scope statistics for the fixture problems.

Rank follows the fixture order directly and the percentile is derived
from the rank.

Examples:
  # Rebuild global stats in MySQL
  freqseed stats global --sink mysql --db-connect "root:root@tcp(localhost:3306)/codetop_fsrs"

  # Same rows, different destination
  freqseed stats global --sink file --output-file global_stats.sql`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteStats(rootCtx, cfg, schema.GlobalScope); err != nil {
			contract.LogFatal("Cannot run global stats", err)
		}
	},
}

// statsCompanyCmd regenerates the COMPANY scope.
var statsCompanyCmd = &cobra.Command{
	Use:   "company",
	Short: "Regenerate COMPANY scope statistics.",
	Long: `Regenerate COMPANY scope statistics.

Global frequency scores are scaled per company with a company multiplier
and a bounded random variation, then re-ranked within each company.

Examples:
  # Rebuild company stats for the top 10 companies
  freqseed stats company --sink mysql --db-connect "root:root@tcp(localhost:3306)/codetop_fsrs"

  # Limit to fewer companies
  freqseed stats company --company-limit 5 --sink file`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteStats(rootCtx, cfg, schema.CompanyScope); err != nil {
			contract.LogFatal("Cannot run company stats", err)
		}
	},
}

// statsDepartmentCmd regenerates the DEPARTMENT scope.
var statsDepartmentCmd = &cobra.Command{
	Use:   "department",
	Short: "Regenerate DEPARTMENT scope statistics.",
	Long: `Regenerate DEPARTMENT scope statistics.

Department scores chain off the company scores: global score times the
company multiplier, times the department multiplier, each with its own
bounded variation.

Examples:
  # Rebuild department stats
  freqseed stats department --sink mysql --db-connect "root:root@tcp(localhost:3306)/codetop_fsrs"

  # Fewer departments per company
  freqseed stats department --department-limit 2 --sink file`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteStats(rootCtx, cfg, schema.DepartmentScope); err != nil {
			contract.LogFatal("Cannot run department stats", err)
		}
	},
}
