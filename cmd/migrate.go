package cmd

import (
	"github.com/huangsam/freqseed/internal/contract"
	"github.com/huangsam/freqseed/internal/sqlsink"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// migrateCmd runs database schema migrations.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations.",
	Long: `Run database schema migrations against a database sink.

Creates the problems, companies, departments, problem_companies and
problem_frequency_stats tables with dialect-specific DDL. Only the
mysql, postgresql and sqlite sinks support migrations.

By default, migrates to the latest version. Use --target-version for
specific versions.

Examples:
  # Migrate to the latest version
  freqseed migrate --sink mysql --db-connect "root:root@tcp(localhost:3306)/codetop_fsrs"

  # Migrate to a specific version
  freqseed migrate --target-version 1 --sink sqlite --db-connect freqseed.db

  # Roll back all migrations
  freqseed migrate --target-version 0 --sink sqlite --db-connect freqseed.db`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := sqlsink.Migrate(cfg.Sink, cfg.DBConnect, targetVersion); err != nil {
			contract.LogFatal("Cannot run migrations", err)
		}
	},
}
