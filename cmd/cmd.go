// Package cmd defines the command-line interface for freqseed.
package cmd

import (
	"github.com/huangsam/freqseed/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(problemsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the stats subcommands to the parent stats command
	statsCmd.AddCommand(statsGlobalCmd)
	statsCmd.AddCommand(statsCompanyCmd)
	statsCmd.AddCommand(statsDepartmentCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("sink", string(contract.DefaultSink), "Statement sink: mysql, postgresql, sqlite, file or client")
	rootCmd.PersistentFlags().String("db-connect", "", "Database connection string for mysql/postgresql/sqlite sinks (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("output-file", contract.DefaultOutputFile, "Script path for the file sink")
	rootCmd.PersistentFlags().String("client-container", contract.DefaultClientContainer, "Docker container name for the client sink")
	rootCmd.PersistentFlags().String("api-url", contract.DefaultAPIURL, "CodeTop questions endpoint")
	rootCmd.PersistentFlags().Int("timeout", int(contract.DefaultFetchTimeout.Seconds()), "Fetch timeout in seconds")
	rootCmd.PersistentFlags().Int("batch-size", contract.DefaultBatchSize, "Problems per INSERT statement")
	rootCmd.PersistentFlags().Int("stats-batch-size", contract.DefaultStatsBatchSize, "Stat rows per INSERT statement")
	rootCmd.PersistentFlags().Int64("seed", contract.DefaultSeed, "RNG seed for synthetic metrics")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultStatsLimit, "Number of fixture problems receiving stats")
	rootCmd.PersistentFlags().Int("company-limit", contract.DefaultCompanyLimit, "Number of companies receiving COMPANY stats")
	rootCmd.PersistentFlags().Int("department-limit", contract.DefaultDepartmentLimit, "Departments per company receiving DEPARTMENT stats")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of migrateCmd to Viper
	migrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(migrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding migrate flags", err)
	}

	// Bind all flags of exportCmd to Viper
	exportCmd.Flags().String("parquet-file", contract.DefaultParquetFile, "Output path for the Parquet export")
	if err := viper.BindPFlags(exportCmd.Flags()); err != nil {
		contract.LogFatal("Error binding export flags", err)
	}
}
