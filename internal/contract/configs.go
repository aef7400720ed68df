package contract

import (
	"fmt"
	"time"

	"github.com/huangsam/freqseed/schema"
)

// DefaultSink is the sink used when none is configured. The file sink has no
// external dependencies, so it is the safe default.
const DefaultSink = schema.FileSink

// Default configuration values.
const (
	// DefaultAPIURL is the CodeTop questions endpoint.
	DefaultAPIURL = "https://codetop.cc/api/questions"

	// DefaultFetchTimeout bounds the single fetch request.
	DefaultFetchTimeout = 30 * time.Second

	// DefaultBatchSize is the tuple count per problems INSERT.
	DefaultBatchSize = 100

	// DefaultStatsBatchSize is the tuple count per stats INSERT.
	DefaultStatsBatchSize = 10

	// DefaultSeed makes repeated runs produce identical synthetic metrics.
	DefaultSeed = 42

	// DefaultOutputFile is where the file sink writes the generated script.
	DefaultOutputFile = "codetop_complete_data.sql"

	// DefaultParquetFile is where the export command writes its Parquet file.
	DefaultParquetFile = "freqseed_stats.parquet"

	// DefaultClientContainer is the docker container holding the mysql client.
	DefaultClientContainer = "codetop-mysql"

	// DefaultStatsLimit caps how many fixture problems receive stats.
	DefaultStatsLimit = 100

	// DefaultCompanyLimit caps how many companies receive COMPANY-scope stats.
	DefaultCompanyLimit = 10

	// DefaultCompanyProblemLimit caps problems per company in COMPANY scope.
	DefaultCompanyProblemLimit = 20

	// DefaultDepartmentCompanyLimit caps companies in DEPARTMENT scope.
	DefaultDepartmentCompanyLimit = 5

	// DefaultDepartmentLimit caps departments per company in DEPARTMENT scope.
	DefaultDepartmentLimit = 3

	// DefaultDepartmentProblemLimit caps problems per company-department pair.
	DefaultDepartmentProblemLimit = 10
)

// Config holds the validated runtime configuration for a run.
type Config struct {
	Sink            schema.SinkBackend // Destination for generated statements
	DBConnect       string             // Connection string for database sinks
	OutputFile      string             // Script path for the file sink
	ClientContainer string             // Container name for the client sink
	APIURL          string             // Questions endpoint
	FetchTimeout    time.Duration      // Timeout for the single fetch request
	BatchSize       int                // Tuples per problems INSERT
	StatsBatchSize  int                // Tuples per stats INSERT
	Seed            int64              // RNG seed for synthetic metrics
	StatsLimit      int                // Fixture problems receiving stats
	CompanyLimit    int                // Companies receiving COMPANY stats
	DepartmentLimit int                // Departments per company in DEPARTMENT stats
	UseColors       bool               // Colored console labels
}

// ConfigRawInput holds the raw, unvalidated configuration from all sources
// (file, env, flags). Viper unmarshals into this struct.
type ConfigRawInput struct {
	Sink            string `mapstructure:"sink"`
	DBConnect       string `mapstructure:"db-connect"`
	OutputFile      string `mapstructure:"output-file"`
	ClientContainer string `mapstructure:"client-container"`
	APIURL          string `mapstructure:"api-url"`
	TimeoutSeconds  int    `mapstructure:"timeout"`
	BatchSize       int    `mapstructure:"batch-size"`
	StatsBatchSize  int    `mapstructure:"stats-batch-size"`
	Seed            int64  `mapstructure:"seed"`
	StatsLimit      int    `mapstructure:"limit"`
	CompanyLimit    int    `mapstructure:"company-limit"`
	DepartmentLimit int    `mapstructure:"department-limit"`
	Color           string `mapstructure:"color"`
}

// ProcessAndValidate populates cfg from input, validating every field.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	sink := schema.SinkBackend(input.Sink)
	if _, ok := schema.ValidSinkBackends[sink]; !ok {
		return fmt.Errorf("invalid sink %q: must be mysql, postgresql, sqlite, file, or client", input.Sink)
	}
	cfg.Sink = sink

	switch sink {
	case schema.MySQLSink, schema.PostgreSQLSink:
		if input.DBConnect == "" {
			return fmt.Errorf("sink %s requires --db-connect", sink)
		}
	case schema.FileSink:
		if input.OutputFile == "" {
			return fmt.Errorf("sink file requires --output-file")
		}
	}
	cfg.DBConnect = input.DBConnect
	cfg.OutputFile = input.OutputFile
	cfg.ClientContainer = input.ClientContainer

	if input.APIURL == "" {
		return fmt.Errorf("api-url cannot be empty")
	}
	cfg.APIURL = input.APIURL

	if input.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout must be positive, got %d", input.TimeoutSeconds)
	}
	cfg.FetchTimeout = time.Duration(input.TimeoutSeconds) * time.Second

	if input.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be positive, got %d", input.BatchSize)
	}
	cfg.BatchSize = input.BatchSize

	if input.StatsBatchSize <= 0 {
		return fmt.Errorf("stats-batch-size must be positive, got %d", input.StatsBatchSize)
	}
	cfg.StatsBatchSize = input.StatsBatchSize

	cfg.Seed = input.Seed

	if input.StatsLimit <= 0 || input.StatsLimit > len(schema.GlobalFrequencies) {
		return fmt.Errorf("limit must be in [1, %d], got %d", len(schema.GlobalFrequencies), input.StatsLimit)
	}
	cfg.StatsLimit = input.StatsLimit

	if input.CompanyLimit <= 0 || input.CompanyLimit > len(schema.Companies) {
		return fmt.Errorf("company-limit must be in [1, %d], got %d", len(schema.Companies), input.CompanyLimit)
	}
	cfg.CompanyLimit = input.CompanyLimit

	if input.DepartmentLimit <= 0 || input.DepartmentLimit > len(schema.Departments) {
		return fmt.Errorf("department-limit must be in [1, %d], got %d", len(schema.Departments), input.DepartmentLimit)
	}
	cfg.DepartmentLimit = input.DepartmentLimit

	cfg.UseColors = ParseColorChoice(input.Color)

	return nil
}
