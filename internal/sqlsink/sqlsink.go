// Package sqlsink renders batched SQL statements and applies them to one of
// the supported sinks: a live database, a generated script file, or a mysql
// client subprocess.
package sqlsink

import (
	"fmt"

	"github.com/huangsam/freqseed/internal/contract"
	"github.com/huangsam/freqseed/schema"
)

// NewExecutor builds the statement executor for the configured sink.
func NewExecutor(cfg *contract.Config) (contract.StatementExecutor, error) {
	switch cfg.Sink {
	case schema.MySQLSink, schema.PostgreSQLSink, schema.SQLiteSink:
		return NewDBExecutor(cfg.Sink, cfg.DBConnect)
	case schema.FileSink:
		return NewFileExecutor(cfg.OutputFile)
	case schema.ClientSink:
		return NewClientExecutor(cfg.ClientContainer), nil
	default:
		return nil, fmt.Errorf("unsupported sink: %s", cfg.Sink)
	}
}
