package sqlsink

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/huangsam/freqseed/internal/contract"
	"github.com/huangsam/freqseed/schema"

	// Database drivers for the supported sinks.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// driverNames maps each database sink to its registered sql driver.
var driverNames = map[schema.SinkBackend]string{
	schema.MySQLSink:      "mysql",
	schema.PostgreSQLSink: "pgx",
	schema.SQLiteSink:     "sqlite",
}

// DBExecutor applies statements directly to a live database with bound
// parameters. This is the only sink where Args are actually used.
type DBExecutor struct {
	db *sql.DB
}

var _ contract.StatementExecutor = &DBExecutor{} // Compile-time check

// NewDBExecutor opens and verifies a connection for the given backend.
func NewDBExecutor(backend schema.SinkBackend, connStr string) (*DBExecutor, error) {
	driverName, ok := driverNames[backend]
	if !ok {
		return nil, fmt.Errorf("no database driver for sink %s", backend)
	}

	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", backend, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", backend, err)
	}

	return &DBExecutor{db: db}, nil
}

// Exec applies one statement with its bound arguments.
func (e *DBExecutor) Exec(ctx context.Context, stmt contract.Statement) error {
	if _, err := e.db.ExecContext(ctx, stmt.SQL, stmt.Args...); err != nil {
		return fmt.Errorf("statement execution failed: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (e *DBExecutor) Close() error {
	return e.db.Close()
}
