// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/huangsam/freqseed/schema"
)

// ProblemSource defines the upstream source of raw problem data.
// This allows the sync pipeline to be tested without a live HTTP endpoint.
type ProblemSource interface {
	// FetchAll retrieves the full problem payload in a single request.
	// Network, status and decode failures are all fatal to the run.
	FetchAll(ctx context.Context) (*schema.RawPayload, error)
}

// Statement is one executable unit of SQL. SQL carries '?' placeholders with
// matching Args for parameterized execution; Inline carries the fully
// rendered, escaped text for sinks that cannot bind parameters (script files,
// subprocess clients). Statements with no Args have identical SQL and Inline.
type Statement struct {
	SQL    string
	Args   []any
	Inline string
}

// StatementExecutor is the narrow capability the pipeline uses to apply
// statements to a sink. One statement per call; a failed statement does not
// roll back previously applied ones.
type StatementExecutor interface {
	// Exec applies a single statement to the sink.
	Exec(ctx context.Context, stmt Statement) error

	// Close releases the underlying resources.
	Close() error
}
