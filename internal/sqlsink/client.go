package sqlsink

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/huangsam/freqseed/internal/contract"
)

// Connection settings for the dockerized mysql client. These match the
// docker-compose development stack and are not configurable on purpose;
// production loads go through the database sinks instead.
const (
	clientDatabase = "codetop_fsrs"
	clientUser     = "root"
	clientPassword = "root"
)

// ClientExecutor shells each statement out to a mysql client running inside
// a docker container. Statements are passed inlined via -e, prefixed with
// SET NAMES so multibyte titles survive the round trip.
type ClientExecutor struct {
	container string
}

var _ contract.StatementExecutor = &ClientExecutor{} // Compile-time check

// NewClientExecutor returns an executor targeting the named container.
func NewClientExecutor(container string) *ClientExecutor {
	return &ClientExecutor{container: container}
}

// Exec runs one statement through docker exec. The client's stderr is folded
// into the returned error so batch failures are diagnosable.
func (e *ClientExecutor) Exec(ctx context.Context, stmt contract.Statement) error {
	script := "SET NAMES utf8mb4; " + stmt.Inline
	cmd := exec.CommandContext(ctx,
		"docker", "exec", "-i", e.container,
		"mysql",
		"-u", clientUser,
		"-p"+clientPassword,
		clientDatabase,
		"--default-character-set=utf8mb4",
		"-e", script,
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		detail := strings.TrimSpace(string(output))
		if detail != "" {
			return fmt.Errorf("mysql client failed: %w: %s", err, detail)
		}
		return fmt.Errorf("mysql client failed: %w", err)
	}
	return nil
}

// Close is a no-op; each Exec spawns its own process.
func (e *ClientExecutor) Close() error {
	return nil
}
