//go:build basic

package integration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFreqseedVersion verifies the version command prints build details.
func TestFreqseedVersion(t *testing.T) {
	output, err := runFreqseedCommand(t, nil, "version")
	require.NoError(t, err)
	assert.Contains(t, output, "freqseed CLI")
	assert.Contains(t, output, "Version:")
}

// TestFreqseedProblemsFileSink runs the problem sync against a stub API with
// the file sink and checks the generated script.
func TestFreqseedProblemsFileSink(t *testing.T) {
	server := startStubAPI(t)

	outDir := t.TempDir()
	outFile := filepath.Join(outDir, "problems.sql")

	_, err := runFreqseedCommand(t, []string{"FREQSEED_API_URL=" + server.URL},
		"problems", "--sink", "file", "--output-file", outFile)
	require.NoError(t, err)

	script, err := os.ReadFile(outFile)
	require.NoError(t, err)
	text := string(script)

	assert.Contains(t, text, "SET NAMES utf8mb4;")
	assert.Contains(t, text, "INSERT INTO problems")
	assert.Contains(t, text, "无重复字符的最长子串")
	assert.Contains(t, text, "ON DUPLICATE KEY UPDATE")
	assert.Contains(t, text, "INSERT INTO problem_companies")
}

// TestFreqseedStatsFileSink generates GLOBAL stats into a script and checks
// the delete-then-insert shape.
func TestFreqseedStatsFileSink(t *testing.T) {
	outDir := t.TempDir()
	outFile := filepath.Join(outDir, "stats.sql")

	_, err := runFreqseedCommand(t, nil,
		"stats", "global", "--sink", "file", "--output-file", outFile)
	require.NoError(t, err)

	script, err := os.ReadFile(outFile)
	require.NoError(t, err)
	text := string(script)

	assert.Contains(t, text, "DELETE FROM problem_frequency_stats WHERE stats_scope = 'GLOBAL';")
	assert.Contains(t, text, "INSERT INTO problem_frequency_stats")

	// 100 fixture problems at 10 rows per batch
	assert.Equal(t, 10, strings.Count(text, "INSERT INTO problem_frequency_stats"))
}

// TestFreqseedStatsDeterminism runs the same seed twice and expects identical
// statement bodies.
func TestFreqseedStatsDeterminism(t *testing.T) {
	outDir := t.TempDir()
	first := filepath.Join(outDir, "first.sql")
	second := filepath.Join(outDir, "second.sql")

	_, err := runFreqseedCommand(t, nil, "stats", "global", "--sink", "file", "--output-file", first, "--seed", "42")
	require.NoError(t, err)
	_, err = runFreqseedCommand(t, nil, "stats", "global", "--sink", "file", "--output-file", second, "--seed", "42")
	require.NoError(t, err)

	firstBody, err := os.ReadFile(first)
	require.NoError(t, err)
	secondBody, err := os.ReadFile(second)
	require.NoError(t, err)

	// Drop the timestamped header comment before comparing
	trim := func(b []byte) string {
		lines := strings.SplitN(string(b), "\n", 3)
		return lines[len(lines)-1]
	}
	assert.Equal(t, trim(firstBody), trim(secondBody))
}

// TestFreqseedExport writes the Parquet export and checks the file exists and
// carries the Parquet magic bytes.
func TestFreqseedExport(t *testing.T) {
	outDir := t.TempDir()
	outFile := filepath.Join(outDir, "stats.parquet")

	_, err := runFreqseedCommand(t, nil, "export", "--parquet-file", outFile)
	require.NoError(t, err)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	require.Greater(t, len(data), 4)
	assert.Equal(t, "PAR1", string(data[:4]))
}
