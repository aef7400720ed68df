package sqlsink

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/huangsam/freqseed/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 8, 24, 12, 0, 0, 0, time.UTC)

// makeRecords builds n synthetic problem records for batching tests.
func makeRecords(n int) []schema.ProblemRecord {
	records := make([]schema.ProblemRecord, 0, n)
	for i := 1; i <= n; i++ {
		records = append(records, schema.ProblemRecord{
			LeetcodeID: fmt.Sprintf("%d", i),
			Title:      fmt.Sprintf("题目%d", i),
			Difficulty: schema.MediumDifficulty,
			URL:        fmt.Sprintf("https://leetcode.cn/problems/problem-%d", i),
			Tags:       []string{"算法"},
			Score:      1000 - i,
			LastAsked:  "2025-07-01",
		})
	}
	return records
}

// TestEscapeString checks quote doubling.
func TestEscapeString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "no quotes", input: "两数之和", expected: "两数之和"},
		{name: "single quote", input: "O'Brien", expected: "O''Brien"},
		{name: "multiple quotes", input: "a'b'c", expected: "a''b''c"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EscapeString(tt.input))
		})
	}
}

// TestProblemBatchesCounts checks the ceil(N/B) batching law.
func TestProblemBatchesCounts(t *testing.T) {
	tests := []struct {
		name        string
		records     int
		batchSize   int
		wantBatches int
		wantLast    int
	}{
		{name: "exact multiple", records: 200, batchSize: 100, wantBatches: 2, wantLast: 100},
		{name: "remainder", records: 205, batchSize: 100, wantBatches: 3, wantLast: 5},
		{name: "single small batch", records: 7, batchSize: 100, wantBatches: 1, wantLast: 7},
		{name: "empty input", records: 0, batchSize: 100, wantBatches: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEmitter(schema.MySQLSink, testNow)
			batches := e.ProblemBatches(makeRecords(tt.records), tt.batchSize)
			require.Len(t, batches, tt.wantBatches)
			if tt.wantBatches > 0 {
				last := batches[len(batches)-1]
				assert.Equal(t, tt.wantLast, strings.Count(last.Inline, "JSON_ARRAY"))
			}
		})
	}
}

// TestProblemBatchesMySQLShape checks the MySQL rendering details.
func TestProblemBatchesMySQLShape(t *testing.T) {
	e := NewEmitter(schema.MySQLSink, testNow)
	records := makeRecords(2)
	records[0].Title = "O'Brien's problem"

	batches := e.ProblemBatches(records, 100)
	require.Len(t, batches, 1)
	stmt := batches[0]

	assert.Contains(t, stmt.SQL, "INSERT INTO problems")
	assert.Contains(t, stmt.SQL, "ON DUPLICATE KEY UPDATE")
	assert.Contains(t, stmt.SQL, "updated_at = CURRENT_TIMESTAMP")
	assert.Contains(t, stmt.SQL, "?")

	// Inline rendering escapes quotes and keeps tags as JSON_ARRAY
	assert.Contains(t, stmt.Inline, "O''Brien''s problem")
	assert.Contains(t, stmt.Inline, "JSON_ARRAY('算法')")
	assert.NotContains(t, stmt.Inline, "?")

	// 2 tuples x 6 bindable columns (tags are raw JSON_ARRAY on MySQL)
	assert.Len(t, stmt.Args, 12)
}

// TestProblemBatchesPostgresShape checks numbered placeholders and ON CONFLICT.
func TestProblemBatchesPostgresShape(t *testing.T) {
	e := NewEmitter(schema.PostgreSQLSink, testNow)

	batches := e.ProblemBatches(makeRecords(2), 100)
	require.Len(t, batches, 1)
	stmt := batches[0]

	assert.Contains(t, stmt.SQL, "$1")
	assert.Contains(t, stmt.SQL, "$14") // 2 tuples x 7 bound columns
	assert.Contains(t, stmt.SQL, "ON CONFLICT (leetcode_id) DO UPDATE SET")
	assert.Contains(t, stmt.SQL, "title = excluded.title")
	assert.NotContains(t, stmt.SQL, "ON DUPLICATE KEY")

	// Tags bind as a JSON string on postgres
	assert.Contains(t, stmt.Args, `["算法"]`)
	assert.Len(t, stmt.Args, 14)
}

// TestCompanyUpsert checks the catalog statement carries every company once.
func TestCompanyUpsert(t *testing.T) {
	e := NewEmitter(schema.MySQLSink, testNow)
	stmt := e.CompanyUpsert()

	assert.Contains(t, stmt.SQL, "INSERT INTO companies")
	assert.Contains(t, stmt.SQL, "ON DUPLICATE KEY UPDATE")
	assert.Equal(t, len(schema.Companies), strings.Count(stmt.Inline, "\n("))
	assert.Contains(t, stmt.Inline, "'字节跳动'")
	// 5 bound columns per company
	assert.Len(t, stmt.Args, len(schema.Companies)*5)
}

// TestDepartmentUpsert checks the department catalog statement.
func TestDepartmentUpsert(t *testing.T) {
	e := NewEmitter(schema.SQLiteSink, testNow)
	stmt := e.DepartmentUpsert()

	assert.Contains(t, stmt.SQL, "INSERT INTO departments")
	assert.Contains(t, stmt.SQL, "ON CONFLICT (name) DO UPDATE SET")
	assert.Len(t, stmt.Args, len(schema.Departments)*4)
}

// TestStatsDelete checks the per-scope reset statement.
func TestStatsDelete(t *testing.T) {
	e := NewEmitter(schema.MySQLSink, testNow)
	for _, scope := range schema.AllScopes {
		stmt := e.StatsDelete(scope)
		expected := fmt.Sprintf("DELETE FROM problem_frequency_stats WHERE stats_scope = '%s';", scope)
		assert.Equal(t, expected, stmt.SQL)
		assert.Equal(t, expected, stmt.Inline)
		assert.Empty(t, stmt.Args)
	}
}

// TestStatsBatches checks batching, NULL handling and the calculation date.
func TestStatsBatches(t *testing.T) {
	companyID := int64(3)
	rows := make([]schema.StatRow, 0, 25)
	for i := 1; i <= 25; i++ {
		row := schema.StatRow{
			ProblemID: int64(i),
			Score:     500 - i,
			Rank:      i,
			Scope:     schema.GlobalScope,
			Metrics: schema.MetricBundle{
				InterviewCount:     90,
				UniqueInterviewers: 50,
				Percentile:         float64(101 - i),
				DifficultyRating:   3.2,
				SuccessRate:        61.5,
				SolveTimeMinutes:   25,
			},
			LastAsked:  "2025-08-10",
			FirstAsked: "2025-03-01",
		}
		if i%2 == 0 {
			row.CompanyID = &companyID
			row.Scope = schema.CompanyScope
		}
		rows = append(rows, row)
	}

	e := NewEmitter(schema.MySQLSink, testNow)
	batches := e.StatsBatches(rows, 10)
	require.Len(t, batches, 3)

	first := batches[0]
	assert.Contains(t, first.SQL, "INSERT INTO problem_frequency_stats")
	assert.NotContains(t, first.SQL, "ON DUPLICATE KEY") // delete-then-insert, no upsert
	assert.Contains(t, first.Inline, "NULL")
	assert.Contains(t, first.Inline, "'2025-08-24'") // calculation_date from emitter clock
	assert.Contains(t, first.Inline, "'STABLE'")

	// Odd rows have NULL company_id (raw), even rows bind it
	assert.Contains(t, first.Args, int64(3))
}

// TestProblemCompanyLink checks the CASE-based association statement.
func TestProblemCompanyLink(t *testing.T) {
	e := NewEmitter(schema.MySQLSink, testNow)
	records := makeRecords(60)
	records[0].Score = 700 // VERY_HIGH bucket

	stmt := e.ProblemCompanyLink(records, 50, []string{"bytedance", "alibaba"})

	assert.Contains(t, stmt.SQL, "INSERT INTO problem_companies")
	assert.Contains(t, stmt.SQL, "CROSS JOIN companies c")
	assert.Contains(t, stmt.SQL, "WHERE c.name IN ('bytedance', 'alibaba')")
	assert.Contains(t, stmt.SQL, "THEN 'VERY_HIGH'")
	assert.Contains(t, stmt.SQL, "ELSE 'LOW'")
	assert.Empty(t, stmt.Args)
	assert.Equal(t, stmt.SQL, stmt.Inline)

	// Only the top 50 problems appear in each CASE block
	assert.Equal(t, 150, strings.Count(stmt.SQL, "WHEN p.leetcode_id"))
}

// TestInlineValueRendering checks scalar rendering for the inlined form.
func TestInlineValueRendering(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{name: "string", value: "abc", expected: "'abc'"},
		{name: "string with quote", value: "a'b", expected: "'a''b'"},
		{name: "int", value: 42, expected: "42"},
		{name: "int64", value: int64(7), expected: "7"},
		{name: "bool true", value: true, expected: "true"},
		{name: "bool false", value: false, expected: "false"},
		{name: "float trims zeros", value: 3.50, expected: "3.5"},
		{name: "float integral", value: 100.0, expected: "100"},
		{name: "float two places", value: 61.55, expected: "61.55"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, inlineValue(tt.value))
		})
	}
}
