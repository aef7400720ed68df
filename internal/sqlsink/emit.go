package sqlsink

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/huangsam/freqseed/internal/contract"
	"github.com/huangsam/freqseed/schema"
)

// Emitter renders records and stat rows into batched SQL statements for a
// target dialect. Every statement is built in two forms at once: a
// parameterized form for direct database execution and an inlined, escaped
// form for the file and client sinks.
type Emitter struct {
	sink schema.SinkBackend
	now  time.Time
}

// NewEmitter returns an Emitter for the given sink backend. File and client
// sinks render MySQL dialect since that is what the generated scripts target.
func NewEmitter(sink schema.SinkBackend, now time.Time) *Emitter {
	return &Emitter{sink: sink, now: now}
}

// EscapeString doubles single quotes for safe embedding into SQL text.
// This is textual escaping only; other special characters pass through
// unchanged, which is a named risk of the inlined output modes.
func EscapeString(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// usesConflictSyntax reports whether the dialect upserts with ON CONFLICT
// instead of MySQL's ON DUPLICATE KEY UPDATE.
func (e *Emitter) usesConflictSyntax() bool {
	return e.sink == schema.PostgreSQLSink || e.sink == schema.SQLiteSink
}

// upsertClause builds the dialect-appropriate update-on-conflict clause.
// conflictKeys only matter for ON CONFLICT dialects.
func (e *Emitter) upsertClause(conflictKeys []string, updateCols []string) string {
	var b strings.Builder
	if e.usesConflictSyntax() {
		b.WriteString("ON CONFLICT (")
		b.WriteString(strings.Join(conflictKeys, ", "))
		b.WriteString(") DO UPDATE SET ")
		for i, col := range updateCols {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s = excluded.%s", col, col)
		}
	} else {
		b.WriteString("ON DUPLICATE KEY UPDATE ")
		for i, col := range updateCols {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s = VALUES(%s)", col, col)
		}
		b.WriteString(", updated_at = CURRENT_TIMESTAMP")
	}
	return b.String()
}

// statementBuilder accumulates value tuples for one multi-row INSERT,
// tracking the parameterized and inlined renderings together.
type statementBuilder struct {
	sink        schema.SinkBackend
	placeholder []string
	inline      []string
	args        []any
	argIndex    int
}

func newStatementBuilder(sink schema.SinkBackend) *statementBuilder {
	return &statementBuilder{sink: sink}
}

// addTuple appends one value tuple. Each value is either a bindable Go value
// or a rawExpr that is spliced into both renderings verbatim.
func (sb *statementBuilder) addTuple(values ...any) {
	ph := make([]string, 0, len(values))
	in := make([]string, 0, len(values))
	for _, v := range values {
		if raw, ok := v.(rawExpr); ok {
			ph = append(ph, string(raw))
			in = append(in, string(raw))
			continue
		}
		sb.argIndex++
		if sb.sink == schema.PostgreSQLSink {
			ph = append(ph, fmt.Sprintf("$%d", sb.argIndex))
		} else {
			ph = append(ph, "?")
		}
		sb.args = append(sb.args, v)
		in = append(in, inlineValue(v))
	}
	sb.placeholder = append(sb.placeholder, "("+strings.Join(ph, ", ")+")")
	sb.inline = append(sb.inline, "("+strings.Join(in, ", ")+")")
}

// build assembles the final statement from a head (INSERT INTO ... VALUES)
// and an optional tail (upsert clause).
func (sb *statementBuilder) build(head, tail string) contract.Statement {
	sql := head + "\n" + strings.Join(sb.placeholder, ",\n")
	inline := head + "\n" + strings.Join(sb.inline, ",\n")
	if tail != "" {
		sql += "\n" + tail
		inline += "\n" + tail
	}
	return contract.Statement{SQL: sql + ";", Args: sb.args, Inline: inline + ";"}
}

// rawExpr is a SQL fragment spliced into a tuple without binding, such as
// NULL or CURRENT_TIMESTAMP.
type rawExpr string

// inlineValue renders a bindable value as escaped SQL text.
func inlineValue(v any) string {
	switch val := v.(type) {
	case string:
		return "'" + EscapeString(val) + "'"
	case bool:
		if val {
			return "true"
		}
		return "false"
	case float64:
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", val), "0"), ".")
	default:
		return fmt.Sprintf("%v", val)
	}
}

// CompanyUpsert emits one multi-row upsert seeding the companies catalog.
func (e *Emitter) CompanyUpsert() contract.Statement {
	sb := newStatementBuilder(e.sink)
	for _, c := range schema.Companies {
		sb.addTuple(c.Name, c.DisplayName, c.Industry+" company", c.Industry, true)
	}
	head := "INSERT INTO companies (name, display_name, description, industry, is_active) VALUES"
	tail := e.upsertClause([]string{"name"}, []string{"display_name", "description", "industry", "is_active"})
	return sb.build(head, tail)
}

// DepartmentUpsert emits one multi-row upsert seeding the departments catalog.
func (e *Emitter) DepartmentUpsert() contract.Statement {
	sb := newStatementBuilder(e.sink)
	for _, d := range schema.Departments {
		sb.addTuple(d.Name, d.DisplayName, d.Description, true)
	}
	head := "INSERT INTO departments (name, display_name, description, is_active) VALUES"
	tail := e.upsertClause([]string{"name"}, []string{"display_name", "description", "is_active"})
	return sb.build(head, tail)
}

// ProblemBatches chunks records into batches of batchSize and emits one
// multi-row upsert per batch, keyed by leetcode_id. N records with batch size
// B always produce ceil(N/B) statements totalling N tuples.
func (e *Emitter) ProblemBatches(records []schema.ProblemRecord, batchSize int) []contract.Statement {
	head := "INSERT INTO problems (title, difficulty, problem_url, leetcode_id, tags, is_premium, is_active) VALUES"
	tail := e.upsertClause([]string{"leetcode_id"}, []string{"title", "difficulty", "problem_url", "tags"})

	var stmts []contract.Statement
	for start := 0; start < len(records); start += batchSize {
		end := min(start+batchSize, len(records))
		sb := newStatementBuilder(e.sink)
		for _, rec := range records[start:end] {
			sb.addTuple(rec.Title, string(rec.Difficulty), rec.URL, rec.LeetcodeID, e.tagsValue(rec.Tags), rec.IsPremium, true)
		}
		stmts = append(stmts, sb.build(head, tail))
	}
	return stmts
}

// tagsValue renders the tag list for the tags column. The MySQL inline form
// uses JSON_ARRAY so the generated script matches the original hand-written
// surface; every other path binds a JSON-encoded string.
func (e *Emitter) tagsValue(tags []string) any {
	if e.sink == schema.MySQLSink || e.sink == schema.FileSink || e.sink == schema.ClientSink {
		quoted := make([]string, 0, len(tags))
		for _, tag := range tags {
			quoted = append(quoted, "'"+EscapeString(tag)+"'")
		}
		return rawExpr("JSON_ARRAY(" + strings.Join(quoted, ", ") + ")")
	}
	encoded, err := json.Marshal(tags)
	if err != nil {
		// Tags are plain strings; Marshal cannot fail on them.
		return "[]"
	}
	return string(encoded)
}

// ProblemCompanyLink emits the association statement joining the top-scored
// problems to the named companies, with per-problem frequency buckets, raw
// scores and latest dates expressed as CASE branches over leetcode_id.
func (e *Emitter) ProblemCompanyLink(records []schema.ProblemRecord, topN int, companies []string) contract.Statement {
	n := min(topN, len(records))
	top := records[:n]

	var b strings.Builder
	b.WriteString("INSERT INTO problem_companies (problem_id, company_id, frequency, times_asked, last_asked_date)\n")
	b.WriteString("SELECT p.id, c.id,\n")

	b.WriteString("  CASE\n")
	for _, rec := range top {
		fmt.Fprintf(&b, "    WHEN p.leetcode_id = '%s' THEN '%s'\n", EscapeString(rec.LeetcodeID), schema.MapFrequencyLevel(rec.Score))
	}
	b.WriteString("    ELSE 'LOW'\n  END,\n")

	b.WriteString("  CASE\n")
	for _, rec := range top {
		fmt.Fprintf(&b, "    WHEN p.leetcode_id = '%s' THEN %d\n", EscapeString(rec.LeetcodeID), rec.Score)
	}
	b.WriteString("    ELSE 50\n  END,\n")

	b.WriteString("  CASE\n")
	for _, rec := range top {
		fmt.Fprintf(&b, "    WHEN p.leetcode_id = '%s' THEN '%s'\n", EscapeString(rec.LeetcodeID), EscapeString(rec.LastAsked))
	}
	b.WriteString("    ELSE '2025-01-01'\n  END\n")

	b.WriteString("FROM problems p\nCROSS JOIN companies c\nWHERE c.name IN (")
	for i, name := range companies {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("'" + EscapeString(name) + "'")
	}
	b.WriteString(")\n")
	b.WriteString(e.upsertClause([]string{"problem_id", "company_id"}, []string{"frequency", "times_asked", "last_asked_date"}))

	text := b.String() + ";"
	return contract.Statement{SQL: text, Inline: text}
}

// StatsDelete emits the unconditional reset for one statistic scope.
// Stats are delete-then-insert rather than upserted, matching how the sink
// treats each run as a full rebuild of the scope.
func (e *Emitter) StatsDelete(scope schema.Scope) contract.Statement {
	text := fmt.Sprintf("DELETE FROM problem_frequency_stats WHERE stats_scope = '%s';", scope)
	return contract.Statement{SQL: text, Inline: text}
}

// StatsBatches chunks stat rows into plain multi-row INSERTs. No upsert
// clause: the scope is reset by StatsDelete before insertion.
func (e *Emitter) StatsBatches(rows []schema.StatRow, batchSize int) []contract.Statement {
	head := "INSERT INTO problem_frequency_stats (problem_id, company_id, department_id, position_id, " +
		"total_frequency_score, interview_count, unique_interviewers, last_asked_date, first_asked_date, " +
		"frequency_trend, avg_difficulty_rating, success_rate, avg_solve_time_minutes, frequency_rank, " +
		"percentile, stats_scope, calculation_date) VALUES"

	calculationDate := e.now.Format("2006-01-02")

	var stmts []contract.Statement
	for start := 0; start < len(rows); start += batchSize {
		end := min(start+batchSize, len(rows))
		sb := newStatementBuilder(e.sink)
		for _, row := range rows[start:end] {
			sb.addTuple(
				row.ProblemID,
				nullableID(row.CompanyID),
				nullableID(row.DepartmentID),
				rawExpr("NULL"), // position_id is never populated today
				row.Score,
				row.Metrics.InterviewCount,
				row.Metrics.UniqueInterviewers,
				row.LastAsked,
				row.FirstAsked,
				string(schema.StableTrend),
				row.Metrics.DifficultyRating,
				row.Metrics.SuccessRate,
				row.Metrics.SolveTimeMinutes,
				row.Rank,
				row.Metrics.Percentile,
				string(row.Scope),
				calculationDate,
			)
		}
		stmts = append(stmts, sb.build(head, ""))
	}
	return stmts
}

// nullableID turns an optional foreign key into a bindable value or NULL.
func nullableID(id *int64) any {
	if id == nil {
		return rawExpr("NULL")
	}
	return *id
}
