// Package parquet exports generated frequency statistics to Parquet files
// using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/huangsam/freqseed/schema"
	"github.com/parquet-go/parquet-go"
)

// StatRecord is the flat Parquet projection of one frequency stat row.
// This struct maps to the problem_frequency_stats database table.
type StatRecord struct {
	// ProblemID is the external problem identifier the row belongs to
	ProblemID int64 `parquet:"problem_id,snappy"`

	// CompanyID is set for COMPANY and DEPARTMENT scoped rows (nullable)
	CompanyID *int64 `parquet:"company_id,optional,snappy"`

	// DepartmentID is set for DEPARTMENT scoped rows (nullable)
	DepartmentID *int64 `parquet:"department_id,optional,snappy"`

	// TotalFrequencyScore is the scope-adjusted frequency score
	TotalFrequencyScore int32 `parquet:"total_frequency_score,snappy"`

	// InterviewCount is the synthetic number of interviews
	InterviewCount int32 `parquet:"interview_count,snappy"`

	// UniqueInterviewers is the synthetic distinct interviewer count
	UniqueInterviewers int32 `parquet:"unique_interviewers,snappy"`

	// LastAskedDate is the most recent synthetic ask date (YYYY-MM-DD)
	LastAskedDate string `parquet:"last_asked_date,snappy"`

	// FirstAskedDate is the earliest synthetic ask date (YYYY-MM-DD)
	FirstAskedDate string `parquet:"first_asked_date,snappy"`

	// AvgDifficultyRating is the synthetic rating on a 1-5 scale
	AvgDifficultyRating float64 `parquet:"avg_difficulty_rating,snappy"`

	// SuccessRate is the synthetic pass percentage
	SuccessRate float64 `parquet:"success_rate,snappy"`

	// AvgSolveTimeMinutes is the synthetic solve duration
	AvgSolveTimeMinutes int32 `parquet:"avg_solve_time_minutes,snappy"`

	// FrequencyRank is the 1-based rank within the scope
	FrequencyRank int32 `parquet:"frequency_rank,snappy"`

	// Percentile is derived from the rank
	Percentile float64 `parquet:"percentile,snappy"`

	// StatsScope is GLOBAL, COMPANY or DEPARTMENT
	StatsScope string `parquet:"stats_scope,snappy"`
}

// ConvertStatRows converts schema.StatRow values to StatRecord for export.
func ConvertStatRows(rows []schema.StatRow) []StatRecord {
	result := make([]StatRecord, len(rows))
	for i, row := range rows {
		result[i] = StatRecord{
			ProblemID:           row.ProblemID,
			CompanyID:           row.CompanyID,
			DepartmentID:        row.DepartmentID,
			TotalFrequencyScore: int32(row.Score),
			InterviewCount:      int32(row.Metrics.InterviewCount),
			UniqueInterviewers:  int32(row.Metrics.UniqueInterviewers),
			LastAskedDate:       row.LastAsked,
			FirstAskedDate:      row.FirstAsked,
			AvgDifficultyRating: row.Metrics.DifficultyRating,
			SuccessRate:         row.Metrics.SuccessRate,
			AvgSolveTimeMinutes: int32(row.Metrics.SolveTimeMinutes),
			FrequencyRank:       int32(row.Rank),
			Percentile:          row.Metrics.Percentile,
			StatsScope:          string(row.Scope),
		}
	}
	return result
}

// WriteStatsParquet writes stat records to a Parquet file. The schema is
// derived from the StatRecord struct tags.
func WriteStatsParquet(data []StatRecord, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[StatRecord](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
