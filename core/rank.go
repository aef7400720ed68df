package core

import (
	"math/rand"
	"sort"
	"time"

	"github.com/huangsam/freqseed/schema"
)

// SortRecordsByScore orders normalized records by descending raw frequency
// score. Emission order determines rank assignment downstream, so the sort is
// stable to keep repeated runs reproducible.
func SortRecordsByScore(records []schema.ProblemRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Score > records[j].Score
	})
}

// BuildGlobalStats produces GLOBAL-scope stat rows for the given samples.
// The fixture is already ordered by descending score, so rank follows the
// sample order directly.
func BuildGlobalStats(rng *rand.Rand, samples []schema.FrequencySample, now time.Time) []schema.StatRow {
	params := schema.ScopeParamsTable[schema.GlobalScope]
	rows := make([]schema.StatRow, 0, len(samples))
	for i, sample := range samples {
		rank := i + 1
		metrics := GenerateMetrics(rng, sample.Score, rank, schema.GlobalScope)
		rows = append(rows, schema.StatRow{
			ProblemID:  sample.ProblemID,
			Score:      sample.Score,
			Rank:       rank,
			Scope:      schema.GlobalScope,
			Metrics:    metrics,
			LastAsked:  daysAgo(now, uniformInt(rng, params.LastAskedDays.Lo, params.LastAskedDays.Hi)),
			FirstAsked: daysAgo(now, uniformInt(rng, params.FirstAskedDays.Lo, params.FirstAskedDays.Hi)),
		})
	}
	return rows
}

// BuildCompanyStats produces COMPANY-scope stat rows for one company. Scores
// are re-derived per company, then re-ranked within the company before the
// metric bundles are generated.
func BuildCompanyStats(rng *rand.Rand, samples []schema.FrequencySample, companyName string, companyID int64, now time.Time) []schema.StatRow {
	scored := make([]schema.FrequencySample, 0, len(samples))
	for _, sample := range samples {
		scored = append(scored, schema.FrequencySample{
			ProblemID: sample.ProblemID,
			Score:     CompanyScore(rng, sample.Score, companyName),
		})
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })

	params := schema.ScopeParamsTable[schema.CompanyScope]
	rows := make([]schema.StatRow, 0, len(scored))
	for i, sample := range scored {
		rank := i + 1
		metrics := GenerateMetrics(rng, sample.Score, rank, schema.CompanyScope)
		cid := companyID
		rows = append(rows, schema.StatRow{
			ProblemID:  sample.ProblemID,
			CompanyID:  &cid,
			Score:      sample.Score,
			Rank:       rank,
			Scope:      schema.CompanyScope,
			Metrics:    metrics,
			LastAsked:  daysAgo(now, uniformInt(rng, params.LastAskedDays.Lo, params.LastAskedDays.Hi)),
			FirstAsked: daysAgo(now, params.FirstAskedDays.Lo),
		})
	}
	return rows
}

// BuildDepartmentStats produces DEPARTMENT-scope stat rows for one
// company-department pair. The department score is derived from the company
// score, which is itself derived from the global one.
func BuildDepartmentStats(rng *rand.Rand, samples []schema.FrequencySample, companyName string, companyID int64, departmentName string, departmentID int64, now time.Time) []schema.StatRow {
	scored := make([]schema.FrequencySample, 0, len(samples))
	for _, sample := range samples {
		companyScore := CompanyScore(rng, sample.Score, companyName)
		scored = append(scored, schema.FrequencySample{
			ProblemID: sample.ProblemID,
			Score:     DepartmentScore(rng, companyScore, departmentName),
		})
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })

	params := schema.ScopeParamsTable[schema.DepartmentScope]
	rows := make([]schema.StatRow, 0, len(scored))
	for i, sample := range scored {
		rank := i + 1
		metrics := GenerateMetrics(rng, sample.Score, rank, schema.DepartmentScope)
		cid, did := companyID, departmentID
		rows = append(rows, schema.StatRow{
			ProblemID:    sample.ProblemID,
			CompanyID:    &cid,
			DepartmentID: &did,
			Score:        sample.Score,
			Rank:         rank,
			Scope:        schema.DepartmentScope,
			Metrics:      metrics,
			LastAsked:    daysAgo(now, uniformInt(rng, params.LastAskedDays.Lo, params.LastAskedDays.Hi)),
			FirstAsked:   daysAgo(now, params.FirstAskedDays.Lo),
		})
	}
	return rows
}

// daysAgo formats the date n days before now as YYYY-MM-DD.
func daysAgo(now time.Time, n int) string {
	return now.AddDate(0, 0, -n).Format("2006-01-02")
}
