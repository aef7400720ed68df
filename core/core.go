// Package core has the pipeline logic for normalization, synthetic metric
// generation and statement emission.
package core

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/huangsam/freqseed/internal/codetop"
	"github.com/huangsam/freqseed/internal/contract"
	"github.com/huangsam/freqseed/internal/outwriter"
	"github.com/huangsam/freqseed/internal/parquet"
	"github.com/huangsam/freqseed/internal/sqlsink"
	"github.com/huangsam/freqseed/schema"
)

// ExecutorFunc defines the function signature for executing pipeline modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// problemCompanyLinkLimit caps how many top problems get company links.
const problemCompanyLinkLimit = 50

// ExecuteSetup seeds the companies and departments catalogs into the sink.
// It serves as the main entry point for the 'setup' mode.
func ExecuteSetup(ctx context.Context, cfg *contract.Config) error {
	exec, err := sqlsink.NewExecutor(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = exec.Close() }()

	emitter := sqlsink.NewEmitter(cfg.Sink, time.Now())

	if err := exec.Exec(ctx, emitter.CompanyUpsert()); err != nil {
		return fmt.Errorf("failed to seed companies: %w", err)
	}
	contract.Okf(cfg.UseColors, "Seeded %d companies", len(schema.Companies))

	if err := exec.Exec(ctx, emitter.DepartmentUpsert()); err != nil {
		return fmt.Errorf("failed to seed departments: %w", err)
	}
	contract.Okf(cfg.UseColors, "Seeded %d departments", len(schema.Departments))

	return nil
}

// ExecuteProblemSync fetches the problem list, normalizes it and upserts the
// result in batches. Malformed entries are skipped with a warning; a failed
// batch is reported and does not stop later batches.
// It serves as the main entry point for the 'problems' mode.
func ExecuteProblemSync(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()

	source := codetop.NewClient(cfg.APIURL, cfg.FetchTimeout)
	return runProblemSync(ctx, cfg, source, start)
}

// runProblemSync is the source-injectable body of ExecuteProblemSync.
func runProblemSync(ctx context.Context, cfg *contract.Config, source contract.ProblemSource, start time.Time) error {
	payload, err := source.FetchAll(ctx)
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}
	contract.Okf(cfg.UseColors, "Fetched %d entries from %s", len(payload.List), cfg.APIURL)

	records := make([]schema.ProblemRecord, 0, len(payload.List))
	skipped := 0
	for _, entry := range payload.List {
		record, err := Normalize(entry)
		if err != nil {
			skipped++
			contract.LogWarn("skipping malformed entry", err)
			continue
		}
		records = append(records, record)
	}
	SortRecordsByScore(records)

	exec, err := sqlsink.NewExecutor(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = exec.Close() }()

	emitter := sqlsink.NewEmitter(cfg.Sink, start)

	batches := emitter.ProblemBatches(records, cfg.BatchSize)
	failed := applyStatements(ctx, cfg, exec, batches, "problem batch")

	link := emitter.ProblemCompanyLink(records, problemCompanyLinkLimit, linkCompanyNames(cfg.CompanyLimit))
	if err := exec.Exec(ctx, link); err != nil {
		failed++
		contract.Failf(cfg.UseColors, "Company link statement failed: %v", err)
	} else {
		contract.Okf(cfg.UseColors, "Linked top %d problems to %d companies", min(problemCompanyLinkLimit, len(records)), cfg.CompanyLimit)
	}

	ow := outwriter.NewOutWriter()
	if err := ow.WriteProblemSummary(records, skipped, time.Since(start)); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d statement(s) failed", failed)
	}
	return nil
}

// ExecuteStats regenerates the frequency statistics for one scope: the scope
// is deleted wholesale, then rebuilt from the fixture with seeded randomness.
// It serves as the main entry point for the 'stats' mode.
func ExecuteStats(ctx context.Context, cfg *contract.Config, scope schema.Scope) error {
	start := time.Now()

	rows := BuildScopeRows(cfg, scope, start)

	exec, err := sqlsink.NewExecutor(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = exec.Close() }()

	emitter := sqlsink.NewEmitter(cfg.Sink, start)

	if err := exec.Exec(ctx, emitter.StatsDelete(scope)); err != nil {
		return fmt.Errorf("failed to reset %s stats: %w", scope, err)
	}
	contract.Okf(cfg.UseColors, "Cleared existing %s stats", scope)

	batches := emitter.StatsBatches(rows, cfg.StatsBatchSize)
	failed := applyStatements(ctx, cfg, exec, batches, "stats batch")

	ow := outwriter.NewOutWriter()
	if err := ow.WriteStatsSummary(scope, rows, len(batches), failed, time.Since(start)); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d batch(es) failed", failed)
	}
	return nil
}

// ExecuteExport regenerates all scopes from the fixture and writes them to a
// Parquet file instead of a SQL sink. The same seed produces the same file.
// It serves as the main entry point for the 'export' mode.
func ExecuteExport(_ context.Context, cfg *contract.Config, outputPath string) error {
	start := time.Now()

	var rows []schema.StatRow
	for _, scope := range schema.AllScopes {
		rows = append(rows, BuildScopeRows(cfg, scope, start)...)
	}

	records := parquet.ConvertStatRows(rows)
	if err := parquet.WriteStatsParquet(records, outputPath); err != nil {
		return err
	}
	contract.Okf(cfg.UseColors, "Exported %d stat rows to %s", len(records), outputPath)
	return nil
}

// BuildScopeRows generates every stat row for one scope from the bundled
// fixture. Each call seeds a fresh RNG, so scopes are independently
// reproducible regardless of generation order.
func BuildScopeRows(cfg *contract.Config, scope schema.Scope, now time.Time) []schema.StatRow {
	rng := rand.New(rand.NewSource(cfg.Seed))
	samples := schema.GlobalFrequencies[:cfg.StatsLimit]

	switch scope {
	case schema.CompanyScope:
		perCompany := min(contract.DefaultCompanyProblemLimit, len(samples))
		var rows []schema.StatRow
		for i, company := range schema.Companies[:cfg.CompanyLimit] {
			rows = append(rows, BuildCompanyStats(rng, samples[:perCompany], company.Name, int64(i+1), now)...)
		}
		return rows
	case schema.DepartmentScope:
		perPair := min(contract.DefaultDepartmentProblemLimit, len(samples))
		companyCount := min(contract.DefaultDepartmentCompanyLimit, len(schema.Companies))
		var rows []schema.StatRow
		for i, company := range schema.Companies[:companyCount] {
			for j, department := range schema.Departments[:cfg.DepartmentLimit] {
				rows = append(rows, BuildDepartmentStats(rng, samples[:perPair], company.Name, int64(i+1), department.Name, int64(j+1), now)...)
			}
		}
		return rows
	default:
		return BuildGlobalStats(rng, samples, now)
	}
}

// applyStatements runs a batch list against the executor, reporting each
// outcome. Failures are counted, not fatal.
func applyStatements(ctx context.Context, cfg *contract.Config, exec contract.StatementExecutor, stmts []contract.Statement, label string) int {
	failed := 0
	for i, stmt := range stmts {
		if err := exec.Exec(ctx, stmt); err != nil {
			failed++
			contract.Failf(cfg.UseColors, "%s %d/%d failed: %v", label, i+1, len(stmts), err)
			continue
		}
		contract.Okf(cfg.UseColors, "Applied %s %d/%d", label, i+1, len(stmts))
	}
	return failed
}

// linkCompanyNames returns the first n catalog company names, which are the
// companies that receive problem links and COMPANY-scope stats.
func linkCompanyNames(n int) []string {
	n = min(n, len(schema.Companies))
	names := make([]string, 0, n)
	for _, company := range schema.Companies[:n] {
		names = append(names, company.Name)
	}
	return names
}
