package outwriter

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/huangsam/freqseed/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// topStatRows caps how many stat rows the summary table shows.
const topStatRows = 10

// WriteStatsSummary prints the outcome of one stats generation run: the
// highest-ranked rows for the scope, then batch totals.
func (ow *OutWriter) WriteStatsSummary(scope schema.Scope, rows []schema.StatRow, batches, failed int, duration time.Duration) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Rank", "Problem", "Score", "Interviews", "Percentile", "Rating"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	shown := min(topStatRows, len(rows))

	var data [][]string
	for _, row := range rows[:shown] {
		data = append(data, []string{
			strconv.Itoa(row.Rank),
			strconv.FormatInt(row.ProblemID, 10),
			strconv.Itoa(row.Score),
			strconv.Itoa(row.Metrics.InterviewCount),
			fmt.Sprintf("%.2f", row.Metrics.Percentile),
			fmt.Sprintf("%.1f", row.Metrics.DifficultyRating),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("Generated %d %s stat rows in %d batches (%d failed)\n", len(rows), scope, batches, failed)
	fmt.Printf("Stats completed in %v\n", duration)
	return nil
}
