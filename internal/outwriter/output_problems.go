package outwriter

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/freqseed/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// topProblemRows caps how many problems the summary table shows.
const topProblemRows = 10

// WriteProblemSummary prints the sync result: a table of the highest-scored
// problems followed by the difficulty distribution and skip counts.
func (ow *OutWriter) WriteProblemSummary(records []schema.ProblemRecord, skipped int, duration time.Duration) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Rank", "ID", "Title", "Difficulty", "Score", "Tags"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	titleWidth := GetMaxTableTitleWidth()
	shown := min(topProblemRows, len(records))

	var data [][]string
	for i, rec := range records[:shown] {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			rec.LeetcodeID,
			TruncateTitle(rec.Title, titleWidth),
			string(rec.Difficulty),
			strconv.Itoa(rec.Score),
			strings.Join(rec.Tags, ", "),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	counts := map[schema.Difficulty]int{}
	for _, rec := range records {
		counts[rec.Difficulty]++
	}
	fmt.Printf("Synced %d problems (easy: %d, medium: %d, hard: %d), skipped %d malformed\n",
		len(records), counts[schema.EasyDifficulty], counts[schema.MediumDifficulty], counts[schema.HardDifficulty], skipped)
	fmt.Printf("Sync completed in %v\n", duration)
	return nil
}
