package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sthwalo/acc-sub020/internal/adapter/history"
	"github.com/sthwalo/acc-sub020/internal/config"
)

var recentLimit int

// statsCmd represents the stats command.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Display import history statistics",
	Long: `Display statistics about recorded statement imports.

Shows:
- Total number of import runs
- Accepted, duplicate, unparsed and failed line counts across all runs
- Last import timestamp
- The most recent runs

Example:
  acc stats
  acc stats --recent 20`,
	Run: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&recentLimit, "recent", 5, "Number of recent runs to list")
}

func runStats(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	exitOnError(err, "failed to load configuration")

	store, err := history.Open(cfg.HistoryDBPath)
	exitOnError(err, "failed to open history database")
	defer store.Close()

	ctx := context.Background()

	stats, err := store.GetStats(ctx)
	exitOnError(err, "failed to get import statistics")

	fmt.Println("\n=== Import Statistics ===")
	fmt.Printf("Total runs:       %d\n", stats.TotalRuns)
	fmt.Printf("Total accepted:   %d\n", stats.TotalAccepted)
	fmt.Printf("Total duplicates: %d\n", stats.TotalDuplicates)
	fmt.Printf("Total unparsed:   %d\n", stats.TotalUnparsed)
	fmt.Printf("Total failed:     %d\n", stats.TotalFailed)

	if stats.LastImport.Valid {
		fmt.Printf("Last import:      %s\n", stats.LastImport.String)
	} else {
		fmt.Printf("Last import:      (never)\n")
	}

	if recentLimit > 0 {
		runs, err := store.RecentRuns(ctx, recentLimit)
		exitOnError(err, "failed to list recent runs")

		if len(runs) > 0 {
			fmt.Println("\nRecent runs:")
			for _, run := range runs {
				fmt.Printf("  %s  %-24s  company %d period %d  accepted=%d duplicates=%d unparsed=%d failed=%d\n",
					run.ImportedAt.Format("2006-01-02 15:04"),
					run.Source,
					run.CompanyID,
					run.FiscalPeriodID,
					run.Accepted,
					run.Duplicates,
					run.Unparsed,
					run.Failed,
				)
			}
		}
	}

	fmt.Println()
}
