package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/comphy-lab/sitesearch/internal/db"
)

var (
	historyDBPath string
	historyLimit  int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded indexing runs",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&historyDBPath, "db", "sitesearch.db", "sqlite archive to read")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of runs to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(historyDBPath); err != nil {
		return fmt.Errorf("no run archive at %s (use `sitesearch build --db %s`)", historyDBPath, historyDBPath)
	}

	archive, err := db.Open(historyDBPath)
	if err != nil {
		return fmt.Errorf("opening run archive: %w", err)
	}
	defer archive.Close()

	runs, err := archive.ListRuns(historyLimit)
	if err != nil {
		return fmt.Errorf("listing runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Println("No recorded runs.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTARTED\tDURATION\tREPOS\tFILES\tENTRIES\tOUTPUT")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
			run.ID,
			run.StartedAt.Format("2006-01-02 15:04:05"),
			run.FinishedAt.Sub(run.StartedAt).Round(time.Second),
			run.RepoCount, run.FileCount, run.EntryCount, run.Output)
	}
	return w.Flush()
}
