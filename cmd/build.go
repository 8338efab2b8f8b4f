package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/comphy-lab/sitesearch/internal/db"
	"github.com/comphy-lab/sitesearch/internal/indexer"
	"github.com/comphy-lab/sitesearch/internal/progress"
)

var (
	buildOutput   string
	buildDBPath   string
	keepCheckouts bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Fetch all configured repositories and build the search index",
	Long: `Build clones or updates every configured repository, extracts entries
from its content, and writes the deduplicated, priority-sorted index as
one JSON file. Failing repositories and files are skipped; only a
failure to write the final index aborts the run.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "index output path (overrides config)")
	buildCmd.Flags().StringVar(&buildDBPath, "db", "", "sqlite archive to record this run in")
	buildCmd.Flags().BoolVar(&keepCheckouts, "keep-checkouts", false, "keep repository checkouts after indexing")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	output := cfg.Output
	if buildOutput != "" {
		output = buildOutput
	}

	started := time.Now()
	pipeline := &indexer.Pipeline{
		Config:        cfg,
		Now:           started,
		Verbose:       verbose,
		KeepCheckouts: keepCheckouts,
		Reporter:      progress.NewReporter(),
	}
	entries, stats := pipeline.Run()

	if err := indexer.WriteIndex(output, entries); err != nil {
		return err
	}

	fmt.Printf("Generated search database with %d entries from %d repositories\n", stats.Entries, stats.Repos)
	fmt.Printf("Written search database to %s\n", output)

	if buildDBPath != "" {
		archive, err := db.Open(buildDBPath)
		if err != nil {
			return fmt.Errorf("opening run archive: %w", err)
		}
		defer archive.Close()

		id, err := archive.RecordRun(db.Run{
			StartedAt:  started,
			FinishedAt: time.Now(),
			RepoCount:  stats.Repos,
			FileCount:  stats.Files,
			EntryCount: stats.Entries,
			Output:     output,
		}, entries)
		if err != nil {
			return fmt.Errorf("recording run: %w", err)
		}
		fmt.Printf("Recorded run %s in %s\n", id, buildDBPath)
	}

	return nil
}
