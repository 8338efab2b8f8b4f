package cmd

import (
	"github.com/spf13/cobra"

	"github.com/comphy-lab/sitesearch/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "sitesearch",
	Short: "Build a ranked search index from lab websites, blogs and docs",
	Long: `Sitesearch clones a configured set of content repositories, extracts
their pages, posts, papers and documentation into searchable entries,
and writes one ranked JSON index consumed by the site's search box.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "sitesearch.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func loadConfig() (*config.Config, error) {
	return config.Load(cfgFile)
}
