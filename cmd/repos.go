package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var reposCmd = &cobra.Command{
	Use:   "repos",
	Short: "List the configured source repositories",
	RunE:  runRepos,
}

func init() {
	rootCmd.AddCommand(reposCmd)
}

func runRepos(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if len(cfg.Repositories) == 0 {
		fmt.Println("No repositories configured. Use `sitesearch init` to create a config.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tKIND\tBASE URL\tGIT URL")
	for _, repo := range cfg.Repositories {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", repo.Name, repo.Kind, repo.BaseURL, repo.GitURL)
	}
	return w.Flush()
}
