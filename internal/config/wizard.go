package config

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to the given path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to sitesearch! Let's configure the index build.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Workspace for repository checkouts.
	workspacePrompt := promptui.Prompt{
		Label:   "Workspace directory for repository checkouts",
		Default: ".",
	}
	workspace, err := workspacePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("workspace: %w", err)
	}
	cfg.Workspace = workspace

	// 2. Output path.
	outputPrompt := promptui.Prompt{
		Label:   "Output path for the search index",
		Default: DefaultOutput,
	}
	output, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output path: %w", err)
	}
	cfg.Output = output

	// 3. Repository set.
	repoPrompt := promptui.Select{
		Label: "Repository set",
		Items: []string{
			"default — lab website, blog, and documentation sites",
			"empty   — start from scratch and edit the config by hand",
		},
	}
	repoIdx, _, err := repoPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("repository set: %w", err)
	}
	if repoIdx == 1 {
		cfg.Repositories = nil
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	if len(cfg.Repositories) == 0 {
		fmt.Println("Add repositories to the config before running sitesearch build.")
	} else {
		names := make([]string, 0, len(cfg.Repositories))
		for _, r := range cfg.Repositories {
			names = append(names, r.Name)
		}
		fmt.Printf("Configured repositories: %s\n", strings.Join(names, ", "))
	}
	return cfg, nil
}
