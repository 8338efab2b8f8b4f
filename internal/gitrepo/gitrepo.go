package gitrepo

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/comphy-lab/sitesearch/internal/config"
)

// Dir returns the checkout directory for a repository inside the workspace.
func Dir(workspace string, repo config.Repository) string {
	return filepath.Join(workspace, repo.Name)
}

// Fetch makes a repository's working tree available under the workspace:
// git pull if a checkout already exists, git clone otherwise. It returns
// the checkout directory.
func Fetch(workspace string, repo config.Repository) (string, error) {
	dir := Dir(workspace, repo)

	if _, err := os.Stat(dir); err == nil {
		fmt.Fprintf(os.Stderr, "Updating existing checkout at %s\n", dir)
		pullCmd := exec.Command("git", "-C", dir, "pull")
		pullCmd.Stdout = os.Stderr
		pullCmd.Stderr = os.Stderr
		if err := pullCmd.Run(); err != nil {
			return "", fmt.Errorf("git pull in %s: %w", dir, err)
		}
		return dir, nil
	}

	if err := os.MkdirAll(filepath.Dir(dir), 0o755); err != nil {
		return "", fmt.Errorf("creating workspace: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Cloning %s to %s\n", repo.GitURL, dir)
	cloneCmd := exec.Command("git", "clone", "--depth", "1", repo.GitURL, dir)
	cloneCmd.Stdout = os.Stderr
	cloneCmd.Stderr = os.Stderr
	if err := cloneCmd.Run(); err != nil {
		return "", fmt.Errorf("git clone %s: %w", repo.GitURL, err)
	}
	return dir, nil
}

// Cleanup removes a checkout directory. Missing directories are not an error.
func Cleanup(dir string) error {
	if dir == "" {
		return nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil
	}
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("removing checkout %s: %w", dir, err)
	}
	return nil
}
