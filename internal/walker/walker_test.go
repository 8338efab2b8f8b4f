package walker

import (
	"os"
	"path/filepath"
	"testing"
)

// writeTree creates a small site tree for walking.
func writeTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"index.html":               "<html></html>",
		"README.md":                "# readme",
		"_team/index.md":           "team",
		"_posts/2025-01-01-a.md":   "post",
		"docs/api/foo.html":        "<html></html>",
		".github/workflows/ci.yml": "on: push",
		"basilisk/src/solver.c":    "int main() {}",
	}
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
	return dir
}

func TestWalk_DefaultExcludes(t *testing.T) {
	dir := writeTree(t)

	files, err := Walk(WalkerConfig{RootDir: dir})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	for _, f := range files {
		switch {
		case filepath.ToSlash(f.RelPath)[:1] == ".":
			t.Errorf("dotdir file leaked through: %s", f.RelPath)
		case len(f.RelPath) >= 8 && f.RelPath[:8] == "basilisk":
			t.Errorf("basilisk file leaked through: %s", f.RelPath)
		}
	}
}

func TestWalk_IncludeGlobs(t *testing.T) {
	dir := writeTree(t)

	files, err := Walk(WalkerConfig{
		RootDir: dir,
		Include: []string{"**/*.md"},
	})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	got := make(map[string]bool)
	for _, f := range files {
		got[f.RelPath] = true
	}

	for _, want := range []string{"README.md", "_team/index.md", "_posts/2025-01-01-a.md"} {
		if !got[want] {
			t.Errorf("expected %s in results, got %v", want, got)
		}
	}
	if got["index.html"] {
		t.Error("include filter **/*.md let through index.html")
	}
}

func TestWalk_ExcludeGlobs(t *testing.T) {
	dir := writeTree(t)

	files, err := Walk(WalkerConfig{
		RootDir: dir,
		Include: []string{"**/*.html"},
		Exclude: []string{"docs/**"},
	})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	for _, f := range files {
		if f.RelPath != "index.html" {
			t.Errorf("unexpected file: %s", f.RelPath)
		}
	}
}

func TestIsReadme(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"README.md", true},
		{"readme.md", true},
		{"docs/ReadMe.md", true},
		{"README.txt", false},
		{"index.md", false},
	}
	for _, tt := range tests {
		if got := IsReadme(tt.path); got != tt.want {
			t.Errorf("IsReadme(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
