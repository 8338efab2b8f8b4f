package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig() does not validate: %v", err)
	}
	if cfg.Output != DefaultOutput {
		t.Errorf("Output = %q, want %q", cfg.Output, DefaultOutput)
	}

	var website, blog, docs int
	for _, r := range cfg.Repositories {
		switch r.Kind {
		case KindWebsite:
			website++
		case KindBlog:
			blog++
		case KindDocs:
			docs++
		}
	}
	if website != 1 || blog != 1 {
		t.Errorf("got %d website and %d blog repositories, want 1 each", website, blog)
	}
	if docs == 0 {
		t.Error("expected at least one docs repository")
	}
}

func TestDefaultConfig_DirectoryOrder(t *testing.T) {
	cfg := DefaultConfig()

	var site *Repository
	for i := range cfg.Repositories {
		if cfg.Repositories[i].Kind == KindWebsite {
			site = &cfg.Repositories[i]
			break
		}
	}
	if site == nil {
		t.Fatal("no website repository in defaults")
	}

	// Order drives priority, so it must match the published layout.
	want := []string{"_team", "_research", "_teaching", "_join-us"}
	if len(site.Directories) != len(want) {
		t.Fatalf("got %d directory mappings, want %d", len(site.Directories), len(want))
	}
	for i, m := range site.Directories {
		if m.Dir != want[i] {
			t.Errorf("directory %d = %q, want %q", i, m.Dir, want[i])
		}
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sitesearch.yml")

	content := `
workspace: /tmp/checkouts
output: out.json
repositories:
  - name: example-site
    git_url: https://example.org/site.git
    base_url: https://example.org
    kind: website
    directories:
      - dir: _team
        url: /team/
      - dir: _research
        url: /research/
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Workspace != "/tmp/checkouts" {
		t.Errorf("Workspace = %q", cfg.Workspace)
	}
	if cfg.Output != "out.json" {
		t.Errorf("Output = %q", cfg.Output)
	}
	if len(cfg.Repositories) != 1 {
		t.Fatalf("got %d repositories, want 1", len(cfg.Repositories))
	}

	repo := cfg.Repositories[0]
	if repo.Kind != KindWebsite {
		t.Errorf("Kind = %q", repo.Kind)
	}
	if len(repo.Directories) != 2 || repo.Directories[0].Dir != "_team" || repo.Directories[1].Dir != "_research" {
		t.Errorf("Directories = %+v", repo.Directories)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(cfg.Repositories) == 0 {
		t.Error("expected default repositories when no config file exists")
	}
	if cfg.Workspace == "" {
		t.Error("expected workspace fallback")
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Output: "search_db.json",
			Repositories: []Repository{
				{Name: "a", GitURL: "https://x/a.git", BaseURL: "https://a.org", Kind: KindDocs},
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing output", func(c *Config) { c.Output = "" }, true},
		{"no repositories", func(c *Config) { c.Repositories = nil }, true},
		{"missing name", func(c *Config) { c.Repositories[0].Name = "" }, true},
		{"missing git url", func(c *Config) { c.Repositories[0].GitURL = "" }, true},
		{"missing base url", func(c *Config) { c.Repositories[0].BaseURL = "" }, true},
		{"bad kind", func(c *Config) { c.Repositories[0].Kind = "wiki" }, true},
		{"directories on docs", func(c *Config) {
			c.Repositories[0].Directories = []DirectoryMapping{{Dir: "_x", URL: "/x/"}}
		}, true},
		{"blog settings on docs", func(c *Config) {
			c.Repositories[0].Blog = BlogSettings{PostDir: "_posts"}
		}, true},
		{"duplicate names", func(c *Config) {
			c.Repositories = append(c.Repositories, c.Repositories[0])
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
