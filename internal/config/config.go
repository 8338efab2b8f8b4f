package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (SITESEARCH_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: SITESEARCH_OUTPUT -> output, etc.
	if err := k.Load(env.Provider("SITESEARCH_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "SITESEARCH_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if cfg.Workspace == "" {
		if ws := os.Getenv("GITHUB_WORKSPACE"); ws != "" {
			cfg.Workspace = ws
		} else {
			cfg.Workspace = "."
		}
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validKinds is the set of recognized repository kinds.
var validKinds = map[Kind]bool{
	KindWebsite: true,
	KindBlog:    true,
	KindDocs:    true,
	KindOther:   true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Output == "" {
		return fmt.Errorf("output is required")
	}
	if len(c.Repositories) == 0 {
		return fmt.Errorf("at least one repository is required")
	}

	seen := make(map[string]bool)
	for i, repo := range c.Repositories {
		if repo.Name == "" {
			return fmt.Errorf("repository %d: name is required", i)
		}
		if seen[repo.Name] {
			return fmt.Errorf("repository %q: duplicate name", repo.Name)
		}
		seen[repo.Name] = true

		if repo.GitURL == "" {
			return fmt.Errorf("repository %q: git_url is required", repo.Name)
		}
		if repo.BaseURL == "" {
			return fmt.Errorf("repository %q: base_url is required", repo.Name)
		}
		if _, err := url.Parse(repo.BaseURL); err != nil {
			return fmt.Errorf("repository %q: invalid base_url: %w", repo.Name, err)
		}
		if !validKinds[repo.Kind] {
			return fmt.Errorf("repository %q: invalid kind %q: must be one of website, blog, docs, other", repo.Name, repo.Kind)
		}
		if len(repo.Directories) > 0 && repo.Kind != KindWebsite {
			return fmt.Errorf("repository %q: directories are only valid for website repositories", repo.Name)
		}
		if repo.Blog != (BlogSettings{}) && repo.Kind != KindBlog {
			return fmt.Errorf("repository %q: blog settings are only valid for blog repositories", repo.Name)
		}
	}

	return nil
}
