package config

// Kind categorizes a source repository and selects the URL, priority,
// and extraction rules applied to its files.
type Kind string

const (
	KindWebsite Kind = "website"
	KindBlog    Kind = "blog"
	KindDocs    Kind = "docs"
	KindOther   Kind = "other"
)

// DirectoryMapping maps a source directory name to the URL path it is
// published under. Mappings are kept in a slice because their order
// determines the relative priority of the mapped directories.
type DirectoryMapping struct {
	Dir string `yaml:"dir" koanf:"dir"`
	URL string `yaml:"url" koanf:"url"`
}

// BlogSettings holds Jekyll-style blog conventions.
type BlogSettings struct {
	PostDir   string `yaml:"post_dir" koanf:"post_dir"`
	DateInURL bool   `yaml:"date_in_url" koanf:"date_in_url"`
	URLPrefix string `yaml:"url_prefix" koanf:"url_prefix"`
}

// Repository describes one source repository to index.
type Repository struct {
	Name        string             `yaml:"name" koanf:"name"`
	GitURL      string             `yaml:"git_url" koanf:"git_url"`
	BaseURL     string             `yaml:"base_url" koanf:"base_url"`
	Kind        Kind               `yaml:"kind" koanf:"kind"`
	Directories []DirectoryMapping `yaml:"directories,omitempty" koanf:"directories"`
	Blog        BlogSettings       `yaml:"blog,omitempty" koanf:"blog"`
}

// Config is the top-level sitesearch configuration, corresponding to
// sitesearch.yml.
type Config struct {
	Workspace    string       `yaml:"workspace" koanf:"workspace"`
	Output       string       `yaml:"output" koanf:"output"`
	Repositories []Repository `yaml:"repositories" koanf:"repositories"`
}
