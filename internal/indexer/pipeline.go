package indexer

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/comphy-lab/sitesearch/internal/config"
	"github.com/comphy-lab/sitesearch/internal/gitrepo"
	"github.com/comphy-lab/sitesearch/internal/progress"
	"github.com/comphy-lab/sitesearch/internal/walker"
)

// Stats summarizes a completed run.
type Stats struct {
	Repos   int // Repositories processed without a fatal error.
	Files   int // Source files extracted.
	Entries int // Entries in the final index.
}

// Pipeline runs the full indexing sequence: fetch each repository,
// extract entries from its files, then deduplicate, normalize and sort
// the combined result. Repositories are processed one at a time; a
// failing repository or file is reported and skipped, never fatal.
type Pipeline struct {
	Config        *config.Config
	Now           time.Time
	Verbose       bool
	KeepCheckouts bool
	Reporter      progress.Reporter
}

// Run executes the pipeline and returns the ranked entries.
func (p *Pipeline) Run() ([]Entry, Stats) {
	now := p.Now
	if now.IsZero() {
		now = time.Now()
	}

	var all []Entry
	var stats Stats

	for _, repo := range p.Config.Repositories {
		entries, files, err := p.processRepository(repo, now)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error processing repository %s: %v\n", repo.Name, err)
			continue
		}
		stats.Repos++
		stats.Files += files
		all = append(all, entries...)
	}

	all = Deduplicate(all)
	NormalizeURLs(all)
	SortByPriority(all)
	stats.Entries = len(all)
	return all, stats
}

type sourceKind int

const (
	srcMarkdown sourceKind = iota
	srcDocsHTML
	srcRootHTML
)

type sourceFile struct {
	rel  string
	kind sourceKind
}

func (p *Pipeline) processRepository(repo config.Repository, now time.Time) ([]Entry, int, error) {
	fmt.Fprintf(os.Stderr, "Processing %s repository %s\n", repo.Kind, repo.Name)

	dir, err := gitrepo.Fetch(p.Config.Workspace, repo)
	if err != nil {
		return nil, 0, err
	}
	if !p.KeepCheckouts {
		defer func() {
			if err := gitrepo.Cleanup(dir); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			}
		}()
	}

	files, err := selectFiles(repo, dir)
	if err != nil {
		return nil, 0, err
	}
	fmt.Fprintf(os.Stderr, "Found %d files to process\n", len(files))

	ex := &Extractor{Repo: repo, Root: dir, Now: now, Verbose: p.Verbose}

	var entries []Entry
	if p.Reporter != nil {
		p.Reporter.Start(len(files))
	}
	for i, f := range files {
		if p.Reporter != nil {
			p.Reporter.Update(i+1, f.rel)
		}
		ex.debugf("  - %s", f.rel)

		var got []Entry
		var extractErr error
		switch f.kind {
		case srcDocsHTML:
			got, extractErr = ex.DocsHTMLFile(f.rel)
		case srcRootHTML:
			got, extractErr = ex.RootHTMLFile(f.rel)
		default:
			got, extractErr = ex.MarkdownFile(f.rel)
		}
		if extractErr != nil {
			fmt.Fprintf(os.Stderr, "Error processing file %s: %v\n", f.rel, extractErr)
			continue
		}
		entries = append(entries, got...)
	}
	if p.Reporter != nil {
		p.Reporter.Finish()
	}

	return entries, len(files), nil
}

// selectFiles picks the files a repository kind indexes: rendered HTML
// under docs/ for docs repositories, post markdown for blogs, markdown
// plus root HTML for websites, and markdown everywhere else.
func selectFiles(repo config.Repository, root string) ([]sourceFile, error) {
	switch repo.Kind {
	case config.KindDocs:
		if _, err := os.Stat(filepath.Join(root, "docs")); err != nil {
			return nil, fmt.Errorf("docs directory not found in %s", root)
		}
		files, err := walker.Walk(walker.WalkerConfig{
			RootDir: root,
			Include: []string{"docs/**/*.html"},
		})
		if err != nil {
			return nil, err
		}
		var selected []sourceFile
		for _, f := range files {
			selected = append(selected, sourceFile{rel: f.RelPath, kind: srcDocsHTML})
		}
		return selected, nil

	case config.KindBlog:
		include := []string{"**/*.md"}
		if repo.Blog.PostDir != "" {
			postDir := filepath.Join(root, filepath.FromSlash(repo.Blog.PostDir))
			if _, err := os.Stat(postDir); err == nil {
				include = []string{path.Join(repo.Blog.PostDir, "**/*.md")}
			}
		}
		return markdownFiles(root, include)

	case config.KindWebsite:
		files, err := walker.Walk(walker.WalkerConfig{
			RootDir: root,
			Include: []string{"**/*.md", "**/*.html"},
		})
		if err != nil {
			return nil, err
		}
		var selected []sourceFile
		for _, f := range files {
			switch {
			case strings.HasSuffix(f.RelPath, ".md"):
				if walker.IsReadme(f.RelPath) {
					continue
				}
				selected = append(selected, sourceFile{rel: f.RelPath, kind: srcMarkdown})
			case !strings.Contains(f.RelPath, "/"):
				// HTML is only indexed from the site root.
				selected = append(selected, sourceFile{rel: f.RelPath, kind: srcRootHTML})
			}
		}
		return selected, nil
	}

	return markdownFiles(root, []string{"**/*.md"})
}

func markdownFiles(root string, include []string) ([]sourceFile, error) {
	files, err := walker.Walk(walker.WalkerConfig{RootDir: root, Include: include})
	if err != nil {
		return nil, err
	}
	var selected []sourceFile
	for _, f := range files {
		if walker.IsReadme(f.RelPath) {
			continue
		}
		selected = append(selected, sourceFile{rel: f.RelPath, kind: srcMarkdown})
	}
	return selected, nil
}
