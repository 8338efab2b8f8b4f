package indexer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/comphy-lab/sitesearch/internal/config"
)

func testTime() time.Time {
	return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
}

func newTestExtractor(t *testing.T, repo config.Repository) *Extractor {
	t.Helper()
	return &Extractor{Repo: repo, Root: t.TempDir(), Now: testTime()}
}

func writeTestFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}

func TestFileURL_Blog(t *testing.T) {
	e := newTestExtractor(t, config.Repository{
		Kind:    config.KindBlog,
		BaseURL: "https://blogs.comphy-lab.org",
		Blog: config.BlogSettings{
			PostDir:   "_posts",
			DateInURL: true,
			URLPrefix: "/blog",
		},
	})

	got := e.fileURL("_posts/2025-01-21-my-post.md", "")
	want := "https://blogs.comphy-lab.org/blog/2025/01/21/my-post/"
	if got != want {
		t.Errorf("fileURL() = %q, want %q", got, want)
	}

	// Undated posts fall back to a path URL.
	got = e.fileURL("notes/reading-list.md", "")
	want = "https://blogs.comphy-lab.org/notes/reading-list/"
	if got != want {
		t.Errorf("fileURL() = %q, want %q", got, want)
	}
}

func TestFileURL_PermalinkOverride(t *testing.T) {
	e := newTestExtractor(t, config.Repository{
		Kind:    config.KindWebsite,
		BaseURL: "https://comphy-lab.org",
	})

	got := e.fileURL("_teaching/2025-course.md", "/teaching/2025-course/")
	want := "https://comphy-lab.org/teaching/2025-course/"
	if got != want {
		t.Errorf("fileURL() = %q, want %q", got, want)
	}
}

func TestFileURL_WebsiteMappedDirectory(t *testing.T) {
	e := newTestExtractor(t, config.Repository{
		Kind:    config.KindWebsite,
		BaseURL: "https://comphy-lab.org",
		Directories: []config.DirectoryMapping{
			{Dir: "_team", URL: "/team/"},
		},
	})

	if got, want := e.fileURL("_team/jane-doe.md", ""), "https://comphy-lab.org/team/#jane-doe"; got != want {
		t.Errorf("member file = %q, want %q", got, want)
	}
	if got, want := e.fileURL("_team/index.md", ""), "https://comphy-lab.org/team/"; got != want {
		t.Errorf("index file = %q, want %q", got, want)
	}
}

func TestFileURL_WebsiteRoot(t *testing.T) {
	e := newTestExtractor(t, config.Repository{
		Kind:    config.KindWebsite,
		BaseURL: "https://comphy-lab.org",
	})

	writeTestFile(t, e.Root, "index.html", "<html><body>home</body></html>")
	if got, want := e.fileURL("index.html", ""), "https://comphy-lab.org"; got != want {
		t.Errorf("index.html = %q, want %q", got, want)
	}

	if got, want := e.fileURL("news.md", ""), "https://comphy-lab.org#news"; got != want {
		t.Errorf("news.md = %q, want %q", got, want)
	}

	writeTestFile(t, e.Root, "join.html",
		`<html><head><meta http-equiv="refresh" content="0; url=/#join-us"></head></html>`)
	if got, want := e.fileURL("join.html", ""), "https://comphy-lab.org#join-us"; got != want {
		t.Errorf("redirect stub = %q, want %q", got, want)
	}

	writeTestFile(t, e.Root, "about.html", "<html><body>plain page</body></html>")
	if got, want := e.fileURL("about.html", ""), "https://comphy-lab.org#about"; got != want {
		t.Errorf("plain root html = %q, want %q", got, want)
	}
}

func TestFileURL_Docs(t *testing.T) {
	e := newTestExtractor(t, config.Repository{
		Kind:    config.KindDocs,
		BaseURL: "https://x.org/pkg",
	})

	if got, want := e.fileURL("docs/api/foo.html", ""), "https://x.org/pkg/api/foo.html"; got != want {
		t.Errorf("docs html = %q, want %q", got, want)
	}
	if got, want := e.fileURL("docs/src/solver.c", ""), "https://x.org/pkg/src/solver.c.html"; got != want {
		t.Errorf("docs non-html = %q, want %q", got, want)
	}
	if got, want := e.fileURL("docs/my file.html", ""), "https://x.org/pkg/my%20file.html"; got != want {
		t.Errorf("docs encoding = %q, want %q", got, want)
	}
}

func TestFileURL_Idempotent(t *testing.T) {
	e := newTestExtractor(t, config.Repository{
		Kind:    config.KindBlog,
		BaseURL: "https://blogs.comphy-lab.org",
		Blog:    config.BlogSettings{DateInURL: true, URLPrefix: "/blog"},
	})

	first := e.fileURL("_posts/2025-01-21-my-post.md", "")
	second := e.fileURL("_posts/2025-01-21-my-post.md", "")
	if first != second {
		t.Errorf("resolver not deterministic: %q vs %q", first, second)
	}
}
