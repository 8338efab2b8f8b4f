package indexer

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/comphy-lab/sitesearch/internal/config"
)

var (
	dateSlug    = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})-(.*)`)
	redirectURL = regexp.MustCompile(`url=([^"'>\s]+)`)
)

// fileURL resolves the public URL for a file, identified by its
// slash-separated path relative to the checkout root. A non-empty
// permalink from frontmatter overrides all kind-specific rules.
func (e *Extractor) fileURL(relPath, permalink string) string {
	baseURL := strings.TrimRight(e.Repo.BaseURL, "/")

	if permalink != "" {
		return baseURL + "/" + strings.TrimLeft(permalink, "/")
	}

	switch e.Repo.Kind {
	case config.KindBlog:
		if e.Repo.Blog.DateInURL {
			if m := dateSlug.FindStringSubmatch(stem(relPath)); m != nil {
				return baseURL + e.Repo.Blog.URLPrefix + "/" + m[1] + "/" + m[2] + "/" + m[3] + "/" + m[4] + "/"
			}
		}
		return baseURL + "/" + trimExt(relPath) + "/"

	case config.KindWebsite:
		for _, mapping := range e.Repo.Directories {
			if !strings.Contains(relPath, mapping.Dir) {
				continue
			}
			parts := strings.SplitN(relPath, mapping.Dir+"/", 2)
			if len(parts) < 2 {
				return baseURL + mapping.URL
			}
			name := strings.ToLower(stem(parts[1]))
			if name == "index" {
				return baseURL + mapping.URL
			}
			return baseURL + mapping.URL + "#" + name
		}

		atRoot := !strings.Contains(relPath, "/")
		if atRoot && strings.EqualFold(filepath.Ext(relPath), ".html") {
			name := stem(relPath)
			if strings.ToLower(name) == "index" {
				return baseURL
			}
			if target, ok := e.redirectTarget(relPath, baseURL); ok {
				return target
			}
			return baseURL + "#" + strings.ToLower(name)
		}
		if atRoot {
			name := stem(relPath)
			if strings.ToLower(name) == "index" {
				return baseURL
			}
			return baseURL + "#" + strings.ToLower(name)
		}
	case config.KindDocs:
		target := strings.TrimPrefix(relPath, "docs/")
		if !strings.HasSuffix(target, ".html") {
			target += ".html"
		}
		return baseURL + "/" + escapePath(target)
	}

	return baseURL + "/" + trimExt(relPath) + "/"
}

// redirectTarget follows a meta-refresh redirect inside a root HTML
// stub, returning the resolved URL when one is present.
func (e *Extractor) redirectTarget(relPath, baseURL string) (string, bool) {
	content, err := os.ReadFile(filepath.Join(e.Root, filepath.FromSlash(relPath)))
	if err != nil {
		e.warnf("could not read %s for redirect check: %v", relPath, err)
		return "", false
	}
	if !strings.Contains(string(content), `meta http-equiv="refresh"`) {
		return "", false
	}
	m := redirectURL.FindStringSubmatch(string(content))
	if m == nil {
		return "", false
	}
	redirect := m[1]
	switch {
	case strings.HasPrefix(redirect, "/#"):
		// A section of the index page.
		return baseURL + redirect[1:], true
	case strings.HasPrefix(redirect, "/"):
		return baseURL + redirect, true
	default:
		return baseURL + "/" + redirect, true
	}
}

// escapePath percent-encodes a slash-separated path, leaving slashes
// and unreserved characters intact.
func escapePath(p string) string {
	var b strings.Builder
	for i := 0; i < len(p); i++ {
		c := p[i]
		if c == '/' || c == '-' || c == '.' || c == '_' || c == '~' ||
			(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			b.WriteByte(c)
			continue
		}
		const hex = "0123456789ABCDEF"
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}
