package indexer

import (
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/comphy-lab/sitesearch/internal/config"
)

// recentPostWindow is how long a blog post counts as recent and ranks
// above older posts.
const recentPostWindow = 90 * 24 * time.Hour

var stemDate = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`)

// priority ranks a file before its entries exist. Website files in
// mapped directories take the mapping's configured order, starting at
// 1 for the first mapping. Lower is more important.
func (e *Extractor) priority(relPath string) int {
	switch e.Repo.Kind {
	case config.KindWebsite:
		for i, mapping := range e.Repo.Directories {
			// The research directory ranks through its own paper
			// handler, not by position.
			if mapping.Dir == "_research" {
				continue
			}
			if strings.Contains(relPath, mapping.Dir) {
				return i + 1
			}
		}
		atRoot := !strings.Contains(relPath, "/")
		ext := strings.ToLower(path.Ext(relPath))
		if atRoot && (ext == ".html" || ext == ".md") {
			return 8
		}
		return 10

	case config.KindBlog:
		if strings.Contains(relPath, "_posts/") {
			if m := stemDate.FindStringSubmatch(stem(relPath)); m != nil {
				posted := time.Date(atoi(m[1]), time.Month(atoi(m[2])), atoi(m[3]), 0, 0, 0, 0, time.UTC)
				if e.Now.Sub(posted) < recentPostWindow {
					return 2
				}
			}
		}
		return 3

	case config.KindDocs:
		if strings.Contains(strings.ToLower(relPath), "api") {
			return 3
		}
		return 4
	}

	return 4
}

// atoi parses digits already validated by a regexp match.
func atoi(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}
