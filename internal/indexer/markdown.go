package indexer

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/comphy-lab/sitesearch/internal/chunker"
	"github.com/comphy-lab/sitesearch/internal/config"
)

var (
	headingMarker  = regexp.MustCompile(`(?m)^#+\s+`)
	navHeading     = regexp.MustCompile(`(?i)^(navigation|menu|contents|index)$`)
	blogDatePrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}-`)
)

// MarkdownFile extracts entries from one markdown source. The document
// is split on heading markers; the preamble and every section become
// chunked entries. Website landing pages for the team, research and
// teaching directories get their own handling.
func (e *Extractor) MarkdownFile(relPath string) ([]Entry, error) {
	raw, err := os.ReadFile(filepath.Join(e.Root, filepath.FromSlash(relPath)))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", relPath, err)
	}

	front, body := ParseFrontMatter(string(raw))
	docURL := e.fileURL(relPath, front["permalink"])

	pageTitle := front["title"]
	if pageTitle == "" {
		name := stem(relPath)
		if e.Repo.Kind == config.KindBlog {
			name = blogDatePrefix.ReplaceAllString(name, "")
		}
		pageTitle = HumanizeStem(name)
	}

	website := e.Repo.Kind == config.KindWebsite
	isIndex := strings.EqualFold(stem(relPath), "index")
	if website && strings.Contains(relPath, "_research") && isIndex {
		// Paper citations are atomic; the section splitter does not apply.
		return e.researchIndex(docURL, body), nil
	}
	isTeamIndex := website && strings.Contains(relPath, "_team") && isIndex

	kind := string(e.Repo.Kind)
	var entries []Entry

	if strings.TrimSpace(body) != "" {
		sections := headingMarker.Split(body, -1)

		if strings.TrimSpace(sections[0]) != "" {
			entries = append(entries, e.preambleEntries(sections[0], pageTitle, docURL, relPath, kind)...)
		}

		for _, section := range sections[1:] {
			if strings.TrimSpace(section) == "" {
				continue
			}
			lines := strings.SplitN(section, "\n", 2)
			header := strings.TrimSpace(lines[0])
			var sectionBody string
			if len(lines) > 1 {
				sectionBody = strings.TrimSpace(lines[1])
			}
			if header == "" || sectionBody == "" || len(sectionBody) < minContentLen {
				continue
			}
			if navHeading.MatchString(header) {
				continue
			}

			clean := CleanMarkdown(sectionBody)
			sectionTitle := pageTitle + " - " + header
			sectionURL := docURL + "#" + GenerateAnchor(header)

			priority := e.priority(relPath)
			if isTeamIndex {
				priority = 1
			}

			for _, c := range chunker.Split(clean, chunker.DefaultMaxLen, sectionTitle) {
				title := c.Title
				if title == "" {
					title = sectionTitle
				}
				entries = append(entries, Entry{
					Title:    title,
					Content:  c.Text,
					URL:      sectionURL,
					Type:     kind + "_section",
					Priority: priority,
				})
			}
		}
	}

	if website && strings.Contains(relPath, "_teaching/") {
		entries = append(entries, e.teachingDetails(relPath, front, body)...)
	}

	return entries, nil
}

// preambleEntries handles the text before the first heading.
func (e *Extractor) preambleEntries(preamble, pageTitle, docURL, relPath, kind string) []Entry {
	clean := CleanMarkdown(preamble)
	if len(clean) < minContentLen {
		return nil
	}

	chunks := chunker.Split(clean, chunker.DefaultMaxLen, pageTitle)
	entries := make([]Entry, 0, len(chunks))
	for _, c := range chunks {
		title := c.Title
		if title == "" {
			if len(chunks) > 1 {
				title = pageTitle + " - Introduction"
			} else {
				title = pageTitle
			}
		}
		entries = append(entries, Entry{
			Title:    title,
			Content:  c.Text,
			URL:      docURL,
			Type:     kind + "_content",
			Priority: e.priority(relPath),
		})
	}
	return entries
}
