package indexer

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// metaRefresh marks redirect stubs, which carry no indexable content.
const metaRefresh = `meta http-equiv="refresh"`

// companionFiles maps well-known section ids to the markdown file whose
// content the site loads into that section at render time.
var companionFiles = map[string]string{
	"about-content": "aboutCoMPhy.md",
	"news-content":  "News.md",
}

// RootHTMLFile extracts entries from a root-level site page. Pages
// built from target sections yield one entry per section plus one per
// h2/h3/h4 subsection; pages without them yield a single whole-page
// entry. Redirect stubs are skipped.
func (e *Extractor) RootHTMLFile(relPath string) ([]Entry, error) {
	raw, err := os.ReadFile(filepath.Join(e.Root, filepath.FromSlash(relPath)))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", relPath, err)
	}
	content := string(raw)

	if strings.Contains(content, metaRefresh) {
		e.debugf("  skipping redirect stub %s", relPath)
		return nil, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", relPath, err)
	}

	title := CollapseWhitespace(doc.Find("title").First().Text())
	if title == "" {
		title = HumanizeStem(stem(relPath))
	}

	kind := string(e.Repo.Kind)
	baseURL := strings.TrimRight(e.Repo.BaseURL, "/")
	priority := e.priority(relPath)

	sections := doc.Find("section.target-section[id], div.target-section[id]")
	if sections.Length() == 0 {
		return e.wholePageEntry(doc, title, relPath, kind, priority), nil
	}

	var entries []Entry
	sections.Each(func(_ int, section *goquery.Selection) {
		id := section.AttrOr("id", "")
		if id == "" {
			return
		}

		sectionTitle := CollapseWhitespace(section.Find("h1, h2, h3, h4, h5, h6").First().Text())
		if sectionTitle == "" {
			sectionTitle = HumanizeStem(id)
		}

		clean := CollapseWhitespace(section.Text())
		if len(clean) < minContentLen {
			return
		}

		entries = append(entries, Entry{
			Title:    title + " - " + sectionTitle,
			Content:  clean,
			URL:      baseURL + "#" + id,
			Type:     kind + "_section",
			Priority: priority,
		})

		section.Find("h2, h3, h4").Each(func(_ int, heading *goquery.Selection) {
			headingText := CollapseWhitespace(heading.Text())
			if headingText == "" {
				return
			}

			body := CollapseWhitespace(heading.NextUntil("h2, h3, h4").Text())
			if len(body) < minContentLen {
				return
			}

			entries = append(entries, Entry{
				Title:    title + " - " + sectionTitle + " - " + headingText,
				Content:  body,
				URL:      baseURL + "#" + id + "-" + GenerateAnchor(headingText),
				Type:     kind + "_subsection",
				Priority: priority,
			})
		})

		// Sections populated from markdown at render time pull that
		// markdown through the regular extractor.
		if companion, ok := companionFiles[id]; ok {
			companionRel := path.Join(path.Dir(relPath), companion)
			if _, err := os.Stat(filepath.Join(e.Root, filepath.FromSlash(companionRel))); err == nil {
				more, err := e.MarkdownFile(companionRel)
				if err != nil {
					e.warnf("processing companion %s: %v", companionRel, err)
				} else {
					entries = append(entries, more...)
				}
			}
		}
	})

	return entries, nil
}

// wholePageEntry indexes a page without target sections as one entry.
func (e *Extractor) wholePageEntry(doc *goquery.Document, title, relPath, kind string, priority int) []Entry {
	main := mainContent(doc)
	if main.Length() == 0 {
		e.warnf("could not find main content in %s", relPath)
		return nil
	}

	clean := CollapseWhitespace(main.Text())
	if len(clean) < minContentLen {
		return nil
	}

	return []Entry{{
		Title:    title,
		Content:  clean,
		URL:      e.fileURL(relPath, ""),
		Type:     kind + "_content",
		Priority: priority,
	}}
}
