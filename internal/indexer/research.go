package indexer

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// researchIndex reads the research landing page as markup and emits one
// paper entry per citation heading. Citations carry a numeric id (or
// the dedicated "thesis" id); content equals the citation text and is
// never chunked.
func (e *Extractor) researchIndex(docURL, body string) []Entry {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		e.warnf("could not parse research index: %v", err)
		return nil
	}

	var entries []Entry
	doc.Find("h3[id]").Each(func(_ int, h3 *goquery.Selection) {
		id := h3.AttrOr("id", "")
		if !isDigits(id) && id != "thesis" {
			return
		}

		citation := CollapseWhitespace(h3.Text())

		var tags []string
		h3.NextAllFiltered("tags").First().Find("span").Each(func(_ int, span *goquery.Selection) {
			tags = append(tags, span.Text())
		})

		priority := 2
		for _, tag := range tags {
			if tag == "Featured" {
				priority = 1
			}
		}

		entries = append(entries, Entry{
			Title:    citation,
			Content:  citation,
			URL:      docURL + "#" + id,
			Type:     "paper",
			Priority: priority,
			Tags:     tags,
		})
	})

	e.debugf("  Found %d paper entries in research index", len(entries))
	return entries
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
