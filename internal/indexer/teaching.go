package indexer

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// teachingPriority ranks course details alongside mid-tier site content.
const teachingPriority = 3

var courseYearPrefix = regexp.MustCompile(`^\d{4}-`)

// teachingDetails pulls course-detail cards out of a teaching page:
// a container of heading+paragraph pairs, one entry per pair.
func (e *Extractor) teachingDetails(relPath string, front map[string]string, body string) []Entry {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil
	}
	details := doc.Find("div.course-details").First()
	if details.Length() == 0 {
		return nil
	}

	title := front["title"]
	if title == "" {
		title = strings.ReplaceAll(courseYearPrefix.ReplaceAllString(stem(relPath), ""), "-", " ")
	}

	permalink := front["permalink"]
	if permalink == "" {
		permalink = "/teaching/"
	}
	pageURL := strings.TrimRight(e.Repo.BaseURL, "/") + permalink

	var entries []Entry
	details.Find("div.course-details__item").Each(func(_ int, item *goquery.Selection) {
		heading := item.Find("h4").First()
		para := item.Find("p").First()
		if heading.Length() == 0 || para.Length() == 0 {
			return
		}

		entries = append(entries, Entry{
			Title:    title + " - " + strings.TrimSpace(heading.Text()),
			Content:  strings.TrimSpace(para.Text()),
			URL:      pageURL,
			Type:     "teaching_detail",
			Priority: teachingPriority,
		})
	})
	return entries
}
