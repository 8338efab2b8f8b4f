package indexer

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/comphy-lab/sitesearch/internal/chunker"
)

// codeChunkMaxLen keeps code fragments tighter than prose so a single
// function fits one search result.
const codeChunkMaxLen = 500

var (
	funcDefName  = regexp.MustCompile(`def\s+(\w+)`)
	classDefName = regexp.MustCompile(`class\s+(\w+)`)
)

// codeKinds classify a code block by its opening characters, first
// match wins.
var codeKinds = []struct {
	indicator string
	label     string
}{
	{"def ", "Function Definition"},
	{"class ", "Class Definition"},
	{"#include", "C/C++ Code"},
	{"public class", "Java Code"},
}

// DocsHTMLFile extracts entries from one rendered documentation page:
// chunked prose from the main content container plus separately chunked
// code blocks with identifier-aware titles.
func (e *Extractor) DocsHTMLFile(relPath string) ([]Entry, error) {
	raw, err := os.ReadFile(filepath.Join(e.Root, filepath.FromSlash(relPath)))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", relPath, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(raw)))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", relPath, err)
	}

	title := CollapseWhitespace(doc.Find("title").First().Text())
	if title == "" {
		title = HumanizeStem(stem(relPath))
	}
	docURL := e.fileURL(relPath, "")
	priority := e.priority(relPath)

	main := mainContent(doc)
	if main.Length() == 0 {
		e.warnf("could not find main content in %s", relPath)
		return nil, nil
	}

	clean := CollapseWhitespace(main.Text())
	if len(clean) < minContentLen {
		return nil, nil
	}

	var entries []Entry

	chunks := chunker.Split(clean, chunker.DefaultMaxLen, title)
	for i, c := range chunks {
		entryTitle := c.Title
		if entryTitle == "" {
			switch {
			case len(chunks) == 1:
				entryTitle = title
			case i == 0:
				entryTitle = title + " - Overview"
			case i == len(chunks)-1:
				entryTitle = title + " - Additional Details"
			default:
				entryTitle = title + " - Continued"
			}
		}
		entries = append(entries, Entry{
			Title:    entryTitle,
			Content:  c.Text,
			URL:      docURL,
			Type:     "docs_content",
			Priority: priority,
		})
	}

	main.Find("pre, code").Each(func(_ int, block *goquery.Selection) {
		code := strings.TrimSpace(block.Text())
		if len(code) < minContentLen {
			return
		}
		codeKind := classifyCode(code)

		for _, c := range chunker.Split(code, codeChunkMaxLen, title+" - "+codeKind) {
			entryTitle := c.Title
			if entryTitle == "" {
				entryTitle = title + " - " + codeKind
			}

			head := c.Text
			if len(head) > 100 {
				head = head[:100]
			}
			if strings.Contains(head, "def ") {
				if m := funcDefName.FindStringSubmatch(head); m != nil {
					entryTitle = title + " - Function: " + m[1]
				}
			} else if strings.Contains(head, "class ") {
				if m := classDefName.FindStringSubmatch(head); m != nil {
					entryTitle = title + " - Class: " + m[1]
				}
			}

			entries = append(entries, Entry{
				Title:    entryTitle,
				Content:  c.Text,
				URL:      docURL,
				Type:     "docs_code",
				Priority: priority,
			})
		}
	})

	return entries, nil
}

// mainContent locates the primary content container, falling back from
// semantic elements to the whole body.
func mainContent(doc *goquery.Document) *goquery.Selection {
	for _, selector := range []string{"main", "article", "div.content", "div#content", "body"} {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return sel
		}
	}
	return doc.Selection.First()
}

// classifyCode names the language or construct a code block opens with.
func classifyCode(code string) string {
	head := code
	if len(head) > 100 {
		head = head[:100]
	}
	for _, ck := range codeKinds {
		if strings.Contains(head, ck.indicator) {
			return ck.label
		}
	}
	return "Code Example"
}
