package indexer

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// markdown renders with raw HTML passed through so inline markup in
// site sources survives into the parsed document.
var markdown = goldmark.New(
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// CollapseWhitespace folds all whitespace runs into single spaces and
// trims the ends.
func CollapseWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}

// CleanMarkdown renders a markdown fragment to HTML and extracts the
// visible text, collapsed to single spaces. Formatting syntax and
// inline HTML disappear; link and emphasis text survives.
func CleanMarkdown(src string) string {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return CollapseWhitespace(src)
	}
	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		return CollapseWhitespace(buf.String())
	}
	return CollapseWhitespace(doc.Text())
}

// HumanizeStem turns a file stem like "installation-guide" into
// "Installation guide".
func HumanizeStem(stem string) string {
	s := strings.ToLower(strings.ReplaceAll(stem, "-", " "))
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
