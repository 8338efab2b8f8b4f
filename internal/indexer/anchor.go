package indexer

import (
	"regexp"
	"strings"
)

var (
	anchorDatePrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}\s+`)
	anchorWikiLink   = regexp.MustCompile(`\[\[(.*?)\]\]`)
	anchorFormatting = regexp.MustCompile("[*_`]")
	anchorDisallowed = regexp.MustCompile(`[^\w\s-]`)
	anchorSpaces     = regexp.MustCompile(`\s+`)
)

// GenerateAnchor converts heading text into the fragment identifier
// Jekyll assigns to that heading, so emitted URLs land on the right
// element in the published page.
func GenerateAnchor(text string) string {
	text = anchorDatePrefix.ReplaceAllString(text, "")
	text = anchorWikiLink.ReplaceAllString(text, "$1")
	text = anchorFormatting.ReplaceAllString(text, "")
	text = anchorDisallowed.ReplaceAllString(text, "")
	text = strings.ToLower(text)
	return anchorSpaces.ReplaceAllString(text, "-")
}
