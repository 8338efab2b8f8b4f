package indexer

import (
	"regexp"
	"sort"
	"strings"
)

type entryKey struct {
	title   string
	content string
	url     string
}

// Deduplicate drops repeated entries, keeping the first occurrence of
// each (title, content, url) triple. Order is otherwise preserved.
func Deduplicate(entries []Entry) []Entry {
	seen := make(map[entryKey]bool, len(entries))
	unique := entries[:0:0]

	for _, entry := range entries {
		key := entryKey{entry.Title, entry.Content, entry.URL}
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, entry)
	}
	return unique
}

// teamSectionAnchors maps the team page's fixed section titles to their
// published anchors.
var teamSectionAnchors = map[string]string{
	"Our Team & Collaborators - Present Team":          "#present-team",
	"Our Team & Collaborators - Active Collaborations": "#active-collaborations",
	"Our Team & Collaborators - Our Alumni":            "#our-alumni",
}

var hyphenRun = regexp.MustCompile(`-+`)

// NormalizeURLs applies the URL cleanup rules to every entry in place.
func NormalizeURLs(entries []Entry) {
	for i := range entries {
		entries[i].URL = normalizeURL(entries[i].URL, entries[i].Title)
	}
}

// normalizeURL cleans one URL. Rules apply in order and each sees the
// result of the previous one.
func normalizeURL(url, title string) string {
	// Multiple fragments collapse to the first.
	if strings.Count(url, "#") > 1 {
		base, rest, _ := strings.Cut(url, "#")
		section, _, _ := strings.Cut(rest, "#")
		url = base + "#" + section
	}

	// The about page is served inline on the landing page.
	if strings.Contains(strings.ToLower(url), "aboutcomphy") && strings.Contains(url, "comphy-lab.org") {
		url = "https://comphy-lab.org/#about"
	}

	if strings.Contains(url, "/index.html#") {
		url = strings.Replace(url, "/index.html#", "/#", 1)
	} else if strings.Contains(url, "/index#") {
		url = strings.Replace(url, "/index#", "/#", 1)
	}

	// Stale team-index fragments become per-person or per-section
	// anchors derived from the entry title.
	if strings.Contains(url, "/team/#index") {
		switch {
		case strings.Contains(title, " - "):
			_, person, _ := strings.Cut(title, " - ")
			url = strings.Replace(url, "#index", "#"+GenerateAnchor(person), 1)
		case teamSectionAnchors[title] != "":
			url = strings.Replace(url, "#index", teamSectionAnchors[title], 1)
		default:
			url = strings.Replace(url, "#index", "", 1)
		}
	}

	if strings.HasSuffix(url, ".html/") {
		url = url[:len(url)-1]
	}

	// Encoded spaces in fragments: team anchors use hyphens, anything
	// else keeps %20.
	if strings.Contains(url, "#") && (strings.Contains(url, "+") || strings.Contains(url, "%20")) {
		base, fragment, _ := strings.Cut(url, "#")
		if strings.Contains(base, "/team/") {
			fragment = strings.ReplaceAll(fragment, "+", "-")
			fragment = strings.ReplaceAll(fragment, "%20", "-")
			fragment = hyphenRun.ReplaceAllString(fragment, "-")
			fragment = strings.ToLower(fragment)
		} else {
			fragment = strings.ReplaceAll(fragment, "+", "%20")
		}
		url = base + "#" + fragment
	}

	return url
}

// SortByPriority orders entries by ascending priority, preserving the
// relative order of equal priorities.
func SortByPriority(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Priority < entries[j].Priority
	})
}
