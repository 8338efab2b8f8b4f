package indexer

// minContentLen is the noise floor: fragments shorter than this are
// discarded everywhere except paper citations, whose content is the
// citation itself.
const minContentLen = 50

// Entry is one searchable record in the output index. Type tags the
// extraction path that produced it ("blog_excerpt", "docs_code",
// "paper", ...). Lower Priority values rank first.
type Entry struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	URL      string   `json:"url"`
	Type     string   `json:"type"`
	Priority int      `json:"priority"`
	Tags     []string `json:"tags,omitempty"`
}
