package indexer

import "testing"

func TestCleanMarkdown(t *testing.T) {
	src := "Some **bold** text with a [link](https://example.org) and `code`.\n\nSecond   paragraph."
	got := CleanMarkdown(src)
	want := "Some bold text with a link and code. Second paragraph."
	if got != want {
		t.Errorf("CleanMarkdown() = %q, want %q", got, want)
	}
}

func TestCleanMarkdown_InlineHTML(t *testing.T) {
	src := `Before <div class="course-details"><h4>Schedule</h4></div> after.`
	got := CleanMarkdown(src)
	if got != "Before Schedule after." {
		t.Errorf("CleanMarkdown() = %q", got)
	}
}

func TestCollapseWhitespace(t *testing.T) {
	if got := CollapseWhitespace("  a\n\tb   c  "); got != "a b c" {
		t.Errorf("CollapseWhitespace() = %q", got)
	}
}

func TestHumanizeStem(t *testing.T) {
	tests := []struct {
		stem string
		want string
	}{
		{"getting-started", "Getting started"},
		{"aboutCoMPhy", "Aboutcomphy"},
		{"index", "Index"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := HumanizeStem(tt.stem); got != tt.want {
			t.Errorf("HumanizeStem(%q) = %q, want %q", tt.stem, got, tt.want)
		}
	}
}
