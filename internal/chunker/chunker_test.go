package chunker

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplit_ShortContentSingleChunk(t *testing.T) {
	chunks := Split("a short paragraph", 1000, "Title")
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].Text != "a short paragraph" {
		t.Errorf("chunk text altered: %q", chunks[0].Text)
	}
	if chunks[0].Title != "" {
		t.Errorf("single chunk should carry no generated title, got %q", chunks[0].Title)
	}
}

func TestSplit_ParagraphBoundaries(t *testing.T) {
	p1 := strings.Repeat("alpha ", 20)  // ~120 chars
	p2 := strings.Repeat("beta ", 20)   // ~100 chars
	p3 := strings.Repeat("gamma ", 20)  // ~120 chars
	content := p1 + "\n\n" + p2 + "\n\n" + p3

	chunks := Split(content, 150, "Doc")
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if len(c.Text) > 150+len(" ") { // join may add a separator before flush check fires
			t.Errorf("chunk %d exceeds limit: %d chars", i, len(c.Text))
		}
		if c.Title == "" {
			t.Errorf("chunk %d missing generated title", i)
		}
	}
}

func TestSplit_OversizedParagraphFallsBackToSentences(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 20; i++ {
		b.WriteString("This sentence has a reasonable number of words in it. ")
	}
	content := strings.TrimSpace(b.String())

	chunks := Split(content, 200, "Long")
	if len(chunks) < 2 {
		t.Fatalf("expected sentence-level splitting, got %d chunks", len(chunks))
	}
	for i, c := range chunks {
		if !strings.HasSuffix(c.Text, ".") {
			t.Errorf("chunk %d does not end on a sentence boundary: %q", i, c.Text)
		}
	}
}

func TestSplit_CoversAllContent(t *testing.T) {
	paras := []string{
		strings.Repeat("one ", 30),
		strings.Repeat("two ", 30),
		strings.Repeat("three ", 30),
	}
	for i := range paras {
		paras[i] = strings.TrimSpace(paras[i])
	}
	content := strings.Join(paras, "\n\n")

	chunks := Split(content, 100, "")
	var joined []string
	for _, c := range chunks {
		joined = append(joined, c.Text)
	}
	got := strings.Join(joined, " ")
	want := strings.Join(paras, " ")
	if got != want {
		t.Errorf("chunks do not cover input\n got: %q\nwant: %q", got, want)
	}
}

func TestSplit_Deterministic(t *testing.T) {
	content := strings.Repeat("Deterministic output matters here. ", 50)
	a := Split(content, 300, "Doc")
	b := Split(content, 300, "Doc")
	if !reflect.DeepEqual(a, b) {
		t.Error("identical inputs produced different chunkings")
	}
}

func TestGenerateTitle(t *testing.T) {
	tests := []struct {
		name string
		text string
		orig string
		want string
	}{
		{
			name: "topic keyword with original title",
			text: "An introduction to bubble dynamics in viscous flows.",
			orig: "Bubbles",
			want: "Bubbles: Introduction",
		},
		{
			name: "topic keyword without original title",
			text: "The summary of our findings follows below.",
			orig: "",
			want: "Summary",
		},
		{
			name: "code indicator",
			text: "def compute_curvature(mesh):\n    return mesh.k",
			orig: "Solver",
			want: "Solver: Python Function",
		},
		{
			name: "topic and code combined",
			text: "example usage:\n\nconst x = solve();",
			orig: "API",
			want: "API: Examples - JavaScript",
		},
		{
			name: "first words fallback",
			text: "Vortex rings interact strongly when they collide head on.",
			orig: "Rings",
			want: "Rings: Vortex rings interact...",
		},
		{
			name: "short text fallback",
			text: "Two words.",
			orig: "Doc",
			want: "Doc: Context",
		},
		{
			name: "nothing to work with",
			text: "xyzzy plugh words here more",
			orig: "",
			want: "Content Section",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := generateTitle(tt.text, tt.orig); got != tt.want {
				t.Errorf("generateTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSplitSentences(t *testing.T) {
	got := splitSentences("First one. Second one! Third? not a boundary here. Fourth.")
	want := []string{"First one.", "Second one!", "Third? not a boundary here.", "Fourth."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitSentences() = %q, want %q", got, want)
	}
}
