package chunker

import (
	"regexp"
	"strings"
)

// DefaultMaxLen is the chunk size used for prose content. Code blocks
// use a tighter limit chosen by the caller.
const DefaultMaxLen = 1000

// Chunk is a bounded fragment of a larger text. Title is empty when the
// text fit in a single chunk; the caller supplies the document title in
// that case.
type Chunk struct {
	Text  string
	Title string
}

var paragraphSep = regexp.MustCompile(`\n\n+`)

// Split breaks content into chunks of at most maxLen characters,
// preferring paragraph boundaries and falling back to sentence
// boundaries for oversized paragraphs. originalTitle seeds the generated
// per-chunk titles. The result depends only on the inputs.
func Split(content string, maxLen int, originalTitle string) []Chunk {
	if maxLen <= 0 {
		maxLen = DefaultMaxLen
	}
	if len(content) <= maxLen {
		return []Chunk{{Text: content}}
	}

	var chunks []Chunk
	var current []string
	currentLen := 0

	flush := func() {
		if len(current) == 0 {
			return
		}
		text := strings.TrimSpace(strings.Join(current, " "))
		chunks = append(chunks, Chunk{
			Text:  text,
			Title: generateTitle(text, originalTitle),
		})
		current = nil
		currentLen = 0
	}

	for _, para := range paragraphSep.Split(content, -1) {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}

		// A paragraph that alone exceeds the limit is accumulated
		// sentence by sentence instead.
		if len(para) > maxLen {
			for _, sentence := range splitSentences(para) {
				if currentLen+len(sentence) > maxLen && len(current) > 0 {
					flush()
				}
				current = append(current, sentence)
				currentLen += len(sentence)
			}
			continue
		}

		if currentLen+len(para) > maxLen && len(current) > 0 {
			flush()
		}
		current = append(current, para)
		currentLen += len(para)
	}

	flush()
	return chunks
}

// splitSentences splits text after `.`, `!` or `?` when followed by
// whitespace and an uppercase letter. The trailing whitespace is
// consumed by the split.
func splitSentences(text string) []string {
	var sentences []string
	start := 0

	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '.' && c != '!' && c != '?' {
			continue
		}
		j := i + 1
		for j < len(text) && (text[j] == ' ' || text[j] == '\t' || text[j] == '\n' || text[j] == '\r') {
			j++
		}
		if j == i+1 || j >= len(text) {
			continue // no whitespace run, or punctuation at the very end
		}
		if text[j] < 'A' || text[j] > 'Z' {
			continue
		}
		sentences = append(sentences, text[start:i+1])
		start = j
		i = j - 1
	}

	if start < len(text) {
		sentences = append(sentences, text[start:])
	}
	return sentences
}
