package chunker

import "strings"

// topicKeywords are section indicators checked against the lowercased
// opening of a chunk. Only the first match contributes.
var topicKeywords = []struct {
	indicator string
	label     string
}{
	{"introduction", "Introduction"},
	{"conclusion", "Conclusion"},
	{"summary", "Summary"},
	{"method", "Methods"},
	{"result", "Results"},
	{"example", "Examples"},
	{"definition", "Definitions"},
}

// codeIndicators identify the language of code-heavy chunks. Checked
// case-sensitively, in order, first match wins.
var codeIndicators = []struct {
	indicator string
	label     string
}{
	{"def ", "Python Function"},
	{"function ", "Function Definition"},
	{"class ", "Class Definition"},
	{"#include", "C/C++ Code"},
	{"int main", "C/C++ Main"},
	{"public class", "Java Code"},
	{"import ", "Import Statements"},
	{"npm", "Node.js"},
	{"const ", "JavaScript"},
	{"var ", "JavaScript"},
	{"let ", "JavaScript"},
	{"<html", "HTML"},
	{"<div", "HTML"},
	{"SELECT", "SQL Query"},
	{"FROM", "SQL Query"},
}

// generateTitle derives a search-result title for a chunk from its
// opening text, prefixed with the original document title when one is
// available.
func generateTitle(text, originalTitle string) string {
	head := text
	if len(head) > 200 {
		head = head[:200]
	}
	lowerHead := strings.ToLower(head)

	var keywords []string
	for _, tk := range topicKeywords {
		if strings.Contains(lowerHead, tk.indicator) {
			keywords = append(keywords, tk.label)
			break
		}
	}
	for _, ci := range codeIndicators {
		if strings.Contains(head, ci.indicator) {
			keywords = append(keywords, ci.label)
			break
		}
	}

	switch {
	case len(keywords) > 0 && originalTitle != "":
		return originalTitle + ": " + strings.Join(keywords, " - ")
	case len(keywords) > 0:
		return strings.Join(keywords, " - ")
	case originalTitle != "":
		firstSentence := text
		if idx := strings.Index(text, "."); idx >= 0 {
			firstSentence = text[:idx]
		}
		if len(firstSentence) > 100 {
			firstSentence = firstSentence[:100]
		}
		words := strings.Fields(strings.TrimSpace(firstSentence))
		if len(words) > 3 {
			return originalTitle + ": " + strings.Join(words[:3], " ") + "..."
		}
		return originalTitle + ": Context"
	default:
		return "Content Section"
	}
}
