package indexer

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseFrontMatter splits a leading ---\n delimited YAML block off a
// markdown document. Only scalar values are kept; a malformed block is
// treated as absent and the whole document returned as body.
func ParseFrontMatter(content string) (map[string]string, string) {
	front := map[string]string{}

	if !strings.HasPrefix(content, "---\n") {
		return front, content
	}
	parts := strings.SplitN(content, "---\n", 3)
	if len(parts) < 3 {
		return front, content
	}

	var raw map[string]any
	if err := yaml.Unmarshal([]byte(parts[1]), &raw); err != nil {
		return front, content
	}
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			front[key] = v
		case int, int64, float64, bool:
			front[key] = fmt.Sprint(v)
		}
	}
	return front, parts[2]
}
