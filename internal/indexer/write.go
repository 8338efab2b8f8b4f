package indexer

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteIndex writes the final index as a single JSON array. The file is
// written once, at the end of a run.
func WriteIndex(path string, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding index: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing index to %s: %w", path, err)
	}
	return nil
}
