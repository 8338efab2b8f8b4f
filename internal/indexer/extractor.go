package indexer

import (
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"github.com/comphy-lab/sitesearch/internal/config"
)

// Extractor turns files from one repository checkout into index
// entries. Now anchors the recency cutoff for blog post priorities so
// a whole run sees one consistent clock.
type Extractor struct {
	Repo    config.Repository
	Root    string
	Now     time.Time
	Verbose bool
}

func (e *Extractor) debugf(format string, args ...any) {
	if e.Verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

func (e *Extractor) warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
}

// stem returns the filename without its last extension, so
// "solver.c.html" keeps the ".c".
func stem(relPath string) string {
	base := path.Base(relPath)
	return strings.TrimSuffix(base, path.Ext(base))
}

// trimExt drops the last extension from a relative path.
func trimExt(relPath string) string {
	return strings.TrimSuffix(relPath, path.Ext(relPath))
}
