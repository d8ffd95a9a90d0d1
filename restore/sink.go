package restore

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/srcmd/srcmd/document"
)

// Sink receives reconstructed file records. Write returns the path the
// record was stored under (for reporting) and any write failure.
type Sink interface {
	Write(rec document.FileRecord) (string, error)
}

// DirSink writes records into a directory tree under Root, creating parent
// directories as needed. Existing files are overwritten unconditionally, so
// duplicate paths in a document are last-write-wins.
type DirSink struct {
	// Root is the output root directory. Record paths resolve beneath it;
	// paths that would escape the root are clamped inside it.
	Root string
}

// NewDirSink creates a sink rooted at the given directory.
func NewDirSink(root string) *DirSink {
	return &DirSink{Root: root}
}

// Write stores the record's content under the sink root.
func (s *DirSink) Write(rec document.FileRecord) (string, error) {
	rel := contain(rec.Path)
	if rel == "" {
		return "", fmt.Errorf("unusable path %q", rec.Path)
	}
	target := filepath.Join(s.Root, filepath.FromSlash(rel))
	if dir := filepath.Dir(target); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create directories: %w", err)
		}
	}
	if err := os.WriteFile(target, []byte(rec.Content()), 0o644); err != nil {
		return "", err
	}
	return target, nil
}

// contain resolves the path and strips whatever would climb out of the sink
// root: the path is cleaned first so interior ".." segments collapse to a
// leading run, which is then dropped along with any leading slashes.
func contain(p string) string {
	p = path.Clean(strings.TrimLeft(p, "/"))
	for strings.HasPrefix(p, "../") {
		p = p[3:]
	}
	if p == "" || p == "." || p == ".." {
		return ""
	}
	return p
}
