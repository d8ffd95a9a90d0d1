package bundle

import (
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"github.com/srcmd/srcmd/document"
)

// TraceFunc receives diagnostic messages when debug tracing is enabled.
type TraceFunc func(format string, args ...any)

// Options controls a Serialize run.
type Options struct {
	// ExcludeDirs lists directory names pruned from the walk wherever they
	// appear (e.g. "node_modules", "vendor"). Hidden directories (dot
	// prefix) are always pruned.
	ExcludeDirs []string

	// ExcludeGlobs holds glob patterns matched against slash-separated
	// root-relative paths; matching files and directories are skipped.
	ExcludeGlobs []string

	// SelfPath, when non-empty, names the output file so it is excluded
	// from the walk if it lives under the root being serialized.
	SelfPath string

	// Languages maps lowercase file extensions (with dot) to fence tags,
	// overriding the built-in mapping.
	Languages map[string]string

	// Trace, when non-nil, receives a diagnostic trace of skipped files.
	Trace TraceFunc
}

// Serialize walks root and writes one record per eligible text file to w,
// in directory-walk order. Unreadable and binary files are skipped without
// error; only a failed walk of the root itself or a write to w fails the run.
func Serialize(root string, w io.Writer, opts Options) error {
	root, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolve root: %w", err)
	}

	globs := make([]glob.Glob, 0, len(opts.ExcludeGlobs))
	for _, pattern := range opts.ExcludeGlobs {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return fmt.Errorf("compile exclude pattern %q: %w", pattern, err)
		}
		globs = append(globs, g)
	}

	excluded := make(map[string]bool, len(opts.ExcludeDirs))
	for _, name := range opts.ExcludeDirs {
		excluded[name] = true
	}

	selfPath := ""
	if opts.SelfPath != "" {
		if abs, err := filepath.Abs(opts.SelfPath); err == nil {
			selfPath = abs
		}
	}

	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == root {
				return fmt.Errorf("walk root: %w", err)
			}
			opts.tracef("skip %s: %v", p, err)
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil || rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") || excluded[d.Name()] || matchAny(globs, rel) {
				opts.tracef("prune %s/", rel)
				return filepath.SkipDir
			}
			return nil
		}

		if matchAny(globs, rel) {
			opts.tracef("skip %s: excluded by pattern", rel)
			return nil
		}
		if selfPath != "" && p == selfPath {
			opts.tracef("skip %s: output file", rel)
			return nil
		}
		if isBinary(p) {
			opts.tracef("skip %s: binary", rel)
			return nil
		}

		content, ok := readText(p)
		if !ok {
			opts.tracef("skip %s: undecodable", rel)
			return nil
		}

		if err := document.WriteRecord(w, rel, content, opts.language(rel)); err != nil {
			return fmt.Errorf("write record %s: %w", rel, err)
		}
		return nil
	})
}

// language returns the configured fence-tag override for the path, or ""
// to let the built-in mapping decide.
func (o Options) language(rel string) string {
	if len(o.Languages) == 0 {
		return ""
	}
	return o.Languages[strings.ToLower(filepath.Ext(rel))]
}

func (o Options) tracef(format string, args ...any) {
	if o.Trace != nil {
		o.Trace(format, args...)
	}
}

func matchAny(globs []glob.Glob, rel string) bool {
	for _, g := range globs {
		if g.Match(rel) {
			return true
		}
	}
	return false
}
