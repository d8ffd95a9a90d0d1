package bundle

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srcmd/srcmd/restore"
)

// writeTree creates files under root from a map of relative path to content.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		target := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(target), 0o755))
		require.NoError(t, os.WriteFile(target, []byte(content), 0o644))
	}
}

func TestSerialize(t *testing.T) {
	t.Run("emits one record per text file", func(t *testing.T) {
		root := t.TempDir()
		writeTree(t, root, map[string]string{
			"main.go":        "package main\n",
			"docs/readme.md": "# hi\n",
		})

		var buf bytes.Buffer
		require.NoError(t, Serialize(root, &buf, Options{}))

		doc := buf.String()
		assert.Contains(t, doc, "## main.go\n")
		assert.Contains(t, doc, "```go\npackage main\n```")
		assert.Contains(t, doc, "## docs/readme.md\n")
		assert.Contains(t, doc, "```markdown\n# hi\n```")
	})

	t.Run("skips binary files", func(t *testing.T) {
		root := t.TempDir()
		writeTree(t, root, map[string]string{"keep.txt": "text\n"})
		require.NoError(t, os.WriteFile(filepath.Join(root, "blob.bin"), []byte{0x00, 0x01, 0x02}, 0o644))

		var buf bytes.Buffer
		require.NoError(t, Serialize(root, &buf, Options{}))

		assert.Contains(t, buf.String(), "## keep.txt")
		assert.NotContains(t, buf.String(), "blob.bin")
	})

	t.Run("prunes hidden and excluded directories", func(t *testing.T) {
		root := t.TempDir()
		writeTree(t, root, map[string]string{
			"src/a.py":            "a = 1\n",
			".git/config":         "noise\n",
			"node_modules/x.js":   "x\n",
			"vendor/dep/lib.go":   "package dep\n",
			"src/.cache/junk.txt": "junk\n",
		})

		var buf bytes.Buffer
		require.NoError(t, Serialize(root, &buf, Options{
			ExcludeDirs: []string{"node_modules", "vendor"},
		}))

		doc := buf.String()
		assert.Contains(t, doc, "## src/a.py")
		assert.NotContains(t, doc, ".git")
		assert.NotContains(t, doc, "node_modules")
		assert.NotContains(t, doc, "vendor")
		assert.NotContains(t, doc, "junk")
	})

	t.Run("glob patterns exclude matching paths", func(t *testing.T) {
		root := t.TempDir()
		writeTree(t, root, map[string]string{
			"src/a.py":      "a\n",
			"src/a_test.py": "t\n",
		})

		var buf bytes.Buffer
		require.NoError(t, Serialize(root, &buf, Options{
			ExcludeGlobs: []string{"**_test.py"},
		}))

		assert.Contains(t, buf.String(), "## src/a.py")
		assert.NotContains(t, buf.String(), "a_test.py")
	})

	t.Run("rejects bad glob patterns", func(t *testing.T) {
		var buf bytes.Buffer
		err := Serialize(t.TempDir(), &buf, Options{ExcludeGlobs: []string{"[unclosed"}})
		require.Error(t, err)
	})

	t.Run("excludes the output file itself", func(t *testing.T) {
		root := t.TempDir()
		writeTree(t, root, map[string]string{"a.txt": "a\n"})
		selfPath := filepath.Join(root, "bundle.md")
		require.NoError(t, os.WriteFile(selfPath, []byte("stale bundle\n"), 0o644))

		var buf bytes.Buffer
		require.NoError(t, Serialize(root, &buf, Options{SelfPath: selfPath}))

		assert.Contains(t, buf.String(), "## a.txt")
		assert.NotContains(t, buf.String(), "bundle.md")
	})

	t.Run("adds missing trailing newline", func(t *testing.T) {
		root := t.TempDir()
		writeTree(t, root, map[string]string{"no_newline.txt": "abc"})

		var buf bytes.Buffer
		require.NoError(t, Serialize(root, &buf, Options{}))

		assert.Contains(t, buf.String(), "```text\nabc\n```")
	})

	t.Run("decodes latin-1 files", func(t *testing.T) {
		root := t.TempDir()
		// "café" with a Latin-1 e-acute, invalid as UTF-8.
		require.NoError(t, os.WriteFile(filepath.Join(root, "legacy.txt"), []byte{'c', 'a', 'f', 0xE9, '\n'}, 0o644))

		var buf bytes.Buffer
		require.NoError(t, Serialize(root, &buf, Options{}))

		assert.Contains(t, buf.String(), "café\n")
	})

	t.Run("language overrides replace the built-in tag", func(t *testing.T) {
		root := t.TempDir()
		writeTree(t, root, map[string]string{"conf.cfg2": "k=v\n"})

		var buf bytes.Buffer
		require.NoError(t, Serialize(root, &buf, Options{
			Languages: map[string]string{".cfg2": "ini"},
		}))

		assert.Contains(t, buf.String(), "```ini\nk=v\n```")
	})

	t.Run("missing root fails", func(t *testing.T) {
		var buf bytes.Buffer
		err := Serialize(filepath.Join(t.TempDir(), "nope"), &buf, Options{})
		require.Error(t, err)
	})
}

func TestRoundTrip(t *testing.T) {
	files := map[string]string{
		"main.go":          "package main\n\nfunc main() {}\n",
		"src/app.py":       "import os\n\nprint('x')\n",
		"docs/notes.md":    "# Notes\n\nSome *markdown* text.\n",
		"conf/app.yaml":    "---\nkey: value\nnested:\n  - one\n  - two\n",
		"empty.txt":        "",
		"scripts/build.sh": "#!/bin/sh\nset -e\n",
	}

	src := t.TempDir()
	writeTree(t, src, files)

	var buf bytes.Buffer
	require.NoError(t, Serialize(src, &buf, Options{}))

	out := t.TempDir()
	written, err := restore.NewEngine().Restore(strings.NewReader(buf.String()), restore.NewDirSink(out))
	require.NoError(t, err)
	assert.Len(t, written, len(files))

	for rel, want := range files {
		data, err := os.ReadFile(filepath.Join(out, filepath.FromSlash(rel)))
		require.NoError(t, err, rel)
		assert.Equal(t, want, string(data), rel)
	}
}
