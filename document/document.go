package document

import (
	"fmt"
	"io"
	"strings"
)

// Fence is the delimiter bounding a block of verbatim file content.
// The opening fence may carry a language tag; the closing fence is bare.
const Fence = "```"

// HeadingMarker prefixes the path heading the serializer emits for each file.
const HeadingMarker = "## "

// FileRecord is one file's path and content as carried by a bundle document.
type FileRecord struct {
	// Path is the normalized, slash-separated path relative to the tree root.
	Path string

	// Lines holds the file content. Each line retains its original
	// terminator, so joining them reproduces the content byte for byte.
	Lines []string
}

// Content returns the record's full content as a single string.
func (r FileRecord) Content() string {
	return strings.Join(r.Lines, "")
}

// WriteRecord writes one file record to w in the serializer's output shape:
// a path heading, a blank line, and a fenced block tagged with the language
// derived from the path's extension. Content is normalized to end with
// exactly one trailing newline so the closing fence sits on its own line.
func WriteRecord(w io.Writer, path, content, lang string) error {
	if lang == "" {
		lang = LanguageForPath(path)
	}
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	_, err := fmt.Fprintf(w, "%s%s\n\n%s%s\n%s%s\n\n", HeadingMarker, path, Fence, lang, content, Fence)
	return err
}
