package bundle

import (
	"bytes"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// sniffLen is how many leading bytes are inspected for the binary check.
const sniffLen = 512

// isBinary reports whether the file looks binary: a NUL byte in its first
// 512 bytes. Files that cannot be opened are treated as binary so they are
// skipped rather than mangled.
func isBinary(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return true
	}
	defer f.Close()

	buf := make([]byte, sniffLen)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return true
	}
	return bytes.IndexByte(buf[:n], 0) >= 0
}

// readText reads the file as UTF-8, falling back to a permissive Latin-1
// decode for legacy encodings. Returns false if the file cannot be read.
func readText(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	if utf8.Valid(data) {
		return string(data), true
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", false
	}
	return string(decoded), true
}
