package header

import (
	"path"
	"regexp"
	"strings"

	"github.com/srcmd/srcmd/document"
)

// Match describes a recognized header line.
type Match struct {
	// Path is the normalized, slash-separated path named by the line.
	Path string

	// Rule is the name of the rule that matched ("label", "heading",
	// "list", "bold", or "fallback").
	Rule string
}

// rule is one entry in the extractor's ordered pattern chain.
type rule struct {
	name    string
	extract func(e *Extractor, line string) (string, bool)
}

// Extractor decides whether a line names a file path.
// It applies a fixed rule chain in priority order and returns the first hit.
type Extractor struct {
	labelRegex   *regexp.Regexp
	headingRegex *regexp.Regexp
	listRegex    *regexp.Regexp
	boldRegex    *regexp.Regexp
	rules        []rule
}

// NewExtractor creates an extractor with compiled patterns.
func NewExtractor() *Extractor {
	e := &Extractor{
		labelRegex:   regexp.MustCompile(`(?i)^\s*(?:#{1,6}\s*)?\*{0,2}\s*file\s*:\s*(.+)$`),
		headingRegex: regexp.MustCompile(`^\s*#{1,6}\s+(.+)$`),
		listRegex:    regexp.MustCompile(`^\s*(?:\d+[.)]|[-*+])\s+\*\*(.+?)\*\*\s*$`),
		boldRegex:    regexp.MustCompile(`^\s*\*\*(.+?)\*\*\s*$`),
	}
	e.rules = []rule{
		{"label", (*Extractor).extractLabel},
		{"heading", (*Extractor).extractHeading},
		{"list", (*Extractor).extractList},
		{"bold", (*Extractor).extractBold},
		{"fallback", (*Extractor).extractFallback},
	}
	return e
}

// Extract returns the normalized path named by the line, if any.
func (e *Extractor) Extract(line string) (string, bool) {
	m, ok := e.Match(line)
	if !ok {
		return "", false
	}
	return m.Path, true
}

// Match is like Extract but also reports which rule recognized the line.
func (e *Extractor) Match(line string) (Match, bool) {
	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == "" {
		return Match{}, false
	}
	for _, r := range e.rules {
		if p, ok := r.extract(e, line); ok {
			if norm := Normalize(p); norm != "" {
				return Match{Path: norm, Rule: r.name}, true
			}
		}
	}
	return Match{}, false
}

// extractLabel handles "File: path" lines, optionally behind heading markers
// or bold markers ("## File: a/b.py", "**File:** a/b.py").
func (e *Extractor) extractLabel(line string) (string, bool) {
	m := e.labelRegex.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return stripMarkers(m[1]), true
}

// extractHeading handles markdown headings; the heading text is the path.
func (e *Extractor) extractHeading(line string) (string, bool) {
	m := e.headingRegex.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return stripMarkers(m[1]), true
}

// extractList handles numbered and bulleted list items wrapping the path in
// bold markers ("1. **a/b.py**", "- **a/b.py**").
func (e *Extractor) extractList(line string) (string, bool) {
	m := e.listRegex.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return stripMarkers(m[1]), true
}

// extractBold handles a bare bold-wrapped path ("**a/b.py**").
func (e *Extractor) extractBold(line string) (string, bool) {
	m := e.boldRegex.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return stripMarkers(m[1]), true
}

// extractFallback accepts any remaining line that plausibly is a path: it
// contains a path separator or ends in a known source extension.
func (e *Extractor) extractFallback(line string) (string, bool) {
	candidate := stripMarkers(line)
	if candidate == "" {
		return "", false
	}
	if strings.ContainsAny(candidate, `/\`) || document.KnownExtension(candidate) {
		return candidate, true
	}
	return "", false
}

// stripMarkers trims whitespace and surrounding bold or backtick markers
// from a path candidate. Unbalanced leftovers (e.g. the trailing "**" of a
// bold label) are trimmed too.
func stripMarkers(s string) string {
	s = strings.TrimSpace(s)
	for {
		switch {
		case strings.HasPrefix(s, "**") && strings.HasSuffix(s, "**") && len(s) > 4:
			s = strings.TrimSpace(s[2 : len(s)-2])
		case strings.HasPrefix(s, "`") && strings.HasSuffix(s, "`") && len(s) > 2:
			s = strings.TrimSpace(s[1 : len(s)-1])
		default:
			return strings.TrimSpace(strings.Trim(s, "*"))
		}
	}
}

// Normalize converts a raw path candidate into a clean, slash-separated
// relative path: backslashes become slashes, "." and ".." segments are
// resolved, and leading slashes are dropped. Returns "" if nothing usable
// remains.
func Normalize(p string) string {
	p = strings.ReplaceAll(strings.TrimSpace(p), `\`, "/")
	p = path.Clean(p)
	p = strings.TrimPrefix(p, "/")
	if p == "." || p == ".." || p == "" {
		return ""
	}
	return p
}
