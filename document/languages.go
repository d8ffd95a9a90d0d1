package document

import (
	"path"
	"strings"
)

// DefaultLanguage is the fence tag used when no extension mapping exists.
const DefaultLanguage = "text"

// languages maps lowercase file extensions to fence language tags.
var languages = map[string]string{
	".c":     "c",
	".cfg":   "ini",
	".cpp":   "cpp",
	".cs":    "csharp",
	".css":   "css",
	".go":    "go",
	".h":     "cpp",
	".hpp":   "cpp",
	".html":  "html",
	".ini":   "ini",
	".java":  "java",
	".js":    "javascript",
	".json":  "json",
	".jsx":   "jsx",
	".kt":    "kotlin",
	".md":    "markdown",
	".php":   "php",
	".pl":    "perl",
	".py":    "python",
	".rb":    "ruby",
	".rs":    "rust",
	".sh":    "bash",
	".sql":   "sql",
	".swift": "swift",
	".toml":  "toml",
	".ts":    "typescript",
	".tsx":   "tsx",
	".txt":   "text",
	".xml":   "xml",
	".yaml":  "yaml",
	".yml":   "yaml",
}

// LanguageForPath returns the fence language tag for a file path based on
// its extension. Unknown extensions map to DefaultLanguage.
func LanguageForPath(p string) string {
	if lang, ok := languages[strings.ToLower(path.Ext(p))]; ok {
		return lang
	}
	return DefaultLanguage
}

// KnownExtension reports whether the path ends in an extension the bundle
// format knows a language tag for. The header fallback heuristics use this
// to accept bare file names like "main.py" as path headers.
func KnownExtension(p string) bool {
	_, ok := languages[strings.ToLower(path.Ext(p))]
	return ok
}
