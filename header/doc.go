// Package header recognizes file-path header lines in bundle documents.
//
// Bundle documents name each file on a line preceding its fenced block, but
// the exact shape of that line varies between producers. This package
// collapses the known shapes into one extractor with an explicit, ordered
// rule chain:
//
//  1. "File:" label, optionally behind heading or bold markers
//  2. Markdown heading: ## src/main.go
//  3. Numbered or bulleted list item with a bold path: 1. **src/main.go**
//  4. Bare bold path: **src/main.go**
//  5. Fallback: any line containing a path separator or ending in a known
//     source extension
//
// Labeled and heading forms are unambiguous and checked first; the bare
// heuristics come last to keep false positives from prose to a minimum.
// Lines inside an open fenced block must not be passed to the extractor;
// enforcing that is the caller's job.
package header
