// Package document defines the bundle document format shared by the
// serializer and the restorer.
//
// A bundle document is plain UTF-8 text holding one record per file. Each
// record is a heading line naming the file's root-relative path, followed by
// a fenced code block holding the file's content:
//
//	## src/main.go
//
//	```go
//	package main
//	```
//
// Records may be separated by horizontal rules or `====` lines; the restorer
// skips those. The heading format above is what the serializer emits, but the
// restorer also accepts several looser header shapes (see package header).
package document
