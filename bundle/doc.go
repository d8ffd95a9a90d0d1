// Package bundle serializes a directory tree into a bundle document.
//
// Serialize walks a root directory and writes every non-binary file it finds
// as a path heading plus a fenced code block, producing a document the
// restore package (or a careful human) can turn back into the same tree.
// Hidden directories, configured directory names, and glob-matched paths are
// pruned from the walk. Files that cannot be read or decoded are skipped
// silently; a Latin-1 fallback decode is attempted before giving up on
// non-UTF-8 files.
package bundle
