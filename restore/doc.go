// Package restore rebuilds a directory tree from a bundle document.
//
// The engine consumes the document line by line as a single-pass state
// machine with two states: seeking a header, or inside a fenced block. Each
// recognized header is paired with the fenced block that follows it, and the
// resulting file record is handed to a Sink. The engine never looks ahead
// and never backtracks, so arbitrarily large documents stream in constant
// memory per file.
//
// Malformed input is recovered locally: a fenced block with no preceding
// header is discarded, a header with no block is overwritten by the next
// header, and a document truncated mid-block still yields the content
// accumulated so far. Only a missing input document is fatal.
package restore
