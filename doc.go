// Package srcmd turns a source tree into a single Markdown bundle and back.
//
// srcmd serializes every text file under a directory into one flat document
// (a `## path` heading followed by a fenced code block per file) and restores
// such a document into a directory tree. Each subpackage can be used
// independently:
//
//   - document: the shared bundle format (records, fences, language tags)
//   - bundle: serialize a directory tree into a bundle document
//   - header: recognize file-path header lines in bundle documents
//   - restore: rebuild a directory tree from a bundle document
//   - config: .srcmd.toml / .srcmd.yaml tool configuration
//   - watch: rebuild the bundle automatically when the tree changes
//
// # Quick Start
//
// Serializing a tree:
//
//	var buf bytes.Buffer
//	err := bundle.Serialize("./myproject", &buf, bundle.Options{
//		ExcludeDirs: []string{"node_modules", "vendor"},
//	})
//
// Restoring a bundle:
//
//	engine := restore.NewEngine()
//	written, err := engine.Restore(strings.NewReader(doc), restore.NewDirSink("./out"))
//
// # Design Philosophy
//
//   - Single-pass, line-by-line streaming with no lookahead or backtracking
//   - Permissive input: the restorer accepts bundles written by hand or by
//     LLMs, not only bundles produced by the serializer
//   - Recoverable conditions (undecodable files, orphan code blocks) are
//     skipped locally and never abort a multi-file pass
package srcmd
