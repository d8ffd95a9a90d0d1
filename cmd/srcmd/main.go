// Command srcmd bundles a source tree into a single Markdown document and
// restores such a document back into a tree.
package main

func main() {
	Execute()
}
