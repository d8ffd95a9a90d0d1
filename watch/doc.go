// Package watch rebuilds a bundle whenever the watched tree changes.
//
// The watcher registers every eligible directory under the root with
// fsnotify, debounces bursts of filesystem events, and invokes a rebuild
// callback once the tree settles. Newly created directories are picked up
// and watched as they appear.
package watch
