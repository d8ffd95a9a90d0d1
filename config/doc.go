// Package config loads srcmd tool configuration.
//
// Configuration lives in a .srcmd.toml or .srcmd.yaml file in the project
// root and covers walk exclusions, the default bundle path, and fence
// language-tag overrides. Everything has a working default; the file is
// optional. A JSON Schema for the file format is available via Schema for
// editor tooling.
package config
