package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/srcmd/srcmd/config"
)

var (
	cfgFile string
	debug   bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "srcmd",
	Short: "Bundle a source tree into one Markdown document and back",
	Long: `srcmd serializes every text file under a directory into a single
Markdown document (one heading plus fenced code block per file) and
restores such a document into a directory tree.

Typical round trip:

  srcmd collect --root ./myproject -o project.md
  srcmd restore -i project.md --root ./restored`,
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .srcmd.toml or .srcmd.yaml in the current directory)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable line-by-line diagnostic output")
}

// loadConfig resolves the effective configuration: an explicit --config
// file, a discovered file in the working directory, or the defaults.
func loadConfig() (config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	wd, err := os.Getwd()
	if err != nil {
		return config.Default(), fmt.Errorf("get working directory: %w", err)
	}
	cfg, path, err := config.Discover(wd)
	if err != nil {
		return cfg, err
	}
	if path != "" && debug {
		fmt.Fprintln(os.Stderr, "Using config file:", path)
	}
	return cfg, nil
}

// tracef writes debug diagnostics to stderr when --debug is set.
func tracef(format string, args ...any) {
	if debug {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}
