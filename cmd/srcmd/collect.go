package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/srcmd/srcmd/bundle"
)

var (
	collectOutput   string
	collectRoot     string
	collectExcludes []string
	collectGlobs    []string
)

// collectCmd represents the collect command.
var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Serialize a source tree into one Markdown bundle",
	Long: `Collect walks the given root directory and writes every non-binary
text file into a single Markdown document: a "## path" heading followed
by a fenced code block per file.

Hidden directories are always skipped. Additional directory names and
glob patterns can be excluded via flags or the config file.

Examples:
  # Bundle the current directory into output.md
  srcmd collect

  # Bundle a project, skipping build artifacts
  srcmd collect --root ../my_project -o all_code.md --exclude dist --exclude .git`,
	RunE: runCollect,
}

func init() {
	rootCmd.AddCommand(collectCmd)
	collectCmd.Flags().StringVarP(&collectOutput, "output", "o", "", "output bundle path (default from config, output.md)")
	collectCmd.Flags().StringVar(&collectRoot, "root", ".", "root directory to serialize")
	collectCmd.Flags().StringSliceVar(&collectExcludes, "exclude", nil, "directory names to exclude (repeatable)")
	collectCmd.Flags().StringSliceVar(&collectGlobs, "exclude-glob", nil, "glob patterns for paths to exclude (repeatable)")
}

func runCollect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	output := collectOutput
	if output == "" {
		output = cfg.Output
	}

	opts := bundle.Options{
		ExcludeDirs:  append(cfg.ExcludeDirs, collectExcludes...),
		ExcludeGlobs: append(cfg.ExcludeGlobs, collectGlobs...),
		Languages:    cfg.Languages,
		SelfPath:     output,
	}
	if debug {
		opts.Trace = tracef
	}

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	defer out.Close()

	if err := bundle.Serialize(collectRoot, out, opts); err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("flush %s: %w", output, err)
	}

	fmt.Printf("Bundled %s into %s\n", collectRoot, output)
	return nil
}
