package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/srcmd/srcmd/document"
	"github.com/srcmd/srcmd/restore"
)

var (
	restoreInput string
	restoreRoot  string
)

// restoreCmd represents the restore command.
var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Rebuild a directory tree from a Markdown bundle",
	Long: `Restore reads a bundle document and writes each header/code-block
pair back out as a file under the output root, creating directories as
needed. Existing files are overwritten.

The input does not have to come from srcmd collect: headings, "File:"
labels, bold paths, and bare path lines are all accepted as file headers.

Examples:
  # Restore output.md into the current directory
  srcmd restore

  # Restore a hand-edited bundle elsewhere
  srcmd restore -i all_code.md --root ../restored --debug`,
	RunE: runRestore,
}

func init() {
	rootCmd.AddCommand(restoreCmd)
	restoreCmd.Flags().StringVarP(&restoreInput, "input", "i", "", "input bundle path (default from config, output.md)")
	restoreCmd.Flags().StringVar(&restoreRoot, "root", ".", "output root directory")
}

func runRestore(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	input := restoreInput
	if input == "" {
		input = cfg.Output
	}

	in, err := restore.Open(input)
	if err != nil {
		return err
	}
	defer in.Close()

	engine := restore.NewEngine()
	if debug {
		engine.Trace = tracef
	}

	sink := &announcingSink{inner: restore.NewDirSink(restoreRoot), out: os.Stdout}
	written, err := engine.Restore(in, sink)
	if err != nil {
		return err
	}
	fmt.Printf("Restored %d files into %s\n", len(written), restoreRoot)
	return nil
}

// announcingSink prints a "Created:" line for each file as it is written,
// so long restores show progress instead of a summary at the end.
type announcingSink struct {
	inner restore.Sink
	out   io.Writer
}

func (s *announcingSink) Write(rec document.FileRecord) (string, error) {
	target, err := s.inner.Write(rec)
	if err == nil {
		fmt.Fprintln(s.out, "Created:", target)
	}
	return target, err
}
