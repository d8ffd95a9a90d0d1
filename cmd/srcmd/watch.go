package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/srcmd/srcmd/bundle"
	"github.com/srcmd/srcmd/watch"
)

var (
	watchOutput   string
	watchRoot     string
	watchExcludes []string
)

// watchCmd represents the watch command.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild the bundle whenever the tree changes",
	Long: `Watch serializes the tree once, then keeps the bundle up to date by
rebuilding it after each settled burst of filesystem changes. Stop with
Ctrl-C.

Example:
  srcmd watch --root ./myproject -o project.md`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVarP(&watchOutput, "output", "o", "", "output bundle path (default from config, output.md)")
	watchCmd.Flags().StringVar(&watchRoot, "root", ".", "root directory to watch")
	watchCmd.Flags().StringSliceVar(&watchExcludes, "exclude", nil, "directory names to exclude (repeatable)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	output := watchOutput
	if output == "" {
		output = cfg.Output
	}
	excludes := append(cfg.ExcludeDirs, watchExcludes...)

	rebuild := func() error {
		out, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("create %s: %w", output, err)
		}
		defer out.Close()

		opts := bundle.Options{
			ExcludeDirs:  excludes,
			ExcludeGlobs: cfg.ExcludeGlobs,
			Languages:    cfg.Languages,
			SelfPath:     output,
		}
		if debug {
			opts.Trace = tracef
		}
		if err := bundle.Serialize(watchRoot, out, opts); err != nil {
			return err
		}
		fmt.Printf("Rebuilt %s\n", output)
		return out.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = watch.Run(ctx, watchRoot, rebuild, watch.Options{
		ExcludeDirs: excludes,
		OnError: func(err error) {
			fmt.Fprintln(os.Stderr, "watch:", err)
		},
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
