package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the tree must stay quiet before a rebuild.
const DefaultDebounce = 500 * time.Millisecond

// Options controls a watch run.
type Options struct {
	// ExcludeDirs lists directory names that are not watched, matching the
	// serializer's walk exclusions. Hidden directories are never watched.
	ExcludeDirs []string

	// Debounce overrides DefaultDebounce when positive.
	Debounce time.Duration

	// OnError, when non-nil, receives recoverable errors (a failed rebuild
	// or a watcher error) without stopping the watch.
	OnError func(error)
}

// Run watches root and calls rebuild after each settled burst of changes.
// One initial rebuild is performed before watching starts. Run blocks until
// ctx is cancelled or the watcher fails irrecoverably.
func Run(ctx context.Context, root string, rebuild func() error, opts Options) error {
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	excluded := make(map[string]bool, len(opts.ExcludeDirs))
	for _, name := range opts.ExcludeDirs {
		excluded[name] = true
	}

	if err := addTree(watcher, root, excluded); err != nil {
		return err
	}

	if err := rebuild(); err != nil {
		opts.reportError(fmt.Errorf("initial build: %w", err))
	}

	// The timer is armed on the first event of a burst and reset on each
	// follow-up; rebuild fires only once the tree settles.
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if !skipDir(filepath.Base(event.Name), excluded) {
						if err := addTree(watcher, event.Name, excluded); err != nil {
							opts.reportError(err)
						}
					}
				}
			}
			timer.Reset(debounce)

		case <-timer.C:
			if err := rebuild(); err != nil {
				opts.reportError(fmt.Errorf("rebuild: %w", err))
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			opts.reportError(err)
		}
	}
}

func (o Options) reportError(err error) {
	if o.OnError != nil {
		o.OnError(err)
	}
}

// addTree registers dir and every eligible subdirectory with the watcher.
func addTree(watcher *fsnotify.Watcher, dir string, excluded map[string]bool) error {
	return filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == dir {
				return fmt.Errorf("walk %s: %w", dir, err)
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if p != dir && skipDir(d.Name(), excluded) {
			return filepath.SkipDir
		}
		if err := watcher.Add(p); err != nil {
			return fmt.Errorf("watch %s: %w", p, err)
		}
		return nil
	})
}

func skipDir(name string, excluded map[string]bool) bool {
	return strings.HasPrefix(name, ".") || excluded[name]
}
