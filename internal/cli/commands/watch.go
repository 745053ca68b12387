package commands

import (
	"crypto/sha256"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/doxutil/doxdedup/internal/dedup"
)

// WatchOptions holds options for the watch command.
type WatchOptions struct {
	Debounce time.Duration
}

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	opts := &WatchOptions{}
	cmd := &cobra.Command{
		Use:   "watch <index.xml>",
		Short: "Re-deduplicate the index whenever it is regenerated",
		Long: `Deduplicate the index once, then keep watching it and re-run the
dedup every time Doxygen rewrites the file. Useful during iterative
documentation builds. Runs until interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, args[0], opts)
		},
	}
	cmd.Flags().DurationVar(&opts.Debounce, "debounce", 500*time.Millisecond, "Delay before reacting to a burst of file events")
	return cmd
}

func runWatch(cmd *cobra.Command, path string, opts *WatchOptions) error {
	cfg := GetConfig(cmd.Context())
	r := GetRenderer(cmd)

	d, err := dedup.New(dedup.Options{
		StylesheetPath: cfg.StylesheetPath(),
		Logger:         newLogger(cfg, cmd.ErrOrStderr()),
	})
	if err != nil {
		return err
	}
	defer d.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	target, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the parent directory: Doxygen replaces index.xml rather
	// than writing through it, which would drop a watch on the file
	// itself.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	// Initial pass before waiting for events.
	res, err := d.Run(ctx, path)
	if err != nil {
		return err
	}
	if err := renderResult(r, res); err != nil {
		return err
	}
	lastSum, _ := fileSum(target)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !sameFile(ev.Name, target) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = time.After(opts.Debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.Warning(fmt.Sprintf("watch error: %v", err))

		case <-pending:
			pending = nil

			// Skip events caused by our own rename. The dedup is
			// idempotent, so a missed skip only costs a no-op pass.
			if sum, err := fileSum(target); err == nil && sum == lastSum {
				continue
			}

			res, err := d.Run(ctx, path)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				// Doxygen may still be mid-write; report and keep going.
				r.Warning(fmt.Sprintf("dedup failed: %v", err))
				continue
			}
			if err := renderResult(r, res); err != nil {
				return err
			}
			lastSum, _ = fileSum(target)
		}
	}
}

// sameFile reports whether an event path refers to the watched file.
func sameFile(eventPath, target string) bool {
	abs, err := filepath.Abs(eventPath)
	if err != nil {
		return false
	}
	return abs == target
}

// fileSum hashes the file's current content, for the self-write guard.
func fileSum(path string) ([sha256.Size]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return [sha256.Size]byte{}, err
	}
	return sha256.Sum256(b), nil
}
