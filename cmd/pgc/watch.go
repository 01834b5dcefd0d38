package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/syssam/pgc/internal/cli"
	"github.com/syssam/pgc/internal/logger"
)

const defaultDebounce = 200 * time.Millisecond

var watchOpts generateFlags

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate whenever the request changes",
	Long: `Generate once, then regenerate whenever the request file or the type
overrides file changes. Generation errors are logged and watching goes on.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return runWatch(ctx, watchOpts.resolve(cfg))
	},
}

func init() {
	watchOpts.register(watchCmd.Flags())
}

func runWatch(ctx context.Context, c *cli.Config) error {
	if c.Request == "" {
		return cli.ConfigError("no request file", errors.New("set --request or request in pgc.yaml"))
	}
	files := []string{c.Request}
	if c.Types != "" {
		files = append(files, c.Types)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	// Editors often replace files instead of writing them, which drops a
	// watch on the file itself. Watch the directories instead.
	watched := make(map[string]bool, len(files))
	dirs := make(map[string]bool, len(files))
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return cli.ConfigError("resolving "+f, err)
		}
		watched[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			return cli.ConfigError("watching "+dir, err)
		}
		dirs[dir] = true
	}

	debounce := c.Watch.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	l := &loop{
		events:   w.Events,
		errors:   w.Errors,
		debounce: debounce,
		match: func(name string) bool {
			abs, err := filepath.Abs(name)
			return err == nil && watched[abs]
		},
		run: func(ctx context.Context) error {
			return runGenerate(ctx, fsys, c)
		},
		log: logger.Get(),
	}
	l.log.Info("watching for changes", "files", files, "debounce", debounce)
	return l.Run(ctx)
}

// loop regenerates after a burst of matching events has been quiet for
// the debounce period.
type loop struct {
	events   <-chan fsnotify.Event
	errors   <-chan error
	debounce time.Duration
	match    func(name string) bool
	run      func(context.Context) error
	log      *slog.Logger
}

// Run generates once and then on every debounced change, until ctx is done
// or the event channels are closed.
func (l *loop) Run(ctx context.Context) error {
	l.generate(ctx)

	timer := time.NewTimer(l.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-l.events:
			if !ok {
				return nil
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
				continue
			}
			if !l.match(ev.Name) {
				continue
			}
			l.log.Debug("change detected", "file", ev.Name, "op", ev.Op.String())
			timer.Reset(l.debounce)
		case err, ok := <-l.errors:
			if !ok {
				return nil
			}
			l.log.Warn("watch error", "error", err)
		case <-timer.C:
			l.generate(ctx)
		}
	}
}

func (l *loop) generate(ctx context.Context) {
	start := time.Now()
	if err := l.run(ctx); err != nil {
		l.log.Error("generation failed", "error", err)
		return
	}
	l.log.Debug("generation finished", "duration", time.Since(start))
}
