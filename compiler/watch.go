package compiler

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/syssam/vergen/compiler/gen"
)

// Watcher regenerates a package whenever its config file or schema
// snapshot changes.
type Watcher struct {
	// ConfigPath is the config file passed to LoadConfig.
	ConfigPath string
	// EnvFiles are the dotenv files passed to LoadConfig.
	EnvFiles []string
	// Options are appended to the options of every run.
	Options []gen.Option
	// Debounce is the quiet period after a change before regenerating.
	// Zero means 100ms.
	Debounce time.Duration
	// Logger receives watch events. Nil means slog.Default().
	Logger *slog.Logger
	// OnRun, if set, is called with the result of every run.
	OnRun func(error)
}

// Run generates once, then on every change, until ctx is done. Failed runs
// are logged and reported to OnRun; they do not stop the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	logger := w.Logger
	if logger == nil {
		logger = slog.Default()
	}
	debounce := w.Debounce
	if debounce <= 0 {
		debounce = 100 * time.Millisecond
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("compiler: watch: %w", err)
	}
	defer fw.Close()

	// Editors replace files on save, so the parent directories are watched
	// and events are filtered by name.
	watched := make(map[string]bool)
	dirs := make(map[string]bool)
	track := func(paths ...string) error {
		for _, p := range paths {
			if p == "" {
				continue
			}
			abs, err := filepath.Abs(p)
			if err != nil {
				return err
			}
			watched[abs] = true
			if dir := filepath.Dir(abs); !dirs[dir] {
				if err := fw.Add(dir); err != nil {
					return fmt.Errorf("compiler: watch %s: %w", dir, err)
				}
				dirs[dir] = true
			}
		}
		return nil
	}
	run := func() {
		c, err := LoadConfig(w.ConfigPath, w.EnvFiles...)
		if err == nil {
			if terr := track(c.Schema); terr != nil {
				logger.Warn("watch schema", "schema", c.Schema, "error", terr)
			}
			err = Generate(ctx, c, w.Options...)
		}
		if err != nil {
			logger.Error("generation failed", "config", w.ConfigPath, "error", err)
		}
		if w.OnRun != nil {
			w.OnRun(err)
		}
	}
	if err := track(w.ConfigPath); err != nil {
		return err
	}
	run()

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil || !watched[abs] {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("change detected", "file", ev.Name, "op", ev.Op.String())
			timer.Reset(debounce)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)
		case <-timer.C:
			run()
		}
	}
}
