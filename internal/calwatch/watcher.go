// Package calwatch reloads the calibration file when it changes on
// disk, so a long-lived convert session picks up a refitted curve
// without restarting.
package calwatch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounceDelay is how long to wait after a file event before
// reloading. Editors and spreadsheet exports produce bursts of events
// for a single save.
const DefaultDebounceDelay = 100 * time.Millisecond

// Watcher monitors a single calibration file via fsnotify and invokes a
// reload callback after changes settle. A failed reload is logged and
// the previous calibration stays in effect; the watcher keeps running.
type Watcher struct {
	path          string
	reload        func() error
	log           zerolog.Logger
	debounceDelay time.Duration
}

// New creates a Watcher for path. The reload callback must be safe to
// call from the watcher goroutine.
func New(path string, reload func() error, log zerolog.Logger) *Watcher {
	return &Watcher{
		path:          path,
		reload:        reload,
		log:           log,
		debounceDelay: DefaultDebounceDelay,
	}
}

// Run watches until ctx is cancelled. The parent directory is watched
// rather than the file itself because most editors replace the file on
// save, which would drop an inode-level watch.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	base := filepath.Base(w.path)
	var debounce <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != base {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			debounce = time.After(w.debounceDelay)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn().Err(err).Msg("calibration watcher error")

		case <-debounce:
			debounce = nil
			if err := w.reload(); err != nil {
				w.log.Error().Err(err).Str("path", w.path).Msg("calibration reload failed, keeping previous curves")
				continue
			}
			w.log.Info().Str("path", w.path).Msg("calibration reloaded")
		}
	}
}
