// Package watch reports changes to a single file.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/grindlemire/go-stack/internal/debug"
)

// Debounce is how long File waits after the last change before calling fn.
// Editors often write a file in several steps.
var Debounce = 50 * time.Millisecond

// File calls fn each time path is written, created or renamed, until ctx is
// done. The containing directory is watched so replace-by-rename saves are
// seen. fn runs on the calling goroutine; bursts of changes within Debounce
// produce one call. File returns nil when ctx ends.
func File(ctx context.Context, path string, fn func()) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}
	debug.Log("watch: started on %s", abs)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			debug.Log("watch: stopped on %s", abs)
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			debug.Log("watch: %s", ev)
			pending = time.After(Debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watching %s: %w", path, err)

		case <-pending:
			pending = nil
			fn()
		}
	}
}
