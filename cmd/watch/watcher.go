package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceInterval = 300 * time.Millisecond

// watchAndRegenerate watches the module-info file and calls regenerate after
// each burst of changes. The watch is placed on the parent directory because
// build systems replace the file atomically (write to temp, rename over),
// which drops a watch placed on the file itself.
func watchAndRegenerate(ctx context.Context, moduleInfoPath string, regenerate func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(moduleInfoPath)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(moduleInfoPath), err)
	}

	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !isModuleInfoChange(event, moduleInfoPath) {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceInterval, regenerate)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		}
	}
}

// isModuleInfoChange reports whether the event rewrites the watched
// module-info file.
func isModuleInfoChange(event fsnotify.Event, moduleInfoPath string) bool {
	if filepath.Clean(event.Name) != filepath.Clean(moduleInfoPath) {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
