// Package watch revalidates recipe files as they change on disk, giving
// authors immediate feedback while they edit.
package watch

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/barcart/barcart/internal/checksum"
	"github.com/barcart/barcart/internal/library"
	"github.com/barcart/barcart/internal/storage"
)

// EventCallback is called after a watcher-driven validation.
// kind is one of "created", "updated", "removed"; for "removed" the result
// carries only the path.
type EventCallback func(kind string, fr library.FileResult)

// Watch starts an fsnotify watcher on the library root and revalidates
// recipe files on change until ctx is cancelled.
//
// New directories created at runtime are added to the watch list. Editors
// that fire duplicate Write events are deduplicated by content checksum.
// Rename events schedule a short debounced rescan, since fsnotify reports
// only the old path.
func Watch(ctx context.Context, store storage.Provider, root string, logger *slog.Logger, cb EventCallback) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := addDirsRecursive(w, root); err != nil {
		return err
	}

	// Seed the checksum state so startup does not re-report files the
	// caller already validated.
	lastSeen := make(map[string]string)
	if metas, listErr := store.List(""); listErr == nil {
		for _, m := range metas {
			lastSeen[m.Path] = m.Checksum
		}
	}

	logger.Info("watcher: started", slog.String("root", root))

	var rescanTimer *time.Timer
	var rescanCh <-chan time.Time

	scheduleRescan := func() {
		if rescanTimer == nil {
			rescanTimer = time.NewTimer(200 * time.Millisecond)
			rescanCh = rescanTimer.C
		} else {
			rescanTimer.Reset(200 * time.Millisecond)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if rescanTimer != nil {
				rescanTimer.Stop()
			}
			logger.Info("watcher: stopped")
			return nil

		case <-rescanCh:
			rescan(store, lastSeen, logger, cb)

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			absPath := ev.Name

			// New directories: watch them and validate any recipes inside.
			if ev.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(absPath); statErr == nil && info.IsDir() {
					if addErr := addDirsRecursive(w, absPath); addErr != nil {
						logger.Warn("watcher: add new dir failed",
							slog.String("path", absPath),
							slog.String("error", addErr.Error()))
					}
					validateNewDir(store, root, absPath, lastSeen, logger, cb)
					continue
				}
			}

			if !storage.IsRecipeFile(absPath) {
				continue
			}

			rel, relErr := filepath.Rel(root, absPath)
			if relErr != nil {
				continue
			}

			switch {
			case ev.Op&(fsnotify.Create|fsnotify.Write) != 0:
				kind := "updated"
				if ev.Op&fsnotify.Create != 0 {
					kind = "created"
				}
				revalidate(store, rel, kind, lastSeen, logger, cb)

			case ev.Op&fsnotify.Remove != 0:
				delete(lastSeen, rel)
				logger.Debug("watcher: removed", slog.String("path", rel))
				if cb != nil {
					cb("removed", library.FileResult{Path: rel})
				}

			case ev.Op&fsnotify.Rename != 0:
				// fsnotify fires Rename on the OLD path only; the new path
				// arrives as a separate Create event if it stays inside a
				// watched dir. Drop the old entry now and rescan shortly
				// to catch stragglers.
				delete(lastSeen, rel)
				if cb != nil {
					cb("removed", library.FileResult{Path: rel})
				}
				scheduleRescan()
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}

// revalidate reads and validates one library file, skipping content the
// watcher has already seen.
func revalidate(store storage.Provider, rel, kind string, lastSeen map[string]string, logger *slog.Logger, cb EventCallback) {
	data, err := store.Read(rel)
	if err != nil {
		logger.Warn("watcher: read failed", slog.String("path", rel), slog.String("error", err.Error()))
		return
	}
	cs := checksum.Sum(data)
	if lastSeen[rel] == cs {
		return
	}
	lastSeen[rel] = cs

	fr := library.ValidateData(rel, data)
	logger.Debug("watcher: validated",
		slog.String("path", rel),
		slog.String("op", kind),
		slog.String("checksum", checksum.Short(cs)),
		slog.Bool("valid", fr.Valid()))
	if cb != nil {
		cb(kind, fr)
	}
}

// rescan reconciles the checksum state with the disk after renames: entries
// whose files vanished are dropped, new or changed files are validated.
func rescan(store storage.Provider, lastSeen map[string]string, logger *slog.Logger, cb EventCallback) {
	metas, err := store.List("")
	if err != nil {
		logger.Warn("rescan: list failed", slog.String("error", err.Error()))
		return
	}

	disk := make(map[string]string, len(metas))
	for _, m := range metas {
		disk[m.Path] = m.Checksum
	}

	for p := range lastSeen {
		if _, ok := disk[p]; !ok {
			delete(lastSeen, p)
			logger.Debug("rescan: removed stale", slog.String("path", p))
			if cb != nil {
				cb("removed", library.FileResult{Path: p})
			}
		}
	}

	for p, cs := range disk {
		if lastSeen[p] == cs {
			continue
		}
		kind := "created"
		if _, known := lastSeen[p]; known {
			kind = "updated"
		}
		revalidate(store, p, kind, lastSeen, logger, cb)
	}
}

// validateNewDir validates any recipe files found in a newly created
// directory.
func validateNewDir(store storage.Provider, root, dirPath string, lastSeen map[string]string, logger *slog.Logger, cb EventCallback) {
	_ = filepath.WalkDir(dirPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !storage.IsRecipeFile(path) {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		revalidate(store, rel, "created", lastSeen, logger, cb)
		return nil
	})
}

// addDirsRecursive adds root and all its subdirectories to the watcher.
func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}
