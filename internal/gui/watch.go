//go:build !nogui
// +build !nogui

package gui

import (
	"path/filepath"
	"time"

	"reseq/internal/log"
	"reseq/internal/watch"
)

// EnableWatch rescans the preview whenever the selected folder changes on
// disk. Manual ordering is lost on each rescan.
func (a *App) EnableWatch(debounce time.Duration) error {
	if a.watcher != nil {
		return nil
	}
	w, err := watch.New(debounce)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		w.Stop()
		return err
	}

	a.mu.Lock()
	folder := a.session.Folder()
	a.mu.Unlock()
	if folder != "" {
		if err := w.Watch(folder); err != nil {
			log.LogWithError(err).Warn("cannot watch folder")
		}
	}

	a.watcher = w
	go a.watchLoop(w.Events())
	return nil
}

func (a *App) watchLoop(events <-chan watch.Event) {
	for ev := range events {
		a.mu.Lock()
		current := a.session.Folder()
		if current != "" {
			current = filepath.Clean(current)
		}
		var err error
		if ev.Dir == current {
			err = a.session.Refresh()
		}
		a.mu.Unlock()

		if ev.Dir != current {
			continue
		}
		if err != nil {
			log.LogWithError(err).Warn("rescan after folder change failed")
			continue
		}
		log.LogWithFields(log.F("directory", ev.Dir), log.F("changes", ev.Count)).Debug("preview rescanned")
		a.clearSelection()
		a.refreshPreview()
	}
}
