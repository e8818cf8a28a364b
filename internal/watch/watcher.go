// Package watch reports when the contents of the session folder change.
package watch

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	serr "reseq/internal/errors"
	"reseq/internal/log"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period used when none is given
const DefaultDebounce = 250 * time.Millisecond

const relevantOps = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename

// Event says the watched folder changed. A burst of file events yields
// one Event once the folder has been quiet for the debounce period.
type Event struct {
	Dir   string
	At    time.Time
	Ops   fsnotify.Op
	Count int
}

// Watcher monitors a single folder using fsnotify
type Watcher struct {
	debounce time.Duration

	// Folder being watched, "" when none
	dir string

	// Debounced folder events
	events chan Event

	// Channel to signal stop
	stopChan chan struct{}
	done     chan struct{}

	// fsnotify watcher instance
	fsWatcher *fsnotify.Watcher

	mutex   sync.RWMutex
	running bool
	closed  bool
}

// New creates a watcher. A debounce of zero or less uses DefaultDebounce.
func New(debounce time.Duration) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, serr.Wrap(err, "failed to create fsnotify watcher")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &Watcher{
		debounce:  debounce,
		events:    make(chan Event, 1),
		fsWatcher: fsWatcher,
	}, nil
}

// Watch switches the watcher to dir, dropping the previous folder.
// An empty dir stops watching any folder.
func (w *Watcher) Watch(dir string) error {
	if dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return serr.NewFileError("error accessing directory", dir, serr.FileNotFound, err)
		}
		if !info.IsDir() {
			return serr.NewFileError("path is not a directory", dir, serr.InvalidPath, nil)
		}
		dir = filepath.Clean(dir)
	}

	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.closed {
		return serr.New("watcher stopped")
	}
	if dir == w.dir {
		return nil
	}
	if w.dir != "" {
		if err := w.fsWatcher.Remove(w.dir); err != nil {
			log.LogWithFields(log.F("directory", w.dir), log.F("error", err)).Debug("remove watch failed")
		}
	}
	w.dir = ""
	if dir == "" {
		return nil
	}
	if err := w.fsWatcher.Add(dir); err != nil {
		return serr.NewFileError("failed to watch directory", dir, serr.FileOperationFailed, err)
	}
	w.dir = dir

	log.LogWithFields(log.F("directory", dir)).Info("Watching directory")
	return nil
}

// Dir returns the folder being watched
func (w *Watcher) Dir() string {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.dir
}

// Events returns the channel of debounced folder events.
// It is closed by Stop.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Start begins the event loop
func (w *Watcher) Start() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.closed {
		return serr.New("watcher stopped")
	}
	if w.running {
		return serr.New("watcher already running")
	}
	w.running = true
	w.stopChan = make(chan struct{})
	w.done = make(chan struct{})

	go w.loop(w.stopChan, w.done)
	return nil
}

func (w *Watcher) loop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending Event
	)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op&relevantOps == 0 {
				continue
			}
			dir := w.Dir()
			if dir == "" || filepath.Dir(event.Name) != dir {
				continue
			}

			if pending.Dir != dir {
				pending = Event{Dir: dir}
			}
			pending.Ops |= event.Op
			pending.Count++

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			if pending.Dir != w.Dir() {
				pending = Event{}
				continue
			}
			pending.At = time.Now()
			select {
			case w.events <- pending:
			default:
				// An undelivered event already tells the reader to rescan.
			}
			log.LogWithFields(log.F("directory", pending.Dir), log.F("changes", pending.Count)).Debug("folder changed")
			pending = Event{}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.LogWithFields(log.F("error", err)).Error("fsnotify watcher error")

		case <-stop:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// Stop halts the watcher and closes the events channel.
// A stopped watcher cannot be restarted.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	if w.closed {
		w.mutex.Unlock()
		return
	}
	w.closed = true
	running := w.running
	w.running = false
	if running {
		close(w.stopChan)
	}
	done := w.done
	w.mutex.Unlock()

	if running {
		<-done
	}
	if err := w.fsWatcher.Close(); err != nil {
		log.LogWithFields(log.F("error", err)).Error("Error closing fsnotify watcher")
	}
	close(w.events)
}
