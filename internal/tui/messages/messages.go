package messages

import (
	"reseq/internal/watch"
)

// FolderChangedMsg is sent when the watched folder changed on disk
type FolderChangedMsg struct {
	Event watch.Event
}

// WatchClosedMsg is sent once the watcher's event channel is closed
type WatchClosedMsg struct{}
