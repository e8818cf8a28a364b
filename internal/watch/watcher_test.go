package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	serr "reseq/internal/errors"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDebounce = 50 * time.Millisecond

func startWatcher(t *testing.T, dir string) *Watcher {
	t.Helper()
	w, err := New(testDebounce)
	require.NoError(t, err, "New watcher creation failed")
	require.NoError(t, w.Watch(dir), "Failed to watch directory")
	require.NoError(t, w.Start(), "Failed to start watcher")
	t.Cleanup(w.Stop)

	// Allow a brief moment for fsnotify to initialize watches
	time.Sleep(50 * time.Millisecond)
	return w
}

func waitEvent(t *testing.T, w *Watcher) Event {
	t.Helper()
	select {
	case ev, ok := <-w.Events():
		require.True(t, ok, "Event channel closed unexpectedly")
		return ev
	case <-time.After(3 * time.Second):
		t.Fatal("Timeout waiting for folder event")
	}
	return Event{}
}

func assertQuiet(t *testing.T, w *Watcher, d time.Duration) {
	t.Helper()
	select {
	case ev := <-w.Events():
		t.Fatalf("unexpected event: %+v", ev)
	case <-time.After(d):
	}
}

func TestWatcherDebouncesBurst(t *testing.T) {
	dir := t.TempDir()
	w := startWatcher(t, dir)

	for _, name := range []string{"a.txt", "b.txt", "c.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0644))
	}

	ev := waitEvent(t, w)
	assert.Equal(t, filepath.Clean(dir), ev.Dir)
	assert.True(t, ev.Ops.Has(fsnotify.Create))
	assert.GreaterOrEqual(t, ev.Count, 3)
	assert.False(t, ev.At.IsZero())

	assertQuiet(t, w, 4*testDebounce)
}

func TestWatcherRenameAndRemove(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, nil, 0644))
	w := startWatcher(t, dir)

	require.NoError(t, os.Rename(path, filepath.Join(dir, "Episode 01.txt")))
	ev := waitEvent(t, w)
	assert.True(t, ev.Ops.Has(fsnotify.Rename) || ev.Ops.Has(fsnotify.Create))

	require.NoError(t, os.Remove(filepath.Join(dir, "Episode 01.txt")))
	ev = waitEvent(t, w)
	assert.True(t, ev.Ops.Has(fsnotify.Remove))
}

func TestWatcherSwitchesFolder(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	w := startWatcher(t, first)

	require.NoError(t, w.Watch(second))
	assert.Equal(t, filepath.Clean(second), w.Dir())

	require.NoError(t, os.WriteFile(filepath.Join(first, "ignored.txt"), nil, 0644))
	assertQuiet(t, w, 4*testDebounce)

	require.NoError(t, os.WriteFile(filepath.Join(second, "seen.txt"), nil, 0644))
	ev := waitEvent(t, w)
	assert.Equal(t, filepath.Clean(second), ev.Dir)
}

func TestWatcherErrors(t *testing.T) {
	w, err := New(0)
	require.NoError(t, err)
	defer w.Stop()
	assert.Equal(t, DefaultDebounce, w.debounce)

	err = w.Watch(filepath.Join(t.TempDir(), "missing"))
	assert.True(t, serr.IsFileNotFound(err))

	file := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(file, nil, 0644))
	err = w.Watch(file)
	assert.Equal(t, serr.InvalidPath, serr.KindOf(err))

	require.NoError(t, w.Start())
	assert.Error(t, w.Start(), "second start")
}

func TestWatcherStop(t *testing.T) {
	w, err := New(testDebounce)
	require.NoError(t, err)
	require.NoError(t, w.Watch(t.TempDir()))
	require.NoError(t, w.Start())

	w.Stop()

	_, ok := <-w.Events()
	assert.False(t, ok, "events channel should be closed")

	w.Stop()
	assert.Error(t, w.Start())
	assert.Error(t, w.Watch(t.TempDir()))
}
