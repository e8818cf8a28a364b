package testutils

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// CreateTestFilesWithContent creates test files with specific content
func CreateTestFilesWithContent(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644)
		require.NoError(t, err)
	}
}

// CreateTestFilesWithDefault creates a small folder of episodes out of order
func CreateTestFilesWithDefault(t *testing.T, dir string) {
	t.Helper()
	files := map[string]string{
		"b.txt":     "second",
		"a.txt":     "first",
		"clip.mp4":  "video",
		"notes.MD":  "notes",
		"photo.jpg": "image content",
	}
	CreateTestFilesWithContent(t, dir, files)
}

// CreateTestFilesInOrder creates files, each holding its own name, whose modification times
// increase in the given order, one second apart
func CreateTestFilesInOrder(t *testing.T, dir string, names ...string) {
	t.Helper()
	base := time.Now().Add(-time.Hour).Truncate(time.Second)
	for i, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(name), 0644))
		mtime := base.Add(time.Duration(i) * time.Second)
		require.NoError(t, os.Chtimes(path, mtime, mtime))
	}
}

// ListNames returns the sorted basenames of every entry in dir
func ListNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

// ReadFile returns the content of dir/name
func ReadFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	return string(data)
}

// StripANSI removes ANSI escape sequences from a string
func StripANSI(str string) string {
	var result []rune
	inEscape := false
	for _, r := range str {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				inEscape = false
			}
			continue
		}
		result = append(result, r)
	}
	return string(result)
}
