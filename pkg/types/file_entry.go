package types

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileEntry is one regular file of the folder being renumbered
type FileEntry struct {
	Path    string    `json:"path" yaml:"path"`
	Name    string    `json:"name" yaml:"name"`
	Ext     string    `json:"ext,omitempty" yaml:"ext,omitempty"`
	Size    int64     `json:"size" yaml:"size"`
	ModTime time.Time `json:"mod_time" yaml:"mod_time"`
}

// NewFileEntry builds an entry for the file at path from its stat info
func NewFileEntry(path string, info os.FileInfo) FileEntry {
	name := filepath.Base(path)
	return FileEntry{
		Path:    path,
		Name:    name,
		Ext:     SplitExt(name),
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}
}

// String returns a human-readable representation
func (f FileEntry) String() string {
	return fmt.Sprintf("%s (%d bytes)", f.Name, f.Size)
}

// SplitExt returns the extension of name including its dot. Leading dots
// are part of the stem, so ".bashrc" has no extension and "a.tar.gz" has ".gz".
func SplitExt(name string) string {
	stem := strings.TrimLeft(name, ".")
	i := strings.LastIndex(stem, ".")
	if i < 0 {
		return ""
	}
	return stem[i:]
}
