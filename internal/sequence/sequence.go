// Package sequence computes the numbered names for an ordered file list.
package sequence

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"reseq/pkg/types"
)

// Params are the numbering settings
type Params struct {
	Prefix  string `json:"prefix" yaml:"prefix"`
	Start   int    `json:"start" yaml:"start"`
	Padding int    `json:"padding" yaml:"padding"`
}

// Normalize trims the prefix and clamps Start to >= 0 and Padding to >= 1
func (p Params) Normalize() Params {
	p.Prefix = strings.TrimSpace(p.Prefix)
	if p.Start < 0 {
		p.Start = 0
	}
	if p.Padding < 1 {
		p.Padding = 1
	}
	return p
}

// Pad formats n with at least width digits, zero-filled on the left.
// Wider numbers are never truncated.
func Pad(n, width int) string {
	return fmt.Sprintf("%0*d", width, n)
}

// NewName returns the name for the entry at position index
func NewName(entry types.FileEntry, index int, p Params) string {
	p = p.Normalize()
	counter := Pad(p.Start+index, p.Padding)
	if p.Prefix == "" {
		return counter + entry.Ext
	}
	return p.Prefix + " " + counter + entry.Ext
}

// BuildPlan pairs each entry with its new name in list order.
// It never touches the filesystem.
func BuildPlan(dir string, entries []types.FileEntry, p Params) types.RenamePlan {
	p = p.Normalize()
	plan := types.RenamePlan{Dir: dir, Pairs: make([]types.RenamePair, len(entries))}
	for i, e := range entries {
		newName := NewName(e, i, p)
		oldPath := e.Path
		if oldPath == "" {
			oldPath = filepath.Join(dir, e.Name)
		}
		plan.Pairs[i] = types.RenamePair{
			OldPath: oldPath,
			NewPath: filepath.Join(filepath.Dir(oldPath), newName),
			OldName: e.Name,
			NewName: newName,
		}
	}
	return plan
}

// ParseCounter recovers the counter from a name produced with p and ext
func ParseCounter(name string, p Params, ext string) (int, bool) {
	p = p.Normalize()
	if !strings.HasSuffix(name, ext) {
		return 0, false
	}
	rest := strings.TrimSuffix(name, ext)
	if p.Prefix != "" {
		if !strings.HasPrefix(rest, p.Prefix+" ") {
			return 0, false
		}
		rest = strings.TrimPrefix(rest, p.Prefix+" ")
	}
	if len(rest) < p.Padding {
		return 0, false
	}
	for i := 0; i < len(rest); i++ {
		if rest[i] < '0' || rest[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}
