// Package listing enumerates the regular files of a folder in a chosen order.
package listing

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	serr "reseq/internal/errors"
	"reseq/internal/log"
	"reseq/pkg/types"

	"github.com/gobwas/glob"
)

// Options controls which files are listed and how they are sorted
type Options struct {
	Order   types.OrderMode
	Include string // basename glob, empty matches everything
}

// CompileInclude compiles an include pattern. The empty pattern yields nil.
func CompileInclude(pattern string) (glob.Glob, error) {
	if pattern == "" || pattern == "*" {
		return nil, nil
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, serr.NewConfigError("invalid include pattern", pattern, serr.InvalidConfig, err)
	}
	return g, nil
}

// List returns the regular files directly inside dir, sorted by opts.Order.
// Symlinks are followed; directories and dangling links are skipped.
func List(dir string, opts Options) ([]types.FileEntry, error) {
	logger := log.LogWithFields(log.F("directory", dir), log.F("order", string(opts.Order)))

	include, err := CompileInclude(opts.Include)
	if err != nil {
		return nil, err
	}

	dirInfo, err := os.Stat(dir)
	if err != nil {
		return nil, statError("error accessing directory", dir, err)
	}
	if !dirInfo.IsDir() {
		return nil, serr.NewFileError("path is not a directory", dir, serr.InvalidPath, nil)
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, statError("failed to read directory", dir, err)
	}

	entries := make([]types.FileEntry, 0, len(dirEntries))
	for _, de := range dirEntries {
		if include != nil && !include.Match(de.Name()) {
			continue
		}

		path := filepath.Join(dir, de.Name())
		info, err := os.Stat(path)
		if err != nil {
			logger.With(log.F("name", de.Name())).Debugf("skipping unreadable entry: %v", err)
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}
		entries = append(entries, types.NewFileEntry(path, info))
	}

	Sort(entries, opts.Order)
	logger.Debugf("listed %d files", len(entries))
	return entries, nil
}

func statError(msg, dir string, err error) error {
	switch {
	case os.IsNotExist(err):
		return serr.NewFileError(msg, dir, serr.FileNotFound, err)
	case os.IsPermission(err):
		return serr.NewFileError(msg, dir, serr.FileAccessDenied, err)
	default:
		return serr.NewFileError(msg, dir, serr.FileOperationFailed, err)
	}
}

// Sort orders entries in place. The sort is stable.
func Sort(entries []types.FileEntry, mode types.OrderMode) {
	switch mode {
	case types.OrderModified:
		sort.SliceStable(entries, func(i, j int) bool {
			a, b := entries[i], entries[j]
			if !a.ModTime.Equal(b.ModTime) {
				return a.ModTime.Before(b.ModTime)
			}
			return nameLess(a.Name, b.Name)
		})
	case types.OrderNatural:
		sort.SliceStable(entries, func(i, j int) bool {
			a, b := entries[i].Name, entries[j].Name
			if NaturalLess(a, b) {
				return true
			}
			if NaturalLess(b, a) {
				return false
			}
			return a < b
		})
	default:
		sort.SliceStable(entries, func(i, j int) bool {
			return nameLess(entries[i].Name, entries[j].Name)
		})
	}
}

func nameLess(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la != lb {
		return la < lb
	}
	return a < b
}

// NaturalLess compares names case-insensitively with digit runs compared by
// value, so "ep2" sorts before "ep10". Equal values with more leading zeros
// sort after.
func NaturalLess(a, b string) bool {
	ai, bi, la, lb := 0, 0, len(a), len(b)
	for ai < la && bi < lb {
		ca, cb := a[ai], b[bi]
		if isDigit(ca) && isDigit(cb) {
			startA, startB := ai, bi
			for ai < la && isDigit(a[ai]) {
				ai++
			}
			for bi < lb && isDigit(b[bi]) {
				bi++
			}

			numA := strings.TrimLeft(a[startA:ai], "0")
			numB := strings.TrimLeft(b[startB:bi], "0")
			if len(numA) != len(numB) {
				return len(numA) < len(numB)
			}
			if numA != numB {
				return numA < numB
			}
			if ai-startA != bi-startB {
				return ai-startA < bi-startB
			}
			continue
		}

		ca, cb = toLower(ca), toLower(cb)
		if ca != cb {
			return ca < cb
		}
		ai++
		bi++
	}
	return la-ai < lb-bi
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func toLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 'a' - 'A'
	}
	return b
}
