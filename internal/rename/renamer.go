// Package rename executes a rename plan inside a single folder.
//
// A plan is applied in three steps: unchanged pairs are filtered out, every
// destination is checked before anything is touched, and the renames run in
// plan order. The first destination that already exists aborts the whole
// batch with no renames. An OS failure part way through stops the batch;
// renames already done are kept.
package rename

import (
	"os"
	"path/filepath"
	"strings"

	serr "reseq/internal/errors"
	"reseq/internal/log"
	"reseq/pkg/types"
)

// FS is the filesystem surface the renamer needs
type FS interface {
	Lstat(name string) (os.FileInfo, error)
	Rename(oldpath, newpath string) error
}

type osFS struct{}

func (osFS) Lstat(name string) (os.FileInfo, error) { return os.Lstat(name) }
func (osFS) Rename(oldpath, newpath string) error   { return os.Rename(oldpath, newpath) }

// OS returns the real filesystem
func OS() FS {
	return osFS{}
}

// Renamer applies rename plans
type Renamer struct {
	DryRun bool
	FS     FS
}

// New creates a renamer on the real filesystem
func New() *Renamer {
	return &Renamer{FS: OS()}
}

// NewWithFS creates a renamer on fs
func NewWithFS(fs FS) *Renamer {
	return &Renamer{FS: fs}
}

// SetDryRun toggles validation-only mode
func (r *Renamer) SetDryRun(dryRun bool) {
	r.DryRun = dryRun
}

func (r *Renamer) fs() FS {
	if r.FS == nil {
		return OS()
	}
	return r.FS
}

// Execute applies plan. The result counts renames done (or, in dry-run
// mode, renames that would be done) and pairs skipped as unchanged.
func (r *Renamer) Execute(plan types.RenamePlan) (types.RenameResult, error) {
	logger := log.LogWithFields(log.F("directory", plan.Dir), log.F("dry_run", r.DryRun))
	result := types.RenameResult{DryRun: r.DryRun}

	pairs := make([]types.RenamePair, 0, len(plan.Pairs))
	for _, p := range plan.Pairs {
		if !p.Changes() {
			result.Skipped++
			continue
		}
		pairs = append(pairs, p)
	}

	if err := r.validate(pairs); err != nil {
		logger.WithError(err).Warn("rename aborted before any change")
		return result, err
	}

	if r.DryRun {
		result.Renamed = len(pairs)
		result.Pairs = pairs
		logger.Infof("dry run: %d files would be renamed", len(pairs))
		return result, nil
	}

	fs := r.fs()
	for _, p := range pairs {
		if err := fs.Rename(p.OldPath, p.NewPath); err != nil {
			rerr := serr.NewRenameError(p.OldName, p.NewName, result.Renamed, err)
			logger.WithError(rerr).Error("rename stopped")
			return result, rerr
		}
		logger.With(log.F("from", p.OldName), log.F("to", p.NewName)).Debug("renamed")
		result.Renamed++
		result.Pairs = append(result.Pairs, p)
	}

	logger.Infof("renamed %d files", result.Renamed)
	return result, nil
}

func (r *Renamer) validate(pairs []types.RenamePair) error {
	for _, p := range pairs {
		if err := checkSameDir(p); err != nil {
			return err
		}
	}

	fs := r.fs()
	for _, p := range pairs {
		dst, err := fs.Lstat(p.NewPath)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return serr.NewFileError("cannot check rename target", p.NewName, serr.FileAccessDenied, err)
		}
		// A case-only rename on a case-insensitive filesystem sees itself.
		if src, err := fs.Lstat(p.OldPath); err == nil && os.SameFile(src, dst) {
			continue
		}
		return serr.NewConflictError(p.NewName)
	}
	return nil
}

func checkSameDir(p types.RenamePair) error {
	name := p.NewName
	if name == "" || name == "." || name == ".." || strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator) {
		return serr.NewFileError("invalid target name", name, serr.InvalidPath, nil)
	}
	if filepath.Clean(filepath.Dir(p.OldPath)) != filepath.Clean(filepath.Dir(p.NewPath)) {
		return serr.NewFileError("rename leaves its folder", p.NewPath, serr.InvalidPath, nil)
	}
	if filepath.Base(p.NewPath) != name {
		return serr.NewFileError("target path does not match name", p.NewPath, serr.InvalidPath, nil)
	}
	return nil
}
