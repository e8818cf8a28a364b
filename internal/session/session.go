// Package session holds the state of one renumbering session: the folder,
// its ordered file list and the numbering settings.
//
// A Session is driven by a single goroutine and is not safe for concurrent
// use. Front ends serialise calls onto it.
package session

import (
	"reseq/internal/config"
	serr "reseq/internal/errors"
	"reseq/internal/listing"
	"reseq/internal/log"
	"reseq/internal/rename"
	"reseq/internal/reorder"
	"reseq/internal/sequence"
	"reseq/pkg/types"
)

// Session owns the ordered list of files that will be renumbered
type Session struct {
	folder  string
	order   types.OrderMode
	include string
	params  sequence.Params
	entries []types.FileEntry
	renamer *rename.Renamer
}

// New seeds a session from cfg. No folder is selected yet.
func New(cfg *config.Config) *Session {
	if cfg == nil {
		cfg = config.New()
	}
	r := rename.New()
	r.SetDryRun(cfg.Rename.DryRun)

	return &Session{
		order:   cfg.Listing.Order,
		include: cfg.Listing.Include,
		params: sequence.Params{
			Prefix:  cfg.Numbering.Prefix,
			Start:   cfg.Numbering.Start,
			Padding: cfg.Numbering.Padding,
		}.Normalize(),
		renamer: r,
	}
}

// SetRenamer replaces the renamer, e.g. to run against a different FS
func (s *Session) SetRenamer(r *rename.Renamer) {
	s.renamer = r
}

// SetDryRun toggles validation-only renames
func (s *Session) SetDryRun(dryRun bool) {
	s.renamer.SetDryRun(dryRun)
}

// DryRun reports whether renames only validate
func (s *Session) DryRun() bool {
	return s.renamer.DryRun
}

// Folder returns the selected folder, or "" if none
func (s *Session) Folder() string { return s.folder }

// Order returns the listing order
func (s *Session) Order() types.OrderMode { return s.order }

// Include returns the include glob
func (s *Session) Include() string { return s.include }

// Params returns the normalised numbering settings
func (s *Session) Params() sequence.Params { return s.params }

// Entries returns a copy of the current ordered list
func (s *Session) Entries() []types.FileEntry {
	out := make([]types.FileEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of listed files
func (s *Session) Len() int { return len(s.entries) }

// Plan builds the rename plan for the current order and settings
func (s *Session) Plan() types.RenamePlan {
	return sequence.BuildPlan(s.folder, s.entries, s.params)
}

// SetFolder selects dir and lists it. An empty dir clears the session.
// On error the previous folder and list are kept.
func (s *Session) SetFolder(dir string) error {
	if dir == "" {
		s.folder = ""
		s.entries = nil
		return nil
	}

	entries, err := s.list(dir, s.order, s.include)
	if err != nil {
		return err
	}
	s.folder = dir
	s.entries = entries
	log.LogWithFields(log.F("directory", dir), log.F("files", len(entries))).Info("folder selected")
	return nil
}

// SetOrder changes the listing order and rescans. Manual order is lost.
func (s *Session) SetOrder(mode types.OrderMode) error {
	if _, err := types.ParseOrderMode(string(mode)); err != nil {
		return serr.NewConfigError("invalid value", "order", serr.InvalidConfig, err)
	}
	s.order = mode
	return s.Refresh()
}

// SetInclude changes the include glob and rescans. Manual order is lost.
func (s *Session) SetInclude(pattern string) error {
	if _, err := listing.CompileInclude(pattern); err != nil {
		return err
	}
	s.include = pattern
	return s.Refresh()
}

// SetParams changes the numbering settings. The list order is kept.
func (s *Session) SetParams(p sequence.Params) {
	s.params = p.Normalize()
}

// Refresh rescans the folder. Manual order is lost.
func (s *Session) Refresh() error {
	if s.folder == "" {
		return nil
	}
	entries, err := s.list(s.folder, s.order, s.include)
	if err != nil {
		return err
	}
	s.entries = entries
	return nil
}

func (s *Session) list(dir string, order types.OrderMode, include string) ([]types.FileEntry, error) {
	return listing.List(dir, listing.Options{Order: order, Include: include})
}

// Move shifts the selected rows one step in dir. It returns where the
// block now sits and whether anything moved.
func (s *Session) Move(selected []int, dir types.Direction) (types.Span, bool) {
	entries, span, moved := reorder.Move(s.entries, selected, dir)
	if moved {
		s.entries = entries
	}
	return span, moved
}

// Rename executes the current plan.
//
// With no folder it returns ErrNoFolderSelected, and with nothing listed
// ErrEmptyPreview. After a rename, or a failure part way through, the folder
// is rescanned so the list matches the disk. A name conflict leaves the
// list as it was.
func (s *Session) Rename() (types.RenameResult, error) {
	if s.folder == "" {
		return types.RenameResult{}, serr.ErrNoFolderSelected
	}
	if len(s.entries) == 0 {
		return types.RenameResult{}, serr.ErrEmptyPreview
	}

	result, err := s.renamer.Execute(s.Plan())
	if result.DryRun {
		return result, err
	}
	if err == nil || serr.IsRenameFailure(err) {
		if rerr := s.Refresh(); rerr != nil {
			log.LogWithError(rerr).Warn("rescan after rename failed")
		}
	}
	return result, err
}
