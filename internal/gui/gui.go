//go:build !nogui
// +build !nogui

package gui

import (
	"fmt"
	"sort"
	"sync"

	"reseq/internal/config"
	serr "reseq/internal/errors"
	"reseq/internal/log"
	"reseq/internal/reorder"
	"reseq/internal/sequence"
	"reseq/internal/session"
	"reseq/internal/watch"
	"reseq/pkg/types"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// AppID identifies reseq to the fyne runtime
const AppID = "io.github.reseq"

// App is the GUI application
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	cfg        *config.Config

	// mu guards session, rows and selected. Widget callbacks and the
	// watcher goroutine both take it; widget refreshes happen outside it.
	mu       sync.Mutex
	session  *session.Session
	rows     []types.RenamePair
	selected map[int]bool

	watcher *watch.Watcher

	folderEntry *widget.Entry
	prefixEntry *widget.Entry
	start       *spinner
	digits      *spinner
	orderRadio  *widget.RadioGroup
	themeSelect *widget.Select
	preview     *widget.List
	selectAll   *widget.Check
	moveUpBtn   *widget.Button
	moveDownBtn *widget.Button
	renameBtn   *widget.Button
	statusLabel *widget.Label
}

// NewApp builds the main window on fyneApp. The window is not shown.
func NewApp(fyneApp fyne.App, cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.New()
	}

	a := &App{
		fyneApp:  fyneApp,
		cfg:      cfg,
		session:  session.New(cfg),
		selected: map[int]bool{},
	}

	a.mainWindow = a.fyneApp.NewWindow("reseq")
	a.applyTheme(cfg.Appearance.Theme)
	a.setupMainWindow()
	return a
}

// Run opens the GUI on dir (which may be empty) and blocks until the
// window is closed
func Run(cfg *config.Config, dir string) error {
	a := NewApp(app.NewWithID(AppID), cfg)

	if cfg != nil && cfg.Watch.Enabled {
		if err := a.EnableWatch(cfg.Debounce()); err != nil {
			log.LogWithError(err).Warn("folder watching disabled")
		}
	}
	defer a.Close()

	if dir != "" {
		a.folderEntry.SetText(dir)
		if err := a.SetFolder(dir); err != nil {
			a.ShowError("Could not open folder", err)
		}
	}

	a.mainWindow.ShowAndRun()
	return nil
}

// IsGUIAvailable returns whether the GUI is available in this build
func IsGUIAvailable() bool {
	return true
}

// GetMainWindow returns the main window for testing purposes
func (a *App) GetMainWindow() fyne.Window {
	return a.mainWindow
}

// Close stops background work
func (a *App) Close() {
	if a.watcher != nil {
		a.watcher.Stop()
		a.watcher = nil
	}
}

// SetFolder selects dir and rebuilds the preview
func (a *App) SetFolder(dir string) error {
	a.mu.Lock()
	err := a.session.SetFolder(dir)
	a.mu.Unlock()
	if err != nil {
		return err
	}

	if a.watcher != nil {
		if werr := a.watcher.Watch(dir); werr != nil {
			log.LogWithError(werr).Warn("cannot watch folder")
		}
	}
	a.clearSelection()
	a.refreshPreview()
	return nil
}

// Refresh rescans the folder, discarding manual order
func (a *App) Refresh() {
	a.mu.Lock()
	err := a.session.Refresh()
	a.mu.Unlock()
	if err != nil {
		a.ShowError("Refresh failed", err)
	}
	a.clearSelection()
	a.refreshPreview()
}

func (a *App) setOrder(mode types.OrderMode) {
	a.mu.Lock()
	err := a.session.SetOrder(mode)
	a.mu.Unlock()
	if err != nil {
		a.ShowError("Could not change order", err)
	}
	a.clearSelection()
	a.refreshPreview()
}

// syncParams pushes the numbering widgets into the session. The list
// order is kept.
func (a *App) syncParams() {
	a.mu.Lock()
	a.session.SetParams(sequence.Params{
		Prefix:  a.prefixEntry.Text,
		Start:   a.start.Value(),
		Padding: a.digits.Value(),
	})
	a.mu.Unlock()
	a.refreshPreview()
}

// Params returns the numbering settings currently applied
func (a *App) Params() sequence.Params {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session.Params()
}

// Plan returns the rename plan shown in the preview
func (a *App) Plan() types.RenamePlan {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session.Plan()
}

// Selected returns the checked rows in ascending order
func (a *App) Selected() []int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.selectedLocked()
}

func (a *App) selectedLocked() []int {
	out := make([]int, 0, len(a.selected))
	for i, ok := range a.selected {
		if ok {
			out = append(out, i)
		}
	}
	sort.Ints(out)
	return out
}

// SetSelected replaces the checked rows
func (a *App) SetSelected(rows ...int) {
	a.mu.Lock()
	a.selected = map[int]bool{}
	for _, i := range reorder.Normalize(rows, len(a.rows)) {
		a.selected[i] = true
	}
	a.mu.Unlock()
	a.refreshSelection()
}

func (a *App) toggleRow(id int, on bool) {
	a.mu.Lock()
	if id >= 0 && id < len(a.rows) {
		if on {
			a.selected[id] = true
		} else {
			delete(a.selected, id)
		}
	}
	a.mu.Unlock()
	a.refreshSelection()
}

func (a *App) clearSelection() {
	a.mu.Lock()
	a.selected = map[int]bool{}
	a.mu.Unlock()
	a.refreshSelection()
}

// Move shifts the checked rows one step. The moved block stays checked
// and is scrolled into view.
func (a *App) Move(dir types.Direction) {
	a.mu.Lock()
	span, moved := a.session.Move(a.selectedLocked(), dir)
	if moved {
		a.selected = map[int]bool{}
		for _, i := range reorder.Indices(span) {
			a.selected[i] = true
		}
	}
	a.mu.Unlock()
	if !moved {
		return
	}

	a.refreshPreview()
	focus := span.Start
	if dir == types.Down {
		focus = span.End - 1
	}
	a.preview.ScrollTo(focus)
}

// confirmRename asks before renaming the whole preview
func (a *App) confirmRename() {
	a.mu.Lock()
	folder := a.session.Folder()
	plan := a.session.Plan()
	a.mu.Unlock()

	switch {
	case folder == "":
		a.showRenameError(serr.ErrNoFolderSelected)
		return
	case plan.Len() == 0:
		a.showRenameError(serr.ErrEmptyPreview)
		return
	}

	changes := len(plan.Changes())
	msg := fmt.Sprintf("Rename %d of %d files in\n%s?", changes, plan.Len(), folder)
	dialog.ShowConfirm("Rename files", msg, func(ok bool) {
		if ok {
			a.Rename()
		}
	}, a.mainWindow)
}

// Rename executes the preview without asking and reports the outcome
func (a *App) Rename() (types.RenameResult, error) {
	a.mu.Lock()
	result, err := a.session.Rename()
	a.mu.Unlock()

	if err == nil || serr.IsRenameFailure(err) {
		a.clearSelection()
	}
	a.refreshPreview()

	if err != nil {
		a.showRenameError(err)
		return result, err
	}
	if result.DryRun {
		a.ShowInfo(fmt.Sprintf("Dry run: %d files would be renamed.", result.Renamed))
	} else {
		dialog.ShowInformation("Done", fmt.Sprintf("Renamed %d files.", result.Renamed), a.mainWindow)
	}
	return result, nil
}

func (a *App) showRenameError(err error) {
	log.LogWithError(err).Warn("rename not completed")
	switch {
	case serr.IsEmptyPreview(err):
		dialog.ShowInformation("Info", "Nothing to rename.", a.mainWindow)
	case serr.IsNameConflict(err):
		dialog.ShowError(fmt.Errorf("%v\nAborting, no files were renamed", err), a.mainWindow)
	case serr.IsRenameFailure(err):
		var rerr *serr.RenameError
		serr.As(err, &rerr)
		dialog.ShowError(serr.Wrapf(err, "%d files were renamed before the failure", rerr.Completed()), a.mainWindow)
	default:
		dialog.ShowError(err, a.mainWindow)
	}
}

// ShowError displays an error message
func (a *App) ShowError(message string, err error) {
	log.LogWithError(err).Error(message)
	dialog.ShowError(serr.Wrap(err, message), a.mainWindow)
}

// ShowInfo displays an information message
func (a *App) ShowInfo(message string) {
	log.Info(message)
	dialog.ShowInformation("Info", message, a.mainWindow)
}

// applyTheme switches between light, dark and system appearance
func (a *App) applyTheme(name string) {
	a.fyneApp.Settings().SetTheme(newAppearanceTheme(name))
}
