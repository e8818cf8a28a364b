//go:build !nogui
// +build !nogui

package gui

import (
	"fmt"

	"reseq/internal/config"
	"reseq/pkg/types"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const tipText = "Tip: tick rows, then use Move Up/Down (Alt+Up/Alt+Down) to change their place."

var orderLabels = map[string]types.OrderMode{}

func init() {
	for _, m := range types.OrderModes {
		orderLabels[m.Label()] = m
	}
}

// setupMainWindow builds the widgets and lays out the window
func (a *App) setupMainWindow() {
	params := a.session.Params()

	// --- Settings ---
	a.folderEntry = widget.NewEntry()
	a.folderEntry.SetPlaceHolder("Choose a folder")
	a.folderEntry.OnSubmitted = func(dir string) {
		if err := a.SetFolder(dir); err != nil {
			a.ShowError("Could not open folder", err)
		}
	}
	browse := widget.NewButtonWithIcon("Browse", theme.FolderOpenIcon(), a.browseFolder)

	a.prefixEntry = widget.NewEntry()
	a.prefixEntry.SetText(params.Prefix)
	a.prefixEntry.OnChanged = func(string) { a.syncParams() }

	a.start = newSpinner(params.Start, 0, func(int) { a.syncParams() })
	a.digits = newSpinner(params.Padding, 1, func(int) { a.syncParams() })

	labels := make([]string, 0, len(types.OrderModes))
	for _, m := range types.OrderModes {
		labels = append(labels, m.Label())
	}
	a.orderRadio = widget.NewRadioGroup(labels, nil)
	a.orderRadio.Horizontal = true
	a.orderRadio.Required = true
	a.orderRadio.SetSelected(a.session.Order().Label())
	a.orderRadio.OnChanged = func(label string) {
		if mode, ok := orderLabels[label]; ok {
			a.setOrder(mode)
		}
	}

	a.themeSelect = widget.NewSelect(appearanceLabels(), nil)
	a.themeSelect.SetSelected(appearanceLabel(a.cfg.Appearance.Theme))
	a.themeSelect.OnChanged = func(label string) {
		if name, err := config.ParseTheme(label); err == nil {
			a.applyTheme(name)
		}
	}

	numbers := container.NewGridWithColumns(2,
		container.NewBorder(nil, nil, widget.NewLabel("Start"), nil, a.start.object()),
		container.NewBorder(nil, nil, widget.NewLabel("Digits"), nil, a.digits.object()),
	)
	settings := widget.NewForm(
		widget.NewFormItem("Folder:", container.NewBorder(nil, nil, nil, browse, a.folderEntry)),
		widget.NewFormItem("Prefix:", a.prefixEntry),
		widget.NewFormItem("Number:", numbers),
		widget.NewFormItem("Order:", container.NewHBox(
			a.orderRadio,
			layout.NewSpacer(),
			widget.NewLabel("Appearance:"),
			a.themeSelect,
		)),
	)

	// --- Preview ---
	a.selectAll = widget.NewCheck("", nil)
	a.selectAll.OnChanged = a.onSelectAll

	header := container.NewBorder(nil, nil, a.selectAll, nil, container.NewGridWithColumns(2,
		widget.NewLabelWithStyle("Original Filename", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("New Filename", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	))

	a.preview = widget.NewList(a.rowCount, a.newRow, a.updateRow)
	previewTitle := widget.NewLabelWithStyle("Preview (original → new)", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	// --- Actions ---
	a.moveUpBtn = widget.NewButtonWithIcon("Move Up", theme.MoveUpIcon(), func() { a.Move(types.Up) })
	a.moveDownBtn = widget.NewButtonWithIcon("Move Down", theme.MoveDownIcon(), func() { a.Move(types.Down) })
	refresh := widget.NewButtonWithIcon("Refresh Preview", theme.ViewRefreshIcon(), a.Refresh)
	selectNone := widget.NewButton("Select None", a.clearSelection)
	a.renameBtn = widget.NewButtonWithIcon("Rename", theme.ConfirmIcon(), a.confirmRename)
	a.renameBtn.Importance = widget.HighImportance

	actions := container.NewHBox(a.moveUpBtn, a.moveDownBtn, refresh, selectNone, layout.NewSpacer(), a.renameBtn)

	a.statusLabel = widget.NewLabel("")
	tip := widget.NewLabel(tipText)
	tip.TextStyle = fyne.TextStyle{Italic: true}

	top := container.NewVBox(settings, widget.NewSeparator(), previewTitle, header)
	bottom := container.NewVBox(actions, a.statusLabel, tip)

	a.mainWindow.SetContent(container.NewBorder(top, bottom, nil, nil, a.preview))
	a.mainWindow.Resize(fyne.NewSize(900, 640))

	a.setupShortcuts()
	a.refreshPreview()
}

func (a *App) setupShortcuts() {
	canvas := a.mainWindow.Canvas()
	canvas.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyUp, Modifier: fyne.KeyModifierAlt}, func(fyne.Shortcut) {
		a.Move(types.Up)
	})
	canvas.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyDown, Modifier: fyne.KeyModifierAlt}, func(fyne.Shortcut) {
		a.Move(types.Down)
	})
}

func (a *App) browseFolder() {
	d := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			a.ShowError("Could not open folder", err)
			return
		}
		if uri == nil {
			return
		}
		dir := uri.Path()
		a.folderEntry.SetText(dir)
		if err := a.SetFolder(dir); err != nil {
			a.ShowError("Could not open folder", err)
		}
	}, a.mainWindow)
	d.Resize(fyne.NewSize(700, 500))
	d.Show()
}

func (a *App) onSelectAll(on bool) {
	if !on {
		a.clearSelection()
		return
	}
	a.mu.Lock()
	rows := make([]int, len(a.rows))
	for i := range rows {
		rows[i] = i
	}
	a.mu.Unlock()
	a.SetSelected(rows...)
}

// refreshPreview rebuilds the rows from the session and redraws
func (a *App) refreshPreview() {
	a.mu.Lock()
	plan := a.session.Plan()
	a.rows = plan.Pairs
	for i := range a.selected {
		if i >= len(a.rows) {
			delete(a.selected, i)
		}
	}
	a.mu.Unlock()

	a.refreshSelection()
}

// refreshSelection redraws everything that depends on the checked rows
func (a *App) refreshSelection() {
	a.mu.Lock()
	total := len(a.rows)
	checked := len(a.selected)
	folder := a.session.Folder()
	changes := 0
	for _, p := range a.rows {
		if p.Changes() {
			changes++
		}
	}
	dryRun := a.session.DryRun()
	a.mu.Unlock()

	a.selectAll.OnChanged = nil
	a.selectAll.SetChecked(total > 0 && checked == total)
	a.selectAll.OnChanged = a.onSelectAll

	if checked == 0 {
		a.moveUpBtn.Disable()
		a.moveDownBtn.Disable()
	} else {
		a.moveUpBtn.Enable()
		a.moveDownBtn.Enable()
	}

	a.preview.Refresh()
	a.statusLabel.SetText(statusText(folder, total, changes, checked, dryRun))
}

func statusText(folder string, total, changes, checked int, dryRun bool) string {
	if folder == "" {
		return "No folder selected"
	}
	s := fmt.Sprintf("%d files, %d to rename", total, changes)
	if checked > 0 {
		s += fmt.Sprintf(", %d selected", checked)
	}
	if dryRun {
		s += " (dry run)"
	}
	return s
}

func (a *App) rowCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.rows)
}

func (a *App) newRow() fyne.CanvasObject {
	return newPreviewRow()
}

func (a *App) updateRow(id widget.ListItemID, obj fyne.CanvasObject) {
	row := obj.(*previewRow)

	a.mu.Lock()
	if id < 0 || id >= len(a.rows) {
		a.mu.Unlock()
		return
	}
	pair := a.rows[id]
	checked := a.selected[id]
	a.mu.Unlock()

	row.set(pair, checked, func(on bool) { a.toggleRow(id, on) })
}
