//go:build !nogui
// +build !nogui

package gui

import (
	"reseq/pkg/types"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// previewRow shows one rename pair with a selection check
type previewRow struct {
	widget.BaseWidget

	check   *widget.Check
	oldName *widget.Label
	newName *widget.Label
}

func newPreviewRow() *previewRow {
	r := &previewRow{
		check:   widget.NewCheck("", nil),
		oldName: widget.NewLabel(""),
		newName: widget.NewLabel(""),
	}
	r.oldName.Truncation = fyne.TextTruncateEllipsis
	r.newName.Truncation = fyne.TextTruncateEllipsis
	r.ExtendBaseWidget(r)
	return r
}

// set fills the row. onToggle is attached after the check state is applied
// so that redraws do not report a toggle.
func (r *previewRow) set(pair types.RenamePair, checked bool, onToggle func(bool)) {
	r.check.OnChanged = nil
	r.check.SetChecked(checked)
	r.check.OnChanged = onToggle

	r.oldName.SetText(pair.OldName)
	r.newName.SetText(pair.NewName)
	if pair.Changes() {
		r.newName.TextStyle = fyne.TextStyle{Bold: true}
	} else {
		r.newName.TextStyle = fyne.TextStyle{}
	}
	r.newName.Refresh()
}

// CreateRenderer implements fyne.Widget
func (r *previewRow) CreateRenderer() fyne.WidgetRenderer {
	names := container.NewGridWithColumns(2, r.oldName, r.newName)
	return widget.NewSimpleRenderer(container.NewBorder(nil, nil, r.check, nil, names))
}
