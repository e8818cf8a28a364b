//go:build !nogui
// +build !nogui

package gui

import (
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// spinner is an integer entry with -/+ buttons and a lower bound
type spinner struct {
	entry     *widget.Entry
	minus     *widget.Button
	plus      *widget.Button
	value     int
	min       int
	onChanged func(int)
}

func newSpinner(value, min int, onChanged func(int)) *spinner {
	s := &spinner{min: min, onChanged: onChanged}
	if value < min {
		value = min
	}
	s.value = value

	s.entry = widget.NewEntry()
	s.entry.SetText(strconv.Itoa(value))
	s.entry.OnChanged = func(text string) {
		v, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			return
		}
		if v < s.min {
			v = s.min
		}
		if v == s.value {
			return
		}
		s.value = v
		s.notify()
	}
	s.entry.OnSubmitted = func(string) {
		s.entry.SetText(strconv.Itoa(s.value))
	}

	s.minus = widget.NewButtonWithIcon("", theme.ContentRemoveIcon(), func() { s.Set(s.value - 1) })
	s.plus = widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() { s.Set(s.value + 1) })
	return s
}

// Set clamps v to the lower bound and shows it
func (s *spinner) Set(v int) {
	if v < s.min {
		v = s.min
	}
	changed := v != s.value
	s.value = v
	s.entry.SetText(strconv.Itoa(v))
	if changed {
		s.notify()
	}
}

// Value returns the current value
func (s *spinner) Value() int {
	return s.value
}

func (s *spinner) notify() {
	if s.onChanged != nil {
		s.onChanged(s.value)
	}
}

func (s *spinner) object() fyne.CanvasObject {
	return container.NewBorder(nil, nil, s.minus, s.plus, s.entry)
}
