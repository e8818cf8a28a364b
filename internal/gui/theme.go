//go:build !nogui
// +build !nogui

package gui

import (
	"image/color"
	"strings"

	"reseq/internal/config"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// accentColor is used for primary buttons and the selection highlight
var accentColor = color.NRGBA{R: 0x25, G: 0x63, B: 0xeb, A: 0xff}

// appearanceTheme pins the default theme to one variant, or follows the
// system when variant is nil
type appearanceTheme struct {
	fyne.Theme
	variant *fyne.ThemeVariant
}

// Color returns theme colors
func (t appearanceTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.variant != nil {
		variant = *t.variant
	}
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return accentColor
	case theme.ColorNameSelection:
		return color.NRGBA{R: accentColor.R, G: accentColor.G, B: accentColor.B, A: 0x40}
	}
	return t.Theme.Color(name, variant)
}

// newAppearanceTheme returns the theme for a config theme name
func newAppearanceTheme(name string) fyne.Theme {
	t := appearanceTheme{Theme: theme.DefaultTheme()}
	switch name {
	case config.ThemeLight:
		v := theme.VariantLight
		t.variant = &v
	case config.ThemeDark:
		v := theme.VariantDark
		t.variant = &v
	}
	return t
}

// appearanceLabel is the select option for a config theme name
func appearanceLabel(name string) string {
	name, err := config.ParseTheme(name)
	if err != nil {
		name = config.ThemeSystem
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

func appearanceLabels() []string {
	themes := config.ListThemes()
	labels := make([]string, len(themes))
	for i, name := range themes {
		labels[i] = appearanceLabel(name)
	}
	return labels
}
