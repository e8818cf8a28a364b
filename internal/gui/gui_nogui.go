//go:build nogui
// +build nogui

package gui

import (
	"fmt"

	"reseq/internal/config"
)

// Run is a stub implementation for builds with GUI disabled
func Run(cfg *config.Config, dir string) error {
	return fmt.Errorf("GUI not available in this build, use `reseq tui` or the preview and rename commands")
}

// IsGUIAvailable returns whether the GUI is available in this build
func IsGUIAvailable() bool {
	return false
}
