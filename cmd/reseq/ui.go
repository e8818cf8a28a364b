package main

import (
	"reseq/internal/gui"
	"reseq/internal/tui"

	"github.com/spf13/cobra"
)

// guiCmd opens the desktop window
func guiCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "gui [directory]",
		Short: "Launch the graphical user interface",
		Long:  `Open the desktop window with a live preview, multi-select and Move Up / Move Down.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) > 0 {
				dir = args[0]
			}
			return gui.Run(opts.cfg, dir)
		},
	}
}

// tuiCmd opens the terminal interface
func tuiCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui [directory]",
		Short: "Launch the terminal user interface",
		Long:  `Open the preview in the terminal. Press ? inside for the key bindings.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := targetDir(args)
			if err != nil {
				return err
			}
			return tui.Run(opts.cfg, dir)
		},
	}
}
