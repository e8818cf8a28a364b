package main

import (
	"io"

	"reseq/internal/config"
	"reseq/internal/log"

	"github.com/spf13/cobra"
)

var version = "dev"

// rootOptions are the persistent flags and the config they produce
type rootOptions struct {
	cfgFile string
	debug   bool
	logJSON bool
	logFile string
	watch   bool

	cfg *config.Config
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "reseq",
		Short: "Renumber the files of a folder in sequence",
		Long: `reseq renames every file in one folder to "<prefix> <counter><ext>",
in an order you choose and can adjust by hand before anything is renamed.

Run "reseq preview DIR" to see the plan, "reseq rename DIR" to apply it,
or open the same workflow in "reseq gui" or "reseq tui".`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Close()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "YAML config file (defaults apply when omitted)")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flags.BoolVar(&opts.logJSON, "log-json", false, "log JSON lines instead of text")
	flags.StringVar(&opts.logFile, "log-file", "", "append log lines to this file")
	flags.BoolVar(&opts.watch, "watch", false, "rescan the preview when the folder changes (gui and tui)")

	rootCmd.AddCommand(previewCmd(opts))
	rootCmd.AddCommand(renameCmd(opts))
	rootCmd.AddCommand(guiCmd(opts))
	rootCmd.AddCommand(tuiCmd(opts))

	return rootCmd
}

// setup configures logging and loads the config. Interactive commands log
// nowhere unless --log-file is set.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	logOpts := []log.Option{log.WithOutput(cmd.ErrOrStderr())}
	if interactive(cmd) {
		logOpts = []log.Option{log.WithOutput(io.Discard)}
	}
	if o.logJSON {
		logOpts = append(logOpts, log.WithJSON())
	}
	if o.logFile != "" {
		logOpts = append(logOpts, log.WithFile(o.logFile))
	}
	log.Configure(logOpts...)
	log.SetDebug(o.debug)

	cfg, err := loadConfig(o.cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("watch") {
		cfg.Watch.Enabled = o.watch
	}
	o.cfg = cfg
	return nil
}

func interactive(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "gui", "tui":
		return true
	}
	return false
}

// loadConfig reads the file given with --config. Without one the defaults
// apply and nothing is read from disk.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.New(), nil
	}
	cfg, err := config.LoadConfigFile(path)
	if err != nil {
		return nil, err
	}
	log.LogWithFields(log.F("path", path)).Debug("config loaded")
	return cfg, nil
}
