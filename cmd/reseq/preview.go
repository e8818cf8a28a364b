package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	serr "reseq/internal/errors"
	"reseq/internal/session"

	"github.com/spf13/cobra"
)

// targetDir returns the folder argument, or the working directory
func targetDir(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", serr.Wrap(err, "error getting current directory")
	}
	return wd, nil
}

// previewCmd prints the rename plan without touching any file
func previewCmd(opts *rootOptions) *cobra.Command {
	var (
		pf     planFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "preview [directory]",
		Short: "Show the new name of every file",
		Long: `Show the new name of every file in the folder, in listing order,
after any --move adjustments. Nothing is renamed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := targetDir(args)
			if err != nil {
				return err
			}
			s, err := openPlanSession(cmd, opts, &pf, dir)
			if err != nil {
				return err
			}
			v := newPlanView(s.Plan(), s.Order(), s.Params())
			return writePlan(cmd.OutOrStdout(), v, format)
		},
	}

	pf.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table, yaml, json or csv")
	return cmd
}

// renameCmd applies the rename plan after confirmation
func renameCmd(opts *rootOptions) *cobra.Command {
	var (
		pf     planFlags
		yes    bool
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "rename [directory]",
		Short: "Rename the files to the previewed names",
		Long: `Print the plan, ask for confirmation and rename the files in order.

Renaming stops before any change if a new name is already taken on disk.
If a rename fails part way, the files already renamed keep their new names.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := targetDir(args)
			if err != nil {
				return err
			}
			s, err := openPlanSession(cmd, opts, &pf, dir)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("dry-run") {
				s.SetDryRun(dryRun)
			}

			out := cmd.OutOrStdout()
			plan := s.Plan()
			if plan.Len() == 0 {
				fmt.Fprintln(out, warningText("Nothing to rename."))
				return nil
			}
			if err := writePlan(out, newPlanView(plan, s.Order(), s.Params()), formatTable); err != nil {
				return err
			}

			changes := len(plan.Changes())
			if changes == 0 {
				fmt.Fprintln(out, successText(fmt.Sprintf("Nothing to rename, all %d files are already numbered.", plan.Len())))
				return nil
			}
			if !yes && !s.DryRun() {
				if !confirm(cmd, fmt.Sprintf("Rename %d files in %s?", changes, dir)) {
					fmt.Fprintln(out, warningText("Operation cancelled"))
					return nil
				}
			}

			return runRename(cmd, s)
		},
	}

	pf.register(cmd)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "rename without asking")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "check the plan without renaming anything")
	return cmd
}

func openPlanSession(cmd *cobra.Command, opts *rootOptions, pf *planFlags, dir string) (*session.Session, error) {
	if err := pf.apply(cmd, opts.cfg); err != nil {
		return nil, err
	}
	return pf.openSession(opts.cfg, dir)
}

func runRename(cmd *cobra.Command, s *session.Session) error {
	out := cmd.OutOrStdout()
	result, err := s.Rename()
	if err != nil {
		var rerr *serr.RenameError
		if serr.As(err, &rerr) {
			fmt.Fprintln(out, warningText(fmt.Sprintf("%d files were renamed before the failure.", rerr.Completed())))
		}
		return err
	}

	if result.DryRun {
		fmt.Fprintln(out, successText(fmt.Sprintf("Dry run: %d files would be renamed.", result.Renamed)))
		return nil
	}
	msg := fmt.Sprintf("Renamed %d files.", result.Renamed)
	if result.Skipped > 0 {
		msg += fmt.Sprintf(" %d already had their name.", result.Skipped)
	}
	fmt.Fprintln(out, successText(msg))
	return nil
}

// confirm asks a yes/no question on the command's input. Anything but
// y or yes is a no.
func confirm(cmd *cobra.Command, question string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", question)
	line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
