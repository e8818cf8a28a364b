package main

import (
	"fmt"
	"strconv"
	"strings"

	"reseq/internal/config"
	serr "reseq/internal/errors"
	"reseq/internal/log"
	"reseq/internal/session"
	"reseq/pkg/types"

	"github.com/spf13/cobra"
)

// planFlags are the numbering and ordering flags shared by preview and rename
type planFlags struct {
	prefix  string
	start   int
	padding int
	order   string
	include string
	moves   []string
}

func (f *planFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.prefix, "prefix", "", "text before the counter (default from config, \"Episode\")")
	flags.IntVar(&f.start, "start", 0, "first counter value (default from config, 1)")
	flags.IntVar(&f.padding, "padding", 0, "minimum counter digits (default from config, 2)")
	flags.StringVar(&f.order, "order", "", "listing order: name, mtime or natural")
	flags.StringVar(&f.include, "include", "", "only list files whose name matches this glob")
	flags.StringArrayVar(&f.moves, "move", nil, "move rows before numbering, e.g. 3:up or 2,4-5:down (repeatable, 1-based)")
}

// apply copies every flag the user set over cfg
func (f *planFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("prefix") {
		cfg.Numbering.Prefix = f.prefix
	}
	if flags.Changed("start") {
		cfg.Numbering.Start = f.start
	}
	if flags.Changed("padding") {
		cfg.Numbering.Padding = f.padding
	}
	if flags.Changed("order") {
		mode, err := types.ParseOrderMode(f.order)
		if err != nil {
			return serr.NewConfigError("invalid flag", "order", serr.InvalidConfig, err)
		}
		cfg.Listing.Order = mode
	}
	if flags.Changed("include") {
		cfg.Listing.Include = f.include
	}
	return cfg.Validate()
}

// openSession lists dir with cfg and applies the --move specs in order.
// A move at the top or bottom edge is a no-op.
func (f *planFlags) openSession(cfg *config.Config, dir string) (*session.Session, error) {
	s := session.New(cfg)
	if err := s.SetFolder(dir); err != nil {
		return nil, err
	}

	for _, spec := range f.moves {
		rows, d, err := parseMove(spec, s.Len())
		if err != nil {
			return nil, err
		}
		if _, moved := s.Move(rows, d); !moved {
			log.LogWithFields(log.F("move", spec)).Warnf("rows already at the %s, nothing moved", edge(d))
		}
	}
	return s, nil
}

func edge(dir types.Direction) string {
	if dir == types.Up {
		return "top"
	}
	return "bottom"
}

// parseMove parses POSITIONS:up|down into zero-based rows. POSITIONS is a
// comma-separated list of 1-based positions or ranges like 2-4.
func parseMove(spec string, n int) ([]int, types.Direction, error) {
	bad := func(format string, args ...interface{}) error {
		return serr.NewConfigError("invalid move", spec, serr.InvalidInputData, fmt.Errorf(format, args...))
	}

	positions, dirText, ok := strings.Cut(spec, ":")
	if !ok {
		return nil, 0, bad("want POSITIONS:up or POSITIONS:down")
	}
	dir, err := types.ParseDirection(strings.TrimSpace(dirText))
	if err != nil {
		return nil, 0, bad("%v", err)
	}

	var rows []int
	for _, part := range strings.Split(positions, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lo, hi, isRange := strings.Cut(part, "-")
		first, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return nil, 0, bad("bad position %q", part)
		}
		last := first
		if isRange {
			if last, err = strconv.Atoi(strings.TrimSpace(hi)); err != nil {
				return nil, 0, bad("bad position %q", part)
			}
		}
		if first > last {
			first, last = last, first
		}
		if first < 1 || last > n {
			return nil, 0, bad("position %q out of range 1-%d", part, n)
		}
		for p := first; p <= last; p++ {
			rows = append(rows, p-1)
		}
	}
	if len(rows) == 0 {
		return nil, 0, bad("no positions given")
	}
	return rows, dir, nil
}
