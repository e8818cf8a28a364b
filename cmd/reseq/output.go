package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"reseq/internal/config"
	serr "reseq/internal/errors"
	"reseq/internal/sequence"
	"reseq/pkg/types"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"
)

// Output formats for the plan
const (
	formatTable = "table"
	formatYAML  = "yaml"
	formatJSON  = "json"
	formatCSV   = "csv"
)

// planView is the exported shape of a rename plan
type planView struct {
	Dir     string          `json:"dir" yaml:"dir"`
	Order   types.OrderMode `json:"order" yaml:"order"`
	Params  sequence.Params `json:"numbering" yaml:"numbering"`
	Total   int             `json:"total" yaml:"total"`
	Changes int             `json:"changes" yaml:"changes"`
	Files   []fileView      `json:"files" yaml:"files"`
}

type fileView struct {
	Position int    `json:"position" yaml:"position"`
	Old      string `json:"old" yaml:"old"`
	New      string `json:"new" yaml:"new"`
	Changes  bool   `json:"changes" yaml:"changes"`
}

func newPlanView(plan types.RenamePlan, order types.OrderMode, p sequence.Params) planView {
	v := planView{
		Dir:     plan.Dir,
		Order:   order,
		Params:  p,
		Total:   plan.Len(),
		Changes: len(plan.Changes()),
		Files:   make([]fileView, 0, plan.Len()),
	}
	for i, pair := range plan.Pairs {
		v.Files = append(v.Files, fileView{
			Position: i + 1,
			Old:      pair.OldName,
			New:      pair.NewName,
			Changes:  pair.Changes(),
		})
	}
	return v
}

// writePlan prints v to w in format
func writePlan(w io.Writer, v planView, format string) error {
	switch format {
	case formatTable, "":
		return writeTable(w, v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatCSV:
		cw := csv.NewWriter(w)
		cw.Write([]string{"position", "old", "new", "changes"})
		for _, f := range v.Files {
			cw.Write([]string{strconv.Itoa(f.Position), f.Old, f.New, strconv.FormatBool(f.Changes)})
		}
		cw.Flush()
		return cw.Error()
	}
	return serr.NewConfigError("invalid flag", "format", serr.InvalidConfig,
		serr.Newf("unknown format %q (want table, yaml, json or csv)", format))
}

func writeTable(w io.Writer, v planView) error {
	st := newTextStyles(config.ThemeSystem)

	if len(v.Files) == 0 {
		_, err := fmt.Fprintln(w, st.muted.Render("No files in "+v.Dir))
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.border).
		Headers("#", "Original Filename", "New Filename").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return st.header
			}
			if col == 2 && row >= 0 && row < len(v.Files) && !v.Files[row].Changes {
				return st.cell.Inherit(st.muted)
			}
			return st.cell
		})
	for _, f := range v.Files {
		t.Row(strconv.Itoa(f.Position), f.Old, f.New)
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n", t.Render(), st.muted.Render(summary(v)))
	return err
}

func summary(v planView) string {
	return fmt.Sprintf("%d files in %s, %d to rename (order %s)", v.Total, v.Dir, v.Changes, v.Order.Label())
}

// textStyles color CLI messages
type textStyles struct {
	header  lipgloss.Style
	cell    lipgloss.Style
	border  lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	err     lipgloss.Style
}

func newTextStyles(theme string) textStyles {
	p := config.GetPalette(theme)
	return textStyles{
		header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Primary)).Padding(0, 1),
		cell:    lipgloss.NewStyle().Padding(0, 1),
		border:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.Border)),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted)),
		success: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Success)),
		warning: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Warning)),
		err:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Error)),
	}
}

func successText(s string) string { return newTextStyles(config.ThemeSystem).success.Render(s) }
func warningText(s string) string { return newTextStyles(config.ThemeSystem).warning.Render(s) }
func errorText(s string) string   { return newTextStyles(config.ThemeSystem).err.Render(s) }
