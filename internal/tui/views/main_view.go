package views

import (
	"fmt"
	"strings"

	"reseq/internal/tui/common"
	"reseq/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

const maxNameWidth = 40

// RenderMainView renders the settings line and the rows [offset, offset+limit)
// of the preview. A limit of zero or less renders every row.
func RenderMainView(m common.ModelReader, st styles.Styles, offset, limit int) string {
	var sb strings.Builder

	sb.WriteString(st.Title.Render("reseq"))
	sb.WriteString(" ")
	if m.Folder() == "" {
		sb.WriteString(st.Muted.Render("(no folder selected)"))
	} else {
		sb.WriteString(m.Folder())
	}
	sb.WriteString("\n")
	sb.WriteString(RenderSettings(m, st))
	sb.WriteString("\n\n")

	rows := m.Rows()
	if m.Folder() != "" && len(rows) == 0 {
		sb.WriteString(st.Muted.Render("No files found"))
		sb.WriteString("\n")
		return sb.String()
	}
	if len(rows) == 0 {
		return sb.String()
	}

	oldW, newW := columnWidths(rows)
	sb.WriteString(st.Header.Render(fmt.Sprintf("      %s   %s", pad("Original Filename", oldW), pad("New Filename", newW))))
	sb.WriteString("\n")

	start, end := window(len(rows), offset, limit)
	for i := start; i < end; i++ {
		sb.WriteString(renderRow(m, st, i, rows[i], oldW, newW))
		sb.WriteString("\n")
	}
	if end < len(rows) || start > 0 {
		sb.WriteString(st.Muted.Render(fmt.Sprintf("  %d-%d of %d", start+1, end, len(rows))))
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderSettings renders the numbering settings on one line
func RenderSettings(m common.ModelReader, st styles.Styles) string {
	p := m.Params()
	prefix := p.Prefix
	if prefix == "" {
		prefix = "(none)"
	}
	parts := []string{
		"prefix " + st.Info.Render(prefix),
		"start " + st.Info.Render(fmt.Sprint(p.Start)),
		"digits " + st.Info.Render(fmt.Sprint(p.Padding)),
		"order " + st.Info.Render(m.Order().Label()),
	}
	if m.DryRun() {
		parts = append(parts, st.Warning.Render("dry run"))
	}
	if m.Mode() != common.Normal {
		parts = append(parts, st.Cursor.Render("-- "+m.Mode().String()+" --"))
	}
	return st.Muted.Render("│ ") + strings.Join(parts, st.Muted.Render("  │  "))
}

func renderRow(m common.ModelReader, st styles.Styles, i int, row common.Row, oldW, newW int) string {
	cursor := " "
	if i == m.Cursor() {
		cursor = st.Cursor.Render(">")
	}
	check := "[ ]"
	if m.IsSelected(i) {
		check = st.Selected.Render("[x]")
	}

	oldName := pad(truncate(row.OldName, oldW), oldW)
	newName := pad(truncate(row.NewName, newW), newW)
	if m.IsSelected(i) {
		oldName = st.Selected.Render(oldName)
	}
	if row.Changes() {
		newName = st.Changed.Render(newName)
	} else {
		newName = st.Unchanged.Render(newName)
	}

	details := fmt.Sprintf("%9s  %s", humanize.Bytes(uint64(row.Size)), humanize.Time(row.ModTime))
	return fmt.Sprintf("%s %s %s → %s  %s", cursor, check, oldName, newName, st.Muted.Render(details))
}

func columnWidths(rows []common.Row) (int, int) {
	oldW, newW := len("Original Filename"), len("New Filename")
	for _, r := range rows {
		oldW = max(oldW, lipgloss.Width(r.OldName))
		newW = max(newW, lipgloss.Width(r.NewName))
	}
	return min(oldW, maxNameWidth), min(newW, maxNameWidth)
}

// window clamps [offset, offset+limit) to n rows
func window(n, offset, limit int) (int, int) {
	if limit <= 0 || limit >= n {
		return 0, n
	}
	offset = max(0, min(offset, n-limit))
	return offset, offset + limit
}

func truncate(s string, w int) string {
	if lipgloss.Width(s) <= w {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > w {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}

func pad(s string, w int) string {
	if gap := w - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
