package views

import (
	"strings"
	"testing"
	"time"

	"reseq/internal/sequence"
	"reseq/internal/tui/common"
	"reseq/internal/tui/styles"
	"reseq/pkg/testutils"
	"reseq/pkg/types"

	"github.com/stretchr/testify/assert"
)

// Mock model for testing
type mockModel struct {
	folder   string
	rows     []common.Row
	selected map[int]bool
	cursor   int
	mode     common.Mode
	order    types.OrderMode
	params   sequence.Params
	dryRun   bool
}

func (m *mockModel) Folder() string            { return m.folder }
func (m *mockModel) Rows() []common.Row        { return m.rows }
func (m *mockModel) IsSelected(i int) bool     { return m.selected[i] }
func (m *mockModel) Cursor() int               { return m.cursor }
func (m *mockModel) Mode() common.Mode         { return m.mode }
func (m *mockModel) Order() types.OrderMode    { return m.order }
func (m *mockModel) Params() sequence.Params   { return m.params }
func (m *mockModel) DryRun() bool              { return m.dryRun }

func TestRenderMainView(t *testing.T) {
	week := time.Now().Add(-7 * 24 * time.Hour)
	params := sequence.Params{Prefix: "Episode", Start: 1, Padding: 2}

	tests := []struct {
		name     string
		model    *mockModel
		contains []string // Strings that should be present in the output
		excludes []string // Strings that should not be present in the output
	}{
		{
			name:     "no folder",
			model:    &mockModel{order: types.OrderName, params: params},
			contains: []string{"(no folder selected)", "prefix Episode", "start 1", "digits 2", "order Name"},
			excludes: []string{"Original Filename", "No files found"},
		},
		{
			name:     "empty folder",
			model:    &mockModel{folder: "/shows", order: types.OrderModified, params: params},
			contains: []string{"/shows", "No files found", "order Modified"},
			excludes: []string{"Original Filename"},
		},
		{
			name: "folder with files",
			model: &mockModel{
				folder: "/shows",
				rows: []common.Row{
					{OldName: "a.txt", NewName: "Episode 01.txt", Size: 1024, ModTime: week},
					{OldName: "Episode 02.txt", NewName: "Episode 02.txt", Size: 3 * 1000 * 1000, ModTime: week},
				},
				selected: map[int]bool{1: true},
				cursor:   1,
				order:    types.OrderName,
				params:   params,
				dryRun:   true,
			},
			contains: []string{
				"Original Filename",
				"New Filename",
				"  [ ] a.txt",
				"> [x] Episode 02.txt",
				"Episode 01.txt",
				"1.0 kB",
				"3.0 MB",
				"1 week ago",
				"dry run",
			},
			excludes: []string{"No files found", "of 2"},
		},
		{
			name:     "empty prefix and visual mode",
			model:    &mockModel{params: sequence.Params{Start: 0, Padding: 3}, mode: common.Visual, order: types.OrderNatural},
			contains: []string{"prefix (none)", "-- VISUAL --", "order Natural"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := testutils.StripANSI(RenderMainView(tt.model, styles.New("system"), 0, 0))
			for _, s := range tt.contains {
				assert.Contains(t, output, s, "Output should contain %q", s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, output, s, "Output should not contain %q", s)
			}
		})
	}
}

func TestRenderMainViewWindow(t *testing.T) {
	rows := make([]common.Row, 10)
	for i := range rows {
		name := string(rune('a'+i)) + ".txt"
		rows[i] = common.Row{OldName: name, NewName: name}
	}
	m := &mockModel{folder: "/x", rows: rows, order: types.OrderName}

	output := testutils.StripANSI(RenderMainView(m, styles.New("dark"), 4, 3))
	assert.Contains(t, output, "e.txt")
	assert.Contains(t, output, "g.txt")
	assert.NotContains(t, output, "d.txt")
	assert.NotContains(t, output, "h.txt")
	assert.Contains(t, output, "5-7 of 10")

	// offset past the end is clamped
	output = testutils.StripANSI(RenderMainView(m, styles.New("dark"), 50, 3))
	assert.Contains(t, output, "8-10 of 10")
}

func TestTruncateAndPad(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
	assert.Equal(t, "ab   ", pad("ab", 5))
	assert.Equal(t, "abcdef", pad("abcdef", 3))

	long := strings.Repeat("x", 60) + ".txt"
	oldW, newW := columnWidths([]common.Row{{OldName: long, NewName: "a.txt"}})
	assert.Equal(t, maxNameWidth, oldW)
	assert.Equal(t, len("New Filename"), newW)
}
