package tui

import (
	"fmt"
	"time"

	"reseq/internal/config"
	serr "reseq/internal/errors"
	"reseq/internal/log"
	"reseq/internal/reorder"
	"reseq/internal/sequence"
	"reseq/internal/session"
	"reseq/internal/tui/common"
	"reseq/internal/tui/components"
	"reseq/internal/tui/messages"
	"reseq/internal/tui/styles"
	"reseq/internal/tui/views"
	"reseq/internal/watch"
	"reseq/pkg/types"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// rows of chrome around the preview: title, settings, blank, header,
// range hint, status and help
const chromeHeight = 8

type Model struct {
	session *session.Session
	keys    keyMap
	help    help.Model
	prefix  textinput.Model
	styles  styles.Styles
	status  *components.StatusBar

	mode        common.Mode
	cursor      int
	offset      int
	selected    map[int]bool
	visualStart int
	prefixPrev  string

	width  int
	height int

	watcher *watch.Watcher
}

func New(cfg *config.Config) *Model {
	if cfg == nil {
		cfg = config.New()
	}

	ti := textinput.New()
	ti.Prompt = "prefix: "
	ti.CharLimit = 128

	return &Model{
		session:  session.New(cfg),
		keys:     newKeyMap(),
		help:     help.New(),
		prefix:   ti,
		styles:   styles.New(cfg.Appearance.Theme),
		status:   components.NewStatusBar(),
		mode:     common.Normal,
		selected: make(map[int]bool),
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return waitForFolderChange(m.watcher.Events())
}

// SetFolder selects dir and resets the cursor and selection
func (m *Model) SetFolder(dir string) error {
	if err := m.session.SetFolder(dir); err != nil {
		return err
	}
	if m.watcher != nil {
		if err := m.watcher.Watch(dir); err != nil {
			log.LogWithError(err).Warn("cannot watch folder")
		}
	}
	m.resetView()
	return nil
}

// SetDryRun toggles validation-only renames
func (m *Model) SetDryRun(dryRun bool) {
	m.session.SetDryRun(dryRun)
}

// EnableWatch rescans whenever the folder changes on disk. It must be called
// before the program starts.
func (m *Model) EnableWatch(debounce time.Duration) error {
	if m.watcher != nil {
		return nil
	}
	w, err := watch.New(debounce)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		w.Stop()
		return err
	}
	if dir := m.session.Folder(); dir != "" {
		if err := w.Watch(dir); err != nil {
			log.LogWithError(err).Warn("cannot watch folder")
		}
	}
	m.watcher = w
	return nil
}

// Close stops background work
func (m *Model) Close() {
	if m.watcher != nil {
		m.watcher.Stop()
		m.watcher = nil
	}
}

func waitForFolderChange(events <-chan watch.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return messages.WatchClosedMsg{}
		}
		return messages.FolderChangedMsg{Event: ev}
	}
}

// View implements tea.Model
func (m *Model) View() string {
	limit := 0
	if m.height > 0 {
		limit = max(1, m.height-chromeHeight)
	}
	body := views.RenderMainView(m, m.styles, m.offset, limit)

	footer := m.status.View(m.styles)
	switch m.mode {
	case common.Prefix:
		footer = m.prefix.View()
	case common.Confirm:
		footer = m.styles.Warning.Render(fmt.Sprintf("Rename %d files? [y/N]", len(m.session.Plan().Changes())))
	}

	return m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left,
		body,
		footer,
		m.help.View(m.keys),
	))
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.scrollToCursor()
		return m, nil
	case messages.FolderChangedMsg:
		m.onFolderChanged(msg.Event)
		return m, m.Init()
	case messages.WatchClosedMsg:
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case common.Prefix:
		return m.handlePrefixKeys(msg)
	case common.Confirm:
		return m.handleConfirmKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

func (m *Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Toggle):
		if m.session.Len() > 0 {
			m.selected[m.cursor] = !m.selected[m.cursor]
			if !m.selected[m.cursor] {
				delete(m.selected, m.cursor)
			}
		}
	case key.Matches(msg, m.keys.Visual):
		if m.mode == common.Visual {
			m.mode = common.Normal
		} else if m.session.Len() > 0 {
			m.mode = common.Visual
			m.visualStart = m.cursor
			m.selectRange()
		}
	case key.Matches(msg, m.keys.SelectAll):
		for i := 0; i < m.session.Len(); i++ {
			m.selected[i] = true
		}
	case key.Matches(msg, m.keys.ClearSel):
		m.mode = common.Normal
		m.selected = make(map[int]bool)
	case key.Matches(msg, m.keys.MoveUp):
		m.move(types.Up)
	case key.Matches(msg, m.keys.MoveDown):
		m.move(types.Down)
	case key.Matches(msg, m.keys.Order):
		next := m.session.Order().Next()
		if err := m.session.SetOrder(next); err != nil {
			m.showError(err)
			break
		}
		m.resetView()
		m.status.SetText("Order: " + next.Label())
	case key.Matches(msg, m.keys.StartUp):
		m.adjust(1, 0)
	case key.Matches(msg, m.keys.StartDown):
		m.adjust(-1, 0)
	case key.Matches(msg, m.keys.PaddingUp):
		m.adjust(0, 1)
	case key.Matches(msg, m.keys.PaddingDown):
		m.adjust(0, -1)
	case key.Matches(msg, m.keys.Prefix):
		m.mode = common.Prefix
		m.prefixPrev = m.session.Params().Prefix
		m.prefix.SetValue(m.prefixPrev)
		m.prefix.CursorEnd()
		return m, m.prefix.Focus()
	case key.Matches(msg, m.keys.Rename):
		m.askRename()
	case key.Matches(msg, m.keys.Refresh):
		if err := m.session.Refresh(); err != nil {
			m.showError(err)
			break
		}
		m.resetView()
		m.status.SetText(fmt.Sprintf("Rescanned %d files", m.session.Len()))
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	if m.mode == common.Visual {
		m.selectRange()
	}
	return m, nil
}

func (m *Model) handlePrefixKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.mode = common.Normal
		m.prefix.Blur()
		m.status.SetText("Prefix: " + quotePrefix(m.session.Params().Prefix))
		return m, nil
	case tea.KeyEsc:
		m.mode = common.Normal
		m.prefix.Blur()
		m.setPrefix(m.prefixPrev)
		return m, nil
	}

	var cmd tea.Cmd
	m.prefix, cmd = m.prefix.Update(msg)
	m.setPrefix(m.prefix.Value())
	return m, cmd
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = common.Normal
	if !key.Matches(msg, m.keys.Confirm) {
		m.status.SetText("Rename cancelled")
		return m, nil
	}
	m.rename()
	return m, nil
}

func (m *Model) askRename() {
	switch {
	case m.session.Folder() == "":
		m.showError(serr.ErrNoFolderSelected)
	case m.session.Len() == 0:
		m.status.Set(components.StatusWarning, "Nothing to rename.")
	default:
		m.mode = common.Confirm
	}
}

func (m *Model) rename() {
	result, err := m.session.Rename()
	if err != nil {
		var rerr *serr.RenameError
		if serr.As(err, &rerr) {
			m.resetView()
			m.showError(serr.Wrapf(err, "%d files renamed before the failure", rerr.Completed()))
			return
		}
		m.showError(err)
		return
	}

	if result.DryRun {
		m.status.Set(components.StatusSuccess, fmt.Sprintf("Dry run: %d files would be renamed.", result.Renamed))
		return
	}
	m.resetView()
	m.status.Set(components.StatusSuccess, fmt.Sprintf("Renamed %d files.", result.Renamed))
}

// move shifts the selection, or the cursor row when nothing is selected
func (m *Model) move(dir types.Direction) {
	rows := m.Selected()
	cursorOnly := len(rows) == 0
	if cursorOnly {
		if m.session.Len() == 0 {
			return
		}
		rows = []int{m.cursor}
	}

	span, moved := m.session.Move(rows, dir)
	if !moved {
		return
	}

	if !cursorOnly {
		m.selected = make(map[int]bool)
		for _, i := range reorder.Indices(span) {
			m.selected[i] = true
		}
	}
	if dir == types.Up {
		m.cursor = span.Start
	} else {
		m.cursor = span.End - 1
	}
	if m.mode == common.Visual {
		m.mode = common.Normal
	}
	m.scrollToCursor()
}

func (m *Model) adjust(dStart, dPadding int) {
	p := m.session.Params()
	p.Start += dStart
	p.Padding += dPadding
	m.session.SetParams(p)
}

func (m *Model) setPrefix(prefix string) {
	p := m.session.Params()
	p.Prefix = prefix
	m.session.SetParams(p)
}

func (m *Model) moveCursor(delta int) {
	n := m.session.Len()
	if n == 0 {
		return
	}
	m.cursor = max(0, min(n-1, m.cursor+delta))
	m.scrollToCursor()
}

func (m *Model) selectRange() {
	m.selected = make(map[int]bool)
	lo, hi := min(m.visualStart, m.cursor), max(m.visualStart, m.cursor)
	for i := lo; i <= hi && i < m.session.Len(); i++ {
		m.selected[i] = true
	}
}

func (m *Model) onFolderChanged(ev watch.Event) {
	if m.session.Folder() == "" {
		return
	}
	if err := m.session.Refresh(); err != nil {
		m.showError(err)
		return
	}
	m.resetView()
	m.status.SetText(fmt.Sprintf("Folder changed, rescanned %d files", m.session.Len()))
	log.LogWithFields(log.F("directory", ev.Dir), log.F("changes", ev.Count)).Debug("preview rescanned")
}

// resetView clears the selection after the list was rebuilt
func (m *Model) resetView() {
	m.selected = make(map[int]bool)
	if m.mode == common.Visual {
		m.mode = common.Normal
	}
	m.cursor = max(0, min(m.cursor, m.session.Len()-1))
	m.scrollToCursor()
}

func (m *Model) scrollToCursor() {
	if m.height <= 0 {
		m.offset = 0
		return
	}
	limit := max(1, m.height-chromeHeight)
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+limit {
		m.offset = m.cursor - limit + 1
	}
}

func (m *Model) showError(err error) {
	log.LogWithError(err).Warn("tui action failed")
	m.status.Set(components.StatusError, err.Error())
}

func quotePrefix(p string) string {
	if p == "" {
		return "(none)"
	}
	return fmt.Sprintf("%q", p)
}

// Getters

func (m *Model) Folder() string { return m.session.Folder() }

func (m *Model) Rows() []common.Row {
	entries := m.session.Entries()
	plan := m.session.Plan()
	rows := make([]common.Row, len(entries))
	for i, e := range entries {
		rows[i] = common.Row{
			OldName: e.Name,
			NewName: plan.Pairs[i].NewName,
			Size:    e.Size,
			ModTime: e.ModTime,
		}
	}
	return rows
}

func (m *Model) IsSelected(i int) bool { return m.selected[i] }

// Selected returns the selected rows in ascending order
func (m *Model) Selected() []int {
	rows := make([]int, 0, len(m.selected))
	for i, ok := range m.selected {
		if ok {
			rows = append(rows, i)
		}
	}
	return reorder.Normalize(rows, m.session.Len())
}

func (m *Model) Cursor() int { return m.cursor }

func (m *Model) Mode() common.Mode { return m.mode }

func (m *Model) Order() types.OrderMode { return m.session.Order() }

func (m *Model) Params() sequence.Params { return m.session.Params() }

func (m *Model) DryRun() bool { return m.session.DryRun() }

func (m *Model) Status() string { return m.status.Text() }

// Plan returns the rename plan being previewed
func (m *Model) Plan() types.RenamePlan { return m.session.Plan() }

// Run starts the terminal UI on dir (which may be empty) and blocks until
// the user quits
func Run(cfg *config.Config, dir string) error {
	if cfg == nil {
		cfg = config.New()
	}
	m := New(cfg)
	if dir != "" {
		if err := m.SetFolder(dir); err != nil {
			return err
		}
	}
	if cfg.Watch.Enabled {
		if err := m.EnableWatch(cfg.Debounce()); err != nil {
			log.LogWithError(err).Warn("folder watching disabled")
		}
	}
	defer m.Close()

	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
