package cli

import (
	"time"

	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/alexanderramin/ganttly/internal/session"
	"github.com/alexanderramin/ganttly/internal/store"
	"github.com/alexanderramin/ganttly/internal/timeline"
	"github.com/alexanderramin/ganttly/internal/tree"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// editorMode tracks what an in-flight key/mouse event is steering: the
// normal cursor, one of the three gesture sessions, or the edit form.
// Gesture sessions are mutually exclusive; a new one starts only from
// modeNormal.
type editorMode int

const (
	modeNormal editorMode = iota
	modeMove
	modeResize
	modeReorder
	modeForm
)

// Chrome rows above the task rows: title, two axis rows, separator.
const chromeRows = 4

// Rows below the task rows: separator, detail line, key hints.
const footerRows = 3

// ganttModel is the root bubbletea model: one screen split into a task
// table pane and a chart pane, with the store as its only data source.
type ganttModel struct {
	store *store.Store
	keys  keyMap

	width  int
	height int

	cursor     int // index into the visible rows
	scrollY    int
	scrollDays int // horizontal chart scroll, in days

	// origin is the date at the chart's left edge before scrolling,
	// fixed at startup so bars don't shift as tasks are edited.
	origin time.Time

	mode    editorMode
	move    *session.MoveSession
	resize  *session.ResizeSession
	reorder *session.ReorderSession
	form    *taskForm

	// pressedRow is the table row a mouse press landed on, pending
	// either a click-select or a drag-reorder. -1 when idle.
	pressedRow int

	status   string
	quitting bool
}

func newGanttModel(st *store.Store) ganttModel {
	m := ganttModel{
		store:      st,
		keys:       defaultKeyMap(),
		pressedRow: -1,
	}
	m.origin = chartOrigin(st.State().Tasks)
	if rows := m.rows(); len(rows) > 0 {
		st.Dispatch(store.SelectTask{ID: rows[0].Task.ID})
	}
	return m
}

// chartOrigin picks the chart's left-edge date: two days before the
// earliest task start, or today for an empty forest.
func chartOrigin(tasks []domain.Task) time.Time {
	var earliest time.Time
	var walk func([]domain.Task)
	walk = func(ts []domain.Task) {
		for _, t := range ts {
			if earliest.IsZero() || t.StartDate.Before(earliest) {
				earliest = t.StartDate
			}
			walk(t.Children)
		}
	}
	walk(tasks)
	if earliest.IsZero() {
		earliest = domain.Midnight(time.Now())
	}
	return domain.Midnight(earliest).AddDate(0, 0, -2)
}

// ── derived geometry ─────────────────────────────────────────────────────────

func (m ganttModel) rows() []tree.Row {
	return tree.Flatten(m.store.State().Tasks)
}

func (m ganttModel) currentRow() (tree.Row, bool) {
	rows := m.rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return tree.Row{}, false
	}
	return rows[m.cursor], true
}

// scale returns the geometry mapping for the chart pane, origin shifted
// by the current horizontal scroll.
func (m ganttModel) scale() timeline.Scale {
	s := m.store.State()
	return timeline.Scale{
		Origin:       m.origin.AddDate(0, 0, m.scrollDays),
		BaseDayWidth: timeline.BaseDayWidthFor(s.ViewMode),
		Zoom:         s.ZoomLevel,
	}
}

func (m ganttModel) tableWidth() int {
	if m.store.State().IsMaximized {
		return 0
	}
	return 40
}

// chartX is the first column of the chart pane (after the divider).
func (m ganttModel) chartX() int {
	tw := m.tableWidth()
	if tw == 0 {
		return 0
	}
	return tw + 1
}

func (m ganttModel) chartWidth() int {
	w := m.width - m.chartX()
	if w < 1 {
		return 1
	}
	return w
}

func (m ganttModel) visibleRowCount() int {
	n := m.height - chromeRows - footerRows
	if n < 1 {
		return 1
	}
	return n
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m ganttModel) Init() tea.Cmd {
	return nil
}

func (m ganttModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	if m.mode == modeForm && m.form != nil {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m ganttModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.mode {
	case modeForm:
		return m.updateForm(msg)
	case modeMove:
		return m.handleMoveKey(msg)
	case modeResize:
		return m.handleResizeKey(msg)
	case modeReorder:
		return m.handleReorderKey(msg)
	}
	return m.handleNormalKey(msg)
}

func (m ganttModel) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	m.status = ""

	switch {
	case key.Matches(msg, k.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, k.Up):
		return m.moveCursor(-1), nil

	case key.Matches(msg, k.Down):
		return m.moveCursor(1), nil

	case key.Matches(msg, k.Left):
		m.scrollDays -= m.scrollStep()
		return m, nil

	case key.Matches(msg, k.Right):
		m.scrollDays += m.scrollStep()
		return m, nil

	case key.Matches(msg, k.Toggle):
		if row, ok := m.currentRow(); ok && row.Task.HasChildren() {
			m.store.Dispatch(store.ToggleTaskExpansion{ID: row.Task.ID})
			m = m.clampCursor()
		}
		return m, nil

	case key.Matches(msg, k.Edit):
		if row, ok := m.currentRow(); ok {
			m.form = newEditTaskForm(row.Task)
			m.mode = modeForm
			return m, m.form.Init()
		}
		return m, nil

	case key.Matches(msg, k.AddBelow):
		return m.openAddForm(domain.InsertBelow)

	case key.Matches(msg, k.AddAbove):
		return m.openAddForm(domain.InsertAbove)

	case key.Matches(msg, k.AddSubtask):
		return m.openAddForm(domain.InsertSubtask)

	case key.Matches(msg, k.AddRoot):
		m.form = newAddTaskForm("", "", time.Now())
		m.mode = modeForm
		return m, m.form.Init()

	case key.Matches(msg, k.Delete):
		if row, ok := m.currentRow(); ok {
			m.store.Dispatch(store.DeleteTask{ID: row.Task.ID})
			m = m.clampCursor()
			m.status = "Deleted " + row.Task.Name
		}
		return m, nil

	case key.Matches(msg, k.Grab):
		if row, ok := m.currentRow(); ok {
			m.move = session.StartMove(m.store, m.scale(), row.Task.ID, 0)
			if m.move != nil {
				m.mode = modeMove
				m.status = "Moving " + row.Task.Name + " — ←/→ shift, enter apply, esc cancel"
			}
		}
		return m, nil

	case key.Matches(msg, k.ResizeEnd):
		return m.startKeyResize(domain.HandleEnd), nil

	case key.Matches(msg, k.ResizeStart):
		return m.startKeyResize(domain.HandleStart), nil

	case key.Matches(msg, k.Reorder):
		if row, ok := m.currentRow(); ok && row.Depth == 0 {
			m.reorder = session.StartReorder(m.store, row.Task.ID)
			if m.reorder != nil {
				m.mode = modeReorder
				m.status = "Reordering " + row.Task.Name + " — ↑/↓ choose position, enter drop, esc cancel"
			}
		}
		return m, nil

	case key.Matches(msg, k.ViewMode):
		m.store.Dispatch(store.SetViewMode{Mode: nextViewMode(m.store.State().ViewMode)})
		return m, nil

	case key.Matches(msg, k.ZoomIn):
		m.store.Dispatch(store.SetZoomLevel{Level: m.store.State().ZoomLevel + 0.25})
		return m, nil

	case key.Matches(msg, k.ZoomOut):
		m.store.Dispatch(store.SetZoomLevel{Level: m.store.State().ZoomLevel - 0.25})
		return m, nil

	case key.Matches(msg, k.Maximize):
		m.store.Dispatch(store.ToggleMaximize{})
		return m, nil
	}

	return m, nil
}

func (m ganttModel) handleMoveKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Left):
		m.move.Nudge(-1)
	case key.Matches(msg, k.Right):
		m.move.Nudge(1)
	case key.Matches(msg, k.Confirm):
		m.move.Release()
		return m.endGesture("Moved"), nil
	case key.Matches(msg, k.Cancel):
		m.move.Cancel()
		return m.endGesture("Move cancelled"), nil
	}
	return m, nil
}

func (m ganttModel) handleResizeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Left):
		m.resize.Nudge(-1)
	case key.Matches(msg, k.Right):
		m.resize.Nudge(1)
	case key.Matches(msg, k.Confirm):
		m.resize.Release()
		return m.endGesture("Resized"), nil
	case key.Matches(msg, k.Cancel):
		m.resize.Cancel()
		return m.endGesture("Resize cancelled"), nil
	}
	return m, nil
}

func (m ganttModel) handleReorderKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Up):
		m.retargetReorder(-1)
	case key.Matches(msg, k.Down):
		m.retargetReorder(1)
	case key.Matches(msg, k.Confirm):
		m.reorder.Drop()
		m = m.endGesture("Reordered")
		return m.syncCursorToSelection(), nil
	case key.Matches(msg, k.Cancel):
		m.reorder.Cancel()
		return m.endGesture("Reorder cancelled"), nil
	}
	return m, nil
}

// retargetReorder steps the drop target up or down the root list.
func (m *ganttModel) retargetReorder(step int) {
	roots := m.store.State().Tasks
	cur := -1
	for i, t := range roots {
		if t.ID == m.reorder.TargetID() {
			cur = i
			break
		}
	}
	next := cur + step
	if next >= 0 && next < len(roots) {
		m.reorder.DragOver(roots[next].ID)
	}
}

func (m ganttModel) startKeyResize(handle domain.ResizeHandle) ganttModel {
	row, ok := m.currentRow()
	if !ok {
		return m
	}
	m.resize = session.StartResize(m.store, m.scale(), row.Task.ID, handle, 0)
	if m.resize != nil {
		m.mode = modeResize
		edge := "end"
		if handle == domain.HandleStart {
			edge = "start"
		}
		m.status = "Resizing " + edge + " of " + row.Task.Name + " — ←/→ adjust, enter apply, esc cancel"
	}
	return m
}

// endGesture drops all session references and returns to normal mode.
func (m ganttModel) endGesture(status string) ganttModel {
	m.move = nil
	m.resize = nil
	m.reorder = nil
	m.mode = modeNormal
	m.status = status
	return m
}

func (m ganttModel) moveCursor(step int) ganttModel {
	rows := m.rows()
	if len(rows) == 0 {
		return m
	}
	m.cursor += step
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(rows) {
		m.cursor = len(rows) - 1
	}
	m.store.Dispatch(store.SelectTask{ID: rows[m.cursor].Task.ID})

	// Keep the cursor on screen.
	if m.cursor < m.scrollY {
		m.scrollY = m.cursor
	}
	if m.cursor >= m.scrollY+m.visibleRowCount() {
		m.scrollY = m.cursor - m.visibleRowCount() + 1
	}
	return m
}

// clampCursor re-fits the cursor after the row list shrank (delete,
// collapse) and re-syncs the selection.
func (m ganttModel) clampCursor() ganttModel {
	rows := m.rows()
	if len(rows) == 0 {
		m.cursor = 0
		m.store.Dispatch(store.SelectTask{})
		return m
	}
	if m.cursor >= len(rows) {
		m.cursor = len(rows) - 1
	}
	m.store.Dispatch(store.SelectTask{ID: rows[m.cursor].Task.ID})
	return m
}

// syncCursorToSelection moves the cursor to wherever the selected task
// landed after a reorder.
func (m ganttModel) syncCursorToSelection() ganttModel {
	sel := m.store.State().SelectedTaskID
	for i, r := range m.rows() {
		if r.Task.ID == sel {
			m.cursor = i
			break
		}
	}
	return m
}

func (m ganttModel) openAddForm(pos domain.InsertPosition) (tea.Model, tea.Cmd) {
	row, ok := m.currentRow()
	if !ok {
		return m, nil
	}
	m.form = newAddTaskForm(row.Task.ID, pos, row.Task.StartDate)
	m.mode = modeForm
	return m, m.form.Init()
}

func (m ganttModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.form = nil
		m.mode = modeNormal
		m.status = "Cancelled"
		return m, nil
	}

	cmd := m.form.Update(msg)

	if m.form.Completed() {
		if a := m.form.Action(); a != nil {
			m.store.Dispatch(a)
		}
		m.form = nil
		m.mode = modeNormal
		m.status = "Saved"
		m = m.clampCursor()
		return m, nil
	}
	return m, cmd
}

// scrollStep is the horizontal pan distance in days for one keypress.
func (m ganttModel) scrollStep() int {
	switch m.store.State().ViewMode {
	case domain.ViewMonth:
		return 30
	case domain.ViewWeek:
		return 7
	default:
		return 1
	}
}

func nextViewMode(mode domain.ViewMode) domain.ViewMode {
	switch mode {
	case domain.ViewDay:
		return domain.ViewWeek
	case domain.ViewWeek:
		return domain.ViewMonth
	default:
		return domain.ViewDay
	}
}
