package cli

import (
	"testing"
	"time"

	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/alexanderramin/ganttly/internal/store"
	"github.com/alexanderramin/ganttly/internal/teatest"
	"github.com/alexanderramin/ganttly/internal/tree"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Geometry used throughout: day view, zoom 1.0, so one day is 6 cells.
// The chart origin sits two days before the earliest start (day 8), the
// table pane is 40 cells wide, and task rows begin at terminal row 4.
const (
	testDayWidth = 6
	testChartX   = 41
	testFirstRow = 4
)

func day(n int) time.Time {
	return domain.Date(2025, time.March, n)
}

func testForest() []domain.Task {
	return []domain.Task{
		{
			ID: "alpha", Name: "Alpha", StartDate: day(10), EndDate: day(12),
			Progress: 40, IsExpanded: true,
			Children: []domain.Task{
				{ID: "alpha-1", Name: "Alpha One", StartDate: day(10), EndDate: day(11), ParentID: "alpha"},
			},
		},
		{ID: "beta", Name: "Beta", StartDate: day(13), EndDate: day(15), Order: 1},
		{ID: "gamma", Name: "Gamma", StartDate: day(16), EndDate: day(16), Order: 2},
	}
}

func newTestDriver(t *testing.T) (*teatest.Driver, *store.Store) {
	t.Helper()
	st := store.New(store.NewState(testForest()))
	d := teatest.New(t, newGanttModel(st), 120, 30)
	return d, st
}

func gantt(d *teatest.Driver) ganttModel {
	return d.Model.(ganttModel)
}

func dates(t *testing.T, st *store.Store, id string) (time.Time, time.Time) {
	t.Helper()
	task := tree.Find(st.State().Tasks, id)
	require.NotNil(t, task)
	return task.StartDate, task.EndDate
}

func rootIDs(st *store.Store) []string {
	var ids []string
	for _, task := range st.State().Tasks {
		ids = append(ids, task.ID)
	}
	return ids
}

// barX converts a chart-pane cell offset into a terminal column.
func barX(cx int) int {
	return testChartX + cx
}

func teaWheel(b tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: 60, Y: 10, Action: tea.MouseActionPress, Button: b}
}

// ── rendering and navigation ─────────────────────────────────────────────────

func TestTUI_RendersAllVisibleTasks(t *testing.T) {
	d, _ := newTestDriver(t)

	view := d.View()
	assert.Contains(t, view, "Alpha")
	assert.Contains(t, view, "Alpha One")
	assert.Contains(t, view, "Beta")
	assert.Contains(t, view, "Gamma")
}

func TestTUI_QuitWithQ(t *testing.T) {
	d, _ := newTestDriver(t)

	d.PressKey('q')

	assert.True(t, d.Quitting)
}

func TestTUI_QuitWithCtrlC(t *testing.T) {
	d, _ := newTestDriver(t)

	d.PressCtrlC()

	assert.True(t, d.Quitting)
}

func TestTUI_CursorMovesSelection(t *testing.T) {
	d, st := newTestDriver(t)

	require.Equal(t, "alpha", st.State().SelectedTaskID)

	d.PressDown()
	assert.Equal(t, "alpha-1", st.State().SelectedTaskID)

	d.PressDown()
	assert.Equal(t, "beta", st.State().SelectedTaskID)

	d.PressUp()
	assert.Equal(t, "alpha-1", st.State().SelectedTaskID)
}

func TestTUI_CursorStopsAtEdges(t *testing.T) {
	d, st := newTestDriver(t)

	d.PressUp()
	assert.Equal(t, "alpha", st.State().SelectedTaskID)

	for i := 0; i < 10; i++ {
		d.PressDown()
	}
	assert.Equal(t, "gamma", st.State().SelectedTaskID)
}

func TestTUI_SpaceCollapsesAndExpandsSubtree(t *testing.T) {
	d, _ := newTestDriver(t)

	d.PressKey(' ')
	assert.NotContains(t, d.View(), "Alpha One")

	d.PressKey(' ')
	assert.Contains(t, d.View(), "Alpha One")
}

func TestTUI_ZoomKeysClampAtBounds(t *testing.T) {
	d, st := newTestDriver(t)

	d.PressKey('+')
	assert.InDelta(t, 1.25, st.State().ZoomLevel, 1e-9)

	for i := 0; i < 10; i++ {
		d.PressKey('-')
	}
	assert.InDelta(t, store.MinZoom, st.State().ZoomLevel, 1e-9)

	for i := 0; i < 20; i++ {
		d.PressKey('+')
	}
	assert.InDelta(t, store.MaxZoom, st.State().ZoomLevel, 1e-9)
}

func TestTUI_ViewModeCycles(t *testing.T) {
	d, st := newTestDriver(t)

	d.PressKey('v')
	assert.Equal(t, domain.ViewWeek, st.State().ViewMode)

	d.PressKey('v')
	assert.Equal(t, domain.ViewMonth, st.State().ViewMode)

	d.PressKey('v')
	assert.Equal(t, domain.ViewDay, st.State().ViewMode)
}

func TestTUI_DeleteRemovesSubtreeAndReclampsCursor(t *testing.T) {
	d, st := newTestDriver(t)

	d.PressKey('d')

	assert.Equal(t, 2, tree.Count(st.State().Tasks))
	assert.Equal(t, "beta", st.State().SelectedTaskID)
	assert.NotContains(t, d.View(), "Alpha One")
}

func TestTUI_MaximizeHidesTablePane(t *testing.T) {
	d, st := newTestDriver(t)

	d.PressKey('f')
	assert.True(t, st.State().IsMaximized)
	assert.Equal(t, 0, gantt(d).tableWidth())

	d.PressKey('f')
	assert.False(t, st.State().IsMaximized)
}

func TestTUI_AddFormEscCancels(t *testing.T) {
	d, st := newTestDriver(t)

	d.PressKey('n')
	require.Equal(t, modeForm, gantt(d).mode)

	d.PressEsc()
	assert.Equal(t, modeNormal, gantt(d).mode)
	assert.Equal(t, 4, tree.Count(st.State().Tasks))
}

// ── keyboard gestures ────────────────────────────────────────────────────────

func TestTUI_KeyboardMoveShiftsDates(t *testing.T) {
	d, st := newTestDriver(t)

	d.PressKey('m')
	d.PressRight()
	d.PressRight()
	d.PressEnter()

	start, end := dates(t, st, "alpha")
	assert.Equal(t, day(12), start)
	assert.Equal(t, day(14), end)
	assert.Equal(t, modeNormal, gantt(d).mode)
}

func TestTUI_KeyboardMoveEscRestoresDates(t *testing.T) {
	d, st := newTestDriver(t)

	d.PressKey('m')
	d.PressRight()
	d.PressEsc()

	start, end := dates(t, st, "alpha")
	assert.Equal(t, day(10), start)
	assert.Equal(t, day(12), end)
}

func TestTUI_KeyboardResizeEndExtends(t *testing.T) {
	d, st := newTestDriver(t)

	d.PressKey('r')
	require.True(t, st.State().IsResizing)

	d.PressRight()
	d.PressEnter()

	start, end := dates(t, st, "alpha")
	assert.Equal(t, day(10), start)
	assert.Equal(t, day(13), end)
	assert.False(t, st.State().IsResizing)
}

func TestTUI_KeyboardResizeStartClampsAtSingleDay(t *testing.T) {
	d, st := newTestDriver(t)

	d.PressKey('R')
	for i := 0; i < 5; i++ {
		d.PressRight()
	}
	d.PressEnter()

	start, end := dates(t, st, "alpha")
	assert.Equal(t, day(11), start)
	assert.Equal(t, day(12), end)
}

func TestTUI_KeyboardReorderMovesRoot(t *testing.T) {
	d, st := newTestDriver(t)

	d.PressKey('g')
	d.PressDown()
	d.PressEnter()

	assert.Equal(t, []string{"beta", "alpha", "gamma"}, rootIDs(st))
	// Cursor follows the moved row.
	assert.Equal(t, "alpha", st.State().SelectedTaskID)
	assert.Nil(t, st.State().DraggedTask)
}

func TestTUI_KeyboardReorderEscKeepsOrder(t *testing.T) {
	d, st := newTestDriver(t)

	d.PressKey('g')
	d.PressDown()
	d.PressEsc()

	assert.Equal(t, []string{"alpha", "beta", "gamma"}, rootIDs(st))
	assert.Nil(t, st.State().DraggedTask)
}

func TestTUI_ReorderIgnoredOnNestedRow(t *testing.T) {
	d, st := newTestDriver(t)

	d.PressDown() // alpha-1
	d.PressKey('g')

	assert.Equal(t, modeNormal, gantt(d).mode)
	assert.Nil(t, st.State().DraggedTask)
}

// ── mouse gestures ───────────────────────────────────────────────────────────

// Alpha spans day 10-12: bar cells 12..27 in the chart pane.
// Beta spans day 13-15: bar cells 30..45.

func TestTUI_MouseDragMovesBar(t *testing.T) {
	d, st := newTestDriver(t)

	// Grab the middle of Alpha's bar and drag two days right.
	d.MousePress(barX(20), testFirstRow)
	d.MouseMotion(barX(20+2*testDayWidth), testFirstRow)
	d.MouseRelease(barX(20+2*testDayWidth), testFirstRow)

	start, end := dates(t, st, "alpha")
	assert.Equal(t, day(12), start)
	assert.Equal(t, day(14), end)
	assert.Equal(t, modeNormal, gantt(d).mode)
}

func TestTUI_MouseDragIsAnchoredNotIncremental(t *testing.T) {
	d, st := newTestDriver(t)

	// Wander right, then settle one day out: only the final offset counts.
	d.MousePress(barX(20), testFirstRow)
	d.MouseMotion(barX(20+3*testDayWidth), testFirstRow)
	d.MouseMotion(barX(20+1*testDayWidth), testFirstRow)
	d.MouseRelease(barX(20+1*testDayWidth), testFirstRow)

	start, end := dates(t, st, "alpha")
	assert.Equal(t, day(11), start)
	assert.Equal(t, day(13), end)
}

func TestTUI_MouseDragEndEdgeResizes(t *testing.T) {
	d, st := newTestDriver(t)

	// Beta's last bar cell is its end handle.
	endEdge := barX(45)
	d.MousePress(endEdge, testFirstRow+2)
	d.MouseMotion(endEdge+2*testDayWidth, testFirstRow+2)
	d.MouseRelease(endEdge+2*testDayWidth, testFirstRow+2)

	start, end := dates(t, st, "beta")
	assert.Equal(t, day(13), start)
	assert.Equal(t, day(17), end)
	assert.False(t, st.State().IsResizing)
}

func TestTUI_MouseDragStartEdgeClampsAtSingleDay(t *testing.T) {
	d, st := newTestDriver(t)

	// Drag Beta's start handle far past its end date.
	startEdge := barX(30)
	d.MousePress(startEdge, testFirstRow+2)
	d.MouseMotion(startEdge+10*testDayWidth, testFirstRow+2)
	d.MouseRelease(startEdge+10*testDayWidth, testFirstRow+2)

	start, end := dates(t, st, "beta")
	assert.Equal(t, day(14), start)
	assert.Equal(t, day(15), end)
}

func TestTUI_MouseMilestoneDragMovesWholeMarker(t *testing.T) {
	d, st := newTestDriver(t)

	// Gamma is a single-day milestone at cells 48..51; the whole marker
	// moves, there are no resize handles.
	d.MousePress(barX(48), testFirstRow+3)
	d.MouseMotion(barX(48+testDayWidth), testFirstRow+3)
	d.MouseRelease(barX(48+testDayWidth), testFirstRow+3)

	start, end := dates(t, st, "gamma")
	assert.Equal(t, day(17), start)
	assert.Equal(t, day(17), end)
	assert.False(t, st.State().IsResizing)
}

func TestTUI_MouseClickOnTableSelectsRow(t *testing.T) {
	d, st := newTestDriver(t)

	d.MousePress(5, testFirstRow+2)
	d.MouseRelease(5, testFirstRow+2)

	assert.Equal(t, "beta", st.State().SelectedTaskID)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, rootIDs(st))
}

func TestTUI_MouseTableDragReordersRoots(t *testing.T) {
	d, st := newTestDriver(t)

	// Press Alpha's table row, drag down past Beta onto Gamma, drop.
	d.MousePress(5, testFirstRow)
	d.MouseMotion(5, testFirstRow+2)
	d.MouseMotion(5, testFirstRow+3)
	d.MouseRelease(5, testFirstRow+3)

	assert.Equal(t, []string{"beta", "gamma", "alpha"}, rootIDs(st))
	assert.Nil(t, st.State().DraggedTask)
}

func TestTUI_MouseTableDragFromNestedRowDoesNotReorder(t *testing.T) {
	d, st := newTestDriver(t)

	d.MousePress(5, testFirstRow+1) // alpha-1
	d.MouseMotion(5, testFirstRow+3)
	d.MouseRelease(5, testFirstRow+3)

	assert.Equal(t, []string{"alpha", "beta", "gamma"}, rootIDs(st))
}

func TestTUI_MouseWheelScrollsRows(t *testing.T) {
	d, _ := newTestDriver(t)

	d.Send(teaWheel(tea.MouseButtonWheelDown))
	assert.Equal(t, 1, gantt(d).scrollY)

	d.Send(teaWheel(tea.MouseButtonWheelUp))
	assert.Equal(t, 0, gantt(d).scrollY)
}
