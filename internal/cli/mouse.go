package cli

import (
	"math"

	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/alexanderramin/ganttly/internal/session"
	"github.com/alexanderramin/ganttly/internal/store"
	"github.com/alexanderramin/ganttly/internal/tree"
	tea "github.com/charmbracelet/bubbletea"
)

// barZone classifies where inside a task bar a press landed.
type barZone int

const (
	zoneMiss barZone = iota
	zoneBody
	zoneStartEdge
	zoneEndEdge
)

// handleMouse routes pointer events. A press starts a gesture, motion
// feeds the active session, release ends it; motion and release are
// handled wherever the pointer is, not just over the pressed cell, so a
// gesture completes even after the pointer leaves the original bar.
func (m ganttModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode == modeForm {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if m.scrollY > 0 {
			m.scrollY--
		}
		return m, nil
	case tea.MouseButtonWheelDown:
		if m.scrollY < len(m.rows())-1 {
			m.scrollY++
		}
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			return m.mousePress(msg.X, msg.Y), nil
		}
	case tea.MouseActionMotion:
		return m.mouseMotion(msg.X, msg.Y), nil
	case tea.MouseActionRelease:
		return m.mouseRelease(msg.X), nil
	}
	return m, nil
}

func (m ganttModel) mousePress(x, y int) ganttModel {
	row, idx, ok := m.rowAt(y)
	if !ok {
		return m
	}

	m.cursor = idx
	m.store.Dispatch(store.SelectTask{ID: row.Task.ID})
	m.status = ""

	if x < m.tableWidth() {
		// Table pane: remember the press; a vertical drag turns it into
		// a reorder, a plain release into a click-select.
		m.pressedRow = idx
		return m
	}

	cx := x - m.chartX()
	switch m.barZoneAt(row.Task, cx) {
	case zoneStartEdge:
		m.resize = session.StartResize(m.store, m.scale(), row.Task.ID, domain.HandleStart, cx)
		if m.resize != nil {
			m.mode = modeResize
		}
	case zoneEndEdge:
		m.resize = session.StartResize(m.store, m.scale(), row.Task.ID, domain.HandleEnd, cx)
		if m.resize != nil {
			m.mode = modeResize
		}
	case zoneBody:
		m.move = session.StartMove(m.store, m.scale(), row.Task.ID, cx)
		if m.move != nil {
			m.mode = modeMove
		}
	}
	return m
}

func (m ganttModel) mouseMotion(x, y int) ganttModel {
	cx := x - m.chartX()

	switch {
	case m.move.Active():
		m.move.PointerMove(cx)

	case m.resize.Active():
		m.resize.PointerMove(cx)

	case m.reorder.Active():
		if row, _, ok := m.rowAt(y); ok && row.Depth == 0 {
			m.reorder.DragOver(row.Task.ID)
		}

	case m.pressedRow >= 0:
		// The press was on a table row; dragging off it begins a reorder
		// if the pressed row is a root entry.
		if _, idx, ok := m.rowAt(y); ok && idx != m.pressedRow {
			rows := m.rows()
			if m.pressedRow < len(rows) && rows[m.pressedRow].Depth == 0 {
				m.reorder = session.StartReorder(m.store, rows[m.pressedRow].Task.ID)
				if m.reorder != nil {
					m.mode = modeReorder
				}
			}
			m.pressedRow = -1
		}
	}
	return m
}

func (m ganttModel) mouseRelease(x int) ganttModel {
	cx := x - m.chartX()

	switch {
	case m.move.Active():
		m.move.PointerMove(cx)
		m.move.Release()
		return m.endGesture("")

	case m.resize.Active():
		m.resize.PointerMove(cx)
		m.resize.Release()
		return m.endGesture("")

	case m.reorder.Active():
		m.reorder.Drop()
		m = m.endGesture("")
		return m.syncCursorToSelection()
	}

	m.pressedRow = -1
	return m
}

// rowAt maps a terminal y coordinate to a visible row.
func (m ganttModel) rowAt(y int) (tree.Row, int, bool) {
	idx := y - chromeRows + m.scrollY
	rows := m.rows()
	if idx < 0 || idx >= len(rows) {
		return tree.Row{}, 0, false
	}
	return rows[idx], idx, true
}

// barZoneAt classifies a chart-pane x offset against a task's bar. The
// outermost cell on each side acts as the resize handle; milestones have
// no handles, the whole marker moves.
func (m ganttModel) barZoneAt(task domain.Task, cx int) barZone {
	pos := m.scale().Position(task)
	left := int(math.Round(pos.Left))
	width := int(math.Round(pos.Width))
	if width < 1 {
		width = 1
	}

	if cx < left || cx >= left+width {
		return zoneMiss
	}
	if task.IsMilestone() {
		return zoneBody
	}
	if cx == left && width > 2 {
		return zoneStartEdge
	}
	if cx == left+width-1 && width > 2 {
		return zoneEndEdge
	}
	return zoneBody
}
