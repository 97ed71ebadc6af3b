package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/ganttly/internal/cli/formatter"
	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/alexanderramin/ganttly/internal/timeline"
	"github.com/alexanderramin/ganttly/internal/tree"
)

func (m ganttModel) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}
	if m.mode == modeForm && m.form != nil {
		return m.form.View()
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	sections = append(sections, m.renderAxis()...)
	sections = append(sections, formatter.Dim(strings.Repeat("─", m.width)))
	sections = append(sections, m.renderRows()...)
	sections = append(sections, formatter.Dim(strings.Repeat("─", m.width)))
	sections = append(sections, m.renderDetail())
	sections = append(sections, m.renderFooter())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	lines := strings.Count(result, "\n") + 1
	if lines < m.height {
		result += strings.Repeat("\n", m.height-lines)
	}
	return result
}

func (m ganttModel) renderHeader() string {
	s := m.store.State()
	title := formatter.StylePurple.Render("ganttly")
	info := formatter.Dim(fmt.Sprintf("view: %s  zoom: %.2gx", s.ViewMode, s.ZoomLevel))
	if s.IsMaximized {
		info += "  " + formatter.Dim("[chart]")
	}
	return title + "  " + info
}

// renderAxis produces the two chart header rows, blank-padded across the
// table pane so the axis lines up with the bars.
func (m ganttModel) renderAxis() []string {
	months, ticks := m.scale().Axis(m.store.State().ViewMode, m.chartWidth())

	pad := ""
	if tw := m.tableWidth(); tw > 0 {
		pad = strings.Repeat(" ", tw) + formatter.Dim("│")
	}
	return []string{
		pad + formatter.StyleHeader.Render(months),
		pad + formatter.Dim(ticks),
	}
}

func (m ganttModel) renderRows() []string {
	rows := tree.Flatten(m.store.State().Tasks)
	sc := m.scale()

	out := make([]string, 0, m.visibleRowCount())
	for i := m.scrollY; i < len(rows) && len(out) < m.visibleRowCount(); i++ {
		out = append(out, m.renderRow(rows[i], i == m.cursor, sc))
	}
	if len(rows) == 0 {
		out = append(out, formatter.Dim("  no tasks — press n to add one"))
	}
	// Fill the remaining row area so the footer stays put.
	for len(out) < m.visibleRowCount() {
		out = append(out, "")
	}
	return out
}

func (m ganttModel) renderRow(row tree.Row, isCursor bool, sc timeline.Scale) string {
	var b strings.Builder
	if tw := m.tableWidth(); tw > 0 {
		b.WriteString(m.renderTableCells(row, isCursor, tw))
		b.WriteString(formatter.Dim("│"))
	}
	b.WriteString(m.renderChartRow(row.Task, isCursor, sc))
	return b.String()
}

func (m ganttModel) renderTableCells(row tree.Row, isCursor bool, width int) string {
	task := row.Task

	marker := "  "
	if task.HasChildren() {
		if task.IsExpanded {
			marker = "▾ "
		} else {
			marker = "▸ "
		}
	}

	dates := fmt.Sprintf("%s–%s",
		task.StartDate.Format("Jan 2"), task.EndDate.Format("Jan 2"))
	if task.IsMilestone() {
		dates = task.StartDate.Format("Jan 2") + " ◆"
	}

	// Layout: name area │ dates (14) │ progress (4), totalling width.
	nameArea := width - 19
	name := clipPad(strings.Repeat("  ", row.Depth)+marker+task.Name, nameArea)
	plain := name + " " + clipPad(dates, 14)

	switch {
	case isCursor:
		return formatter.StyleSelected.Render(plain + fmt.Sprintf("%3d%%", task.Progress))
	case m.reorder.Active() && task.ID == m.reorder.TargetID():
		return formatter.StyleYellow.Render(plain + fmt.Sprintf("%3d%%", task.Progress))
	default:
		return plain + formatter.ProgressCell(task.Progress)
	}
}

func (m ganttModel) renderChartRow(task domain.Task, isCursor bool, sc timeline.Scale) string {
	width := m.chartWidth()
	pos := sc.Position(task)

	left := int(math.Round(pos.Left))
	barWidth := int(math.Round(pos.Width))
	if barWidth < 1 {
		barWidth = 1
	}

	if left >= width {
		return strings.Repeat(" ", width)
	}
	if left+barWidth > width {
		barWidth = width - left
	}

	var bar string
	if task.IsMilestone() {
		bar = formatter.Milestone(task, isCursor)
		barWidth = 1
	} else {
		bar = formatter.Bar(task, barWidth, isCursor)
	}

	return strings.Repeat(" ", left) + bar +
		strings.Repeat(" ", width-left-barWidth)
}

// renderDetail is the one-line read-out for the selected task: status,
// priority, duration, assignees, dependency count, and notes.
func (m ganttModel) renderDetail() string {
	sel := m.store.State().Selected()
	if sel == nil {
		return ""
	}

	parts := []string{
		formatter.Bold(sel.Name),
		formatter.StatusIndicator(sel.Status),
		formatter.PriorityBadge(sel.Priority),
		formatter.Dim(fmt.Sprintf("%dd", timeline.Duration(sel.StartDate, sel.EndDate))),
	}
	if len(sel.Resources) > 0 {
		parts = append(parts, formatter.StyleBlue.Render(strings.Join(sel.Resources, ", ")))
	}
	if len(sel.Dependencies) > 0 {
		parts = append(parts, formatter.Dim(fmt.Sprintf("deps: %d", len(sel.Dependencies))))
	}
	if sel.Notes != "" {
		parts = append(parts, formatter.Dim(sel.Notes))
	}
	return " " + strings.Join(parts, "  ")
}

func (m ganttModel) renderFooter() string {
	if m.status != "" {
		return " " + m.status
	}

	hints := []string{
		"↑↓ select", "space fold", "enter edit", "a/A/s add", "d delete",
		"m move", "r/R resize", "g reorder", "v view", "+/- zoom", "f max", "q quit",
	}
	return " " + formatter.Dim(strings.Join(hints, "  "))
}

// clipPad fits s to exactly width cells, truncating with an ellipsis or
// space-padding.
func clipPad(s string, width int) string {
	if width < 1 {
		return ""
	}
	r := []rune(s)
	if len(r) > width {
		return string(r[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(r))
}
