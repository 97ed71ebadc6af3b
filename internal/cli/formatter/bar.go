package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	barFilled = '█'
	barEmpty  = '░'
)

// Bar renders a task bar of the given cell width. The filled portion
// reflects progress; a task's own Color hint wins over the status color.
// Selected bars render bold.
func Bar(task domain.Task, width int, selected bool) string {
	if width < 1 {
		width = 1
	}

	filled := width * task.Progress / 100
	body := strings.Repeat(string(barFilled), filled) +
		strings.Repeat(string(barEmpty), width-filled)

	style := StatusColor(task.Status)
	if task.Color != "" {
		style = lipgloss.NewStyle().Foreground(lipgloss.Color(task.Color))
	}
	if selected {
		style = style.Bold(true)
	}
	return style.Render(body)
}

// Milestone renders the single-cell diamond marker for a same-day task.
func Milestone(task domain.Task, selected bool) string {
	style := StatusColor(task.Status)
	if task.Color != "" {
		style = lipgloss.NewStyle().Foreground(lipgloss.Color(task.Color))
	}
	if selected {
		style = style.Bold(true)
	}
	return style.Render("◆")
}

// ProgressCell renders a fixed-width "42%" cell for the task table.
func ProgressCell(progress int) string {
	switch {
	case progress >= 100:
		return StyleGreen.Render("100%")
	case progress > 0:
		return StyleYellow.Render(fmt.Sprintf("%3d%%", progress))
	default:
		return StyleDim.Render("  0%")
	}
}
