package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the editor TUI and blocks until it exits. Mouse cell motion
// is enabled so drag gestures report every pointer position; listeners
// are program-global, so a gesture finishes even when the pointer leaves
// the bar it started on.
func Run(app *App, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}, opts...)

	p := tea.NewProgram(newGanttModel(app.Store), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running editor: %w", err)
	}
	return nil
}
