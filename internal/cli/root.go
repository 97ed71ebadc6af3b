package cli

import (
	"fmt"

	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/alexanderramin/ganttly/internal/store"
	"github.com/spf13/cobra"
)

// App holds the editor's explicitly wired collaborators. The store is the
// sole mutation boundary: the TUI reads snapshots from it and dispatches
// actions, nothing else touches the forest.
type App struct {
	Store *store.Store

	// IsInteractive gates the TUI; wired from main so tests can stub it.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "ganttly" command.
func NewRootCmd(app *App) *cobra.Command {
	var (
		viewMode  string
		zoom      float64
		maximized bool
	)

	root := &cobra.Command{
		Use:   "ganttly",
		Short: "Interactive Gantt chart and task-tree editor",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("ganttly needs an interactive terminal")
			}

			if viewMode != "" {
				if !domain.ValidViewModes[viewMode] {
					return fmt.Errorf("invalid view mode %q (day, week, month)", viewMode)
				}
				app.Store.Dispatch(store.SetViewMode{Mode: domain.ViewMode(viewMode)})
			}
			app.Store.Dispatch(store.SetZoomLevel{Level: zoom})
			if maximized {
				app.Store.Dispatch(store.ToggleMaximize{})
			}

			return Run(app)
		},
	}

	root.Flags().StringVar(&viewMode, "view", "", "initial view mode: day, week, or month")
	root.Flags().Float64Var(&zoom, "zoom", 1.0, "initial zoom level (0.5 to 3.0)")
	root.Flags().BoolVar(&maximized, "maximized", false, "start with the chart maximized")

	return root
}
