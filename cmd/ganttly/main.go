package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/ganttly/internal/cli"
	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/alexanderramin/ganttly/internal/seed"
	"github.com/alexanderramin/ganttly/internal/store"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Seed the demo plan; the forest lives for the session only.
	st := store.New(store.NewState(seed.DemoForest(time.Now())))

	// Env override for the initial view mode, e.g. GANTTLY_VIEW=week.
	if mode := os.Getenv("GANTTLY_VIEW"); mode != "" {
		if !domain.ValidViewModes[mode] {
			return fmt.Errorf("invalid GANTTLY_VIEW %q (day, week, month)", mode)
		}
		st.Dispatch(store.SetViewMode{Mode: domain.ViewMode(mode)})
	}

	app := &cli.App{
		Store: st,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
		},
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
