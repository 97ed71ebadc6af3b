package cli

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding the editor responds to in normal mode.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Toggle key.Binding

	Edit       key.Binding
	AddBelow   key.Binding
	AddAbove   key.Binding
	AddSubtask key.Binding
	AddRoot    key.Binding
	Delete     key.Binding

	Grab        key.Binding
	ResizeEnd   key.Binding
	ResizeStart key.Binding
	Reorder     key.Binding

	ViewMode key.Binding
	ZoomIn   key.Binding
	ZoomOut  key.Binding
	Maximize key.Binding

	Confirm key.Binding
	Cancel  key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "expand/collapse")),

		Edit:       key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter", "edit")),
		AddBelow:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add below")),
		AddAbove:   key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "add above")),
		AddSubtask: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "add subtask")),
		AddRoot:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new root task")),
		Delete:     key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),

		Grab:        key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "move")),
		ResizeEnd:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "resize end")),
		ResizeStart: key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "resize start")),
		Reorder:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "reorder row")),

		ViewMode: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "cycle view")),
		ZoomIn:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
		ZoomOut:  key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "zoom out")),
		Maximize: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "maximize chart")),

		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
