package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/ganttly/internal/cli/formatter"
	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/alexanderramin/ganttly/internal/store"
	"github.com/alexanderramin/ganttly/internal/timeline"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// taskFields holds the form-bound string values for the task modal. The
// form performs type coercion only — dates parsed, lists split on commas
// — and leaves semantics to the store.
type taskFields struct {
	name         string
	startDate    string
	endDate      string
	progress     string
	priority     string
	status       string
	resources    string
	dependencies string
	notes        string
}

// taskForm is the edit/add modal. When the form completes, Action()
// yields the single dispatch the collaborator owes the store.
type taskForm struct {
	form   *huh.Form
	fields *taskFields

	// Edit targets an existing task; add carries an insert position.
	editID   string
	targetID string
	position domain.InsertPosition
}

// newEditTaskForm pre-populates the modal from an existing task.
func newEditTaskForm(task domain.Task) *taskForm {
	f := &taskFields{
		name:         task.Name,
		startDate:    timeline.FormatDateISO(task.StartDate),
		endDate:      timeline.FormatDateISO(task.EndDate),
		progress:     strconv.Itoa(task.Progress),
		priority:     string(task.Priority),
		status:       string(task.Status),
		resources:    strings.Join(task.Resources, ", "),
		dependencies: strings.Join(task.Dependencies, ", "),
		notes:        task.Notes,
	}
	return &taskForm{
		form:   buildTaskForm(f, "Edit Task"),
		fields: f,
		editID: task.ID,
	}
}

// newAddTaskForm opens a blank modal for a new task. An empty targetID
// means a new root task; otherwise the task is inserted relative to the
// target. Dates default to a three-day span near the reference date.
func newAddTaskForm(targetID string, pos domain.InsertPosition, near time.Time) *taskForm {
	start := domain.Midnight(near)
	f := &taskFields{
		startDate: timeline.FormatDateISO(start),
		endDate:   timeline.FormatDateISO(start.AddDate(0, 0, 2)),
		progress:  "0",
		priority:  string(domain.PriorityMedium),
		status:    string(domain.StatusNotStarted),
	}
	return &taskForm{
		form:     buildTaskForm(f, "New Task"),
		fields:   f,
		targetID: targetID,
		position: pos,
	}
}

func (tf *taskForm) Init() tea.Cmd {
	return tf.form.Init()
}

func (tf *taskForm) Update(msg tea.Msg) tea.Cmd {
	form, cmd := tf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		tf.form = f
	}
	return cmd
}

func (tf *taskForm) View() string {
	return tf.form.View()
}

func (tf *taskForm) Completed() bool {
	return tf.form.State == huh.StateCompleted
}

// Action converts the completed form into the store dispatch it stands
// for: UpdateTask for edits, AddTask/AddTaskAtPosition for new tasks.
func (tf *taskForm) Action() store.Action {
	f := tf.fields

	if tf.editID != "" {
		patch := domain.TaskPatch{
			Name:         domain.Ptr(f.name),
			Progress:     domain.Ptr(coerceProgress(f.progress)),
			Priority:     domain.Ptr(domain.Priority(f.priority)),
			Status:       domain.Ptr(domain.Status(f.status)),
			Resources:    domain.Ptr(splitList(f.resources)),
			Dependencies: domain.Ptr(splitList(f.dependencies)),
			Notes:        domain.Ptr(f.notes),
		}
		if t, err := timeline.ParseDateISO(f.startDate); err == nil {
			patch.StartDate = domain.Ptr(t)
		}
		if t, err := timeline.ParseDateISO(f.endDate); err == nil {
			patch.EndDate = domain.Ptr(t)
		}
		return store.UpdateTask{ID: tf.editID, Patch: patch}
	}

	task := domain.Task{
		ID:           uuid.NewString(),
		Name:         f.name,
		Progress:     coerceProgress(f.progress),
		Priority:     domain.Priority(f.priority),
		Status:       domain.Status(f.status),
		Resources:    splitList(f.resources),
		Dependencies: splitList(f.dependencies),
		Notes:        f.notes,
	}
	if t, err := timeline.ParseDateISO(f.startDate); err == nil {
		task.StartDate = t
	}
	if t, err := timeline.ParseDateISO(f.endDate); err == nil {
		task.EndDate = t
	}
	if task.EndDate.Before(task.StartDate) {
		task.EndDate = task.StartDate
	}

	if tf.targetID == "" {
		return store.AddTask{Task: task}
	}
	return store.AddTaskAtPosition{Task: task, Position: tf.position, TargetID: tf.targetID}
}

func buildTaskForm(f *taskFields, title string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title(title),
			huh.NewInput().
				Title("Name").
				Value(&f.name).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Start Date (YYYY-MM-DD)").
				Placeholder("2025-06-01").
				Value(&f.startDate).
				Validate(validateDate),
			huh.NewInput().
				Title("End Date (YYYY-MM-DD)").
				Placeholder("2025-06-15").
				Value(&f.endDate).
				Validate(validateDate),
			huh.NewInput().
				Title("Progress (0-100)").
				Placeholder("0").
				Value(&f.progress).
				Validate(validateProgress),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("Low", "low"),
					huh.NewOption("Medium", "medium"),
					huh.NewOption("High", "high"),
				).
				Value(&f.priority),
			huh.NewSelect[string]().
				Title("Status").
				Options(
					huh.NewOption("Not started", "not-started"),
					huh.NewOption("In progress", "in-progress"),
					huh.NewOption("Completed", "completed"),
					huh.NewOption("On hold", "on-hold"),
				).
				Value(&f.status),
			huh.NewInput().
				Title("Resources (comma separated)").
				Placeholder("alice, bob").
				Value(&f.resources),
			huh.NewInput().
				Title("Depends on (comma separated task ids)").
				Value(&f.dependencies),
			huh.NewInput().
				Title("Notes").
				Value(&f.notes),
		),
	).WithTheme(ganttlyHuhTheme()).WithShowHelp(false)
}

func validateDate(s string) error {
	if _, err := timeline.ParseDateISO(s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

func validateProgress(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 || n > 100 {
		return fmt.Errorf("enter a number from 0 to 100")
	}
	return nil
}

func coerceProgress(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

// splitList coerces "a, b , c" into {"a","b","c"}, dropping empties.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func ganttlyHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}
