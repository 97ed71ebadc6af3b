package store

import (
	"time"

	"github.com/alexanderramin/ganttly/internal/domain"
)

// Action is the closed vocabulary of state transitions. Each concrete
// action carries its own payload; the reducer ignores anything else.
type Action interface {
	isAction()
}

// SetTasks replaces the forest wholesale.
type SetTasks struct {
	Tasks []domain.Task
}

// AddTask appends a task as a new root.
type AddTask struct {
	Task domain.Task
}

// AddTaskAtPosition inserts relative to a target id: above/below as a
// sibling, subtask as the target's new last child.
type AddTaskAtPosition struct {
	Task     domain.Task
	Position domain.InsertPosition
	TargetID string
}

// UpdateTask merges a partial field set into the task matching ID,
// anywhere in the forest.
type UpdateTask struct {
	ID    string
	Patch domain.TaskPatch
}

// DeleteTask removes the task matching ID and its entire subtree.
type DeleteTask struct {
	ID string
}

// SelectTask sets the selection; an empty ID clears it.
type SelectTask struct {
	ID string
}

// ToggleTaskExpansion flips IsExpanded on the matching task.
type ToggleTaskExpansion struct {
	ID string
}

// SetViewMode switches the timeline granularity.
type SetViewMode struct {
	Mode domain.ViewMode
}

// ToggleMaximize flips the maximized flag.
type ToggleMaximize struct{}

// SetZoomLevel sets the zoom factor, clamped to [MinZoom, MaxZoom].
type SetZoomLevel struct {
	Level float64
}

// StartDrag marks a row-reorder gesture as active, carrying a copy of
// the dragged task.
type StartDrag struct {
	Task domain.Task
}

// EndDrag clears the reorder gesture marker.
type EndDrag struct{}

// ReorderTasks moves the root-level entry at Source to Destination.
type ReorderTasks struct {
	Source      int
	Destination int
}

// MoveTaskToParent re-parents a task under ParentID ("" for root) at the
// given child index.
type MoveTaskToParent struct {
	ID       string
	ParentID string
	Index    int
}

// StartResize enters resize mode, recording the active task and handle.
type StartResize struct {
	ID     string
	Handle domain.ResizeHandle
}

// EndResize leaves resize mode.
type EndResize struct{}

// ResizeTask applies a new start/end pair to a task.
type ResizeTask struct {
	ID    string
	Start time.Time
	End   time.Time
}

func (SetTasks) isAction()            {}
func (AddTask) isAction()             {}
func (AddTaskAtPosition) isAction()   {}
func (UpdateTask) isAction()          {}
func (DeleteTask) isAction()          {}
func (SelectTask) isAction()          {}
func (ToggleTaskExpansion) isAction() {}
func (SetViewMode) isAction()         {}
func (ToggleMaximize) isAction()      {}
func (SetZoomLevel) isAction()        {}
func (StartDrag) isAction()           {}
func (EndDrag) isAction()             {}
func (ReorderTasks) isAction()        {}
func (MoveTaskToParent) isAction()    {}
func (StartResize) isAction()         {}
func (EndResize) isAction()           {}
func (ResizeTask) isAction()          {}
