package store

import (
	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/alexanderramin/ganttly/internal/tree"
)

// Zoom bounds; SetZoomLevel clamps silently rather than rejecting.
const (
	MinZoom = 0.5
	MaxZoom = 3.0
)

// GanttState is the complete editor state. It is a value: the reducer
// never mutates one in place, every transition returns a fresh state
// sharing untouched forest branches with its predecessor.
type GanttState struct {
	Tasks          []domain.Task
	SelectedTaskID string
	ViewMode       domain.ViewMode
	IsMaximized    bool
	ZoomLevel      float64

	// Transient gesture markers. DraggedTask is a copy of the task held
	// by an active row-reorder gesture; IsResizing/ResizeHandle/
	// ResizingTaskID are set only while a resize gesture is active.
	DraggedTask    *domain.Task
	IsResizing     bool
	ResizeHandle   domain.ResizeHandle
	ResizingTaskID string
}

// NewState returns the initial state for the given forest.
func NewState(tasks []domain.Task) GanttState {
	return GanttState{
		Tasks:     tasks,
		ViewMode:  domain.ViewDay,
		ZoomLevel: 1.0,
	}
}

// Selected returns the currently selected task, or nil.
func (s GanttState) Selected() *domain.Task {
	if s.SelectedTaskID == "" {
		return nil
	}
	return tree.Find(s.Tasks, s.SelectedTaskID)
}

func clampZoom(z float64) float64 {
	if z < MinZoom {
		return MinZoom
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}
