package store

import (
	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/alexanderramin/ganttly/internal/tree"
)

// reduce applies one action to a state and returns the next state. It is
// pure: inputs are never mutated. The error policy for the whole machine
// is "fail silently to identity or to the nearest valid value" — unknown
// actions, missing ids, and out-of-range payloads all reduce to a valid
// state without any error channel.
func reduce(s GanttState, a Action) GanttState {
	switch a := a.(type) {

	case SetTasks:
		s.Tasks = a.Tasks
		return s

	case AddTask:
		out := make([]domain.Task, 0, len(s.Tasks)+1)
		out = append(out, s.Tasks...)
		s.Tasks = append(out, a.Task)
		return s

	case AddTaskAtPosition:
		s.Tasks = tree.InsertAt(s.Tasks, a.Task, a.Position, a.TargetID)
		return s

	case UpdateTask:
		s.Tasks = tree.Update(s.Tasks, a.ID, a.Patch)
		return s

	case DeleteTask:
		s.Tasks = tree.DeleteSubtree(s.Tasks, a.ID)
		if s.SelectedTaskID != "" && tree.Find(s.Tasks, s.SelectedTaskID) == nil {
			s.SelectedTaskID = ""
		}
		return s

	case SelectTask:
		s.SelectedTaskID = a.ID
		return s

	case ToggleTaskExpansion:
		if t := tree.Find(s.Tasks, a.ID); t != nil {
			s.Tasks = tree.Update(s.Tasks, a.ID, domain.TaskPatch{
				IsExpanded: domain.Ptr(!t.IsExpanded),
			})
		}
		return s

	case SetViewMode:
		s.ViewMode = a.Mode
		return s

	case ToggleMaximize:
		s.IsMaximized = !s.IsMaximized
		return s

	case SetZoomLevel:
		s.ZoomLevel = clampZoom(a.Level)
		return s

	case StartDrag:
		dragged := a.Task.Clone()
		s.DraggedTask = &dragged
		return s

	case EndDrag:
		s.DraggedTask = nil
		return s

	case ReorderTasks:
		// Indices address the root list as displayed. When a collaborator
		// filters its display list these index spaces diverge; see the
		// reorder session, which resolves indices before dispatching.
		s.Tasks = tree.Reorder(s.Tasks, a.Source, a.Destination)
		return s

	case MoveTaskToParent:
		s.Tasks = tree.Reparent(s.Tasks, a.ID, a.ParentID, a.Index)
		return s

	case StartResize:
		s.IsResizing = true
		s.ResizeHandle = a.Handle
		s.ResizingTaskID = a.ID
		return s

	case EndResize:
		s.IsResizing = false
		s.ResizeHandle = domain.HandleNone
		s.ResizingTaskID = ""
		return s

	case ResizeTask:
		s.Tasks = tree.Update(s.Tasks, a.ID, domain.TaskPatch{
			StartDate: domain.Ptr(a.Start),
			EndDate:   domain.Ptr(a.End),
		})
		return s
	}

	// Unknown action: no-op.
	return s
}
