package session

import "github.com/alexanderramin/ganttly/internal/store"

// ReorderSession drags a root-level row to a new position. The gesture is
// bracketed by StartDrag/EndDrag. Rows are tracked by task id rather than
// raw index: the displayed list a collaborator renders may be filtered,
// so indices are resolved against the unfiltered root list only at drop
// time. This closes the index-space mismatch that raw display indices
// would smuggle into ReorderTasks.
type ReorderSession struct {
	store    *store.Store
	sourceID string
	targetID string
	done     bool
}

// StartReorder begins a row-reorder gesture on the root task with the
// given id. Returns nil if the id is not a root entry — nested rows
// reorder through MoveTaskToParent instead.
func StartReorder(st *store.Store, taskID string) *ReorderSession {
	tasks := st.State().Tasks
	idx := rootIndex(tasks, taskID)
	if idx < 0 {
		return nil
	}
	st.Dispatch(store.StartDrag{Task: tasks[idx]})
	return &ReorderSession{store: st, sourceID: taskID, targetID: taskID}
}

// DragOver records the root row currently under the pointer. Unknown ids
// leave the target unchanged.
func (r *ReorderSession) DragOver(taskID string) {
	if r.done {
		return
	}
	if rootIndex(r.store.State().Tasks, taskID) >= 0 {
		r.targetID = taskID
	}
}

// TargetID returns the row the drop would land on, for hover feedback.
func (r *ReorderSession) TargetID() string {
	return r.targetID
}

// Drop dispatches the reorder at the current target and ends the gesture.
func (r *ReorderSession) Drop() {
	if r.done {
		return
	}
	r.done = true

	tasks := r.store.State().Tasks
	src := rootIndex(tasks, r.sourceID)
	dst := rootIndex(tasks, r.targetID)
	if src >= 0 && dst >= 0 && src != dst {
		r.store.Dispatch(store.ReorderTasks{Source: src, Destination: dst})
	}
	r.store.Dispatch(store.EndDrag{})
}

// Cancel abandons the gesture without reordering.
func (r *ReorderSession) Cancel() {
	if r.done {
		return
	}
	r.done = true
	r.store.Dispatch(store.EndDrag{})
}

// Active reports whether the session still accepts input.
func (r *ReorderSession) Active() bool {
	return r != nil && !r.done
}
