package session

import (
	"time"

	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/alexanderramin/ganttly/internal/store"
	"github.com/alexanderramin/ganttly/internal/timeline"
)

// ResizeSession drags one edge of a task bar. The whole gesture is
// bracketed by StartResize/EndResize so the state records which handle is
// live. Proposed dates are clamped against the anchor so the interval
// keeps a strict minimum one-day span no matter what delta sequence the
// pointer produces.
type ResizeSession struct {
	store  *store.Store
	scale  timeline.Scale
	taskID string
	handle domain.ResizeHandle

	anchorStart time.Time
	anchorEnd   time.Time
	originX     int
	curDelta    int
	done        bool
}

// StartResize begins a resize gesture on the given handle of a task.
// Returns nil if the task does not exist or the handle is empty.
func StartResize(st *store.Store, scale timeline.Scale, taskID string, handle domain.ResizeHandle, originX int) *ResizeSession {
	if handle != domain.HandleStart && handle != domain.HandleEnd {
		return nil
	}
	anchor, ok := snapshot(st.State().Tasks, taskID)
	if !ok {
		return nil
	}
	st.Dispatch(store.StartResize{ID: taskID, Handle: handle})
	return &ResizeSession{
		store:       st,
		scale:       scale,
		taskID:      taskID,
		handle:      handle,
		anchorStart: anchor.StartDate,
		anchorEnd:   anchor.EndDate,
		originX:     originX,
	}
}

// PointerMove handles a pointer position update at absolute x.
func (r *ResizeSession) PointerMove(x int) {
	r.applyDelta(r.scale.DaysDelta(float64(x - r.originX)))
}

// Nudge grows or shrinks the active edge by whole days, for
// keyboard-driven resizes.
func (r *ResizeSession) Nudge(days int) {
	r.applyDelta(r.curDelta + days)
}

func (r *ResizeSession) applyDelta(days int) {
	if r.done {
		return
	}
	r.curDelta = days

	newStart, newEnd := r.anchorStart, r.anchorEnd
	if r.handle == domain.HandleStart {
		newStart = r.anchorStart.AddDate(0, 0, days)
		// The start edge may never reach or pass the anchored end.
		if !newStart.Before(r.anchorEnd) {
			newStart = r.anchorEnd.AddDate(0, 0, -1)
		}
	} else {
		newEnd = r.anchorEnd.AddDate(0, 0, days)
		if !newEnd.After(r.anchorStart) {
			newEnd = r.anchorStart.AddDate(0, 0, 1)
		}
	}

	r.store.Dispatch(store.ResizeTask{ID: r.taskID, Start: newStart, End: newEnd})
}

// Release ends the gesture, leaving the last applied dates in place.
func (r *ResizeSession) Release() {
	if r.done {
		return
	}
	r.done = true
	r.store.Dispatch(store.EndResize{})
}

// Cancel abandons the gesture, restoring the anchor dates.
func (r *ResizeSession) Cancel() {
	if r.done {
		return
	}
	r.store.Dispatch(store.ResizeTask{ID: r.taskID, Start: r.anchorStart, End: r.anchorEnd})
	r.done = true
	r.store.Dispatch(store.EndResize{})
}

// Active reports whether the session still accepts input.
func (r *ResizeSession) Active() bool {
	return r != nil && !r.done
}

// Handle returns the edge this session is dragging.
func (r *ResizeSession) Handle() domain.ResizeHandle {
	return r.handle
}

// TaskID returns the task this session is resizing.
func (r *ResizeSession) TaskID() string {
	return r.taskID
}
