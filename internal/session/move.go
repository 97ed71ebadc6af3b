package session

import (
	"time"

	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/alexanderramin/ganttly/internal/store"
	"github.com/alexanderramin/ganttly/internal/timeline"
)

// MoveSession drags a task bar along the time axis. Every pointer move
// shifts both dates by the whole-day delta from the pointer-down
// position; each intermediate dispatch is already a valid state, so
// releasing needs no commit step.
type MoveSession struct {
	store  *store.Store
	scale  timeline.Scale
	taskID string

	anchorStart time.Time
	anchorEnd   time.Time
	originX     int
	curDelta    int
	done        bool
}

// StartMove begins a move gesture on the given task at pointer position
// originX. Returns nil if the task does not exist.
func StartMove(st *store.Store, scale timeline.Scale, taskID string, originX int) *MoveSession {
	anchor, ok := snapshot(st.State().Tasks, taskID)
	if !ok {
		return nil
	}
	return &MoveSession{
		store:       st,
		scale:       scale,
		taskID:      taskID,
		anchorStart: anchor.StartDate,
		anchorEnd:   anchor.EndDate,
		originX:     originX,
	}
}

// PointerMove handles a pointer position update at absolute x.
func (m *MoveSession) PointerMove(x int) {
	m.applyDelta(m.scale.DaysDelta(float64(x - m.originX)))
}

// Nudge shifts the gesture by whole days, for keyboard-driven moves.
func (m *MoveSession) Nudge(days int) {
	m.applyDelta(m.curDelta + days)
}

func (m *MoveSession) applyDelta(days int) {
	if m.done {
		return
	}
	m.curDelta = days
	if days == 0 {
		return
	}
	m.store.Dispatch(store.UpdateTask{
		ID: m.taskID,
		Patch: domain.TaskPatch{
			StartDate: domain.Ptr(m.anchorStart.AddDate(0, 0, days)),
			EndDate:   domain.Ptr(m.anchorEnd.AddDate(0, 0, days)),
		},
	})
}

// Release ends the gesture, discarding the anchor.
func (m *MoveSession) Release() {
	m.done = true
}

// Cancel abandons the gesture, restoring the anchor dates.
func (m *MoveSession) Cancel() {
	if m.done {
		return
	}
	m.store.Dispatch(store.UpdateTask{
		ID: m.taskID,
		Patch: domain.TaskPatch{
			StartDate: domain.Ptr(m.anchorStart),
			EndDate:   domain.Ptr(m.anchorEnd),
		},
	})
	m.done = true
}

// Active reports whether the session still accepts input.
func (m *MoveSession) Active() bool {
	return m != nil && !m.done
}

// TaskID returns the task this session is moving.
func (m *MoveSession) TaskID() string {
	return m.taskID
}
