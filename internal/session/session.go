// Package session holds the transient gesture controllers that sit above
// the store. Each controller snapshots its task's fields at gesture start
// (the anchor) and recomputes every delta from the original pointer-down
// position, never incrementally, so long gestures accumulate no drift.
//
// Sessions are mutually exclusive by collaborator discipline: the view
// starts a gesture only when no other session is active. The store does
// not enforce this.
package session

import (
	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/alexanderramin/ganttly/internal/tree"
)

// rootIndex returns the position of the given id in the root list, or -1.
func rootIndex(forest []domain.Task, id string) int {
	for i, t := range forest {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// snapshot captures the anchor dates for a task, reporting whether the
// task exists.
func snapshot(forest []domain.Task, id string) (domain.Task, bool) {
	t := tree.Find(forest, id)
	if t == nil {
		return domain.Task{}, false
	}
	return *t, true
}
