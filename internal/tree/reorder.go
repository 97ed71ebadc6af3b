package tree

import "github.com/alexanderramin/ganttly/internal/domain"

// Reorder moves the root-level entry at source to destination: a splice
// remove followed by a splice insert, so the element ends up exactly at
// the destination index of the resulting list. Out-of-range indices
// return the forest unchanged.
func Reorder(forest []domain.Task, source, destination int) []domain.Task {
	if source < 0 || source >= len(forest) ||
		destination < 0 || destination >= len(forest) ||
		source == destination {
		return forest
	}
	moved := forest[source]
	out := make([]domain.Task, 0, len(forest))
	out = append(out, forest[:source]...)
	out = append(out, forest[source+1:]...)
	return spliceIn(out, destination, moved)
}

// Reparent detaches the task with the given id and reattaches it under
// newParentID at the given child index ("" reattaches at root level).
// Identity checks only: reparenting a task to itself or into its own
// subtree returns the forest unchanged, as does a missing task or parent.
// The moved task's ParentID is rewritten to match its new container.
func Reparent(forest []domain.Task, id, newParentID string, index int) []domain.Task {
	if id == "" || id == newParentID {
		return forest
	}
	node := Find(forest, id)
	if node == nil {
		return forest
	}
	if newParentID != "" && Find(node.Children, newParentID) != nil {
		return forest
	}

	moved := node.Clone()
	remaining := DeleteSubtree(forest, id)

	if newParentID == "" {
		moved.ParentID = ""
		return spliceIn(remaining, clampIndex(index, len(remaining)), moved)
	}

	if Find(remaining, newParentID) == nil {
		return forest
	}
	moved.ParentID = newParentID
	out, _ := attachChild(remaining, newParentID, moved, index)
	return out
}

func attachChild(forest []domain.Task, parentID string, child domain.Task, index int) ([]domain.Task, bool) {
	for i, t := range forest {
		if t.ID == parentID {
			node := t
			node.Children = spliceIn(t.Children, clampIndex(index, len(t.Children)), child)
			out := append([]domain.Task(nil), forest...)
			out[i] = node
			return out, true
		}
		if len(t.Children) == 0 {
			continue
		}
		if kids, ok := attachChild(t.Children, parentID, child, index); ok {
			out := append([]domain.Task(nil), forest...)
			node := t
			node.Children = kids
			out[i] = node
			return out, true
		}
	}
	return forest, false
}

func clampIndex(i, length int) int {
	if i < 0 {
		return 0
	}
	if i > length {
		return length
	}
	return i
}
