// Package tree implements the recursive primitives over the task forest.
//
// Every operation is a depth-first, pre-order traversal keyed by task id.
// Ids are globally unique, so the first match wins and traversal stops at
// that call frame. No operation mutates its input: a mutation rebuilds the
// path from root to the touched node and shares every untouched subtree,
// so callers can hand old snapshots to observers safely. An operation
// targeting an id that is not in the forest returns the input unchanged.
package tree

import "github.com/alexanderramin/ganttly/internal/domain"

// Find returns the task with the given id, or nil. The returned pointer
// aliases the forest and must be treated as read-only.
func Find(forest []domain.Task, id string) *domain.Task {
	for i := range forest {
		if forest[i].ID == id {
			return &forest[i]
		}
		if match := Find(forest[i].Children, id); match != nil {
			return match
		}
	}
	return nil
}

// Update merges patch into the task with the given id and returns the new
// forest. Only the path from root to the match is reallocated.
func Update(forest []domain.Task, id string, patch domain.TaskPatch) []domain.Task {
	out, _ := update(forest, id, patch)
	return out
}

func update(forest []domain.Task, id string, patch domain.TaskPatch) ([]domain.Task, bool) {
	for i, t := range forest {
		if t.ID == id {
			out := append([]domain.Task(nil), forest...)
			out[i] = patch.Apply(t)
			return out, true
		}
		if len(t.Children) == 0 {
			continue
		}
		if kids, ok := update(t.Children, id, patch); ok {
			out := append([]domain.Task(nil), forest...)
			node := t
			node.Children = kids
			out[i] = node
			return out, true
		}
	}
	return forest, false
}

// InsertAt places task relative to the target id: above/below splice it
// into whatever sibling list currently contains the target, subtask
// appends it as the target's last child and expands the target so the new
// row is visible.
func InsertAt(forest []domain.Task, task domain.Task, pos domain.InsertPosition, targetID string) []domain.Task {
	out, _ := insertAt(forest, task, pos, targetID)
	return out
}

func insertAt(forest []domain.Task, task domain.Task, pos domain.InsertPosition, targetID string) ([]domain.Task, bool) {
	for i, t := range forest {
		if t.ID == targetID {
			switch pos {
			case domain.InsertSubtask:
				child := task
				child.ParentID = t.ID
				node := t
				node.Children = append(append([]domain.Task(nil), t.Children...), child)
				node.IsExpanded = true
				out := append([]domain.Task(nil), forest...)
				out[i] = node
				return out, true
			case domain.InsertAbove:
				sibling := task
				sibling.ParentID = t.ParentID
				return spliceIn(forest, i, sibling), true
			case domain.InsertBelow:
				sibling := task
				sibling.ParentID = t.ParentID
				return spliceIn(forest, i+1, sibling), true
			default:
				return forest, false
			}
		}
		if len(t.Children) == 0 {
			continue
		}
		if kids, ok := insertAt(t.Children, task, pos, targetID); ok {
			out := append([]domain.Task(nil), forest...)
			node := t
			node.Children = kids
			out[i] = node
			return out, true
		}
	}
	return forest, false
}

// DeleteSubtree removes the task with the given id and its entire subtree.
func DeleteSubtree(forest []domain.Task, id string) []domain.Task {
	out, _ := deleteSubtree(forest, id)
	return out
}

func deleteSubtree(forest []domain.Task, id string) ([]domain.Task, bool) {
	for i, t := range forest {
		if t.ID == id {
			out := make([]domain.Task, 0, len(forest)-1)
			out = append(out, forest[:i]...)
			out = append(out, forest[i+1:]...)
			return out, true
		}
		if len(t.Children) == 0 {
			continue
		}
		if kids, ok := deleteSubtree(t.Children, id); ok {
			out := append([]domain.Task(nil), forest...)
			node := t
			node.Children = kids
			out[i] = node
			return out, true
		}
	}
	return forest, false
}

// spliceIn returns a copy of list with task inserted at index i.
func spliceIn(list []domain.Task, i int, task domain.Task) []domain.Task {
	out := make([]domain.Task, 0, len(list)+1)
	out = append(out, list[:i]...)
	out = append(out, task)
	out = append(out, list[i:]...)
	return out
}
