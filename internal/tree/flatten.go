package tree

import "github.com/alexanderramin/ganttly/internal/domain"

// Row is one visible line of the task table: a task plus its depth in the
// forest, in display order.
type Row struct {
	Task  domain.Task
	Depth int
}

// Flatten returns the display rows for the forest in pre-order. Children
// of collapsed nodes are skipped; this is the index space the view and
// the reorder gesture both work in.
func Flatten(forest []domain.Task) []Row {
	var rows []Row
	var walk func(tasks []domain.Task, depth int)
	walk = func(tasks []domain.Task, depth int) {
		for _, t := range tasks {
			rows = append(rows, Row{Task: t, Depth: depth})
			if t.IsExpanded && len(t.Children) > 0 {
				walk(t.Children, depth+1)
			}
		}
	}
	walk(forest, 0)
	return rows
}

// Count returns the total number of nodes in the forest, expanded or not.
func Count(forest []domain.Task) int {
	n := 0
	for _, t := range forest {
		n += 1 + Count(t.Children)
	}
	return n
}
