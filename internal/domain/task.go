package domain

import "time"

// Task is a node in the schedule forest. A parent exclusively owns its
// Children: deleting a parent deletes the entire subtree.
type Task struct {
	ID   string
	Name string

	// Calendar dates at UTC midnight; StartDate <= EndDate always holds.
	// A milestone has StartDate == EndDate.
	StartDate time.Time
	EndDate   time.Time

	Progress int    // 0-100
	Color    string // display hint only
	Order    int    // advisory sibling key; slice order is authoritative

	// ParentID is "" for roots. It mirrors structural containment and is
	// maintained by the tree mutation helpers; the Children slices remain
	// the source of truth.
	ParentID string
	Children []Task

	IsExpanded bool

	// Dependencies are informational task id tags. They are never
	// validated or enforced: no cycle detection, no scheduling constraint.
	Dependencies []string
	Resources    []string
	Notes        string

	Priority Priority
	Status   Status
}

// IsMilestone reports whether the task spans a single day.
func (t Task) IsMilestone() bool {
	return t.StartDate.Equal(t.EndDate)
}

// HasChildren reports whether the task owns any subtasks.
func (t Task) HasChildren() bool {
	return len(t.Children) > 0
}

// Clone returns a deep copy of the task and its subtree. Slices are
// copied so the result shares no mutable structure with the receiver.
func (t Task) Clone() Task {
	c := t
	if t.Dependencies != nil {
		c.Dependencies = append([]string(nil), t.Dependencies...)
	}
	if t.Resources != nil {
		c.Resources = append([]string(nil), t.Resources...)
	}
	if t.Children != nil {
		c.Children = make([]Task, len(t.Children))
		for i, child := range t.Children {
			c.Children[i] = child.Clone()
		}
	}
	return c
}

// Date truncates a timestamp to a UTC calendar date. All task dates pass
// through here so day arithmetic never sees a time-of-day component.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Midnight normalizes an arbitrary timestamp to its UTC calendar date.
func Midnight(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
