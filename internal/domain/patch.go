package domain

import "time"

// TaskPatch is a partial field set merged into an existing task. A nil
// pointer leaves the corresponding field unchanged. Structural fields
// (ID, ParentID, Children) are owned by the tree helpers and cannot be
// patched here.
type TaskPatch struct {
	Name         *string
	StartDate    *time.Time
	EndDate      *time.Time
	Progress     *int
	Color        *string
	Order        *int
	IsExpanded   *bool
	Dependencies *[]string
	Resources    *[]string
	Notes        *string
	Priority     *Priority
	Status       *Status
}

// IsZero reports whether the patch changes nothing.
func (p TaskPatch) IsZero() bool {
	return p == TaskPatch{}
}

// Apply returns a copy of t with every non-nil patch field merged in.
// The input task is not modified.
func (p TaskPatch) Apply(t Task) Task {
	out := t
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.StartDate != nil {
		out.StartDate = Midnight(*p.StartDate)
	}
	if p.EndDate != nil {
		out.EndDate = Midnight(*p.EndDate)
	}
	if p.Progress != nil {
		out.Progress = *p.Progress
	}
	if p.Color != nil {
		out.Color = *p.Color
	}
	if p.Order != nil {
		out.Order = *p.Order
	}
	if p.IsExpanded != nil {
		out.IsExpanded = *p.IsExpanded
	}
	if p.Dependencies != nil {
		out.Dependencies = append([]string(nil), *p.Dependencies...)
	}
	if p.Resources != nil {
		out.Resources = append([]string(nil), *p.Resources...)
	}
	if p.Notes != nil {
		out.Notes = *p.Notes
	}
	if p.Priority != nil {
		out.Priority = *p.Priority
	}
	if p.Status != nil {
		out.Status = *p.Status
	}
	return out
}

// Ptr returns a pointer to v, for building patches inline.
func Ptr[T any](v T) *T {
	return &v
}
