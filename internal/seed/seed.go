// Package seed builds the demo forest the editor opens with.
package seed

import (
	"time"

	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/google/uuid"
)

// DemoForest returns a small project plan anchored on the given date:
// two phases with nested work, one milestone, and a standalone task.
// Every id is freshly generated.
func DemoForest(anchor time.Time) []domain.Task {
	base := domain.Midnight(anchor)
	d := func(offset int) time.Time { return base.AddDate(0, 0, offset) }

	design := domain.Task{
		ID:         uuid.NewString(),
		Name:       "Design Phase",
		StartDate:  d(0),
		EndDate:    d(9),
		Progress:   60,
		Color:      "#83a598",
		IsExpanded: true,
		Resources:  []string{"Dana"},
		Priority:   domain.PriorityHigh,
		Status:     domain.StatusInProgress,
	}
	wireframes := domain.Task{
		ID:        uuid.NewString(),
		Name:      "Wireframes",
		ParentID:  design.ID,
		StartDate: d(0),
		EndDate:   d(3),
		Progress:  100,
		Color:     "#8ec07c",
		Resources: []string{"Dana"},
		Priority:  domain.PriorityHigh,
		Status:    domain.StatusCompleted,
	}
	visualDesign := domain.Task{
		ID:           uuid.NewString(),
		Name:         "Visual design",
		ParentID:     design.ID,
		StartDate:    d(3),
		EndDate:      d(9),
		Progress:     40,
		Color:        "#fabd2f",
		Dependencies: []string{wireframes.ID},
		Resources:    []string{"Dana", "Noor"},
		Priority:     domain.PriorityMedium,
		Status:       domain.StatusInProgress,
	}
	design.Children = []domain.Task{wireframes, visualDesign}

	build := domain.Task{
		ID:         uuid.NewString(),
		Name:       "Build Phase",
		StartDate:  d(7),
		EndDate:    d(24),
		Progress:   10,
		Color:      "#d3869b",
		IsExpanded: true,
		Priority:   domain.PriorityHigh,
		Status:     domain.StatusNotStarted,
	}
	api := domain.Task{
		ID:        uuid.NewString(),
		Name:      "API endpoints",
		ParentID:  build.ID,
		StartDate: d(7),
		EndDate:   d(16),
		Progress:  25,
		Color:     "#83a598",
		Resources: []string{"Sam"},
		Notes:     "Blocked on schema review",
		Priority:  domain.PriorityHigh,
		Status:    domain.StatusInProgress,
	}
	frontend := domain.Task{
		ID:           uuid.NewString(),
		Name:         "Frontend screens",
		ParentID:     build.ID,
		StartDate:    d(12),
		EndDate:      d(24),
		Progress:     0,
		Color:        "#fabd2f",
		Dependencies: []string{visualDesign.ID, api.ID},
		Resources:    []string{"Noor"},
		Priority:     domain.PriorityMedium,
		Status:       domain.StatusNotStarted,
	}
	build.Children = []domain.Task{api, frontend}

	launch := domain.Task{
		ID:        uuid.NewString(),
		Name:      "Launch",
		StartDate: d(28),
		EndDate:   d(28), // milestone
		Color:     "#fb4934",
		Priority:  domain.PriorityHigh,
		Status:    domain.StatusNotStarted,
	}

	retro := domain.Task{
		ID:        uuid.NewString(),
		Name:      "Retrospective",
		StartDate: d(30),
		EndDate:   d(31),
		Color:     "#928374",
		Priority:  domain.PriorityLow,
		Status:    domain.StatusNotStarted,
	}

	return []domain.Task{design, build, launch, retro}
}
