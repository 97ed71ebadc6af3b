package domain

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type Status string

const (
	StatusNotStarted Status = "not-started"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusOnHold     Status = "on-hold"
)

type ViewMode string

const (
	ViewDay   ViewMode = "day"
	ViewWeek  ViewMode = "week"
	ViewMonth ViewMode = "month"
)

// InsertPosition describes where a new task lands relative to a target.
type InsertPosition string

const (
	InsertAbove   InsertPosition = "above"
	InsertBelow   InsertPosition = "below"
	InsertSubtask InsertPosition = "subtask"
)

// ResizeHandle identifies which edge of a bar an active resize gesture holds.
type ResizeHandle string

const (
	HandleNone  ResizeHandle = ""
	HandleStart ResizeHandle = "start"
	HandleEnd   ResizeHandle = "end"
)

// ValidPriorities is the canonical set of accepted priority strings.
var ValidPriorities = map[string]bool{
	"low": true, "medium": true, "high": true,
}

// ValidStatuses is the canonical set of accepted status strings.
var ValidStatuses = map[string]bool{
	"not-started": true, "in-progress": true,
	"completed": true, "on-hold": true,
}

// ValidViewModes is the canonical set of accepted view mode strings.
var ValidViewModes = map[string]bool{
	"day": true, "week": true, "month": true,
}
