package formatter

import (
	"strings"
	"testing"

	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStatusColor(t *testing.T) {
	tests := []struct {
		status domain.Status
		want   lipgloss.Style
	}{
		{domain.StatusCompleted, StyleGreen},
		{domain.StatusInProgress, StyleBlue},
		{domain.StatusOnHold, StyleYellow},
		{domain.StatusNotStarted, StyleDim},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusColor(tt.status), string(tt.status))
	}
}

func TestPriorityColor(t *testing.T) {
	assert.Equal(t, StyleRed, PriorityColor(domain.PriorityHigh))
	assert.Equal(t, StyleYellow, PriorityColor(domain.PriorityMedium))
	assert.Equal(t, StyleGreen, PriorityColor(domain.PriorityLow))
}

func TestBar_FillReflectsProgress(t *testing.T) {
	task := domain.Task{Progress: 50, Status: domain.StatusInProgress}

	bar := Bar(task, 10, false)

	assert.Equal(t, 5, strings.Count(bar, string(barFilled)))
	assert.Equal(t, 5, strings.Count(bar, string(barEmpty)))
}

func TestBar_MinimumWidth(t *testing.T) {
	bar := Bar(domain.Task{}, 0, false)

	assert.Equal(t, 1, strings.Count(bar, string(barEmpty)))
}

func TestMilestone(t *testing.T) {
	m := Milestone(domain.Task{Status: domain.StatusNotStarted}, false)

	assert.Contains(t, m, "◆")
}

func TestProgressCell(t *testing.T) {
	assert.Contains(t, ProgressCell(100), "100%")
	assert.Contains(t, ProgressCell(42), " 42%")
	assert.Contains(t, ProgressCell(0), "0%")
}
