// Package timeline maps calendar dates to pixel geometry and back.
// Everything here is pure: a Scale value plus task dates in, positions
// out. The interaction sessions use the inverse mapping to turn pointer
// movement into whole-day deltas.
package timeline

import (
	"math"
	"time"

	"github.com/alexanderramin/ganttly/internal/domain"
)

// BarGutter is the fixed pixel inset between adjacent bars.
const BarGutter = 2.0

// Scale parameterizes all geometry: the date at pixel zero, the width of
// one day at zoom 1.0, and the current zoom factor.
type Scale struct {
	Origin       time.Time
	BaseDayWidth float64
	Zoom         float64
}

// EffectiveDayWidth is the pixels-per-day value at the current zoom.
func (s Scale) EffectiveDayWidth() float64 {
	return s.BaseDayWidth * s.Zoom
}

// BarPosition is a bar's horizontal placement in pixels.
type BarPosition struct {
	Left  float64
	Width float64
}

// DaysBetween returns the whole-day difference b − a, comparing calendar
// dates so time-of-day components never skew the count.
func DaysBetween(a, b time.Time) int {
	return int(domain.Midnight(b).Sub(domain.Midnight(a)).Hours() / 24)
}

// Duration is the inclusive day span of (start, end): a same-day task has
// duration 1. Never less than 1.
func Duration(start, end time.Time) int {
	d := DaysBetween(start, end) + 1
	if d < 1 {
		return 1
	}
	return d
}

// Position computes the bar placement for a task. Tasks starting before
// the origin are pinned to the left edge. The width floor of half a day
// keeps milestones visible and clickable at any zoom level.
func (s Scale) Position(task domain.Task) BarPosition {
	edw := s.EffectiveDayWidth()

	offset := DaysBetween(s.Origin, task.StartDate)
	if offset < 0 {
		offset = 0
	}

	width := float64(Duration(task.StartDate, task.EndDate))*edw - BarGutter
	if floor := 0.5 * edw; width < floor {
		width = floor
	}

	return BarPosition{
		Left:  float64(offset) * edw,
		Width: width,
	}
}

// DaysDelta converts a horizontal pixel delta into whole days. Rounding
// rather than truncating so sub-day jitter cannot suppress a full-day
// shift once the pointer crosses the half-day mark.
func (s Scale) DaysDelta(pixelDeltaX float64) int {
	return int(math.Round(pixelDeltaX / s.EffectiveDayWidth()))
}

// DateAt returns the calendar date under the given x pixel offset.
func (s Scale) DateAt(x float64) time.Time {
	return domain.Midnight(s.Origin).AddDate(0, 0, int(math.Floor(x/s.EffectiveDayWidth())))
}
