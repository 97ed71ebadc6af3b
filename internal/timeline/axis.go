package timeline

import (
	"math"
	"strconv"
	"time"

	"github.com/alexanderramin/ganttly/internal/domain"
)

// BaseDayWidthFor returns the unzoomed pixels-per-day for a view mode.
// Day mode gives each day room for a label, month mode compresses a month
// into roughly the same span.
func BaseDayWidthFor(mode domain.ViewMode) float64 {
	switch mode {
	case domain.ViewWeek:
		return 2
	case domain.ViewMonth:
		return 0.75
	default:
		return 6
	}
}

// Axis renders the two chart header rows for a horizon of width pixels
// starting at the scale origin: month labels on top, mode-dependent tick
// labels below.
func (s Scale) Axis(mode domain.ViewMode, width int) (months, ticks string) {
	if width <= 0 {
		return "", ""
	}
	top := blankRow(width)
	bottom := blankRow(width)

	edw := s.EffectiveDayWidth()
	horizon := int(math.Ceil(float64(width)/edw)) + 1
	origin := domain.Midnight(s.Origin)

	topEnd, bottomEnd := -1, -1
	for d := 0; d < horizon; d++ {
		date := origin.AddDate(0, 0, d)
		x := int(math.Round(float64(d) * edw))
		if x >= width {
			break
		}

		if d == 0 || date.Day() == 1 {
			topEnd = place(top, x, topEnd, date.Format("Jan 2006"))
		}

		if tickAt(mode, date, edw) {
			bottomEnd = place(bottom, x, bottomEnd, strconv.Itoa(date.Day()))
		}
	}
	return string(top), string(bottom)
}

// tickAt decides whether a date gets a tick label in the bottom axis row.
func tickAt(mode domain.ViewMode, date time.Time, edw float64) bool {
	switch mode {
	case domain.ViewWeek:
		return date.Weekday() == time.Monday
	case domain.ViewMonth:
		return date.Day() == 1 || date.Day() == 15
	default:
		// Thin out day labels once zoom squeezes them together.
		step := 1
		if edw < 3 {
			step = int(math.Ceil(3 / edw))
		}
		return (date.Day()-1)%step == 0
	}
}

func blankRow(width int) []rune {
	row := make([]rune, width)
	for i := range row {
		row[i] = ' '
	}
	return row
}

// place writes label into row at x unless it would collide with the
// previous label; returns the new high-water mark.
func place(row []rune, x, lastEnd int, label string) int {
	if x <= lastEnd {
		return lastEnd
	}
	for i, r := range label {
		if x+i >= len(row) {
			return len(row)
		}
		row[x+i] = r
	}
	return x + len(label)
}

// FormatDate renders a calendar date the way the table and detail pane
// display it.
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// FormatDateISO renders a date in the YYYY-MM-DD form the edit form uses.
func FormatDateISO(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseDateISO parses a YYYY-MM-DD string to a UTC calendar date.
func ParseDateISO(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
