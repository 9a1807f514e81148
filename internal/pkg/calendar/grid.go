package calendar

import "strings"

// Weekdays are the fixed column headers of the grid, Monday first
var Weekdays = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// CSS classes shared by the grid cells and the legend
const (
	ClassDay       = "calendar-day"
	ClassEmpty     = "empty"
	ClassCheckedIn = "checked-in"
	ClassToday     = "today"
	ClassMissed    = "missed"
)

// CheckMark is shown inside checked-in cells
const CheckMark = "✓"

// Cell is one day of the grid
type Cell struct {
	Date      Date
	CheckedIn bool
	Today     bool
	Past      bool
}

// Missed is a display flag only: a past day without check-in. Today is never missed.
func (c Cell) Missed() bool {
	return c.Past && !c.CheckedIn
}

// Classes returns the CSS class list of the cell
func (c Cell) Classes() string {
	classes := []string{ClassDay}
	if c.CheckedIn {
		classes = append(classes, ClassCheckedIn)
	}
	if c.Today {
		classes = append(classes, ClassToday)
	}
	if c.Missed() {
		classes = append(classes, ClassMissed)
	}
	return strings.Join(classes, " ")
}

// LegendItem maps a visual class to its meaning
type LegendItem struct {
	Class string
	Label string
}

// Legend is the static legend below the grid
var Legend = [3]LegendItem{
	{Class: ClassCheckedIn, Label: "Checked In"},
	{Class: ClassToday, Label: "Today"},
	{Class: ClassMissed, Label: "Missed"},
}

// Grid is the computed calendar for one range. It owns no state beyond the
// inputs it was built from.
type Grid struct {
	Range         Range
	Today         Date
	LeadingBlanks int
	Cells         []Cell
}

// LeadingBlanks is the number of placeholders before start in a Monday-first week
func LeadingBlanks(start Date) int {
	return start.MondayIndex()
}

// Build computes the grid for r. Duplicate check-ins collapse and order does
// not matter. An invalid range yields ErrInvalidRange and no grid.
func Build(r Range, checkIns []Date, today Date) (*Grid, error) {
	if !r.Valid() {
		return nil, ErrInvalidRange
	}

	checked := make(map[Date]struct{}, len(checkIns))
	for _, d := range checkIns {
		checked[d] = struct{}{}
	}

	g := &Grid{
		Range:         r,
		Today:         today,
		LeadingBlanks: LeadingBlanks(r.Start),
		Cells:         make([]Cell, 0, r.Days()),
	}
	r.Each(func(d Date) {
		_, ok := checked[d]
		g.Cells = append(g.Cells, Cell{
			Date:      d,
			CheckedIn: ok,
			Today:     d == today,
			Past:      d.Before(today),
		})
	})
	return g, nil
}

// CheckedInCount returns how many cells are checked in
func (g *Grid) CheckedInCount() int {
	n := 0
	for _, c := range g.Cells {
		if c.CheckedIn {
			n++
		}
	}
	return n
}

// MissedCount returns how many cells are missed
func (g *Grid) MissedCount() int {
	n := 0
	for _, c := range g.Cells {
		if c.Missed() {
			n++
		}
	}
	return n
}
