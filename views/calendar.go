package views

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/ManuelReschke/QuestBoard/internal/pkg/calendar"
)

// CalendarContainerID is the id of the element the calendar fragment is written into
const CalendarContainerID = "checkInCalendar"

// CheckInCalendar renders the weekday header, the day grid and the legend.
// A nil grid renders nothing.
func CheckInCalendar(g *calendar.Grid) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if g == nil {
			return nil
		}
		_, err := io.WriteString(w, calendarMarkup(g))
		return err
	})
}

func calendarMarkup(g *calendar.Grid) string {
	var b strings.Builder

	b.WriteString(`<div class="calendar-container"><div class="calendar-grid">`)

	b.WriteString(`<div class="calendar-weekdays">`)
	for _, day := range calendar.Weekdays {
		b.WriteString(`<div class="weekday-header">`)
		b.WriteString(templ.EscapeString(day))
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)

	b.WriteString(`<div class="calendar-days-grid">`)
	for i := 0; i < g.LeadingBlanks; i++ {
		b.WriteString(`<div class="` + calendar.ClassDay + ` ` + calendar.ClassEmpty + `"></div>`)
	}
	for _, cell := range g.Cells {
		b.WriteString(`<div class="`)
		b.WriteString(templ.EscapeString(cell.Classes()))
		b.WriteString(`" title="`)
		b.WriteString(templ.EscapeString(cell.Date.Label()))
		b.WriteString(`">`)
		b.WriteString(`<div class="day-number">`)
		b.WriteString(strconv.Itoa(cell.Date.Day))
		b.WriteString(`</div>`)
		if cell.CheckedIn {
			b.WriteString(`<div class="check-mark">` + calendar.CheckMark + `</div>`)
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div></div>`)

	b.WriteString(`<div class="calendar-legend">`)
	for _, item := range calendar.Legend {
		b.WriteString(`<span class="legend-item"><span class="legend-box `)
		b.WriteString(templ.EscapeString(item.Class))
		b.WriteString(`"></span> `)
		b.WriteString(templ.EscapeString(item.Label))
		b.WriteString(`</span>`)
	}
	b.WriteString(`</div>`)

	b.WriteString(`</div>`)
	return b.String()
}
