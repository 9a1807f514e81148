package calendar

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate is returned when year/month/day do not form a real calendar date
var ErrInvalidDate = errors.New("invalid calendar date")

const (
	labelLayout = "02/01/2006"
	isoLayout   = "2006-01-02"
)

// Date is a calendar date without time of day
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate validates and builds a Date. Feb 30 and friends are rejected
// instead of being rolled over into the next month.
func NewDate(year int, month time.Month, day int) (Date, error) {
	if month < time.January || month > time.December || day < 1 || day > 31 {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != month {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// MustDate is NewDate for constants and tests
func MustDate(year int, month time.Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// FromTime drops the clock of t, keeping the date as seen in t's location
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseISO parses a YYYY-MM-DD string
func ParseISO(s string) (Date, error) {
	t, err := time.Parse(isoLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return FromTime(t), nil
}

// Time returns midnight UTC of the date
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// In returns midnight of the date in loc
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

func (d Date) After(o Date) bool {
	return o.Before(d)
}

// AddDays moves the date by n days, n may be negative
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// DaysUntil returns the number of days from d to o (negative if o is earlier)
func (d Date) DaysUntil(o Date) int {
	return int(o.Time().Sub(d.Time()).Hours() / 24)
}

func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// MondayIndex is the zero-based column of the date in a Monday-first week
func (d Date) MondayIndex() int {
	return (int(d.Weekday()) + 6) % 7
}

// SameWeek reports whether both dates fall into the same Monday-first ISO week
func (d Date) SameWeek(o Date) bool {
	y1, w1 := d.Time().ISOWeek()
	y2, w2 := o.Time().ISOWeek()
	return y1 == y2 && w1 == w2
}

// Label formats the date as dd/mm/yyyy
func (d Date) Label() string {
	return d.Time().Format(labelLayout)
}

// String formats the date as YYYY-MM-DD
func (d Date) String() string {
	return d.Time().Format(isoLayout)
}
