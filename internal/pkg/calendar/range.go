package calendar

import (
	"errors"
	"fmt"
)

// ErrInvalidRange is returned for a range whose start lies after its end
var ErrInvalidRange = errors.New("invalid date range")

// Range is an inclusive span of calendar dates
type Range struct {
	Start Date
	End   Date
}

// NewRange builds a range and enforces start <= end
func NewRange(start, end Date) (Range, error) {
	r := Range{Start: start, End: end}
	if !r.Valid() {
		return Range{}, fmt.Errorf("%w: %s > %s", ErrInvalidRange, start, end)
	}
	return r, nil
}

// Valid reports whether both ends are set and start <= end
func (r Range) Valid() bool {
	if r.Start.IsZero() || r.End.IsZero() {
		return false
	}
	return !r.Start.After(r.End)
}

// Days is the number of dates in the range, end included
func (r Range) Days() int {
	if !r.Valid() {
		return 0
	}
	return r.Start.DaysUntil(r.End) + 1
}

func (r Range) Contains(d Date) bool {
	return r.Valid() && !d.Before(r.Start) && !d.After(r.End)
}

// Each calls fn for every date of the range in chronological order
func (r Range) Each(fn func(Date)) {
	if !r.Valid() {
		return
	}
	for d := r.Start; !d.After(r.End); d = d.AddDays(1) {
		fn(d)
	}
}
