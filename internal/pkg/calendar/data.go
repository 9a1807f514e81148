package calendar

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// LocalDate is the wire shape of a date handed over by the hosting page
type LocalDate struct {
	Year       int `json:"year"`
	MonthValue int `json:"monthValue"`
	DayOfMonth int `json:"dayOfMonth"`
}

// ToLocalDate converts a Date to its wire shape
func ToLocalDate(d Date) *LocalDate {
	return &LocalDate{Year: d.Year, MonthValue: int(d.Month), DayOfMonth: d.Day}
}

// Date validates the wire shape
func (l *LocalDate) Date() (Date, error) {
	if l == nil {
		return Date{}, fmt.Errorf("%w: missing", ErrInvalidDate)
	}
	return NewDate(l.Year, time.Month(l.MonthValue), l.DayOfMonth)
}

// CheckInEntry is one element of the checkIns array
type CheckInEntry struct {
	CheckInDate *LocalDate `json:"checkInDate"`
}

// Data is the questCalendarData document: the quest range plus the user's check-ins
type Data struct {
	StartDate *LocalDate     `json:"startDate"`
	EndDate   *LocalDate     `json:"endDate"`
	CheckIns  []CheckInEntry `json:"checkIns"`
}

// NewData builds the document for a range and its check-ins
func NewData(r Range, checkIns []Date) Data {
	data := Data{
		StartDate: ToLocalDate(r.Start),
		EndDate:   ToLocalDate(r.End),
		CheckIns:  make([]CheckInEntry, 0, len(checkIns)),
	}
	for _, d := range checkIns {
		data.CheckIns = append(data.CheckIns, CheckInEntry{CheckInDate: ToLocalDate(d)})
	}
	return data
}

// DecodeData reads a questCalendarData document
func DecodeData(r io.Reader) (Data, error) {
	var data Data
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return Data{}, fmt.Errorf("decode calendar data: %w", err)
	}
	return data, nil
}

// Range returns the validated quest range
func (d Data) Range() (Range, error) {
	start, err := d.StartDate.Date()
	if err != nil {
		return Range{}, fmt.Errorf("start date: %w", err)
	}
	end, err := d.EndDate.Date()
	if err != nil {
		return Range{}, fmt.Errorf("end date: %w", err)
	}
	return NewRange(start, end)
}

// CheckInDates returns the valid check-in dates. Entries without a date or
// with an impossible date are skipped.
func (d Data) CheckInDates() []Date {
	dates := make([]Date, 0, len(d.CheckIns))
	for _, entry := range d.CheckIns {
		if entry.CheckInDate == nil {
			continue
		}
		date, err := entry.CheckInDate.Date()
		if err != nil {
			continue
		}
		dates = append(dates, date)
	}
	return dates
}

// Grid builds the grid for the document
func (d Data) Grid(today Date) (*Grid, error) {
	r, err := d.Range()
	if err != nil {
		return nil, err
	}
	return Build(r, d.CheckInDates(), today)
}
