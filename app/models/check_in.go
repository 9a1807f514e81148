package models

import (
	"time"

	"github.com/ManuelReschke/QuestBoard/internal/pkg/calendar"
)

// CheckIn records that a user checked in to a quest on one calendar day.
// (quest, user, day) is unique.
type CheckIn struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	QuestID     uint      `gorm:"not null;uniqueIndex:idx_check_ins_quest_user_date,priority:1" json:"-"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_check_ins_quest_user_date,priority:2" json:"user_id"`
	CheckInDate time.Time `gorm:"type:date;not null;uniqueIndex:idx_check_ins_quest_user_date,priority:3" json:"check_in_date"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the CheckIn model
func (CheckIn) TableName() string {
	return "check_ins"
}

// NewCheckIn builds a check-in for day
func NewCheckIn(quest *Quest, userID uint, day calendar.Date) *CheckIn {
	return &CheckIn{
		QuestID:     quest.ID,
		UserID:      userID,
		CheckInDate: day.In(time.Local),
	}
}

// Date is the calendar day of the check-in
func (c *CheckIn) Date() calendar.Date {
	return calendar.FromTime(c.CheckInDate)
}

// CheckInDates extracts the calendar days of a list of check-ins
func CheckInDates(checkIns []CheckIn) []calendar.Date {
	dates := make([]calendar.Date, 0, len(checkIns))
	for i := range checkIns {
		dates = append(dates, checkIns[i].Date())
	}
	return dates
}
