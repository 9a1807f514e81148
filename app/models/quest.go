package models

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ManuelReschke/QuestBoard/internal/pkg/calendar"
)

type QuestType string

type QuestStatus string

const (
	QUEST_TYPE_DAILY    QuestType = "DAILY"
	QUEST_TYPE_WEEKLY   QuestType = "WEEKLY"
	QUEST_TYPE_ONE_TIME QuestType = "ONE_TIME"

	QUEST_STATUS_ACTIVE    QuestStatus = "ACTIVE"
	QUEST_STATUS_COMPLETED QuestStatus = "COMPLETED"
	QUEST_STATUS_FAILED    QuestStatus = "FAILED"
	QUEST_STATUS_EXPIRED   QuestStatus = "EXPIRED"
)

// ErrQuestDates is returned when a quest ends before it starts
var ErrQuestDates = errors.New("quest end date must not be before its start date")

// Quest is a time-bound activity the owner checks in to day by day
type Quest struct {
	ID               uint           `gorm:"primaryKey" json:"-"`
	UUID             string         `gorm:"type:char(36);uniqueIndex;not null" json:"uuid"`
	Title            string         `gorm:"type:varchar(200);not null" json:"title" validate:"required,min=3,max=200"`
	Description      string         `gorm:"type:varchar(1000)" json:"description" validate:"max=1000"`
	QuestType        QuestType      `gorm:"type:varchar(20);not null" json:"quest_type" validate:"required,oneof=DAILY WEEKLY ONE_TIME"`
	Status           QuestStatus    `gorm:"type:varchar(20);not null;index" json:"status" validate:"required,oneof=ACTIVE COMPLETED FAILED EXPIRED"`
	ExperienceReward int64          `gorm:"not null" json:"experience_reward" validate:"required,gt=0"`
	CheckInGoal      int            `gorm:"not null;default:1" json:"check_in_goal" validate:"required,gt=0"`
	StartDate        time.Time      `gorm:"type:date;not null" json:"start_date" validate:"required"`
	EndDate          time.Time      `gorm:"type:date;not null;index" json:"end_date" validate:"required"`
	UserID           uint           `gorm:"index;not null" json:"user_id"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Quest model
func (Quest) TableName() string {
	return "quests"
}

// BeforeCreate assigns the public UUID
func (q *Quest) BeforeCreate(tx *gorm.DB) error {
	if q.UUID == "" {
		q.UUID = uuid.New().String()
	}
	return nil
}

func (q *Quest) Validate() error {
	v := validator.New()
	if err := v.Struct(q); err != nil {
		return err
	}
	if q.End().Before(q.Start()) {
		return ErrQuestDates
	}
	return nil
}

func (q *Quest) Start() calendar.Date {
	return calendar.FromTime(q.StartDate)
}

func (q *Quest) End() calendar.Date {
	return calendar.FromTime(q.EndDate)
}

// DateRange returns the inclusive range the quest runs
func (q *Quest) DateRange() calendar.Range {
	return calendar.Range{Start: q.Start(), End: q.End()}
}

func (q *Quest) IsActive() bool {
	return q.Status == QUEST_STATUS_ACTIVE
}

// IsOwnedBy reports whether userID owns the quest
func (q *Quest) IsOwnedBy(userID uint) bool {
	return userID != 0 && q.UserID == userID
}

// Progress is the share of the check-in goal reached in percent, capped at 100
func (q *Quest) Progress(total int64) int {
	if q.CheckInGoal <= 0 {
		return 0
	}
	p := total * 100 / int64(q.CheckInGoal)
	if p > 100 {
		return 100
	}
	return int(p)
}

// GoalReached reports whether total check-ins complete the quest
func (q *Quest) GoalReached(total int64) bool {
	return q.CheckInGoal > 0 && total >= int64(q.CheckInGoal)
}

func (q *Quest) IsWeekly() bool {
	return q.QuestType == QUEST_TYPE_WEEKLY
}

// HasEndedBefore reports whether the last quest day lies before day
func (q *Quest) HasEndedBefore(day calendar.Date) bool {
	return q.End().Before(day)
}
