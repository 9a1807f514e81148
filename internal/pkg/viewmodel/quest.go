package viewmodel

import (
	"html/template"

	"github.com/ManuelReschke/QuestBoard/app/models"
	"github.com/ManuelReschke/QuestBoard/internal/pkg/calendar"
)

// QuestCard is one entry of the quest list
type QuestCard struct {
	UUID             string
	Title            string
	Status           string
	QuestType        string
	Period           string
	ExperienceReward int64
}

// NewQuestCard flattens a quest for the list template
func NewQuestCard(q *models.Quest) QuestCard {
	return QuestCard{
		UUID:             q.UUID,
		Title:            q.Title,
		Status:           string(q.Status),
		QuestType:        string(q.QuestType),
		Period:           Period(q),
		ExperienceReward: q.ExperienceReward,
	}
}

// Period formats the quest range as "dd/mm/yyyy - dd/mm/yyyy"
func Period(q *models.Quest) string {
	return q.Start().Label() + " - " + q.End().Label()
}

// QuestPage is the quest detail page with its check-in calendar
type QuestPage struct {
	Quest          QuestCard
	Description    string
	CalendarHTML   template.HTML
	CalendarData   calendar.Data
	CurrentStreak  int
	LongestStreak  int
	CheckedInToday bool
	CanCheckIn     bool
	IsOwner        bool

	CheckedInThisWeek bool
	TotalCheckIns     int
	CheckInGoal       int
	// Progress towards CheckInGoal in percent
	Progress          int
}
