package repository

import (
	"time"

	"github.com/ManuelReschke/QuestBoard/app/models"
	"gorm.io/gorm"
)

// QuestRepository defines the interface for quest-related database operations
type QuestRepository interface {
	Create(quest *models.Quest) error
	GetByUUID(uuid string) (*models.Quest, error)
	GetByUserID(userID uint) ([]models.Quest, error)
	Update(quest *models.Quest) error
	// ExpireEndedBefore marks active quests whose end date lies before day as expired
	ExpireEndedBefore(day time.Time) (int64, error)
}

// CheckInRepository defines the interface for check-in-related database operations
type CheckInRepository interface {
	Create(checkIn *models.CheckIn) error
	Exists(questID, userID uint, day time.Time) (bool, error)
	GetByQuestAndUser(questID, userID uint) ([]models.CheckIn, error)
	CountByQuestAndUser(questID, userID uint) (int64, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	Quest   QuestRepository
	CheckIn CheckInRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Quest:   NewQuestRepository(db),
		CheckIn: NewCheckInRepository(db),
	}
}
