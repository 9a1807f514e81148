package repository

import (
	"time"

	"github.com/ManuelReschke/QuestBoard/app/models"
	"gorm.io/gorm"
)

// checkInRepository implements the CheckInRepository interface
type checkInRepository struct {
	db *gorm.DB
}

// NewCheckInRepository creates a new check-in repository instance
func NewCheckInRepository(db *gorm.DB) CheckInRepository {
	return &checkInRepository{db: db}
}

// Create stores a check-in. A second check-in for the same quest, user and day
// fails with gorm.ErrDuplicatedKey (TranslateError is enabled on the connection).
func (r *checkInRepository) Create(checkIn *models.CheckIn) error {
	return r.db.Create(checkIn).Error
}

// Exists checks whether the user already checked in to the quest on day
func (r *checkInRepository) Exists(questID, userID uint, day time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&models.CheckIn{}).
		Where("quest_id = ? AND user_id = ? AND check_in_date = ?", questID, userID, day).
		Count(&count).Error
	return count > 0, err
}

// GetByQuestAndUser returns all check-ins of a user for a quest in chronological order
func (r *checkInRepository) GetByQuestAndUser(questID, userID uint) ([]models.CheckIn, error) {
	var checkIns []models.CheckIn
	err := r.db.Where("quest_id = ? AND user_id = ?", questID, userID).
		Order("check_in_date ASC").Find(&checkIns).Error
	return checkIns, err
}

// CountByQuestAndUser returns the number of check-ins of a user for a quest
func (r *checkInRepository) CountByQuestAndUser(questID, userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.CheckIn{}).
		Where("quest_id = ? AND user_id = ?", questID, userID).
		Count(&count).Error
	return count, err
}
