package repository

import (
	"time"

	"github.com/ManuelReschke/QuestBoard/app/models"
	"gorm.io/gorm"
)

// questRepository implements the QuestRepository interface
type questRepository struct {
	db *gorm.DB
}

// NewQuestRepository creates a new quest repository instance
func NewQuestRepository(db *gorm.DB) QuestRepository {
	return &questRepository{db: db}
}

// Create creates a new quest in the database
func (r *questRepository) Create(quest *models.Quest) error {
	return r.db.Create(quest).Error
}

// GetByUUID retrieves a quest by its public UUID
func (r *questRepository) GetByUUID(uuid string) (*models.Quest, error) {
	var quest models.Quest
	err := r.db.Where("uuid = ?", uuid).First(&quest).Error
	if err != nil {
		return nil, err
	}
	return &quest, nil
}

// GetByUserID retrieves all quests of a user, the ones ending first on top
func (r *questRepository) GetByUserID(userID uint) ([]models.Quest, error) {
	var quests []models.Quest
	err := r.db.Where("user_id = ?", userID).
		Order("end_date ASC").Order("id ASC").Find(&quests).Error
	return quests, err
}

// Update updates an existing quest in the database
func (r *questRepository) Update(quest *models.Quest) error {
	return r.db.Save(quest).Error
}

// ExpireEndedBefore marks active quests ending before day as expired
func (r *questRepository) ExpireEndedBefore(day time.Time) (int64, error) {
	result := r.db.Model(&models.Quest{}).
		Where("status = ? AND end_date < ?", models.QUEST_STATUS_ACTIVE, day).
		Update("status", models.QUEST_STATUS_EXPIRED)
	return result.RowsAffected, result.Error
}
