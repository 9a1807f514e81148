// Package repositorytest provides in-memory repositories for handler and service tests.
package repositorytest

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ManuelReschke/QuestBoard/app/models"
	"github.com/ManuelReschke/QuestBoard/app/repository"
	"github.com/ManuelReschke/QuestBoard/internal/pkg/calendar"
)

// Quests is an in-memory QuestRepository
type Quests struct {
	mu     sync.Mutex
	nextID uint
	byID   map[uint]*models.Quest
	Err    error
}

var _ repository.QuestRepository = (*Quests)(nil)

func NewQuests() *Quests {
	return &Quests{byID: make(map[uint]*models.Quest)}
}

func (r *Quests) Create(quest *models.Quest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.nextID++
	quest.ID = r.nextID
	if quest.UUID == "" {
		quest.UUID = uuid.New().String()
	}
	cp := *quest
	r.byID[quest.ID] = &cp
	return nil
}

// GetByID reads back a stored quest
func (r *Quests) GetByID(id uint) (*models.Quest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	q, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *q
	return &cp, nil
}

func (r *Quests) GetByUUID(id string) (*models.Quest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, q := range r.byID {
		if q.UUID == id {
			cp := *q
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *Quests) GetByUserID(userID uint) ([]models.Quest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	var quests []models.Quest
	for _, q := range r.byID {
		if q.UserID == userID {
			quests = append(quests, *q)
		}
	}
	sort.Slice(quests, func(i, j int) bool {
		if !quests[i].EndDate.Equal(quests[j].EndDate) {
			return quests[i].EndDate.Before(quests[j].EndDate)
		}
		return quests[i].ID < quests[j].ID
	})
	return quests, nil
}

func (r *Quests) Update(quest *models.Quest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	cp := *quest
	r.byID[quest.ID] = &cp
	return nil
}

func (r *Quests) ExpireEndedBefore(day time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return 0, r.Err
	}
	cutoff := calendar.FromTime(day)
	var n int64
	for _, q := range r.byID {
		if q.IsActive() && q.HasEndedBefore(cutoff) {
			q.Status = models.QUEST_STATUS_EXPIRED
			n++
		}
	}
	return n, nil
}

// CheckIns is an in-memory CheckInRepository that enforces the
// (quest, user, day) uniqueness like the database index does
type CheckIns struct {
	mu     sync.Mutex
	nextID uint
	rows   []models.CheckIn
	Err    error

	// CreateErr fails Create only, e.g. to simulate losing an insert race
	CreateErr error
}

var _ repository.CheckInRepository = (*CheckIns)(nil)

func NewCheckIns() *CheckIns {
	return &CheckIns{}
}

func (r *CheckIns) Create(checkIn *models.CheckIn) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if r.CreateErr != nil {
		return r.CreateErr
	}
	for _, row := range r.rows {
		if row.QuestID == checkIn.QuestID && row.UserID == checkIn.UserID && row.Date() == checkIn.Date() {
			return gorm.ErrDuplicatedKey
		}
	}
	r.nextID++
	checkIn.ID = r.nextID
	r.rows = append(r.rows, *checkIn)
	return nil
}

func (r *CheckIns) Exists(questID, userID uint, day time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return false, r.Err
	}
	d := calendar.FromTime(day)
	for _, row := range r.rows {
		if row.QuestID == questID && row.UserID == userID && row.Date() == d {
			return true, nil
		}
	}
	return false, nil
}

func (r *CheckIns) GetByQuestAndUser(questID, userID uint) ([]models.CheckIn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	var out []models.CheckIn
	for _, row := range r.rows {
		if row.QuestID == questID && row.UserID == userID {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CheckInDate.Before(out[j].CheckInDate) })
	return out, nil
}

func (r *CheckIns) CountByQuestAndUser(questID, userID uint) (int64, error) {
	rows, err := r.GetByQuestAndUser(questID, userID)
	return int64(len(rows)), err
}

// Seed inserts a check-in for day without any rule checks
func (r *CheckIns) Seed(quest *models.Quest, userID uint, day calendar.Date) {
	_ = r.Create(models.NewCheckIn(quest, userID, day))
}
