package checkin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/ManuelReschke/QuestBoard/app/models"
	"github.com/ManuelReschke/QuestBoard/app/repository"
	"github.com/ManuelReschke/QuestBoard/internal/pkg/calendar"
)

var (
	ErrQuestNotFound     = errors.New("quest not found")
	ErrQuestNotActive    = errors.New("quest is not active")
	ErrOutsideQuestRange = errors.New("today is outside the quest period")
	ErrAlreadyCheckedIn  = errors.New("already checked in today")

	ErrAlreadyCheckedInThisWeek = errors.New("already checked in this week")
)

// DateCache caches the check-in days of a user for a quest. Invalidate bumps
// the entry version; Store only writes when the version still matches the one
// read before loading dates from the database, so a slow reader cannot put a
// list back that a concurrent check-in already made stale.
type DateCache interface {
	Dates(ctx context.Context, questID, userID uint) ([]calendar.Date, bool, error)
	Version(ctx context.Context, questID, userID uint) (int64, error)
	Store(ctx context.Context, questID, userID uint, version int64, dates []calendar.Date) (bool, error)
	Invalidate(ctx context.Context, questID, userID uint) error
}

// Calendar is everything the quest page needs to draw the check-in calendar
type Calendar struct {
	Quest          *models.Quest
	Data           calendar.Data
	Grid           *calendar.Grid
	CurrentStreak  int
	LongestStreak  int
	CheckedInToday bool

	// CheckedInThisWeek is set when a check-in falls into today's ISO week
	CheckedInThisWeek bool
	TotalCheckIns     int
	Progress          int
}

// Service implements the check-in rules on top of the repositories
type Service struct {
	quests   repository.QuestRepository
	checkIns repository.CheckInRepository
	cache    DateCache
	now      func() time.Time
}

// NewService creates a check-in service. cache may be nil.
func NewService(quests repository.QuestRepository, checkIns repository.CheckInRepository, cache DateCache) *Service {
	return &Service{
		quests:   quests,
		checkIns: checkIns,
		cache:    cache,
		now:      time.Now,
	}
}

// WithClock replaces the time source, for tests and the offline renderer
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Today is the reference day for check-ins and the calendar
func (s *Service) Today() calendar.Date {
	return calendar.FromTime(s.now())
}

// Quest loads a quest by its public UUID
func (s *Service) Quest(uuid string) (*models.Quest, error) {
	quest, err := s.quests.GetByUUID(uuid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestNotFound
		}
		return nil, fmt.Errorf("load quest %s: %w", uuid, err)
	}
	return quest, nil
}

// CheckIn records today's check-in of userID for quest. Daily quests allow one
// check-in per day, weekly quests one per week. Reaching the check-in goal
// completes the quest.
func (s *Service) CheckIn(ctx context.Context, quest *models.Quest, userID uint) (*models.CheckIn, error) {
	if !quest.IsActive() {
		return nil, ErrQuestNotActive
	}
	today := s.Today()
	if !quest.DateRange().Contains(today) {
		return nil, ErrOutsideQuestRange
	}

	if quest.IsWeekly() {
		checkIns, err := s.checkIns.GetByQuestAndUser(quest.ID, userID)
		if err != nil {
			return nil, fmt.Errorf("load check-ins: %w", err)
		}
		if inWeekOf(models.CheckInDates(checkIns), today) {
			return nil, ErrAlreadyCheckedInThisWeek
		}
	}

	day := today.In(time.Local)
	exists, err := s.checkIns.Exists(quest.ID, userID, day)
	if err != nil {
		return nil, fmt.Errorf("check existing check-in: %w", err)
	}
	if exists {
		return nil, ErrAlreadyCheckedIn
	}

	checkIn := models.NewCheckIn(quest, userID, today)
	if err := s.checkIns.Create(checkIn); err != nil {
		// lost a race against a concurrent check-in for the same day
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyCheckedIn
		}
		return nil, fmt.Errorf("create check-in: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, quest.ID, userID); err != nil {
			log.Warnf("[CheckIn] Could not invalidate cache for quest %d user %d: %v", quest.ID, userID, err)
		}
	}

	s.completeIfGoalReached(quest, userID)
	return checkIn, nil
}

// completeIfGoalReached marks quest as completed once the check-in goal is met.
// The check-in itself is already stored, so failures are only logged.
func (s *Service) completeIfGoalReached(quest *models.Quest, userID uint) {
	total, err := s.checkIns.CountByQuestAndUser(quest.ID, userID)
	if err != nil {
		log.Warnf("[CheckIn] Could not count check-ins for quest %d user %d: %v", quest.ID, userID, err)
		return
	}
	if !quest.GoalReached(total) {
		return
	}

	quest.Status = models.QUEST_STATUS_COMPLETED
	if err := s.quests.Update(quest); err != nil {
		quest.Status = models.QUEST_STATUS_ACTIVE
		log.Errorf("[CheckIn] Could not complete quest %s: %v", quest.UUID, err)
		return
	}
	log.Infof("[CheckIn] Quest %s completed after %d check-ins", quest.UUID, total)
}

func inWeekOf(dates []calendar.Date, day calendar.Date) bool {
	for _, d := range dates {
		if d.SameWeek(day) {
			return true
		}
	}
	return false
}

// Dates returns the check-in days of userID for quest, cache first
func (s *Service) Dates(ctx context.Context, quest *models.Quest, userID uint) ([]calendar.Date, error) {
	cacheable := false
	var version int64
	if s.cache != nil {
		dates, ok, err := s.cache.Dates(ctx, quest.ID, userID)
		switch {
		case err != nil:
			log.Warnf("[CheckIn] Cache read failed for quest %d user %d: %v", quest.ID, userID, err)
		case ok:
			return dates, nil
		default:
			// the version must be read before the database
			version, err = s.cache.Version(ctx, quest.ID, userID)
			if err != nil {
				log.Warnf("[CheckIn] Cache version read failed for quest %d user %d: %v", quest.ID, userID, err)
			} else {
				cacheable = true
			}
		}
	}

	checkIns, err := s.checkIns.GetByQuestAndUser(quest.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("load check-ins: %w", err)
	}
	dates := models.CheckInDates(checkIns)

	if cacheable {
		stored, err := s.cache.Store(ctx, quest.ID, userID, version, dates)
		if err != nil {
			log.Warnf("[CheckIn] Cache write failed for quest %d user %d: %v", quest.ID, userID, err)
		} else if !stored {
			log.Debugf("[CheckIn] Skipped stale cache write for quest %d user %d", quest.ID, userID)
		}
	}
	return dates, nil
}

// Calendar assembles the check-in calendar of userID for quest. A quest whose
// dates do not form a valid range yields a Calendar with a nil Grid, which
// renders as nothing.
func (s *Service) Calendar(ctx context.Context, quest *models.Quest, userID uint) (*Calendar, error) {
	dates, err := s.Dates(ctx, quest, userID)
	if err != nil {
		return nil, err
	}

	today := s.Today()
	r := quest.DateRange()
	cal := &Calendar{
		Quest:         quest,
		Data:          calendar.NewData(r, dates),
		CurrentStreak: calendar.CurrentStreak(dates, today),
		LongestStreak: calendar.LongestStreak(dates),
		TotalCheckIns: len(dates),
		Progress:      quest.Progress(int64(len(dates))),
	}
	for _, d := range dates {
		if d == today {
			cal.CheckedInToday = true
		}
		if d.SameWeek(today) {
			cal.CheckedInThisWeek = true
		}
	}

	grid, err := calendar.Build(r, dates, today)
	if err != nil {
		log.Warnf("[CheckIn] Skipping calendar for quest %s: %v", quest.UUID, err)
		return cal, nil
	}
	cal.Grid = grid
	return cal, nil
}

// CanCheckIn reports whether the check-in button should be offered
func (s *Service) CanCheckIn(cal *Calendar) bool {
	if !cal.Quest.IsActive() || !cal.Quest.DateRange().Contains(s.Today()) {
		return false
	}
	if cal.Quest.IsWeekly() {
		return !cal.CheckedInThisWeek
	}
	return !cal.CheckedInToday
}

// ExpireEnded marks active quests that ended before today as expired
func (s *Service) ExpireEnded() (int64, error) {
	return s.quests.ExpireEndedBefore(s.Today().In(time.Local))
}
