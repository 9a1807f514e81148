package controllers

import (
	"errors"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/ManuelReschke/QuestBoard/app/models"
	"github.com/ManuelReschke/QuestBoard/app/repository"
	"github.com/ManuelReschke/QuestBoard/internal/pkg/calendar"
	"github.com/ManuelReschke/QuestBoard/internal/pkg/checkin"
	"github.com/ManuelReschke/QuestBoard/internal/pkg/constants"
	"github.com/ManuelReschke/QuestBoard/internal/pkg/metrics"
	"github.com/ManuelReschke/QuestBoard/internal/pkg/usercontext"
	"github.com/ManuelReschke/QuestBoard/internal/pkg/viewmodel"
	"github.com/ManuelReschke/QuestBoard/views"
)

// ============================================================================
// QUEST CONTROLLER
// ============================================================================

// QuestController serves the quest list, the quest page with its check-in
// calendar and the check-in action
type QuestController struct {
	questRepo repository.QuestRepository
	service   *checkin.Service
}

// NewQuestController creates a new quest controller
func NewQuestController(questRepo repository.QuestRepository, service *checkin.Service) *QuestController {
	return &QuestController{
		questRepo: questRepo,
		service:   service,
	}
}

// questForm is the body of POST /quests
type questForm struct {
	Title            string `form:"title"`
	Description      string `form:"description"`
	QuestType        string `form:"quest_type"`
	ExperienceReward int64  `form:"experience_reward"`
	CheckInGoal      int    `form:"check_in_goal"`
	StartDate        string `form:"start_date"`
	EndDate          string `form:"end_date"`
}

// ownedQuest loads the quest of the :uuid param. Quests of other users are
// reported as not found.
func (qc *QuestController) ownedQuest(c *fiber.Ctx) (*models.Quest, error) {
	quest, err := qc.service.Quest(c.Params("uuid"))
	if err != nil {
		return nil, err
	}
	if !quest.IsOwnedBy(usercontext.GetUserID(c)) {
		return nil, checkin.ErrQuestNotFound
	}
	return quest, nil
}

// HandleQuestIndex lists the quests of the current user
func (qc *QuestController) HandleQuestIndex(c *fiber.Ctx) error {
	quests, err := qc.questRepo.GetByUserID(usercontext.GetUserID(c))
	if err != nil {
		log.Errorf("[QuestController] Could not load quests: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Could not load quests")
	}

	cards := make([]viewmodel.QuestCard, 0, len(quests))
	for i := range quests {
		cards = append(cards, viewmodel.NewQuestCard(&quests[i]))
	}

	return c.Render("quests/index", fiber.Map{
		"Layout": newLayout(c, "Quests"),
		"Quests": cards,
	}, mainLayout)
}

// HandleQuestCreate validates the form and creates an ACTIVE quest
func (qc *QuestController) HandleQuestCreate(c *fiber.Ctx) error {
	var form questForm
	if err := c.BodyParser(&form); err != nil {
		return flashError(c, "Invalid quest form").Redirect(constants.QuestsRoute, fiber.StatusSeeOther)
	}

	start, err := calendar.ParseISO(form.StartDate)
	if err != nil {
		return flashError(c, "Please enter a valid start date").Redirect(constants.QuestsRoute, fiber.StatusSeeOther)
	}
	end, err := calendar.ParseISO(form.EndDate)
	if err != nil {
		return flashError(c, "Please enter a valid end date").Redirect(constants.QuestsRoute, fiber.StatusSeeOther)
	}

	quest := &models.Quest{
		Title:            strings.TrimSpace(form.Title),
		Description:      strings.TrimSpace(form.Description),
		QuestType:        models.QuestType(form.QuestType),
		Status:           models.QUEST_STATUS_ACTIVE,
		ExperienceReward: form.ExperienceReward,
		CheckInGoal:      form.CheckInGoal,
		StartDate:        start.In(time.Local),
		EndDate:          end.In(time.Local),
		UserID:           usercontext.GetUserID(c),
	}
	if err := quest.Validate(); err != nil {
		if errors.Is(err, models.ErrQuestDates) {
			return flashError(c, "The end date must not be before the start date").Redirect(constants.QuestsRoute, fiber.StatusSeeOther)
		}
		return flashError(c, "Please check the quest form: "+err.Error()).Redirect(constants.QuestsRoute, fiber.StatusSeeOther)
	}

	if err := qc.questRepo.Create(quest); err != nil {
		log.Errorf("[QuestController] Could not create quest: %v", err)
		return flashError(c, "Could not create quest").Redirect(constants.QuestsRoute, fiber.StatusSeeOther)
	}

	return flashSuccess(c, "Quest created").Redirect(constants.QuestRoute(quest.UUID), fiber.StatusSeeOther)
}

// HandleQuestShow renders the quest page with the check-in calendar
func (qc *QuestController) HandleQuestShow(c *fiber.Ctx) error {
	quest, err := qc.ownedQuest(c)
	if err != nil {
		return qc.notFoundOrError(c, err)
	}

	userID := usercontext.GetUserID(c)
	cal, err := qc.service.Calendar(c.UserContext(), quest, userID)
	if err != nil {
		log.Errorf("[QuestController] Could not build calendar for quest %s: %v", quest.UUID, err)
		return c.Status(fiber.StatusInternalServerError).SendString("Could not load check-ins")
	}
	recordRender(cal)

	calendarHTML, err := views.ToHTML(c.UserContext(), views.CheckInCalendar(cal.Grid))
	if err != nil {
		return err
	}

	page := viewmodel.QuestPage{
		Quest:          viewmodel.NewQuestCard(quest),
		Description:    quest.Description,
		CalendarHTML:   calendarHTML,
		CalendarData:   cal.Data,
		CurrentStreak:  cal.CurrentStreak,
		LongestStreak:  cal.LongestStreak,
		CheckedInToday: cal.CheckedInToday,
		CanCheckIn:     qc.service.CanCheckIn(cal),
		IsOwner:        quest.IsOwnedBy(userID),

		CheckedInThisWeek: cal.CheckedInThisWeek,
		TotalCheckIns:     cal.TotalCheckIns,
		CheckInGoal:       quest.CheckInGoal,
		Progress:          cal.Progress,
	}

	return c.Render("quests/show", fiber.Map{
		"Layout": newLayout(c, quest.Title),
		"Page":   page,
	}, mainLayout)
}

// HandleQuestCalendar returns only the calendar fragment. It replaces the
// content of the calendar container on every call.
func (qc *QuestController) HandleQuestCalendar(c *fiber.Ctx) error {
	quest, err := qc.ownedQuest(c)
	if err != nil {
		return qc.notFoundOrError(c, err)
	}

	cal, err := qc.service.Calendar(c.UserContext(), quest, usercontext.GetUserID(c))
	if err != nil {
		log.Errorf("[QuestController] Could not build calendar for quest %s: %v", quest.UUID, err)
		return c.Status(fiber.StatusInternalServerError).SendString("Could not load check-ins")
	}
	recordRender(cal)

	handler := adaptor.HTTPHandler(templ.Handler(views.CheckInCalendar(cal.Grid)))
	return handler(c)
}

// HandleQuestCheckIn checks the current user in for today
func (qc *QuestController) HandleQuestCheckIn(c *fiber.Ctx) error {
	quest, err := qc.ownedQuest(c)
	if err != nil {
		return qc.notFoundOrError(c, err)
	}
	target := constants.QuestRoute(quest.UUID)

	_, err = qc.service.CheckIn(c.UserContext(), quest, usercontext.GetUserID(c))
	switch {
	case err == nil:
		metrics.CheckIn("ok")
	case errors.Is(err, checkin.ErrAlreadyCheckedIn):
		metrics.CheckIn("already_checked_in")
		return qc.checkInFailed(c, target, fiber.StatusConflict, "You already checked in today")
	case errors.Is(err, checkin.ErrAlreadyCheckedInThisWeek):
		metrics.CheckIn("already_checked_in_week")
		return qc.checkInFailed(c, target, fiber.StatusConflict, "You already checked in this week")
	case errors.Is(err, checkin.ErrQuestNotActive):
		metrics.CheckIn("not_active")
		return qc.checkInFailed(c, target, fiber.StatusUnprocessableEntity, "This quest is no longer active")
	case errors.Is(err, checkin.ErrOutsideQuestRange):
		metrics.CheckIn("outside_range")
		return qc.checkInFailed(c, target, fiber.StatusUnprocessableEntity, "Today is outside the quest period")
	default:
		metrics.CheckIn("error")
		log.Errorf("[QuestController] Check-in failed for quest %s: %v", quest.UUID, err)
		return qc.checkInFailed(c, target, fiber.StatusInternalServerError, "Check-in failed, please try again")
	}

	if isHTMX(c) {
		c.Set("HX-Trigger", "checkedIn")
		return c.SendStatus(fiber.StatusNoContent)
	}
	if quest.Status == models.QUEST_STATUS_COMPLETED {
		return flashSuccess(c, "Goal reached, quest completed").Redirect(target, fiber.StatusSeeOther)
	}
	return flashSuccess(c, "Checked in for today").Redirect(target, fiber.StatusSeeOther)
}

func (qc *QuestController) checkInFailed(c *fiber.Ctx, target string, status int, message string) error {
	if isHTMX(c) {
		return c.Status(status).SendString(message)
	}
	return flashError(c, message).Redirect(target, fiber.StatusSeeOther)
}

func (qc *QuestController) notFoundOrError(c *fiber.Ctx, err error) error {
	if errors.Is(err, checkin.ErrQuestNotFound) {
		return c.Status(fiber.StatusNotFound).SendString("Quest not found")
	}
	log.Errorf("[QuestController] %v", err)
	return c.Status(fiber.StatusInternalServerError).SendString("Could not load quest")
}

func recordRender(cal *checkin.Calendar) {
	if cal.Grid == nil {
		metrics.CalendarRendered(metrics.OutcomeSkipped)
		return
	}
	metrics.CalendarRendered(metrics.OutcomeRendered)
}
