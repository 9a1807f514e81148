package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/ManuelReschke/QuestBoard/internal/pkg/checkin"
	"github.com/ManuelReschke/QuestBoard/internal/pkg/usercontext"
)

// HandleAPIQuestCalendar returns the calendar document of the quest for the
// current user: {"startDate":…, "endDate":…, "checkIns":[{"checkInDate":…}]}
func (qc *QuestController) HandleAPIQuestCalendar(c *fiber.Ctx) error {
	quest, err := qc.ownedQuest(c)
	if err != nil {
		if errors.Is(err, checkin.ErrQuestNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "Quest not found"})
		}
		log.Errorf("[API] Could not load quest: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Could not load quest"})
	}

	cal, err := qc.service.Calendar(c.UserContext(), quest, usercontext.GetUserID(c))
	if err != nil {
		log.Errorf("[API] Could not build calendar for quest %s: %v", quest.UUID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Could not load check-ins"})
	}
	return c.JSON(cal.Data)
}
