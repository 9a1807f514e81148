package router

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"

	"github.com/ManuelReschke/QuestBoard/app/controllers"
	"github.com/ManuelReschke/QuestBoard/internal/pkg/constants"
	"github.com/ManuelReschke/QuestBoard/internal/pkg/middleware"
)

// CSRFHeader carries the token on HTMX requests, see hx-headers in the layout
const CSRFHeader = "X-CSRF-Token"

// csrfToken reads the token from the CSRFHeader and falls back to the _csrf
// form field of plain form posts
func csrfToken(c *fiber.Ctx) (string, error) {
	if token, err := csrf.CsrfFromHeader(CSRFHeader)(c); err == nil {
		return token, nil
	}
	return csrf.CsrfFromForm("_csrf")(c)
}

func (h HttpRouter) registerCSRFProtectedRoutes(app *fiber.App) {
	csrfConf := csrf.Config{
		Extractor:      csrfToken,
		ContextKey:     "csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		Expiration:     1 * time.Hour,
		CookieSecure:   !h.cfg.IsDev(),
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/api/")
		},
	}

	group := app.Group("", csrf.New(csrfConf))

	// UI state is kept for anonymous visitors as well
	group.Post(constants.ThemeToggleRoute, controllers.HandleThemeToggle)
	group.Post(constants.SidebarRoute, controllers.HandleSidebarEvent)

	group.Get(constants.PublicRoute, middleware.RequireAuth, h.quests.HandleQuestIndex)
	group.Get(constants.DashboardRoute, middleware.RequireAuth, h.quests.HandleQuestIndex)
	group.Get(constants.QuestsRoute, middleware.RequireAuth, h.quests.HandleQuestIndex)
	group.Post(constants.QuestsRoute, middleware.RequireAuth, h.quests.HandleQuestCreate)
	group.Get(constants.QuestRoute(":uuid"), middleware.RequireAuth, h.quests.HandleQuestShow)
	group.Get(constants.QuestRoute(":uuid")+"/calendar", middleware.RequireAuth, h.quests.HandleQuestCalendar)
	group.Post(constants.QuestRoute(":uuid")+"/checkin", middleware.RequireAuth, h.quests.HandleQuestCheckIn)
}
