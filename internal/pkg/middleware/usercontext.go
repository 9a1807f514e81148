package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/QuestBoard/internal/pkg/env"
	"github.com/ManuelReschke/QuestBoard/internal/pkg/session"
	"github.com/ManuelReschke/QuestBoard/internal/pkg/usercontext"
)

// UserContext sets up the complete user context for every request: the
// signed-in user (written to the shared session by the account service) and
// the persisted UI state
func UserContext(cfg env.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		themeState, _ := session.ThemeStore(c).Load()
		ctx := usercontext.UserContext{
			Theme:   themeState,
			Sidebar: session.LoadSidebar(c),
		}

		if raw := session.GetSessionValue(c, usercontext.KeyUserID); raw != "" {
			if id, err := strconv.ParseUint(raw, 10, 64); err == nil && id > 0 {
				ctx.UserID = uint(id)
				ctx.IsLoggedIn = true
			}
		}

		if !ctx.IsLoggedIn && cfg.IsDev() && cfg.DevUserID > 0 {
			ctx.UserID = cfg.DevUserID
			ctx.IsLoggedIn = true
		}

		usercontext.SetUserContext(c, ctx)
		return c.Next()
	}
}
