package session

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/QuestBoard/internal/pkg/sidebar"
	"github.com/ManuelReschke/QuestBoard/internal/pkg/theme"
)

const (
	themeKey   = "ui_theme"
	sidebarKey = "ui_sidebar_open"
)

// themeStore persists the theme in the request's session
type themeStore struct {
	c *fiber.Ctx
}

// ThemeStore returns the session backed theme store of the request
func ThemeStore(c *fiber.Ctx) theme.Store {
	return themeStore{c: c}
}

func (s themeStore) Load() (theme.State, error) {
	return theme.State{Theme: theme.Parse(GetSessionValue(s.c, themeKey))}, nil
}

func (s themeStore) Save(state theme.State) error {
	return SetSessionValue(s.c, themeKey, string(theme.Parse(string(state.Theme))))
}

// LoadSidebar returns the sidebar state of the request's session
func LoadSidebar(c *fiber.Ctx) sidebar.State {
	return sidebar.State{Open: GetSessionValue(c, sidebarKey) == "1"}
}

// SaveSidebar persists the sidebar state in the request's session
func SaveSidebar(c *fiber.Ctx, state sidebar.State) error {
	value := ""
	if state.Open {
		value = "1"
	}
	return SetSessionValue(c, sidebarKey, value)
}
