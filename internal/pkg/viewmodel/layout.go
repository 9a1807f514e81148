package viewmodel

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/QuestBoard/internal/pkg/nav"
	"github.com/ManuelReschke/QuestBoard/internal/pkg/sidebar"
	"github.com/ManuelReschke/QuestBoard/internal/pkg/theme"
)

// Layout is the data shared by every page rendered into layouts/main
type Layout struct {
	Page        string
	Title       string
	IsLoggedIn  bool
	Msg         fiber.Map
	CSRF        string
	Theme       theme.Theme
	ThemeToggle theme.Presentation
	Sidebar     sidebar.State
	Nav         []nav.Item
}

// NewLayout builds the layout for path with the given UI state
func NewLayout(path, title string, themeState theme.State, sidebarState sidebar.State) Layout {
	t := theme.Parse(string(themeState.Theme))
	return Layout{
		Page:        path,
		Title:       title,
		Theme:       t,
		ThemeToggle: theme.Present(t),
		Sidebar:     sidebarState,
		Nav:         nav.Mark(path, nav.DefaultItems),
	}
}
