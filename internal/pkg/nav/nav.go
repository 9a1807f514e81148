package nav

import (
	"strings"

	"github.com/ManuelReschke/QuestBoard/internal/pkg/constants"
)

// DashboardHref is active only on the site root and on itself
const DashboardHref = constants.DashboardRoute

// Item is one sidebar navigation link
type Item struct {
	Label  string
	Href   string
	Icon   string
	Active bool
}

// DefaultItems is the sidebar navigation of the app
var DefaultItems = []Item{
	{Label: "Dashboard", Href: DashboardHref, Icon: "bi bi-speedometer2"},
	{Label: "Quests", Href: constants.QuestsRoute, Icon: "bi bi-flag"},
}

// Mark returns a copy of items with Active set for the current path
func Mark(path string, items []Item) []Item {
	marked := make([]Item, len(items))
	for i, item := range items {
		item.Active = isActive(path, item.Href)
		marked[i] = item
	}
	return marked
}

func isActive(path, href string) bool {
	if href == "" {
		return false
	}
	if href == DashboardHref {
		return path == constants.PublicRoute || path == DashboardHref
	}
	return strings.HasPrefix(path, href)
}
