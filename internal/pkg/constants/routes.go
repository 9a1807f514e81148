package constants

// Static route constants
const (
	PublicRoute      = "/"
	DashboardRoute   = "/dashboard"
	QuestsRoute      = "/quests"
	ThemeToggleRoute = "/theme/toggle"
	SidebarRoute     = "/ui/sidebar"
)

// QuestRoute is the page of one quest
func QuestRoute(uuid string) string {
	return QuestsRoute + "/" + uuid
}
