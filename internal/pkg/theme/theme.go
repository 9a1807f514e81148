package theme

// Theme is the color scheme applied to the document root as data-theme
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"

	Default = Light
)

// Parse maps a stored value to a theme. Anything unknown is the default.
func Parse(s string) Theme {
	switch Theme(s) {
	case Dark:
		return Dark
	case Light:
		return Light
	default:
		return Default
	}
}

// State is the theme part of the UI state
type State struct {
	Theme Theme
}

// Toggle flips between light and dark
func Toggle(s State) State {
	if Parse(string(s.Theme)) == Dark {
		return State{Theme: Light}
	}
	return State{Theme: Dark}
}

// Presentation is what every theme toggle control shows for a theme.
// The control always offers the opposite mode.
type Presentation struct {
	IconClass string
	Label     string
	AriaLabel string
}

// Present returns the toggle presentation for t
func Present(t Theme) Presentation {
	if Parse(string(t)) == Dark {
		return Presentation{
			IconClass: "bi bi-sun-fill",
			Label:     "Light Mode",
			AriaLabel: "Switch to light mode",
		}
	}
	return Presentation{
		IconClass: "bi bi-moon-fill",
		Label:     "Dark Mode",
		AriaLabel: "Switch to dark mode",
	}
}

// Store persists the theme state somewhere outside the pure state functions
type Store interface {
	Load() (State, error)
	Save(State) error
}

// ToggleStored loads the current state, flips it and persists the result
func ToggleStored(store Store) (State, error) {
	current, err := store.Load()
	if err != nil {
		return State{}, err
	}
	next := Toggle(current)
	if err := store.Save(next); err != nil {
		return current, err
	}
	return next, nil
}
