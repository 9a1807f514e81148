package sidebar

import (
	"fmt"
	"strconv"
)

// DesktopBreakpoint is the viewport width at which the mobile sidebar closes itself
const DesktopBreakpoint = 992

// KeyEscape closes an open sidebar
const KeyEscape = "Escape"

// Kind enumerates the UI events the sidebar reacts to
type Kind int

const (
	MobileToggle Kind = iota
	CloseToggle
	OverlayClick
	KeyDown
	Resize
)

var kindNames = map[Kind]string{
	MobileToggle: "mobile-toggle",
	CloseToggle:  "close-toggle",
	OverlayClick: "overlay-click",
	KeyDown:      "keydown",
	Resize:       "resize",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind maps an event name to its kind
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown sidebar event %q", name)
}

// Event is one UI event. Key is set for KeyDown, Width for Resize.
type Event struct {
	Kind  Kind
	Key   string
	Width int
}

// ParseEvent builds an event from its form representation
func ParseEvent(name, key, width string) (Event, error) {
	kind, err := ParseKind(name)
	if err != nil {
		return Event{}, err
	}
	e := Event{Kind: kind, Key: key}
	if kind == Resize {
		w, err := strconv.Atoi(width)
		if err != nil || w < 0 {
			return Event{}, fmt.Errorf("invalid resize width %q", width)
		}
		e.Width = w
	}
	return e, nil
}

// State is the sidebar part of the UI state
type State struct {
	Open bool
}

// ScrollLocked reports whether the page body must not scroll
func (s State) ScrollLocked() bool {
	return s.Open
}

// SidebarClass is the class list of the sidebar element
func (s State) SidebarClass() string {
	if s.Open {
		return "sidebar active"
	}
	return "sidebar"
}

// OverlayClass is the class list of the overlay element
func (s State) OverlayClass() string {
	if s.Open {
		return "sidebar-overlay active"
	}
	return "sidebar-overlay"
}

// Apply is the transition function of the sidebar
func Apply(s State, e Event) State {
	switch e.Kind {
	case MobileToggle:
		return State{Open: true}
	case CloseToggle, OverlayClick:
		return State{Open: false}
	case KeyDown:
		if e.Key == KeyEscape && s.Open {
			return State{Open: false}
		}
	case Resize:
		if e.Width >= DesktopBreakpoint {
			return State{Open: false}
		}
	}
	return s
}
