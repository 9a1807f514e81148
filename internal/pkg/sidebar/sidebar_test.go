package sidebar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	closed := State{}
	open := State{Open: true}

	tests := []struct {
		name  string
		from  State
		event Event
		want  State
	}{
		{"mobile toggle opens", closed, Event{Kind: MobileToggle}, open},
		{"close toggle closes", open, Event{Kind: CloseToggle}, closed},
		{"overlay closes", open, Event{Kind: OverlayClick}, closed},
		{"escape closes open sidebar", open, Event{Kind: KeyDown, Key: KeyEscape}, closed},
		{"escape on closed sidebar is a no-op", closed, Event{Kind: KeyDown, Key: KeyEscape}, closed},
		{"other keys are ignored", open, Event{Kind: KeyDown, Key: "Enter"}, open},
		{"desktop resize closes", open, Event{Kind: Resize, Width: DesktopBreakpoint}, closed},
		{"mobile resize keeps state", open, Event{Kind: Resize, Width: DesktopBreakpoint - 1}, open},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Apply(tt.from, tt.event))
		})
	}
}

func TestStateClasses(t *testing.T) {
	open := State{Open: true}
	assert.True(t, open.ScrollLocked())
	assert.Equal(t, "sidebar active", open.SidebarClass())
	assert.Equal(t, "sidebar-overlay active", open.OverlayClass())

	closed := State{}
	assert.False(t, closed.ScrollLocked())
	assert.Equal(t, "sidebar", closed.SidebarClass())
}

func TestParseEvent(t *testing.T) {
	e, err := ParseEvent("resize", "", "1200")
	require.NoError(t, err)
	assert.Equal(t, Event{Kind: Resize, Width: 1200}, e)

	e, err = ParseEvent("keydown", "Escape", "")
	require.NoError(t, err)
	assert.Equal(t, Event{Kind: KeyDown, Key: "Escape"}, e)

	_, err = ParseEvent("resize", "", "wide")
	assert.Error(t, err)

	_, err = ParseEvent("swipe", "", "")
	assert.Error(t, err)
}

func TestBusDispatch(t *testing.T) {
	bus := NewBus(State{})

	var kinds []Kind
	var lastState State
	bus.Subscribe(MobileToggle, func(e Event, next State) {
		kinds = append(kinds, e.Kind)
	})
	bus.SubscribeAll(func(e Event, next State) {
		lastState = next
	})

	bus.Dispatch(Event{Kind: MobileToggle})
	assert.True(t, bus.State().Open)
	assert.True(t, lastState.Open)

	bus.Dispatch(Event{Kind: KeyDown, Key: KeyEscape})
	assert.False(t, bus.State().Open)
	assert.False(t, lastState.Open)

	assert.Equal(t, []Kind{MobileToggle}, kinds)
}
