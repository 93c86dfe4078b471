package terminal

import (
	"testing"
	"time"

	"github.com/nsf/termbox-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridsnake/game/types"
)

func TestTranslateEvent(t *testing.T) {
	tests := []struct {
		name string
		ev   termbox.Event
		key  types.Key
		quit bool
	}{
		{"arrow up", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowUp}, types.KeyUp, false},
		{"arrow down", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowDown}, types.KeyDown, false},
		{"arrow left", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowLeft}, types.KeyLeft, false},
		{"arrow right", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowRight}, types.KeyRight, false},
		{"space", termbox.Event{Type: termbox.EventKey, Key: termbox.KeySpace}, types.KeyAccelerate, false},
		{"w", termbox.Event{Type: termbox.EventKey, Ch: 'w'}, types.KeyUp, false},
		{"D", termbox.Event{Type: termbox.EventKey, Ch: 'D'}, types.KeyRight, false},
		{"r", termbox.Event{Type: termbox.EventKey, Ch: 'r'}, types.KeyRestart, false},
		{"q", termbox.Event{Type: termbox.EventKey, Ch: 'q'}, types.KeyNone, true},
		{"esc", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEsc}, types.KeyNone, true},
		{"ctrl-c", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyCtrlC}, types.KeyNone, true},
		{"unbound", termbox.Event{Type: termbox.EventKey, Ch: 'x'}, types.KeyNone, false},
		{"resize", termbox.Event{Type: termbox.EventResize}, types.KeyNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			key, quit := TranslateEvent(tc.ev)
			assert.Equal(t, tc.key, key)
			assert.Equal(t, tc.quit, quit)
		})
	}
}

func TestAcceleratorReleasesAfterTimeout(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a := NewAccelerator(ReleaseTimeout)

	assert.False(t, a.Released(start), "nothing held yet")

	a.Press(start)
	assert.True(t, a.held)
	assert.False(t, a.Released(start.Add(ReleaseTimeout/2)))

	// Auto-repeat keeps it held.
	a.Press(start.Add(ReleaseTimeout / 2))
	assert.False(t, a.Released(start.Add(ReleaseTimeout)))

	assert.True(t, a.Released(start.Add(ReleaseTimeout/2+ReleaseTimeout)))
	assert.False(t, a.held)
	assert.False(t, a.Released(start.Add(2*ReleaseTimeout)), "release is reported once")
}

func TestFoodColor(t *testing.T) {
	assert.Equal(t, normalColor, foodColor(types.FoodNormal))
	assert.Equal(t, specialColor, foodColor(types.FoodSpecial))
}

func waitShutdown(t *testing.T, f *Frontend, interrupt func()) {
	t.Helper()
	stopped := make(chan struct{})
	go func() {
		f.shutdown(interrupt)
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		require.FailNow(t, "shutdown did not return")
	}
}

func TestShutdownWithUnreadEvent(t *testing.T) {
	// A key arrives after the game loop stopped reading events.
	f := newFrontend(func() termbox.Event {
		return termbox.Event{Type: termbox.EventKey, Ch: 'x'}
	})
	go f.pollLoop()

	waitShutdown(t, f, func() {})
}

func TestShutdownWhilePolling(t *testing.T) {
	interrupts := make(chan struct{})
	f := newFrontend(func() termbox.Event {
		<-interrupts
		return termbox.Event{Type: termbox.EventInterrupt}
	})
	go f.pollLoop()

	waitShutdown(t, f, func() {
		go func() { interrupts <- struct{}{} }()
	})
}

func TestPollLoopForwardsEvents(t *testing.T) {
	f := newFrontend(func() termbox.Event {
		return termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowUp}
	})
	go f.pollLoop()

	select {
	case ev := <-f.Events():
		key, quit := TranslateEvent(ev)
		assert.Equal(t, types.KeyUp, key)
		assert.False(t, quit)
	case <-time.After(2 * time.Second):
		require.FailNow(t, "no event forwarded")
	}

	waitShutdown(t, f, func() {})
}
