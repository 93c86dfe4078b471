// Package terminal plays the game in a text terminal through termbox.
package terminal

import (
	"fmt"
	"time"

	"github.com/nsf/termbox-go"
	"github.com/pkg/errors"

	"gridsnake/game"
	"gridsnake/game/types"
)

// ReleaseTimeout is how long after the last Space event acceleration is
// considered released. Terminals report no key-up, only auto-repeat, and the
// first repeat usually arrives about half a second after the press.
const ReleaseTimeout = 550 * time.Millisecond

const (
	bodyColor     = termbox.ColorGreen
	overColor     = termbox.ColorRed
	normalColor   = termbox.ColorRed
	specialColor  = termbox.ColorBlue
	cellWidth     = 2
	statusPadding = 1
)

// Frontend owns the terminal while the game runs.
type Frontend struct {
	events chan termbox.Event
	done   chan struct{}
	exited chan struct{}
	poll   func() termbox.Event
}

// Open switches the terminal to raw mode and starts forwarding its events.
func Open() (*Frontend, error) {
	if err := termbox.Init(); err != nil {
		return nil, errors.Wrap(err, "opening terminal")
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.HideCursor()

	f := newFrontend(termbox.PollEvent)
	go f.pollLoop()
	return f, nil
}

func newFrontend(poll func() termbox.Event) *Frontend {
	return &Frontend{
		events: make(chan termbox.Event),
		done:   make(chan struct{}),
		exited: make(chan struct{}),
		poll:   poll,
	}
}

func (f *Frontend) pollLoop() {
	defer close(f.exited)
	for {
		ev := f.poll()
		if ev.Type == termbox.EventInterrupt {
			return
		}
		select {
		case f.events <- ev:
		case <-f.done:
			return
		}
	}
}

func (f *Frontend) Events() <-chan termbox.Event {
	return f.events
}

// Close stops the event goroutine and restores the terminal.
func (f *Frontend) Close() {
	// Interrupt blocks until PollEvent takes it, and the loop may instead be
	// parked on a send nobody reads, so it must not run inline.
	f.shutdown(func() { go termbox.Interrupt() })
	termbox.Close()
}

// shutdown returns once pollLoop has exited, whether it was waiting in poll
// or on a send to events.
func (f *Frontend) shutdown(interrupt func()) {
	close(f.done)
	interrupt()
	<-f.exited
}

// TranslateEvent maps a termbox event to a game key. quit is set for Esc, Q
// and Ctrl-C.
func TranslateEvent(ev termbox.Event) (key types.Key, quit bool) {
	if ev.Type != termbox.EventKey {
		return types.KeyNone, false
	}
	switch ev.Key {
	case termbox.KeyArrowUp:
		return types.KeyUp, false
	case termbox.KeyArrowDown:
		return types.KeyDown, false
	case termbox.KeyArrowLeft:
		return types.KeyLeft, false
	case termbox.KeyArrowRight:
		return types.KeyRight, false
	case termbox.KeySpace:
		return types.KeyAccelerate, false
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return types.KeyNone, true
	}
	switch ev.Ch {
	case 'w', 'W':
		return types.KeyUp, false
	case 's', 'S':
		return types.KeyDown, false
	case 'a', 'A':
		return types.KeyLeft, false
	case 'd', 'D':
		return types.KeyRight, false
	case ' ':
		return types.KeyAccelerate, false
	case 'r', 'R':
		return types.KeyRestart, false
	case 'q', 'Q':
		return types.KeyNone, true
	}
	return types.KeyNone, false
}

// Accelerator turns Space auto-repeat into press/release pairs.
type Accelerator struct {
	held      bool
	lastPress time.Time
	timeout   time.Duration
}

func NewAccelerator(timeout time.Duration) *Accelerator {
	return &Accelerator{timeout: timeout}
}

// Press records a Space event.
func (a *Accelerator) Press(now time.Time) {
	a.held = true
	a.lastPress = now
}

// Released reports, once, that no Space event arrived within the timeout.
func (a *Accelerator) Released(now time.Time) bool {
	if !a.held || now.Sub(a.lastPress) < a.timeout {
		return false
	}
	a.held = false
	return true
}

// Render draws the snapshot with two terminal columns per cell.
func Render(snap game.Snapshot) error {
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return errors.Wrap(err, "clearing terminal")
	}

	color := bodyColor
	if snap.GameOver {
		color = overColor
	}
	for _, p := range snap.Body {
		fillCell(p, color)
	}
	if snap.Grid.Contains(snap.Food) {
		fillCell(snap.Food, foodColor(snap.FoodType))
	}

	status := fmt.Sprintf("length %d", len(snap.Body))
	if snap.Accelerating {
		status += "  BOOST"
	}
	if snap.GameOver {
		status += "  GAME OVER - R to restart, Q to quit"
	}
	drawText(0, snap.Grid.Height+statusPadding, status)

	return errors.Wrap(termbox.Flush(), "flushing terminal")
}

func fillCell(p types.Point, color termbox.Attribute) {
	for i := 0; i < cellWidth; i++ {
		termbox.SetCell(p.X*cellWidth+i, p.Y, ' ', termbox.ColorDefault, color)
	}
}

func drawText(x, y int, text string) {
	for _, r := range text {
		termbox.SetCell(x, y, r, termbox.ColorWhite, termbox.ColorDefault)
		x++
	}
}

func foodColor(foodType types.FoodType) termbox.Attribute {
	switch foodType {
	case types.FoodSpecial:
		return specialColor
	case types.FoodNormal:
		return normalColor
	default:
		return normalColor
	}
}
