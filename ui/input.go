package ui

import (
	"gridsnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type binding struct {
	code int32
	key  types.Key
}

// bindings maps raylib key codes to game keys. Arrows and WASD both steer.
// Polled in this order so simultaneous presses replay deterministically.
var bindings = []binding{
	{rl.KeyUp, types.KeyUp},
	{rl.KeyDown, types.KeyDown},
	{rl.KeyLeft, types.KeyLeft},
	{rl.KeyRight, types.KeyRight},
	{rl.KeyW, types.KeyUp},
	{rl.KeyS, types.KeyDown},
	{rl.KeyA, types.KeyLeft},
	{rl.KeyD, types.KeyRight},
	{rl.KeySpace, types.KeyAccelerate},
	{rl.KeyR, types.KeyRestart},
}

// KeyEvent is one press or release of a mapped key.
type KeyEvent struct {
	Key     types.Key
	Pressed bool
}

// TranslateKey maps a raylib key code, returning KeyNone for unbound keys.
func TranslateKey(code int32) types.Key {
	for _, b := range bindings {
		if b.code == code {
			return b.key
		}
	}
	return types.KeyNone
}

// PollKeys collects the presses and releases raylib saw since the last frame.
func PollKeys() []KeyEvent {
	var events []KeyEvent
	for _, b := range bindings {
		if rl.IsKeyPressed(b.code) {
			events = append(events, KeyEvent{Key: b.key, Pressed: true})
		}
		if rl.IsKeyReleased(b.code) {
			events = append(events, KeyEvent{Key: b.key, Pressed: false})
		}
	}
	return events
}

// QuitRequested reports whether the player asked to leave (Esc, Q or window close).
func QuitRequested() bool {
	return rl.WindowShouldClose() || rl.IsKeyPressed(rl.KeyQ)
}
