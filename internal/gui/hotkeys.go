package gui

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func ShiftPressed() bool {
	return rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
}

func CtrlPressed() bool {
	return rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
}

// CtrlKeyPressed accepts either key order: Ctrl then key, or key then Ctrl.
func CtrlKeyPressed(key int32) bool {
	if CtrlPressed() && rl.IsKeyPressed(key) {
		return true
	}
	if rl.IsKeyDown(key) && (rl.IsKeyPressed(rl.KeyLeftControl) || rl.IsKeyPressed(rl.KeyRightControl)) {
		return true
	}
	return false
}

// HotkeysEnabled is false while the player is typing a command.
func HotkeysEnabled(uiState *gameUI) bool {
	if uiState == nil {
		return true
	}
	if uiState.screen == screenBattle && strings.TrimSpace(uiState.input) != "" {
		return false
	}
	return true
}

type battleHotkey struct {
	Key   int32
	Label string
	Verb  string
}

var battleHotkeys = []battleHotkey{
	{Key: rl.KeyA, Label: "Ctrl+A select all", Verb: "select"},
	{Key: rl.KeyU, Label: "Ctrl+U upgrade", Verb: "upgrade"},
	{Key: rl.KeyK, Label: "Ctrl+K attack", Verb: "attack"},
	{Key: rl.KeyX, Label: "Ctrl+X stop", Verb: "stop"},
	{Key: rl.KeyH, Label: "Ctrl+H harvest at cursor", Verb: "harvest"},
}
