package gui

import (
	"fmt"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/kingdom-heroes/internal/game"
)

const (
	sidebarW     = float32(340)
	logH         = float32(170)
	dragMinPx    = float32(5)
	panSpeed     = 600.0
	wheelZoomInc = 1.1
)

type battleLayout struct {
	Field   rl.Rectangle
	Sidebar rl.Rectangle
	Log     rl.Rectangle
	Buttons rl.Rectangle
}

func layoutBattle(width, height int32) battleLayout {
	w, h := float32(width), float32(height)
	field := rl.NewRectangle(spaceXS, spaceXS, w-sidebarW-spaceXS*3, h-logH-spaceXS*3)
	side := rl.NewRectangle(field.X+field.Width+spaceXS, spaceXS, sidebarW, h-spaceXS*2)
	return battleLayout{
		Field:   field,
		Sidebar: side,
		Log:     rl.NewRectangle(spaceXS, field.Y+field.Height+spaceXS, field.Width, logH),
		Buttons: rl.NewRectangle(side.X+spaceS, side.Y+230, side.Width-spaceS*2, side.Height-240),
	}
}

func (ui *gameUI) updateBattle(delta time.Duration) {
	s := ui.campaign.Session()
	if s == nil {
		ui.enterMenu()
		return
	}
	layout := layoutBattle(ui.width, ui.height)
	ui.camera.SetViewport(float64(layout.Field.X), float64(layout.Field.Y), float64(layout.Field.Width), float64(layout.Field.Height))

	if s.Phase() != game.PhasePlaying {
		ui.updateBattleOver(s)
		return
	}

	if rl.IsKeyPressed(rl.KeyEscape) {
		if ui.input != "" {
			ui.input = ""
		} else {
			ui.enterMenu()
			return
		}
	}

	ui.handleCamera(delta)
	ui.handleMouse(s, layout)
	if HotkeysEnabled(ui) {
		ui.handleHotkeys()
	}

	if !CtrlPressed() {
		captureTextInput(&ui.input, maxInputLen)
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		ui.submitInput()
	}

	ui.drainIntents()
	if ui.screen != screenBattle || ui.quit {
		return
	}
	ui.tick(delta.Seconds())
}

func (ui *gameUI) updateBattleOver(s *game.Session) {
	if rl.IsKeyPressed(rl.KeyEscape) {
		ui.enterMenu()
		return
	}
	if !rl.IsKeyPressed(rl.KeyEnter) {
		return
	}
	next := s.Level().Number
	if s.Phase() == game.PhaseWon {
		next++
	}
	ui.campaign.ReturnToMenu()
	ui.campaign.SelectLevel(next)
	ui.startBattle()
}

func (ui *gameUI) handleCamera(delta time.Duration) {
	step := panSpeed * delta.Seconds()
	if rl.IsKeyDown(rl.KeyLeft) {
		ui.camera.Pan(-step, 0)
	}
	if rl.IsKeyDown(rl.KeyRight) {
		ui.camera.Pan(step, 0)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		ui.camera.Pan(0, -step)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		ui.camera.Pan(0, step)
	}
	mouse := rl.GetMousePosition()
	if wheel := rl.GetMouseWheelMove(); wheel != 0 && ui.camera.InView(float64(mouse.X), float64(mouse.Y)) {
		ui.camera.ZoomAt(float64(mouse.X), float64(mouse.Y), math.Pow(wheelZoomInc, float64(wheel)))
	}
	if rl.IsMouseButtonDown(rl.MouseButtonMiddle) {
		d := rl.GetMouseDelta()
		ui.camera.Pan(-float64(d.X), -float64(d.Y))
	}
}

func (ui *gameUI) handleMouse(s *game.Session, layout battleLayout) {
	mouse := rl.GetMousePosition()
	inField := pointInRect(mouse.X, mouse.Y, layout.Field)

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		if b, ok := hitTest(layoutHUD(s.Snapshot(), layout.Buttons), mouse.X, mouse.Y); ok {
			ui.intents.EnqueueIntent(b.Intent)
			return
		}
		if inField {
			start := mouse
			ui.dragStart = &start
		}
	}

	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) && ui.dragStart != nil {
		start := *ui.dragStart
		ui.dragStart = nil
		wx0, wy0 := ui.camera.ScreenToWorld(float64(start.X), float64(start.Y))
		if abs32(mouse.X-start.X) < dragMinPx && abs32(mouse.Y-start.Y) < dragMinPx {
			ui.clickSelect(s, wx0, wy0, ShiftPressed())
			return
		}
		wx1, wy1 := ui.camera.ScreenToWorld(float64(mouse.X), float64(mouse.Y))
		ui.intents.EnqueueIntent(commandIntent("select", coord(wx0), coord(wy0), coord(wx1), coord(wy1)))
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonRight) && inField {
		wx, wy := ui.camera.ScreenToWorld(float64(mouse.X), float64(mouse.Y))
		ui.orderAt(s, wx, wy)
	}
}

// clickSelect picks the player unit under the cursor; clicking empty ground clears the selection.
func (ui *gameUI) clickSelect(s *game.Session, wx, wy float64, additive bool) {
	u := s.Units().UnitAt(wx, wy)
	if u == nil || u.Owner != game.OwnerPlayer {
		if !additive {
			ui.intents.EnqueueIntent(commandIntent("deselect"))
		}
		return
	}
	args := []string{coord(wx), coord(wy)}
	if additive {
		args = append(args, "add")
	}
	ui.intents.EnqueueIntent(commandIntent("select", args...))
}

// orderAt harvests a pickup under the cursor, or moves the selection there.
func (ui *gameUI) orderAt(s *game.Session, wx, wy float64) {
	if s.Resources().ResourceAt(wx, wy) != nil {
		ui.intents.EnqueueIntent(commandIntent("harvest", coord(wx), coord(wy)))
		return
	}
	ui.intents.EnqueueIntent(commandIntent("move", coord(wx), coord(wy)))
}

func (ui *gameUI) handleHotkeys() {
	for _, hk := range battleHotkeys {
		if !CtrlKeyPressed(hk.Key) {
			continue
		}
		switch hk.Verb {
		case "select":
			ui.intents.EnqueueIntent(commandIntent("select", "all"))
		case "harvest":
			mouse := rl.GetMousePosition()
			wx, wy := ui.camera.ScreenToWorld(float64(mouse.X), float64(mouse.Y))
			ui.intents.EnqueueIntent(commandIntent("harvest", coord(wx), coord(wy)))
		default:
			ui.intents.EnqueueIntent(commandIntent(hk.Verb))
		}
	}
}

func coord(v float64) string {
	return fmt.Sprintf("%.0f", math.Round(v))
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
