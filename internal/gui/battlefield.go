package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/kingdom-heroes/internal/game"
)

func (ui *gameUI) drawBattle() {
	s := ui.campaign.Session()
	if s == nil {
		return
	}
	snap := s.Snapshot()
	layout := layoutBattle(ui.width, ui.height)

	ui.drawField(snap, layout.Field)
	ui.drawSidebar(snap, layout)
	ui.drawLog(layout.Log)
	if snap.Phase != game.PhasePlaying {
		drawOutcome(snap, layout.Field)
	}
}

func (ui *gameUI) drawField(snap game.Snapshot, area rl.Rectangle) {
	rl.DrawRectangleRec(area, AppTheme.Background)
	rl.BeginScissorMode(int32(area.X), int32(area.Y), int32(area.Width), int32(area.Height))

	cam := &ui.camera
	x0, y0 := cam.WorldToScreen(0, 0)
	x1, y1 := cam.WorldToScreen(float64(snap.WorldWidth), float64(snap.WorldHeight))
	rl.DrawRectangleRec(rl.NewRectangle(float32(x0), float32(y0), float32(x1-x0), float32(y1-y0)), AppTheme.Field)

	for _, r := range snap.Resources {
		drawPickup(cam, r)
	}
	drawCastle(cam, snap.PlayerCastle, AppTheme.Player)
	for _, c := range snap.EnemyCastles {
		drawCastle(cam, c, AppTheme.Enemy)
	}
	drawDefenseShot(cam, snap)
	for _, u := range snap.Units {
		drawUnit(cam, u)
	}

	if ui.dragStart != nil {
		mouse := rl.GetMousePosition()
		sel := rl.NewRectangle(min(ui.dragStart.X, mouse.X), min(ui.dragStart.Y, mouse.Y), abs32(mouse.X-ui.dragStart.X), abs32(mouse.Y-ui.dragStart.Y))
		rl.DrawRectangleRec(sel, rl.Fade(AppTheme.Selected, 0.15))
		rl.DrawRectangleLinesEx(sel, 1, AppTheme.Selected)
	}

	rl.EndScissorMode()
	rl.DrawRectangleLinesEx(area, 2, AppTheme.Border)
}

func screenRect(cam *camera, x, y, w, h float64) rl.Rectangle {
	sx, sy := cam.WorldToScreen(x, y)
	return rl.NewRectangle(float32(sx), float32(sy), float32(w*cam.Zoom), float32(h*cam.Zoom))
}

func drawPickup(cam *camera, r game.ResourceView) {
	if r.Amount <= 0 {
		return
	}
	rect := screenRect(cam, r.X, r.Y, float64(r.Size), float64(r.Size))
	clr, ok := resourceColors[string(r.Kind)]
	if !ok {
		clr = AppTheme.TextMuted
	}
	alpha := float32(0.35)
	if r.MaxAmount > 0 {
		alpha += 0.65 * float32(r.Amount/r.MaxAmount)
	}
	rl.DrawRectangleRounded(rect, 0.4, 6, rl.Fade(clr, alpha))
}

func drawCastle(cam *camera, c game.CastleView, clr rl.Color) {
	if c.Health <= 0 {
		return
	}
	size := float64(c.Size)
	rect := screenRect(cam, c.X, c.Y, size, size)
	cx, cy := cam.WorldToScreen(c.X+size/2, c.Y+size/2)
	if c.DefenseRange > 0 {
		rl.DrawCircleLines(int32(cx), int32(cy), float32(c.DefenseRange*cam.Zoom), rl.Fade(clr, 0.35))
	}
	rl.DrawRectangleRec(rect, rl.Fade(clr, 0.85))
	rl.DrawRectangleLinesEx(rect, 2, AppTheme.Border)
	drawText(fmt.Sprintf("L%d", c.Level), int32(rect.X)+4, int32(rect.Y)+4, sizeSmall, AppTheme.TextPrimary)
	drawHealthBar(rl.NewRectangle(rect.X, rect.Y-10, rect.Width, 6), c.Health, c.MaxHealth)
}

// drawDefenseShot draws a line from the player castle to the unit it just hit.
func drawDefenseShot(cam *camera, snap game.Snapshot) {
	c := snap.PlayerCastle
	if c.DefenseFlash <= 0 || c.DefenseTargetID == "" {
		return
	}
	u, ok := snap.UnitByID(c.DefenseTargetID)
	if !ok {
		return
	}
	size := float64(c.Size)
	fx, fy := cam.WorldToScreen(c.X+size/2, c.Y+size/2)
	tx, ty := cam.WorldToScreen(u.X+game.UnitSize/2, u.Y+game.UnitSize/2)
	rl.DrawLineEx(rl.Vector2{X: float32(fx), Y: float32(fy)}, rl.Vector2{X: float32(tx), Y: float32(ty)}, 3, AppTheme.Warning)
}

func drawUnit(cam *camera, u game.UnitView) {
	rect := screenRect(cam, u.X, u.Y, game.UnitSize, game.UnitSize)
	clr := AppTheme.Player
	if u.Owner == game.OwnerEnemy {
		clr = AppTheme.Enemy
	}
	if u.Flash > 0 {
		clr = rl.White
	}
	rl.DrawRectangleRounded(rect, 0.3, 6, clr)
	if u.Elite || u.Commanding {
		rl.DrawRectangleRoundedLinesEx(rect, 0.3, 6, 2, AppTheme.Accent)
	}
	if u.Selected {
		rl.DrawRectangleLinesEx(rl.NewRectangle(rect.X-3, rect.Y-3, rect.Width+6, rect.Height+6), 2, AppTheme.Selected)
		if u.Moving {
			tx, ty := cam.WorldToScreen(u.TargetX, u.TargetY)
			rl.DrawCircleLines(int32(tx), int32(ty), 6, AppTheme.Selected)
		}
	}
	label := "?"
	if name := u.Type.DisplayName(); name != "" {
		label = name[:1]
	}
	drawTextCentered(label, rect, int32(rect.Height/2)-sizeSmall/2, sizeSmall, AppTheme.Background)
	drawHealthBar(rl.NewRectangle(rect.X, rect.Y-7, rect.Width, 4), u.Health, u.MaxHealth)
}

func drawHealthBar(rect rl.Rectangle, health, maxHealth int) {
	if maxHealth <= 0 {
		return
	}
	frac := float32(clampInt(health, 0, maxHealth)) / float32(maxHealth)
	clr := AppTheme.Good
	switch {
	case frac < 0.3:
		clr = AppTheme.Danger
	case frac < 0.6:
		clr = AppTheme.Warning
	}
	rl.DrawRectangleRec(rect, AppTheme.DisabledPanel)
	rl.DrawRectangleRec(rl.NewRectangle(rect.X, rect.Y, rect.Width*frac, rect.Height), clr)
}

func (ui *gameUI) drawSidebar(snap game.Snapshot, layout battleLayout) {
	side := layout.Sidebar
	drawPanel(side, fmt.Sprintf("Level %d: %s", snap.Level.Number, snap.Level.Name))
	pc := snap.PlayerCastle
	lines := []string{
		fmt.Sprintf("Castle L%d/%d  %d/%d hp", pc.Level, pc.MaxLevel, pc.Health, pc.MaxHealth),
		fmt.Sprintf("Gold %d  Wood %d", snap.Stock.Gold, snap.Stock.Wood),
		fmt.Sprintf("Stone %d  Food %d", snap.Stock.Stone, snap.Stock.Food),
		fmt.Sprintf("Unit bonus x%.2f", snap.UpgradeBonus),
		fmt.Sprintf("Army %d  Selected %d", snap.CountUnits(game.OwnerPlayer), snap.SelectedCount),
		fmt.Sprintf("Enemies %d  Castles %d", snap.CountUnits(game.OwnerEnemy), len(snap.EnemyCastles)),
		fmt.Sprintf("Next wave %.0fs  Time %s", snap.SpawnCountdown, formatClock(snap.Clock)),
	}
	if snap.CanUpgrade {
		lines = append(lines, "Upgrade: "+game.FormatCost(snap.UpgradeCost))
	}
	drawLines(side, 36, sizeSmall, lines, AppTheme.TextSecondary)

	mouse := rl.GetMousePosition()
	for _, b := range layoutHUD(snap, layout.Buttons) {
		drawButton(b.Rect, b.Label, b.Enabled, b.Enabled && pointInRect(mouse.X, mouse.Y, b.Rect))
	}

	hints := make([]string, 0, len(battleHotkeys)+2)
	hints = append(hints, "Click/drag select, Shift adds", "Right click: move or harvest")
	for _, hk := range battleHotkeys {
		hints = append(hints, hk.Label)
	}
	hintY := int32(side.Height) - int32(len(hints))*lineHeight(sizeSmall) - 12
	drawLines(side, hintY, sizeSmall, hints, AppTheme.TextMuted)
}

func (ui *gameUI) drawLog(area rl.Rectangle) {
	drawPanel(area, "")
	lineH := lineHeight(sizeLog)
	inputY := int32(area.Y+area.Height) - lineH - int32(spaceXS)
	rows := int((float32(inputY) - area.Y - spaceXS) / float32(lineH))
	start := max(0, len(ui.messages)-rows)
	for i, msg := range ui.messages[start:] {
		clr := AppTheme.TextSecondary
		if len(msg) > 0 && msg[0] == '>' {
			clr = AppTheme.TextMuted
		}
		drawText(msg, int32(area.X+spaceS), int32(area.Y+spaceXS)+int32(i)*lineH, sizeLog, clr)
	}
	prompt := "> " + ui.input
	if (int(rl.GetTime()*2))%2 == 0 {
		prompt += "_"
	}
	drawText(prompt, int32(area.X+spaceS), inputY, sizeLog, AppTheme.Accent)
}

func drawOutcome(snap game.Snapshot, area rl.Rectangle) {
	rl.DrawRectangleRec(area, rl.Fade(rl.Black, 0.55))
	title, clr, hint := "DEFEAT", AppTheme.Danger, "Enter to retry, Esc for the menu"
	if snap.Phase == game.PhaseWon {
		title, clr, hint = "VICTORY", AppTheme.Good, "Enter for the next level, Esc for the menu"
	}
	mid := int32(area.Height / 2)
	drawTextCentered(title, area, mid-40, sizeTitle*2, clr)
	drawTextCentered(hint, area, mid+40, sizeBody, AppTheme.TextPrimary)
}

func formatClock(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
