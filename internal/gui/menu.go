package gui

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/kingdom-heroes/internal/game"
)

func (ui *gameUI) menuItems() []menuItem {
	return []menuItem{
		{Label: fmt.Sprintf("Start Level %d", ui.campaign.SelectedLevel()), Action: actionStart},
		{Label: "Choose Level", Action: actionLevels},
		{Label: "Classic Terminal UI", Action: actionClassicUI},
		{Label: "Quit", Action: actionQuit},
	}
}

func (ui *gameUI) updateMenu() {
	items := ui.menuItems()
	if rl.IsKeyPressed(rl.KeyDown) {
		ui.menuCursor = wrapIndex(ui.menuCursor+1, len(items))
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		ui.menuCursor = wrapIndex(ui.menuCursor-1, len(items))
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		ui.activateMenu(items[ui.menuCursor].Action)
	}
	if rl.IsKeyPressed(rl.KeyQ) {
		ui.quit = true
	}
}

func (ui *gameUI) activateMenu(action menuAction) {
	switch action {
	case actionStart:
		ui.startBattle()
	case actionLevels:
		ui.levelIdx = ui.campaign.SelectedLevel() - 1
		ui.status = ""
		ui.screen = screenLevels
	case actionClassicUI:
		ui.launchClassic = true
	case actionQuit:
		ui.quit = true
	}
}

func (ui *gameUI) drawMenu() {
	titleRect := rl.NewRectangle(20, 20, float32(ui.width-40), 120)
	drawPanel(titleRect, "")
	drawTextCentered("KINGDOM HEROES", titleRect, 22, sizeTitle, AppTheme.Accent)
	drawTextCentered(fmt.Sprintf("v%s (%s) %s", ui.cfg.Version, ui.cfg.Commit, ui.cfg.BuildDate), titleRect, 70, sizeSmall, AppTheme.TextMuted)

	items := ui.menuItems()
	menuRect := rl.NewRectangle(float32(ui.width/2-230), 170, 460, float32(110+len(items)*72))
	drawPanel(menuRect, fmt.Sprintf("Campaign: %d of %d levels unlocked", ui.campaign.HighestUnlocked(), game.MaxCampaignLevel))
	for i, item := range items {
		y := int32(menuRect.Y) + 60 + int32(i*72)
		r := rl.NewRectangle(menuRect.X+36, float32(y), menuRect.Width-72, 52)
		if i == ui.menuCursor {
			rl.DrawRectangleRounded(r, 0.3, 8, rl.Fade(AppTheme.Accent, 0.2))
			rl.DrawRectangleRoundedLinesEx(r, 0.3, 8, 2, AppTheme.Accent)
			drawText(item.Label, int32(r.X)+18, y+14, 26, AppTheme.Accent)
		} else {
			rl.DrawRectangleRounded(r, 0.3, 8, rl.Fade(AppTheme.PanelRaised, 0.7))
			rl.DrawRectangleRoundedLinesEx(r, 0.3, 8, 1.5, AppTheme.Border)
			drawText(item.Label, int32(r.X)+18, y+14, 26, AppTheme.TextPrimary)
		}
	}

	hintRect := rl.NewRectangle(20, float32(ui.height-64), float32(ui.width-40), 40)
	if ui.status != "" {
		drawTextCentered(ui.status, hintRect, -24, sizeBody, AppTheme.Warning)
	}
	drawTextCentered("Up/Down to move, Enter to select, Q to quit", hintRect, 8, sizeSmall, AppTheme.TextMuted)
}

func (ui *gameUI) updateLevels() {
	levels := game.Levels()
	switch {
	case rl.IsKeyPressed(rl.KeyDown):
		ui.levelIdx = wrapIndex(ui.levelIdx+1, len(levels))
	case rl.IsKeyPressed(rl.KeyUp):
		ui.levelIdx = wrapIndex(ui.levelIdx-1, len(levels))
	case rl.IsKeyPressed(rl.KeyEscape):
		ui.screen = screenMenu
		return
	case rl.IsKeyPressed(rl.KeyEnter):
		ui.chooseLevel(ui.levelIdx + 1)
	}
}

// chooseLevel selects an unlocked level and opens its battle.
func (ui *gameUI) chooseLevel(n int) {
	if err := ui.campaign.CheckLevel(n); err != nil {
		if errors.Is(err, game.ErrLevelLocked) {
			ui.status = fmt.Sprintf("Level %d is locked. Win level %d first.", n, ui.campaign.HighestUnlocked())
		} else {
			ui.status = err.Error()
		}
		return
	}
	ui.campaign.SelectLevel(n)
	ui.startBattle()
}

func (ui *gameUI) drawLevels() {
	levels := game.Levels()
	outer := rl.NewRectangle(20, 20, float32(ui.width-40), float32(ui.height-40))
	drawPanel(outer, "Choose a Level")

	rowH := lineHeight(sizeBody) + 4
	visible := int((outer.Height - 120) / float32(rowH))
	if visible < 1 {
		visible = 1
	}
	first := clampInt(ui.levelIdx-visible/2, 0, max(0, len(levels)-visible))
	listW := outer.Width * 0.45
	for i := first; i < len(levels) && i < first+visible; i++ {
		l := levels[i]
		y := int32(outer.Y) + 56 + int32(i-first)*rowH
		clr := AppTheme.TextPrimary
		label := fmt.Sprintf("%2d  %s", l.Number, l.Name)
		if l.Number > ui.campaign.HighestUnlocked() {
			clr = AppTheme.TextMuted
			label += "  (locked)"
		}
		if i == ui.levelIdx {
			rl.DrawRectangle(int32(outer.X+spaceS), y-2, int32(listW), rowH, rl.Fade(AppTheme.Accent, 0.18))
			clr = AppTheme.Accent
		}
		drawText(label, int32(outer.X+spaceM), y, sizeBody, clr)
	}

	sel := levels[clampInt(ui.levelIdx, 0, len(levels)-1)]
	detail := rl.NewRectangle(outer.X+listW+spaceM*2, outer.Y+56, outer.Width-listW-spaceM*3, outer.Height-140)
	drawPanel(detail, fmt.Sprintf("Level %d", sel.Number))
	lines := wrapText(sel.Description, sizeBody, int32(detail.Width-spaceS*2))
	lines = append(lines, "",
		fmt.Sprintf("Enemy strength x%.1f", sel.EnemyMult),
		fmt.Sprintf("Waves every %.1fs", sel.SpawnInterval()),
		fmt.Sprintf("Enemy castles: %d", len(game.EnemyCastlePositions(sel.Number))),
	)
	drawLines(detail, 40, sizeBody, lines, AppTheme.TextSecondary)

	hintRect := rl.NewRectangle(20, float32(ui.height-64), float32(ui.width-40), 40)
	if ui.status != "" {
		drawTextCentered(ui.status, hintRect, -20, sizeBody, AppTheme.Warning)
	}
	drawTextCentered("Up/Down to browse, Enter to play, Esc to go back", hintRect, 8, sizeSmall, AppTheme.TextMuted)
}
