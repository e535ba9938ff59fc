package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/kingdom-heroes/internal/game"
)

const (
	defaultMapCols = 64
	defaultMapRows = 20
	logLines       = 8
)

func (m model) View() string {
	switch m.screen {
	case screenLevels:
		return m.levelsView()
	case screenBattle:
		return m.battleView()
	default:
		return m.menuView()
	}
}

func (m model) menuView() string {
	title := titleStyle.Render("KINGDOM HEROES")
	ver := dimStyle.Render(fmt.Sprintf("v%s  (%s)  %s", m.cfg.Version, m.cfg.Commit, m.cfg.BuildDate))

	lvl, _ := game.LevelByNumber(m.campaign.SelectedLevel())
	items := []string{
		fmt.Sprintf("Start battle: level %d, %s", lvl.Number, lvl.Name),
		fmt.Sprintf("Choose level (%d of %d unlocked)", m.campaign.HighestUnlocked(), game.MaxCampaignLevel),
		"Quit",
	}

	var b strings.Builder
	b.WriteString(title + "\n" + ver + "\n")
	b.WriteString(border.Render(strings.Repeat("-", 40)) + "\n\n")
	for i, it := range items {
		cursor := "  "
		line := textStyle.Render(it)
		if i == m.idx {
			cursor = "> "
			line = accentStyle.Render(it)
		}
		b.WriteString(cursor + line + "\n")
	}
	b.WriteString("\n" + border.Render(strings.Repeat("-", 40)) + "\n")
	b.WriteString(dimStyle.Render("↑/↓ to move, Enter to select, l for levels, q to quit") + "\n")
	if m.status != "" {
		b.WriteString("\n" + accentStyle.Render(m.status) + "\n")
	}
	return b.String()
}

func (m model) levelsView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("CAMPAIGN") + "\n\n")

	rows := 12
	start := clampInt(m.levelIdx-rows/2, 0, max(0, game.MaxCampaignLevel-rows))
	levels := game.Levels()
	for i := start; i < min(len(levels), start+rows); i++ {
		l := levels[i]
		cursor := "  "
		if i == m.levelIdx {
			cursor = "> "
		}
		line := fmt.Sprintf("%2d. %-22s %s", l.Number, l.Name, l.Description)
		switch {
		case l.Number > m.campaign.HighestUnlocked():
			line = dimStyle.Render(fmt.Sprintf("%2d. %-22s (locked)", l.Number, l.Name))
		case i == m.levelIdx:
			line = accentStyle.Render(line)
		default:
			line = textStyle.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}
	b.WriteString("\n" + dimStyle.Render("↑/↓ to move, Enter to choose, Esc to go back") + "\n")
	if m.status != "" {
		b.WriteString("\n" + dangerStyle.Render(m.status) + "\n")
	}
	return b.String()
}

func (m model) battleView() string {
	s := m.campaign.Session()
	if s == nil {
		return m.menuView()
	}
	snap := s.Snapshot()
	cols, rows := m.mapSize()

	var b strings.Builder
	b.WriteString(hudView(snap) + "\n")
	if m.minimap {
		b.WriteString(renderMinimapANSI(snap, cols, rows))
	} else {
		b.WriteString(panelStyle.Render(strings.TrimRight(renderBattlefield(snap, cols, rows), "\n")) + "\n")
	}

	switch m.campaign.Phase() {
	case game.PhaseWon:
		b.WriteString(goodStyle.Render("VICTORY! Press Enter to return to the menu.") + "\n")
	case game.PhaseLost:
		b.WriteString(dangerStyle.Render("DEFEAT. Press Enter to return to the menu.") + "\n")
	}

	from := max(0, len(m.messages)-logLines)
	for _, line := range m.messages[from:] {
		b.WriteString(dimStyle.Render(line) + "\n")
	}
	b.WriteString(accentStyle.Render("> ") + textStyle.Render(m.input) + accentStyle.Render("_") + "\n")
	b.WriteString(dimStyle.Render("Enter to run, Tab toggles minimap, Esc for menu") + "\n")
	return b.String()
}

func hudView(snap game.Snapshot) string {
	pc := snap.PlayerCastle
	header := titleStyle.Render(fmt.Sprintf("Level %d: %s", snap.Level.Number, snap.Level.Name)) +
		dimStyle.Render(fmt.Sprintf("   time %s   next wave %.0fs", formatClock(snap.Clock), snap.SpawnCountdown))

	stock := snap.Stock
	res := fmt.Sprintf("Gold %d  Wood %d  Stone %d  Food %d", stock.Gold, stock.Wood, stock.Stone, stock.Food)

	castle := fmt.Sprintf("Castle L%d/%d  %s  bonus x%.2f", pc.Level, pc.MaxLevel, healthBar(pc.Health, pc.MaxHealth, 20), snap.UpgradeBonus)
	upgrade := "max level"
	if snap.CanUpgrade {
		upgrade = "upgrade: " + game.FormatCost(snap.UpgradeCost)
	}

	army := fmt.Sprintf("Army %d  Enemies %d  Selected %d  Enemy castles %d",
		snap.CountUnits(game.OwnerPlayer), snap.CountUnits(game.OwnerEnemy), snap.SelectedCount, len(snap.EnemyCastles))

	unlocked := make([]string, 0, len(snap.Unlocked))
	for _, t := range snap.Unlocked {
		unlocked = append(unlocked, string(t))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		accentStyle.Render(res),
		playerStyle.Render(castle)+dimStyle.Render("  "+upgrade),
		textStyle.Render(army),
		dimStyle.Render("Recruit: "+strings.Join(unlocked, ", ")),
	)
}

func healthBar(health, maxHealth, width int) string {
	if maxHealth <= 0 {
		return ""
	}
	filled := clampInt(health*width/maxHealth, 0, width)
	return fmt.Sprintf("[%s%s] %d/%d", strings.Repeat("=", filled), strings.Repeat(" ", width-filled), health, maxHealth)
}

func formatClock(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// mapSize fits the battlefield to the terminal, leaving room for the HUD and log.
func (m model) mapSize() (int, int) {
	cols, rows := defaultMapCols, defaultMapRows
	if m.width > 0 {
		cols = clampInt(m.width-4, 20, 120)
	}
	if m.height > 0 {
		rows = clampInt(m.height-logLines-12, 8, 50)
	}
	return cols, rows
}
