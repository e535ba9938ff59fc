package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/kingdom-heroes/internal/game"
	"github.com/appengine-ltd/kingdom-heroes/internal/parser"
)

const (
	hudButtonH   = float32(34)
	hudButtonGap = float32(6)
	hudColumns   = 2
)

type hudButton struct {
	Label   string
	Rect    rl.Rectangle
	Enabled bool
	Intent  parser.Intent
}

func commandIntent(verb string, args ...string) parser.Intent {
	return parser.Intent{Kind: parser.Command, Verb: verb, Args: args, Confidence: 1}
}

// layoutHUD lays out recruit buttons for every unlocked unit, then the castle and army orders.
func layoutHUD(snap game.Snapshot, area rl.Rectangle) []hudButton {
	buttons := make([]hudButton, 0, len(snap.Unlocked)+4)
	for _, t := range snap.Unlocked {
		cost, _ := game.RecruitCost(t)
		buttons = append(buttons, hudButton{
			Label:   fmt.Sprintf("%s %dg", t.DisplayName(), cost.Gold),
			Enabled: snap.Stock.Covers(cost),
			Intent:  commandIntent("recruit", string(t)),
		})
	}
	upgrade := "Upgrade (max)"
	if snap.CanUpgrade {
		upgrade = fmt.Sprintf("Upgrade L%d", snap.PlayerCastle.Level+1)
	}
	buttons = append(buttons,
		hudButton{Label: upgrade, Enabled: snap.CanUpgrade && snap.Stock.Covers(snap.UpgradeCost), Intent: commandIntent("upgrade")},
		hudButton{Label: "Select all", Enabled: snap.CountUnits(game.OwnerPlayer) > 0, Intent: commandIntent("select", "all")},
		hudButton{Label: "Attack", Enabled: snap.SelectedCount > 0, Intent: commandIntent("attack")},
		hudButton{Label: "Stop", Enabled: true, Intent: commandIntent("stop")},
	)

	colW := (area.Width - hudButtonGap*float32(hudColumns-1)) / hudColumns
	for i := range buttons {
		col := i % hudColumns
		row := i / hudColumns
		buttons[i].Rect = rl.NewRectangle(
			area.X+float32(col)*(colW+hudButtonGap),
			area.Y+float32(row)*(hudButtonH+hudButtonGap),
			colW,
			hudButtonH,
		)
	}
	return buttons
}

func pointInRect(x, y float32, r rl.Rectangle) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// hitTest returns the enabled button under (x, y).
func hitTest(buttons []hudButton, x, y float32) (hudButton, bool) {
	for _, b := range buttons {
		if b.Enabled && pointInRect(x, y, b.Rect) {
			return b, true
		}
	}
	return hudButton{}, false
}
