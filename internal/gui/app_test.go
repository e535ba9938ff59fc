package gui

import (
	"strings"
	"testing"

	"github.com/appengine-ltd/kingdom-heroes/internal/game"
)

func newTestUI(t *testing.T) *gameUI {
	t.Helper()
	ui, err := newGameUI(AppConfig{Store: &game.MemoryStore{}, Seed: 11})
	if err != nil {
		t.Fatalf("new ui: %v", err)
	}
	ui.startBattle()
	if ui.screen != screenBattle || ui.campaign.Session() == nil {
		t.Fatalf("expected battle screen")
	}
	return ui
}

func lastMessage(ui *gameUI) string {
	if len(ui.messages) == 0 {
		return ""
	}
	return ui.messages[len(ui.messages)-1]
}

func TestSubmitInputQueuesParsedIntent(t *testing.T) {
	ui := newTestUI(t)
	ui.input = "train 2 peasants"
	ui.submitInput()
	if ui.input != "" {
		t.Fatalf("expected input cleared")
	}
	ui.drainIntents()

	if got := ui.campaign.Session().Snapshot().CountUnits(game.OwnerPlayer); got != 2 {
		t.Fatalf("expected 2 peasants, got %d", got)
	}
	if ui.lastUnit != "peasant" {
		t.Fatalf("expected last unit remembered, got %q", ui.lastUnit)
	}
}

func TestSubmitInputShowsClarify(t *testing.T) {
	ui := newTestUI(t)
	ui.input = "move north"
	ui.submitInput()
	ui.drainIntents()
	if msg := lastMessage(ui); msg == "" || strings.HasPrefix(msg, ">") {
		t.Fatalf("expected a clarify prompt, got %q", msg)
	}
}

func TestClickIntentsReachTheBattle(t *testing.T) {
	ui := newTestUI(t)
	ui.intents.EnqueueIntent(commandIntent("recruit", "peasant"))
	ui.drainIntents()
	u := ui.campaign.Session().Units().ByOwner(game.OwnerPlayer)[0]

	ui.clickSelect(ui.campaign.Session(), u.X+10, u.Y+10, false)
	ui.drainIntents()
	if !u.Selected {
		t.Fatalf("expected click to select the peasant")
	}

	ui.orderAt(ui.campaign.Session(), 900, 700)
	ui.drainIntents()
	if !strings.HasPrefix(lastMessage(ui), "Moving 1 unit(s)") {
		t.Fatalf("expected move order, got %q", lastMessage(ui))
	}

	ui.clickSelect(ui.campaign.Session(), -500, -500, false)
	ui.drainIntents()
	if u.Selected {
		t.Fatalf("expected empty click to clear selection")
	}
}

func TestMenuIntentLeavesBattle(t *testing.T) {
	ui := newTestUI(t)
	ui.input = "retreat"
	ui.submitInput()
	ui.drainIntents()
	if ui.screen != screenMenu || ui.campaign.Session() != nil {
		t.Fatalf("expected return to menu")
	}
}

func TestTickCapsFrameStep(t *testing.T) {
	ui := newTestUI(t)
	ui.tick(30)
	if clock := ui.campaign.Session().Clock(); clock != maxFrameStep {
		t.Fatalf("expected clock capped at %.2f, got %.2f", maxFrameStep, clock)
	}
}

func TestChooseLockedLevel(t *testing.T) {
	ui, _ := newGameUI(AppConfig{Store: &game.MemoryStore{}})
	ui.chooseLevel(3)
	if ui.screen == screenBattle || !strings.Contains(ui.status, "locked") {
		t.Fatalf("expected locked level refused, status %q", ui.status)
	}
}
