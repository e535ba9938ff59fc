package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/appengine-ltd/kingdom-heroes/internal/game"
)

func testModel(t *testing.T, unlocked int) model {
	t.Helper()
	store := &game.MemoryStore{}
	if err := store.SaveProgress(game.Progress{MaxLevel: unlocked}); err != nil {
		t.Fatalf("seed progress: %v", err)
	}
	return newModel(AppConfig{Store: store, Seed: 21})
}

func press(t *testing.T, m model, key tea.KeyMsg) model {
	t.Helper()
	got, _ := m.Update(key)
	return got.(model)
}

func typeLine(t *testing.T, m model, line string) model {
	t.Helper()
	for _, r := range line {
		if r == ' ' {
			m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
			continue
		}
		m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

func startBattle(t *testing.T, m model) model {
	t.Helper()
	m.idx = int(itemStart)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenBattle || m.campaign.Session() == nil {
		t.Fatalf("expected battle screen after start")
	}
	return m
}

func lastMessage(m model) string {
	if len(m.messages) == 0 {
		return ""
	}
	return m.messages[len(m.messages)-1]
}

func TestMenuNavigationWraps(t *testing.T) {
	m := testModel(t, 1)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.idx != int(itemQuit) {
		t.Fatalf("expected cursor to wrap to quit, got %d", m.idx)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.idx != int(itemStart) {
		t.Fatalf("expected cursor back on start, got %d", m.idx)
	}
}

func TestLevelScreenRejectsLockedLevel(t *testing.T) {
	m := testModel(t, 2)
	m.screen = screenLevels
	m.levelIdx = 4

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenLevels || !strings.Contains(m.status, "locked") {
		t.Fatalf("expected locked status on level screen, got screen %v status %q", m.screen, m.status)
	}

	m.levelIdx = 1
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenMenu || m.campaign.SelectedLevel() != 2 {
		t.Fatalf("expected level 2 selected, got %d", m.campaign.SelectedLevel())
	}
}

func TestPreselectedLevelIsClamped(t *testing.T) {
	store := &game.MemoryStore{}
	m := newModel(AppConfig{Store: store, Level: 9})
	if m.campaign.SelectedLevel() != 1 {
		t.Fatalf("expected preselection clamped to 1, got %d", m.campaign.SelectedLevel())
	}
}

func TestBattleTypedCommandRecruits(t *testing.T) {
	m := startBattle(t, testModel(t, 1))
	m = typeLine(t, m, "recruit peasant")

	if got := lastMessage(m); got != "Peasant recruited." {
		t.Fatalf("expected recruit confirmation, got %q", got)
	}
	if m.input != "" {
		t.Fatalf("expected input cleared, got %q", m.input)
	}
	if n := m.campaign.Session().Snapshot().CountUnits(game.OwnerPlayer); n != 1 {
		t.Fatalf("expected one player unit, got %d", n)
	}
}

func TestBattleFreeTextGoesThroughParser(t *testing.T) {
	m := startBattle(t, testModel(t, 1))
	m = typeLine(t, m, "train 2 knights")

	if n := m.campaign.Session().Snapshot().CountUnits(game.OwnerPlayer); n != 2 {
		t.Fatalf("expected two knights, got %d (log %v)", n, m.messages)
	}
	if m.lastUnit != "knight" {
		t.Fatalf("expected last unit remembered, got %q", m.lastUnit)
	}

	m = typeLine(t, m, "recruit another")
	if n := m.campaign.Session().Snapshot().CountUnits(game.OwnerPlayer); n != 3 {
		t.Fatalf("expected a third knight, got %d (log %v)", n, m.messages)
	}
}

func TestBattleBackspaceAndMenuVerb(t *testing.T) {
	m := startBattle(t, testModel(t, 1))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc")})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	if m.input != "ab" {
		t.Fatalf("expected backspace to trim input, got %q", m.input)
	}
	m.input = ""

	m = typeLine(t, m, "retreat")
	if m.screen != screenMenu || m.campaign.Session() != nil {
		t.Fatalf("expected retreat to return to the menu")
	}
}

func TestTickAdvancesBattleAndIgnoresStaleTimers(t *testing.T) {
	m := startBattle(t, testModel(t, 1))
	t0 := time.Unix(1000, 0)

	got, cmd := m.Update(tickMsg{at: t0, gen: m.tickGen})
	m = got.(model)
	if cmd == nil {
		t.Fatalf("expected the tick to re-arm")
	}
	got, _ = m.Update(tickMsg{at: t0.Add(200 * time.Millisecond), gen: m.tickGen})
	m = got.(model)
	if clock := m.campaign.Session().Clock(); clock < 0.19 || clock > 0.21 {
		t.Fatalf("expected clock near 0.2, got %.3f", clock)
	}

	got, cmd = m.Update(tickMsg{at: t0.Add(time.Second), gen: m.tickGen - 1})
	m = got.(model)
	if cmd != nil {
		t.Fatalf("expected stale tick to be dropped")
	}
	if clock := m.campaign.Session().Clock(); clock > 0.21 {
		t.Fatalf("expected stale tick not to advance the clock, got %.3f", clock)
	}
}

func TestLongPauseIsCapped(t *testing.T) {
	m := startBattle(t, testModel(t, 1))
	t0 := time.Unix(1000, 0)
	got, _ := m.Update(tickMsg{at: t0, gen: m.tickGen})
	m = got.(model)
	got, _ = m.Update(tickMsg{at: t0.Add(10 * time.Second), gen: m.tickGen})
	m = got.(model)
	if clock := m.campaign.Session().Clock(); clock != maxFrameStep {
		t.Fatalf("expected a single capped step of %.2f, got %.3f", maxFrameStep, clock)
	}
}

func TestDefeatShowsBannerAndEnterReturns(t *testing.T) {
	m := startBattle(t, testModel(t, 1))
	pc := m.campaign.Session().PlayerCastle()
	pc.TakeDamage(pc.Health)

	got, cmd := m.Update(tickMsg{at: time.Unix(5, 0), gen: m.tickGen})
	m = got.(model)
	if cmd != nil {
		t.Fatalf("expected ticking to stop once the battle is decided")
	}
	if !strings.Contains(m.View(), "DEFEAT") {
		t.Fatalf("expected defeat banner in view")
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenMenu {
		t.Fatalf("expected enter to return to the menu after the battle")
	}
}

func TestBattlefieldGridPlacesCastlesAndUnits(t *testing.T) {
	snap := game.Snapshot{
		WorldWidth:   1600,
		WorldHeight:  1600,
		PlayerCastle: game.CastleView{X: 0, Y: 0, Size: 200},
		EnemyCastles: []game.CastleView{{X: 1400, Y: 1400, Size: 200}},
		Units: []game.UnitView{
			{Type: game.UnitKnight, Owner: game.OwnerPlayer, X: 800, Y: 800},
			{Type: game.UnitArcher, Owner: game.OwnerEnemy, X: 1000, Y: 800},
		},
		Resources: []game.ResourceView{{X: 400, Y: 1200, Kind: game.ResourceGold}},
	}
	grid := battlefieldGrid(snap, 16, 16)
	if len(grid) != 16 || len(grid[0]) != 16 {
		t.Fatalf("unexpected grid size")
	}
	if grid[0][0].r != '#' || grid[1][1].r != '#' {
		t.Fatalf("expected player castle in the top-left corner")
	}
	if grid[15][15].r != 'X' {
		t.Fatalf("expected enemy castle in the bottom-right corner")
	}
	if grid[8][8].r != 'K' || grid[8][10].r != 'a' {
		t.Fatalf("expected player knight K and enemy archer a, got %q %q", grid[8][8].r, grid[8][10].r)
	}
	if grid[12][4].r != '$' {
		t.Fatalf("expected gold pickup, got %q", grid[12][4].r)
	}
}

func TestMinimapRendersHalfBlocks(t *testing.T) {
	m := startBattle(t, testModel(t, 1))
	out := renderMinimapANSI(m.campaign.Session().Snapshot(), 20, 10)
	if got := strings.Count(out, "\n"); got != 10 {
		t.Fatalf("expected 10 terminal rows, got %d", got)
	}
	if renderMinimapANSI(game.Snapshot{}, 20, 10) != "" {
		t.Fatalf("expected empty snapshot to render nothing")
	}
}

func TestFormatEvent(t *testing.T) {
	tests := []struct {
		e    game.Event
		want string
	}{
		{game.Event{Kind: game.EventUnitDied, Owner: game.OwnerPlayer, UnitType: game.UnitKnight}, "Your Knight fell."},
		{game.Event{Kind: game.EventUnitDied, Owner: game.OwnerEnemy, UnitType: game.UnitGiant}, "Enemy Giant slain."},
		{game.Event{Kind: game.EventLevelUnlocked, Level: 4}, "Level 4 unlocked."},
		{game.Event{Kind: game.EventUnitSpawned}, ""},
	}
	for _, tc := range tests {
		if got := FormatEvent(tc.e); got != tc.want {
			t.Fatalf("FormatEvent(%s): expected %q, got %q", tc.e.Kind, tc.want, got)
		}
	}
}
