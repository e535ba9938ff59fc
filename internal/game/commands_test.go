package game

import (
	"strings"
	"testing"
)

func TestExecuteCommandRecruit(t *testing.T) {
	s := newTestSession(t, 1, nil)

	res := s.ExecuteCommand("recruit peasant")
	if !res.Handled || !strings.Contains(res.Message, "Peasant recruited") {
		t.Fatalf("expected peasant recruited, got %+v", res)
	}
	if s.PlayerCastle().Resources.Gold != 95 {
		t.Fatalf("expected 5 gold spent, got %d", s.PlayerCastle().Resources.Gold)
	}

	res = s.ExecuteCommand("recruit musket")
	if !strings.Contains(res.Message, "level 5") {
		t.Fatalf("expected unlock hint, got %q", res.Message)
	}

	res = s.ExecuteCommand("recruit dragon")
	if !strings.Contains(res.Message, "Unknown unit type") {
		t.Fatalf("expected unknown type message, got %q", res.Message)
	}

	s.PlayerCastle().Resources.Gold = 10
	res = s.ExecuteCommand("train catapult")
	if !strings.Contains(res.Message, "Not enough resources") || !strings.Contains(res.Message, "80 gold") {
		t.Fatalf("expected cost in message, got %q", res.Message)
	}
}

func TestExecuteCommandUpgradeNeedsStone(t *testing.T) {
	s := newTestSession(t, 1, nil)
	res := s.ExecuteCommand("upgrade")
	if res.Message != "Upgrade needs 50 gold, 30 wood, 40 stone." {
		t.Fatalf("unexpected message %q", res.Message)
	}

	s.PlayerCastle().Resources.Stone = 100
	res = s.ExecuteCommand("UPGRADE")
	if !strings.Contains(res.Message, "level 2") {
		t.Fatalf("expected upgrade confirmation, got %q", res.Message)
	}
}

func TestExecuteCommandSelectAndMove(t *testing.T) {
	s := newTestSession(t, 1, nil)
	s.ExecuteCommand("recruit peasant")
	s.ExecuteCommand("recruit peasant")

	res := s.ExecuteCommand("move 500 500")
	if res.Message != "Select units first." {
		t.Fatalf("expected selection prompt, got %q", res.Message)
	}

	res = s.ExecuteCommand("select all")
	if res.Message != "2 unit(s) selected." {
		t.Fatalf("unexpected select message %q", res.Message)
	}
	res = s.ExecuteCommand("move 500, 500")
	if !strings.Contains(res.Message, "Moving 2 unit(s)") {
		t.Fatalf("unexpected move message %q", res.Message)
	}

	res = s.ExecuteCommand("select 0 0 400 400")
	if res.Message != "2 unit(s) selected." {
		t.Fatalf("expected rectangle select, got %q", res.Message)
	}
	res = s.ExecuteCommand("select 1 1")
	if res.Message != "No unit there." {
		t.Fatalf("expected miss, got %q", res.Message)
	}
	res = s.ExecuteCommand("select x y")
	if !strings.HasPrefix(res.Message, "Usage:") {
		t.Fatalf("expected usage, got %q", res.Message)
	}
}

func TestExecuteCommandRejectsNonFiniteCoords(t *testing.T) {
	s := newTestSession(t, 1, nil)
	s.ExecuteCommand("recruit peasant")
	s.ExecuteCommand("select all")
	u := s.Units().ByOwner(OwnerPlayer)[0]
	x, y := u.X, u.Y

	for _, cmd := range []string{"move nan 0", "move 0 inf", "move -inf 10", "move 1e400 5", "harvest nan nan", "select nan 0"} {
		res := s.ExecuteCommand(cmd)
		if !strings.HasPrefix(res.Message, "Usage:") {
			t.Fatalf("%q: expected usage, got %q", cmd, res.Message)
		}
	}
	s.Tick(0.1)
	if u.Moving || u.X != x || u.Y != y {
		t.Fatalf("expected unit to stay put, got %.1f,%.1f moving=%v", u.X, u.Y, u.Moving)
	}
}

func TestExecuteCommandAttackNeedsCommander(t *testing.T) {
	s := newTestSession(t, 1, nil)
	res := s.ExecuteCommand("attack")
	if res.Message != "Select a commander first." {
		t.Fatalf("unexpected message %q", res.Message)
	}
	res = s.ExecuteCommand("stop")
	if !strings.Contains(res.Message, "0 commander(s)") {
		t.Fatalf("unexpected stop message %q", res.Message)
	}
}

func TestExecuteCommandStatusAndUnits(t *testing.T) {
	s := newTestSession(t, 1, nil)
	res := s.ExecuteCommand("status")
	if !strings.Contains(res.Message, "Level 1 Novice Knight") || !strings.Contains(res.Message, "gold 100") {
		t.Fatalf("unexpected status %q", res.Message)
	}
	if res := s.ExecuteCommand("units"); res.Message != "No units in the field." {
		t.Fatalf("unexpected units message %q", res.Message)
	}
	s.ExecuteCommand("recruit knight")
	s.ExecuteCommand("recruit peasant")
	if res := s.ExecuteCommand("units"); res.Message != "Army: knight x1, peasant x1" {
		t.Fatalf("unexpected army %q", res.Message)
	}
}

func TestExecuteCommandUnknownAndEmpty(t *testing.T) {
	s := newTestSession(t, 1, nil)
	if res := s.ExecuteCommand("dance"); res.Handled {
		t.Fatalf("expected unknown verb unhandled")
	}
	if res := s.ExecuteCommand("   "); res.Handled {
		t.Fatalf("expected empty input unhandled")
	}
	if res := s.ExecuteCommand("help"); !strings.Contains(res.Message, "recruit <unit>") {
		t.Fatalf("expected help text, got %q", res.Message)
	}
}

func TestExecuteCommandAfterBattle(t *testing.T) {
	s := newTestSession(t, 1, nil)
	s.PlayerCastle().TakeDamage(s.PlayerCastle().Health)
	s.Tick(0.1)

	if res := s.ExecuteCommand("recruit peasant"); res.Message != "The battle is over." {
		t.Fatalf("expected battle over, got %q", res.Message)
	}
	if res := s.ExecuteCommand("status"); !res.Handled {
		t.Fatalf("expected status to keep working after the battle")
	}
}

func TestFormatCost(t *testing.T) {
	tests := []struct {
		cost Cost
		want string
	}{
		{Cost{Gold: 5}, "5 gold"},
		{Cost{Gold: 25, Food: 10, Stone: 3}, "25 gold, 10 food, 3 stone"},
		{Cost{}, "nothing"},
	}
	for _, tc := range tests {
		if got := FormatCost(tc.cost); got != tc.want {
			t.Fatalf("FormatCost(%+v): expected %q, got %q", tc.cost, tc.want, got)
		}
	}
}
