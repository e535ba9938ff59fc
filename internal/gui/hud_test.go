package gui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/kingdom-heroes/internal/game"
	"github.com/appengine-ltd/kingdom-heroes/internal/parser"
)

func testSnapshot(t *testing.T, level int) game.Snapshot {
	t.Helper()
	s, err := game.NewSession(game.SessionConfig{Level: level, Seed: 3})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return s.Snapshot()
}

func TestLayoutHUDButtons(t *testing.T) {
	snap := testSnapshot(t, 1)
	buttons := layoutHUD(snap, rl.NewRectangle(1000, 100, 300, 400))

	if len(buttons) != len(snap.Unlocked)+4 {
		t.Fatalf("expected %d buttons, got %d", len(snap.Unlocked)+4, len(buttons))
	}
	first := buttons[0]
	if first.Intent.Verb != "recruit" || first.Intent.Args[0] != string(snap.Unlocked[0]) {
		t.Fatalf("expected first button to recruit %s, got %+v", snap.Unlocked[0], first.Intent)
	}
	if first.Rect.X != 1000 || first.Rect.Y != 100 {
		t.Fatalf("expected first button at area origin, got %+v", first.Rect)
	}
	if buttons[1].Rect.Y != first.Rect.Y || buttons[2].Rect.Y <= first.Rect.Y {
		t.Fatalf("expected two columns per row")
	}

	last := buttons[len(buttons)-1]
	if last.Intent.Verb != "stop" || !last.Enabled {
		t.Fatalf("expected enabled stop button last, got %+v", last)
	}
	for _, b := range buttons {
		if b.Intent.Verb == "attack" && b.Enabled {
			t.Fatalf("expected attack disabled with nothing selected")
		}
	}
}

func TestHitTestSkipsDisabled(t *testing.T) {
	buttons := []hudButton{
		{Label: "a", Rect: rl.NewRectangle(0, 0, 50, 20), Enabled: false, Intent: parser.Intent{Verb: "attack"}},
		{Label: "b", Rect: rl.NewRectangle(0, 30, 50, 20), Enabled: true, Intent: parser.Intent{Verb: "stop"}},
	}
	tests := []struct {
		x, y   float32
		want   string
		wantOK bool
	}{
		{10, 10, "", false},
		{10, 35, "stop", true},
		{60, 35, "", false},
		{49.5, 49.5, "stop", true},
	}
	for _, tc := range tests {
		b, ok := hitTest(buttons, tc.x, tc.y)
		if ok != tc.wantOK || b.Intent.Verb != tc.want {
			t.Fatalf("hitTest(%.1f,%.1f): expected %q/%v, got %q/%v", tc.x, tc.y, tc.want, tc.wantOK, b.Intent.Verb, ok)
		}
	}
}
