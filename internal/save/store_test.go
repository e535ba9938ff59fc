package save

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/appengine-ltd/kingdom-heroes/internal/game"
)

func TestStoreDefaultsWhenMissing(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "nested"))

	p, err := s.LoadProgress()
	if err != nil || p != game.DefaultProgress() {
		t.Fatalf("expected default progress with nil error, got %+v %v", p, err)
	}
	u, err := s.LoadCastleUpgrades()
	if err != nil || u != game.DefaultCastleUpgrades() {
		t.Fatalf("expected default upgrades with nil error, got %+v %v", u, err)
	}
}

func TestStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)

	if err := s.SaveProgress(game.Progress{MaxLevel: 7}); err != nil {
		t.Fatalf("save progress: %v", err)
	}
	if err := s.SaveCastleUpgrades(game.CastleUpgrades{Level: 3, Bonus: 1.3225}); err != nil {
		t.Fatalf("save upgrades: %v", err)
	}

	reopened := NewStore(dir)
	p, err := reopened.LoadProgress()
	if err != nil || p.MaxLevel != 7 {
		t.Fatalf("expected max level 7, got %+v %v", p, err)
	}
	u, err := reopened.LoadCastleUpgrades()
	if err != nil || u.Level != 3 || u.Bonus != 1.3225 {
		t.Fatalf("expected level 3 bonus 1.3225, got %+v %v", u, err)
	}

	info, err := os.Stat(filepath.Join(dir, progressFile))
	if err != nil {
		t.Fatalf("stat progress: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("expected 0600 permissions, got %v", info.Mode().Perm())
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 2 {
		t.Fatalf("expected no temp files left behind, got %d entries", len(entries))
	}
}

func TestStoreCorruptFileFallsBack(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, progressFile), []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	p, err := NewStore(dir).LoadProgress()
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if p != game.DefaultProgress() {
		t.Fatalf("expected defaults alongside the error, got %+v", p)
	}
}

func TestStoreRejectsUnknownVersion(t *testing.T) {
	dir := t.TempDir()
	data := []byte(`{"format_version": 9, "level": 4, "bonus": 1.5}`)
	if err := os.WriteFile(filepath.Join(dir, upgradesFile), data, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	u, err := NewStore(dir).LoadCastleUpgrades()
	if !errors.Is(err, ErrUnsupportedVersion) {
		t.Fatalf("expected unsupported version, got %v", err)
	}
	if u != game.DefaultCastleUpgrades() {
		t.Fatalf("expected defaults, got %+v", u)
	}
}

func TestStoreNormalizesOutOfRangeRecords(t *testing.T) {
	tests := []struct {
		name  string
		in    game.CastleUpgrades
		level int
		bonus float64
	}{
		{"too high", game.CastleUpgrades{Level: 12, Bonus: 3}, game.CastleMaxLevel, 3},
		{"zero", game.CastleUpgrades{}, 1, 1},
		{"bonus below one", game.CastleUpgrades{Level: 2, Bonus: 0.5}, 2, 1},
	}
	for _, tc := range tests {
		s := NewStore(t.TempDir())
		if err := s.SaveCastleUpgrades(tc.in); err != nil {
			t.Fatalf("%s: save: %v", tc.name, err)
		}
		u, err := s.LoadCastleUpgrades()
		if err != nil || u.Level != tc.level || u.Bonus != tc.bonus {
			t.Fatalf("%s: expected level %d bonus %.2f, got %+v %v", tc.name, tc.level, tc.bonus, u, err)
		}
	}

	s := NewStore(t.TempDir())
	if err := s.SaveProgress(game.Progress{MaxLevel: 99}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if p, _ := s.LoadProgress(); p.MaxLevel != game.MaxCampaignLevel {
		t.Fatalf("expected progress clamped to %d, got %d", game.MaxCampaignLevel, p.MaxLevel)
	}
}

func TestStoreDrivesCampaign(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	if err := store.SaveProgress(game.Progress{MaxLevel: 3}); err != nil {
		t.Fatalf("save: %v", err)
	}

	c, err := game.NewCampaign(NewStore(dir), 11)
	if err != nil {
		t.Fatalf("new campaign: %v", err)
	}
	if c.HighestUnlocked() != 3 {
		t.Fatalf("expected highest unlocked 3, got %d", c.HighestUnlocked())
	}
}
