package game

import (
	"slices"
	"testing"
)

func TestLevelTableIsComplete(t *testing.T) {
	levels := Levels()
	if len(levels) != MaxCampaignLevel {
		t.Fatalf("expected %d levels, got %d", MaxCampaignLevel, len(levels))
	}
	for i, l := range levels {
		if l.Number != i+1 {
			t.Fatalf("expected level %d at index %d, got %d", i+1, i, l.Number)
		}
		if l.Name == "" || l.Description == "" || l.EnemyMult <= 0 || l.SpawnRate <= 0 {
			t.Fatalf("level %d incomplete: %+v", l.Number, l)
		}
	}
}

func TestLevelSpawnInterval(t *testing.T) {
	tests := []struct {
		level    int
		interval float64
		mult     float64
	}{
		{1, 25, 1.0},
		{5, 15, 2.5},
		{20, 17.5, 10.0},
		{30, 1.25, 15.0},
	}
	for _, tc := range tests {
		l, ok := LevelByNumber(tc.level)
		if !ok {
			t.Fatalf("level %d missing", tc.level)
		}
		if l.SpawnInterval() != tc.interval || l.EnemyMult != tc.mult {
			t.Fatalf("level %d: expected interval %.2f mult %.1f, got %.2f %.1f", tc.level, tc.interval, tc.mult, l.SpawnInterval(), l.EnemyMult)
		}
	}
	if _, ok := LevelByNumber(31); ok {
		t.Fatalf("expected no level 31")
	}
}

func TestEnemyUnitPool(t *testing.T) {
	if got := EnemyUnitPool(1); len(got) != 4 {
		t.Fatalf("expected 4 types at level 1, got %v", got)
	}
	if !slices.Contains(EnemyUnitPool(5), UnitMusket) || slices.Contains(EnemyUnitPool(5), UnitCannon) {
		t.Fatalf("expected musket but not cannon at level 5")
	}
	if !slices.Contains(EnemyUnitPool(10), UnitBattalion) {
		t.Fatalf("expected battalion at level 10")
	}
	if slices.Contains(EnemyUnitPool(20), UnitGiant) || !slices.Contains(EnemyUnitPool(21), UnitGiant) {
		t.Fatalf("expected giants from level 21")
	}
	for _, ut := range EnemyUnitPool(MaxCampaignLevel) {
		if ut == UnitDragoons || ut == UnitCommander {
			t.Fatalf("expected %s never to be fielded by enemies", ut)
		}
	}
}

func TestEnemyCastlePositions(t *testing.T) {
	tests := []struct {
		level int
		count int
	}{
		{1, 1},
		{2, 2},
		{3, 3},
		{30, 3},
	}
	for _, tc := range tests {
		if got := EnemyCastlePositions(tc.level); len(got) != tc.count {
			t.Fatalf("level %d: expected %d enemy castles, got %d", tc.level, tc.count, len(got))
		}
	}
	if got := EnemyCastlePositions(3)[2]; got != (Point{X: 1400, Y: 400}) {
		t.Fatalf("unexpected third castle position %+v", got)
	}
}

func TestClampLevel(t *testing.T) {
	tests := []struct {
		n, highest, want int
	}{
		{0, 5, 1},
		{3, 5, 3},
		{9, 5, 5},
		{40, 99, 30},
		{2, 0, 1},
	}
	for _, tc := range tests {
		if got := ClampLevel(tc.n, tc.highest); got != tc.want {
			t.Fatalf("ClampLevel(%d,%d): expected %d, got %d", tc.n, tc.highest, tc.want, got)
		}
	}
}
