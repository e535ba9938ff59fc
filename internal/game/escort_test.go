package game

import "testing"

func TestSpawnBattalionKnights(t *testing.T) {
	m := NewUnitManager(nil)
	leader := NewUnit(500, 500, UnitBattalion, OwnerPlayer, 1.15)
	m.Add(leader)

	knights := leader.SpawnBattalionKnights(m, 1.15)
	if len(knights) != 6 {
		t.Fatalf("expected 6 knights, got %d", len(knights))
	}
	if m.Len() != 7 {
		t.Fatalf("expected leader plus 6 knights in manager, got %d", m.Len())
	}

	ref := NewUnit(0, 0, UnitKnight, OwnerPlayer, 1.15)
	for i, k := range knights {
		off := battalionKnightOffsets[i]
		if k.X != 500+off.X || k.Y != 500+off.Y {
			t.Fatalf("knight %d: expected offset %+v, got (%.0f,%.0f)", i, off, k.X-500, k.Y-500)
		}
		if k.Type != UnitKnight || !k.Elite || k.LeaderID != leader.ID {
			t.Fatalf("knight %d: expected elite knight led by %s, got %+v", i, leader.ID, k)
		}
		if k.MaxHealth != scaleStat(ref.MaxHealth, 1.5) || k.Health != k.MaxHealth {
			t.Fatalf("knight %d: expected health %d, got %d/%d", i, scaleStat(ref.MaxHealth, 1.5), k.Health, k.MaxHealth)
		}
		if k.AttackDamage != scaleStat(ref.AttackDamage, 1.3) {
			t.Fatalf("knight %d: expected damage %d, got %d", i, scaleStat(ref.AttackDamage, 1.3), k.AttackDamage)
		}
		if k.Speed != scaleStat(ref.Speed, 1.2) {
			t.Fatalf("knight %d: expected speed %d, got %d", i, scaleStat(ref.Speed, 1.2), k.Speed)
		}
	}

	if again := leader.SpawnBattalionKnights(m, 1.15); again != nil || m.Len() != 7 {
		t.Fatalf("expected second spawn to be a no-op")
	}
}

func TestSpawnDragoonCavalry(t *testing.T) {
	m := NewUnitManager(nil)
	leader := NewUnit(300, 300, UnitDragoons, OwnerEnemy, 1.0)
	m.Add(leader)

	cavalry := leader.SpawnEscort(m, 1.0)
	if len(cavalry) != 6 {
		t.Fatalf("expected 6 cavalry, got %d", len(cavalry))
	}
	ref := NewUnit(0, 0, UnitCavalry, OwnerEnemy, 1.0)
	for i, c := range cavalry {
		off := dragoonCavalryOffsets[i]
		if c.X != 300+off.X || c.Y != 300+off.Y {
			t.Fatalf("cavalry %d: expected offset %+v", i, off)
		}
		if c.Owner != OwnerEnemy || c.Elite || c.MaxHealth != ref.MaxHealth {
			t.Fatalf("cavalry %d: expected plain enemy cavalry, got %+v", i, c)
		}
	}
	if len(leader.EscortIDs) != 6 {
		t.Fatalf("expected leader to track 6 escorts, got %d", len(leader.EscortIDs))
	}
}

func TestSpawnEscortWrongTypeIsNoop(t *testing.T) {
	m := NewUnitManager(nil)
	knight := NewUnit(0, 0, UnitKnight, OwnerPlayer, 1.0)
	m.Add(knight)

	if got := knight.SpawnEscort(m, 1.0); got != nil {
		t.Fatalf("expected knights to spawn nothing")
	}
	if got := knight.SpawnBattalionKnights(m, 1.0); got != nil {
		t.Fatalf("expected battalion spawn on a knight to be a no-op")
	}
	if got := knight.SpawnDragoonCavalry(m, 1.0); got != nil {
		t.Fatalf("expected dragoon spawn on a knight to be a no-op")
	}
	if m.Len() != 1 {
		t.Fatalf("expected manager unchanged, got %d units", m.Len())
	}
}

func TestStartCommandAttackOrdersUnitsInRange(t *testing.T) {
	m := NewUnitManager(nil)
	commander := NewUnit(0, 0, UnitCommander, OwnerPlayer, 1.0)
	nearPeasant := NewUnit(300, 0, UnitPeasant, OwnerPlayer, 1.0)
	farPeasant := NewUnit(301, 0, UnitPeasant, OwnerPlayer, 1.0)
	otherCommander := NewUnit(10, 0, UnitCommander, OwnerPlayer, 1.0)
	enemy := NewUnit(20, 0, UnitPeasant, OwnerEnemy, 1.0)
	dead := NewUnit(30, 0, UnitPeasant, OwnerPlayer, 1.0)
	dead.TakeDamage(dead.Health)
	for _, u := range []*Unit{commander, nearPeasant, farPeasant, otherCommander, enemy, dead} {
		m.Add(u)
	}

	castle := NewCastle(1000, 1000, OwnerEnemy)
	ordered := commander.StartCommandAttack(castle, m)
	if ordered != 1 {
		t.Fatalf("expected exactly one unit ordered, got %d", ordered)
	}
	if !commander.CommandMode || commander.CommandTarget != castle {
		t.Fatalf("expected commander in command mode")
	}
	cx, cy := castle.Center()
	if !nearPeasant.Moving || nearPeasant.TargetX != cx || nearPeasant.TargetY != cy {
		t.Fatalf("expected near peasant to march on castle center")
	}
	for _, u := range []*Unit{farPeasant, otherCommander, enemy, dead, commander} {
		if u.Moving {
			t.Fatalf("expected %s/%s to stay put", u.Owner, u.Type)
		}
	}

	commander.StopCommandAttack()
	if commander.CommandMode || commander.CommandTarget != nil {
		t.Fatalf("expected command mode cleared")
	}
}

func TestStartCommandAttackNeedsCommander(t *testing.T) {
	m := NewUnitManager(nil)
	knight := NewUnit(0, 0, UnitKnight, OwnerPlayer, 1.0)
	peasant := NewUnit(10, 0, UnitPeasant, OwnerPlayer, 1.0)
	m.Add(knight)
	m.Add(peasant)

	if n := knight.StartCommandAttack(NewCastle(500, 500, OwnerEnemy), m); n != 0 || knight.CommandMode || peasant.Moving {
		t.Fatalf("expected non-commanders to be unable to command")
	}
}
