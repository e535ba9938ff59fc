package game

import "testing"

func TestUnitMovesLinearlyAndSnaps(t *testing.T) {
	u := NewUnit(0, 0, UnitPeasant, OwnerPlayer, 1.0)
	u.MoveTo(100, 0)

	u.Update(0.5)
	if u.X != 50 || u.Y != 0 || !u.Moving {
		t.Fatalf("expected halfway and still moving, got (%.2f,%.2f) moving=%v", u.X, u.Y, u.Moving)
	}

	u.Update(0.6)
	if u.X != 100 || u.Moving {
		t.Fatalf("expected arrival without overshoot, got x=%.2f moving=%v", u.X, u.Moving)
	}
}

func TestUnitSnapsWhenClose(t *testing.T) {
	u := NewUnit(0, 0, UnitCannon, OwnerPlayer, 1.0)
	u.MoveTo(1.5, 0)
	u.Update(0.001)
	if u.X != 1.5 || u.Moving {
		t.Fatalf("expected snap to target within 2 units, got x=%.3f moving=%v", u.X, u.Moving)
	}
}

func TestDeadUnitDoesNotMove(t *testing.T) {
	u := NewUnit(0, 0, UnitPeasant, OwnerPlayer, 1.0)
	u.MoveTo(100, 0)
	u.TakeDamage(u.Health)
	u.Update(1)
	if u.X != 0 {
		t.Fatalf("expected dead unit to stay put, got x=%.2f", u.X)
	}
}

func TestTakeDamageClampsAtZero(t *testing.T) {
	u := NewUnit(0, 0, UnitPeasant, OwnerPlayer, 1.0)
	u.TakeDamage(59)
	if !u.IsAlive() || u.Health != 1 {
		t.Fatalf("expected 1 hp left, got %d", u.Health)
	}
	u.TakeDamage(500)
	if u.Health != 0 || u.IsAlive() {
		t.Fatalf("expected health clamped to 0 and dead, got %d", u.Health)
	}
}

func TestAttackRangeIsInclusive(t *testing.T) {
	attacker := NewUnit(0, 0, UnitPeasant, OwnerPlayer, 1.0)
	near := NewUnit(20, 0, UnitKnight, OwnerEnemy, 1.0)
	far := NewUnit(20.5, 0, UnitKnight, OwnerEnemy, 1.0)

	if attacker.Attack(far, 0) {
		t.Fatalf("expected attack beyond range to fail")
	}
	if far.Health != far.MaxHealth {
		t.Fatalf("expected no damage on failed attack")
	}
	if !attacker.Attack(near, 0) {
		t.Fatalf("expected attack at exactly range to succeed")
	}
	if near.Health != near.MaxHealth-attacker.AttackDamage {
		t.Fatalf("expected %d damage, health now %d", attacker.AttackDamage, near.Health)
	}
	if attacker.Flash != UnitFlashDuration {
		t.Fatalf("expected combat flash after a hit, got %.2f", attacker.Flash)
	}
}

func TestAttackCooldown(t *testing.T) {
	attacker := NewUnit(0, 0, UnitPeasant, OwnerPlayer, 1.0)
	target := NewUnit(10, 0, UnitGiant, OwnerEnemy, 1.0)

	if !attacker.Attack(target, 3.0) {
		t.Fatalf("expected first attack to succeed")
	}
	if attacker.Attack(target, 3.5) {
		t.Fatalf("expected attack inside cooldown to fail")
	}
	if !attacker.Attack(target, 4.0) {
		t.Fatalf("expected attack after exactly one second to succeed")
	}
	want := target.MaxHealth - 2*attacker.AttackDamage
	if target.Health != want {
		t.Fatalf("expected health %d after two hits, got %d", want, target.Health)
	}
}

func TestAttackUsesCastleCenter(t *testing.T) {
	attacker := NewUnit(64, 84, UnitPeasant, OwnerEnemy, 1.0)
	castle := NewCastle(0, 0, OwnerPlayer)

	if !attacker.Attack(castle, 0) {
		t.Fatalf("expected attack on castle center 20 away to succeed")
	}
	if castle.Health != castleStartHealth-attacker.AttackDamage {
		t.Fatalf("expected castle to take %d, health %d", attacker.AttackDamage, castle.Health)
	}

	corner := NewUnit(0, 0, UnitPeasant, OwnerEnemy, 1.0)
	if corner.Attack(castle, 0) {
		t.Fatalf("expected attack from castle corner to miss the center")
	}
}

func TestFlashDecaysToZero(t *testing.T) {
	u := NewUnit(0, 0, UnitPeasant, OwnerPlayer, 1.0)
	u.Flash = UnitFlashDuration
	u.Update(1)
	if u.Flash != 0 {
		t.Fatalf("expected flash to bottom out at 0, got %.2f", u.Flash)
	}
}
