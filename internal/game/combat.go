package game

// CombatReport counts successful hits in one attack pass.
type CombatReport struct {
	PlayerHits int
	EnemyHits  int
}

// ResolveCombat runs the attack pass: player units first, then enemy units, each in list
// order. Every attacker commits to the first target found in range even if its cooldown
// then blocks the swing. Units killed earlier in the pass neither attack nor get attacked.
// Nothing is removed here.
func ResolveCombat(now float64, units []*Unit, player *Castle, enemyCastles []*Castle) CombatReport {
	var report CombatReport

	playerUnits := make([]*Unit, 0, len(units))
	enemyUnits := make([]*Unit, 0, len(units))
	for _, u := range units {
		if !u.IsAlive() {
			continue
		}
		switch u.Owner {
		case OwnerPlayer:
			playerUnits = append(playerUnits, u)
		case OwnerEnemy:
			enemyUnits = append(enemyUnits, u)
		}
	}

	for _, attacker := range playerUnits {
		if !attacker.IsAlive() {
			continue
		}
		if target := firstUnitInRange(attacker, enemyUnits); target != nil {
			if attacker.Attack(target, now) {
				report.PlayerHits++
			}
			continue
		}
		if castle := firstCastleInRange(attacker, enemyCastles); castle != nil {
			if attacker.Attack(castle, now) {
				report.PlayerHits++
			}
		}
	}

	for _, attacker := range enemyUnits {
		if !attacker.IsAlive() {
			continue
		}
		if player != nil && player.IsAlive() && castleInRange(attacker, player) {
			if attacker.Attack(player, now) {
				report.EnemyHits++
			}
			continue
		}
		if target := firstUnitInRange(attacker, playerUnits); target != nil {
			if attacker.Attack(target, now) {
				report.EnemyHits++
			}
		}
	}

	return report
}

func firstUnitInRange(attacker *Unit, candidates []*Unit) *Unit {
	for _, c := range candidates {
		if c.IsAlive() && InRange(attacker.X, attacker.Y, c.X, c.Y, float64(attacker.AttackRange)) {
			return c
		}
	}
	return nil
}

func firstCastleInRange(attacker *Unit, castles []*Castle) *Castle {
	for _, c := range castles {
		if c != nil && c.IsAlive() && castleInRange(attacker, c) {
			return c
		}
	}
	return nil
}

func castleInRange(attacker *Unit, c *Castle) bool {
	cx, cy := c.Center()
	return InRange(attacker.X, attacker.Y, cx, cy, float64(attacker.AttackRange))
}
