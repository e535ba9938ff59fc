package game

var (
	battalionKnightOffsets = []Point{
		{X: -30, Y: -30}, {X: 30, Y: -30},
		{X: -60, Y: 0}, {X: 0, Y: 0}, {X: 60, Y: 0},
		{X: -30, Y: 30},
	}
	dragoonCavalryOffsets = []Point{
		{X: -40, Y: -40}, {X: 40, Y: -40},
		{X: -80, Y: 0}, {X: 0, Y: 0}, {X: 80, Y: 0},
		{X: -40, Y: 40},
	}
)

const (
	eliteHealthFactor = 1.5
	eliteDamageFactor = 1.3
	eliteSpeedFactor  = 1.2
)

// SpawnEscort adds the escort group for leader types that have one and returns the new units.
func (u *Unit) SpawnEscort(m *UnitManager, upgradeBonus float64) []*Unit {
	switch u.Type {
	case UnitBattalion:
		return u.SpawnBattalionKnights(m, upgradeBonus)
	case UnitDragoons:
		return u.SpawnDragoonCavalry(m, upgradeBonus)
	default:
		return nil
	}
}

// SpawnBattalionKnights surrounds a battalion with six elite knights. It runs once per leader.
func (u *Unit) SpawnBattalionKnights(m *UnitManager, upgradeBonus float64) []*Unit {
	if u.Type != UnitBattalion || len(u.EscortIDs) > 0 {
		return nil
	}
	spawned := make([]*Unit, 0, len(battalionKnightOffsets))
	for _, off := range battalionKnightOffsets {
		knight := NewUnit(u.X+off.X, u.Y+off.Y, UnitKnight, u.Owner, upgradeBonus)
		knight.Health = scaleStat(knight.Health, eliteHealthFactor)
		knight.MaxHealth = scaleStat(knight.MaxHealth, eliteHealthFactor)
		knight.AttackDamage = scaleStat(knight.AttackDamage, eliteDamageFactor)
		knight.Speed = scaleStat(knight.Speed, eliteSpeedFactor)
		knight.Elite = true
		spawned = append(spawned, u.attachEscort(m, knight))
	}
	return spawned
}

// SpawnDragoonCavalry surrounds a dragoons leader with six regular cavalry. It runs once per leader.
func (u *Unit) SpawnDragoonCavalry(m *UnitManager, upgradeBonus float64) []*Unit {
	if u.Type != UnitDragoons || len(u.EscortIDs) > 0 {
		return nil
	}
	spawned := make([]*Unit, 0, len(dragoonCavalryOffsets))
	for _, off := range dragoonCavalryOffsets {
		cavalry := NewUnit(u.X+off.X, u.Y+off.Y, UnitCavalry, u.Owner, upgradeBonus)
		spawned = append(spawned, u.attachEscort(m, cavalry))
	}
	return spawned
}

func (u *Unit) attachEscort(m *UnitManager, escort *Unit) *Unit {
	escort.LeaderID = u.ID
	m.Add(escort)
	u.EscortIDs = append(u.EscortIDs, escort.ID)
	return escort
}

// StartCommandAttack orders every living friendly non-commander within CommandRange to march
// on the castle center. It returns how many units were ordered.
func (u *Unit) StartCommandAttack(target *Castle, m *UnitManager) int {
	if !u.IsCommander() || target == nil {
		return 0
	}
	u.CommandMode = true
	u.CommandTarget = target

	cx, cy := target.Center()
	ordered := 0
	for _, other := range m.Units() {
		if other == u || other.Owner != OwnerPlayer || other.IsCommander() || !other.IsAlive() {
			continue
		}
		if !InRange(u.X, u.Y, other.X, other.Y, CommandRange) {
			continue
		}
		other.MoveTo(cx, cy)
		ordered++
	}
	return ordered
}

func (u *Unit) StopCommandAttack() {
	u.CommandMode = false
	u.CommandTarget = nil
}
