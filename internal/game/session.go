package game

import (
	"fmt"
	"math/rand/v2"
)

const (
	incomeInterval = 0.7
	spawnJitter    = 50
	recruitGap     = 20
)

// castleIncome is the trickle the player castle earns every incomeInterval.
var castleIncome = Stock{Gold: 5, Food: 3, Wood: 2, Stone: 1}

// Session is one battle on one level. It is not safe for concurrent use; the host loop owns it.
type Session struct {
	level Level
	store ProgressStore
	rng   *rand.Rand

	world     *WorldMap
	player    *Castle
	enemies   []*Castle
	units     *UnitManager
	resources *ResourceManager

	clock       float64
	spawnTimer  float64
	incomeTimer float64
	phase       Phase

	pending []Event
}

func NewSession(cfg SessionConfig) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("session config: %w", err)
	}
	level, _ := LevelByNumber(cfg.Level)
	store := cfg.Store
	if store == nil {
		store = &MemoryStore{}
	}

	s := &Session{
		level:     level,
		store:     store,
		rng:       seededRNG(cfg.Seed),
		world:     NewWorldMap(MapTilesWide, MapTilesHigh, MapTileSize),
		player:    NewCastle(PlayerCastlePosition.X, PlayerCastlePosition.Y, OwnerPlayer),
		units:     NewUnitManager(seededIDs(cfg.Seed)),
		resources: NewResourceManager(),
		phase:     PhasePlaying,
	}

	upgrades, err := store.LoadCastleUpgrades()
	if err != nil {
		s.pending = append(s.pending, Event{
			Kind:    EventLoadFailed,
			Message: "castle upgrades unreadable, starting from level 1",
			Err:     err,
		})
	}
	s.player.RestoreUpgrades(upgrades.Level, upgrades.Bonus)

	for _, p := range EnemyCastlePositions(level.Number) {
		s.enemies = append(s.enemies, NewCastle(p.X, p.Y, OwnerEnemy))
	}

	pickups := cfg.PickupCount
	if pickups == 0 {
		pickups = DefaultPickupCount
	}
	s.resources.Scatter(s.world, s.rng, pickups)
	return s, nil
}

func (s *Session) Level() Level                { return s.level }
func (s *Session) Phase() Phase                { return s.phase }
func (s *Session) Clock() float64              { return s.clock }
func (s *Session) PlayerCastle() *Castle       { return s.player }
func (s *Session) EnemyCastles() []*Castle     { return s.enemies }
func (s *Session) Units() *UnitManager         { return s.units }
func (s *Session) Resources() *ResourceManager { return s.resources }
func (s *Session) World() *WorldMap            { return s.world }

func (s *Session) SpawnCountdown() float64 {
	return max(0, s.level.SpawnInterval()-s.spawnTimer)
}

func (s *Session) over() bool {
	return s.phase != PhasePlaying
}

// Tick advances the battle by dt seconds and reports what happened. Once the battle is
// decided further ticks only flush queued events.
func (s *Session) Tick(dt float64) []Event {
	events := s.drainPending()
	if s.over() {
		return events
	}
	if dt < 0 {
		dt = 0
	}

	s.clock += dt
	s.spawnTimer += dt
	if s.spawnTimer >= s.level.SpawnInterval() {
		s.spawnTimer = 0
		events = append(events, s.spawnEnemyWave()...)
	}

	s.units.Update(dt, s.player, s.enemies)
	ResolveCombat(s.clock, s.units.Units(), s.player, s.enemies)
	s.player.UpdateDefense(dt, s.clock, s.units.ByOwner(OwnerEnemy))

	s.resources.Update(dt)
	s.incomeTimer += dt
	if s.incomeTimer >= incomeInterval {
		s.incomeTimer = 0
		s.player.AddResources(ResourceGold, castleIncome.Gold)
		s.player.AddResources(ResourceFood, castleIncome.Food)
		s.player.AddResources(ResourceWood, castleIncome.Wood)
		s.player.AddResources(ResourceStone, castleIncome.Stone)
	}

	events = append(events, s.purge()...)
	events = append(events, s.checkOutcome()...)
	return events
}

func (s *Session) drainPending() []Event {
	if len(s.pending) == 0 {
		return nil
	}
	out := s.pending
	s.pending = nil
	return out
}

// spawnEnemyWave sends one or two units of a single random type out of a random enemy castle.
func (s *Session) spawnEnemyWave() []Event {
	if len(s.enemies) == 0 {
		return nil
	}
	castle := s.enemies[s.rng.IntN(len(s.enemies))]
	pool := EnemyUnitPool(s.level.Number)
	t := pool[s.rng.IntN(len(pool))]
	count := 1 + s.rng.IntN(2)

	events := []Event{{
		Kind:     EventEnemyWave,
		Message:  fmt.Sprintf("%d enemy %s approaching", count, t.DisplayName()),
		UnitType: t,
		Owner:    OwnerEnemy,
		Level:    s.level.Number,
	}}
	for i := 0; i < count; i++ {
		x := castle.X + float64(s.rng.IntN(2*spawnJitter+1)-spawnJitter)
		y := castle.Y + float64(s.rng.IntN(2*spawnJitter+1)-spawnJitter)
		u := NewUnit(x, y, t, OwnerEnemy, 1.0)
		u.Health = scaleStat(u.Health, s.level.EnemyMult)
		u.MaxHealth = scaleStat(u.MaxHealth, s.level.EnemyMult)
		u.AttackDamage = scaleStat(u.AttackDamage, s.level.EnemyMult)
		s.units.Add(u)
		events = append(events, spawnedEvent(u))
		for _, escort := range u.SpawnEscort(s.units, 1.0) {
			events = append(events, spawnedEvent(escort))
		}
	}
	return events
}

func spawnedEvent(u *Unit) Event {
	return Event{
		Kind:     EventUnitSpawned,
		UnitID:   u.ID,
		UnitType: u.Type,
		Owner:    u.Owner,
	}
}

func (s *Session) purge() []Event {
	var events []Event
	for _, u := range s.units.PurgeDead() {
		events = append(events, Event{
			Kind:     EventUnitDied,
			UnitID:   u.ID,
			UnitType: u.Type,
			Owner:    u.Owner,
		})
	}

	standing := s.enemies[:0]
	for _, c := range s.enemies {
		if c.IsAlive() {
			standing = append(standing, c)
			continue
		}
		events = append(events, Event{
			Kind:    EventCastleDestroyed,
			Message: "enemy castle destroyed",
			Owner:   OwnerEnemy,
		})
	}
	clear(s.enemies[len(standing):])
	s.enemies = standing
	return events
}

// checkOutcome decides the battle. Losing the player castle wins over clearing the map in
// the same tick.
func (s *Session) checkOutcome() []Event {
	switch {
	case !s.player.IsAlive():
		s.phase = PhaseLost
		return []Event{{Kind: EventDefeat, Message: "your castle has been destroyed", Level: s.level.Number}}
	case len(s.enemies) == 0:
		s.phase = PhaseWon
		return []Event{{Kind: EventVictory, Message: "all enemy castles destroyed", Level: s.level.Number}}
	default:
		return nil
	}
}
