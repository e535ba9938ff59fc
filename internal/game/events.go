package game

type EventKind string

const (
	EventUnitSpawned     EventKind = "unit_spawned"
	EventUnitDied        EventKind = "unit_died"
	EventEnemyWave       EventKind = "enemy_wave"
	EventCastleDestroyed EventKind = "castle_destroyed"
	EventVictory         EventKind = "victory"
	EventDefeat          EventKind = "defeat"
	EventLevelUnlocked   EventKind = "level_unlocked"
	EventLoadFailed      EventKind = "load_failed"
	EventSaveFailed      EventKind = "save_failed"
)

// Event is something a presentation layer may want to log or flash on screen.
type Event struct {
	Kind     EventKind
	Message  string
	UnitID   string
	UnitType UnitType
	Owner    Owner
	Level    int
	Err      error
}
