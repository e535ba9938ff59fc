package game

// Progress is the highest campaign level the player may select.
type Progress struct {
	MaxLevel int
}

type CastleUpgrades struct {
	Level int
	Bonus float64
}

func DefaultProgress() Progress {
	return Progress{MaxLevel: 1}
}

func DefaultCastleUpgrades() CastleUpgrades {
	return CastleUpgrades{Level: 1, Bonus: 1.0}
}

// ProgressStore persists the two records that survive between battles. Loads return usable
// defaults alongside any error.
type ProgressStore interface {
	LoadProgress() (Progress, error)
	SaveProgress(Progress) error
	LoadCastleUpgrades() (CastleUpgrades, error)
	SaveCastleUpgrades(CastleUpgrades) error
}

// MemoryStore keeps records in memory. The zero value behaves like a fresh install.
type MemoryStore struct {
	progress *Progress
	upgrades *CastleUpgrades

	SaveErr error
}

func (m *MemoryStore) LoadProgress() (Progress, error) {
	if m.progress == nil {
		return DefaultProgress(), nil
	}
	return *m.progress, nil
}

func (m *MemoryStore) SaveProgress(p Progress) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.progress = &p
	return nil
}

func (m *MemoryStore) LoadCastleUpgrades() (CastleUpgrades, error) {
	if m.upgrades == nil {
		return DefaultCastleUpgrades(), nil
	}
	return *m.upgrades, nil
}

func (m *MemoryStore) SaveCastleUpgrades(u CastleUpgrades) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.upgrades = &u
	return nil
}
