package game

type UnitView struct {
	ID          string
	Type        UnitType
	Owner       Owner
	X           float64
	Y           float64
	Health      int
	MaxHealth   int
	AttackRange int
	Moving      bool
	Selected    bool
	Elite       bool
	Commanding  bool
	Flash       float64
	LeaderID    string
	TargetX     float64
	TargetY     float64
}

type CastleView struct {
	X            float64
	Y            float64
	Owner        Owner
	Level        int
	MaxLevel     int
	Health       int
	MaxHealth    int
	Size         int
	DefenseRange float64
	DefenseFlash float64
	// DefenseTargetID is the unit last hit by the castle defense, if any.
	DefenseTargetID string
}

type ResourceView struct {
	X         float64
	Y         float64
	Kind      ResourceKind
	Amount    float64
	MaxAmount float64
	Size      int
}

// Snapshot is a value copy of the battle for presentation layers.
type Snapshot struct {
	Phase          Phase
	Level          Level
	Clock          float64
	SpawnCountdown float64
	Stock          Stock
	UpgradeBonus   float64
	UpgradeCost    Cost
	CanUpgrade     bool
	SelectedCount  int
	Unlocked       []UnitType
	WorldWidth     int
	WorldHeight    int

	PlayerCastle CastleView
	EnemyCastles []CastleView
	Units        []UnitView
	Resources    []ResourceView
}

func (s *Session) Snapshot() Snapshot {
	cost, canUpgrade := s.player.UpgradeCost()
	snap := Snapshot{
		Phase:          s.phase,
		Level:          s.level,
		Clock:          s.clock,
		SpawnCountdown: s.SpawnCountdown(),
		Stock:          s.player.Resources,
		UpgradeBonus:   s.player.UpgradeBonus,
		UpgradeCost:    cost,
		CanUpgrade:     canUpgrade,
		SelectedCount:  len(s.units.Selected()),
		Unlocked:       UnlockedUnitTypes(s.level.Number),
		WorldWidth:     s.world.WorldWidth(),
		WorldHeight:    s.world.WorldHeight(),
		PlayerCastle:   castleView(s.player),
		EnemyCastles:   make([]CastleView, 0, len(s.enemies)),
		Units:          make([]UnitView, 0, s.units.Len()),
		Resources:      make([]ResourceView, 0, len(s.resources.Resources())),
	}
	for _, c := range s.enemies {
		snap.EnemyCastles = append(snap.EnemyCastles, castleView(c))
	}
	for _, u := range s.units.Units() {
		snap.Units = append(snap.Units, UnitView{
			ID:          u.ID,
			Type:        u.Type,
			Owner:       u.Owner,
			X:           u.X,
			Y:           u.Y,
			Health:      u.Health,
			MaxHealth:   u.MaxHealth,
			AttackRange: u.AttackRange,
			Moving:      u.Moving,
			Selected:    u.Selected,
			Elite:       u.Elite,
			Commanding:  u.CommandMode,
			Flash:       u.Flash,
			LeaderID:    u.LeaderID,
			TargetX:     u.TargetX,
			TargetY:     u.TargetY,
		})
	}
	for _, r := range s.resources.Resources() {
		snap.Resources = append(snap.Resources, ResourceView{
			X:         r.X,
			Y:         r.Y,
			Kind:      r.Kind,
			Amount:    r.Amount,
			MaxAmount: r.MaxAmount,
			Size:      r.Size,
		})
	}
	return snap
}

func castleView(c *Castle) CastleView {
	v := CastleView{
		X:            c.X,
		Y:            c.Y,
		Owner:        c.Owner,
		Level:        c.Level,
		MaxLevel:     c.MaxLevel,
		Health:       c.Health,
		MaxHealth:    c.MaxHealth,
		Size:         c.Size,
		DefenseRange: c.DefenseRange,
		DefenseFlash: c.DefenseFlash,
	}
	if c.DefenseTarget != nil {
		v.DefenseTargetID = c.DefenseTarget.ID
	}
	return v
}

// UnitByID finds a unit view in the snapshot.
func (s Snapshot) UnitByID(id string) (UnitView, bool) {
	for _, u := range s.Units {
		if u.ID == id {
			return u, true
		}
	}
	return UnitView{}, false
}

func (s Snapshot) CountUnits(owner Owner) int {
	n := 0
	for _, u := range s.Units {
		if u.Owner == owner {
			n++
		}
	}
	return n
}
