package game

import "strings"

// UnitType names a kind of unit, such as "knight". It is the lower-case key used in
// commands, saves and the unit table.
type UnitType string

const (
	UnitPeasant   UnitType = "peasant"
	UnitKnight    UnitType = "knight"
	UnitArcher    UnitType = "archer"
	UnitCavalry   UnitType = "cavalry"
	UnitCatapult  UnitType = "catapult"
	UnitMusket    UnitType = "musket"
	UnitCannon    UnitType = "cannon"
	UnitBattalion UnitType = "battalion"
	UnitDragoons  UnitType = "dragoons"
	UnitCommander UnitType = "commander"
	UnitGiant     UnitType = "giant"
)

// Owner is the side a unit or castle belongs to. Neutral units neither attack nor get
// attacked.
type Owner string

const (
	OwnerPlayer  Owner = "player"
	OwnerEnemy   Owner = "enemy"
	OwnerNeutral Owner = "neutral"
)

// Cost is a bundle of the four castle resources.
type Cost struct {
	Gold  int `json:"gold"`
	Wood  int `json:"wood"`
	Stone int `json:"stone"`
	Food  int `json:"food"`
}

// IsZero reports whether every resource in c is zero.
func (c Cost) IsZero() bool {
	return c == Cost{}
}

// UnitStats are the combat numbers of a unit. Speed is in world units per second and
// AttackRange in world units. Cost is the unit's nominal value and is not what the castle
// charges; see RecruitCost.
type UnitStats struct {
	MaxHealth    int
	Speed        int
	AttackDamage int
	AttackRange  int
	Cost         Cost
}

type unitDefinition struct {
	Type    UnitType
	Name    string
	Stats   UnitStats
	Recruit Cost
	// UnlockLevel is the first campaign level where the player may recruit this type.
	UnlockLevel int
}

var unitTypeOrder = []UnitType{
	UnitPeasant,
	UnitKnight,
	UnitArcher,
	UnitCavalry,
	UnitCatapult,
	UnitMusket,
	UnitCannon,
	UnitBattalion,
	UnitDragoons,
	UnitCommander,
	UnitGiant,
}

var unitDefinitions = map[UnitType]unitDefinition{
	UnitPeasant: {
		Type:        UnitPeasant,
		Name:        "Peasant",
		Stats:       UnitStats{MaxHealth: 60, Speed: 100, AttackDamage: 25, AttackRange: 20, Cost: Cost{Gold: 10, Food: 5}},
		Recruit:     Cost{Gold: 5},
		UnlockLevel: 1,
	},
	UnitKnight: {
		Type:        UnitKnight,
		Name:        "Knight",
		Stats:       UnitStats{MaxHealth: 120, Speed: 45, AttackDamage: 40, AttackRange: 20, Cost: Cost{Gold: 40, Food: 20, Stone: 10}},
		Recruit:     Cost{Gold: 25, Food: 10, Stone: 3},
		UnlockLevel: 1,
	},
	UnitArcher: {
		Type:        UnitArcher,
		Name:        "Archer",
		Stats:       UnitStats{MaxHealth: 60, Speed: 70, AttackDamage: 40, AttackRange: 100, Cost: Cost{Gold: 30, Food: 15, Wood: 10}},
		Recruit:     Cost{Gold: 30, Food: 10, Wood: 3},
		UnlockLevel: 1,
	},
	UnitCavalry: {
		Type:        UnitCavalry,
		Name:        "Cavalry",
		Stats:       UnitStats{MaxHealth: 150, Speed: 180, AttackDamage: 80, AttackRange: 30, Cost: Cost{}},
		Recruit:     Cost{Gold: 35, Food: 10, Stone: 3},
		UnlockLevel: 1,
	},
	UnitCatapult: {
		Type:        UnitCatapult,
		Name:        "Catapult",
		Stats:       UnitStats{MaxHealth: 250, Speed: 30, AttackDamage: 60, AttackRange: 200, Cost: Cost{Gold: 100, Food: 30, Wood: 40, Stone: 20}},
		Recruit:     Cost{Gold: 80, Food: 20, Wood: 30, Stone: 20},
		UnlockLevel: 1,
	},
	UnitMusket: {
		Type:        UnitMusket,
		Name:        "Musket",
		Stats:       UnitStats{MaxHealth: 60, Speed: 60, AttackDamage: 50, AttackRange: 300, Cost: Cost{Gold: 30, Food: 25, Wood: 15, Stone: 10}},
		Recruit:     Cost{Gold: 60, Food: 25, Wood: 15, Stone: 10},
		UnlockLevel: 5,
	},
	UnitCannon: {
		Type:        UnitCannon,
		Name:        "Cannon",
		Stats:       UnitStats{MaxHealth: 200, Speed: 25, AttackDamage: 200, AttackRange: 175, Cost: Cost{Gold: 80, Food: 30, Wood: 34, Stone: 25}},
		Recruit:     Cost{Gold: 100, Wood: 40, Stone: 50},
		UnlockLevel: 6,
	},
	UnitBattalion: {
		Type:        UnitBattalion,
		Name:        "Battalion",
		Stats:       UnitStats{MaxHealth: 150, Speed: 80, AttackDamage: 40, AttackRange: 25, Cost: Cost{}},
		Recruit:     Cost{Gold: 60, Food: 35, Wood: 25, Stone: 5},
		UnlockLevel: 10,
	},
	UnitDragoons: {
		Type:        UnitDragoons,
		Name:        "Dragoons",
		Stats:       UnitStats{MaxHealth: 120, Speed: 180, AttackDamage: 30, AttackRange: 35, Cost: Cost{Gold: 100, Food: 40}},
		Recruit:     Cost{Gold: 100, Food: 40},
		UnlockLevel: 10,
	},
	UnitCommander: {
		Type:        UnitCommander,
		Name:        "Commander",
		Stats:       UnitStats{MaxHealth: 120, Speed: 180, AttackDamage: 150, AttackRange: 25, Cost: Cost{Gold: 80, Food: 20, Wood: 5, Stone: 5}},
		Recruit:     Cost{Gold: 80, Food: 20, Wood: 5, Stone: 5},
		UnlockLevel: 15,
	},
	UnitGiant: {
		Type:        UnitGiant,
		Name:        "Giant",
		Stats:       UnitStats{MaxHealth: 300, Speed: 40, AttackDamage: 150, AttackRange: 20, Cost: Cost{Gold: 100, Food: 50, Stone: 15}},
		Recruit:     Cost{Gold: 200, Food: 80, Stone: 30},
		UnlockLevel: 21,
	},
}

// AllUnitTypes returns every unit type in table order. The slice is a copy.
func AllUnitTypes() []UnitType {
	out := make([]UnitType, len(unitTypeOrder))
	copy(out, unitTypeOrder)
	return out
}

// Valid reports whether t is in the unit table.
func (t UnitType) Valid() bool {
	_, ok := unitDefinitions[t]
	return ok
}

// DisplayName is the capitalised name shown to players. Unknown types return their raw string.
func (t UnitType) DisplayName() string {
	if def, ok := unitDefinitions[t]; ok {
		return def.Name
	}
	return string(t)
}

// ParseUnitType accepts a unit name in any case with surrounding spaces.
func ParseUnitType(raw string) (UnitType, bool) {
	t := UnitType(strings.TrimSpace(strings.ToLower(raw)))
	if !t.Valid() {
		return "", false
	}
	return t, true
}

// BaseStats returns the table entry for t. Unknown types resolve to peasant stats.
func BaseStats(t UnitType) UnitStats {
	def, ok := unitDefinitions[t]
	if !ok {
		def = unitDefinitions[UnitPeasant]
	}
	return def.Stats
}

// RecruitCost is what the castle charges to recruit t; distinct from UnitStats.Cost.
func RecruitCost(t UnitType) (Cost, bool) {
	def, ok := unitDefinitions[t]
	if !ok {
		return Cost{}, false
	}
	return def.Recruit, true
}

// UnlockLevel is the first campaign level that allows recruiting t. Unknown types get a
// level past the end of the campaign, so they never unlock.
func UnlockLevel(t UnitType) int {
	def, ok := unitDefinitions[t]
	if !ok {
		return MaxCampaignLevel + 1
	}
	return def.UnlockLevel
}

// IsUnitUnlocked reports whether t may be recruited on level.
func IsUnitUnlocked(t UnitType, level int) bool {
	return level >= UnlockLevel(t)
}

// UnlockedUnitTypes lists recruitable types at level in table order.
func UnlockedUnitTypes(level int) []UnitType {
	out := make([]UnitType, 0, len(unitTypeOrder))
	for _, t := range unitTypeOrder {
		if IsUnitUnlocked(t, level) {
			out = append(out, t)
		}
	}
	return out
}

// Enemy units are weaker than the table says.
const (
	enemyHealthFactor = 0.5
	enemyDamageFactor = 0.5
	enemySpeedFactor  = 0.8
)

// DeriveStats applies the player upgrade multiplier (player units only, bonus > 1) and then
// the fixed enemy nerfs. Cost is never scaled.
func DeriveStats(t UnitType, owner Owner, upgradeBonus float64) UnitStats {
	stats := BaseStats(t)
	if owner == OwnerPlayer && upgradeBonus > 1.0 {
		stats.MaxHealth = scaleStat(stats.MaxHealth, upgradeBonus)
		stats.Speed = scaleStat(stats.Speed, upgradeBonus)
		stats.AttackDamage = scaleStat(stats.AttackDamage, upgradeBonus)
		stats.AttackRange = scaleStat(stats.AttackRange, upgradeBonus)
	}
	if owner == OwnerEnemy {
		stats.MaxHealth = scaleStat(stats.MaxHealth, enemyHealthFactor)
		stats.AttackDamage = scaleStat(stats.AttackDamage, enemyDamageFactor)
		stats.Speed = scaleStat(stats.Speed, enemySpeedFactor)
	}
	return stats
}
