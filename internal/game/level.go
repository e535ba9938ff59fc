package game

const (
	MaxCampaignLevel  = 30
	BaseSpawnInterval = 25.0
)

type Level struct {
	Number      int
	Name        string
	Description string
	// EnemyMult scales enemy health and damage at spawn.
	EnemyMult float64
	// SpawnRate scales BaseSpawnInterval; smaller spawns faster.
	SpawnRate float64
}

func (l Level) SpawnInterval() float64 {
	return BaseSpawnInterval * l.SpawnRate
}

var levelTable = []Level{
	{Number: 1, Name: "Novice Knight", Description: "Learn the basics of warfare", EnemyMult: 1.0, SpawnRate: 1.0},
	{Number: 2, Name: "Skilled Warrior", Description: "Face stronger opposition", EnemyMult: 1.3, SpawnRate: 0.9},
	{Number: 3, Name: "Veteran Commander", Description: "Multiple enemy castles", EnemyMult: 1.6, SpawnRate: 0.8},
	{Number: 4, Name: "Master Tactician", Description: "Elite enemy forces", EnemyMult: 2.0, SpawnRate: 0.7},
	{Number: 5, Name: "Legendary Conqueror", Description: "Musket unlocked", EnemyMult: 2.5, SpawnRate: 0.6},
	{Number: 6, Name: "Artillery Master", Description: "Cannon unlocked", EnemyMult: 3.0, SpawnRate: 0.5},
	{Number: 7, Name: "Fortress Breaker", Description: "Heavily fortified enemies", EnemyMult: 3.5, SpawnRate: 0.45},
	{Number: 8, Name: "War Machine", Description: "Endless enemy waves", EnemyMult: 4.0, SpawnRate: 0.4},
	{Number: 9, Name: "Battle Hardened", Description: "Elite enemy commanders", EnemyMult: 4.5, SpawnRate: 0.35},
	{Number: 10, Name: "Iron Fist", Description: "Massive enemy armies", EnemyMult: 5.0, SpawnRate: 0.3},
	{Number: 11, Name: "Storm Bringer", Description: "Lightning fast enemies", EnemyMult: 5.5, SpawnRate: 0.28},
	{Number: 12, Name: "Castle Crusher", Description: "Enemy siege weapons", EnemyMult: 6.0, SpawnRate: 0.26},
	{Number: 13, Name: "Lord of War", Description: "Multiple enemy fronts", EnemyMult: 6.5, SpawnRate: 0.24},
	{Number: 14, Name: "Death Dealer", Description: "Overwhelming odds", EnemyMult: 7.0, SpawnRate: 0.22},
	{Number: 15, Name: "Apex Predator", Description: "Elite death squads", EnemyMult: 7.5, SpawnRate: 0.2},
	{Number: 16, Name: "Nightmare Lord", Description: "Relentless assault", EnemyMult: 8.0, SpawnRate: 0.18},
	{Number: 17, Name: "Demon Slayer", Description: "Supernatural enemies", EnemyMult: 8.5, SpawnRate: 0.16},
	{Number: 18, Name: "God of War", Description: "Divine intervention needed", EnemyMult: 9.0, SpawnRate: 0.14},
	{Number: 19, Name: "World Ender", Description: "Reality bending enemies", EnemyMult: 9.5, SpawnRate: 0.12},
	{Number: 20, Name: "Omnipotent Ruler", Description: "Ultimate challenge", EnemyMult: 10.0, SpawnRate: 0.7},
	{Number: 21, Name: "Giant Battle", Description: "Giant unlocked", EnemyMult: 10.5, SpawnRate: 0.5},
	{Number: 22, Name: "Titan Clash", Description: "Colossal warfare", EnemyMult: 11.0, SpawnRate: 0.45},
	{Number: 23, Name: "Behemoth Rising", Description: "Massive creatures emerge", EnemyMult: 11.5, SpawnRate: 0.4},
	{Number: 24, Name: "Leviathan War", Description: "Sea monsters join battle", EnemyMult: 12.0, SpawnRate: 0.35},
	{Number: 25, Name: "Kraken Storm", Description: "Tentacled terror", EnemyMult: 12.5, SpawnRate: 0.3},
	{Number: 26, Name: "Dragon Emperor", Description: "Ancient wyrms awaken", EnemyMult: 13.0, SpawnRate: 0.25},
	{Number: 27, Name: "Phoenix Apocalypse", Description: "Eternal flame enemies", EnemyMult: 13.5, SpawnRate: 0.2},
	{Number: 28, Name: "Cosmic Overlord", Description: "Stellar domination", EnemyMult: 14.0, SpawnRate: 0.15},
	{Number: 29, Name: "Void Master", Description: "Reality-warping foes", EnemyMult: 14.5, SpawnRate: 0.1},
	{Number: 30, Name: "Ultimate Conqueror", Description: "Final challenge awaits", EnemyMult: 15.0, SpawnRate: 0.05},
}

func Levels() []Level {
	out := make([]Level, len(levelTable))
	copy(out, levelTable)
	return out
}

func LevelByNumber(n int) (Level, bool) {
	if n < 1 || n > len(levelTable) {
		return Level{}, false
	}
	return levelTable[n-1], true
}

func ClampLevel(n, highest int) int {
	if highest < 1 {
		highest = 1
	}
	if highest > MaxCampaignLevel {
		highest = MaxCampaignLevel
	}
	if n < 1 {
		return 1
	}
	if n > highest {
		return highest
	}
	return n
}

var enemyPoolGates = []struct {
	Type  UnitType
	Level int
}{
	{UnitPeasant, 1},
	{UnitKnight, 1},
	{UnitArcher, 1},
	{UnitCavalry, 1},
	{UnitMusket, 5},
	{UnitCannon, 6},
	{UnitBattalion, 10},
	{UnitGiant, 21},
}

// EnemyUnitPool lists the types enemy castles may field at a level. Dragoons and
// commanders are player-only.
func EnemyUnitPool(level int) []UnitType {
	out := make([]UnitType, 0, len(enemyPoolGates))
	for _, g := range enemyPoolGates {
		if level >= g.Level {
			out = append(out, g.Type)
		}
	}
	return out
}

var PlayerCastlePosition = Point{X: 200, Y: 150}

func EnemyCastlePositions(level int) []Point {
	positions := []Point{{X: 1000, Y: 750}}
	if level >= 2 {
		positions = append(positions, Point{X: 500, Y: 1250})
	}
	if level >= 3 {
		positions = append(positions, Point{X: 1400, Y: 400})
	}
	return positions
}
