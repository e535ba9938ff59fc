package game

const (
	CastleMaxLevel          = 5
	castleStartHealth       = 5500
	castleStartSize         = 128
	castleStartGarrison     = 10
	castleHealthPerLevel    = 50
	castleGarrisonPerLevel  = 5
	castleSizePerLevel      = 8
	castleUpgradeMultiplier = 1.15

	DefenseRange         = 500.0
	DefenseDamage        = 60
	DefenseCooldown      = 1.0
	DefenseFlashDuration = 0.5
)

type ResourceKind string

const (
	ResourceGold  ResourceKind = "gold"
	ResourceWood  ResourceKind = "wood"
	ResourceStone ResourceKind = "stone"
	ResourceFood  ResourceKind = "food"
)

var resourceKinds = []ResourceKind{ResourceGold, ResourceWood, ResourceStone, ResourceFood}

func AllResourceKinds() []ResourceKind {
	out := make([]ResourceKind, len(resourceKinds))
	copy(out, resourceKinds)
	return out
}

// Stock is what a castle holds. Amounts never go negative.
type Stock struct {
	Gold  int `json:"gold"`
	Wood  int `json:"wood"`
	Stone int `json:"stone"`
	Food  int `json:"food"`
}

func (s Stock) Covers(c Cost) bool {
	return s.Gold >= c.Gold && s.Wood >= c.Wood && s.Stone >= c.Stone && s.Food >= c.Food
}

func (s *Stock) deduct(c Cost) {
	s.Gold -= c.Gold
	s.Wood -= c.Wood
	s.Stone -= c.Stone
	s.Food -= c.Food
}

func (s *Stock) add(kind ResourceKind, amount int) bool {
	switch kind {
	case ResourceGold:
		s.Gold += amount
	case ResourceWood:
		s.Wood += amount
	case ResourceStone:
		s.Stone += amount
	case ResourceFood:
		s.Food += amount
	default:
		return false
	}
	return true
}

func (s Stock) Amount(kind ResourceKind) int {
	switch kind {
	case ResourceGold:
		return s.Gold
	case ResourceWood:
		return s.Wood
	case ResourceStone:
		return s.Stone
	case ResourceFood:
		return s.Food
	default:
		return 0
	}
}

type Castle struct {
	X     float64
	Y     float64
	Owner Owner

	Level       int
	MaxLevel    int
	Health      int
	MaxHealth   int
	Size        int
	Resources   Stock
	Garrison    []UnitType
	MaxGarrison int

	// UpgradeBonus multiplies the stats of newly recruited player units.
	UpgradeBonus float64

	DefenseRange    float64
	DefenseDamage   int
	DefenseCooldown float64
	DefenseFlash    float64
	DefenseTarget   *Unit

	lastDefense float64
	hasDefended bool
}

func NewCastle(x, y float64, owner Owner) *Castle {
	c := &Castle{
		X:            x,
		Y:            y,
		Owner:        owner,
		Level:        1,
		MaxLevel:     CastleMaxLevel,
		Health:       castleStartHealth,
		MaxHealth:    castleStartHealth,
		Size:         castleStartSize,
		Resources:    Stock{Gold: 100, Wood: 50, Stone: 30, Food: 80},
		MaxGarrison:  castleStartGarrison,
		UpgradeBonus: 1.0,
	}
	if owner == OwnerPlayer {
		c.DefenseRange = DefenseRange
		c.DefenseDamage = DefenseDamage
		c.DefenseCooldown = DefenseCooldown
	}
	return c
}

func (c *Castle) Center() (float64, float64) {
	half := float64(c.Size / 2)
	return c.X + half, c.Y + half
}

func (c *Castle) AimPoint() (float64, float64) {
	return c.Center()
}

func (c *Castle) Bounds() Rect {
	return Rect{X: c.X, Y: c.Y, W: float64(c.Size), H: float64(c.Size)}
}

func (c *Castle) ContainsPoint(x, y float64) bool {
	return c.Bounds().Contains(x, y)
}

func (c *Castle) IsAlive() bool {
	return c.Health > 0
}

func (c *Castle) TakeDamage(amount int) {
	c.Health -= amount
	if c.Health < 0 {
		c.Health = 0
	}
}

// UpgradeCost is the price of the next level; false once the castle is at max level.
func (c *Castle) UpgradeCost() (Cost, bool) {
	if c.Level >= c.MaxLevel {
		return Cost{}, false
	}
	return Cost{Gold: 50 * c.Level, Wood: 30 * c.Level, Stone: 40 * c.Level}, true
}

func (c *Castle) Upgrade() bool {
	cost, ok := c.UpgradeCost()
	if !ok || !c.Resources.Covers(cost) {
		return false
	}
	c.Resources.deduct(cost)
	c.levelUp()
	c.Health = c.MaxHealth
	if c.Owner == OwnerPlayer {
		c.UpgradeBonus *= castleUpgradeMultiplier
	}
	return true
}

func (c *Castle) levelUp() {
	c.Level++
	c.MaxHealth += castleHealthPerLevel
	c.MaxGarrison += castleGarrisonPerLevel
	c.Size += castleSizePerLevel
}

// RestoreUpgrades replays saved level-ups without charging for them and stamps the saved bonus.
func (c *Castle) RestoreUpgrades(level int, bonus float64) {
	if level > c.MaxLevel {
		level = c.MaxLevel
	}
	if level > c.Level {
		for c.Level < level {
			c.levelUp()
		}
		c.Health = c.MaxHealth
	}
	if bonus > 0 {
		c.UpgradeBonus = bonus
	}
}

func (c *Castle) AddResources(kind ResourceKind, amount int) bool {
	return c.Resources.add(kind, amount)
}

func (c *Castle) CanRecruitUnit(cost Cost) bool {
	return c.Resources.Covers(cost)
}

func (c *Castle) RecruitUnit(t UnitType, cost Cost) bool {
	if !c.CanRecruitUnit(cost) {
		return false
	}
	c.Resources.deduct(cost)
	c.Garrison = append(c.Garrison, t)
	return true
}

func (c *Castle) ReadyToDefend(now float64) bool {
	return !c.hasDefended || now-c.lastDefense >= c.DefenseCooldown
}

// DefenseAttack fires the castle defense at target. Only player castles defend.
func (c *Castle) DefenseAttack(target *Unit, now float64) bool {
	if c.Owner != OwnerPlayer || target == nil || !c.ReadyToDefend(now) {
		return false
	}
	cx, cy := c.Center()
	tx, ty := target.Center()
	if !InRange(cx, cy, tx, ty, c.DefenseRange) {
		return false
	}
	target.TakeDamage(c.DefenseDamage)
	c.lastDefense = now
	c.hasDefended = true
	c.DefenseFlash = DefenseFlashDuration
	c.DefenseTarget = target
	return true
}

// UpdateDefense picks the nearest living enemy inside the defense radius and fires at it.
func (c *Castle) UpdateDefense(dt, now float64, enemies []*Unit) bool {
	if c.Owner != OwnerPlayer {
		return false
	}
	if c.DefenseFlash > 0 {
		c.DefenseFlash -= dt
		if c.DefenseFlash < 0 {
			c.DefenseFlash = 0
		}
	}

	cx, cy := c.Center()
	var nearest *Unit
	best := c.DefenseRange
	for _, e := range enemies {
		if e == nil || !e.IsAlive() {
			continue
		}
		ex, ey := e.Center()
		d := Distance(cx, cy, ex, ey)
		if d <= c.DefenseRange && (nearest == nil || d < best) {
			nearest = e
			best = d
		}
	}
	if nearest == nil {
		return false
	}
	return c.DefenseAttack(nearest, now)
}
