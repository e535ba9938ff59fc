package game

const (
	// UnitSize is the footprint used for hit testing and drawing.
	UnitSize          = 48
	AttackCooldown    = 1.0
	UnitFlashDuration = 0.3
	EngagementRadius  = 200.0
	CommandRange      = 300.0
	arriveDistance    = 2.0
)

// Target is anything a unit can attack.
type Target interface {
	AimPoint() (float64, float64)
	TakeDamage(amount int)
	IsAlive() bool
}

type Unit struct {
	ID    string
	X     float64
	Y     float64
	Type  UnitType
	Owner Owner

	Health       int
	MaxHealth    int
	Speed        int
	AttackDamage int
	AttackRange  int
	Cost         Cost

	TargetX float64
	TargetY float64
	Moving  bool

	Flash    float64
	Selected bool
	Elite    bool

	// LeaderID is set on escorts spawned by a battalion or dragoons leader.
	LeaderID  string
	EscortIDs []string

	CommandMode   bool
	CommandTarget *Castle

	lastAttack  float64
	hasAttacked bool
}

func NewUnit(x, y float64, t UnitType, owner Owner, upgradeBonus float64) *Unit {
	if !t.Valid() {
		t = UnitPeasant
	}
	stats := DeriveStats(t, owner, upgradeBonus)
	return &Unit{
		X:            x,
		Y:            y,
		Type:         t,
		Owner:        owner,
		Health:       stats.MaxHealth,
		MaxHealth:    stats.MaxHealth,
		Speed:        stats.Speed,
		AttackDamage: stats.AttackDamage,
		AttackRange:  stats.AttackRange,
		Cost:         stats.Cost,
		TargetX:      x,
		TargetY:      y,
	}
}

func (u *Unit) IsAlive() bool {
	return u.Health > 0
}

func (u *Unit) AimPoint() (float64, float64) {
	return u.X, u.Y
}

// Center is the middle of the unit footprint; castle defenses aim here.
func (u *Unit) Center() (float64, float64) {
	return u.X + UnitSize/2, u.Y + UnitSize/2
}

func (u *Unit) ContainsPoint(x, y float64) bool {
	return Rect{X: u.X, Y: u.Y, W: UnitSize, H: UnitSize}.Contains(x, y)
}

func (u *Unit) Bounds() Rect {
	return Rect{X: u.X, Y: u.Y, W: UnitSize, H: UnitSize}
}

func (u *Unit) MoveTo(x, y float64) {
	u.TargetX = x
	u.TargetY = y
	u.Moving = true
}

func (u *Unit) TakeDamage(amount int) {
	u.Health -= amount
	if u.Health < 0 {
		u.Health = 0
	}
}

// ReadyToAttack reports whether the cooldown has elapsed at simulation time now.
func (u *Unit) ReadyToAttack(now float64) bool {
	return !u.hasAttacked || now-u.lastAttack >= AttackCooldown
}

func (u *Unit) Attack(target Target, now float64) bool {
	if target == nil || !u.ReadyToAttack(now) {
		return false
	}
	tx, ty := target.AimPoint()
	if !InRange(u.X, u.Y, tx, ty, float64(u.AttackRange)) {
		return false
	}
	target.TakeDamage(u.AttackDamage)
	u.lastAttack = now
	u.hasAttacked = true
	u.Flash = UnitFlashDuration
	return true
}

func (u *Unit) Update(dt float64) {
	if !u.IsAlive() {
		return
	}
	if u.Flash > 0 {
		u.Flash -= dt
		if u.Flash < 0 {
			u.Flash = 0
		}
	}
	if !u.Moving {
		return
	}

	dx := u.TargetX - u.X
	dy := u.TargetY - u.Y
	dist := Distance(u.X, u.Y, u.TargetX, u.TargetY)
	step := float64(u.Speed) * dt
	if dist <= arriveDistance || step >= dist {
		u.X = u.TargetX
		u.Y = u.TargetY
		u.Moving = false
		return
	}
	u.X += dx / dist * step
	u.Y += dy / dist * step
}

// ApplyBonus scales the combat stats of a living unit in place.
func (u *Unit) ApplyBonus(factor float64) {
	u.Health = scaleStat(u.Health, factor)
	u.MaxHealth = scaleStat(u.MaxHealth, factor)
	u.AttackDamage = scaleStat(u.AttackDamage, factor)
	u.Speed = scaleStat(u.Speed, factor)
	u.AttackRange = scaleStat(u.AttackRange, factor)
}

func (u *Unit) IsCommander() bool {
	return u.Type == UnitCommander
}
