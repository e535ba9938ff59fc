package game

import (
	"math"
	"slices"

	"github.com/google/uuid"
)

// UnitManager owns every unit on the field and the player's selection.
type UnitManager struct {
	units    []*Unit
	selected []*Unit
	newID    func() string
}

// NewUnitManager uses newID to label units; nil falls back to random UUIDs.
func NewUnitManager(newID func() string) *UnitManager {
	if newID == nil {
		newID = uuid.NewString
	}
	return &UnitManager{newID: newID}
}

func (m *UnitManager) Add(u *Unit) {
	if u.ID == "" {
		u.ID = m.newID()
	}
	m.units = append(m.units, u)
}

// Units returns the live backing list in insertion order. Callers must not append to it.
func (m *UnitManager) Units() []*Unit {
	return m.units
}

func (m *UnitManager) Len() int {
	return len(m.units)
}

func (m *UnitManager) Get(id string) *Unit {
	for _, u := range m.units {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// ByOwner lists living units of one side in list order.
func (m *UnitManager) ByOwner(owner Owner) []*Unit {
	out := make([]*Unit, 0, len(m.units))
	for _, u := range m.units {
		if u.Owner == owner && u.IsAlive() {
			out = append(out, u)
		}
	}
	return out
}

func (m *UnitManager) Select(u *Unit) {
	if u == nil || u.Selected {
		return
	}
	u.Selected = true
	m.selected = append(m.selected, u)
}

func (m *UnitManager) Deselect(u *Unit) {
	idx := slices.Index(m.selected, u)
	if idx < 0 {
		return
	}
	u.Selected = false
	m.selected = slices.Delete(m.selected, idx, idx+1)
}

func (m *UnitManager) DeselectAll() {
	for _, u := range m.selected {
		u.Selected = false
	}
	m.selected = m.selected[:0]
}

func (m *UnitManager) Selected() []*Unit {
	return m.selected
}

// MoveSelected spreads the selection three abreast around the target, 20 units apart.
func (m *UnitManager) MoveSelected(x, y float64) {
	for i, u := range m.selected {
		offX := float64(i%3-1) * 20
		offY := float64(i/3-1) * 20
		u.MoveTo(x+offX, y+offY)
	}
}

// UnitAt returns the first living unit whose footprint covers the point.
func (m *UnitManager) UnitAt(x, y float64) *Unit {
	for _, u := range m.units {
		if u.IsAlive() && u.ContainsPoint(x, y) {
			return u
		}
	}
	return nil
}

// Update acquires movement targets for idle units and advances every unit.
func (m *UnitManager) Update(dt float64, player *Castle, enemies []*Castle) {
	for _, u := range m.units {
		if u.IsAlive() && !u.Moving {
			m.acquireTarget(u, player, enemies)
		}
		u.Update(dt)
	}
}

func (m *UnitManager) acquireTarget(u *Unit, player *Castle, enemies []*Castle) {
	var (
		tx, ty float64
		ok     bool
	)
	switch u.Owner {
	case OwnerEnemy:
		tx, ty, ok = m.enemyTarget(u, player)
	case OwnerPlayer:
		tx, ty, ok = m.playerTarget(u, enemies)
	}
	if !ok {
		return
	}
	if Distance(u.X, u.Y, tx, ty) > float64(u.AttackRange) {
		u.MoveTo(tx, ty)
	}
}

// enemyTarget prefers the player castle and otherwise hunts the nearest player unit, map-wide.
func (m *UnitManager) enemyTarget(u *Unit, player *Castle) (float64, float64, bool) {
	if player != nil && player.IsAlive() {
		x, y := player.Center()
		return x, y, true
	}
	nearest := m.nearest(u, OwnerPlayer, math.Inf(1))
	if nearest == nil {
		return 0, 0, false
	}
	return nearest.X, nearest.Y, true
}

// playerTarget only engages inside EngagementRadius: enemy units first, then enemy castles.
func (m *UnitManager) playerTarget(u *Unit, enemies []*Castle) (float64, float64, bool) {
	if nearest := m.nearest(u, OwnerEnemy, EngagementRadius); nearest != nil {
		return nearest.X, nearest.Y, true
	}
	var (
		best  = math.Inf(1)
		found bool
		tx    float64
		ty    float64
	)
	for _, c := range enemies {
		if c == nil || !c.IsAlive() {
			continue
		}
		cx, cy := c.Center()
		d := Distance(u.X, u.Y, cx, cy)
		if d <= EngagementRadius && d < best {
			best, tx, ty, found = d, cx, cy, true
		}
	}
	return tx, ty, found
}

func (m *UnitManager) nearest(from *Unit, owner Owner, radius float64) *Unit {
	var (
		nearest *Unit
		best    = math.Inf(1)
	)
	for _, u := range m.units {
		if u.Owner != owner || !u.IsAlive() {
			continue
		}
		d := Distance(from.X, from.Y, u.X, u.Y)
		if d <= radius && d < best {
			nearest = u
			best = d
		}
	}
	return nearest
}

// PurgeDead removes dead units from the field and the selection and returns them.
func (m *UnitManager) PurgeDead() []*Unit {
	var dead []*Unit
	alive := m.units[:0]
	for _, u := range m.units {
		if u.IsAlive() {
			alive = append(alive, u)
			continue
		}
		dead = append(dead, u)
	}
	clear(m.units[len(alive):])
	m.units = alive
	if len(dead) == 0 {
		return nil
	}

	m.selected = slices.DeleteFunc(m.selected, func(u *Unit) bool {
		if u.IsAlive() {
			return false
		}
		u.Selected = false
		return true
	})
	return dead
}

// ApplyUpgradeBonus re-buffs every living player unit after a castle upgrade.
func (m *UnitManager) ApplyUpgradeBonus(factor float64) int {
	n := 0
	for _, u := range m.units {
		if u.Owner == OwnerPlayer && u.IsAlive() {
			u.ApplyBonus(factor)
			n++
		}
	}
	return n
}
