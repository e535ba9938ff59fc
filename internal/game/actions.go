package game

import (
	"fmt"
	"math"
)

// SelectAt selects the player unit under the point. Without additive the previous selection
// is dropped first, even when nothing is hit.
func (s *Session) SelectAt(x, y float64, additive bool) (*Unit, error) {
	if !additive {
		s.units.DeselectAll()
	}
	u := s.units.UnitAt(x, y)
	if u == nil || u.Owner != OwnerPlayer {
		return nil, ErrNoSelection
	}
	s.units.Select(u)
	return u, nil
}

// SelectInRect replaces the selection with every player unit whose footprint touches the rect.
func (s *Session) SelectInRect(x0, y0, x1, y1 float64) int {
	s.units.DeselectAll()
	rect := NormalizedRect(x0, y0, x1, y1)
	for _, u := range s.units.ByOwner(OwnerPlayer) {
		if rect.Intersects(u.Bounds()) {
			s.units.Select(u)
		}
	}
	return len(s.units.Selected())
}

func (s *Session) SelectAllPlayerUnits() int {
	s.units.DeselectAll()
	for _, u := range s.units.ByOwner(OwnerPlayer) {
		s.units.Select(u)
	}
	return len(s.units.Selected())
}

func (s *Session) DeselectAll() {
	s.units.DeselectAll()
}

func (s *Session) MoveSelected(x, y float64) error {
	if s.over() {
		return ErrNotPlaying
	}
	if len(s.units.Selected()) == 0 {
		return ErrNoSelection
	}
	s.units.MoveSelected(x, y)
	return nil
}

// Recruit charges the castle and places the unit beside it, with its escort when it has one.
func (s *Session) Recruit(t UnitType) (*Unit, error) {
	if s.over() {
		return nil, ErrNotPlaying
	}
	cost, ok := RecruitCost(t)
	if !ok {
		return nil, fmt.Errorf("recruit %q: %w", t, ErrUnknownUnitType)
	}
	if !IsUnitUnlocked(t, s.level.Number) {
		return nil, fmt.Errorf("recruit %s needs level %d: %w", t, UnlockLevel(t), ErrUnitLocked)
	}
	if !s.player.RecruitUnit(t, cost) {
		return nil, fmt.Errorf("recruit %s: %w", t, ErrInsufficientResources)
	}

	c := s.player
	x := c.X + float64(c.Size) + recruitGap
	y := c.Y + float64(c.Size/2)
	u := NewUnit(x, y, t, OwnerPlayer, c.UpgradeBonus)
	s.units.Add(u)
	escorts := u.SpawnEscort(s.units, c.UpgradeBonus)

	s.pending = append(s.pending, spawnedEvent(u))
	for _, e := range escorts {
		s.pending = append(s.pending, spawnedEvent(e))
	}
	return u, nil
}

// UpgradeCastle levels the player castle, re-buffs the standing army and saves the result.
func (s *Session) UpgradeCastle() error {
	if s.over() {
		return ErrNotPlaying
	}
	if _, ok := s.player.UpgradeCost(); !ok {
		return ErrCastleMaxLevel
	}
	if !s.player.Upgrade() {
		return fmt.Errorf("upgrade castle: %w", ErrInsufficientResources)
	}
	s.units.ApplyUpgradeBonus(castleUpgradeMultiplier)

	rec := CastleUpgrades{Level: s.player.Level, Bonus: s.player.UpgradeBonus}
	if err := s.store.SaveCastleUpgrades(rec); err != nil {
		s.pending = append(s.pending, Event{
			Kind:    EventSaveFailed,
			Message: "could not save castle upgrades",
			Err:     err,
		})
	}
	return nil
}

// CommandAttack sends every selected commander against the enemy castle nearest to the first
// selected commander. It returns the number of units ordered forward.
func (s *Session) CommandAttack() (int, error) {
	if s.over() {
		return 0, ErrNotPlaying
	}
	var commanders []*Unit
	for _, u := range s.units.Selected() {
		if u.IsCommander() && u.IsAlive() {
			commanders = append(commanders, u)
		}
	}
	if len(commanders) == 0 {
		return 0, ErrNoCommanderSelected
	}
	target := s.nearestEnemyCastle(commanders[0].X, commanders[0].Y)
	if target == nil {
		return 0, ErrNoEnemyCastle
	}
	ordered := 0
	for _, c := range commanders {
		ordered += c.StartCommandAttack(target, s.units)
	}
	return ordered, nil
}

func (s *Session) nearestEnemyCastle(x, y float64) *Castle {
	var (
		nearest *Castle
		best    = math.Inf(1)
	)
	for _, c := range s.enemies {
		if !c.IsAlive() {
			continue
		}
		if d := Distance(x, y, c.X, c.Y); d < best {
			nearest, best = c, d
		}
	}
	return nearest
}

// StopCommand ends command mode on every commander and returns how many were commanding.
func (s *Session) StopCommand() int {
	n := 0
	for _, u := range s.units.Units() {
		if u.IsCommander() && u.CommandMode {
			u.StopCommandAttack()
			n++
		}
	}
	return n
}

// Harvest gathers from the pickup under the point into the player castle.
func (s *Session) Harvest(x, y float64) (ResourceKind, int, error) {
	if s.over() {
		return "", 0, ErrNotPlaying
	}
	kind, whole := s.resources.HarvestWholeAt(x, y)
	if kind == "" {
		return "", 0, fmt.Errorf("no resource at %.0f,%.0f", x, y)
	}
	if whole == 0 {
		return kind, 0, fmt.Errorf("%s at %.0f,%.0f has less than one unit left", kind, x, y)
	}
	s.player.AddResources(kind, whole)
	return kind, whole, nil
}
