package game

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

type CommandResult struct {
	Handled bool
	Message string
}

// ExecuteCommand runs one text command against the battle. Unknown verbs come back
// unhandled so callers can try other interpreters.
func (s *Session) ExecuteCommand(raw string) CommandResult {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(raw)))
	if len(fields) == 0 {
		return CommandResult{Handled: false}
	}

	switch fields[0] {
	case "commands", "help":
		return CommandResult{
			Handled: true,
			Message: "Commands: recruit <unit>, upgrade, select all|<x> <y> [add]|<x0> <y0> <x1> <y1>, deselect, move <x> <y>, attack, stop, harvest <x> <y>, units, status.",
		}
	case "status":
		return s.statusCommand()
	case "units":
		return s.unitsCommand()
	}

	if s.over() {
		return CommandResult{Handled: true, Message: "The battle is over."}
	}

	switch fields[0] {
	case "recruit", "train":
		return s.recruitCommand(fields[1:])
	case "upgrade":
		return s.upgradeCommand()
	case "select":
		return s.selectCommand(fields[1:])
	case "deselect":
		s.DeselectAll()
		return CommandResult{Handled: true, Message: "Selection cleared."}
	case "move":
		return s.moveCommand(fields[1:])
	case "attack", "charge":
		return s.attackCommand()
	case "stop":
		n := s.StopCommand()
		return CommandResult{Handled: true, Message: fmt.Sprintf("%d commander(s) stood down.", n)}
	case "harvest":
		return s.harvestCommand(fields[1:])
	default:
		return CommandResult{Handled: false}
	}
}

func (s *Session) recruitCommand(args []string) CommandResult {
	if len(args) != 1 {
		return CommandResult{Handled: true, Message: "Usage: recruit <unit>"}
	}
	t, ok := ParseUnitType(args[0])
	if !ok {
		return CommandResult{Handled: true, Message: fmt.Sprintf("Unknown unit type %q.", args[0])}
	}
	u, err := s.Recruit(t)
	switch {
	case errors.Is(err, ErrUnitLocked):
		return CommandResult{Handled: true, Message: fmt.Sprintf("%s unlocks at level %d.", t.DisplayName(), UnlockLevel(t))}
	case errors.Is(err, ErrInsufficientResources):
		cost, _ := RecruitCost(t)
		return CommandResult{Handled: true, Message: fmt.Sprintf("Not enough resources for %s (needs %s).", t.DisplayName(), FormatCost(cost))}
	case err != nil:
		return CommandResult{Handled: true, Message: err.Error()}
	}
	msg := fmt.Sprintf("%s recruited.", t.DisplayName())
	if n := len(u.EscortIDs); n > 0 {
		msg = fmt.Sprintf("%s recruited with %d escorts.", t.DisplayName(), n)
	}
	return CommandResult{Handled: true, Message: msg}
}

func (s *Session) upgradeCommand() CommandResult {
	cost, _ := s.player.UpgradeCost()
	err := s.UpgradeCastle()
	switch {
	case errors.Is(err, ErrCastleMaxLevel):
		return CommandResult{Handled: true, Message: "Castle is already at max level."}
	case errors.Is(err, ErrInsufficientResources):
		return CommandResult{Handled: true, Message: fmt.Sprintf("Upgrade needs %s.", FormatCost(cost))}
	case err != nil:
		return CommandResult{Handled: true, Message: err.Error()}
	}
	return CommandResult{
		Handled: true,
		Message: fmt.Sprintf("Castle upgraded to level %d (unit bonus x%.2f).", s.player.Level, s.player.UpgradeBonus),
	}
}

func (s *Session) selectCommand(args []string) CommandResult {
	if len(args) == 1 && args[0] == "all" {
		n := s.SelectAllPlayerUnits()
		return CommandResult{Handled: true, Message: fmt.Sprintf("%d unit(s) selected.", n)}
	}

	additive := false
	if len(args) == 3 && args[2] == "add" {
		additive = true
		args = args[:2]
	}
	coords, ok := parseCoords(args)
	if !ok {
		return CommandResult{Handled: true, Message: "Usage: select all|<x> <y> [add]|<x0> <y0> <x1> <y1>"}
	}
	switch len(coords) {
	case 2:
		u, err := s.SelectAt(coords[0], coords[1], additive)
		if err != nil {
			return CommandResult{Handled: true, Message: "No unit there."}
		}
		return CommandResult{Handled: true, Message: fmt.Sprintf("%s selected (%d total).", u.Type.DisplayName(), len(s.units.Selected()))}
	case 4:
		n := s.SelectInRect(coords[0], coords[1], coords[2], coords[3])
		return CommandResult{Handled: true, Message: fmt.Sprintf("%d unit(s) selected.", n)}
	default:
		return CommandResult{Handled: true, Message: "Usage: select all|<x> <y> [add]|<x0> <y0> <x1> <y1>"}
	}
}

func (s *Session) moveCommand(args []string) CommandResult {
	coords, ok := parseCoords(args)
	if !ok || len(coords) != 2 {
		return CommandResult{Handled: true, Message: "Usage: move <x> <y>"}
	}
	if err := s.MoveSelected(coords[0], coords[1]); err != nil {
		return CommandResult{Handled: true, Message: "Select units first."}
	}
	return CommandResult{Handled: true, Message: fmt.Sprintf("Moving %d unit(s) to %.0f,%.0f.", len(s.units.Selected()), coords[0], coords[1])}
}

func (s *Session) attackCommand() CommandResult {
	n, err := s.CommandAttack()
	switch {
	case errors.Is(err, ErrNoCommanderSelected):
		return CommandResult{Handled: true, Message: "Select a commander first."}
	case errors.Is(err, ErrNoEnemyCastle):
		return CommandResult{Handled: true, Message: "No enemy castle left to attack."}
	case err != nil:
		return CommandResult{Handled: true, Message: err.Error()}
	}
	return CommandResult{Handled: true, Message: fmt.Sprintf("Charge! %d unit(s) march on the enemy castle.", n)}
}

func (s *Session) harvestCommand(args []string) CommandResult {
	coords, ok := parseCoords(args)
	if !ok || len(coords) != 2 {
		return CommandResult{Handled: true, Message: "Usage: harvest <x> <y>"}
	}
	kind, n, err := s.Harvest(coords[0], coords[1])
	if err != nil {
		return CommandResult{Handled: true, Message: "Nothing to harvest there."}
	}
	return CommandResult{Handled: true, Message: fmt.Sprintf("Harvested %d %s.", n, kind)}
}

func (s *Session) statusCommand() CommandResult {
	c := s.player
	msg := fmt.Sprintf(
		"Level %d %s | castle L%d %d/%d hp | gold %d wood %d stone %d food %d | enemy castles %d | next wave %.0fs",
		s.level.Number, s.level.Name,
		c.Level, c.Health, c.MaxHealth,
		c.Resources.Gold, c.Resources.Wood, c.Resources.Stone, c.Resources.Food,
		len(s.enemies), s.SpawnCountdown(),
	)
	return CommandResult{Handled: true, Message: msg}
}

func (s *Session) unitsCommand() CommandResult {
	counts := map[string]int{}
	for _, u := range s.units.ByOwner(OwnerPlayer) {
		counts[string(u.Type)]++
	}
	if len(counts) == 0 {
		return CommandResult{Handled: true, Message: "No units in the field."}
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s x%d", name, counts[name]))
	}
	return CommandResult{Handled: true, Message: "Army: " + strings.Join(parts, ", ")}
}

func parseCoords(args []string) ([]float64, bool) {
	if len(args) == 0 {
		return nil, false
	}
	out := make([]float64, 0, len(args))
	for _, a := range args {
		v, err := strconv.ParseFloat(strings.TrimSuffix(a, ","), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, false
		}
		out = append(out, v)
	}
	return out, true
}

// FormatCost renders the non-zero parts of a cost, e.g. "25 gold, 10 food".
func FormatCost(c Cost) string {
	parts := make([]string, 0, 4)
	if c.Gold > 0 {
		parts = append(parts, fmt.Sprintf("%d gold", c.Gold))
	}
	if c.Food > 0 {
		parts = append(parts, fmt.Sprintf("%d food", c.Food))
	}
	if c.Wood > 0 {
		parts = append(parts, fmt.Sprintf("%d wood", c.Wood))
	}
	if c.Stone > 0 {
		parts = append(parts, fmt.Sprintf("%d stone", c.Stone))
	}
	if len(parts) == 0 {
		return "nothing"
	}
	return strings.Join(parts, ", ")
}
