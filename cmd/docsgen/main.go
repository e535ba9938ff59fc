package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/appengine-ltd/kingdom-heroes/internal/game"
)

type docFile struct {
	Name    string
	Title   string
	Content string
}

func main() {
	root := filepath.Join("docs", "reference", "catalogs")
	if err := os.MkdirAll(root, 0o755); err != nil {
		fatal(err)
	}

	files := []docFile{
		generateUnitsDoc(),
		generateLevelsDoc(),
		generateCastleDoc(),
	}
	for _, f := range files {
		path := filepath.Join(root, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s\n", path)
	}

	index := generateCatalogIndex(files)
	indexPath := filepath.Join(root, "README.md")
	if err := os.WriteFile(indexPath, []byte(index), 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %s\n", indexPath)
}

func generateCatalogIndex(files []docFile) string {
	var b strings.Builder
	b.WriteString("# Data Catalogs\n\n")
	b.WriteString("Generated from the current Go source using `go run ./cmd/docsgen`.\n\n")
	for _, f := range files {
		b.WriteString(fmt.Sprintf("- [%s](./%s)\n", f.Title, f.Name))
	}
	return b.String()
}

func generateUnitsDoc() docFile {
	types := game.AllUnitTypes()

	var b strings.Builder
	b.WriteString("# Units\n\n")
	b.WriteString("Source: `internal/game/unit_types.go`.\n\n")
	b.WriteString(fmt.Sprintf("Total unit types: **%d**.\n\n", len(types)))
	b.WriteString("| Type | Name | Health | Speed | Damage | Range | Recruit Cost | Unlocks At |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- | --- | --- |\n")
	for _, t := range types {
		stats := game.BaseStats(t)
		cost, recruitable := game.RecruitCost(t)
		costLabel := "not recruitable"
		if recruitable {
			costLabel = game.FormatCost(cost)
		}
		b.WriteString("| ")
		b.WriteString(escape(string(t)))
		b.WriteString(" | ")
		b.WriteString(escape(t.DisplayName()))
		b.WriteString(" | ")
		b.WriteString(strconv.Itoa(stats.MaxHealth))
		b.WriteString(" | ")
		b.WriteString(strconv.Itoa(stats.Speed))
		b.WriteString(" | ")
		b.WriteString(strconv.Itoa(stats.AttackDamage))
		b.WriteString(" | ")
		b.WriteString(strconv.Itoa(stats.AttackRange))
		b.WriteString(" | ")
		b.WriteString(escape(costLabel))
		b.WriteString(" | ")
		b.WriteString(levelLabel(game.UnlockLevel(t)))
		b.WriteString(" |\n")
	}

	return docFile{Name: "units.md", Title: "Units", Content: b.String()}
}

func generateLevelsDoc() docFile {
	levels := game.Levels()

	var b strings.Builder
	b.WriteString("# Campaign Levels\n\n")
	b.WriteString("Source: `internal/game/level.go`.\n\n")
	b.WriteString(fmt.Sprintf("Total levels: **%d**. Winning a level unlocks the next one.\n\n", len(levels)))
	b.WriteString("| Level | Name | Description | Enemy Strength | Wave Interval (s) | Enemy Castles | Enemy Units |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- | --- |\n")
	for _, l := range levels {
		pool := game.EnemyUnitPool(l.Number)
		names := make([]string, 0, len(pool))
		for _, t := range pool {
			names = append(names, string(t))
		}
		b.WriteString("| ")
		b.WriteString(strconv.Itoa(l.Number))
		b.WriteString(" | ")
		b.WriteString(escape(l.Name))
		b.WriteString(" | ")
		b.WriteString(escape(l.Description))
		b.WriteString(" | ")
		b.WriteString("x" + formatFloat(l.EnemyMult))
		b.WriteString(" | ")
		b.WriteString(formatFloat(l.SpawnInterval()))
		b.WriteString(" | ")
		b.WriteString(strconv.Itoa(len(game.EnemyCastlePositions(l.Number))))
		b.WriteString(" | ")
		b.WriteString(escape(strings.Join(names, ", ")))
		b.WriteString(" |\n")
	}

	return docFile{Name: "levels.md", Title: "Campaign Levels", Content: b.String()}
}

func generateCastleDoc() docFile {
	c := game.NewCastle(0, 0, game.OwnerPlayer)
	c.Resources = game.Stock{Gold: 1 << 20, Wood: 1 << 20, Stone: 1 << 20, Food: 1 << 20}

	var b strings.Builder
	b.WriteString("# Castle Upgrades\n\n")
	b.WriteString("Source: `internal/game/castle.go`.\n\n")
	b.WriteString(fmt.Sprintf("Defense: %d damage every %ss within %s units.\n\n", game.DefenseDamage, formatFloat(game.DefenseCooldown), formatFloat(game.DefenseRange)))
	b.WriteString("| Level | Health | Size | Unit Bonus | Cost To Next |\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")
	for {
		cost, ok := c.UpgradeCost()
		next := "max level"
		if ok {
			next = game.FormatCost(cost)
		}
		b.WriteString(fmt.Sprintf("| %d | %d | %d | x%.2f | %s |\n", c.Level, c.MaxHealth, c.Size, c.UpgradeBonus, escape(next)))
		if !ok || !c.Upgrade() {
			break
		}
	}

	return docFile{Name: "castle.md", Title: "Castle Upgrades", Content: b.String()}
}

func levelLabel(n int) string {
	if n <= 1 {
		return "start"
	}
	return "level " + strconv.Itoa(n)
}

func formatFloat(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escape(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	v = strings.ReplaceAll(v, "|", "\\|")
	v = strings.ReplaceAll(v, "\n", "<br>")
	return v
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
