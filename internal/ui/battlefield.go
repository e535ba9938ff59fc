package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/kingdom-heroes/internal/game"
)

type cellKind int

const (
	cellField cellKind = iota
	cellResource
	cellPlayer
	cellEnemy
	cellSelected
)

type cell struct {
	r    rune
	kind cellKind
}

var unitGlyphs = map[game.UnitType]rune{
	game.UnitPeasant:   'p',
	game.UnitKnight:    'k',
	game.UnitArcher:    'a',
	game.UnitCavalry:   'h',
	game.UnitCatapult:  't',
	game.UnitMusket:    'm',
	game.UnitCannon:    'n',
	game.UnitBattalion: 'b',
	game.UnitDragoons:  'd',
	game.UnitCommander: 'l',
	game.UnitGiant:     'g',
}

var resourceGlyphs = map[game.ResourceKind]rune{
	game.ResourceGold:  '$',
	game.ResourceWood:  '"',
	game.ResourceStone: 'o',
	game.ResourceFood:  ',',
}

// unitGlyph is upper case for the player's army and lower case for the enemy.
func unitGlyph(u game.UnitView) rune {
	r, ok := unitGlyphs[u.Type]
	if !ok {
		r = '?'
	}
	if u.Owner == game.OwnerPlayer {
		return []rune(strings.ToUpper(string(r)))[0]
	}
	return r
}

// battlefieldGrid scales the world into cols x rows cells. Later layers overwrite earlier
// ones: pickups, castles, enemy units, player units.
func battlefieldGrid(snap game.Snapshot, cols, rows int) [][]cell {
	if cols <= 0 || rows <= 0 || snap.WorldWidth <= 0 || snap.WorldHeight <= 0 {
		return nil
	}
	grid := make([][]cell, rows)
	for y := range grid {
		grid[y] = make([]cell, cols)
		for x := range grid[y] {
			grid[y][x] = cell{r: '.', kind: cellField}
		}
	}
	sx := float64(cols) / float64(snap.WorldWidth)
	sy := float64(rows) / float64(snap.WorldHeight)
	toCell := func(x, y float64) (int, int, bool) {
		cx, cy := int(x*sx), int(y*sy)
		if cx < 0 || cy < 0 || cx >= cols || cy >= rows {
			return 0, 0, false
		}
		return cx, cy, true
	}

	for _, r := range snap.Resources {
		if cx, cy, ok := toCell(r.X, r.Y); ok {
			grid[cy][cx] = cell{r: resourceGlyphs[r.Kind], kind: cellResource}
		}
	}

	drawCastle := func(c game.CastleView, glyph rune, kind cellKind) {
		x0, y0 := clampInt(int(c.X*sx), 0, cols-1), clampInt(int(c.Y*sy), 0, rows-1)
		x1 := clampInt(int((c.X+float64(c.Size)-1)*sx), 0, cols-1)
		y1 := clampInt(int((c.Y+float64(c.Size)-1)*sy), 0, rows-1)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				grid[y][x] = cell{r: glyph, kind: kind}
			}
		}
	}
	drawCastle(snap.PlayerCastle, '#', cellPlayer)
	for _, c := range snap.EnemyCastles {
		drawCastle(c, 'X', cellEnemy)
	}

	for _, owner := range []game.Owner{game.OwnerEnemy, game.OwnerPlayer} {
		for _, u := range snap.Units {
			if u.Owner != owner {
				continue
			}
			cx, cy, ok := toCell(u.X, u.Y)
			if !ok {
				continue
			}
			kind := cellEnemy
			if u.Owner == game.OwnerPlayer {
				kind = cellPlayer
				if u.Selected {
					kind = cellSelected
				}
			}
			grid[cy][cx] = cell{r: unitGlyph(u), kind: kind}
		}
	}
	return grid
}

func renderBattlefield(snap game.Snapshot, cols, rows int) string {
	grid := battlefieldGrid(snap, cols, rows)
	var b strings.Builder
	for _, row := range grid {
		// Style runs of equal kind together to keep the escape sequences short.
		start := 0
		for i := 1; i <= len(row); i++ {
			if i < len(row) && row[i].kind == row[start].kind {
				continue
			}
			run := make([]rune, 0, i-start)
			for _, c := range row[start:i] {
				run = append(run, c.r)
			}
			b.WriteString(cellStyle(row[start].kind).Render(string(run)))
			start = i
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func cellStyle(kind cellKind) lipgloss.Style {
	switch kind {
	case cellResource:
		return accentStyle
	case cellPlayer:
		return playerStyle
	case cellEnemy:
		return enemyStyle
	case cellSelected:
		return titleStyle
	default:
		return fieldStyle
	}
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
