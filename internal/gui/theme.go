package gui

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Theme struct {
	Background    rl.Color
	Field         rl.Color
	Panel         rl.Color
	PanelRaised   rl.Color
	Border        rl.Color
	TextPrimary   rl.Color
	TextSecondary rl.Color
	TextMuted     rl.Color
	Accent        rl.Color
	Player        rl.Color
	Enemy         rl.Color
	Selected      rl.Color
	Warning       rl.Color
	Danger        rl.Color
	Good          rl.Color
	DisabledPanel rl.Color
}

// Castle stone, banner gold and heraldic blue/red.
var AppTheme = Theme{
	Background:    rl.NewColor(0x14, 0x16, 0x1A, 255),
	Field:         rl.NewColor(0x3B, 0x6B, 0x35, 255),
	Panel:         rl.NewColor(0x24, 0x22, 0x1F, 255),
	PanelRaised:   rl.NewColor(0x33, 0x2F, 0x2A, 255),
	Border:        rl.NewColor(0x6B, 0x5A, 0x3E, 255),
	TextPrimary:   rl.NewColor(0xEE, 0xE6, 0xD6, 255),
	TextSecondary: rl.NewColor(0xB5, 0xAC, 0x9C, 255),
	TextMuted:     rl.NewColor(0x80, 0x79, 0x6E, 255),
	Accent:        rl.NewColor(0xE0, 0xB0, 0x3C, 255),
	Player:        rl.NewColor(0x3C, 0x8C, 0xE6, 255),
	Enemy:         rl.NewColor(0xD2, 0x32, 0x28, 255),
	Selected:      rl.NewColor(0xFA, 0xDC, 0x50, 255),
	Warning:       rl.NewColor(0xC1, 0x8B, 0x2F, 255),
	Danger:        rl.NewColor(0xB8, 0x3A, 0x2E, 255),
	Good:          rl.NewColor(0x5C, 0xB8, 0x5C, 255),
	DisabledPanel: rl.NewColor(0x1A, 0x19, 0x17, 255),
}

var resourceColors = map[string]rl.Color{
	"gold":  rl.NewColor(0xE6, 0xBE, 0x28, 255),
	"wood":  rl.NewColor(0x78, 0x50, 0x28, 255),
	"stone": rl.NewColor(0x96, 0x96, 0x96, 255),
	"food":  rl.NewColor(0xC8, 0x78, 0xA0, 255),
}

const (
	spaceXS = float32(8)
	spaceS  = float32(12)
	spaceM  = float32(18)
)

func drawPanel(rect rl.Rectangle, title string) {
	rl.DrawRectangleRounded(rect, 0.04, 8, AppTheme.Panel)
	rl.DrawRectangleRoundedLinesEx(rect, 0.04, 8, 2, AppTheme.Border)
	if title != "" {
		drawText(title, int32(rect.X+spaceS), int32(rect.Y+spaceXS), sizeHeader, AppTheme.Accent)
	}
}

func drawButton(rect rl.Rectangle, label string, enabled, hovered bool) {
	fill := AppTheme.PanelRaised
	stroke := AppTheme.Border
	text := AppTheme.TextPrimary
	switch {
	case !enabled:
		fill = AppTheme.DisabledPanel
		text = AppTheme.TextMuted
	case hovered:
		stroke = AppTheme.Accent
		text = AppTheme.Accent
	}
	rl.DrawRectangleRounded(rect, 0.25, 6, fill)
	rl.DrawRectangleRoundedLinesEx(rect, 0.25, 6, 1.5, stroke)
	drawTextCentered(label, rect, int32(rect.Height/2)-sizeSmall/2, sizeSmall, text)
}

func drawTextCentered(text string, rect rl.Rectangle, yOffset int32, fontSize int32, clr rl.Color) {
	width := measureText(text, fontSize)
	x := int32(rect.X + (rect.Width-float32(width))/2)
	drawText(text, x, int32(rect.Y)+yOffset, fontSize, clr)
}

func drawLines(rect rl.Rectangle, y int32, size int32, lines []string, clr rl.Color) {
	for i, line := range lines {
		drawText(line, int32(rect.X+spaceS), int32(rect.Y)+y+int32(i)*lineHeight(size), size, clr)
	}
}

func wrapText(text string, size int32, maxWidth int32) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	lines := make([]string, 0, 8)
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if measureText(candidate, size) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	lines = append(lines, current)
	return lines
}

func wrapIndex(i int, size int) int {
	if size <= 0 {
		return 0
	}
	for i < 0 {
		i += size
	}
	for i >= size {
		i -= size
	}
	return i
}

func clampInt(v int, min int, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
