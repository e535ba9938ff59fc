package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/fogleman/gg"

	"github.com/appengine-ltd/kingdom-heroes/internal/game"
)

var (
	minimapGrass    = color.RGBA{R: 34, G: 70, B: 34, A: 255}
	minimapPlayer   = color.RGBA{R: 60, G: 140, B: 230, A: 255}
	minimapEnemy    = color.RGBA{R: 210, G: 50, B: 40, A: 255}
	minimapSelected = color.RGBA{R: 250, G: 220, B: 80, A: 255}
	minimapRange    = color.RGBA{R: 120, G: 170, B: 255, A: 60}
)

var minimapResourceColors = map[game.ResourceKind]color.RGBA{
	game.ResourceGold:  {R: 230, G: 190, B: 40, A: 255},
	game.ResourceWood:  {R: 120, G: 80, B: 40, A: 255},
	game.ResourceStone: {R: 150, G: 150, B: 150, A: 255},
	game.ResourceFood:  {R: 200, G: 120, B: 160, A: 255},
}

// renderMinimapANSI draws the battlefield with two pixel rows per terminal row.
func renderMinimapANSI(snap game.Snapshot, widthChars, heightRows int) string {
	img := minimapImage(snap, widthChars, heightRows*2)
	if img == nil {
		return ""
	}
	return rgbaImageToANSIHalfBlocks(img)
}

func minimapImage(snap game.Snapshot, w, h int) image.Image {
	if w < 8 || h < 8 || snap.WorldWidth <= 0 || snap.WorldHeight <= 0 {
		return nil
	}
	dc := gg.NewContext(w, h)
	dc.SetColor(minimapGrass)
	dc.Clear()

	sx := float64(w) / float64(snap.WorldWidth)
	sy := float64(h) / float64(snap.WorldHeight)

	for _, r := range snap.Resources {
		dc.SetColor(minimapResourceColors[r.Kind])
		dc.SetPixel(int(r.X*sx), int(r.Y*sy))
	}

	pc := snap.PlayerCastle
	if pc.DefenseRange > 0 {
		cx, cy := (pc.X+float64(pc.Size)/2)*sx, (pc.Y+float64(pc.Size)/2)*sy
		dc.SetColor(minimapRange)
		dc.DrawEllipse(cx, cy, pc.DefenseRange*sx, pc.DefenseRange*sy)
		dc.Fill()
	}
	drawCastle := func(c game.CastleView, clr color.Color) {
		size := float64(c.Size)
		dc.SetColor(clr)
		dc.DrawRectangle(c.X*sx, c.Y*sy, max(size*sx, 1), max(size*sy, 1))
		dc.Fill()
	}
	drawCastle(pc, minimapPlayer)
	for _, c := range snap.EnemyCastles {
		drawCastle(c, minimapEnemy)
	}

	for _, u := range snap.Units {
		clr := minimapEnemy
		if u.Owner == game.OwnerPlayer {
			clr = minimapPlayer
			if u.Selected {
				clr = minimapSelected
			}
		}
		dc.SetColor(clr)
		dc.DrawRectangle(u.X*sx, u.Y*sy, 1, 1)
		dc.Fill()
	}
	return dc.Image()
}

func rgbaImageToANSIHalfBlocks(img image.Image) string {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return ""
	}

	var out strings.Builder
	for y := 0; y < height; y += 2 {
		for x := 0; x < width; x++ {
			tr, tg, tb, ta := rgba8(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			br, bg, bb, ba := uint8(0), uint8(0), uint8(0), uint8(0)
			if y+1 < height {
				br, bg, bb, ba = rgba8(img.At(bounds.Min.X+x, bounds.Min.Y+y+1))
			}

			if ta < 8 && ba < 8 {
				out.WriteByte(' ')
				continue
			}

			fmt.Fprintf(&out, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀", tr, tg, tb, br, bg, bb)
		}
		out.WriteString("\x1b[0m\n")
	}
	return out.String()
}

func rgba8(c color.Color) (r, g, b, a uint8) {
	r16, g16, b16, a16 := c.RGBA()
	return uint8(r16 >> 8), uint8(g16 >> 8), uint8(b16 >> 8), uint8(a16 >> 8)
}
