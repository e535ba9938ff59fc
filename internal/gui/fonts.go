package gui

import (
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Point sizes. Anything at sizeHeader or above is drawn with the heraldic face.
const (
	sizeTitle  int32 = 34
	sizeHeader int32 = 21
	sizeBody   int32 = 19
	sizeSmall  int32 = 16
	sizeLog    int32 = 17

	lineSpacing = 1.34
	fontAtlasPx = 36
)

var (
	fontDir      = filepath.Join("assets", "fonts")
	headingFaces = []string{"Cinzel-Regular.ttf", "Cinzel-Bold.ttf"}
	bodyFaces    = []string{"Inter-Regular.ttf", "NotoSans-Regular.ttf"}
)

// fontSet holds the two faces the window draws with. A zero face falls back to raylib's
// built-in bitmap font.
type fontSet struct {
	heading rl.Font
	body    rl.Font
	loaded  []rl.Font
}

var fonts fontSet

// findFace returns the first file in names that exists under dir.
func findFace(dir string, names []string) (string, bool) {
	for _, name := range names {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

func (fs *fontSet) loadFace(names []string) rl.Font {
	path, ok := findFace(fontDir, names)
	if !ok {
		return rl.Font{}
	}
	f := rl.LoadFontEx(path, fontAtlasPx, nil, 0)
	if f.Texture.ID == 0 {
		return rl.Font{}
	}
	rl.SetTextureFilter(f.Texture, rl.FilterBilinear)
	fs.loaded = append(fs.loaded, f)
	return f
}

// loadFonts needs an open window.
func loadFonts() {
	fonts.body = fonts.loadFace(bodyFaces)
	fonts.heading = fonts.loadFace(headingFaces)
	if fonts.heading.Texture.ID == 0 {
		fonts.heading = fonts.body
	}
}

func unloadFonts() {
	for _, f := range fonts.loaded {
		rl.UnloadFont(f)
	}
	fonts = fontSet{}
}

func (fs *fontSet) forSize(size int32) rl.Font {
	if size >= sizeHeader {
		return fs.heading
	}
	return fs.body
}

func drawText(text string, x, y, size int32, clr rl.Color) {
	f := fonts.forSize(size)
	if f.Texture.ID == 0 {
		rl.DrawText(text, x, y, size, clr)
		return
	}
	rl.DrawTextEx(f, text, rl.Vector2{X: float32(x), Y: float32(y)}, float32(size), 1, clr)
}

func measureText(text string, size int32) int32 {
	f := fonts.forSize(size)
	if f.Texture.ID == 0 {
		return int32(rl.MeasureText(text, size))
	}
	return int32(rl.MeasureTextEx(f, text, float32(size), 1).X + 0.5)
}

func lineHeight(size int32) int32 {
	return int32(float32(max(size, 1))*lineSpacing + 0.5)
}
