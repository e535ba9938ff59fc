package game

type Terrain string

const (
	TerrainGrass    Terrain = "grass"
	TerrainWater    Terrain = "water"
	TerrainMountain Terrain = "mountain"
)

const (
	MapTilesWide = 50
	MapTilesHigh = 50
	MapTileSize  = 32
)

type WorldMap struct {
	Width    int
	Height   int
	TileSize int
	tiles    [][]Terrain
}

// NewWorldMap builds an all-grass map of width x height tiles.
func NewWorldMap(width, height, tileSize int) *WorldMap {
	tiles := make([][]Terrain, height)
	for y := range tiles {
		row := make([]Terrain, width)
		for x := range row {
			row[x] = TerrainGrass
		}
		tiles[y] = row
	}
	return &WorldMap{Width: width, Height: height, TileSize: tileSize, tiles: tiles}
}

func (w *WorldMap) WorldWidth() int {
	return w.Width * w.TileSize
}

func (w *WorldMap) WorldHeight() int {
	return w.Height * w.TileSize
}

func (w *WorldMap) tileIndex(x, y float64) (int, int, bool) {
	if x < 0 || y < 0 || w.TileSize <= 0 {
		return 0, 0, false
	}
	tx := int(x) / w.TileSize
	ty := int(y) / w.TileSize
	if tx >= w.Width || ty >= w.Height {
		return 0, 0, false
	}
	return tx, ty, true
}

func (w *WorldMap) TerrainAt(x, y float64) (Terrain, bool) {
	tx, ty, ok := w.tileIndex(x, y)
	if !ok {
		return "", false
	}
	return w.tiles[ty][tx], true
}

func (w *WorldMap) SetTerrain(tx, ty int, t Terrain) {
	if ty < 0 || ty >= w.Height || tx < 0 || tx >= w.Width {
		return
	}
	w.tiles[ty][tx] = t
}

func (w *WorldMap) IsWalkable(x, y float64) bool {
	t, ok := w.TerrainAt(x, y)
	if !ok {
		return false
	}
	return t != TerrainWater && t != TerrainMountain
}
